package main

import (
	"fmt"

	"github.com/drakos74/scisom/internal/dataset"
	"github.com/drakos74/scisom/internal/recall"
	"github.com/spf13/cobra"
)

func newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the best matching cell of each row of a csv dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			dataPath, _ := cmd.Flags().GetString("data")

			s, err := loadSnapshot(cmd, name)
			if err != nil {
				return err
			}
			ds, err := dataset.LoadCSV(dataPath)
			if err != nil {
				return err
			}
			cells, err := recall.Locate(s.Cube, ds.Features)
			if err != nil {
				return err
			}
			for i, c := range cells {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d\n", i, c.Row, c.Col)
			}
			return nil
		},
	}
	cmd.Flags().String("name", "", "Name of the trained map")
	cmd.Flags().String("data", "", "Csv dataset to locate")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}
