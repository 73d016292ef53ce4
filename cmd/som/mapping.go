package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/drakos74/scisom/internal/dataset"
	"github.com/drakos74/scisom/internal/recall"
	"github.com/spf13/cobra"
)

func newMappingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Create a mapping from recalled populations to dataset labels",
		Long: `Pair the labels of a recalled dataset with the labels of the original dataset
row by row, and store the mapping for later recalls.

Examples:
  som mapping --recalled labelled.csv --expected iris.csv --out mapping.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			recalledPath, _ := cmd.Flags().GetString("recalled")
			expectedPath, _ := cmd.Flags().GetString("expected")
			outPath, _ := cmd.Flags().GetString("out")

			recalled, err := dataset.LoadCSV(recalledPath)
			if err != nil {
				return err
			}
			expected, err := dataset.LoadCSV(expectedPath)
			if err != nil {
				return err
			}
			if !recalled.Labelled() || !expected.Labelled() {
				return fmt.Errorf("both datasets need a '%s' column", dataset.TypeColumn)
			}
			mapping, err := recall.NewMapping(recalled.Type, expected.Type)
			if err != nil {
				return err
			}
			b, err := json.Marshal(mapping)
			if err != nil {
				return fmt.Errorf("could not marshal mapping: %w", err)
			}
			if err := ioutil.WriteFile(outPath, b, 0644); err != nil {
				return fmt.Errorf("could not write mapping '%s': %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mapped %d populations\n", len(mapping))
			return nil
		},
	}
	cmd.Flags().String("recalled", "", "Csv dataset labelled by recall")
	cmd.Flags().String("expected", "", "Csv dataset with the original labels")
	cmd.Flags().String("out", "", "Json file to write the mapping to")
	_ = cmd.MarkFlagRequired("recalled")
	_ = cmd.MarkFlagRequired("expected")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
