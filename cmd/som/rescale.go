package main

import (
	"fmt"

	"github.com/drakos74/scisom/internal/dataset"
	smath "github.com/drakos74/scisom/internal/math"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRescaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescale",
		Short: "Rescale every column of a csv dataset to a target range",
		Long: `Rescale every feature column of a csv dataset linearly so that its
minimum and maximum map to the given target range. Labels are kept as they are.

Examples:
  som rescale --data iris.csv --out iris-scaled.csv
  som rescale --data iris.csv --min -1 --max 1 --out iris-scaled.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataPath, _ := cmd.Flags().GetString("data")
			outPath, _ := cmd.Flags().GetString("out")
			min, _ := cmd.Flags().GetFloat64("min")
			max, _ := cmd.Flags().GetFloat64("max")
			if min >= max {
				return fmt.Errorf("invalid target range [%v, %v]", min, max)
			}

			ds, err := dataset.LoadCSV(dataPath)
			if err != nil {
				return err
			}
			scaled, err := smath.Rescale(ds.Features, smath.Uniform(ds.Dim(), min), smath.Uniform(ds.Dim(), max))
			if err != nil {
				return err
			}
			out, err := ds.WithFeatures(scaled)
			if err != nil {
				return err
			}
			if err := out.SaveCSV(outPath); err != nil {
				return err
			}
			log.Info().Str("data", dataPath).Str("out", outPath).Float64("min", min).Float64("max", max).Msg("rescaled dataset")
			return nil
		},
	}
	cmd.Flags().String("data", "", "Csv dataset to rescale")
	cmd.Flags().String("out", "", "Csv file to write the rescaled dataset to")
	cmd.Flags().Float64("min", 0, "Target minimum")
	cmd.Flags().Float64("max", 1, "Target maximum")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
