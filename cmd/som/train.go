package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/drakos74/scisom/infra/config"
	"github.com/drakos74/scisom/internal/dataset"
	"github.com/drakos74/scisom/internal/som"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a map on a csv dataset",
		Long: `Train a self-organizing map on the numeric columns of a csv dataset
and store it under the given name.

Examples:
  som train --data iris.csv --name iris
  som train --config settings.yaml --data iris.csv --name iris --iterations 5000 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			dataPath, _ := cmd.Flags().GetString("data")
			name, _ := cmd.Flags().GetString("name")
			seed, _ := cmd.Flags().GetInt64("seed")

			var settings som.Settings
			if configPath != "" {
				if err := config.Load(configPath, &settings); err != nil {
					return err
				}
			} else {
				config.MustLoad("som", &settings)
			}
			overrideSettings(cmd, &settings)

			ds, err := dataset.LoadCSV(dataPath)
			if err != nil {
				return err
			}
			if settings.InputDim == 0 {
				settings.InputDim = ds.Dim()
			}

			cfg, err := settings.Config()
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			s, err := som.New(cfg, som.WithRand(rand.New(rand.NewSource(seed))))
			if err != nil {
				return err
			}
			if err := s.Train(cmd.Context(), ds.Features); err != nil {
				return err
			}
			qe := s.TrainingError()

			err = saveSnapshot(cmd, name, snapshot{
				Run:               s.Run(),
				Settings:          settings,
				Columns:           ds.Columns,
				Cube:              s.Cube(),
				History:           s.History(),
				QuantizationError: qe,
			})
			if err != nil {
				return err
			}
			log.Info().
				Str("map", name).
				Str("run", s.Run().String()).
				Int64("seed", seed).
				Float64("quantization-error", qe).
				Msg("stored map")
			fmt.Fprintf(cmd.OutOrStdout(), "trained map '%s' [%dx%dx%d] run=%s qe=%.6f\n",
				name, cfg.X, cfg.Y, cfg.D, s.Run(), qe)
			return nil
		},
	}

	cmd.Flags().String("config", "", "Learning settings file (yaml or json), defaults to infra/config/som.yaml")
	cmd.Flags().String("data", "", "Csv dataset to train on")
	cmd.Flags().String("name", "", "Name to store the map under")
	cmd.Flags().Int64("seed", 0, "Random seed, 0 picks one from the clock")
	cmd.Flags().Int("x", 0, "Grid rows")
	cmd.Flags().Int("y", 0, "Grid columns")
	cmd.Flags().Int("iterations", 0, "Number of training iterations")
	cmd.Flags().String("decay", "", "Decay policy [exponential, linear, schedule]")
	cmd.Flags().String("neighborhood", "", "Neighborhood style [geometric_series, exponential, none]")
	cmd.Flags().String("mode", "", "Sample ordering [batch, online]")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// overrideSettings applies the flags that were explicitly set on top of the file settings.
func overrideSettings(cmd *cobra.Command, s *som.Settings) {
	flags := cmd.Flags()
	if flags.Changed("x") {
		s.X, _ = flags.GetInt("x")
	}
	if flags.Changed("y") {
		s.Y, _ = flags.GetInt("y")
	}
	if flags.Changed("iterations") {
		s.Iterations, _ = flags.GetInt("iterations")
	}
	if flags.Changed("decay") {
		s.Decay, _ = flags.GetString("decay")
	}
	if flags.Changed("neighborhood") {
		s.Neighborhood, _ = flags.GetString("neighborhood")
	}
	if flags.Changed("mode") {
		s.Mode, _ = flags.GetString("mode")
	}
}
