package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/drakos74/scisom/internal/metrics"
	"github.com/drakos74/scisom/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "som",
		Short: "Self-organizing maps for population recall",
		Long: `som trains self-organizing maps on tabular data and recalls
population labels for new samples from a reference map of the grid.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			addr, _ := cmd.Flags().GetString("metrics")
			if addr != "" {
				go serveMetrics(addr)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("storage", storage.DefaultDir, "Directory holding the trained maps")
	rootCmd.PersistentFlags().String("metrics", "", "Address to expose prometheus metrics on, e.g. ':6122'")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		newTrainCmd(),
		newRecallCmd(),
		newLocateCmd(),
		newRescaleCmd(),
		newMappingCmd(),
	)
	return rootCmd
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	log.Info().Str("addr", addr).Msg("serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Str("addr", addr).Msg("could not serve metrics")
	}
}
