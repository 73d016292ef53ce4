package main

import (
	"fmt"
	"io"

	"github.com/drakos74/scisom/infra/config"
	"github.com/drakos74/scisom/internal/dataset"
	"github.com/drakos74/scisom/internal/math/ml"
	"github.com/drakos74/scisom/internal/recall"
	"github.com/drakos74/scisom/internal/som"
	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/spf13/cobra"
)

func newRecallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recall",
		Short: "Label a csv dataset with the populations of a trained map",
		Long: `Assign each row of a csv dataset the population of its best matching cell.
Populations come either from a reference png with one color per population,
or from k-means clusters over the trained prototypes.

Examples:
  som recall --name iris --data test.csv --reference iris.png --out labelled.csv
  som recall --name iris --data test.csv --reference iris.png --block 12 --out labelled.csv
  som recall --name iris --data test.csv --clusters 3 --mapping mapping.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			dataPath, _ := cmd.Flags().GetString("data")
			outPath, _ := cmd.Flags().GetString("out")
			mappingPath, _ := cmd.Flags().GetString("mapping")

			s, err := loadSnapshot(cmd, name)
			if err != nil {
				return err
			}
			ref, err := referenceMap(cmd, s.Cube)
			if err != nil {
				return err
			}
			engine, err := recall.NewEngine(s.Cube, ref)
			if err != nil {
				return err
			}
			ds, err := dataset.LoadCSV(dataPath)
			if err != nil {
				return err
			}

			classified, err := engine.Classify(ds)
			if err != nil {
				return err
			}
			if mappingPath != "" {
				var mapping recall.Mapping
				if err := config.Load(mappingPath, &mapping); err != nil {
					return err
				}
				mapped, err := mapping.Apply(classified.Type)
				if err != nil {
					return err
				}
				if classified, err = ds.WithType(mapped); err != nil {
					return err
				}
			}

			summary, err := engine.Summary(ds.Features)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), summary)

			if ds.Labelled() {
				cf, accuracy, err := recall.Evaluate(classified.Type, ds.Type)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), evaluation.GetSummary(cf))
				fmt.Fprintf(cmd.OutOrStdout(), "accuracy: %.4f\n", accuracy)
			}

			if outPath != "" {
				if err := classified.SaveCSV(outPath); err != nil {
					return err
				}
				log.Info().Str("map", name).Str("out", outPath).Int("rows", classified.Len()).Msg("stored recall")
			}
			return nil
		},
	}

	cmd.Flags().String("name", "", "Name of the trained map")
	cmd.Flags().String("data", "", "Csv dataset to label")
	cmd.Flags().String("reference", "", "Png reference image with one color per population")
	cmd.Flags().Int("block", 0, "Size in pixels of one grid cell in the reference image")
	cmd.Flags().Int("cut-out", 0, "Number of trailing pixels to drop from the reference image")
	cmd.Flags().Int("clusters", 0, "Number of k-means populations, used when there is no reference image")
	cmd.Flags().Int("cluster-iterations", 100, "Maximum k-means iterations")
	cmd.Flags().String("mapping", "", "Json mapping from population to dataset labels")
	cmd.Flags().String("out", "", "Csv file to write the labelled dataset to")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func referenceMap(cmd *cobra.Command, cube *som.Cube) (*recall.ReferenceMap, error) {
	reference, _ := cmd.Flags().GetString("reference")
	block, _ := cmd.Flags().GetInt("block")
	cutOut, _ := cmd.Flags().GetInt("cut-out")
	clusters, _ := cmd.Flags().GetInt("clusters")
	iterations, _ := cmd.Flags().GetInt("cluster-iterations")

	switch {
	case reference != "":
		img, err := loadPNG(reference)
		if err != nil {
			return nil, err
		}
		if block > 0 {
			if img, err = recall.SelectMiddlePixel(img, block); err != nil {
				return nil, err
			}
		}
		img, err = recall.ImageFromPixels(img.Pixels, cube.X, cube.Y, cutOut)
		if err != nil {
			return nil, err
		}
		return recall.NewReferenceMap(img), nil
	case clusters > 0:
		prototypes := cube.Prototypes()
		data := make([][]float64, len(prototypes))
		for i, p := range prototypes {
			data[i] = p
		}
		labels, err := ml.Cluster(data, clusters, iterations)
		if err != nil {
			return nil, err
		}
		return recall.ReferenceMapFromLabels(cube.X, cube.Y, labels)
	}
	return nil, fmt.Errorf("either a reference image or a number of clusters is required")
}

func printSummary(w io.Writer, pp []recall.Population) {
	for _, p := range pp {
		color := "-"
		if p.Color != nil {
			color = fmt.Sprintf("#%02x%02x%02x", p.Color[0], p.Color[1], p.Color[2])
		}
		fmt.Fprintf(w, "population %d %s size=%d avg-distance=%.6f max-distance=%.6f\n",
			p.Label, color, p.Size, p.AvgDistance, p.MaxDistance)
	}
}
