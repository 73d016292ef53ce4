package main

import (
	"fmt"

	"github.com/drakos74/scisom/internal/som"
	"github.com/drakos74/scisom/internal/storage"
	"github.com/drakos74/scisom/internal/storage/file/json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const snapshotLabel = "snapshot"

// snapshot is a trained map as kept in the storage.
type snapshot struct {
	Run               uuid.UUID    `json:"run"`
	Settings          som.Settings `json:"settings"`
	Columns           []string     `json:"columns"`
	Cube              *som.Cube    `json:"cube"`
	History           som.History  `json:"history"`
	QuantizationError float64      `json:"quantization_error"`
}

// shard keeps every map in its own directory under the storage root.
func shard(cmd *cobra.Command, name string) (storage.Persistence, error) {
	dir, _ := cmd.Flags().GetString("storage")
	store, err := json.BlobShard(dir, storage.MapsDir)(name)
	if err != nil {
		return nil, fmt.Errorf("could not open storage for map '%s': %w", name, err)
	}
	return store, nil
}

func saveSnapshot(cmd *cobra.Command, name string, s snapshot) error {
	store, err := shard(cmd, name)
	if err != nil {
		return err
	}
	if err := store.Store(storage.Key{Map: name, Label: snapshotLabel}, s); err != nil {
		return fmt.Errorf("could not store map '%s': %w", name, err)
	}
	return nil
}

func loadSnapshot(cmd *cobra.Command, name string) (snapshot, error) {
	store, err := shard(cmd, name)
	if err != nil {
		return snapshot{}, err
	}
	var s snapshot
	if err := store.Load(storage.Key{Map: name, Label: snapshotLabel}, &s); err != nil {
		return snapshot{}, fmt.Errorf("could not load map '%s': %w", name, err)
	}
	if s.Cube == nil {
		return snapshot{}, fmt.Errorf("map '%s' has no weights: %w", name, storage.CouldNotLoadErr)
	}
	// validates the stored cube shape
	cube, err := som.NewCubeFrom(s.Cube.X, s.Cube.Y, s.Cube.D, s.Cube.Weights)
	if err != nil {
		return snapshot{}, fmt.Errorf("map '%s' is corrupt: %w", name, err)
	}
	s.Cube = cube
	return s, nil
}
