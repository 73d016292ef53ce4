package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/drakos74/scisom/internal/recall"
)

// loadPNG reads a png file into a row-major image, one row per pixel line.
func loadPNG(path string) (*recall.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image '%s': %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image '%s': %w", path, err)
	}
	return fromImage(img)
}

func fromImage(img image.Image) (*recall.Image, error) {
	b := img.Bounds()
	pixels := make([]recall.Color, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, recall.Color{c.R, c.G, c.B})
		}
	}
	return recall.NewImage(b.Dy(), b.Dx(), pixels)
}
