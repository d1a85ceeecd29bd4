package render

import (
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/patchvision/histogram-tools/internal/histogram"
)

func TestBars_Dimensions(t *testing.T) {
	img := Bars(histogram.Histogram{1, 2, 3}, 120, 40)

	b := img.Bounds()
	if b.Dx() != 120 || b.Dy() != 40 {
		t.Errorf("dimensions: got %dx%d, want 120x40", b.Dx(), b.Dy())
	}
}

func TestBars_TallestBinFillsHeight(t *testing.T) {
	h := histogram.Histogram{0.2, 1.0, 0.5, 0}
	img := Bars(h, 40, 20)

	// Columns covering bin 1 are full-height bars; the top-left pixel
	// of bin 1's band must be a bar color, not background.
	c := img.RGBAAt(15, 0)
	if c == (color.RGBA{255, 255, 255, 255}) {
		t.Error("tallest bin did not reach the top row")
	}

	// Bin 3 is empty: its band stays background all the way down.
	if got := img.RGBAAt(35, 19); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("empty bin drew a bar: %v", got)
	}
}

func TestBars_DegenerateInput(t *testing.T) {
	tests := []struct {
		name string
		h    histogram.Histogram
	}{
		{"empty", histogram.Histogram{}},
		{"all zero", histogram.Histogram{0, 0, 0}},
		{"all NaN", histogram.Histogram{math.NaN(), math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Bars(tt.h, 16, 16)
			for y := 0; y < 16; y++ {
				for x := 0; x < 16; x++ {
					if img.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
						t.Fatalf("pixel (%d,%d) drawn on degenerate input", x, y)
					}
				}
			}
		})
	}
}

func TestBars_MoreBinsThanColumns(t *testing.T) {
	// A single spike inside a wide histogram must survive column
	// aggregation.
	h := make(histogram.Histogram, 1000)
	h[500] = 1

	img := Bars(h, 10, 10)

	found := false
	for x := 0; x < 10 && !found; x++ {
		for y := 0; y < 10; y++ {
			if img.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("spike lost when aggregating bins into columns")
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")

	if err := Save(path, histogram.Histogram{1, 3, 2}, 64, 32); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("chart is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 32 {
		t.Errorf("chart dimensions: got %dx%d, want 64x32",
			img.Bounds().Dx(), img.Bounds().Dy())
	}
}
