// Package render draws histograms as bar-chart images for quick visual
// inspection. Output is illustrative; nothing downstream parses it.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/patchvision/histogram-tools/internal/histogram"
)

// Bars renders a histogram as a bar chart of the given pixel dimensions.
//
// Bins are mapped left to right across the chart width; when there are
// more bins than columns, each column shows the tallest bin it covers so
// narrow charts of large histograms still show their peaks. Bar heights
// are scaled to the largest bin value, and bars are colored along a hue
// ramp from red (first bin) to blue (last bin).
//
// Degenerate input (an empty histogram, or one whose values are all zero
// or NaN) renders as a blank chart.
func Bars(h histogram.Histogram, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	var max float64
	for _, v := range h {
		if !math.IsNaN(v) && v > max {
			max = v
		}
	}
	if len(h) == 0 || max == 0 {
		return img
	}

	for x := 0; x < width; x++ {
		lo := x * len(h) / width
		hi := (x + 1) * len(h) / width
		if hi <= lo {
			hi = lo + 1
		}

		var v float64
		for bin := lo; bin < hi && bin < len(h); bin++ {
			if !math.IsNaN(h[bin]) && h[bin] > v {
				v = h[bin]
			}
		}

		hue := 240 * float64(lo) / float64(len(h)) // red through blue
		r, g, b := colorful.Hsv(hue, 0.85, 0.85).RGB255()
		bar := color.RGBA{R: r, G: g, B: b, A: 255}

		barHeight := int(v / max * float64(height))
		for y := height - barHeight; y < height; y++ {
			img.SetRGBA(x, y, bar)
		}
	}
	return img
}

// Save renders the histogram with Bars and writes it to path as a PNG.
func Save(path string, h histogram.Histogram, width, height int) error {
	img := Bars(h, width, height)
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save histogram chart: %w", err)
	}
	return nil
}
