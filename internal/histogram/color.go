package histogram

import (
	"math"

	"github.com/patchvision/histogram-tools/internal/imaging"
)

// Histogram is a flat array of non-negative bin values. A raw histogram
// holds counts and sums to the number of pixels considered; a normalized
// histogram sums to 1.
//
// Multi-channel histograms are stored flattened in row-major order over
// the requested channels' bin axes: with bins [b0, b1, b2], the cell for
// per-channel bin indices (i0, i1, i2) lives at (i0*b1+i1)*b2+i2.
type Histogram []float64

// Sum returns the total of all bin values.
func (h Histogram) Sum() float64 {
	var s float64
	for _, v := range h {
		s += v
	}
	return s
}

// L1Norm returns the sum of absolute bin values.
func (h Histogram) L1Norm() float64 {
	var s float64
	for _, v := range h {
		s += math.Abs(v)
	}
	return s
}

// Normalized returns a copy of h scaled so its L1 norm is 1. A zero-sum
// histogram divides by zero and yields all-NaN bins; callers that cannot
// rule this out should check L1Norm first.
func (h Histogram) Normalized() Histogram {
	norm := h.L1Norm()
	out := make(Histogram, len(h))
	for i, v := range h {
		out[i] = v / norm
	}
	return out
}

// Compute builds a raw (unnormalized) multi-channel count histogram.
//
// For every pixel the mask includes, the sample of each requested channel
// is bucketed into its channel's bins across [low, high); a pixel whose
// sample falls outside any requested channel's range is skipped entirely.
// The result is the joint histogram over all requested channels,
// flattened as documented on Histogram, with each counted pixel
// contributing exactly one increment.
//
// A nil mask includes every pixel. Parameters are validated with
// CheckParams first; the image is never modified.
func Compute(px *imaging.Pixels, channels, bins []int, ranges []float64, mask imaging.Mask) (Histogram, error) {
	if err := CheckParams(px, channels, bins, ranges, mask); err != nil {
		return nil, err
	}

	total := 1
	for _, b := range bins {
		total *= b
	}
	h := make(Histogram, total)

	for y := 0; y < px.Height; y++ {
		for x := 0; x < px.Width; x++ {
			if !mask.Includes(y, x) {
				continue
			}
			idx := 0
			counted := true
			for i, c := range channels {
				v := float64(px.At(y, x, c))
				low, high := ranges[2*i], ranges[2*i+1]
				if v < low || v >= high {
					counted = false
					break
				}
				bin := int((v - low) * float64(bins[i]) / (high - low))
				if bin >= bins[i] {
					// Guard against float rounding at the upper bound.
					bin = bins[i] - 1
				}
				idx = idx*bins[i] + bin
			}
			if counted {
				h[idx]++
			}
		}
	}
	return h, nil
}

// ComputeNormalized builds the same histogram as Compute and divides
// every bin by the histogram's L1 norm, so the bins sum to 1.
//
// If no pixel was counted the division is 0/0 and every bin comes back
// NaN; the caller must guard against empty selections (a fully masked
// image, or ranges excluding every sample) if that matters.
func ComputeNormalized(px *imaging.Pixels, channels, bins []int, ranges []float64, mask imaging.Mask) (Histogram, error) {
	h, err := Compute(px, channels, bins, ranges, mask)
	if err != nil {
		return nil, err
	}
	return h.Normalized(), nil
}

// RGBHistograms computes three independent single-channel normalized
// histograms, one per color channel, each with 256 bins over the full
// [0,256) range. The histograms are returned in R, G, B order.
func RGBHistograms(px *imaging.Pixels, mask imaging.Mask) (r, g, b Histogram, err error) {
	var hists [3]Histogram
	for i := 0; i < 3; i++ {
		hists[i], err = ComputeNormalized(px, []int{i}, []int{256}, []float64{0, 256}, mask)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return hists[0], hists[1], hists[2], nil
}
