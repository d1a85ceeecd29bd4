package gradient

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/patchvision/histogram-tools/internal/imaging"
)

// Options parameterize Descriptor. The zero value of each field falls
// back to its default, so Options{} behaves like DefaultOptions().
type Options struct {
	// Sigma is the Gaussian scale of the gradient estimate. Default 1.
	Sigma float64

	// Bins is the number of equal-width angular bins partitioning
	// [-π, π]. Default 10.
	Bins int

	// Threshold is the magnitude cutoff as a fraction of each channel's
	// maximum magnitude, in (0, 1). Only pixels whose magnitude strictly
	// exceeds threshold*max contribute to the histogram. Default 0.1.
	Threshold float64

	// Mask optionally restricts the patch: excluded pixels are zeroed
	// (in a copy) before gradients are computed. A non-nil mask must
	// have exactly the patch's height and width. Nil keeps every pixel.
	Mask imaging.Mask
}

// DefaultOptions returns the standard descriptor parameters.
func DefaultOptions() Options {
	return Options{Sigma: 1, Bins: 10, Threshold: 0.1}
}

func (o Options) withDefaults() Options {
	if o.Sigma <= 0 {
		o.Sigma = 1
	}
	if o.Bins <= 0 {
		o.Bins = 10
	}
	if o.Threshold <= 0 {
		o.Threshold = 0.1
	}
	return o
}

// Descriptor summarizes the gradient-orientation distribution of an
// image patch as one flat L1-normalized vector of length
// channels*Bins.
//
// Per channel, the patch's gradient field is estimated at scale Sigma
// and a magnitude cutoff of Threshold times that channel's maximum
// magnitude is derived. The orientation range [-π, π] is split into Bins
// equal intervals and each pixel whose magnitude strictly exceeds the
// cutoff is counted into the interval strictly containing its
// orientation. The per-channel counts are concatenated in channel order
// and the whole vector is divided by its L1 norm.
//
// Interval bounds are exclusive on both sides except the final
// interval's upper bound, which is inclusive at +π; an orientation
// landing exactly on an interior boundary is counted in neither
// neighboring bin. This boundary gap is long-standing behavior that
// downstream consumers depend on.
//
// If every count is zero (a flat patch, or a mask excluding everything)
// the degenerate case is logged and the division yields an all-NaN
// vector; callers that need a hard failure should test the result with
// math.IsNaN.
//
// The input cube is never modified; masking happens on a copy. A mask
// whose shape differs from the patch is an error.
func Descriptor(px *imaging.Pixels, opts Options) ([]float32, error) {
	opts = opts.withDefaults()

	im := px
	if opts.Mask != nil {
		if opts.Mask.Rows() != px.Height || opts.Mask.Cols() != px.Width {
			return nil, fmt.Errorf("shape of mask (%dx%d) is not the same shape as patch (%dx%d)",
				opts.Mask.Rows(), opts.Mask.Cols(), px.Height, px.Width)
		}
		im = px.Clone()
		im.ApplyMask(opts.Mask)
	}

	fields := make([]Field, im.Channels)
	cutoffs := make([]float64, im.Channels)
	for c := 0; c < im.Channels; c++ {
		fields[c] = Compute(im.Channel(c), opts.Sigma)
		cutoffs[c] = opts.Threshold * fields[c].MaxMagnitude()
	}

	edges := binEdges(opts.Bins)

	counts := make([]float64, im.Channels*opts.Bins)
	for c := 0; c < im.Channels; c++ {
		f := fields[c]
		for y := 0; y < im.Height; y++ {
			for x := 0; x < im.Width; x++ {
				if f.Magnitude[y][x] <= cutoffs[c] {
					continue
				}
				if bin := binFor(f.Orientation[y][x], edges); bin >= 0 {
					counts[c*opts.Bins+bin]++
				}
			}
		}
	}

	var l1, l2 float64
	for _, v := range counts {
		l1 += math.Abs(v)
		l2 += v * v
	}
	if l2 == 0 {
		log.Warn().
			Int("height", im.Height).
			Int("width", im.Width).
			Int("bins", opts.Bins).
			Msg("gradient descriptor norm is zero; histogram is degenerate")
	}

	desc := make([]float32, len(counts))
	for i, v := range counts {
		desc[i] = float32(v / l1)
	}
	return desc, nil
}

// binEdges partitions [-π, π] into bins equal intervals, returning the
// bins+1 boundaries. The last boundary is pinned to exactly +π so the
// final interval's inclusive upper bound is reliable regardless of how
// the step accumulates.
func binEdges(bins int) []float64 {
	step := 2 * math.Pi / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = -math.Pi + float64(i)*step
	}
	edges[bins] = math.Pi
	return edges
}

// binFor returns the index of the interval strictly containing ori, or
// -1 when ori is counted nowhere. Bounds are exclusive on both sides,
// except the final interval's upper bound which is inclusive at +π: an
// orientation exactly on an interior boundary falls into the gap between
// its two neighbors.
func binFor(ori float64, edges []float64) int {
	last := len(edges) - 2
	for bin := 0; bin <= last; bin++ {
		if ori <= edges[bin] {
			continue
		}
		if ori < edges[bin+1] || (bin == last && ori == edges[bin+1]) {
			return bin
		}
	}
	return -1
}
