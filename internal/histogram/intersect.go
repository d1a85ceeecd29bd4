package histogram

import "fmt"

// WeightedIntersection scores the similarity of two histograms while
// accounting for the pixel count (or any other weight) of the region
// each histogram summarizes.
//
// Only bins where BOTH histograms have strictly positive mass
// contribute: each side's masked mass is summed, weighted by its own
// region size, and the two weighted sums are divided by the combined
// size:
//
//	score = (aSize*sum(a over joint support) + bSize*sum(b over joint support)) / (aSize + bSize)
//
// The score grows with the share of each histogram's mass lying in
// jointly populated bins. It is NOT bounded to [0,1] in general: the
// interpretation depends on how each histogram was normalized. Callers
// that L1-normalize both histograms first get a score in [0,1], with 1
// meaning every bin populated on one side is populated on the other.
//
// Histograms of different length return an error wrapping
// ErrShapeMismatch.
func WeightedIntersection(a Histogram, aSize float64, b Histogram, bSize float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: histogram A (len:%d) and histogram B (len:%d) are not the same size",
			ErrShapeMismatch, len(a), len(b))
	}

	var massA, massB float64
	for i := range a {
		if a[i] > 0 && b[i] > 0 {
			massA += a[i]
			massB += b[i]
		}
	}
	return (aSize*massA + bSize*massB) / (aSize + bSize), nil
}
