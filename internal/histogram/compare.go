package histogram

import (
	"fmt"
	"math"
)

// Method selects one of the supported histogram comparison formulas.
type Method int

// Supported comparison methods. The formulas are the standard ones used
// by OpenCV's compareHist (HISTCMP_CORREL, HISTCMP_CHISQR,
// HISTCMP_INTERSECT, HISTCMP_BHATTACHARYYA).
const (
	// Correlation is the normalized cross-correlation of the bin
	// vectors: higher means more similar, 1 for identical shapes,
	// roughly in [-1, 1].
	Correlation Method = iota

	// ChiSquared sums squared bin differences weighted by the inverse
	// of the first histogram's bin value: lower means more similar, and
	// large differences in low-count bins are penalized heavily.
	ChiSquared

	// Intersection sums the per-bin minimum: higher means more similar,
	// bounded above by min(Sum(a), Sum(b)).
	Intersection

	// Bhattacharyya measures the statistical overlap of the two
	// distributions: lower means more similar, 0 for identical
	// normalized histograms, 1 for disjoint support.
	Bhattacharyya
)

var methodNames = map[string]Method{
	"correlation":   Correlation,
	"chi-squared":   ChiSquared,
	"intersection":  Intersection,
	"bhattacharyya": Bhattacharyya,
}

// String returns the method's wire name, the same name ParseMethod
// accepts.
func (m Method) String() string {
	switch m {
	case Correlation:
		return "correlation"
	case ChiSquared:
		return "chi-squared"
	case Intersection:
		return "intersection"
	case Bhattacharyya:
		return "bhattacharyya"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a comparison-method name to its Method value.
// Unrecognized names return an error wrapping ErrUnknownMethod.
func ParseMethod(name string) (Method, error) {
	m, ok := methodNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return m, nil
}

// Compare evaluates the selected statistical distance between two
// histograms and returns the scalar result.
//
// The two histograms are expected to share one parameterization; that
// precondition is not enforced. When the lengths differ, only the first
// min(len(a), len(b)) bins participate.
//
// An out-of-range Method returns an error wrapping ErrUnknownMethod.
func Compare(a, b Histogram, m Method) (float64, error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	switch m {
	case Correlation:
		return correlation(a[:n], b[:n]), nil
	case ChiSquared:
		return chiSquared(a[:n], b[:n]), nil
	case Intersection:
		return intersection(a[:n], b[:n]), nil
	case Bhattacharyya:
		return bhattacharyya(a[:n], b[:n]), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
}

// CompareByName is Compare with the method given by its wire name.
func CompareByName(a, b Histogram, name string) (float64, error) {
	m, err := ParseMethod(name)
	if err != nil {
		return 0, err
	}
	return Compare(a, b, m)
}

// correlation computes
//
//	d = sum((a-mean(a))*(b-mean(b))) / sqrt(sum((a-mean(a))^2) * sum((b-mean(b))^2))
//
// returning 1 when either histogram has zero variance, matching OpenCV's
// HISTCMP_CORREL guard.
func correlation(a, b Histogram) float64 {
	n := float64(len(a))
	var s1, s2, s11, s22, s12 float64
	for i := range a {
		s1 += a[i]
		s2 += b[i]
		s11 += a[i] * a[i]
		s22 += b[i] * b[i]
		s12 += a[i] * b[i]
	}

	num := s12 - s1*s2/n
	denom2 := (s11 - s1*s1/n) * (s22 - s2*s2/n)
	if math.Abs(denom2) <= dblEpsilon {
		return 1
	}
	return num / math.Sqrt(denom2)
}

// chiSquared computes
//
//	d = sum over bins with a > 0 of (a-b)^2 / a
//
// Bins where the first histogram is (near) zero are skipped, per
// OpenCV's HISTCMP_CHISQR.
func chiSquared(a, b Histogram) float64 {
	var d float64
	for i := range a {
		if math.Abs(a[i]) <= dblEpsilon {
			continue
		}
		diff := a[i] - b[i]
		d += diff * diff / a[i]
	}
	return d
}

// intersection computes d = sum(min(a, b)).
func intersection(a, b Histogram) float64 {
	var d float64
	for i := range a {
		if a[i] < b[i] {
			d += a[i]
		} else {
			d += b[i]
		}
	}
	return d
}

// bhattacharyya computes
//
//	d = sqrt(1 - sum(sqrt(a*b)) / sqrt(sum(a)*sum(b)))
//
// which equals the textbook 1/sqrt(mean(a)*mean(b)*N^2) scaling since
// mean(h)*N = sum(h). The inner expression is clamped at 0 so float
// rounding on identical distributions cannot produce NaN, matching
// OpenCV's HISTCMP_BHATTACHARYYA.
func bhattacharyya(a, b Histogram) float64 {
	var s1, s2, overlap float64
	for i := range a {
		s1 += a[i]
		s2 += b[i]
		overlap += math.Sqrt(a[i] * b[i])
	}

	scale := 1.0
	if math.Abs(s1*s2) > fltEpsilon {
		scale = 1 / math.Sqrt(s1*s2)
	}
	v := 1 - overlap*scale
	if v < 0 {
		v = 0
	}
	return math.Sqrt(v)
}

// Epsilon guards mirroring DBL_EPSILON / FLT_EPSILON in the reference
// formulas.
const (
	dblEpsilon = 2.220446049250313e-16
	fltEpsilon = 1.1920929e-7
)
