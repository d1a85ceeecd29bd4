package gradient

import "math"

// Field holds the per-pixel gradient estimate of a single channel.
// Both planes have the channel's height and width.
type Field struct {
	// Orientation is the gradient direction in radians, in (-π, π],
	// with 0 pointing along increasing X and π/2 along increasing Y.
	Orientation [][]float64

	// Magnitude is the non-negative gradient strength.
	Magnitude [][]float64
}

// Compute estimates the gradient field of one channel plane.
//
// The X and Y derivatives come from separable correlation with a
// Gaussian kernel along one axis and its derivative along the other,
// both parameterized by sigma; larger sigma smooths more before
// differentiating. The derivative kernel is scaled so a unit intensity
// ramp reports magnitude 1. Border pixels use clamped (replicated) edge
// values.
//
// Orientation is atan2(dy, dx) and magnitude is hypot(dx, dy).
func Compute(plane [][]float64, sigma float64) Field {
	smooth := gaussianKernel(sigma)
	deriv := gaussianDerivKernel(sigma)

	// d/dx: derivative across columns, smoothing down rows (and the
	// transpose for d/dy).
	dx := separable(plane, deriv, smooth)
	dy := separable(plane, smooth, deriv)

	height := len(plane)
	width := 0
	if height > 0 {
		width = len(plane[0])
	}

	f := Field{
		Orientation: make([][]float64, height),
		Magnitude:   make([][]float64, height),
	}
	for y := 0; y < height; y++ {
		f.Orientation[y] = make([]float64, width)
		f.Magnitude[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			f.Orientation[y][x] = math.Atan2(dy[y][x], dx[y][x])
			f.Magnitude[y][x] = math.Hypot(dx[y][x], dy[y][x])
		}
	}
	return f
}

// MaxMagnitude returns the largest magnitude in the field, or 0 for an
// empty field.
func (f Field) MaxMagnitude() float64 {
	var max float64
	for _, row := range f.Magnitude {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// gaussianKernel samples a 1-D Gaussian out to 3 sigma and normalizes it
// to unit sum.
func gaussianKernel(sigma float64) []float64 {
	radius := kernelRadius(sigma)
	k := make([]float64, 2*radius+1)
	var sum float64
	for i := range k {
		d := float64(i - radius)
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// gaussianDerivKernel samples the first derivative of a Gaussian,
// arranged for correlation (positive taps on the positive-offset side)
// and scaled so the response to a slope-1 ramp is exactly 1.
func gaussianDerivKernel(sigma float64) []float64 {
	radius := kernelRadius(sigma)
	k := make([]float64, 2*radius+1)
	var ramp float64
	for i := range k {
		d := float64(i - radius)
		k[i] = d * math.Exp(-d*d/(2*sigma*sigma))
		ramp += d * k[i]
	}
	for i := range k {
		k[i] /= ramp
	}
	return k
}

func kernelRadius(sigma float64) int {
	radius := int(3*sigma + 0.5)
	if radius < 1 {
		radius = 1
	}
	return radius
}

// separable correlates the plane with kx across columns and ky down
// rows. Border pixels replicate the nearest edge value.
func separable(plane [][]float64, kx, ky []float64) [][]float64 {
	height := len(plane)
	if height == 0 {
		return nil
	}
	width := len(plane[0])
	rx := len(kx) / 2
	ry := len(ky) / 2

	rows := make([][]float64, height)
	for y := 0; y < height; y++ {
		rows[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for i, w := range kx {
				px := clamp(x+i-rx, 0, width-1)
				sum += plane[y][px] * w
			}
			rows[y][x] = sum
		}
	}

	out := make([][]float64, height)
	for y := 0; y < height; y++ {
		out[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for i, w := range ky {
				py := clamp(y+i-ry, 0, height-1)
				sum += rows[py][x] * w
			}
			out[y][x] = sum
		}
	}
	return out
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in the correlation loops.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
