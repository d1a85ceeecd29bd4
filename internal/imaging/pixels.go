package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Pixels is a dense height x width x channels cube of 8-bit samples.
//
// The layout is row-major with interleaved channels, matching the
// (row, column, channel) axis order used throughout this module. Color
// images always carry three channels in R, G, B order; a single-channel
// cube represents a grayscale plane.
//
// A Pixels value is treated as immutable by every analysis function in
// this module: operations that need to modify samples work on a Clone.
type Pixels struct {
	Height   int
	Width    int
	Channels int

	data []uint8
}

// NewPixels allocates a zeroed cube with the given dimensions.
func NewPixels(height, width, channels int) *Pixels {
	return &Pixels{
		Height:   height,
		Width:    width,
		Channels: channels,
		data:     make([]uint8, height*width*channels),
	}
}

// FromImage converts any image.Image into a three-channel RGB cube.
//
// Samples are reduced from Go's native 16-bit color representation to
// 8 bits per channel. Alpha is discarded; callers that care about
// transparency should flatten the image before conversion.
func FromImage(img image.Image) *Pixels {
	bounds := img.Bounds()
	p := NewPixels(bounds.Dy(), bounds.Dx(), 3)

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			i := p.offset(y, x, 0)
			p.data[i] = uint8(r >> 8)
			p.data[i+1] = uint8(g >> 8)
			p.data[i+2] = uint8(b >> 8)
		}
	}
	return p
}

// FromRegion crops a rectangular patch out of an image and converts it
// to an RGB cube. (x1,y1) is the inclusive top-left corner, (x2,y2) the
// exclusive bottom-right corner.
//
// Returns an error if the region is empty or falls outside the image
// bounds.
func FromRegion(img image.Image, x1, y1, x2, y2 int) (*Pixels, error) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}

	patch := imaging.Crop(img, image.Rect(x1, y1, x2, y2))
	return FromImage(patch), nil
}

// At returns the sample at row y, column x, channel c.
func (p *Pixels) At(y, x, c int) uint8 {
	return p.data[p.offset(y, x, c)]
}

// Set stores a sample at row y, column x, channel c.
func (p *Pixels) Set(y, x, c int, v uint8) {
	p.data[p.offset(y, x, c)] = v
}

// Clone returns a deep copy of the cube.
func (p *Pixels) Clone() *Pixels {
	out := &Pixels{
		Height:   p.Height,
		Width:    p.Width,
		Channels: p.Channels,
		data:     make([]uint8, len(p.data)),
	}
	copy(out.data, p.data)
	return out
}

// Channel extracts one channel as a float64 plane, the form the gradient
// operator consumes. The plane is freshly allocated and independent of
// the cube.
func (p *Pixels) Channel(c int) [][]float64 {
	plane := make([][]float64, p.Height)
	for y := 0; y < p.Height; y++ {
		plane[y] = make([]float64, p.Width)
		for x := 0; x < p.Width; x++ {
			plane[y][x] = float64(p.At(y, x, c))
		}
	}
	return plane
}

// ApplyMask zeroes every sample, in all channels, whose pixel the mask
// excludes. It mutates the receiver; analysis functions call it on a
// Clone so caller-supplied cubes are never modified.
func (p *Pixels) ApplyMask(m Mask) {
	if m == nil {
		return
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if m[y][x] != 0 {
				continue
			}
			for c := 0; c < p.Channels; c++ {
				p.Set(y, x, c, 0)
			}
		}
	}
}

func (p *Pixels) offset(y, x, c int) int {
	return (y*p.Width+x)*p.Channels + c
}

// Mask restricts which pixels participate in a computation. It follows
// the usual vision-library convention: a pixel is included when its mask
// value is nonzero, excluded when zero. A nil Mask includes every pixel.
//
// A valid mask has exactly the image's height and width.
type Mask [][]uint8

// NewMask allocates an all-excluded mask of the given dimensions.
func NewMask(height, width int) Mask {
	m := make(Mask, height)
	for y := range m {
		m[y] = make([]uint8, width)
	}
	return m
}

// Rows returns the mask height.
func (m Mask) Rows() int {
	return len(m)
}

// Cols returns the mask width, or 0 for an empty mask.
func (m Mask) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Includes reports whether the pixel at row y, column x participates.
// A nil mask includes everything.
func (m Mask) Includes(y, x int) bool {
	if m == nil {
		return true
	}
	return m[y][x] != 0
}
