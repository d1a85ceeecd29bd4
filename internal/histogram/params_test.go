package histogram

import (
	"errors"
	"testing"

	"github.com/patchvision/histogram-tools/internal/imaging"
)

func TestCheckParams_Valid(t *testing.T) {
	px := imaging.NewPixels(4, 4, 3)

	tests := []struct {
		name     string
		channels []int
		bins     []int
		ranges   []float64
		mask     imaging.Mask
	}{
		{"all channels", []int{0, 1, 2}, []int{25, 25, 25}, []float64{0, 256, 0, 256, 0, 256}, nil},
		{"single channel", []int{1}, []int{256}, []float64{0, 256}, nil},
		{"two channels", []int{0, 2}, []int{8, 8}, []float64{0, 128, 128, 256}, nil},
		{"with mask", []int{0}, []int{16}, []float64{0, 256}, imaging.NewMask(4, 4)},
		{"defaults", DefaultChannels(), DefaultBins(), DefaultRanges(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CheckParams(px, tt.channels, tt.bins, tt.ranges, tt.mask); err != nil {
				t.Errorf("CheckParams() = %v, want nil", err)
			}
		})
	}
}

func TestCheckParams_Invalid(t *testing.T) {
	px := imaging.NewPixels(4, 4, 3)

	tests := []struct {
		name     string
		channels []int
		bins     []int
		ranges   []float64
		mask     imaging.Mask
	}{
		{"channel beyond image", []int{0, 3}, []int{8, 8}, []float64{0, 256, 0, 256}, nil},
		{"negative channel", []int{-1}, []int{2}, []float64{0, 256}, nil},
		{"negative channel among valid", []int{0, -2, 1}, []int{8, 8, 8}, []float64{0, 256, 0, 256, 0, 256}, nil},
		{"no channels", []int{}, []int{}, []float64{}, nil},
		{"bins count mismatch", []int{0, 1}, []int{8}, []float64{0, 256, 0, 256}, nil},
		{"ranges too short", []int{0, 1}, []int{8, 8}, []float64{0, 256}, nil},
		{"ranges too long", []int{0}, []int{8}, []float64{0, 256, 0, 256}, nil},
		{"mask height mismatch", []int{0}, []int{8}, []float64{0, 256}, imaging.NewMask(3, 4)},
		{"mask width mismatch", []int{0}, []int{8}, []float64{0, 256}, imaging.NewMask(4, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckParams(px, tt.channels, tt.bins, tt.ranges, tt.mask)
			if err == nil {
				t.Fatal("CheckParams() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error %v does not wrap ErrInvalidArgument", err)
			}
		})
	}
}

func TestDefaults_FreshPerCall(t *testing.T) {
	// Each call must hand out an independent slice so one caller's
	// mutation cannot leak into the next call's defaults.
	a := DefaultBins()
	a[0] = 999
	if b := DefaultBins(); b[0] != 25 {
		t.Errorf("DefaultBins()[0] after mutation = %d, want 25", b[0])
	}

	c := DefaultChannels()
	c[0] = 7
	if d := DefaultChannels(); d[0] != 0 {
		t.Errorf("DefaultChannels()[0] after mutation = %d, want 0", d[0])
	}

	r := DefaultRanges()
	r[1] = -1
	if s := DefaultRanges(); s[1] != 256 {
		t.Errorf("DefaultRanges()[1] after mutation = %v, want 256", s[1])
	}
}
