package histogram

import (
	"fmt"

	"github.com/patchvision/histogram-tools/internal/imaging"
)

// Default histogram request parameters: a joint histogram over all three
// color channels with 25 bins per channel spanning the full 8-bit range.
//
// Each function returns a freshly allocated slice so callers can modify
// the result without poisoning later calls.

// DefaultChannels returns the default channel selection (all three).
func DefaultChannels() []int {
	return []int{0, 1, 2}
}

// DefaultBins returns the default per-channel bin counts.
func DefaultBins() []int {
	return []int{25, 25, 25}
}

// DefaultRanges returns the default per-channel value ranges, [0,256)
// for each channel.
func DefaultRanges() []float64 {
	return []float64{0, 256, 0, 256, 0, 256}
}

// CheckParams confirms that a histogram request is structurally
// consistent with the image it targets, before any computation runs.
//
// The request is valid when:
//   - at least one channel is requested and every requested channel
//     index is non-negative and within the image's channel count
//   - channels and bins have the same length
//   - ranges holds exactly two bounds per requested channel
//   - the mask, if supplied, has exactly the image's height and width
//
// Any violation returns an error wrapping ErrInvalidArgument. The check
// has no side effects.
func CheckParams(px *imaging.Pixels, channels, bins []int, ranges []float64, mask imaging.Mask) error {
	if len(channels) == 0 {
		return fmt.Errorf("%w: no channels requested", ErrInvalidArgument)
	}
	maxChannel := channels[0]
	for _, c := range channels {
		if c < 0 {
			return fmt.Errorf("%w: negative channel index (%d)", ErrInvalidArgument, c)
		}
		if c > maxChannel {
			maxChannel = c
		}
	}
	if maxChannel > px.Channels-1 {
		return fmt.Errorf("%w: max channel requested (%d) is larger than channels in image (%d)",
			ErrInvalidArgument, maxChannel, px.Channels)
	}
	if len(channels) != len(bins) {
		return fmt.Errorf("%w: length of channels (%d) does not equal length of bins (%d)",
			ErrInvalidArgument, len(channels), len(bins))
	}
	if 2*len(channels) != len(ranges) {
		return fmt.Errorf("%w: size of ranges (%d) is not the appropriate size (%d)",
			ErrInvalidArgument, len(ranges), 2*len(channels))
	}
	if mask != nil {
		if mask.Rows() != px.Height || mask.Cols() != px.Width {
			return fmt.Errorf("%w: shape of mask (%dx%d) is not the same shape as image (%dx%d)",
				ErrInvalidArgument, mask.Rows(), mask.Cols(), px.Height, px.Width)
		}
	}
	return nil
}
