package histogram

import "errors"

// Sentinel errors returned by this package. Wrapped errors carry the
// offending values; match with errors.Is.
var (
	// ErrInvalidArgument indicates malformed histogram request
	// parameters: channel/bin/range counts that disagree, a channel
	// index beyond the image's channels, or a mask whose shape differs
	// from the image's.
	ErrInvalidArgument = errors.New("invalid histogram parameters")

	// ErrShapeMismatch indicates two histograms of different length
	// where equal length is required.
	ErrShapeMismatch = errors.New("histogram shape mismatch")

	// ErrUnknownMethod indicates a comparison-method name that is not
	// one of the supported four.
	ErrUnknownMethod = errors.New("unknown comparison method")
)
