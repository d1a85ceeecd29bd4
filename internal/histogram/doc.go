// Package histogram computes and compares color histograms over pixel
// cubes.
//
// The package offers four independent operations:
//   - Compute / ComputeNormalized build (optionally L1-normalized)
//     multi-channel count histograms with caller-supplied channel, bin,
//     range and mask parameters.
//   - RGBHistograms builds three independent 256-bin single-channel
//     histograms, one per color channel.
//   - Compare evaluates a named statistical distance (correlation,
//     chi-squared, intersection, Bhattacharyya) between two histograms.
//   - WeightedIntersection scores two histograms by their joint-support
//     mass, weighted by the pixel count of the region each summarizes.
//
// # Error Handling
//
// Failures are classified by three sentinel errors, matched with
// errors.Is:
//   - ErrInvalidArgument: malformed channel/bin/range/mask parameters,
//     detected before any computation starts
//   - ErrShapeMismatch: two histograms of different length passed to
//     WeightedIntersection
//   - ErrUnknownMethod: an unrecognized comparison-method name
//
// Compare does not validate that its two histograms have equal length;
// extra bins on the longer side are ignored. Callers comparing
// histograms from different parameter sets get a well-defined but
// meaningless number.
package histogram
