// Package gradient derives gradient fields from image channels and
// summarizes them as orientation histograms.
//
// Compute estimates per-pixel gradient orientation and magnitude for a
// single channel using Gaussian-smoothed derivative filters at a
// caller-chosen scale. Descriptor runs that estimate over every channel
// of a color patch and buckets the orientations, thresholded by
// magnitude, into a fixed number of angular bins, yielding one flat
// L1-normalized vector per patch (a simplified HoG-style descriptor).
//
// All functions are pure: input cubes and planes are never mutated
// (Descriptor works on a defensive copy when it applies a mask).
package gradient
