// Package imaging supplies the pixel containers the histogram and
// gradient packages operate on.
//
// The central type is Pixels, a dense (row, column, channel) cube of
// 8-bit samples built from any standard image.Image. Color cubes always
// carry three channels in R, G, B order. Masks follow the usual vision
// convention: nonzero includes a pixel, zero excludes it, and a nil mask
// includes everything.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left:
//   - Y: row, increasing downward (0 = top row)
//   - X: column, increasing rightward (0 = leftmost column)
//   - For regions, (x1,y1) is inclusive and (x2,y2) is exclusive
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Pixels and Mask values are plain
// data with no internal locking; the analysis packages never mutate a
// caller-supplied cube (functions that need scratch space work on a
// Clone), so sharing a cube across goroutines for reads is safe.
//
// # Memory
//
// For repeated operations on the same file, use ImageCache to avoid
// redundant disk reads. Cached images stay in memory until Evict() or
// Clear(); long-running processes should clean up between batches.
package imaging
