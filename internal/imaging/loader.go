package imaging

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of decoded images so repeated
// analyses of the same file avoid redundant disk reads.
//
// Decoded image.Image values are keyed by the exact path string passed to
// Load. Cached images remain in memory until removed via Evict or Clear;
// long-running callers processing many files should clean up periodically.
//
// ImageCache is safe for concurrent use by multiple goroutines.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty cache ready for immediate use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache, reading and decoding it from
// disk on a miss. Decoding honors EXIF orientation, so JPEGs shot on
// rotated cameras arrive upright.
//
// Returns an error if the file cannot be opened or is not a decodable
// image format.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %q: %w", path, err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// LoadPixels loads an image and converts it to a three-channel RGB cube.
// The decoded image.Image is cached; the returned cube is freshly built
// on every call and owned by the caller.
func (c *ImageCache) LoadPixels(path string) (*Pixels, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Evict removes one cached image by its path. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear drops every cached image, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}
