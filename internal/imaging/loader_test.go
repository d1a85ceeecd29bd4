package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// createTestImage writes a uniform test image into t's temp dir and
// returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.images == nil {
		t.Fatal("NewImageCache did not initialize images map")
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 100, 100, color.RGBA{255, 0, 0, 255})

	// First load
	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img1 == nil {
		t.Fatal("Load returned nil image")
	}

	bounds := img1.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x100", bounds.Dx(), bounds.Dy())
	}

	// Second load should return cached image
	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
}

func TestImageCache_Load_NonExistent(t *testing.T) {
	cache := NewImageCache()
	_, err := cache.Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestImageCache_Load_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	cache := NewImageCache()
	if _, err := cache.Load(path); err == nil {
		t.Error("Load should fail for a non-image file")
	}
}

func TestImageCache_Evict(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 10, 10, color.RGBA{0, 255, 0, 255})

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(imgPath)

	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if img1 == img2 {
		t.Error("Load after Evict returned the evicted instance")
	}

	// Evicting an unknown path is a no-op.
	cache.Evict("/never/loaded.png")
}

func TestImageCache_Clear(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 10, 10, color.RGBA{0, 0, 255, 255})

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Clear()

	cache.mu.RLock()
	n := len(cache.images)
	cache.mu.RUnlock()
	if n != 0 {
		t.Errorf("cache holds %d images after Clear, want 0", n)
	}
}

func TestImageCache_LoadPixels(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 8, 6, color.RGBA{10, 20, 30, 255})

	px, err := cache.LoadPixels(imgPath)
	if err != nil {
		t.Fatalf("LoadPixels failed: %v", err)
	}

	if px.Height != 6 || px.Width != 8 || px.Channels != 3 {
		t.Fatalf("dimensions: got %dx%dx%d, want 6x8x3", px.Height, px.Width, px.Channels)
	}
	if px.At(3, 3, 0) != 10 || px.At(3, 3, 1) != 20 || px.At(3, 3, 2) != 30 {
		t.Errorf("sample = (%d,%d,%d), want (10,20,30)",
			px.At(3, 3, 0), px.At(3, 3, 1), px.At(3, 3, 2))
	}

	// Each call builds a fresh cube.
	px2, err := cache.LoadPixels(imgPath)
	if err != nil {
		t.Fatalf("second LoadPixels failed: %v", err)
	}
	px2.Set(0, 0, 0, 200)
	if px.At(0, 0, 0) == 200 {
		t.Error("LoadPixels returned a shared cube")
	}
}

func TestImageCache_ConcurrentLoad(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 20, 20, color.RGBA{128, 128, 128, 255})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(imgPath); err != nil {
				t.Errorf("concurrent Load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}
