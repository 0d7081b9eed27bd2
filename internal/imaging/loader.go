package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/bruh/internal/bruh"
	"github.com/ironsheep/bruh/internal/storage"
)

// ImageCache provides thread-safe caching of loaded images to avoid redundant
// disk reads and decodes.
//
// Paths ending in ".bruh" are decoded with the BRUH codec; any other path is
// decoded as a raster file. Both are cached as image.Image keyed by the exact
// path string.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until removed via Evict() or Clear().
// Writers that replace a file on disk should Evict its path so the next
// Load() sees the new content.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image

	// decoder is used for BRUH documents.
	decoder bruh.Decoder
}

// NewImageCache creates and initializes a new empty image cache.
// strictRows is passed to the BRUH decoder.
func NewImageCache(strictRows bool) *ImageCache {
	return &ImageCache{
		images:  make(map[string]image.Image),
		decoder: bruh.Decoder{StrictRows: strictRows},
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// # Errors
//
//   - Wraps storage.ErrIO if the file cannot be read or the raster cannot be decoded
//   - Wraps a bruh sentinel error if a BRUH document is malformed
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	var img image.Image
	if IsBruhPath(path) {
		data, err := storage.ReadFile(path)
		if err != nil {
			return nil, err
		}
		raw, err := c.decoder.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		img = ToImage(raw)
	} else {
		var err error
		img, err = imaging.Open(path, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to load image %s: %w", storage.ErrIO, path, err)
		}
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// IsBruhPath reports whether path has the BRUH document extension.
func IsBruhPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), bruh.FileExtension)
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "bruh", "png", "jpeg", "gif", "tiff", "bmp", "webp" or "unknown".
	// Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and returns its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat file: %w", storage.ErrIO, err)
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        formatFromExt(path),
		FileSizeBytes: stat.Size(),
	}, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case bruh.FileExtension:
		return "bruh"
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".tif", ".tiff":
		return "tiff"
	case ".bmp":
		return "bmp"
	case ".webp":
		return "webp"
	}
	return "unknown"
}
