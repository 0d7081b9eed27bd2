package imaging

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/bruh/internal/bruh"
	"github.com/ironsheep/bruh/internal/storage"
)

// LoadRaw opens a raster image file and returns its pixels as packed RGB.
//
// Parameters:
//   - path: Path to a PNG, JPEG, GIF, TIFF, BMP or WebP file.
//
// Returns:
//   - *bruh.RawImage: Row-major RGB pixels. Alpha, if present, is dropped;
//     the stored (non-premultiplied) color values are kept.
//   - error: Wraps storage.ErrIO if the file cannot be opened or decoded.
//
// EXIF orientation is applied, so the encoded pixels match what an image
// viewer displays.
func LoadRaw(path string) (*bruh.RawImage, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load image %s: %w", storage.ErrIO, path, err)
	}
	return FromImage(img), nil
}

// FromImage converts any image.Image into packed RGB, dropping alpha.
func FromImage(img image.Image) *bruh.RawImage {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	raw := bruh.NewRawImage(uint32(w), uint32(h))
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+4*w]
		out := raw.Pix[3*y*w : 3*(y+1)*w]
		for x := 0; x < w; x++ {
			out[3*x], out[3*x+1], out[3*x+2] = row[4*x], row[4*x+1], row[4*x+2]
		}
	}
	return raw
}

// ToImage wraps decoded RGBA pixels as an *image.NRGBA without copying.
func ToImage(raw *bruh.RawImageRGBA) *image.NRGBA {
	return &image.NRGBA{
		Pix:    raw.Pix,
		Stride: 4 * int(raw.Width),
		Rect:   image.Rect(0, 0, int(raw.Width), int(raw.Height)),
	}
}

// SaveOptions controls how SaveRaw writes a raster.
type SaveOptions struct {
	// Scale is an integer nearest-neighbor upscale factor. Values <= 1 keep
	// the original size.
	Scale int
}

// SaveRaw writes decoded pixels to a raster file.
//
// The raster format is chosen from the file extension (png, jpg/jpeg, gif,
// tif/tiff, bmp). The file is written atomically: on any error the previous
// content of path, if any, is left untouched.
func SaveRaw(raw *bruh.RawImageRGBA, path string, opts SaveOptions) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("unsupported output format %q: %w", filepath.Ext(path), err)
	}
	if raw.Width == 0 || raw.Height == 0 {
		return fmt.Errorf("cannot write empty %dx%d image as %s", raw.Width, raw.Height, strings.ToLower(format.String()))
	}

	var img image.Image = ToImage(raw)
	if opts.Scale > 1 {
		img = transform.Resize(img, int(raw.Width)*opts.Scale, int(raw.Height)*opts.Scale, transform.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return fmt.Errorf("%w: failed to encode %s: %w", storage.ErrIO, path, err)
	}
	return storage.WriteFileAtomic(path, buf.Bytes(), storage.DefaultPerm)
}

// BruhPath returns the conventional document path for a raster path: the
// extension is replaced by ".bruh", or appended when there is none.
func BruhPath(rasterPath string) string {
	ext := filepath.Ext(rasterPath)
	return strings.TrimSuffix(rasterPath, ext) + bruh.FileExtension
}
