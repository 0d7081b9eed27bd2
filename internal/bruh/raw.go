package bruh

import "fmt"

// RawImage is a packed row-major RGB pixel buffer.
type RawImage struct {
	Width  uint32
	Height uint32

	// Pix holds 3 bytes (R, G, B) per pixel with no row padding.
	Pix []uint8
}

// NewRawImage allocates a zeroed RGB image.
func NewRawImage(width, height uint32) *RawImage {
	return &RawImage{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*uint64(width)*uint64(height)),
	}
}

// Header returns the dimensions of img as a BRUH header.
func (img *RawImage) Header() Header {
	return Header{Width: img.Width, Height: img.Height}
}

// At returns the channels of the pixel at (x, y).
func (img *RawImage) At(x, y int) (r, g, b uint8) {
	i := 3 * (y*int(img.Width) + x)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

// Set stores the channels of the pixel at (x, y).
func (img *RawImage) Set(x, y int, r, g, b uint8) {
	i := 3 * (y*int(img.Width) + x)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
}

// RawImageRGBA is a packed row-major RGBA pixel buffer.
type RawImageRGBA struct {
	Width  uint32
	Height uint32

	// Pix holds 4 bytes (R, G, B, A) per pixel with no row padding.
	Pix []uint8
}

// Header returns the dimensions of img as a BRUH header.
func (img *RawImageRGBA) Header() Header {
	return Header{Width: img.Width, Height: img.Height}
}

// At returns the channels of the pixel at (x, y).
func (img *RawImageRGBA) At(x, y int) (r, g, b, a uint8) {
	i := 4 * (y*int(img.Width) + x)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
}

// RGB returns a copy of img with the alpha channel dropped.
func (img *RawImageRGBA) RGB() *RawImage {
	out := NewRawImage(img.Width, img.Height)
	for i, j := 0, 0; i < len(img.Pix); i, j = i+4, j+3 {
		out.Pix[j], out.Pix[j+1], out.Pix[j+2] = img.Pix[i], img.Pix[i+1], img.Pix[i+2]
	}
	return out
}

var channelNames = [3]string{"red", "green", "blue"}

// RawImageFromChannels builds a RawImage from unbounded integer channel
// values laid out as R, G, B per pixel. Values outside [0,255] are rejected
// rather than truncated.
func RawImageFromChannels(width, height uint32, channels []int) (*RawImage, error) {
	want := 3 * uint64(width) * uint64(height)
	if uint64(len(channels)) != want {
		return nil, fmt.Errorf("%w: got %d channel values, %dx%d needs %d",
			ErrPixelCount, len(channels), width, height, want)
	}

	img := NewRawImage(width, height)
	for i, v := range channels {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: pixel %d %s channel is %d",
				ErrChannelOutOfRange, i/3, channelNames[i%3], v)
		}
		img.Pix[i] = uint8(v)
	}
	return img, nil
}
