package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/bruh/internal/bruh"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex   string   `json:"hex"`   // "#rrggbb"
	Token string   `json:"token"` // The BRUH token for this color
	RGB   RGBColor `json:"rgb"`
	HSL   HSLColor `json:"hsl"`
}

// newColorResult builds every representation of an 8-bit RGB color.
func newColorResult(r, g, b uint8) ColorResult {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return ColorResult{
		Hex:   c.Hex(),
		Token: string(bruh.AppendToken(nil, r, g, b)),
		RGB:   RGBColor{R: r, G: g, B: b},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}

// straightRGB returns the non-premultiplied 8-bit channels of c.
func straightRGB(c color.Color) (r, g, b uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based with origin at the top-left corner. Alpha is
// ignored, matching what the BRUH encoder keeps.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if x < 0 || y < 0 || px >= bounds.Max.X || py >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}

	result := newColorResult(straightRGB(img.At(px, py)))
	return &result, nil
}

// AverageColor returns the mean color of all pixels in img, or nil for an
// empty image.
func AverageColor(img image.Image) *ColorResult {
	bounds := img.Bounds()
	n := uint64(bounds.Dx()) * uint64(bounds.Dy())
	if n == 0 {
		return nil
	}

	var sr, sg, sb uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := straightRGB(img.At(x, y))
			sr += uint64(r)
			sg += uint64(g)
			sb += uint64(b)
		}
	}

	result := newColorResult(uint8((sr+n/2)/n), uint8((sg+n/2)/n), uint8((sb+n/2)/n))
	return &result
}
