package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/bruh/internal/bruh"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.NRGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#ff8040" {
		t.Errorf("Hex: got %s, want #ff8040", result.Hex)
	}
	if result.Token != "ff8040" {
		t.Errorf("Token: got %s, want ff8040", result.Token)
	}
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.NRGBA
		wantHex string
		wantHue int
		wantL   int
	}{
		{"pure red", color.NRGBA{255, 0, 0, 255}, "#ff0000", 0, 50},
		{"pure green", color.NRGBA{0, 255, 0, 255}, "#00ff00", 120, 50},
		{"pure blue", color.NRGBA{0, 0, 255, 255}, "#0000ff", 240, 50},
		{"white", color.NRGBA{255, 255, 255, 255}, "#ffffff", 0, 100},
		{"black", color.NRGBA{0, 0, 0, 255}, "#000000", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL.H != tt.wantHue {
				t.Errorf("Hue: got %d, want %d", result.HSL.H, tt.wantHue)
			}
			if result.HSL.L != tt.wantL {
				t.Errorf("Lightness: got %d, want %d", result.HSL.L, tt.wantL)
			}
		})
	}
}

func TestSampleColor_IgnoresAlpha(t *testing.T) {
	img := createInMemoryImage(2, 2, color.NRGBA{255, 0, 0, 128})

	result, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Token != "ff0000" {
		t.Errorf("Token: got %s, want ff0000", result.Token)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.White)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Errorf("SampleColor(%d,%d) should fail", tt.x, tt.y)
			}
		})
	}
}

func TestSampleColor_DecodedDocument(t *testing.T) {
	raw := bruh.NewRawImage(2, 1)
	raw.Set(1, 0, 0x12, 0x34, 0x56)
	doc, _ := bruh.Encode(raw)
	decoded, err := bruh.Decode(doc)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	result, err := SampleColor(ToImage(decoded), 1, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Token != "123456" {
		t.Errorf("Token: got %s, want 123456", result.Token)
	}
}

func TestAverageColor(t *testing.T) {
	img := createPatternImage(2, 2)

	avg := AverageColor(img)
	if avg == nil {
		t.Fatal("AverageColor returned nil")
	}
	// red + green + blue + white = (510, 510, 510) / 4
	if avg.RGB.R != 128 || avg.RGB.G != 128 || avg.RGB.B != 128 {
		t.Errorf("RGB: got (%d,%d,%d), want (128,128,128)", avg.RGB.R, avg.RGB.G, avg.RGB.B)
	}
}

func TestAverageColor_Empty(t *testing.T) {
	if avg := AverageColor(image.NewNRGBA(image.Rect(0, 0, 0, 0))); avg != nil {
		t.Errorf("AverageColor of empty image: got %+v, want nil", avg)
	}
}
