// Package output turns rendered frames into 8-bit images and files.
package output

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/lucasb-eyer/go-colorful"
)

// Encoding selects how normalised linear values become 8-bit channels
type Encoding int

const (
	// Linear scales so the brightest channel in the frame maps to 256,
	// truncates and clamps to 255.
	Linear Encoding = iota
	// SRGB applies the sRGB transfer curve to the normalised values.
	SRGB
)

func (e Encoding) String() string {
	switch e {
	case Linear:
		return "linear"
	case SRGB:
		return "srgb"
	default:
		return "unknown"
	}
}

// ParseEncoding returns the encoding named s
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "linear", "":
		return Linear, nil
	case "srgb":
		return SRGB, nil
	default:
		return Linear, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
}

// ToneMap converts a floating point frame to 8 bits per channel, scaled by
// the single largest channel value in the frame. An all-black frame stays
// black.
func ToneMap(img *renderer.Image, encoding Encoding) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	peak := img.Max()

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.SetRGBA(x, y, encodePixel(img.At(x, y), peak, encoding))
		}
	}
	return out
}

func encodePixel(c core.Vec3, peak float64, encoding Encoding) color.RGBA {
	if peak <= 0 {
		return color.RGBA{A: 255}
	}

	if encoding == SRGB {
		r, g, b := colorful.LinearRgb(c.X/peak, c.Y/peak, c.Z/peak).Clamped().RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}
	}

	div := peak / 256
	return color.RGBA{R: channel(c.X / div), G: channel(c.Y / div), B: channel(c.Z / div), A: 255}
}

func channel(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v <= 0:
		return 0
	default:
		return uint8(v)
	}
}
