package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Image is an unclamped floating point frame stored row-major
type Image struct {
	Width  int
	Height int
	Pix    []core.Vec3
}

// NewImage creates an image with every pixel set to white, so any pixel a
// render leaves untouched stands out.
func NewImage(width, height int) *Image {
	pix := make([]core.Vec3, width*height)
	for i := range pix {
		pix[i] = core.White
	}
	return &Image{Width: width, Height: height, Pix: pix}
}

// At returns the colour of pixel (x, y)
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pix[y*img.Width+x]
}

// Set stores the colour of pixel (x, y)
func (img *Image) Set(x, y int, c core.Vec3) {
	img.Pix[y*img.Width+x] = c
}

// Max returns the largest channel value in the image, or 0 for an empty or
// all-black image.
func (img *Image) Max() float64 {
	var m float64
	for _, c := range img.Pix {
		m = max(m, c.MaxComponent())
	}
	return m
}
