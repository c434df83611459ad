package output

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// ContactSheet lays equally sized images out in rows of across, left to
// right then top to bottom. Unused cells of the last row are black.
func ContactSheet(images []image.Image, across int) (image.Image, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if across <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayout, across)
	}

	size := images[0].Bounds().Size()
	for i, img := range images[1:] {
		if img.Bounds().Size() != size {
			return nil, fmt.Errorf("%w: image %d is %v, expected %v", ErrSizeMismatch, i+1, img.Bounds().Size(), size)
		}
	}

	down := (len(images)-1)/across + 1

	dc := gg.NewContext(size.X*across, size.Y*down)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	for i, img := range images {
		dc.DrawImage(img, (i%across)*size.X, (i/across)*size.Y)
	}
	return dc.Image(), nil
}

// SavePNG writes img to path as a PNG file
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("output: saving %s: %w", path, err)
	}
	return nil
}
