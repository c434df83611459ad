package renderer

import (
	"context"
	"image"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// Tile is a rectangular block of pixels rendered by one worker
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid splits the image into row-major tiles of at most
// tileSize x tileSize pixels.
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: len(tiles), Bounds: image.Rect(x0, y0, x1, y1)})
		}
	}

	return tiles
}

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera     *Camera
	integrator integrator.Integrator
	numSamples int
	seed       int64
}

// NewTileRenderer creates a tile renderer taking numSamples samples per pixel
func NewTileRenderer(camera *Camera, integratorInst integrator.Integrator, numSamples int, seed int64) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
		numSamples: numSamples,
		seed:       seed,
	}
}

// RenderTile renders the pixels of tile into img, rows then columns. The
// context is checked once per row.
func (tr *TileRenderer) RenderTile(ctx context.Context, tile *Tile, img *Image, random *rand.Rand, stats *WorkerStats) error {
	bounds := tile.Bounds
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := tr.SamplePixel(x, y, random, &stats.Trace)
			img.Set(x, y, ps.GetColor())

			stats.Pixels++
			stats.Samples += ps.SampleCount
			stats.NoiseSum += ps.StdError()
		}
	}
	stats.Tiles++
	return nil
}

// SamplePixel averages the integrator's colour over the camera's sample rays
// for pixel (x, y). random is reseeded from the pixel coordinates, so the
// result does not depend on which worker renders the pixel.
func (tr *TileRenderer) SamplePixel(x, y int, random *rand.Rand, trace *integrator.TraceStats) PixelStats {
	random.Seed(core.PixelSeed(tr.seed, x, y))

	var ps PixelStats
	for ps.SampleCount < tr.numSamples {
		ray := tr.camera.GetRay(x, y, random)
		ps.AddSample(tr.integrator.RayColor(ray, random, trace))
	}
	return ps
}
