package renderer

import (
	"context"
	"image"
	"math/rand"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// MockIntegrator returns a fixed colour and counts its calls
type MockIntegrator struct {
	returnColor core.Vec3
	callCount   int
}

func (m *MockIntegrator) RayColor(ray core.Ray, random *rand.Rand, stats *integrator.TraceStats) core.Vec3 {
	m.callCount++
	stats.CameraRays++
	return m.returnColor
}

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
		lastBounds    image.Rectangle
	}{
		{"exact fit", 64, 32, 32, 2, image.Rect(32, 0, 64, 32)},
		{"partial edge tiles", 100, 50, 32, 8, image.Rect(96, 32, 100, 50)},
		{"single tile", 10, 10, 32, 1, image.Rect(0, 0, 10, 10)},
		{"one pixel tiles", 3, 2, 1, 6, image.Rect(2, 1, 3, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}
			if last := tiles[len(tiles)-1].Bounds; last != tt.lastBounds {
				t.Errorf("Expected last tile %v, got %v", tt.lastBounds, last)
			}

			covered := make([]int, tt.width*tt.height)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y*tt.width+x]++
					}
				}
			}
			for i, n := range covered {
				if n != 1 {
					t.Fatalf("Pixel %d covered %d times", i, n)
				}
			}
		})
	}
}

func TestTileRenderer_RenderTile(t *testing.T) {
	mock := &MockIntegrator{returnColor: core.NewVec3(0.25, 0.5, 0.75)}
	camera := NewCamera(8, 8, scene.SamplingConfig{AntialiasSize: 0.5})
	tr := NewTileRenderer(camera, mock, 4, 42)

	img := NewImage(8, 8)
	tile := &Tile{Bounds: image.Rect(2, 2, 6, 5)}
	var stats WorkerStats

	if err := tr.RenderTile(context.Background(), tile, img, rand.New(rand.NewSource(0)), &stats); err != nil {
		t.Fatalf("RenderTile failed: %v", err)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := image.Pt(x, y).In(tile.Bounds)
			got := img.At(x, y)
			if inside && !vecNear(got, mock.returnColor, 1e-12) {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, mock.returnColor, got)
			}
			if !inside && got != core.White {
				t.Errorf("Pixel (%d,%d) outside the tile was written: %v", x, y, got)
			}
		}
	}

	if mock.callCount != 12*4 {
		t.Errorf("Expected %d integrator calls, got %d", 12*4, mock.callCount)
	}
	if stats.Pixels != 12 || stats.Samples != 48 || stats.Tiles != 1 || stats.Trace.CameraRays != 48 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.NoiseSum != 0 {
		t.Errorf("Expected no noise from a constant integrator, got %f", stats.NoiseSum)
	}
}

func TestTileRenderer_CancelledContext(t *testing.T) {
	tr := NewTileRenderer(NewCamera(8, 8, scene.SamplingConfig{}), &MockIntegrator{}, 1, 42)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stats WorkerStats
	err := tr.RenderTile(ctx, &Tile{Bounds: image.Rect(0, 0, 8, 8)}, NewImage(8, 8), rand.New(rand.NewSource(0)), &stats)
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if stats.Pixels != 0 {
		t.Errorf("Expected no pixels rendered, got %d", stats.Pixels)
	}
}

func softScenePixel(t *testing.T, numSamples int) (*TileRenderer, int, int) {
	t.Helper()
	sc := scene.NewSoftShadowScene()
	const size = 64

	config := integrator.DefaultConfig()
	wi := integrator.NewWhittedIntegrator(sc.World(), sc.Lights, config)
	camera := NewCamera(size, size, sc.SamplingConfig)
	return NewTileRenderer(camera, wi, numSamples, 42), size / 2, size / 2
}

func TestTileRenderer_PixelIndependentOfGeneratorState(t *testing.T) {
	tr, x, y := softScenePixel(t, 16)
	var trace integrator.TraceStats

	a := tr.SamplePixel(x, y, rand.New(rand.NewSource(1)), &trace)
	b := tr.SamplePixel(x, y, rand.New(rand.NewSource(999)), &trace)
	if a.GetColor() != b.GetColor() {
		t.Errorf("Expected the same colour regardless of generator state, got %v and %v", a.GetColor(), b.GetColor())
	}
}

func TestTileRenderer_VarianceFallsWithSamples(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sampling variance test in short mode")
	}

	// The centre pixel sees the sphere lit by the rainbow light, so its red
	// channel changes from sample to sample.
	variance := func(numSamples int) float64 {
		tr, x, y := softScenePixel(t, numSamples)
		random := rand.New(rand.NewSource(0))
		var trace integrator.TraceStats

		const seeds = 30
		values := make([]float64, seeds)
		var mean float64
		for i := range values {
			tr.seed = int64(i + 1)
			ps := tr.SamplePixel(x, y, random, &trace)
			values[i] = ps.GetColor().X
			mean += values[i]
		}
		mean /= seeds

		var v float64
		for _, value := range values {
			v += (value - mean) * (value - mean)
		}
		return v / (seeds - 1)
	}

	few, many := variance(10), variance(1000)
	if few == 0 {
		t.Fatal("Test setup: expected noise at 10 samples")
	}
	if many >= few/10 {
		t.Errorf("Expected variance to fall with sample count: %g at 10 samples, %g at 1000", few, many)
	}
}

func TestPixelStats(t *testing.T) {
	var ps PixelStats
	if ps.GetColor() != core.Black || ps.StdError() != 0 {
		t.Error("Expected an empty pixel to be black with no error")
	}

	ps.AddSample(core.NewVec3(1, 1, 1))
	ps.AddSample(core.NewVec3(0, 0, 0))

	if !vecNear(ps.GetColor(), core.NewVec3(0.5, 0.5, 0.5), 1e-12) {
		t.Errorf("Expected mean 0.5, got %v", ps.GetColor())
	}
	// Luminance samples 1 and 0: variance 0.25, standard error sqrt(0.25/2).
	if got := ps.StdError(); got < 0.3535 || got > 0.3536 {
		t.Errorf("Expected standard error 0.3536, got %f", got)
	}
}
