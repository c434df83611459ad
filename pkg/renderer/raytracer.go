package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Options contains the render driver settings
type Options struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	TileSize   int // Size of each square tile in pixels
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		NumWorkers: 0,
		TileSize:   32,
	}
}

// Raytracer renders a scene into a floating point image
type Raytracer struct {
	scene      *scene.Scene
	width      int
	height     int
	options    Options
	camera     *Camera
	integrator integrator.Integrator
	primitives int
	logger     log.Logger
}

// NewRaytracer validates the scene and prepares a width x height render. A
// nil logger logs to the "renderer" module.
func NewRaytracer(sc *scene.Scene, width, height int, options Options, logger log.Logger) (*Raytracer, error) {
	if sc == nil {
		return nil, ErrNoScene
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidImageSize, width, height)
	}
	if options.TileSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTileSize, options.TileSize)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New("renderer")
	}

	world := sc.World()
	config := integrator.DefaultConfig()
	config.MaxDepth = sc.SamplingConfig.MaxDepth
	if config.MaxDepth == 0 {
		logger.Warningf("%q has max depth 0: reflection and transmission are disabled", sc.Name)
	}

	return &Raytracer{
		scene:      sc,
		width:      width,
		height:     height,
		options:    options,
		camera:     NewCamera(width, height, sc.SamplingConfig),
		integrator: integrator.NewWhittedIntegrator(world, sc.Lights, config),
		primitives: len(world.Primitives()),
		logger:     logger,
	}, nil
}

// Render traces every pixel and returns the image with the render
// statistics. A cancelled context aborts the render with ctx.Err().
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	sampling := rt.scene.SamplingConfig
	img := NewImage(rt.width, rt.height)
	tiles := NewTileGrid(rt.width, rt.height, rt.options.TileSize)

	tileRenderer := NewTileRenderer(rt.camera, rt.integrator, sampling.NumSamples, sampling.Seed)
	pool := NewWorkerPool(tileRenderer, rt.options.NumWorkers, rt.logger)

	rt.logger.Infof("rendering %q at %dx%d: %d primitives, %d lights, %d samples per pixel, %d tiles, %d workers",
		rt.scene.Name, rt.width, rt.height, rt.primitives, len(rt.scene.Lights), sampling.NumSamples, len(tiles), pool.NumWorkers())

	start := time.Now()
	workers, err := pool.Run(ctx, tiles, img)
	stats := newRenderStats(rt.width, rt.height, sampling.NumSamples, workers, time.Since(start))
	if err != nil {
		return nil, stats, err
	}

	rt.logger.Infof("rendered %q in %v (%d rays, mean noise %.4f)",
		rt.scene.Name, stats.RenderTime, stats.Rays.TotalRays(), stats.MeanNoise)

	return img, stats, nil
}
