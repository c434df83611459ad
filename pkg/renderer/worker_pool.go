package renderer

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"golang.org/x/sync/errgroup"
)

// WorkerPool renders tiles in parallel. Each worker owns its random
// generator and statistics; tiles never overlap, so workers write to the
// shared image without locking.
type WorkerPool struct {
	numWorkers int
	renderer   *TileRenderer
	logger     log.Logger
}

// NewWorkerPool creates a pool of numWorkers workers; 0 or less uses one per CPU
func NewWorkerPool(tileRenderer *TileRenderer, numWorkers int, logger log.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		numWorkers: numWorkers,
		renderer:   tileRenderer,
		logger:     logger,
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile into img and returns the statistics of each
// worker. Cancelling ctx stops the render between rows.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, img *Image) ([]WorkerStats, error) {
	g, ctx := errgroup.WithContext(ctx)
	tasks := make(chan *Tile)

	g.Go(func() error {
		defer close(tasks)
		for _, tile := range tiles {
			select {
			case tasks <- tile:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	stats := make([]WorkerStats, wp.numWorkers)
	for i := range stats {
		ws := &stats[i]
		ws.WorkerID = i

		g.Go(func() error {
			// Reseeded for every pixel.
			random := rand.New(rand.NewSource(0))
			for tile := range tasks {
				start := time.Now()
				if err := wp.renderer.RenderTile(ctx, tile, img, random, ws); err != nil {
					return err
				}
				ws.Busy += time.Since(start)
				wp.logger.Debugf("worker %d finished tile %d %v", ws.WorkerID, tile.ID, tile.Bounds)
			}
			return nil
		})
	}

	err := g.Wait()
	return stats, err
}
