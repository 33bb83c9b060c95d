package advanced

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Points are handed to workers in chunks of this many, so that a big batch
// doesn't cost a goroutine per point.
const batchChunkSize = 1024

// A Batch locates many points against one mesh in parallel. Queries never
// write to the mesh, so the workers share it without locking. The mesh must
// not be modified until Locate returns.
type Batch struct {
	// Walker used for every point. Its Trace func, if any, is called from
	// several goroutines at once.
	Walker Walker
	// Maximum number of concurrent workers. Zero means GOMAXPROCS.
	Workers int
}

// Locate every point, returning triangle ids (or Outside) in input order. The
// first invalid mesh error stops the batch, as does ctx being canceled.
func (b *Batch) Locate(ctx context.Context, mesh *Mesh, points []Point) ([]int, error) {
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]int, len(points))
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(points) && groupCtx.Err() == nil; start += batchChunkSize {
		start := start
		end := min(start+batchChunkSize, len(points))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := groupCtx.Err(); err != nil {
					return err
				}
				triangle, err := b.Walker.Locate(mesh, points[i])
				if err != nil {
					return errors.Wrapf(err, "locating point %d %v", i, points[i])
				}
				results[i] = triangle
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Nothing may have been scheduled if ctx was already done
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Locate every point with a default Walker and the given number of workers.
func LocateAll(ctx context.Context, mesh *Mesh, points []Point, workers int) ([]int, error) {
	return (&Batch{Workers: workers}).Locate(ctx, mesh, points)
}
