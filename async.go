package getdir

import (
	"context"
	"runtime"

	internalwalk "github.com/leodido/getdir/internal/walk"
)

// Result is the outcome of a search run asynchronously.
type Result struct {
	Dir string
	Err error
}

// RunAsync is the non-blocking counterpart of Run.
//
// It returns immediately. The search yields the processor before every directory listing and every entry check,
// and stops at the first of those points after ctx is done.
// A cancelled search reports ctx.Err() as is, not a *errors.NotFoundError: it is the only failure outside the not found class.
// The channel receives exactly one Result and is then closed.
func (s Search) RunAsync(ctx context.Context) <-chan Result {
	return s.async(ctx, Down)
}

// RunReverseAsync is the non-blocking counterpart of RunReverse.
//
// See RunAsync for the suspension and cancellation semantics.
func (s Search) RunReverseAsync(ctx context.Context) <-chan Result {
	return s.async(ctx, Up)
}

func (s Search) async(ctx context.Context, direction Direction) <-chan Result {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make(chan Result, 1)

	go func() {
		defer close(results)
		dir, err := s.run(direction, suspend(ctx))
		results <- Result{Dir: dir, Err: err}
	}()

	return results
}

func suspend(ctx context.Context) internalwalk.YieldFunc {
	return func() error {
		runtime.Gosched()

		return ctx.Err()
	}
}
