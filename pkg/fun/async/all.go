package async

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// All joins handles into a single handle.
//
// If every handle fulfils, the joined handle fulfils with their values in
// submission order, regardless of completion order. As soon as any handle
// rejects, the joined handle rejects with that error and never fulfils; the
// outcomes of the remaining handles are no longer observed. When several
// handles reject, the first one to do so in real time wins. If ctx is done
// before the join settles, it rejects with ctx.Err(). A nil or zero handle
// rejects the join up front with ErrInvalidHandle.
func All[T any](ctx context.Context, handles ...*Handle[T]) *Handle[[]T] {
	promise, joined := Create[[]T]()
	logger := GetLogger(ctx)

	for i, h := range handles {
		if !h.valid() {
			promise.Reject(fmt.Errorf("%w: index %d", ErrInvalidHandle, i))
			return joined
		}
	}

	values := make([]T, len(handles))
	g, gctx := errgroup.WithContext(ctx)

	for i, h := range handles {
		g.Go(func() error {
			v, err := h.Await(gctx)
			if err != nil {
				// settles the join without waiting for the other watchers
				if promise.Reject(err) {
					logger.Debug("join rejected",
						zap.Stringer("join", joined.ID()),
						zap.Stringer("handle", h.ID()),
						zap.Int("index", i),
						zap.Error(err))
				}
				return err
			}
			values[i] = v
			return nil
		})
	}

	go func() {
		if err := g.Wait(); err != nil {
			promise.Reject(err)
			return
		}
		promise.Fulfill(values)
	}()

	return joined
}

// Traverse runs f for every input concurrently and joins the results with
// All.
func Traverse[In, Out any](ctx context.Context, inputs []In,
	f func(ctx context.Context, in In) (Out, error)) *Handle[[]Out] {

	handles := make([]*Handle[Out], 0, len(inputs))
	for _, in := range inputs {
		handles = append(handles, Go(ctx, func(ctx context.Context) (Out, error) {
			return f(ctx, in)
		}))
	}
	return All(ctx, handles...)
}
