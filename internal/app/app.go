package app

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"miniapp/internal/client"
)

// Session runs the host loop, starts the client on it and then calls fn.
// The loop stops when fn returns or ctx is done.
func (w *Wire) Session(ctx context.Context, fn func(ctx context.Context, caps client.Capabilities) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := w.Loop.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	var caps client.Capabilities
	w.Loop.Post(func() { caps = w.Client.Start() })
	w.Loop.Wait()

	g.Go(func() error {
		defer cancel()
		return fn(gctx, caps)
	})
	return g.Wait()
}

// Settle waits until every pending callback and event has been delivered.
func (w *Wire) Settle() { w.Loop.Wait() }
