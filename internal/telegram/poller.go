package telegram

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// PollConfig tunes the long-poll loop.
type PollConfig struct {
	// Timeout is the server-side long-poll wait.
	Timeout time.Duration
	// Pause is the wait before the cycle after a failed one.
	Pause time.Duration
}

// Poll receives updates with getUpdates until ctx is done. A failed cycle
// goes to the polling error handler and the loop carries on after Pause;
// the failed call itself is not repeated with the same intent. Poll returns
// ctx.Err() on cancellation.
func (b *Bot) Poll(ctx context.Context, cfg PollConfig) error {
	var offset int64
	b.log.Info("polling started", zap.Duration("timeout", cfg.Timeout))
	defer b.log.Info("polling stopped")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ups, err := b.client.GetUpdates(ctx, offset, cfg.Timeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.pollingError(AsError(err))
			if err := sleep(ctx, cfg.Pause); err != nil {
				return err
			}
			continue
		}
		for _, u := range ups {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			b.HandleUpdate(ctx, u)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
