package launcher

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"miniapp/internal/config"
	"miniapp/internal/telegram"
)

// Receiver is the update source Run drives; telegram.Bot implements it.
type Receiver interface {
	Poll(ctx context.Context, cfg telegram.PollConfig) error
	ServeWebhook(ctx context.Context, cfg telegram.WebhookConfig) error
}

// Run receives updates in the configured mode until ctx is done.
func Run(ctx context.Context, cfg config.Launcher, rx Receiver, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	switch cfg.Mode {
	case config.ModeWebhook:
		secret := cfg.Webhook.SecretToken
		if secret == "" {
			secret = uuid.NewString()
			log.Debug("generated webhook secret token")
		}
		return rx.ServeWebhook(ctx, telegram.WebhookConfig{
			ListenAddr:  cfg.Webhook.ListenAddr,
			PublicURL:   cfg.Webhook.PublicURL,
			SecretToken: secret,
		})
	case config.ModePolling, "":
		return rx.Poll(ctx, telegram.PollConfig{Timeout: cfg.Polling.Timeout, Pause: cfg.Polling.Pause})
	default:
		return fmt.Errorf("%w: unknown mode %q", config.ErrInvalid, cfg.Mode)
	}
}
