package telegram

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SecretTokenHeader carries the secret registered with setWebhook.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// WebhookPath is the route updates are posted to.
const WebhookPath = "/webhook"

// WebhookConfig describes the webhook receiver.
type WebhookConfig struct {
	// ListenAddr is the local address the HTTP server binds.
	ListenAddr string
	// PublicURL is the HTTPS URL registered with setWebhook, WebhookPath
	// included.
	PublicURL string
	// SecretToken must match the header of every delivery. Empty disables
	// the check.
	SecretToken string
}

// WebhookHandler returns the router serving POST WebhookPath.
func (b *Bot) WebhookHandler(secret string) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc(WebhookPath, func(w http.ResponseWriter, req *http.Request) {
		b.serveUpdate(w, req, secret)
	}).Methods(http.MethodPost)
	return r
}

func (b *Bot) serveUpdate(w http.ResponseWriter, r *http.Request, secret string) {
	if secret != "" {
		got := r.Header.Get(SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			b.log.Warn("webhook delivery with bad secret token", zap.String("remote", r.RemoteAddr))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	var u Update
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&u); err != nil {
		b.webhookError(parseError("webhook update", http.StatusBadRequest, err))
		http.Error(w, "bad update", http.StatusBadRequest)
		return
	}
	b.HandleUpdate(r.Context(), u)
	w.WriteHeader(http.StatusOK)
}

// ServeWebhook registers cfg.PublicURL with setWebhook and serves deliveries
// on cfg.ListenAddr until ctx is done. On the way out it removes the webhook.
func (b *Bot) ServeWebhook(ctx context.Context, cfg WebhookConfig) error {
	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return err
	}
	return b.serveWebhook(ctx, ln, cfg)
}

func (b *Bot) serveWebhook(ctx context.Context, ln net.Listener, cfg WebhookConfig) error {
	if err := b.client.SetWebhook(ctx, cfg.PublicURL, cfg.SecretToken); err != nil {
		ln.Close()
		return err
	}
	b.log.Info("webhook registered", zap.String("url", cfg.PublicURL), zap.Stringer("listen", ln.Addr()))

	srv := &http.Server{
		Handler:           b.WebhookHandler(cfg.SecretToken),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errc:
		b.webhookError(fatalError("serve", serveErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		b.log.Warn("webhook server shutdown", zap.Error(err))
	}
	if serveErr == nil {
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr = err
		}
	}
	if err := b.client.DeleteWebhook(shutdownCtx); err != nil {
		b.log.Warn("delete webhook", zap.Error(err))
	}
	b.log.Info("webhook stopped")

	if serveErr != nil {
		return serveErr
	}
	return ctx.Err()
}
