package telegram

import (
	"context"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

// TextHandler handles a message whose text matched a pattern.
type TextHandler func(ctx context.Context, msg Message)

// ErrorHandler receives receive-side failures.
type ErrorHandler func(err *Error)

type textRoute struct {
	pattern *regexp.Regexp
	handler TextHandler
}

// Bot routes incoming updates to text handlers.
type Bot struct {
	client *Client
	log    *zap.Logger

	mu             sync.RWMutex
	routes         []textRoute
	onPollingError ErrorHandler
	onWebhookError ErrorHandler
}

// NewBot returns a bot sending through client.
func NewBot(client *Client, log *zap.Logger) *Bot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bot{client: client, log: log.Named("telegram")}
}

// Client returns the underlying API client.
func (b *Bot) Client() *Client { return b.client }

// OnText runs h for every message whose text matches pattern. Every
// matching handler runs, in registration order.
func (b *Bot) OnText(pattern *regexp.Regexp, h TextHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes = append(b.routes, textRoute{pattern: pattern, handler: h})
}

// OnPollingError sets the handler for failed receive cycles.
func (b *Bot) OnPollingError(h ErrorHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPollingError = h
}

// OnWebhookError sets the handler for bad webhook deliveries.
func (b *Bot) OnWebhookError(h ErrorHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onWebhookError = h
}

// SendMessage sends text to chatID.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string, opts *SendOptions) (Message, error) {
	return b.client.SendMessage(ctx, chatID, text, opts)
}

// HandleUpdate dispatches one update. Updates without a text message are
// ignored.
func (b *Bot) HandleUpdate(ctx context.Context, u Update) {
	if u.Message == nil || u.Message.Text == "" {
		b.log.Debug("update ignored", zap.Int64("update_id", u.UpdateID))
		return
	}
	b.mu.RLock()
	routes := append([]textRoute(nil), b.routes...)
	b.mu.RUnlock()

	for _, r := range routes {
		if r.pattern.MatchString(u.Message.Text) {
			r.handler(ctx, *u.Message)
		}
	}
}

func (b *Bot) pollingError(err *Error) {
	b.mu.RLock()
	h := b.onPollingError
	b.mu.RUnlock()
	if h != nil {
		h(err)
		return
	}
	b.log.Error("polling error", zap.String("code", err.Code), zap.String("description", err.Description))
}

func (b *Bot) webhookError(err *Error) {
	b.mu.RLock()
	h := b.onWebhookError
	b.mu.RUnlock()
	if h != nil {
		h(err)
		return
	}
	b.log.Error("webhook error", zap.String("code", err.Code), zap.String("description", err.Description))
}
