package launcher

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"miniapp/internal/config"
	"miniapp/internal/telegram"
)

// Reply texts.
const (
	WelcomeText = "Welcome! Click the button below to open the Mini App demo."
	ButtonText  = "Open Mini App Demo"
)

var startPattern = regexp.MustCompile(`/start`)

// Router is the part of telegram.Bot the notifier drives.
type Router interface {
	OnText(pattern *regexp.Regexp, h telegram.TextHandler)
	OnPollingError(h telegram.ErrorHandler)
	OnWebhookError(h telegram.ErrorHandler)
	SendMessage(ctx context.Context, chatID int64, text string, opts *telegram.SendOptions) (telegram.Message, error)
}

// Notifier hands out the mini app button.
type Notifier struct {
	launchURL string
	router    Router
	log       *zap.Logger
}

// New validates cfg and returns a notifier bound to router. A configuration
// error wraps config.ErrInvalid and nothing is registered.
func New(cfg config.Launcher, router Router, log *zap.Logger) (*Notifier, error) {
	if err := config.ValidateLauncher(cfg); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	n := &Notifier{launchURL: cfg.LaunchURL, router: router, log: log.Named("launcher")}

	router.OnText(startPattern, n.handleStart)
	router.OnPollingError(func(err *telegram.Error) {
		n.log.Error(fmt.Sprintf("Polling error: %s - %s", err.Code, err.Description))
	})
	router.OnWebhookError(func(err *telegram.Error) {
		n.log.Error(fmt.Sprintf("Webhook error: %s - %s", err.Code, err.Description))
	})
	return n, nil
}

// Markup returns the one-button keyboard that opens url as a mini app.
func Markup(url string) *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{{
		{Text: ButtonText, WebApp: &telegram.WebAppInfo{URL: url}},
	}}}
}

// handleStart sends exactly one reply. A failed send is logged only.
func (n *Notifier) handleStart(ctx context.Context, msg telegram.Message) {
	chatID := msg.Chat.ID
	_, err := n.router.SendMessage(ctx, chatID, WelcomeText, &telegram.SendOptions{ReplyMarkup: Markup(n.launchURL)})
	if err != nil {
		n.log.Error("send welcome message", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}
	n.log.Info("welcome message sent", zap.Int64("chat_id", chatID))
}

// Announce logs the startup banner.
func (n *Notifier) Announce() {
	n.log.Info("Bot started... Send /start to see the Mini App button.")
	n.log.Info(fmt.Sprintf("Make sure your Mini App is being served at: %s", n.launchURL))
}
