package app

import (
	"go.uber.org/zap"

	"miniapp/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string      // data directory, e.g. $HOME/.miniapp
	Host config.Host // host bridge settings; Host.Passphrase enables secure storage
	Log  *zap.Logger // optional; defaults to a no-op logger
}
