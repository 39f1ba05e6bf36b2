package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"miniapp/internal/client"
	"miniapp/internal/host"
	"miniapp/internal/store"
	"miniapp/internal/tui"
)

// Wire bundles the loop, stores, bridge and client for the CLI.
type Wire struct {
	Loop   *host.Loop
	Device *store.DeviceFileStore
	Secure *store.SecureFileStore // nil without a passphrase
	Bridge *host.Bridge
	Screen *tui.Screen
	Client *client.Client
	Log    *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Home == "" {
		return nil, fmt.Errorf("home directory is required")
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	// File-based stores
	device := store.NewDeviceFileStore(cfg.Home, cfg.Host.Device.Quota)
	var secure *store.SecureFileStore
	if cfg.Host.Passphrase != "" {
		secure = store.NewSecureFileStore(cfg.Home, cfg.Host.Passphrase)
	} else if !cfg.Host.Secure.Disabled {
		log.Info("secure storage unavailable: no passphrase configured")
	}

	// Host side, then the mini app rendering into the terminal screen
	loop := host.NewLoop(log)
	bridge := host.New(cfg.Host, host.Stores{Device: device, Secure: secure}, loop, log)
	screen := tui.NewScreen(loop)
	cl := client.New(bridge, screen, log)

	return &Wire{
		Loop:   loop,
		Device: device,
		Secure: secure,
		Bridge: bridge,
		Screen: screen,
		Client: cl,
		Log:    log,
	}, nil
}
