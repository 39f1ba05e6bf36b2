package host

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"miniapp/internal/config"
	"miniapp/internal/domain"
	"miniapp/internal/store"
)

// Bridge is the development host's domain.Bridge.
type Bridge struct {
	id     uuid.UUID
	loop   *Loop
	events *events
	log    *zap.Logger

	device   *DeviceStorage
	secure   *SecureStorage
	screen   *Fullscreen
	location *LocationManager

	mu     sync.Mutex
	ready  bool
	theme  config.Theme
	scheme domain.ColorScheme
}

// Stores are the storage backends a Bridge exposes. A nil store leaves its
// group unavailable.
type Stores struct {
	Device *store.DeviceFileStore
	Secure *store.SecureFileStore
}

// New builds a bridge from cfg. Groups disabled in cfg, and storage groups
// without a backend, are not exposed.
func New(cfg config.Host, stores Stores, loop *Loop, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	log = log.Named("host").With(zap.Stringer("instance", id))

	b := &Bridge{
		id:     id,
		loop:   loop,
		events: newEvents(loop, log),
		log:    log,
		theme:  cfg.Theme,
		scheme: cfg.Theme.ColorScheme,
	}
	if !cfg.Device.Disabled && stores.Device != nil {
		b.device = &DeviceStorage{store: stores.Device, queue: loop.NewQueue()}
	}
	if !cfg.Secure.Disabled && stores.Secure != nil {
		b.secure = &SecureStorage{store: stores.Secure, queue: loop.NewQueue()}
	}
	if !cfg.Fullscreen.Disabled {
		b.screen = newFullscreen(cfg.Fullscreen, b.events, log)
	}
	if !cfg.Location.Disabled {
		b.location = newLocationManager(cfg.Location, loop, b.events, log)
	}
	return b
}

// ID identifies this host instance in logs.
func (b *Bridge) ID() uuid.UUID { return b.id }

// Loop returns the loop callbacks run on.
func (b *Bridge) Loop() *Loop { return b.loop }

// Ready records that the mini app finished its initial render.
func (b *Bridge) Ready() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ready {
		b.log.Warn("ready called more than once")
		return
	}
	b.ready = true
	b.log.Info("mini app ready")
}

// IsReady reports whether Ready was called.
func (b *Bridge) IsReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ready
}

// OnEvent subscribes h to name.
func (b *Bridge) OnEvent(name domain.EventName, h domain.EventHandler) {
	b.events.subscribe(name, h)
}

// ThemeParams returns the params of the current color scheme.
func (b *Bridge) ThemeParams() (domain.ThemeParams, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.theme.Disabled {
		return domain.ThemeParams{}, false
	}
	if b.scheme == domain.ColorSchemeDark {
		return b.theme.Dark, true
	}
	return b.theme.Light, true
}

// ColorScheme returns the current color scheme.
func (b *Bridge) ColorScheme() domain.ColorScheme {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scheme
}

// ToggleColorScheme switches between light and dark and emits themeChanged.
func (b *Bridge) ToggleColorScheme() {
	b.mu.Lock()
	if b.scheme == domain.ColorSchemeDark {
		b.scheme = domain.ColorSchemeLight
	} else {
		b.scheme = domain.ColorSchemeDark
	}
	scheme := b.scheme
	b.mu.Unlock()

	b.log.Info("color scheme changed", zap.Stringer("color_scheme", scheme))
	b.events.emit(domain.Event{Name: domain.EventThemeChanged})
}

// DeviceStorage returns the non-persistent storage group.
func (b *Bridge) DeviceStorage() (domain.DeviceStorage, bool) {
	if b.device == nil {
		return nil, false
	}
	return b.device, true
}

// SecureStorage returns the secure storage group.
func (b *Bridge) SecureStorage() (domain.SecureStorage, bool) {
	if b.secure == nil {
		return nil, false
	}
	return b.secure, true
}

// Fullscreen returns the fullscreen group.
func (b *Bridge) Fullscreen() (domain.Fullscreen, bool) {
	if b.screen == nil {
		return nil, false
	}
	return b.screen, true
}

// LocationManager returns the location group.
func (b *Bridge) LocationManager() (domain.LocationManager, bool) {
	if b.location == nil {
		return nil, false
	}
	return b.location, true
}

// Compile-time assertion that Bridge implements domain.Bridge.
var _ domain.Bridge = (*Bridge)(nil)
