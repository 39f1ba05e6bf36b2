package host

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"miniapp/internal/config"
	"miniapp/internal/domain"
)

// Fullscreen failure reasons, as reported in fullscreenFailed.
var (
	ErrUnsupported       = errors.New("UNSUPPORTED")
	ErrAlreadyFullscreen = errors.New("ALREADY_FULLSCREEN")
)

// Fullscreen simulates fullscreen mode. Entering or leaving the mode swaps
// the reported insets and emits the matching change events.
type Fullscreen struct {
	cfg    config.Fullscreen
	events *events
	log    *zap.Logger

	mu sync.Mutex
	on bool
}

func newFullscreen(cfg config.Fullscreen, ev *events, log *zap.Logger) *Fullscreen {
	return &Fullscreen{cfg: cfg, events: ev, log: log.Named("fullscreen")}
}

// RequestFullscreen asks to enter fullscreen mode.
func (f *Fullscreen) RequestFullscreen() { f.set(true) }

// ExitFullscreen asks to leave fullscreen mode. Leaving when not in
// fullscreen mode is a no-op.
func (f *Fullscreen) ExitFullscreen() { f.set(false) }

func (f *Fullscreen) set(on bool) {
	f.mu.Lock()
	if f.cfg.Unsupported {
		f.mu.Unlock()
		f.fail(ErrUnsupported)
		return
	}
	if f.on == on {
		f.mu.Unlock()
		if on {
			f.fail(ErrAlreadyFullscreen)
		}
		return
	}
	f.on = on
	f.mu.Unlock()

	f.log.Info("fullscreen changed", zap.Bool("fullscreen", on))
	f.events.emit(domain.Event{Name: domain.EventFullscreenChanged})
	f.events.emit(domain.Event{Name: domain.EventSafeAreaChanged})
	f.events.emit(domain.Event{Name: domain.EventContentSafeAreaChanged})
}

func (f *Fullscreen) fail(err error) {
	f.log.Info("fullscreen request failed", zap.Error(err))
	f.events.emit(domain.Event{Name: domain.EventFullscreenFailed, Error: err.Error()})
}

// IsFullscreen reports the current mode.
func (f *Fullscreen) IsFullscreen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}

// SafeAreaInset returns the device safe area for the current mode.
func (f *Fullscreen) SafeAreaInset() (domain.Inset, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return pickInset(f.on, f.cfg.SafeArea, f.cfg.FullscreenSafeArea)
}

// ContentSafeAreaInset returns the content safe area for the current mode.
func (f *Fullscreen) ContentSafeAreaInset() (domain.Inset, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return pickInset(f.on, f.cfg.ContentSafeArea, f.cfg.FullscreenContentSafeArea)
}

// pickInset chooses the inset for the mode. The windowed inset stands in when
// no fullscreen inset is configured.
func pickInset(fullscreen bool, windowed, full *domain.Inset) (domain.Inset, bool) {
	in := windowed
	if fullscreen && full != nil {
		in = full
	}
	if in == nil {
		return domain.Inset{}, false
	}
	return *in, true
}

var _ domain.Fullscreen = (*Fullscreen)(nil)
