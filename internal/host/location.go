package host

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"miniapp/internal/config"
	"miniapp/internal/domain"
)

// ErrLocationUnavailable is logged when GetLocation runs before Init.
var ErrLocationUnavailable = errors.New("location manager is not initialized")

// LocationManager hands out the configured sample when access is granted.
type LocationManager struct {
	cfg    config.Location
	loop   *Loop
	events *events
	log    *zap.Logger

	mu      sync.Mutex
	inited  bool
	granted bool
}

func newLocationManager(cfg config.Location, loop *Loop, ev *events, log *zap.Logger) *LocationManager {
	return &LocationManager{
		cfg:     cfg,
		loop:    loop,
		events:  ev,
		log:     log.Named("location"),
		granted: cfg.AccessGranted,
	}
}

// Init prepares the manager. It fails with the configured init error, and
// otherwise emits locationManagerUpdated once initialised.
func (m *LocationManager) Init() error {
	if m.cfg.InitError != "" {
		return errors.New(m.cfg.InitError)
	}
	m.mu.Lock()
	m.inited = true
	m.mu.Unlock()

	m.events.emit(domain.Event{Name: domain.EventLocationManagerUpdated})
	return nil
}

// IsAccessGranted reports whether the user granted location access.
func (m *LocationManager) IsAccessGranted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.granted
}

// SetAccessGranted changes the access flag the way a user toggling the
// permission in settings would, and emits locationManagerUpdated.
func (m *LocationManager) SetAccessGranted(granted bool) {
	m.mu.Lock()
	m.granted = granted
	m.mu.Unlock()

	m.log.Info("location access changed", zap.Bool("granted", granted))
	m.events.emit(domain.Event{Name: domain.EventLocationManagerUpdated})
}

// GetLocation delivers one sample, or nil when access is denied or the
// manager is not initialised.
func (m *LocationManager) GetLocation(cb domain.LocationFunc) {
	m.loop.Go(func() func() {
		m.mu.Lock()
		inited, granted := m.inited, m.granted
		m.mu.Unlock()

		var sample *domain.LocationData
		switch {
		case !inited:
			m.log.Warn("location requested", zap.Error(ErrLocationUnavailable))
		case !granted:
			m.log.Info("location requested without access")
		default:
			s := m.cfg.Sample
			sample = &s
		}

		m.events.emit(domain.Event{Name: domain.EventLocationRequested, Location: sample})
		return func() { cb(sample) }
	})
}

var _ domain.LocationManager = (*LocationManager)(nil)
