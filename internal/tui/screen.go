package tui

import (
	"sync"

	"miniapp/internal/domain"
)

// Poster runs functions on the host loop.
type Poster interface {
	Post(fn func())
}

// Screen is a thread-safe domain.View.
type Screen struct {
	loop Poster

	mu       sync.Mutex
	values   map[domain.ElementID]string
	texts    map[domain.ElementID]string
	disabled map[domain.ElementID]bool
	styles   map[domain.StyleProperty]string
	handlers map[domain.ElementID]func()

	changed chan struct{}
}

// NewScreen returns an empty screen whose clicks are posted to loop.
func NewScreen(loop Poster) *Screen {
	return &Screen{
		loop:     loop,
		values:   map[domain.ElementID]string{},
		texts:    map[domain.ElementID]string{},
		disabled: map[domain.ElementID]bool{},
		styles:   map[domain.StyleProperty]string{},
		handlers: map[domain.ElementID]func(){},
		changed:  make(chan struct{}, 1),
	}
}

func (s *Screen) Value(id domain.ElementID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[id]
}

func (s *Screen) SetValue(id domain.ElementID, value string) {
	s.mu.Lock()
	s.values[id] = value
	s.mu.Unlock()
	s.notify()
}

func (s *Screen) SetText(id domain.ElementID, text string) {
	s.mu.Lock()
	s.texts[id] = text
	s.mu.Unlock()
	s.notify()
}

func (s *Screen) SetDisabled(id domain.ElementID, disabled bool) {
	s.mu.Lock()
	s.disabled[id] = disabled
	s.mu.Unlock()
	s.notify()
}

func (s *Screen) SetStyle(prop domain.StyleProperty, value string) {
	s.mu.Lock()
	s.styles[prop] = value
	s.mu.Unlock()
	s.notify()
}

func (s *Screen) OnClick(id domain.ElementID, handler func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[id] = handler
}

// Text returns the text of a display element.
func (s *Screen) Text(id domain.ElementID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.texts[id]
}

// Disabled reports whether a control is disabled.
func (s *Screen) Disabled(id domain.ElementID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disabled[id]
}

// Style returns a body style property.
func (s *Screen) Style(prop domain.StyleProperty) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.styles[prop]
}

// Click posts the handler of id to the loop. It reports false, and does
// nothing, when the control is disabled or has no handler.
func (s *Screen) Click(id domain.ElementID) bool {
	s.mu.Lock()
	h, disabled := s.handlers[id], s.disabled[id]
	s.mu.Unlock()
	if h == nil || disabled {
		return false
	}
	s.loop.Post(h)
	return true
}

// Changed signals after writes. Bursts of writes coalesce into one signal.
func (s *Screen) Changed() <-chan struct{} { return s.changed }

func (s *Screen) notify() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

var _ domain.View = (*Screen)(nil)
