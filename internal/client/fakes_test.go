package client_test

import (
	"errors"

	"miniapp/internal/domain"
)

// fakeView records what the client renders. Click honours the disabled flag
// the same way a button on the page does.
type fakeView struct {
	values   map[domain.ElementID]string
	texts    map[domain.ElementID]string
	disabled map[domain.ElementID]bool
	styles   map[domain.StyleProperty]string
	handlers map[domain.ElementID]func()
}

func newFakeView() *fakeView {
	return &fakeView{
		values:   map[domain.ElementID]string{},
		texts:    map[domain.ElementID]string{},
		disabled: map[domain.ElementID]bool{},
		styles:   map[domain.StyleProperty]string{},
		handlers: map[domain.ElementID]func(){},
	}
}

func (v *fakeView) Value(id domain.ElementID) string           { return v.values[id] }
func (v *fakeView) SetValue(id domain.ElementID, value string) { v.values[id] = value }
func (v *fakeView) SetText(id domain.ElementID, text string)   { v.texts[id] = text }
func (v *fakeView) SetDisabled(id domain.ElementID, d bool)    { v.disabled[id] = d }
func (v *fakeView) SetStyle(p domain.StyleProperty, val string) {
	v.styles[p] = val
}
func (v *fakeView) OnClick(id domain.ElementID, h func()) { v.handlers[id] = h }

// Click invokes the bound handler and reports whether anything ran.
func (v *fakeView) Click(id domain.ElementID) bool {
	h, ok := v.handlers[id]
	if !ok || v.disabled[id] {
		return false
	}
	h()
	return true
}

// fakeBridge exposes whichever groups are non-nil.
type fakeBridge struct {
	ready    int
	theme    *domain.ThemeParams
	scheme   domain.ColorScheme
	device   *fakeStore
	secure   *fakeStore
	screen   *fakeFullscreen
	location *fakeLocation
	handlers map[domain.EventName][]domain.EventHandler
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{handlers: map[domain.EventName][]domain.EventHandler{}}
}

func (b *fakeBridge) Ready() { b.ready++ }

func (b *fakeBridge) OnEvent(name domain.EventName, h domain.EventHandler) {
	b.handlers[name] = append(b.handlers[name], h)
}

func (b *fakeBridge) Emit(ev domain.Event) {
	for _, h := range b.handlers[ev.Name] {
		h(ev)
	}
}

func (b *fakeBridge) ThemeParams() (domain.ThemeParams, bool) {
	if b.theme == nil {
		return domain.ThemeParams{}, false
	}
	return *b.theme, true
}

func (b *fakeBridge) ColorScheme() domain.ColorScheme { return b.scheme }

func (b *fakeBridge) DeviceStorage() (domain.DeviceStorage, bool) {
	if b.device == nil {
		return nil, false
	}
	return deviceStore{b.device}, true
}

func (b *fakeBridge) SecureStorage() (domain.SecureStorage, bool) {
	if b.secure == nil {
		return nil, false
	}
	return secureStore{b.secure}, true
}

func (b *fakeBridge) Fullscreen() (domain.Fullscreen, bool) {
	if b.screen == nil {
		return nil, false
	}
	return b.screen, true
}

func (b *fakeBridge) LocationManager() (domain.LocationManager, bool) {
	if b.location == nil {
		return nil, false
	}
	return b.location, true
}

// fakeStore is a map-backed store answering synchronously. Non-nil override
// funcs replace the default behaviour so tests can script host replies.
type fakeStore struct {
	data   map[string]string
	backup map[string]string
	calls  []string

	onSet func(key, value string, cb domain.ResultFunc)
	onGet func(key string, cb domain.ValueFunc)
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, backup: map[string]string{}}
}

func (s *fakeStore) SetItem(key, value string, cb domain.ResultFunc) {
	s.calls = append(s.calls, "set")
	if s.onSet != nil {
		s.onSet(key, value, cb)
		return
	}
	s.data[key] = value
	cb(nil, true)
}

// GetItem serves both storage groups: the device flavour ignores canRestore.
func (s *fakeStore) getItem(key string) (*string, bool) {
	s.calls = append(s.calls, "get")
	if v, ok := s.data[key]; ok {
		return &v, false
	}
	_, canRestore := s.backup[key]
	return nil, canRestore
}

func (s *fakeStore) RemoveItem(key string, cb domain.ResultFunc) {
	s.calls = append(s.calls, "remove")
	_, ok := s.data[key]
	delete(s.data, key)
	cb(nil, ok)
}

func (s *fakeStore) Clear(cb domain.ResultFunc) {
	s.calls = append(s.calls, "clear")
	s.data = map[string]string{}
	cb(nil, true)
}

func (s *fakeStore) RestoreItem(key string, cb domain.ValueFunc) {
	s.calls = append(s.calls, "restore")
	v, ok := s.backup[key]
	if !ok {
		cb(nil, nil)
		return
	}
	s.data[key] = v
	cb(nil, &v)
}

// deviceStore adapts fakeStore to the DeviceStorage GetItem signature.
type deviceStore struct{ *fakeStore }

func (d deviceStore) GetItem(key string, cb domain.ValueFunc) {
	if d.onGet != nil {
		d.calls = append(d.calls, "get")
		d.onGet(key, cb)
		return
	}
	v, _ := d.getItem(key)
	cb(nil, v)
}

// secureStore adapts fakeStore to the SecureStorage GetItem signature.
type secureStore struct{ *fakeStore }

func (s secureStore) GetItem(key string, cb domain.SecureGetFunc) {
	v, canRestore := s.getItem(key)
	cb(nil, v, canRestore)
}

type fakeFullscreen struct {
	on              bool
	inset           *domain.Inset
	content         *domain.Inset
	requests, exits int
}

func (f *fakeFullscreen) RequestFullscreen() { f.requests++ }
func (f *fakeFullscreen) ExitFullscreen()    { f.exits++ }
func (f *fakeFullscreen) IsFullscreen() bool { return f.on }

func (f *fakeFullscreen) SafeAreaInset() (domain.Inset, bool) {
	if f.inset == nil {
		return domain.Inset{}, false
	}
	return *f.inset, true
}

func (f *fakeFullscreen) ContentSafeAreaInset() (domain.Inset, bool) {
	if f.content == nil {
		return domain.Inset{}, false
	}
	return *f.content, true
}

type fakeLocation struct {
	initErr  error
	granted  bool
	sample   *domain.LocationData
	requests int
}

var errInit = errors.New("location is not supported")

func (l *fakeLocation) Init() error           { return l.initErr }
func (l *fakeLocation) IsAccessGranted() bool { return l.granted }

func (l *fakeLocation) GetLocation(cb domain.LocationFunc) {
	l.requests++
	cb(l.sample)
}

func ptr(v float64) *float64 { return &v }
