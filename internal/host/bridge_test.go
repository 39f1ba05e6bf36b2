package host_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"miniapp/internal/client"
	"miniapp/internal/config"
	"miniapp/internal/domain"
	"miniapp/internal/host"
	"miniapp/internal/store"
)

// recordingView is a thread-safe domain.View whose clicks run on the loop.
type recordingView struct {
	loop *host.Loop

	mu       sync.Mutex
	values   map[domain.ElementID]string
	texts    map[domain.ElementID]string
	disabled map[domain.ElementID]bool
	styles   map[domain.StyleProperty]string
	handlers map[domain.ElementID]func()
}

func newRecordingView(loop *host.Loop) *recordingView {
	return &recordingView{
		loop:     loop,
		values:   map[domain.ElementID]string{},
		texts:    map[domain.ElementID]string{},
		disabled: map[domain.ElementID]bool{},
		styles:   map[domain.StyleProperty]string{},
		handlers: map[domain.ElementID]func(){},
	}
}

func (v *recordingView) Value(id domain.ElementID) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.values[id]
}

func (v *recordingView) SetValue(id domain.ElementID, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values[id] = value
}

func (v *recordingView) SetText(id domain.ElementID, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.texts[id] = text
}

func (v *recordingView) SetDisabled(id domain.ElementID, disabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.disabled[id] = disabled
}

func (v *recordingView) SetStyle(prop domain.StyleProperty, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.styles[prop] = value
}

func (v *recordingView) OnClick(id domain.ElementID, handler func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.handlers[id] = handler
}

func (v *recordingView) text(id domain.ElementID) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.texts[id]
}

func (v *recordingView) style(p domain.StyleProperty) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.styles[p]
}

// click runs the handler on the loop and waits for every follow-up.
func (v *recordingView) click(id domain.ElementID) {
	v.mu.Lock()
	h, disabled := v.handlers[id], v.disabled[id]
	v.mu.Unlock()
	if h != nil && !disabled {
		v.loop.Post(h)
	}
	v.loop.Wait()
}

type fixture struct {
	loop   *host.Loop
	bridge *host.Bridge
	view   *recordingView
	caps   client.Capabilities
}

func newFixture(t *testing.T, mutate func(*config.Host)) *fixture {
	t.Helper()
	cfg := config.Default().Host
	if mutate != nil {
		mutate(&cfg)
	}
	dir := t.TempDir()
	stores := host.Stores{Device: store.NewDeviceFileStore(dir, store.DefaultDeviceQuota)}
	if cfg.Passphrase != "" {
		stores.Secure = store.NewSecureFileStore(dir, cfg.Passphrase, store.WithScryptCost(1<<10, 8, 1))
	}

	loop := host.NewLoop(zap.NewNop())
	runLoop(t, loop)
	b := host.New(cfg, stores, loop, zap.NewNop())
	v := newRecordingView(loop)

	f := &fixture{loop: loop, bridge: b, view: v}
	loop.Post(func() { f.caps = client.New(b, v, zap.NewNop()).Start() })
	loop.Wait()
	return f
}

func TestBridge_StartReportsGroups(t *testing.T) {
	f := newFixture(t, func(c *config.Host) { c.Passphrase = "pw" })

	assert.True(t, f.bridge.IsReady())
	assert.Equal(t, client.Capabilities{DeviceStorage: true, SecureStorage: true, Fullscreen: true, Location: true}, f.caps)
	assert.Equal(t, "light", f.view.text(domain.ColorSchemeDisplay))
	assert.Equal(t, "#ffffff", f.view.style(domain.StyleBackgroundColor))
}

func TestBridge_DisabledGroupsAreAbsent(t *testing.T) {
	f := newFixture(t, func(c *config.Host) {
		c.Device.Disabled = true
		c.Fullscreen.Disabled = true
		c.Location.Disabled = true
	})

	assert.Equal(t, client.Capabilities{}, f.caps)
	assert.Equal(t, "SecureStorage API is not available.", f.view.text(domain.SSResult))
}

func TestBridge_ReadyTwiceKeepsState(t *testing.T) {
	f := newFixture(t, nil)
	f.bridge.Ready()
	assert.True(t, f.bridge.IsReady())
}

func TestBridge_ToggleColorSchemeRethemes(t *testing.T) {
	f := newFixture(t, nil)

	f.bridge.ToggleColorScheme()
	f.loop.Wait()

	assert.Equal(t, domain.ColorSchemeDark, f.bridge.ColorScheme())
	assert.Equal(t, "dark", f.view.text(domain.ColorSchemeDisplay))
	assert.Equal(t, "#17212b", f.view.style(domain.StyleBackgroundColor))
}

func TestBridge_ThemeDisabled(t *testing.T) {
	f := newFixture(t, func(c *config.Host) { c.Theme.Disabled = true })

	_, ok := f.bridge.ThemeParams()
	assert.False(t, ok)
	assert.Equal(t, "N/A (Error)", f.view.text(domain.BgColorDisplay))
}

func TestBridge_DeviceStorageRoundTrip(t *testing.T) {
	f := newFixture(t, nil)

	f.view.SetValue(domain.DSKey, "greeting")
	f.view.SetValue(domain.DSValue, "hello")
	f.view.click(domain.DSSetItem)
	assert.Equal(t, "Item set successfully. Key: greeting", f.view.text(domain.DSResult))

	f.view.SetValue(domain.DSKey, "greeting")
	f.view.click(domain.DSGetItem)
	assert.Contains(t, f.view.text(domain.DSResult), "hello")

	f.view.SetValue(domain.DSKey, "greeting")
	f.view.click(domain.DSRemoveItem)
	assert.Equal(t, "Item removed successfully. Key: greeting", f.view.text(domain.DSResult))

	f.view.SetValue(domain.DSKey, "greeting")
	f.view.click(domain.DSGetItem)
	assert.Equal(t, "Item not found for key: greeting", f.view.text(domain.DSResult))
}

func TestBridge_DeviceStorageGetSeesPrecedingSet(t *testing.T) {
	f := newFixture(t, nil)
	ds, ok := f.bridge.DeviceStorage()
	require.True(t, ok)

	const rounds = 200
	misses := 0
	for i := range rounds {
		want := strconv.Itoa(i)
		f.loop.Post(func() {
			ds.SetItem("k", want, func(err error, ok bool) {
				assert.NoError(t, err)
				assert.True(t, ok)
			})
			ds.GetItem("k", func(err error, v *string) {
				assert.NoError(t, err)
				if v == nil || *v != want {
					misses++
				}
			})
		})
	}
	f.loop.Wait()

	assert.Zero(t, misses)
}

func TestBridge_SecureStorageRestore(t *testing.T) {
	f := newFixture(t, func(c *config.Host) { c.Passphrase = "pw" })

	f.view.SetValue(domain.SSKey, "token")
	f.view.SetValue(domain.SSValue, "s3cret")
	f.view.click(domain.SSSetItem)
	assert.Equal(t, "Secure item set successfully. Key: token", f.view.text(domain.SSResult))

	f.view.SetValue(domain.SSKey, "token")
	f.view.click(domain.SSGetItem)
	assert.Equal(t, `Secure item for key "token" retrieved. Check console.`, f.view.text(domain.SSResult))
	assert.NotContains(t, f.view.text(domain.SSResult), "s3cret")

	f.view.SetValue(domain.SSKey, "token")
	f.view.click(domain.SSRestoreItem)
	assert.Equal(t, `Secure item for key "token" restored. Check console.`, f.view.text(domain.SSResult))
}

func TestBridge_FullscreenCycle(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, "No", f.view.text(domain.FullscreenStatus))
	assert.Equal(t, "0px", f.view.text(domain.SafeAreaTop))

	f.view.click(domain.RequestFullscreen)
	assert.Equal(t, "Yes", f.view.text(domain.FullscreenStatus))
	assert.Equal(t, "47px", f.view.text(domain.SafeAreaTop))
	assert.Equal(t, "56px", f.view.text(domain.ContentSafeAreaTop))

	f.view.click(domain.RequestFullscreen)
	assert.Equal(t, "Fullscreen request failed. (ALREADY_FULLSCREEN)", f.view.text(domain.FullscreenStatus))

	f.view.click(domain.ExitFullscreen)
	assert.Equal(t, "No", f.view.text(domain.FullscreenStatus))
	assert.Equal(t, "0px", f.view.text(domain.SafeAreaTop))
}

func TestBridge_FullscreenUnsupported(t *testing.T) {
	f := newFixture(t, func(c *config.Host) { c.Fullscreen.Unsupported = true })

	f.view.click(domain.RequestFullscreen)
	assert.Equal(t, "Fullscreen request failed. (UNSUPPORTED)", f.view.text(domain.FullscreenStatus))
}

func TestBridge_FullscreenWithoutInsets(t *testing.T) {
	f := newFixture(t, func(c *config.Host) {
		c.Fullscreen.SafeArea = nil
		c.Fullscreen.ContentSafeArea = nil
	})

	assert.Equal(t, "N/A (API not supported)", f.view.text(domain.SafeAreaTop))
	assert.Equal(t, "N/A (API not supported)", f.view.text(domain.ContentSafeAreaBottom))
}

func TestBridge_LocationGranted(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, "Location manager state updated (access: true).", f.view.text(domain.LocationStatus))

	f.view.click(domain.RequestLocation)
	assert.Equal(t, "Success", f.view.text(domain.LocationStatus))
	assert.Equal(t, "51.5007", f.view.text(domain.Latitude))
	assert.Equal(t, "-0.1246", f.view.text(domain.Longitude))
	assert.Equal(t, "Horiz: 15m / Vert: 4m", f.view.text(domain.Accuracy))
}

func TestBridge_LocationDenied(t *testing.T) {
	f := newFixture(t, func(c *config.Host) { c.Location.AccessGranted = false })

	f.view.click(domain.RequestLocation)
	assert.Equal(t, "Access denied or error fetching location.", f.view.text(domain.LocationStatus))
	assert.Equal(t, "N/A", f.view.text(domain.Latitude))
}

func TestBridge_LocationAccessToggle(t *testing.T) {
	f := newFixture(t, func(c *config.Host) { c.Location.AccessGranted = false })

	lm, ok := f.bridge.LocationManager()
	require.True(t, ok)
	lm.(*host.LocationManager).SetAccessGranted(true)
	f.loop.Wait()

	assert.Equal(t, "Location manager state updated (access: true).", f.view.text(domain.LocationStatus))
}

func TestBridge_LocationInitFailure(t *testing.T) {
	f := newFixture(t, func(c *config.Host) { c.Location.InitError = "permission service down" })

	assert.False(t, f.caps.Location)
	assert.Equal(t, "Error initializing LocationManager: permission service down", f.view.text(domain.LocationStatus))

	f.view.click(domain.RequestLocation)
	assert.Equal(t, "Error initializing LocationManager: permission service down", f.view.text(domain.LocationStatus))
}
