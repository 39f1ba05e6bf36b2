package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniapp/internal/domain"
)

func TestFullscreen_InitialRender(t *testing.T) {
	b := newFakeBridge()
	b.screen = &fakeFullscreen{
		inset:   &domain.Inset{Top: ptr(47), Bottom: ptr(34)},
		content: &domain.Inset{Top: ptr(56)},
	}
	v, caps := start(t, b)
	require.True(t, caps.Fullscreen)

	assert.Equal(t, "No", v.texts[domain.FullscreenStatus])
	assert.Equal(t, "47px", v.texts[domain.SafeAreaTop])
	assert.Equal(t, "34px", v.texts[domain.SafeAreaBottom])
	assert.Equal(t, "56px", v.texts[domain.ContentSafeAreaTop])
	assert.Equal(t, "N/A", v.texts[domain.ContentSafeAreaBottom])
}

func TestFullscreen_UnsupportedInsets(t *testing.T) {
	b := newFakeBridge()
	b.screen = &fakeFullscreen{}
	v, _ := start(t, b)

	for _, id := range []domain.ElementID{
		domain.SafeAreaTop, domain.SafeAreaBottom, domain.ContentSafeAreaTop, domain.ContentSafeAreaBottom,
	} {
		assert.Equal(t, "N/A (API not supported)", v.texts[id])
	}
}

func TestFullscreen_ButtonsAreFireAndForget(t *testing.T) {
	b := newFakeBridge()
	b.screen = &fakeFullscreen{}
	v, _ := start(t, b)

	v.Click(domain.RequestFullscreen)
	v.Click(domain.ExitFullscreen)

	assert.Equal(t, 1, b.screen.requests)
	assert.Equal(t, 1, b.screen.exits)
	assert.Equal(t, "No", v.texts[domain.FullscreenStatus], "state only changes on host events")
}

func TestFullscreen_RerendersOnEvents(t *testing.T) {
	b := newFakeBridge()
	b.screen = &fakeFullscreen{inset: &domain.Inset{Top: ptr(0), Bottom: ptr(0)}}
	v, _ := start(t, b)

	b.screen.on = true
	b.Emit(domain.Event{Name: domain.EventFullscreenChanged})
	assert.Equal(t, "Yes", v.texts[domain.FullscreenStatus])

	b.screen.inset = &domain.Inset{Top: ptr(24.5), Bottom: ptr(0)}
	b.Emit(domain.Event{Name: domain.EventSafeAreaChanged})
	assert.Equal(t, "24.5px", v.texts[domain.SafeAreaTop])

	b.screen.content = &domain.Inset{Top: ptr(10), Bottom: ptr(5)}
	b.Emit(domain.Event{Name: domain.EventContentSafeAreaChanged})
	assert.Equal(t, "5px", v.texts[domain.ContentSafeAreaBottom])
}

func TestFullscreen_Failed(t *testing.T) {
	b := newFakeBridge()
	b.screen = &fakeFullscreen{}
	v, _ := start(t, b)

	b.Emit(domain.Event{Name: domain.EventFullscreenFailed, Error: "UNSUPPORTED"})
	assert.Equal(t, "Fullscreen request failed. (UNSUPPORTED)", v.texts[domain.FullscreenStatus])

	b.Emit(domain.Event{Name: domain.EventFullscreenFailed})
	assert.Equal(t, "Fullscreen request failed.", v.texts[domain.FullscreenStatus])
}
