package client

import (
	"go.uber.org/zap"

	"miniapp/internal/domain"
)

const insetUnsupported = "N/A (API not supported)"

// bindFullscreen wires the fullscreen panel and reports whether the host
// exposes the group.
func (c *Client) bindFullscreen() bool {
	fs, ok := c.bridge.Fullscreen()
	if !ok {
		c.log.Info("capability unavailable", zap.String("group", "Fullscreen"))
		c.view.SetText(domain.FullscreenStatus, "Fullscreen API not available.")
		c.disable(domain.RequestFullscreen, domain.ExitFullscreen)
		return false
	}

	c.renderFullscreen(fs)

	c.view.OnClick(domain.RequestFullscreen, fs.RequestFullscreen)
	c.view.OnClick(domain.ExitFullscreen, fs.ExitFullscreen)

	rerender := func(domain.Event) { c.renderFullscreen(fs) }
	c.bridge.OnEvent(domain.EventFullscreenChanged, rerender)
	c.bridge.OnEvent(domain.EventSafeAreaChanged, rerender)
	c.bridge.OnEvent(domain.EventContentSafeAreaChanged, rerender)
	c.bridge.OnEvent(domain.EventFullscreenFailed, func(ev domain.Event) {
		c.log.Warn("fullscreen request failed", zap.String("reason", ev.Error))
		msg := "Fullscreen request failed."
		if ev.Error != "" {
			msg += " (" + ev.Error + ")"
		}
		c.view.SetText(domain.FullscreenStatus, msg)
	})
	return true
}

// renderFullscreen shows the fullscreen flag and both inset pairs.
func (c *Client) renderFullscreen(fs domain.Fullscreen) {
	status := "No"
	if fs.IsFullscreen() {
		status = "Yes"
	}
	c.view.SetText(domain.FullscreenStatus, status)

	inset, ok := fs.SafeAreaInset()
	c.renderInset(inset, ok, domain.SafeAreaTop, domain.SafeAreaBottom)

	content, ok := fs.ContentSafeAreaInset()
	c.renderInset(content, ok, domain.ContentSafeAreaTop, domain.ContentSafeAreaBottom)
}

func (c *Client) renderInset(in domain.Inset, supported bool, top, bottom domain.ElementID) {
	if !supported {
		c.view.SetText(top, insetUnsupported)
		c.view.SetText(bottom, insetUnsupported)
		return
	}
	c.view.SetText(top, optionalNumber(in.Top, "px"))
	c.view.SetText(bottom, optionalNumber(in.Bottom, "px"))
}
