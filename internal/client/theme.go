package client

import (
	"go.uber.org/zap"

	"miniapp/internal/domain"
)

const (
	notAvailable      = "N/A"
	notAvailableError = "N/A (Error)"
)

func (c *Client) bindTheme() {
	c.applyTheme()
	c.bridge.OnEvent(domain.EventThemeChanged, func(domain.Event) { c.applyTheme() })
	c.log.Debug("event listener registered", zap.Stringer("event", domain.EventThemeChanged))
}

// applyTheme mirrors the host theme into body style and the theme elements.
func (c *Client) applyTheme() {
	params, ok := c.bridge.ThemeParams()
	if !ok {
		c.log.Warn("theme params not available for styling")
		c.view.SetText(domain.ColorSchemeDisplay, notAvailableError)
		c.view.SetText(domain.BgColorDisplay, notAvailableError)
		c.view.SetText(domain.TextColorDisplay, notAvailableError)
		return
	}

	scheme := c.bridge.ColorScheme()
	c.log.Info("applying theme",
		zap.Stringer("color_scheme", scheme),
		zap.String("bg_color", params.BgColor),
		zap.String("text_color", params.TextColor),
	)

	if params.BgColor != "" {
		c.view.SetStyle(domain.StyleBackgroundColor, params.BgColor)
	}
	if params.TextColor != "" {
		c.view.SetStyle(domain.StyleColor, params.TextColor)
	}

	c.view.SetText(domain.ColorSchemeDisplay, orNotAvailable(scheme.String()))
	c.view.SetText(domain.BgColorDisplay, orNotAvailable(params.BgColor))
	c.view.SetText(domain.TextColorDisplay, orNotAvailable(params.TextColor))
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
