package client

import (
	"go.uber.org/zap"

	"miniapp/internal/domain"
)

// Capabilities records which host capability groups were found at startup.
type Capabilities struct {
	DeviceStorage bool
	SecureStorage bool
	Fullscreen    bool
	Location      bool
}

// Client is the UI-to-bridge adapter.
type Client struct {
	bridge domain.Bridge
	view   domain.View
	log    *zap.Logger
}

// New returns a client rendering into view. A nil logger discards output.
func New(bridge domain.Bridge, view domain.View, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{bridge: bridge, view: view, log: log.Named("client")}
}

// Start signals readiness to the host and wires every capability group.
// It must be called once.
func (c *Client) Start() Capabilities {
	c.bridge.Ready()
	c.log.Debug("WebApp.ready() called")

	c.bindTheme()

	return Capabilities{
		DeviceStorage: c.bindDeviceStorage(),
		SecureStorage: c.bindSecureStorage(),
		Fullscreen:    c.bindFullscreen(),
		Location:      c.bindLocation(),
	}
}

func (c *Client) disable(ids ...domain.ElementID) {
	for _, id := range ids {
		c.view.SetDisabled(id, true)
	}
}
