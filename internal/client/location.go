package client

import (
	"fmt"

	"go.uber.org/zap"

	"miniapp/internal/domain"
)

// bindLocation initialises the location manager and wires the request
// control. A failed init disables the control for the rest of the session;
// no click handler or location subscription is installed in that case.
func (c *Client) bindLocation() bool {
	lm, ok := c.bridge.LocationManager()
	if !ok {
		c.log.Info("capability unavailable", zap.String("group", "LocationManager"))
		c.view.SetText(domain.LocationStatus, "Geolocation API not available.")
		c.disable(domain.RequestLocation)
		return false
	}

	if err := lm.Init(); err != nil {
		c.log.Error("location manager init failed", zap.Error(err))
		c.view.SetText(domain.LocationStatus, "Error initializing LocationManager: "+err.Error())
		c.disable(domain.RequestLocation)
		return false
	}

	c.view.OnClick(domain.RequestLocation, func() { c.requestLocation(lm) })

	c.bridge.OnEvent(domain.EventLocationManagerUpdated, func(domain.Event) {
		granted := lm.IsAccessGranted()
		c.log.Info("location manager state updated", zap.Bool("access_granted", granted))
		c.view.SetText(domain.LocationStatus,
			fmt.Sprintf("Location manager state updated (access: %t).", granted))
	})
	c.bridge.OnEvent(domain.EventLocationRequested, func(ev domain.Event) {
		if ev.Location == nil {
			c.log.Info("location requested event without location data")
			return
		}
		c.log.Info("location requested event", zap.Any("location", ev.Location))
	})
	return true
}

func (c *Client) requestLocation(lm domain.LocationManager) {
	c.view.SetText(domain.LocationStatus, "Requesting location...")
	for _, id := range []domain.ElementID{domain.Latitude, domain.Longitude, domain.Altitude, domain.Accuracy} {
		c.view.SetText(id, notAvailable)
	}

	lm.GetLocation(func(data *domain.LocationData) {
		if data == nil {
			c.view.SetText(domain.LocationStatus, "Access denied or error fetching location.")
			return
		}
		c.view.SetText(domain.LocationStatus, "Success")
		c.view.SetText(domain.Latitude, optionalNumber(data.Latitude, ""))
		c.view.SetText(domain.Longitude, optionalNumber(data.Longitude, ""))
		c.view.SetText(domain.Altitude, optionalNumber(data.Altitude, ""))
		c.view.SetText(domain.Accuracy, fmt.Sprintf("Horiz: %s / Vert: %s",
			optionalNumber(data.HorizontalAccuracy, "m"),
			optionalNumber(data.VerticalAccuracy, "m"),
		))
	})
}
