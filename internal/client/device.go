package client

import (
	"go.uber.org/zap"

	"miniapp/internal/domain"
)

var deviceControls = storageControls{
	key:    domain.DSKey,
	value:  domain.DSValue,
	result: domain.DSResult,
	set:    domain.DSSetItem,
	get:    domain.DSGetItem,
	remove: domain.DSRemoveItem,
	clear:  domain.DSClearAll,
}

// bindDeviceStorage wires the non-persistent storage panel and reports
// whether the host exposes the group.
func (c *Client) bindDeviceStorage() bool {
	ds, ok := c.bridge.DeviceStorage()
	p := &storagePanel{c: c, ctl: deviceControls, text: deviceText}
	if !ok {
		c.log.Info("capability unavailable", zap.String("group", "DeviceStorage"))
		p.unavailable()
		return false
	}
	p.store = ds

	c.view.OnClick(domain.DSSetItem, p.set)
	c.view.OnClick(domain.DSGetItem, func() { c.deviceGet(p, ds) })
	c.view.OnClick(domain.DSRemoveItem, p.remove)
	c.view.OnClick(domain.DSClearAll, p.clear)
	return true
}

func (c *Client) deviceGet(p *storagePanel, ds domain.DeviceStorage) {
	key, ok := p.key("getItem")
	if !ok {
		return
	}
	ds.GetItem(key, func(err error, value *string) {
		switch {
		case err != nil:
			p.show(p.text.getError, err)
		case value == nil:
			p.show(p.text.notFound, key)
		default:
			p.show("Got item. Key: %s, Value: %s", key, *value)
		}
	})
}
