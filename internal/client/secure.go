package client

import (
	"go.uber.org/zap"

	"miniapp/internal/domain"
)

var secureControls = storageControls{
	key:    domain.SSKey,
	value:  domain.SSValue,
	result: domain.SSResult,
	set:    domain.SSSetItem,
	get:    domain.SSGetItem,
	remove: domain.SSRemoveItem,
	clear:  domain.SSClearAll,
}

// bindSecureStorage wires the secure storage panel and reports whether the
// host exposes the group.
func (c *Client) bindSecureStorage() bool {
	ss, ok := c.bridge.SecureStorage()
	p := &storagePanel{c: c, ctl: secureControls, text: secureText}
	if !ok {
		c.log.Info("capability unavailable", zap.String("group", "SecureStorage"))
		p.unavailable()
		c.disable(domain.SSRestoreItem)
		return false
	}
	p.store = ss

	c.view.OnClick(domain.SSSetItem, p.set)
	c.view.OnClick(domain.SSGetItem, func() { c.secureGet(p, ss) })
	c.view.OnClick(domain.SSRemoveItem, p.remove)
	c.view.OnClick(domain.SSClearAll, p.clear)
	c.view.OnClick(domain.SSRestoreItem, func() { c.secureRestore(p, ss) })
	return true
}

// secureGet never displays the value. It goes to the log only.
func (c *Client) secureGet(p *storagePanel, ss domain.SecureStorage) {
	key, ok := p.key("getItem")
	if !ok {
		return
	}
	ss.GetItem(key, func(err error, value *string, canRestore bool) {
		switch {
		case err != nil:
			p.show(p.text.getError, err)
		case value == nil && canRestore:
			p.show(p.text.notFound+". It can be restored.", key)
		case value == nil:
			p.show(p.text.notFound, key)
		default:
			c.log.Info("secure storage item", zap.String("key", key), zap.String("value", *value))
			p.show("Secure item for key \"%s\" retrieved. Check console.", key)
		}
	})
}

func (c *Client) secureRestore(p *storagePanel, ss domain.SecureStorage) {
	key, ok := p.key("restoreItem")
	if !ok {
		return
	}
	ss.RestoreItem(key, func(err error, value *string) {
		switch {
		case err != nil:
			p.show("Error restoring secure item: %v", err)
		case value == nil:
			p.show("Secure item for key \"%s\" cannot be restored.", key)
		default:
			c.log.Info("secure storage item restored", zap.String("key", key), zap.String("value", *value))
			p.show("Secure item for key \"%s\" restored. Check console.", key)
		}
	})
}
