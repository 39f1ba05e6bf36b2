package client

import (
	"fmt"

	"miniapp/internal/domain"
)

// storageControls names the elements of one key/value panel.
type storageControls struct {
	key, value, result      domain.ElementID
	set, get, remove, clear domain.ElementID
}

func (sc storageControls) buttons() []domain.ElementID {
	return []domain.ElementID{sc.set, sc.get, sc.remove, sc.clear}
}

// storageText holds the messages of one key/value panel. Entries taking an
// argument are fmt formats.
type storageText struct {
	unavailable string
	emptyKey    string // operation name

	setError, setOK, setFailed          string
	getError, notFound                  string
	removeError, removeOK, removeFailed string
	clearError, clearOK, clearFailed    string
}

var deviceText = storageText{
	unavailable:  "DeviceStorage API is not available.",
	emptyKey:     "Error: Key cannot be empty for %s.",
	setError:     "Error setting item: %v",
	setOK:        "Item set successfully. Key: %s",
	setFailed:    "Failed to set item (unknown reason).",
	getError:     "Error getting item: %v",
	notFound:     "Item not found for key: %s",
	removeError:  "Error removing item: %v",
	removeOK:     "Item removed successfully. Key: %s",
	removeFailed: "Failed to remove item or item not found. Key: %s",
	clearError:   "Error clearing storage: %v",
	clearOK:      "Device storage cleared successfully.",
	clearFailed:  "Failed to clear storage or storage was already empty.",
}

var secureText = storageText{
	unavailable:  "SecureStorage API is not available.",
	emptyKey:     "Error: Key cannot be empty for %s (Secure).",
	setError:     "Error setting secure item: %v",
	setOK:        "Secure item set successfully. Key: %s",
	setFailed:    "Failed to set secure item (unknown reason).",
	getError:     "Error getting secure item: %v",
	notFound:     "Secure item not found for key: %s",
	removeError:  "Error removing secure item: %v",
	removeOK:     "Secure item removed successfully. Key: %s",
	removeFailed: "Failed to remove secure item or item not found. Key: %s",
	clearError:   "Error clearing secure storage: %v",
	clearOK:      "Secure storage cleared successfully.",
	clearFailed:  "Failed to clear secure storage or storage was already empty.",
}

// kvStore is the part of DeviceStorage and SecureStorage whose callbacks
// share a shape.
type kvStore interface {
	SetItem(key, value string, cb domain.ResultFunc)
	RemoveItem(key string, cb domain.ResultFunc)
	Clear(cb domain.ResultFunc)
}

// storagePanel renders one key/value panel.
type storagePanel struct {
	c     *Client
	ctl   storageControls
	text  storageText
	store kvStore
}

func (p *storagePanel) show(format string, args ...any) {
	p.c.view.SetText(p.ctl.result, fmt.Sprintf(format, args...))
}

// key reads the key input. It reports false after showing the local error
// when the key is empty.
func (p *storagePanel) key(op string) (string, bool) {
	k := p.c.view.Value(p.ctl.key)
	if k == "" {
		p.show(p.text.emptyKey, op)
		return "", false
	}
	return k, true
}

func (p *storagePanel) unavailable() {
	p.show("%s", p.text.unavailable)
	p.c.disable(p.ctl.buttons()...)
}

func (p *storagePanel) set() {
	key, ok := p.key("setItem")
	if !ok {
		return
	}
	value := p.c.view.Value(p.ctl.value)
	p.store.SetItem(key, value, func(err error, stored bool) {
		switch {
		case err != nil:
			p.show(p.text.setError, err)
		case stored:
			p.show(p.text.setOK, key)
			p.c.view.SetValue(p.ctl.key, "")
			p.c.view.SetValue(p.ctl.value, "")
		default:
			p.show("%s", p.text.setFailed)
		}
	})
}

func (p *storagePanel) remove() {
	key, ok := p.key("removeItem")
	if !ok {
		return
	}
	p.store.RemoveItem(key, func(err error, removed bool) {
		switch {
		case err != nil:
			p.show(p.text.removeError, err)
		case removed:
			p.show(p.text.removeOK, key)
			p.c.view.SetValue(p.ctl.key, "")
		default:
			p.show(p.text.removeFailed, key)
		}
	})
}

func (p *storagePanel) clear() {
	p.store.Clear(func(err error, cleared bool) {
		switch {
		case err != nil:
			p.show(p.text.clearError, err)
		case cleared:
			p.show("%s", p.text.clearOK)
			p.c.view.SetValue(p.ctl.key, "")
			p.c.view.SetValue(p.ctl.value, "")
		default:
			p.show("%s", p.text.clearFailed)
		}
	})
}
