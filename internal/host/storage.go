package host

import (
	"miniapp/internal/domain"
	"miniapp/internal/store"
)

// DeviceStorage adapts store.DeviceFileStore to the callback contract. Calls
// run against the store in the order they were made.
type DeviceStorage struct {
	store *store.DeviceFileStore
	queue *Queue
}

func (d *DeviceStorage) SetItem(key, value string, cb domain.ResultFunc) {
	d.queue.Go(func() func() {
		err := d.store.Set(key, value)
		return func() { cb(err, err == nil) }
	})
}

func (d *DeviceStorage) GetItem(key string, cb domain.ValueFunc) {
	d.queue.Go(func() func() {
		v, ok, err := d.store.Get(key)
		return func() { cb(err, valueOrNil(v, ok && err == nil)) }
	})
}

func (d *DeviceStorage) RemoveItem(key string, cb domain.ResultFunc) {
	d.queue.Go(func() func() {
		removed, err := d.store.Remove(key)
		return func() { cb(err, removed) }
	})
}

func (d *DeviceStorage) Clear(cb domain.ResultFunc) {
	d.queue.Go(func() func() {
		err := d.store.Clear()
		return func() { cb(err, err == nil) }
	})
}

// SecureStorage adapts store.SecureFileStore to the callback contract.
type SecureStorage struct {
	store *store.SecureFileStore
	queue *Queue
}

func (s *SecureStorage) SetItem(key, value string, cb domain.ResultFunc) {
	s.queue.Go(func() func() {
		err := s.store.Set(key, value)
		return func() { cb(err, err == nil) }
	})
}

func (s *SecureStorage) GetItem(key string, cb domain.SecureGetFunc) {
	s.queue.Go(func() func() {
		v, ok, canRestore, err := s.store.Get(key)
		return func() { cb(err, valueOrNil(v, ok && err == nil), canRestore) }
	})
}

func (s *SecureStorage) RemoveItem(key string, cb domain.ResultFunc) {
	s.queue.Go(func() func() {
		removed, err := s.store.Remove(key)
		return func() { cb(err, removed) }
	})
}

func (s *SecureStorage) Clear(cb domain.ResultFunc) {
	s.queue.Go(func() func() {
		err := s.store.Clear()
		return func() { cb(err, err == nil) }
	})
}

func (s *SecureStorage) RestoreItem(key string, cb domain.ValueFunc) {
	s.queue.Go(func() func() {
		v, ok, err := s.store.Restore(key)
		return func() { cb(err, valueOrNil(v, ok && err == nil)) }
	})
}

func valueOrNil(v string, ok bool) *string {
	if !ok {
		return nil
	}
	return &v
}

var (
	_ domain.DeviceStorage = (*DeviceStorage)(nil)
	_ domain.SecureStorage = (*SecureStorage)(nil)
)
