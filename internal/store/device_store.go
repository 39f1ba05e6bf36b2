package store

import (
	"path/filepath"
	"sync"
)

const (
	deviceFilename = "device_storage.json"

	// DefaultDeviceQuota is the byte budget of device storage per mini app.
	DefaultDeviceQuota = 5 << 20
)

// DeviceFileStore is a JSON key/value file with a byte quota over keys and
// values.
type DeviceFileStore struct {
	path  string
	quota int
	mu    sync.Mutex
}

// NewDeviceFileStore returns a DeviceFileStore rooted at dir. A quota of zero
// or less selects DefaultDeviceQuota.
func NewDeviceFileStore(dir string, quota int) *DeviceFileStore {
	if quota <= 0 {
		quota = DefaultDeviceQuota
	}
	return &DeviceFileStore{path: filepath.Join(dir, deviceFilename), quota: quota}
}

func (s *DeviceFileStore) load() (map[string]string, error) {
	m := map[string]string{}
	if err := readJSON(s.path, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Set stores value under key. It fails with ErrQuotaExceeded when the store
// would grow past its quota.
func (s *DeviceFileStore) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = value
	if usage(m) > s.quota {
		return ErrQuotaExceeded
	}
	return writeJSON(s.path, m)
}

// Get returns the value for key and whether it was present.
func (s *DeviceFileStore) Get(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

// Remove deletes key and reports whether it was present.
func (s *DeviceFileStore) Remove(key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := m[key]; !ok {
		return false, nil
	}
	delete(m, key)
	return true, writeJSON(s.path, m)
}

// Clear removes every entry.
func (s *DeviceFileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path, map[string]string{})
}

// Purge drops the backing file, the way a host reclaims device storage under
// pressure.
func (s *DeviceFileStore) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(s.path)
}

// Usage returns the bytes currently counted against the quota.
func (s *DeviceFileStore) Usage() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return 0, err
	}
	return usage(m), nil
}

func usage(m map[string]string) int {
	n := 0
	for k, v := range m {
		n += len(k) + len(v)
	}
	return n
}
