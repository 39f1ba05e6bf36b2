package store

import (
	"encoding/json"
	"path/filepath"
	"sync"
)

const (
	secureFilename = "secure_storage.enc"
	backupFilename = "secure_backup.enc"

	// MaxSecureItems is the number of items secure storage holds per mini app.
	MaxSecureItems = 10
)

// SecureFileStore keeps an encrypted key/value map on disk and mirrors it to
// an encrypted backup. Removing or clearing items removes them from both; the
// backup only diverges when the local file is lost (see ResetLocal).
type SecureFileStore struct {
	dir        string
	passphrase string
	kdf        scryptParams
	mu         sync.Mutex
}

// SecureOption configures a SecureFileStore.
type SecureOption func(*SecureFileStore)

// WithScryptCost overrides the key derivation cost. Lower costs are only
// sensible in tests.
func WithScryptCost(n, r, p int) SecureOption {
	return func(s *SecureFileStore) { s.kdf = scryptParams{N: n, R: r, P: p} }
}

// NewSecureFileStore returns a SecureFileStore rooted at dir, sealed with a
// key derived from passphrase.
func NewSecureFileStore(dir, passphrase string, opts ...SecureOption) *SecureFileStore {
	s := &SecureFileStore{dir: dir, passphrase: passphrase, kdf: defaultScryptParams()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SecureFileStore) load(name string) (map[string]string, error) {
	m := map[string]string{}
	b, err := readFile(filepath.Join(s.dir, name))
	if err != nil || b == nil {
		return m, err
	}
	raw, err := open(s.passphrase, b)
	if err != nil {
		return nil, err
	}
	defer wipe(raw)
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SecureFileStore) save(name string, m map[string]string) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	defer wipe(raw)
	b, err := seal(s.passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, name), b)
}

// saveBoth writes the local map and mirrors it to the backup.
func (s *SecureFileStore) saveBoth(m map[string]string) error {
	if err := s.save(secureFilename, m); err != nil {
		return err
	}
	return s.save(backupFilename, m)
}

// Set stores value under key. A new key beyond MaxSecureItems fails with
// ErrTooManyItems.
func (s *SecureFileStore) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(secureFilename)
	if err != nil {
		return err
	}
	if _, exists := m[key]; !exists && len(m) >= MaxSecureItems {
		return ErrTooManyItems
	}
	m[key] = value
	return s.saveBoth(m)
}

// Get returns the local value for key. When the key is absent locally,
// canRestore reports whether the backup still holds it.
func (s *SecureFileStore) Get(key string) (value string, ok, canRestore bool, err error) {
	if err := validateKey(key); err != nil {
		return "", false, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(secureFilename)
	if err != nil {
		return "", false, false, err
	}
	if v, ok := m[key]; ok {
		return v, true, false, nil
	}
	backup, err := s.load(backupFilename)
	if err != nil {
		return "", false, false, err
	}
	_, canRestore = backup[key]
	return "", false, canRestore, nil
}

// Remove deletes key locally and from the backup, reporting whether it was
// present locally.
func (s *SecureFileStore) Remove(key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load(secureFilename)
	if err != nil {
		return false, err
	}
	if _, ok := m[key]; !ok {
		return false, nil
	}
	delete(m, key)
	return true, s.saveBoth(m)
}

// Clear removes every item locally and from the backup.
func (s *SecureFileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveBoth(map[string]string{})
}

// Restore copies key from the backup into local storage. ok is false when the
// backup does not hold the key.
func (s *SecureFileStore) Restore(key string) (value string, ok bool, err error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	backup, err := s.load(backupFilename)
	if err != nil {
		return "", false, err
	}
	v, ok := backup[key]
	if !ok {
		return "", false, nil
	}
	m, err := s.load(secureFilename)
	if err != nil {
		return "", false, err
	}
	if _, exists := m[key]; !exists && len(m) >= MaxSecureItems {
		return "", false, ErrTooManyItems
	}
	m[key] = v
	if err := s.save(secureFilename, m); err != nil {
		return "", false, err
	}
	return v, true, nil
}

// ResetLocal discards the local file and keeps the backup, the state a user
// is in after reinstalling on a new device.
func (s *SecureFileStore) ResetLocal() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(filepath.Join(s.dir, secureFilename))
}
