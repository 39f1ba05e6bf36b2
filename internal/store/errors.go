package store

import "errors"

// Errors mirror the error codes the messaging host reports to mini apps.
var (
	ErrKeyInvalid    = errors.New("KEY_INVALID")
	ErrQuotaExceeded = errors.New("QUOTA_EXCEEDED")
	ErrTooManyItems  = errors.New("STORAGE_LIMIT_EXCEEDED")

	// Returned when the passphrase is wrong or a sealed file was modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted secure storage")
)

// maxKeyLength is the longest key either store accepts, in bytes.
const maxKeyLength = 128

func validateKey(key string) error {
	if key == "" || len(key) > maxKeyLength {
		return ErrKeyInvalid
	}
	return nil
}
