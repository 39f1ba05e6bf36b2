// Package store provides the file-backed storage behind the development
// host's storage capability groups.
//
// Two stores live here:
//   - DeviceFileStore: plain JSON key/value file with a byte quota. The host may
//     purge it at any time, mirroring non-persistent device storage.
//   - SecureFileStore: key/value map sealed with a passphrase-derived key
//     (scrypt + ChaCha20-Poly1305). Every write is mirrored to a backup file
//     that stands in for the cross-device sync channel, so values lost locally
//     can be restored.
//
// All methods are safe for concurrent use. Files are written via a temp file
// and rename so a crash never leaves a half-written store behind.
package store
