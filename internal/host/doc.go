// Package host implements a development host bridge: the capability groups a
// messaging client exposes to a mini app, backed by local files and simple
// simulators so the client can run outside the messaging app.
//
// # Event loop
//
// Every callback and every event delivery runs on one Loop goroutine. Slow
// work (file I/O, location fixes) runs on its own goroutine and posts its
// completion back to the loop, so bridge calls return immediately and the
// client never runs concurrently with itself. Each storage group drains its
// calls through one Queue, so calls on a group reach the store and complete
// in the order they were made.
//
// # Groups
//
//   - DeviceStorage over store.DeviceFileStore (byte quota, purgeable).
//   - SecureStorage over store.SecureFileStore (encrypted, backup for restore).
//     Only exposed when a passphrase is configured.
//   - Fullscreen: state flag plus two inset pairs that change with the mode.
//   - LocationManager: access flag and one configured sample.
package host
