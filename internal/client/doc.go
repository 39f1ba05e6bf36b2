// Package client binds mini app controls to host bridge calls.
//
// A Client is constructed with a domain.Bridge and a domain.View. Start
// detects which capability groups the bridge exposes, disables the controls
// of missing groups, binds every remaining control to exactly one bridge call
// and subscribes to the host events that drive re-rendering.
//
// # Behaviour
//
//   - Capability presence is checked once, in Start. A group found missing
//     stays unavailable for the session.
//   - Key/value controls validate the key locally; an empty key is reported on
//     the result element without calling the bridge.
//   - A callback that carries neither an error nor a success value is reported
//     as a generic failure.
//   - Nothing is retried. A failed call is shown once and the user acts again.
//   - Subscriptions are never removed; their lifetime is the session's.
package client
