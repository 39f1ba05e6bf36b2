// Package launcher implements the launcher bot: it answers /start with a
// welcome message carrying one inline button that opens the mini app.
//
// A Notifier is built from the launcher section of the config. New validates
// that section first and returns an error wrapping config.ErrInvalid when the
// bot token or launch URL is empty, still the placeholder, or the URL is not
// https; in that case nothing is registered on the router, so no network
// traffic happens.
//
// Once built, the notifier:
//   - Registers a text route for /start that sends WelcomeText with a
//     one-row keyboard whose button (ButtonText) opens the launch URL as a
//     web app.
//   - Logs receive failures as "Polling error: <code> - <message>" or
//     "Webhook error: <code> - <message>" and keeps running.
//   - Logs a failed send and drops it; every /start gets at most one reply.
//
// Run drives a Receiver (telegram.Bot) in the configured mode: long polling
// by default, or a webhook server registered with setWebhook. Webhook mode
// generates a random secret token when none is configured. Both modes stop
// when the context is cancelled.
package launcher
