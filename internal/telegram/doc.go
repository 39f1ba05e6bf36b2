// Package telegram is a small Bot API client for the launcher.
//
// Client speaks JSON over HTTPS to https://api.telegram.org/bot<token>/<method>
// and covers the handful of methods the launcher needs. Bot layers a text
// router on top and receives updates either by long polling getUpdates or
// through a webhook served with gorilla/mux.
//
// Every failure is reported as *Error, whose Code tells transport problems
// (EFATAL), undecodable bodies (EPARSE) and API refusals (ETELEGRAM) apart.
package telegram
