// Command launcher runs the bot that hands out the mini app button.
//
// Usage
//
//	launcher run [--config launcher.yaml] [--verbose]
//	launcher schema
//
// The bot token and launch URL come from the config file or from
// MINIAPP_BOT_TOKEN and MINIAPP_LAUNCH_URL. A missing or placeholder value
// stops the process with exit status 78 before any network I/O.
package main
