// Package config loads the appliance configuration.
//
// Two independent surfaces are covered:
//
// # Credentials
//
// The Telegram bot token and the single authorized chat ID come from the
// JEWELRYBOX_BOT_TOKEN and JEWELRYBOX_CHAT_ID environment variables, with a
// dotenv-format fallback file (default ~/.jewelrybox_env):
//
//	# ~/.jewelrybox_env
//	JEWELRYBOX_BOT_TOKEN='123456:ABC-DEF...'
//	JEWELRYBOX_CHAT_ID=4242424242
//
// Both values are mandatory. Startup aborts with a non-zero exit if either
// is missing or the chat ID is not an integer.
//
// # Settings
//
// Optional appliance tunables (font sizes, long-poll timeout, SPI port) live
// in a YAML file under the user config directory:
//
//	# ~/.config/jewelrybox/config.yaml
//	message_font_size: 24
//	welcome_font_size: 18
//	poll_timeout_seconds: 30
//	spi_port: ""
//
// A missing settings file is not an error; defaults apply.
//
// Both credentials and settings are loaded once at startup and passed by
// value/reference into the serving loop. No package in this repository reads
// configuration from globals after startup.
package config
