// Package bot is the serving loop of the jewelrybox appliance.
//
// It long-polls the Telegram Bot API for updates and relays text from the
// single authorized chat to the e-paper display. Processing is strictly
// sequential: one update runs to completion (authorize, render, wake, paint,
// sleep, reply) before the next is read. Backpressure is left to Telegram's
// own update queue; this loop imposes none of its own.
//
// # Commands
//
//	/start     welcome text, no display access
//	/clear     wake, clear, sleep cycle on the panel
//	/shutdown  stop the loop; the panel keeps its last content
//
// Any other text is word-wrapped and painted at the configured message font
// size.
//
// # Failure policy
//
// The startup self-test (wake, clear, sleep) is fatal when it fails; serving
// never starts without a working display. Everything after that is
// recoverable: a failed render, paint, or clear is logged, described in the
// reply, and the loop moves on. Nothing is retried; the operator resends the
// message. Unauthorized senders get a warning log entry and a polite
// rejection, with no lockout or rate limiting.
package bot
