// Package logging provides structured logging for the jewelrybox appliance.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the service. It provides both general logging
// functions and specialized functions for the message-handling loop.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (wrap results, buffer sizes, driver waits)
//   - Info: Normal operations (updates received, display painted, slept)
//   - Warn: Non-fatal issues (unauthorized senders, teardown hiccups)
//   - Error: Failures (paint errors, startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Message sent to display",
//	    zap.Int("lines", len(lines)),
//	    zap.Int("font_size", size),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize("info"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// When no level is passed, the JEWELRYBOX_LOG_LEVEL environment variable is
// consulted; if that is also empty, logging is silent.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
