// Package logutil provides a structured logging abstraction built on top of slog.
//
// Diagnostics are written to stderr so they never mix with the labels and
// progress frames written to stdout.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("frame rendered", "mode", "spin")
//	logutil.Info("loaded presentation config", "path", path)
//	logutil.Warn("unknown log level, using info", "value", value)
//
//	// Map a --log-level flag value
//	logutil.SetLevel(logutil.ParseLevel("warn"))
//
// Component loggers attach a "component" attribute to every record:
//
//	log := logutil.NewLogger("progress").WithFields("session", id)
//	log.Debug("session stopped")
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set COLORLABELS_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"DEBUG","msg":"session stopped","component":"progress"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=DEBUG msg="session stopped" component=progress
package logutil
