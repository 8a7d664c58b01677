// Package logging provides structured logging utilities for kubeprov.
//
// # Overview
//
// This package wraps the standard library slog package with kubeprov defaults
// so every command logs the same way. It supports environment-based log level
// configuration, module/version context injection, and source location
// tracking for debug logs.
//
// Two handlers are available:
//   - Text (default for the CLI): human readable key=value lines on stderr
//   - JSON (--log-json): one JSON object per line, for log collection
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	logging.SetDefaultStructuredLoggerWithLevel("kubeprov", "v1.0.0", "debug")
//	slog.Info("applying manifest", "file", "myapp-deployment.yaml")
//
//	logging.SetDefaultCLILogger("kubeprov", "v1.0.0", "info")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is supplied:
//
//	LOG_LEVEL=debug kubeprov status myapp
package logging
