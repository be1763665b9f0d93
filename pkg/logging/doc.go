/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging utilities for winsnap.
//
// It wraps the standard library slog package with project defaults:
// JSON records to stderr, module and version attributes on every
// record, environment-based level configuration (LOG_LEVEL), and
// source location tracking at debug level.
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("winsnap", "v1.0.0")
//
//	    slog.Info("starting capture", "namespace", ns)
//	    slog.Debug("detailed state", "classes", n)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("winsnap", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity:
//
//	LOG_LEVEL=debug winsnap snapshot
package logging
