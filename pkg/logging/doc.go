/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging utilities for unikit.
//
// It wraps the standard library slog package with project defaults:
// JSON output to stderr, environment-based level configuration via
// LOG_LEVEL, automatic module and version context on every record, and
// source location tracking for debug logs.
//
// Setting the default logger (recommended, early in main):
//
//	logging.SetDefaultStructuredLogger("unikit", version)
//	slog.Info("configure starting", "config", path)
//
// Setting an explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("unikit", version, "debug")
//
// Supported levels (case-insensitive): DEBUG, INFO (default), WARN/WARNING,
// ERROR. Progress messages intended for the user go to the standard
// stream from the CLI layer; slog records are diagnostics and always go
// to stderr.
package logging
