// Package logging assembles structured slog loggers and formatting helpers used
// across docsim.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so pipeline code can tag log
// lines with the analysis run ID. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Logs are diagnostics, not results: the CLI sends them to stderr so reports
// on stdout stay machine-readable.
package logging
