// Package logging constructs the slog loggers used across bookbinder.
//
// Two output formats are supported: "console" renders compact human-readable
// lines, "json" emits structured records for log collectors. All log output
// goes to stderr so stdout stays clean for plan tables and manifests.
package logging
