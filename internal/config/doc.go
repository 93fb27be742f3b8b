// Package config loads, normalizes, and validates bookbinder configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file. A missing config file is not
// an error: every knob has a usable default so the CLI works out of the box.
//
// Always obtain settings through this package so downstream code receives
// sanitized binary paths, canonical log formats, and clear validation errors.
package config
