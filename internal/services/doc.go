// Package services defines the shared error vocabulary for the conversion
// pipeline. Failures are tagged with sentinel markers so the CLI can classify
// them (and choose an exit code) without string matching.
package services
