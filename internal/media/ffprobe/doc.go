// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no bookbinder-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual stream properties (codec, bitrate, sample rate)
//   - Format: container-level metadata (duration, bitrate, embedded tags)
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns parsed Result
//
// Helper methods on Result provide convenient access to the audio stream,
// duration parsing, bitrate extraction, and merged tag maps.
package ffprobe
