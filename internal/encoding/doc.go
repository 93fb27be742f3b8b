// Package encoding drives the external ffmpeg process that concatenates the
// input files into a chaptered M4B container.
//
// The core pipeline hands this package a finished plan: a concat list, an
// FFMETADATA descriptor, an optional cover image, and a target bitrate.
// Everything here is process glue; no chapter or metadata decisions are made
// at this layer. Progress arrives on ffmpeg's machine-readable
// "-progress pipe:1" stream and feeds either a terminal progress bar or
// sampled log lines.
package encoding
