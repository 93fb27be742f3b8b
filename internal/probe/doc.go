// Package probe inspects input MP3 files and produces immutable AudioFile
// descriptors: duration, bitrate, sample rate, and embedded tags normalized
// to a fixed set of canonical keys.
//
// The primary prober shells out to ffprobe. When ffprobe is not installed a
// pure-Go fallback walks the MP3 frames for duration and reads ID3 tags
// directly, so inspection-only commands work without ffmpeg present.
package probe
