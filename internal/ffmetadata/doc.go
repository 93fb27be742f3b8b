// Package ffmetadata renders and parses the FFMETADATA1 document that
// carries book tags and chapter boundaries into ffmpeg, plus the concat
// demuxer file list.
//
// The format is strictly line-oriented UTF-8: key=value lines at the top
// level, then one [CHAPTER] block per chapter with a millisecond timebase.
// Values escape '\', '=', ';', '#', and newlines with a backslash. Output is
// byte-stable for identical inputs so golden-file tests stay meaningful.
package ffmetadata
