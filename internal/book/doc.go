// Package book holds the chapter-timeline and metadata-resolution core.
//
// Everything here is a pure function over probed inputs: building the
// cumulative chapter timeline, resolving per-chapter titles, merging
// book-level metadata from its candidate sources, and selecting the output
// bitrate. No I/O happens in this package; callers feed it AudioFile
// descriptors and manifest/CLI values and serialize the results elsewhere.
package book
