// Command bookbinder binds a directory of MP3 files into a single chaptered
// M4B audiobook. Each input file becomes one chapter; titles and book
// metadata come from an optional manifest, embedded tags, and the filenames.
package main
