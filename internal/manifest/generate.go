package manifest

import (
	"bookbinder/internal/book"
	"bookbinder/internal/probe"
)

// Generate builds a pre-filled manifest from probed files: one entry per
// file with the resolved chapter title (tags, then cleaned filename) and
// book-level fields from the detected metadata. Missing data stays empty so
// the user can fill it in by hand; generation itself never fails.
func Generate(files []probe.AudioFile, detected book.Metadata) *Manifest {
	entries := make([]Entry, 0, len(files))
	for _, file := range files {
		entries = append(entries, Entry{
			File:  file.Filename,
			Title: book.ResolveTitle(file, ""),
		})
	}
	return &Manifest{
		Title:       detected.Title,
		Author:      detected.Author,
		Narrator:    detected.Narrator,
		Series:      detected.Series,
		Year:        looseString(detected.Year),
		Genre:       detected.Genre,
		Description: detected.Description,
		Cover:       detected.Cover,
		Chapters:    entries,
	}
}
