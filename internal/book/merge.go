package book

import (
	"strings"

	"bookbinder/internal/probe"
)

// Merge resolves the final book metadata. Priority per field, highest first:
// CLI override, manifest field, tag-derived value, built-in default. Genre
// falls back to defaultGenre (or DefaultGenre when that is empty); every
// other field defaults to the empty string. Cover follows the same rule; the
// detected record carries any cover image discovered alongside the inputs.
func Merge(manifest, cli, detected Metadata, defaultGenre string) Metadata {
	if strings.TrimSpace(defaultGenre) == "" {
		defaultGenre = DefaultGenre
	}
	return Metadata{
		Title:       firstNonEmpty(cli.Title, manifest.Title, detected.Title),
		Author:      firstNonEmpty(cli.Author, manifest.Author, detected.Author),
		Narrator:    firstNonEmpty(cli.Narrator, manifest.Narrator, detected.Narrator),
		Series:      firstNonEmpty(cli.Series, manifest.Series, detected.Series),
		Year:        firstNonEmpty(cli.Year, manifest.Year, detected.Year),
		Genre:       firstNonEmpty(cli.Genre, manifest.Genre, detected.Genre, defaultGenre),
		Description: firstNonEmpty(cli.Description, manifest.Description, detected.Description),
		Cover:       firstNonEmpty(cli.Cover, manifest.Cover, detected.Cover),
	}
}

// AggregateTags derives book-level candidates from the tags across all
// files: album for the title, artist (then album_artist) for the author,
// composer for the narrator, date (then year) for the year, and the genre
// tag. Each field takes the most common non-empty value; ties break in favor
// of the value seen first in file order.
func AggregateTags(files []probe.AudioFile) Metadata {
	return Metadata{
		Title:    mostCommonTag(files, probe.TagAlbum),
		Author:   firstNonEmpty(mostCommonTag(files, probe.TagArtist), mostCommonTag(files, probe.TagAlbumArtist)),
		Narrator: mostCommonTag(files, probe.TagComposer),
		Year:     firstNonEmpty(mostCommonTag(files, probe.TagDate), mostCommonTag(files, probe.TagYear)),
		Genre:    mostCommonTag(files, probe.TagGenre),
	}
}

func mostCommonTag(files []probe.AudioFile, key string) string {
	counts := map[string]int{}
	var order []string
	for _, file := range files {
		value := file.Tag(key)
		if value == "" {
			continue
		}
		if counts[value] == 0 {
			order = append(order, value)
		}
		counts[value]++
	}

	best := ""
	bestCount := 0
	for _, value := range order {
		if counts[value] > bestCount {
			best = value
			bestCount = counts[value]
		}
	}
	return best
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
