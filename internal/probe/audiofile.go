package probe

import (
	"sort"
	"strings"
)

// Canonical tag keys. Probers normalize whatever the tag reader reports into
// this set before an AudioFile enters the pipeline; downstream code never
// sees tool-specific casing or frame IDs.
const (
	TagTitle       = "title"
	TagArtist      = "artist"
	TagAlbum       = "album"
	TagAlbumArtist = "album_artist"
	TagComposer    = "composer"
	TagGenre       = "genre"
	TagDate        = "date"
	TagYear        = "year"
	TagDescription = "description"
)

// tagAliases maps raw tag names onto canonical keys in precedence order:
// when two aliases of the same canonical key are both present, the one
// listed first wins.
var tagAliases = []struct {
	raw       string
	canonical string
}{
	{"title", TagTitle},
	{"artist", TagArtist},
	{"album", TagAlbum},
	{"album_artist", TagAlbumArtist},
	{"albumartist", TagAlbumArtist},
	{"composer", TagComposer},
	{"genre", TagGenre},
	{"date", TagDate},
	{"year", TagYear},
	{"description", TagDescription},
	{"comment", TagDescription},
}

// AudioFile is the immutable record of one probed input file.
type AudioFile struct {
	Path        string
	Filename    string
	DurationMS  int64
	BitrateKbps int
	SampleRate  int
	Tags        map[string]string
}

// Tag returns the value for a canonical tag key, trimmed, or "".
func (f AudioFile) Tag(key string) string {
	return strings.TrimSpace(f.Tags[key])
}

// normalizeTags maps raw tag keys onto the canonical set, dropping unknown
// keys and empty values. Alias precedence follows tagAliases; identical keys
// differing only in case resolve in sorted key order, so the result never
// depends on map iteration order.
func normalizeTags(raw map[string]string) map[string]string {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lowered := make(map[string]string, len(raw))
	for _, key := range keys {
		cleaned := strings.ToLower(strings.TrimSpace(key))
		if _, exists := lowered[cleaned]; !exists {
			lowered[cleaned] = strings.TrimSpace(raw[key])
		}
	}

	tags := make(map[string]string, len(tagAliases))
	for _, alias := range tagAliases {
		if _, exists := tags[alias.canonical]; exists {
			continue
		}
		if value := lowered[alias.raw]; value != "" {
			tags[alias.canonical] = value
		}
	}
	return tags
}
