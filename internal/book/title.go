package book

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bookbinder/internal/probe"
	"bookbinder/internal/textutil"
)

// numberingPrefix matches leading track numbering like "01_", "03 - ", "2.".
var numberingPrefix = regexp.MustCompile(`^\d+[\s._-]*(?:-\s*)?`)

// wordNumberingPrefix matches "Track 2 - ", "Chapter 03 - ", and similar.
// The trailing dash is required so names like "chapter_02" keep their number.
var wordNumberingPrefix = regexp.MustCompile(`(?i)^(?:track|chapter|part)\s*\d+\s*-\s*`)

var titleCaser = cases.Title(language.Und)

// ResolveTitle picks the display title for one chapter. Priority, first
// non-empty wins: manifest override, embedded title tag, cleaned filename.
// Always returns a non-empty string.
func ResolveTitle(file probe.AudioFile, manifestOverride string) string {
	if override := strings.TrimSpace(manifestOverride); override != "" {
		return override
	}
	if tagged := file.Tag(probe.TagTitle); tagged != "" {
		return tagged
	}
	return CleanChapterName(file.Filename)
}

// CleanChapterName derives a chapter title from a filename: the extension
// and any numbering prefix are stripped, separators become spaces, and an
// all-lowercase result is title-cased.
//
//	"01_intro.mp3"            -> "Intro"
//	"03 - Chapter Three.mp3"  -> "Chapter Three"
//	"chapter_02.mp3"          -> "Chapter 02"
//
// Falls back to the filename stem when cleaning strips everything.
func CleanChapterName(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))

	name := numberingPrefix.ReplaceAllString(stem, "")
	if stripped := wordNumberingPrefix.ReplaceAllString(name, ""); strings.TrimSpace(stripped) != "" {
		name = stripped
	}
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	name = textutil.CollapseSpaces(name)
	if name == "" {
		name = stem
	}
	if name == "" {
		name = filename
	}
	if name == strings.ToLower(name) {
		name = titleCaser.String(name)
	}
	return name
}
