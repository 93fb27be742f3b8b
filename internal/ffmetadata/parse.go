package ffmetadata

import (
	"fmt"
	"strconv"
	"strings"

	"bookbinder/internal/book"
	"bookbinder/internal/services"
)

// Parse is the inverse of Marshal, used for regeneration checks and tests.
// Chapter source files are not part of the wire format, so parsed chapters
// carry indices, titles, and offsets only.
func Parse(data []byte) (book.Metadata, []book.Chapter, error) {
	lines := logicalLines(string(data))
	if len(lines) == 0 || lines[0] != Header {
		return book.Metadata{}, nil, parseErr("missing %s header", Header)
	}

	var meta book.Metadata
	var chapters []book.Chapter
	var current *book.Chapter

	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		if line == "[CHAPTER]" {
			if current != nil {
				chapters = append(chapters, *current)
			}
			current = &book.Chapter{Index: len(chapters)}
			continue
		}
		key, rawValue, ok := strings.Cut(line, "=")
		if !ok {
			return book.Metadata{}, nil, parseErr("malformed line %q", line)
		}
		value := unescapeValue(rawValue)

		if current == nil {
			applyBookField(&meta, key, value)
			continue
		}
		switch key {
		case "TIMEBASE":
			if rawValue != Timebase {
				return book.Metadata{}, nil, parseErr("unsupported timebase %q", rawValue)
			}
		case "START", "END":
			offset, err := strconv.ParseInt(rawValue, 10, 64)
			if err != nil {
				return book.Metadata{}, nil, parseErr("bad %s offset %q", key, rawValue)
			}
			if key == "START" {
				current.StartMS = offset
			} else {
				current.EndMS = offset
			}
		case "title":
			current.Title = value
		}
	}
	if current != nil {
		chapters = append(chapters, *current)
	}
	return meta, chapters, nil
}

func applyBookField(meta *book.Metadata, key, value string) {
	switch key {
	case "title":
		meta.Title = value
	case "album":
		if meta.Title == "" {
			meta.Title = value
		}
	case "artist":
		meta.Author = value
	case "genre":
		meta.Genre = value
	case "composer":
		meta.Narrator = value
	case "date":
		meta.Year = value
	case "description":
		meta.Description = value
	}
}

// logicalLines splits raw text into lines, re-joining physical lines whose
// newline was escaped with a trailing backslash.
func logicalLines(text string) []string {
	physical := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	var lines []string
	for i := 0; i < len(physical); i++ {
		line := physical[i]
		for endsWithEscape(line) && i+1 < len(physical) {
			i++
			line = line[:len(line)-1] + "\n" + physical[i]
		}
		lines = append(lines, line)
	}
	return lines
}

func endsWithEscape(line string) bool {
	trailing := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		trailing++
	}
	return trailing%2 == 1
}

func unescapeValue(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+1 < len(value) {
			i++
		}
		b.WriteByte(value[i])
	}
	return b.String()
}

func parseErr(format string, args ...any) error {
	return services.Wrap(services.ErrValidation, "ffmetadata", "parse",
		fmt.Sprintf(format, args...), nil)
}
