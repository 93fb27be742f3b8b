package ffmetadata

import (
	"fmt"
	"strings"

	"bookbinder/internal/book"
	"bookbinder/internal/services"
)

// Header is the mandatory first line of an FFMETADATA document.
const Header = ";FFMETADATA1"

// Timebase declares chapter offsets in milliseconds.
const Timebase = "1/1000"

// Marshal renders book metadata and chapters into FFMETADATA1. Book fields
// map onto the M4B tag names ffmpeg expects: author becomes artist, the book
// title doubles as album, narrator becomes composer, year becomes date.
// Empty fields are omitted. Fails when a value carries a carriage return,
// which the line-oriented format cannot escape.
func Marshal(meta book.Metadata, chapters []book.Chapter) ([]byte, error) {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')

	fields := []struct {
		key   string
		value string
	}{
		{"title", meta.Title},
		{"artist", meta.Author},
		{"album", meta.Title},
		{"genre", meta.Genre},
		{"composer", meta.Narrator},
		{"date", meta.Year},
		{"description", meta.Description},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		escaped, err := escapeValue(field.key, field.value)
		if err != nil {
			return nil, err
		}
		b.WriteString(field.key)
		b.WriteByte('=')
		b.WriteString(escaped)
		b.WriteByte('\n')
	}

	for _, chapter := range chapters {
		title, err := escapeValue(fmt.Sprintf("chapter %d title", chapter.Index+1), chapter.Title)
		if err != nil {
			return nil, err
		}
		b.WriteByte('\n')
		b.WriteString("[CHAPTER]\n")
		b.WriteString("TIMEBASE=" + Timebase + "\n")
		fmt.Fprintf(&b, "START=%d\n", chapter.StartMS)
		fmt.Fprintf(&b, "END=%d\n", chapter.EndMS)
		b.WriteString("title=" + title + "\n")
	}

	return []byte(b.String()), nil
}

var valueEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"=", "\\=",
	";", "\\;",
	"#", "\\#",
	"\n", "\\\n",
)

func escapeValue(field, value string) (string, error) {
	if strings.ContainsRune(value, '\r') {
		return "", services.Wrap(services.ErrValidation, "metadata", "serialize",
			fmt.Sprintf("field %s contains a carriage return", field), nil)
	}
	return valueEscaper.Replace(value), nil
}
