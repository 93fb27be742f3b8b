package book

import (
	"fmt"

	"bookbinder/internal/probe"
	"bookbinder/internal/services"
)

// Timeline contract violations. Each wraps services.ErrInternal, so callers
// can branch on the specific kind while exit-code mapping stays unchanged.
var (
	ErrEmptyInput      = fmt.Errorf("%w: timeline: no audio files", services.ErrInternal)
	ErrLengthMismatch  = fmt.Errorf("%w: timeline: files and titles differ in length", services.ErrInternal)
	ErrInvalidDuration = fmt.Errorf("%w: timeline: non-positive duration", services.ErrInternal)
)

// BuildTimeline converts ordered audio files plus their resolved titles into
// chapters with cumulative offsets: chapter i starts where chapter i-1 ends,
// the first starts at 0, and the last ends at the total duration. The errors
// here are contract violations in the caller, never bad user input.
func BuildTimeline(files []probe.AudioFile, titles []string) ([]Chapter, error) {
	if len(files) == 0 {
		return nil, ErrEmptyInput
	}
	if len(files) != len(titles) {
		return nil, fmt.Errorf("%w: %d files but %d titles", ErrLengthMismatch, len(files), len(titles))
	}

	chapters := make([]Chapter, 0, len(files))
	var cursor int64
	for i, file := range files {
		if file.DurationMS <= 0 {
			return nil, fmt.Errorf("%w: %dms for %s", ErrInvalidDuration, file.DurationMS, file.Filename)
		}
		chapters = append(chapters, Chapter{
			Index:      i,
			Title:      titles[i],
			StartMS:    cursor,
			EndMS:      cursor + file.DurationMS,
			SourceFile: file.Filename,
		})
		cursor += file.DurationMS
	}
	return chapters, nil
}
