package book

// Chapter is a titled time range within the concatenated audiobook,
// expressed in milliseconds from the start of the output.
type Chapter struct {
	Index      int
	Title      string
	StartMS    int64
	EndMS      int64
	SourceFile string
}

// DurationMS returns the chapter length.
func (c Chapter) DurationMS() int64 {
	return c.EndMS - c.StartMS
}

// Metadata is the fully resolved book-level record. Empty strings are
// permitted everywhere; after Merge every field holds exactly one value.
type Metadata struct {
	Title       string
	Author      string
	Narrator    string
	Series      string
	Year        string
	Genre       string
	Description string
	Cover       string
}

// DefaultGenre is applied when no other source supplies a genre.
const DefaultGenre = "Audiobook"

// TotalDuration returns the end of the last chapter, which by construction
// equals the sum of all chapter durations.
func TotalDuration(chapters []Chapter) int64 {
	if len(chapters) == 0 {
		return 0
	}
	return chapters[len(chapters)-1].EndMS
}
