package ffmetadata

import "strings"

// ConcatList renders the ffmpeg concat demuxer input: one file directive per
// line, in chapter order. Single quotes inside paths use the '\'' escape the
// demuxer expects.
func ConcatList(paths []string) []byte {
	var b strings.Builder
	for _, path := range paths {
		b.WriteString("file '")
		b.WriteString(strings.ReplaceAll(path, "'", `'\''`))
		b.WriteString("'\n")
	}
	return []byte(b.String())
}
