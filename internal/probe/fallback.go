package probe

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dhowden/tag"
	"github.com/tcolgate/mp3"

	"bookbinder/internal/services"
)

// fallbackSampleRate is assumed when only the pure-Go prober runs; the frame
// walk yields duration but the sample rate stays with the encoder defaults.
const fallbackSampleRate = 44100

// fallbackFile probes an MP3 without ffprobe: ID3 tags via dhowden/tag,
// duration via a full frame walk, bitrate derived from size over duration.
func fallbackFile(path string) (AudioFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	info, err := os.Stat(path)
	if err != nil {
		return AudioFile{}, services.Wrap(services.ErrExternalTool, "probe", "stat", path, err)
	}

	duration, err := frameWalkDuration(path)
	if err != nil {
		return AudioFile{}, services.Wrap(services.ErrExternalTool, "probe", "decode mp3", path, err)
	}

	bitrate := 0
	if seconds := duration.Seconds(); seconds > 0 {
		bitrate = int(math.Round(float64(info.Size()) * 8 / seconds / 1000))
	}

	return AudioFile{
		Path:        abs,
		Filename:    filepath.Base(path),
		DurationMS:  duration.Milliseconds(),
		BitrateKbps: bitrate,
		SampleRate:  fallbackSampleRate,
		Tags:        readID3Tags(path),
	}, nil
}

func frameWalkDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	decoder := mp3.NewDecoder(f)
	var frame mp3.Frame
	var skipped int
	var total time.Duration

	for {
		if err := decoder.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		total += frame.Duration()
	}
	return total, nil
}

// readID3Tags reads embedded tags directly from the file. Missing or broken
// tags are not an error; the descriptor just carries an empty map.
func readID3Tags(path string) map[string]string {
	f, err := os.Open(path)
	if err != nil {
		return map[string]string{}
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return map[string]string{}
	}

	raw := map[string]string{
		"title":        meta.Title(),
		"artist":       meta.Artist(),
		"album":        meta.Album(),
		"album_artist": meta.AlbumArtist(),
		"composer":     meta.Composer(),
		"genre":        meta.Genre(),
	}
	if year := meta.Year(); year > 0 {
		raw["year"] = strconv.Itoa(year)
	}
	return normalizeTags(raw)
}
