package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index      int               `json:"index"`
	CodecName  string            `json:"codec_name"`
	CodecType  string            `json:"codec_type"`
	Duration   string            `json:"duration"`
	BitRate    string            `json:"bit_rate"`
	SampleRate string            `json:"sample_rate"`
	Channels   int               `json:"channels"`
	Tags       map[string]string `json:"tags"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string            `json:"filename"`
	NBStreams  int               `json:"nb_streams"`
	Duration   string            `json:"duration"`
	Size       string            `json:"size"`
	BitRate    string            `json:"bit_rate"`
	FormatName string            `json:"format_name"`
	Tags       map[string]string `json:"tags"`
}

// Inspect executes ffprobe against the provided path and decodes the JSON response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// FirstAudioStream returns the first audio stream, or nil when none exists.
func (r Result) FirstAudioStream() *Stream {
	for i := range r.Streams {
		if strings.EqualFold(r.Streams[i].CodecType, "audio") {
			return &r.Streams[i]
		}
	}
	return nil
}

// DurationSeconds returns the container duration in seconds, or 0 when unavailable.
func (r Result) DurationSeconds() float64 {
	if d := parseFloat(r.Format.Duration); !math.IsNaN(d) && d > 0 {
		return d
	}
	if audio := r.FirstAudioStream(); audio != nil {
		if d := parseFloat(audio.Duration); !math.IsNaN(d) && d > 0 {
			return d
		}
	}
	return 0
}

// BitRate returns the bitrate in bits per second, preferring the container
// value over the audio stream value, or 0 when unavailable.
func (r Result) BitRate() int64 {
	if rate := parseFloat(r.Format.BitRate); !math.IsNaN(rate) && rate > 0 {
		return int64(rate)
	}
	if audio := r.FirstAudioStream(); audio != nil {
		if rate := parseFloat(audio.BitRate); !math.IsNaN(rate) && rate > 0 {
			return int64(rate)
		}
	}
	return 0
}

// SampleRate returns the audio sample rate in Hz, or 0 when unavailable.
func (r Result) SampleRate() int {
	audio := r.FirstAudioStream()
	if audio == nil {
		return 0
	}
	rate, err := strconv.Atoi(strings.TrimSpace(audio.SampleRate))
	if err != nil || rate < 0 {
		return 0
	}
	return rate
}

// MergedTags combines format-level and audio-stream tags with lowercased
// keys. Format-level tags win; ID3 tags usually surface there.
func (r Result) MergedTags() map[string]string {
	merged := map[string]string{}
	if audio := r.FirstAudioStream(); audio != nil {
		for key, value := range audio.Tags {
			merged[strings.ToLower(key)] = value
		}
	}
	for key, value := range r.Format.Tags {
		merged[strings.ToLower(key)] = value
	}
	return merged
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}
