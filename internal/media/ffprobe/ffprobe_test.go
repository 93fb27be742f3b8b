package ffprobe

import "testing"

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video"},
			{CodecType: "audio", SampleRate: "44100", Duration: "60.0", BitRate: "96000",
				Tags: map[string]string{"TITLE": "Stream Title"}},
		},
		Format: Format{
			Duration: "123.45",
			BitRate:  "128000",
			Tags:     map[string]string{"Album": "My Book", "title": "Format Title"},
		},
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	if result.BitRate() != 128000 {
		t.Fatalf("unexpected bitrate: %d", result.BitRate())
	}
	if result.SampleRate() != 44100 {
		t.Fatalf("unexpected sample rate: %d", result.SampleRate())
	}
	tags := result.MergedTags()
	if tags["album"] != "My Book" {
		t.Fatalf("expected lowercased album tag, got %v", tags)
	}
	if tags["title"] != "Format Title" {
		t.Fatalf("format tags should win over stream tags, got %v", tags)
	}
}

func TestResultFallsBackToAudioStream(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "audio", Duration: "42.5", BitRate: "64000"},
		},
	}
	if result.DurationSeconds() != 42.5 {
		t.Fatalf("expected stream duration fallback, got %v", result.DurationSeconds())
	}
	if result.BitRate() != 64000 {
		t.Fatalf("expected stream bitrate fallback, got %d", result.BitRate())
	}
}

func TestResultHandlesInvalidNumbers(t *testing.T) {
	result := Result{
		Streams: []Stream{{CodecType: "audio", SampleRate: "bad"}},
		Format:  Format{Duration: "nope", BitRate: "-1"},
	}
	if result.DurationSeconds() != 0 {
		t.Fatalf("expected duration 0, got %v", result.DurationSeconds())
	}
	if result.BitRate() != 0 {
		t.Fatalf("expected bitrate 0, got %d", result.BitRate())
	}
	if result.SampleRate() != 0 {
		t.Fatalf("expected sample rate 0, got %d", result.SampleRate())
	}
}
