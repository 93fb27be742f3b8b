package services

import (
	"errors"
	"testing"
)

func TestWrapPreservesMarkerAndCause(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrExternalTool, "probe", "ffprobe", "unreadable input", cause)

	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool marker: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause: %v", err)
	}
	want := "external tool error: probe: ffprobe: unreadable input: exit status 1"
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestWrapDefaultsToInternal(t *testing.T) {
	err := Wrap(nil, "timeline", "", "", nil)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal fallback: %v", err)
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{Wrap(ErrValidation, "manifest", "", "missing file", nil), 2},
		{Wrap(ErrConfiguration, "config", "", "bad value", nil), 2},
		{Wrap(ErrNotFound, "input", "", "no such directory", nil), 3},
		{Wrap(ErrExternalTool, "encode", "ffmpeg", "", errors.New("boom")), 4},
		{errors.New("plain"), 1},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
