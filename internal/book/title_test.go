package book

import (
	"testing"

	"bookbinder/internal/probe"
)

func TestCleanChapterName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"01_intro.mp3", "Intro"},
		{"03 - Chapter Three.mp3", "Chapter Three"},
		{"chapter_02.mp3", "Chapter 02"},
		{"Track 2 - The Road.mp3", "The Road"},
		{"track.mp3", "Track"},
		{"01.mp3", "01"},
		{"Already Titled.mp3", "Already Titled"},
	}
	for _, tc := range cases {
		if got := CleanChapterName(tc.in); got != tc.want {
			t.Fatalf("CleanChapterName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveTitlePriority(t *testing.T) {
	file := audioFile("01_intro.mp3", 1000, map[string]string{probe.TagTitle: "Tagged Title"})

	if got := ResolveTitle(file, "Manifest Title"); got != "Manifest Title" {
		t.Fatalf("override should win, got %q", got)
	}
	if got := ResolveTitle(file, "  "); got != "Tagged Title" {
		t.Fatalf("blank override should fall through to tag, got %q", got)
	}

	untagged := audioFile("01_intro.mp3", 1000, nil)
	if got := ResolveTitle(untagged, ""); got != "Intro" {
		t.Fatalf("filename fallback = %q", got)
	}
}

func TestResolveTitleNeverEmpty(t *testing.T) {
	file := audioFile(".mp3", 1000, nil)
	if got := ResolveTitle(file, ""); got == "" {
		t.Fatal("resolved title must be non-empty")
	}
}
