package manifest

import (
	"errors"
	"testing"

	"bookbinder/internal/services"
)

func TestResolveOrderWithoutManifestUsesNaturalSort(t *testing.T) {
	discovered := []string{
		"/b/track10.mp3",
		"/b/track2.mp3",
		"/b/track1.mp3",
	}
	ordered, err := ResolveOrder(discovered, nil)
	if err != nil {
		t.Fatalf("ResolveOrder: %v", err)
	}
	want := []string{"/b/track1.mp3", "/b/track2.mp3", "/b/track10.mp3"}
	for i := range want {
		if ordered[i] != want[i] {
			t.Fatalf("ordered = %v, want %v", ordered, want)
		}
	}
	// Input slice must stay untouched.
	if discovered[0] != "/b/track10.mp3" {
		t.Fatal("ResolveOrder mutated its input")
	}
}

func TestResolveOrderManifestIsAuthoritative(t *testing.T) {
	discovered := []string{
		"/b/01_intro.mp3",
		"/b/02_chapter1.mp3",
		"/b/03_chapter2.mp3",
	}
	m := &Manifest{Chapters: []Entry{
		{File: "03_chapter2.mp3"},
		{File: "02_chapter1.mp3"},
	}}

	ordered, err := ResolveOrder(discovered, m)
	if err != nil {
		t.Fatalf("ResolveOrder: %v", err)
	}
	if len(ordered) != 2 {
		t.Fatalf("unlisted files must be excluded: %v", ordered)
	}
	if ordered[0] != "/b/03_chapter2.mp3" || ordered[1] != "/b/02_chapter1.mp3" {
		t.Fatalf("manifest order not honored: %v", ordered)
	}
}

func TestResolveOrderMissingFileFails(t *testing.T) {
	m := &Manifest{Chapters: []Entry{{File: "missing.mp3"}}}
	_, err := ResolveOrder([]string{"/b/present.mp3"}, m)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolveOrderEmptyChaptersFallsBack(t *testing.T) {
	m := &Manifest{Title: "Only Metadata"}
	ordered, err := ResolveOrder([]string{"/b/2.mp3", "/b/1.mp3"}, m)
	if err != nil {
		t.Fatalf("ResolveOrder: %v", err)
	}
	if ordered[0] != "/b/1.mp3" {
		t.Fatalf("expected natural sort fallback: %v", ordered)
	}
}
