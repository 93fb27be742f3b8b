package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestDiscoverAudioNaturalOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"track10.mp3", "track2.MP3", "track1.mp3", "notes.txt"} {
		touch(t, dir, name)
	}

	paths, err := DiscoverAudio(dir)
	if err != nil {
		t.Fatalf("DiscoverAudio: %v", err)
	}
	want := []string{"track1.mp3", "track2.MP3", "track10.mp3"}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d: %v", len(paths), len(want), paths)
	}
	for i, w := range want {
		if filepath.Base(paths[i]) != w {
			t.Fatalf("paths[%d] = %s, want %s", i, filepath.Base(paths[i]), w)
		}
	}
}

func TestDiscoverAudioEmptyDirFails(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "readme.md")
	if _, err := DiscoverAudio(dir); err == nil {
		t.Fatal("expected error for directory without MP3s")
	}
}

func TestFindCoverImage(t *testing.T) {
	dir := t.TempDir()
	if got := FindCoverImage(dir); got != "" {
		t.Fatalf("expected no cover, got %s", got)
	}
	touch(t, dir, "folder10.png")
	touch(t, dir, "folder2.jpg")
	touch(t, dir, "cover.txt")
	if got := filepath.Base(FindCoverImage(dir)); got != "folder2.jpg" {
		t.Fatalf("FindCoverImage = %s, want folder2.jpg", got)
	}
}
