package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookbinder/internal/book"
	"bookbinder/internal/probe"
	"bookbinder/internal/services"
)

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadParsesFieldsAndChapters(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "manifest.yaml", strings.Join([]string{
		`title: "Test Book"`,
		`author: "Test Author"`,
		"year: 2024",
		"chapters:",
		`  - file: "01.mp3"`,
		`    title: "Chapter 1"`,
		`  - file: "02.mp3"`,
	}, "\n"))

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	meta := m.Metadata()
	if meta.Title != "Test Book" || meta.Author != "Test Author" {
		t.Fatalf("metadata = %+v", meta)
	}
	if meta.Year != "2024" {
		t.Fatalf("unquoted year should parse as string, got %q", meta.Year)
	}
	if len(m.Chapters) != 2 {
		t.Fatalf("chapters = %d", len(m.Chapters))
	}
	overrides := m.TitleOverrides()
	if overrides["01.mp3"] != "Chapter 1" {
		t.Fatalf("overrides = %v", overrides)
	}
	if _, ok := overrides["02.mp3"]; ok {
		t.Fatal("entry without title must not produce an override")
	}
}

func TestLoadRejectsUnknownKeysAndBadEntries(t *testing.T) {
	dir := t.TempDir()

	path := writeManifest(t, dir, "typo.yaml", "titel: oops\n")
	if _, err := Load(path); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("unknown key: %v", err)
	}

	path = writeManifest(t, dir, "nofile.yaml", "chapters:\n  - title: only\n")
	if _, err := Load(path); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("missing file key: %v", err)
	}

	if _, err := Load(filepath.Join(dir, "absent.yaml")); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("absent manifest: %v", err)
	}
}

func TestFindPrefersYamlExtension(t *testing.T) {
	dir := t.TempDir()
	if Find(dir) != "" {
		t.Fatal("expected no manifest")
	}
	writeManifest(t, dir, "manifest.yml", "title: a\n")
	if got := filepath.Base(Find(dir)); got != "manifest.yml" {
		t.Fatalf("Find = %s", got)
	}
	writeManifest(t, dir, "manifest.yaml", "title: b\n")
	if got := filepath.Base(Find(dir)); got != "manifest.yaml" {
		t.Fatalf("Find = %s", got)
	}
}

func TestGenerateRoundTrips(t *testing.T) {
	files := []probe.AudioFile{
		{Filename: "01_intro.mp3", DurationMS: 83000, Tags: map[string]string{}},
		{Filename: "02_end.mp3", DurationMS: 61000, Tags: map[string]string{probe.TagTitle: "The End"}},
	}
	detected := book.Metadata{Title: "My Book", Author: "Auth", Cover: "cover.jpg", Year: "2020"}

	m := Generate(files, detected)
	durations := []string{"1:23", "1:01"}
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := m.Save(path, durations); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(raw)
	if !strings.Contains(text, "# duration: 1:23") {
		t.Fatalf("expected duration comment, got:\n%s", text)
	}
	if !strings.Contains(text, "bookbinder manifest") {
		t.Fatalf("expected head comment, got:\n%s", text)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load generated manifest: %v", err)
	}
	if loaded.Metadata() != detected {
		t.Fatalf("metadata round-trip: %+v != %+v", loaded.Metadata(), detected)
	}
	if len(loaded.Chapters) != 2 || loaded.Chapters[0].Title != "Intro" || loaded.Chapters[1].Title != "The End" {
		t.Fatalf("chapters round-trip: %+v", loaded.Chapters)
	}
}
