package convert

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

func TestResolveOutputPathDefaults(t *testing.T) {
	dir := t.TempDir()

	got := resolveOutputPath(dir, "", "My Book: Part 1")
	want := filepath.Join(dir, "My Book- Part 1.m4b")
	if got != want {
		t.Fatalf("titled default = %q, want %q", got, want)
	}

	got = resolveOutputPath(dir, "", "")
	want = filepath.Join(dir, "audiobook.m4b")
	if got != want {
		t.Fatalf("untitled default = %q, want %q", got, want)
	}
}

func TestResolveOutputPathExplicit(t *testing.T) {
	got := resolveOutputPath(t.TempDir(), "/out/book.m4b", "Ignored Title")
	if got != "/out/book.m4b" {
		t.Fatalf("explicit path = %q", got)
	}
}

func TestResolveCoverPathsManifestRelative(t *testing.T) {
	dir := t.TempDir()
	coverPath := filepath.Join(dir, "front.jpg")
	if err := os.WriteFile(coverPath, []byte("jpg"), 0o644); err != nil {
		t.Fatal(err)
	}

	cli := book.Metadata{}
	man := book.Metadata{Cover: "front.jpg"}
	if err := resolveCoverPaths(dir, &cli, &man); err != nil {
		t.Fatalf("resolveCoverPaths: %v", err)
	}
	if man.Cover != coverPath {
		t.Fatalf("manifest cover = %q, want %q", man.Cover, coverPath)
	}
}

func TestResolveCoverPathsMissingFile(t *testing.T) {
	dir := t.TempDir()

	man := book.Metadata{Cover: "missing.png"}
	err := resolveCoverPaths(dir, &book.Metadata{}, &man)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("missing manifest cover: %v", err)
	}

	cli := book.Metadata{Cover: filepath.Join(dir, "nope.jpg")}
	err = resolveCoverPaths(dir, &cli, &book.Metadata{})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("missing cli cover: %v", err)
	}
}

func TestValidateDurationsRejectsZeroLengthFile(t *testing.T) {
	files := []probe.AudioFile{
		{Filename: "01_intro.mp3", DurationMS: 10000},
		{Filename: "02_broken.mp3", DurationMS: 0},
	}
	err := validateDurations(files)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "02_broken.mp3") {
		t.Fatalf("error should name the file: %v", err)
	}

	if err := validateDurations(files[:1]); err != nil {
		t.Fatalf("valid files: %v", err)
	}
}

func TestLoadManifestAbsent(t *testing.T) {
	p := &Planner{}
	man, path, err := p.loadManifest(t.TempDir(), "")
	if err != nil {
		t.Fatalf("loadManifest: %v", err)
	}
	if man != nil || path != "" {
		t.Fatalf("expected no manifest, got %v at %q", man, path)
	}
}

func TestLoadManifestExplicitMissing(t *testing.T) {
	p := &Planner{}
	_, _, err := p.loadManifest(t.TempDir(), filepath.Join(t.TempDir(), "manifest.yaml"))
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestLoadManifestNextToInputs(t *testing.T) {
	dir := t.TempDir()
	doc := "title: Found Book\nchapters:\n  - file: 01.mp3\n"
	if err := os.WriteFile(filepath.Join(dir, "manifest.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	p := &Planner{}
	man, path, err := p.loadManifest(dir, "")
	if err != nil {
		t.Fatalf("loadManifest: %v", err)
	}
	if man == nil || man.Title != "Found Book" {
		t.Fatalf("manifest = %+v", man)
	}
	if path != filepath.Join(dir, "manifest.yaml") {
		t.Fatalf("path = %q", path)
	}
}
