// Package fileutil discovers conversion inputs on disk: audio files and
// candidate cover images inside a book directory.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bookbinder/internal/natsort"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// DiscoverAudio returns the MP3 files directly inside dir, natural-sorted by
// base name. The extension match is case-insensitive. Returns an error when
// dir is not a directory or contains no MP3 files.
func DiscoverAudio(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".mp3") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no MP3 files found in %s", dir)
	}

	natsort.SortBy(paths, filepath.Base)
	return paths, nil
}

// FindCoverImage returns the first image file (.jpg, .jpeg, .png) in dir by
// natural base-name order, or "" when none exists.
func FindCoverImage(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsImage(entry.Name()) {
			images = append(images, filepath.Join(dir, entry.Name()))
		}
	}
	if len(images) == 0 {
		return ""
	}
	natsort.SortBy(images, filepath.Base)
	return images[0]
}

// IsImage reports whether name carries a recognized cover image extension.
func IsImage(name string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
