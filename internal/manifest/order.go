package manifest

import (
	"fmt"
	"path/filepath"

	"bookbinder/internal/natsort"
	"bookbinder/internal/services"
)

// ResolveOrder determines the final file order. Without a manifest (or with
// an empty chapter list) the discovered paths are natural-sorted by base
// name. With chapters present the manifest order is authoritative: every
// listed file must exist among the discovered paths, and discovered files it
// omits are excluded from the result.
func ResolveOrder(discovered []string, m *Manifest) ([]string, error) {
	if m == nil || len(m.Chapters) == 0 {
		ordered := append([]string(nil), discovered...)
		natsort.SortBy(ordered, filepath.Base)
		return ordered, nil
	}

	byName := make(map[string]string, len(discovered))
	for _, path := range discovered {
		byName[filepath.Base(path)] = path
	}

	ordered := make([]string, 0, len(m.Chapters))
	for _, entry := range m.Chapters {
		path, ok := byName[entry.File]
		if !ok {
			return nil, services.Wrap(services.ErrValidation, "manifest", "",
				fmt.Sprintf("file %q is listed but does not exist", entry.File), nil)
		}
		ordered = append(ordered, path)
	}
	return ordered, nil
}
