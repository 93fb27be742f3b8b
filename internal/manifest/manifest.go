package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bookbinder/internal/book"
	"bookbinder/internal/services"
)

// Entry pins one chapter: the source file (base name, relative to the input
// directory) and an optional title override.
type Entry struct {
	File  string `yaml:"file"`
	Title string `yaml:"title,omitempty"`
}

// Manifest is the on-disk document. All fields are optional.
type Manifest struct {
	Title       string      `yaml:"title,omitempty"`
	Author      string      `yaml:"author,omitempty"`
	Narrator    string      `yaml:"narrator,omitempty"`
	Series      string      `yaml:"series,omitempty"`
	Year        looseString `yaml:"year,omitempty"`
	Genre       string      `yaml:"genre,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Cover       string      `yaml:"cover,omitempty"`
	Chapters    []Entry     `yaml:"chapters,omitempty"`
}

// looseString accepts any YAML scalar, so "year: 2024" parses without quotes.
type looseString string

func (s *looseString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	*s = looseString(node.Value)
	return nil
}

// Find returns the path of a manifest file sitting next to the inputs
// (manifest.yaml preferred over manifest.yml), or "" when none exists.
func Find(dir string) string {
	for _, name := range []string{"manifest.yaml", "manifest.yml"} {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate
		}
	}
	return ""
}

// Load parses the manifest at path. Unknown keys are rejected so typos in a
// hand-edited file fail loudly instead of being ignored.
func Load(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "manifest", "open", path, err)
	}
	defer file.Close()

	var m Manifest
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, services.Wrap(services.ErrValidation, "manifest", "parse", path, err)
	}

	for i, entry := range m.Chapters {
		if strings.TrimSpace(entry.File) == "" {
			return nil, services.Wrap(services.ErrValidation, "manifest", "parse",
				fmt.Sprintf("%s: chapter %d has no file", path, i+1), nil)
		}
	}
	return &m, nil
}

// Metadata extracts the book-level fields.
func (m *Manifest) Metadata() book.Metadata {
	if m == nil {
		return book.Metadata{}
	}
	return book.Metadata{
		Title:       m.Title,
		Author:      m.Author,
		Narrator:    m.Narrator,
		Series:      m.Series,
		Year:        string(m.Year),
		Genre:       m.Genre,
		Description: m.Description,
		Cover:       m.Cover,
	}
}

// TitleOverrides maps file base names to their chapter title overrides.
// Entries without a title are omitted.
func (m *Manifest) TitleOverrides() map[string]string {
	if m == nil {
		return nil
	}
	overrides := make(map[string]string, len(m.Chapters))
	for _, entry := range m.Chapters {
		if title := strings.TrimSpace(entry.Title); title != "" {
			overrides[entry.File] = title
		}
	}
	return overrides
}

// Bytes renders the manifest as YAML. When durations is non-empty it must
// hold one formatted duration per chapter; each is attached as a line
// comment to help whoever edits the file.
func (m *Manifest) Bytes(durations []string) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(m); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	node.HeadComment = "bookbinder manifest. Adjust chapter order and titles, then run: bookbinder convert"

	if len(durations) > 0 {
		annotateChapters(&node, durations)
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&node); err != nil {
		return nil, fmt.Errorf("render manifest: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("render manifest: %w", err)
	}
	return []byte(buf.String()), nil
}

// Save writes the manifest to path. See Bytes for the durations argument.
func (m *Manifest) Save(path string, durations []string) error {
	data, err := m.Bytes(durations)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func annotateChapters(doc *yaml.Node, durations []string) {
	if doc.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "chapters" {
			continue
		}
		sequence := doc.Content[i+1]
		for j, item := range sequence.Content {
			if j >= len(durations) || item.Kind != yaml.MappingNode || len(item.Content) < 2 {
				continue
			}
			// Comment lands on the "file" value line.
			item.Content[1].LineComment = "duration: " + durations[j]
		}
		return
	}
}
