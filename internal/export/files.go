package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-slug"

	"github.com/N4M3Z/rpstrength-export/internal/meso"
)

// WriteFileFunc is the file-writing collaborator. The driver hands it a path
// and content; tests substitute in-memory fakes.
type WriteFileFunc func(path string, data []byte) error

// DefaultWriteFile writes data to path, creating parent directories as needed.
func DefaultWriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Filename derives the Markdown filename for a mesocycle from its name.
// The slug is stable across runs, so re-exporting overwrites the previous
// file instead of accumulating duplicates. Names that slugify to nothing
// fall back to the mesocycle key.
func Filename(m *meso.Mesocycle) string {
	s, err := slug.Normalize(m.Name)
	if err != nil || s == "" {
		s = "mesocycle-" + m.Key
	}
	return s + ".md"
}
