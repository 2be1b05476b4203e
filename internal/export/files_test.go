package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/N4M3Z/rpstrength-export/internal/meso"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		meso *meso.Mesocycle
		want string
	}{
		{
			name: "spaces become hyphens",
			meso: &meso.Mesocycle{Key: "k1", Name: "Push Day A"},
			want: "push-day-a.md",
		},
		{
			name: "already slugged",
			meso: &meso.Mesocycle{Key: "k2", Name: "cut-2026"},
			want: "cut-2026.md",
		},
		{
			name: "empty name falls back to key",
			meso: &meso.Mesocycle{Key: "k3", Name: ""},
			want: "mesocycle-k3.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.meso); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Re-exports must land on the same file every run.
func TestFilenameStable(t *testing.T) {
	m := &meso.Mesocycle{Key: "k1", Name: "Hypertrophy Block 3"}
	if Filename(m) != Filename(m) {
		t.Error("Filename() not stable across calls")
	}
}

func TestDefaultWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "push-day-a.md")

	if err := DefaultWriteFile(path, []byte("content")); err != nil {
		t.Fatalf("DefaultWriteFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("content = %q", data)
	}

	// Overwrites in place.
	if err := DefaultWriteFile(path, []byte("updated")); err != nil {
		t.Fatalf("DefaultWriteFile() overwrite error: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "updated" {
		t.Errorf("overwritten content = %q", data)
	}
}
