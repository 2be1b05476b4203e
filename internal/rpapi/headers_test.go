package rpapi

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headers.txt")
	content := `# captured from browser session
Cookie: session=abc123; other=x
User-Agent: Mozilla/5.0

not a header line
Authorization: Bearer token
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	headers, err := LoadHeaders(path)
	if err != nil {
		t.Fatalf("LoadHeaders() error: %v", err)
	}

	want := map[string]string{
		"Cookie":        "session=abc123; other=x",
		"User-Agent":    "Mozilla/5.0",
		"Authorization": "Bearer token",
	}
	if len(headers) != len(want) {
		t.Fatalf("got %d headers, want %d: %v", len(headers), len(want), headers)
	}
	for name, value := range want {
		if headers[name] != value {
			t.Errorf("headers[%q] = %q, want %q", name, headers[name], value)
		}
	}
}

func TestLoadHeadersMissingFile(t *testing.T) {
	if _, err := LoadHeaders(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadHeadersEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headers.txt")
	if err := os.WriteFile(path, []byte("# only comments\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHeaders(path); err == nil {
		t.Error("expected error for file with no headers")
	}
}
