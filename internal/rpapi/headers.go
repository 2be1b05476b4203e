package rpapi

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadHeaders reads request headers from a text file with one "Name: value"
// pair per line. Blank lines and lines starting with # are skipped.
// The file typically carries the Cookie and User-Agent of an authenticated
// browser session.
func LoadHeaders(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening headers file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	headers := make(map[string]string)
	scanner := bufio.NewScanner(file)
	// Session cookies can exceed bufio's default 64KB token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		headers[name] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading headers file %s: %w", path, err)
	}

	if len(headers) == 0 {
		return nil, fmt.Errorf("headers file %s contains no header lines", path)
	}

	return headers, nil
}
