// Package cache provides the on-disk JSON cache for fetched API data.
//
// Cache files are plain JSON, human-inspectable, and safe to delete to force
// a re-fetch. The store persists the exact bytes a fetch returns, so a cached
// run and a fresh run see identical data.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FetchFunc produces the raw bytes for a cache entry on a miss.
type FetchFunc func(ctx context.Context) ([]byte, error)

// Store caches fetched JSON blobs under a single directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory is created lazily on the
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the on-disk path for a cache entry name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// LoadOrFetch returns the cached bytes for name if the file exists and holds
// valid JSON. Otherwise it invokes fetch, persists the exact bytes returned,
// and returns them. A corrupt cache file counts as a miss and is re-fetched,
// never silently used. fromCache reports which path was taken.
func (s *Store) LoadOrFetch(ctx context.Context, name string, fetch FetchFunc) (data []byte, fromCache bool, err error) {
	path := s.Path(name)

	cached, readErr := os.ReadFile(path)
	if readErr == nil && json.Valid(cached) {
		return cached, true, nil
	}

	if fetch == nil {
		if readErr != nil {
			return nil, false, fmt.Errorf("cache %s unavailable and no fetcher configured: %w", path, readErr)
		}
		return nil, false, fmt.Errorf("cache %s is corrupt and no fetcher configured", path)
	}

	data, err = fetch(ctx)
	if err != nil {
		return nil, false, err
	}

	if err := s.write(path, data); err != nil {
		return nil, false, err
	}

	return data, false, nil
}

// write persists data to path using write-to-temp-then-rename, creating the
// cache directory as needed.
func (s *Store) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write cache data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Entry describes one cache file for status reporting.
type Entry struct {
	Name     string
	Exists   bool
	Size     int64
	Modified time.Time
}

// Status reports the state of the named cache entries.
func (s *Store) Status(names ...string) []Entry {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entry := Entry{Name: name}
		if info, err := os.Stat(s.Path(name)); err == nil {
			entry.Exists = true
			entry.Size = info.Size()
			entry.Modified = info.ModTime()
		}
		entries = append(entries, entry)
	}
	return entries
}

// Clear removes the named cache entries. Missing files are ignored.
func (s *Store) Clear(names ...string) error {
	for _, name := range names {
		if err := os.Remove(s.Path(name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing cache file %s: %w", s.Path(name), err)
		}
	}
	return nil
}
