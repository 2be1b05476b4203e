// Package muscles maps raw muscle-group identifiers from the exercise catalog
// to display names for tagging and linking.
package muscles

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// defaultGroups mirrors the RP Strength muscle-group ids 1-12 as Obsidian
// wikilinks, the format the original export used.
var defaultGroups = []string{
	"[[Chest]]", "[[Back]]", "[[Delts]]", "[[Biceps]]",
	"[[Triceps]]", "[[Quads]]", "[[Hamstrings]]", "[[Glutes]]",
	"[[Calves]]", "[[Traps]]", "[[Forearms]]", "[[Abs]]",
}

// DefaultMap returns the built-in mapping: numeric ids "1" through "12" to
// wikilinked display names.
func DefaultMap() map[string]string {
	m := make(map[string]string, len(defaultGroups))
	for i, name := range defaultGroups {
		m[strconv.Itoa(i+1)] = name
	}
	return m
}

// LoadMap reads a muscle-group mapping from a JSON file. Two shapes are
// accepted: an object of raw id to display name, or the legacy array form
// where position N maps id "N+1".
func LoadMap(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading muscle-group map %s: %w", path, err)
	}

	var asObject map[string]string
	if err := json.Unmarshal(data, &asObject); err == nil {
		return asObject, nil
	}

	var asArray []string
	if err := json.Unmarshal(data, &asArray); err == nil {
		m := make(map[string]string, len(asArray))
		for i, name := range asArray {
			m[strconv.Itoa(i+1)] = name
		}
		return m, nil
	}

	return nil, fmt.Errorf("muscle-group map %s must be a JSON object or array of strings", path)
}

// Resolver resolves raw muscle-group ids to display names. Ids without a
// mapping resolve to themselves and are recorded as warnings; a missing
// mapping never halts an export.
type Resolver struct {
	mapping map[string]string
	missing map[string]bool
	order   []string
}

// NewResolver creates a Resolver over the given mapping.
// A nil mapping falls back to DefaultMap.
func NewResolver(mapping map[string]string) *Resolver {
	if mapping == nil {
		mapping = DefaultMap()
	}
	return &Resolver{
		mapping: mapping,
		missing: make(map[string]bool),
	}
}

// Resolve returns the display name for rawID, or rawID unchanged when the
// mapping has no entry. Deterministic: the same input always yields the same
// output within a run.
func (r *Resolver) Resolve(rawID string) string {
	if name, ok := r.mapping[rawID]; ok {
		return name
	}
	if !r.missing[rawID] {
		r.missing[rawID] = true
		r.order = append(r.order, rawID)
	}
	return rawID
}

// Warnings returns one message per distinct unmapped id, in first-seen order.
func (r *Resolver) Warnings() []string {
	warnings := make([]string, 0, len(r.order))
	for _, id := range r.order {
		warnings = append(warnings, fmt.Sprintf("no muscle-group mapping for %q; using raw identifier", id))
	}
	return warnings
}
