package meso

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Exercise is one movement definition from the exercise catalog.
// Older API payloads carry a single numeric muscleGroupId; newer ones carry
// a muscleGroups string array. GroupIDs normalizes both forms.
type Exercise struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	MuscleGroupID int      `json:"muscleGroupId,omitempty"`
	MuscleGroups  []string `json:"muscleGroups,omitempty"`
	ExerciseType  string   `json:"exerciseType,omitempty"`
}

// GroupIDs returns the exercise's raw muscle-group identifiers.
// The muscleGroups array wins when present; otherwise the numeric id is
// rendered in decimal. Exercises with no group data return nil.
func (e *Exercise) GroupIDs() []string {
	if len(e.MuscleGroups) > 0 {
		return e.MuscleGroups
	}
	if e.MuscleGroupID > 0 {
		return []string{strconv.Itoa(e.MuscleGroupID)}
	}
	return nil
}

// Equipment returns the exercise type as a display string:
// "machine-assisted" becomes "Machine Assisted".
func (e *Exercise) Equipment() string {
	if e.ExerciseType == "" {
		return "Unknown"
	}
	words := strings.Split(strings.ReplaceAll(e.ExerciseType, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Catalog maps exercise ids to their definitions. Loaded once per run,
// read-only thereafter.
type Catalog map[int]*Exercise

// Lookup returns the exercise for id, or nil if the catalog has no entry.
func (c Catalog) Lookup(id int) *Exercise {
	return c[id]
}

// ParseCatalog parses the exercise catalog JSON: an array of exercise
// definitions keyed by id. Entries missing an id or name fail the parse,
// since every downstream document depends on them.
func ParseCatalog(data []byte) (Catalog, error) {
	if len(data) == 0 {
		return nil, errors.New("empty catalog data")
	}

	var exercises []*Exercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		return nil, fmt.Errorf("parsing exercise catalog: %w", err)
	}

	catalog := make(Catalog, len(exercises))
	for i, ex := range exercises {
		if ex == nil {
			return nil, &ValidationError{
				Message: fmt.Sprintf("catalog entry %d is null", i),
			}
		}
		var missing []string
		if ex.ID == 0 {
			missing = append(missing, "id")
		}
		if ex.Name == "" {
			missing = append(missing, "name")
		}
		if len(missing) > 0 {
			return nil, &ValidationError{
				Fields:  missing,
				Message: fmt.Sprintf("catalog entry %d missing required fields", i),
			}
		}
		catalog[ex.ID] = ex
	}

	return catalog, nil
}
