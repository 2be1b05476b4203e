// Package meso provides the typed records, validation, and parsing for
// RP Strength mesocycle and exercise data.
package meso

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Mesocycle is one multi-week training block. Index responses carry only the
// summary fields; the weeks are filled in by a per-mesocycle detail fetch or
// by a pre-supplied index that embeds them.
type Mesocycle struct {
	ID        int    `json:"id,omitempty"`
	Key       string `json:"key"`
	Name      string `json:"name"`
	Status    string `json:"status,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Weeks     []Week `json:"weeks,omitempty"`
}

// Week is one training week, holding its days in source order.
type Week struct {
	Days []Day `json:"days"`
}

// Day is one training day within a week.
type Day struct {
	Label      string             `json:"label"`
	Position   int                `json:"position"`
	FinishedAt string             `json:"finishedAt,omitempty"`
	Exercises  []ExerciseInstance `json:"exercises"`
}

// ExerciseInstance is one exercise slot in a training day, referencing the
// exercise catalog by id.
type ExerciseInstance struct {
	ExerciseID int    `json:"exerciseId"`
	Notes      string `json:"notes,omitempty"`
	Sets       []Set  `json:"sets"`
}

// Set is one performed set. Weight is nil for sets that were programmed but
// never logged.
type Set struct {
	Weight *float64 `json:"weight"`
	Reps   int      `json:"reps"`
}

// Date returns the day's completion date as YYYY-MM-DD, or "TBD" for days
// that were never finished.
func (d *Day) Date() string {
	if len(d.FinishedAt) >= 10 {
		return d.FinishedAt[:10]
	}
	return "TBD"
}

// HasDetail reports whether the mesocycle carries its full week data.
func (m *Mesocycle) HasDetail() bool {
	return len(m.Weeks) > 0
}

// ValidationError is returned when a record is missing required fields.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// Validate checks the summary fields every mesocycle must carry.
func (m *Mesocycle) Validate() error {
	var missing []string
	if m.Key == "" {
		missing = append(missing, "key")
	}
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return &ValidationError{
			Fields:  missing,
			Message: "mesocycle missing required fields",
		}
	}
	return nil
}

// ValidateDetail checks that a detailed mesocycle is structurally complete:
// summary fields plus at least one week, with day labels present.
func (m *Mesocycle) ValidateDetail() error {
	if err := m.Validate(); err != nil {
		return err
	}

	var missing []string
	if len(m.Weeks) == 0 {
		missing = append(missing, "weeks")
	}
	for wi, week := range m.Weeks {
		for di, day := range week.Days {
			if day.Label == "" {
				missing = append(missing, fmt.Sprintf("weeks[%d].days[%d].label", wi, di))
			}
		}
	}
	if len(missing) > 0 {
		return &ValidationError{
			Fields:  missing,
			Message: fmt.Sprintf("mesocycle %q missing required fields", m.Name),
		}
	}
	return nil
}

// ParseIndex parses the mesocycle index JSON: an ordered array of mesocycle
// records. Each record is validated; the source order is preserved.
func ParseIndex(data []byte) ([]*Mesocycle, error) {
	if len(data) == 0 {
		return nil, errors.New("empty index data")
	}

	var index []*Mesocycle
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("parsing mesocycle index: %w", err)
	}

	for i, m := range index {
		if m == nil {
			return nil, fmt.Errorf("index entry %d: %w", i,
				&ValidationError{Message: "entry is null"})
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("index entry %d: %w", i, err)
		}
	}

	return index, nil
}

// ParseMesocycle parses a single detailed mesocycle record.
func ParseMesocycle(data []byte) (*Mesocycle, error) {
	if len(data) == 0 {
		return nil, errors.New("empty mesocycle data")
	}

	var m Mesocycle
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing mesocycle: %w", err)
	}
	if err := m.ValidateDetail(); err != nil {
		return nil, err
	}

	return &m, nil
}
