// Package document assembles mesocycle, catalog, and muscle-group data into
// self-contained workout documents ready for rendering.
package document

import (
	"fmt"

	"github.com/N4M3Z/rpstrength-export/internal/meso"
)

// Document is one fully-resolved workout note. It is transient: created by
// Assemble, consumed once by the Markdown renderer, never persisted itself.
type Document struct {
	Title     string
	Key       string
	StartDate string
	EndDate   string

	// Tags are the muscle-group display names accumulated across the whole
	// mesocycle, de-duplicated, in first-appearance order, with wikilink
	// brackets stripped.
	Tags []string

	WeekCount int

	// Weeks preserves the source week, day, and exercise ordering.
	Weeks []Week

	// Summary groups per-exercise set statistics by day label, weekdays first.
	Summary []DaySummary

	// Volume is the weekly set count per muscle group, rows in first-appearance
	// order, one column per week.
	Volume []VolumeRow
}

// Week is one rendered training week.
type Week struct {
	Days []Day
}

// Day is one rendered training day.
type Day struct {
	Label     string
	Position  int
	Date      string
	Exercises []Exercise
}

// Exercise is one resolved exercise slot with its performed sets.
type Exercise struct {
	Name         string
	MuscleGroups []string // resolved display names, catalog order
	Equipment    string
	Notes        string
	Sets         []meso.Set
}

// DaySummary holds the summary rows for one day label.
type DaySummary struct {
	Label string
	Rows  []SummaryRow
}

// SummaryRow is the per-exercise set statistics across all weeks.
// Only logged sets (weight present) are counted; MaxReps belongs to the
// heaviest logged set.
type SummaryRow struct {
	Exercise   string
	WeeklySets []int
	TotalSets  int
	MaxWeight  float64
	MaxReps    int
	HasMax     bool
}

// VolumeRow is the weekly set count for one muscle group. Unlike SummaryRow,
// every programmed set counts, logged or not.
type VolumeRow struct {
	Muscle string
	Sets   []int
}

// MissingExerciseError reports a mesocycle referencing an exercise id absent
// from the catalog. The whole mesocycle fails assembly; a dangling reference
// is a data-integrity problem, not something to drop silently.
type MissingExerciseError struct {
	Mesocycle  string
	ExerciseID int
}

// Error implements the error interface.
func (e *MissingExerciseError) Error() string {
	return fmt.Sprintf("mesocycle %q references exercise %d not found in catalog", e.Mesocycle, e.ExerciseID)
}
