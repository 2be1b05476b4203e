package document

import (
	"errors"
	"strings"

	"github.com/N4M3Z/rpstrength-export/internal/meso"
	"github.com/N4M3Z/rpstrength-export/internal/muscles"
)

// weekdayOrder fixes the day-label ordering for the summary section.
// Labels outside this list follow in first-appearance order.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Assemble merges a detailed mesocycle with the exercise catalog and muscle
// resolver into a Document. Source ordering of weeks, days, and exercises is
// preserved throughout. An exercise id missing from the catalog fails the
// whole assembly with a MissingExerciseError.
func Assemble(m *meso.Mesocycle, catalog meso.Catalog, resolver *muscles.Resolver) (*Document, error) {
	if !m.HasDetail() {
		return nil, errors.New("mesocycle " + m.Name + " has no week data")
	}

	doc := &Document{
		Title:     m.Name,
		Key:       m.Key,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		WeekCount: len(m.Weeks),
	}

	stats := newStatsCollector(len(m.Weeks))
	seenTags := make(map[string]bool)

	for weekIdx, week := range m.Weeks {
		outWeek := Week{Days: make([]Day, 0, len(week.Days))}

		for _, day := range week.Days {
			outDay := Day{
				Label:     day.Label,
				Position:  day.Position,
				Date:      day.Date(),
				Exercises: make([]Exercise, 0, len(day.Exercises)),
			}

			for _, instance := range day.Exercises {
				def := catalog.Lookup(instance.ExerciseID)
				if def == nil {
					return nil, &MissingExerciseError{
						Mesocycle:  m.Name,
						ExerciseID: instance.ExerciseID,
					}
				}

				groups := make([]string, 0, len(def.GroupIDs()))
				for _, id := range def.GroupIDs() {
					name := resolver.Resolve(id)
					groups = append(groups, name)

					if tag := stripWikilink(name); !seenTags[tag] {
						seenTags[tag] = true
						doc.Tags = append(doc.Tags, tag)
					}
				}

				outDay.Exercises = append(outDay.Exercises, Exercise{
					Name:         def.Name,
					MuscleGroups: groups,
					Equipment:    def.Equipment(),
					Notes:        instance.Notes,
					Sets:         instance.Sets,
				})

				stats.record(weekIdx, day.Label, def.Name, groups, instance.Sets)
			}

			outWeek.Days = append(outWeek.Days, outDay)
		}

		doc.Weeks = append(doc.Weeks, outWeek)
	}

	doc.Summary = stats.summaries()
	doc.Volume = stats.volume()
	return doc, nil
}

// stripWikilink removes surrounding [[ ]] from a display name so the bare
// name can serve as a front-matter tag.
func stripWikilink(s string) string {
	if strings.HasPrefix(s, "[[") && strings.HasSuffix(s, "]]") {
		return s[2 : len(s)-2]
	}
	return s
}

// statsCollector accumulates per-exercise and per-muscle set counts while the
// assembly walks the mesocycle in source order.
type statsCollector struct {
	weekCount int

	// day label -> ordered exercise names; labels in first-appearance order
	dayOrder   []string
	dayRows    map[string][]string
	seenDayRow map[string]map[string]bool

	// (day label, exercise) -> stats
	rows map[string]*SummaryRow

	// muscle display name -> weekly counts; order of first appearance
	muscleOrder []string
	muscleSets  map[string][]int
}

func newStatsCollector(weekCount int) *statsCollector {
	return &statsCollector{
		weekCount:  weekCount,
		dayRows:    make(map[string][]string),
		seenDayRow: make(map[string]map[string]bool),
		rows:       make(map[string]*SummaryRow),
		muscleSets: make(map[string][]int),
	}
}

// record registers one exercise instance's sets for week weekIdx.
// Logged sets (weight present) count toward the summary row and max effort;
// every set counts toward the muscle volume matrix.
func (c *statsCollector) record(weekIdx int, label, exercise string, groups []string, sets []meso.Set) {
	key := label + "\x00" + exercise

	row, ok := c.rows[key]
	if !ok {
		row = &SummaryRow{
			Exercise:   exercise,
			WeeklySets: make([]int, c.weekCount),
		}
		c.rows[key] = row

		if c.seenDayRow[label] == nil {
			c.seenDayRow[label] = make(map[string]bool)
			c.dayOrder = append(c.dayOrder, label)
		}
	}
	if !c.seenDayRow[label][exercise] {
		c.seenDayRow[label][exercise] = true
		c.dayRows[label] = append(c.dayRows[label], exercise)
	}

	for _, set := range sets {
		if set.Weight != nil {
			row.WeeklySets[weekIdx]++
			row.TotalSets++
			if !row.HasMax || *set.Weight > row.MaxWeight {
				row.HasMax = true
				row.MaxWeight = *set.Weight
				row.MaxReps = set.Reps
			}
		}

		for _, muscle := range groups {
			counts, ok := c.muscleSets[muscle]
			if !ok {
				counts = make([]int, c.weekCount)
				c.muscleSets[muscle] = counts
				c.muscleOrder = append(c.muscleOrder, muscle)
			}
			counts[weekIdx]++
		}
	}
}

// summaries returns the per-day summary sections: weekday labels in calendar
// order first, then any other labels as they first appeared.
func (c *statsCollector) summaries() []DaySummary {
	var labels []string
	isWeekday := make(map[string]bool, len(weekdayOrder))
	for _, day := range weekdayOrder {
		isWeekday[day] = true
		if _, ok := c.dayRows[day]; ok {
			labels = append(labels, day)
		}
	}
	for _, label := range c.dayOrder {
		if !isWeekday[label] {
			labels = append(labels, label)
		}
	}

	summaries := make([]DaySummary, 0, len(labels))
	for _, label := range labels {
		day := DaySummary{Label: label}
		for _, exercise := range c.dayRows[label] {
			day.Rows = append(day.Rows, *c.rows[label+"\x00"+exercise])
		}
		summaries = append(summaries, day)
	}
	return summaries
}

// volume returns the weekly per-muscle set counts in first-appearance order.
func (c *statsCollector) volume() []VolumeRow {
	rows := make([]VolumeRow, 0, len(c.muscleOrder))
	for _, muscle := range c.muscleOrder {
		rows = append(rows, VolumeRow{Muscle: muscle, Sets: c.muscleSets[muscle]})
	}
	return rows
}
