package export

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/N4M3Z/rpstrength-export/internal/document"
	"github.com/N4M3Z/rpstrength-export/internal/meso"
	"github.com/N4M3Z/rpstrength-export/internal/muscles"
)

func weight(w float64) *float64 { return &w }

func testCatalog() meso.Catalog {
	return meso.Catalog{
		42: {ID: 42, Name: "Bench Press", MuscleGroups: []string{"chest", "triceps"}, ExerciseType: "barbell"},
		43: {ID: 43, Name: "Squat", MuscleGroups: []string{"quads"}, ExerciseType: "barbell"},
	}
}

func testResolver() *muscles.Resolver {
	return muscles.NewResolver(map[string]string{
		"chest":   "Chest",
		"triceps": "Triceps",
		"quads":   "Quads",
	})
}

func testMesocycle() *meso.Mesocycle {
	return &meso.Mesocycle{
		Key:       "k1",
		Name:      "Push Day A",
		StartDate: "2026-03-02",
		EndDate:   "2026-04-12",
		Weeks: []meso.Week{
			{Days: []meso.Day{
				{Label: "Monday", Position: 0, FinishedAt: "2026-03-02T10:00:00Z", Exercises: []meso.ExerciseInstance{
					{ExerciseID: 42, Notes: "Pause at the bottom", Sets: []meso.Set{
						{Weight: weight(100), Reps: 8},
						{Weight: weight(102.5), Reps: 7},
					}},
					{ExerciseID: 43, Sets: []meso.Set{{Weight: nil, Reps: 0}}},
				}},
			}},
		},
	}
}

func testDocument(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.Assemble(testMesocycle(), testCatalog(), testResolver())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	return doc
}

var testNow = time.Date(2026, 6, 1, 12, 30, 0, 0, time.UTC)

func TestFormatMarkdown(t *testing.T) {
	got, err := FormatMarkdown(testDocument(t), nil, "Links: [[Training]]", testNow)
	if err != nil {
		t.Fatalf("FormatMarkdown() error: %v", err)
	}

	wantContains := []string{
		"title: Push Day A",
		"created: 2026-06-01 12:30 UTC",
		"source: k1.json",
		"tags: [Chest, Triceps, Quads]",
		"Links: [[Training]]",
		"## Exercise Summary",
		"| **Monday** |",
		"| [[Bench Press]] |",
		"| Muscle | W1 |",
		"| Chest | 2 |",
		"^table",
		"```chart",
		"## Week 1 - Day 1 - Monday ([[2026-03-02]])",
		"### Chest / Triceps — [[Bench Press]]",
		"[[Barbell]]",
		"| 102.5 | 7 |",
		"> Pause at the bottom",
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("FormatMarkdown() missing %q", want)
		}
	}
}

func TestFormatMarkdownUnloggedSetHasEmptyWeightCell(t *testing.T) {
	got, err := FormatMarkdown(testDocument(t), nil, "", testNow)
	if err != nil {
		t.Fatalf("FormatMarkdown() error: %v", err)
	}
	if !strings.Contains(got, "|  | 0 |") {
		t.Error("FormatMarkdown() missing empty weight cell for unlogged set")
	}
}

func TestFormatMarkdownReproducible(t *testing.T) {
	first, err := FormatMarkdown(testDocument(t), nil, "header", testNow)
	if err != nil {
		t.Fatalf("FormatMarkdown() error: %v", err)
	}
	second, err := FormatMarkdown(testDocument(t), nil, "header", testNow)
	if err != nil {
		t.Fatalf("FormatMarkdown() error: %v", err)
	}
	if first != second {
		t.Error("FormatMarkdown() not reproducible for identical inputs")
	}
}

func TestFormatMarkdownRejectsBrokenFrontMatter(t *testing.T) {
	// A title containing ": " renders the front matter into invalid YAML.
	doc := testDocument(t)
	doc.Title = "Meso: attempt [one"

	_, err := FormatMarkdown(doc, nil, "", testNow)
	if err == nil {
		t.Fatal("FormatMarkdown() = nil error, want template error")
	}
	var tmplErr *TemplateError
	if !errors.As(err, &tmplErr) {
		t.Errorf("FormatMarkdown() error type %T", err)
	}
}
