package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testIndexJSON embeds week detail so no network fetch is needed.
const testIndexJSON = `[
  {
    "key": "k1",
    "name": "Push Day A",
    "status": "completed",
    "startDate": "2026-03-02",
    "endDate": "2026-04-12",
    "weeks": [
      {
        "days": [
          {
            "label": "Monday",
            "position": 0,
            "finishedAt": "2026-03-02T10:00:00Z",
            "exercises": [
              {"exerciseId": 42, "sets": [{"weight": 100, "reps": 8}, {"weight": 102.5, "reps": 7}]}
            ]
          }
        ]
      }
    ]
  }
]`

const testExercisesJSON = `[
  {"id": 42, "name": "Bench Press", "muscleGroups": ["1", "5"], "exerciseType": "barbell"}
]`

// writeFixtures writes index and catalog files and isolates the config dir.
func writeFixtures(t *testing.T) (indexPath, exercisesPath string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("RPEXPORT_CONFIG_HOME", filepath.Join(dir, "config"))

	indexPath = filepath.Join(dir, "mesocycles.json")
	exercisesPath = filepath.Join(dir, "exercises.json")
	if err := os.WriteFile(indexPath, []byte(testIndexJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(exercisesPath, []byte(testExercisesJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return indexPath, exercisesPath
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestExportCommand_WritesNote(t *testing.T) {
	indexPath, exercisesPath := writeFixtures(t)
	outDir := t.TempDir()

	got, err := runCommand(t, "export",
		"--offline",
		"--index", indexPath,
		"--exercises", exercisesPath,
		"--out", outDir,
	)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, got)
	}

	notePath := filepath.Join(outDir, "push-day-a.md")
	content, err := os.ReadFile(notePath)
	if err != nil {
		t.Fatalf("note not written: %v", err)
	}

	wantContains := []string{
		"title: Push Day A",
		"tags: [Chest, Triceps]",
		"## Exercise Summary",
		"[[Bench Press]]",
		"| 102.5 | 7 |",
	}
	for _, want := range wantContains {
		if !strings.Contains(string(content), want) {
			t.Errorf("note missing %q", want)
		}
	}

	if !strings.Contains(got, "Exported 1 mesocycle(s)") {
		t.Errorf("output = %q", got)
	}
}

func TestExportCommand_JSONOutput(t *testing.T) {
	indexPath, exercisesPath := writeFixtures(t)
	outDir := t.TempDir()

	got, err := runCommand(t, "export", "--json",
		"--offline",
		"--index", indexPath,
		"--exercises", exercisesPath,
		"--out", outDir,
	)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, got)
	}

	var result map[string]any
	if jsonErr := json.Unmarshal([]byte(got), &result); jsonErr != nil {
		t.Fatalf("output is not JSON: %v\n%s", jsonErr, got)
	}
	if result["written"] != float64(1) {
		t.Errorf("written = %v, want 1", result["written"])
	}
	if result["output_dir"] != outDir {
		t.Errorf("output_dir = %v", result["output_dir"])
	}
}

func TestExportCommand_SaveJSONSidecarFromIndex(t *testing.T) {
	// Detail is embedded in the index, so there is nothing to save; the run
	// still succeeds and writes the note.
	indexPath, exercisesPath := writeFixtures(t)
	outDir := t.TempDir()

	if got, err := runCommand(t, "export",
		"--offline", "--save-json",
		"--index", indexPath,
		"--exercises", exercisesPath,
		"--out", outDir,
	); err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, got)
	}

	if _, err := os.Stat(filepath.Join(outDir, "push-day-a.md")); err != nil {
		t.Errorf("note not written: %v", err)
	}
}

func TestExportCommand_Selection(t *testing.T) {
	indexPath, exercisesPath := writeFixtures(t)
	outDir := t.TempDir()

	// Position 1 does not exist; selecting it exports nothing.
	got, err := runCommand(t, "export",
		"--offline",
		"--index", indexPath,
		"--exercises", exercisesPath,
		"--out", outDir,
		"--select", "1",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, got)
	}
	if !strings.Contains(got, "Exported 0 mesocycle(s)") {
		t.Errorf("output = %q", got)
	}
}

func TestExportCommand_InvalidSelection(t *testing.T) {
	indexPath, exercisesPath := writeFixtures(t)

	_, err := runCommand(t, "export",
		"--offline",
		"--index", indexPath,
		"--exercises", exercisesPath,
		"--select", "4-2",
	)
	if err == nil {
		t.Fatal("expected error for reversed selection range")
	}
}

func TestExportCommand_UnknownTemplatePlaceholder(t *testing.T) {
	indexPath, exercisesPath := writeFixtures(t)
	tmplPath := filepath.Join(t.TempDir(), "frontmatter.md")
	if err := os.WriteFile(tmplPath, []byte("title: {titel}"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := runCommand(t, "export",
		"--offline",
		"--index", indexPath,
		"--exercises", exercisesPath,
		"--frontmatter", tmplPath,
	)
	if err == nil {
		t.Fatal("expected error for unsupported placeholder")
	}
	if !strings.Contains(err.Error(), "{titel}") {
		t.Errorf("error = %v", err)
	}
}

func TestExportCommand_MissingHeadersWithoutOffline(t *testing.T) {
	t.Setenv("RPEXPORT_CONFIG_HOME", t.TempDir())

	_, err := runCommand(t, "export")
	if err == nil {
		t.Fatal("expected error when neither headers nor offline data are configured")
	}
	if !strings.Contains(err.Error(), "headers") {
		t.Errorf("error = %v", err)
	}
}

func TestExportCommand_HeaderBlock(t *testing.T) {
	indexPath, exercisesPath := writeFixtures(t)
	outDir := t.TempDir()
	headerPath := filepath.Join(t.TempDir(), "header.md")
	if err := os.WriteFile(headerPath, []byte("Part of [[Training]]"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got, err := runCommand(t, "export",
		"--offline",
		"--index", indexPath,
		"--exercises", exercisesPath,
		"--out", outDir,
		"--header", headerPath,
	); err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, got)
	}

	content, err := os.ReadFile(filepath.Join(outDir, "push-day-a.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "Part of [[Training]]") {
		t.Error("header block not inserted")
	}
}
