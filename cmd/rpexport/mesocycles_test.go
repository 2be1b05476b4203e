package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMesocyclesCommand_Table(t *testing.T) {
	indexPath, exercisesPath := writeFixtures(t)

	got, err := runCommand(t, "mesocycles",
		"--offline",
		"--index", indexPath,
		"--exercises", exercisesPath,
	)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, got)
	}

	wantContains := []string{
		"KEY",
		"k1",
		"Push Day A",
		"completed",
		"2026-03-02 to 2026-04-12",
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMesocyclesCommand_JSON(t *testing.T) {
	indexPath, exercisesPath := writeFixtures(t)

	got, err := runCommand(t, "mesocycles", "--json",
		"--offline",
		"--index", indexPath,
		"--exercises", exercisesPath,
	)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, got)
	}

	var index []map[string]any
	if jsonErr := json.Unmarshal([]byte(got), &index); jsonErr != nil {
		t.Fatalf("output is not JSON: %v\n%s", jsonErr, got)
	}
	if len(index) != 1 || index[0]["key"] != "k1" {
		t.Errorf("index = %v", index)
	}
}

func TestExercisesCommand_Table(t *testing.T) {
	indexPath, exercisesPath := writeFixtures(t)

	got, err := runCommand(t, "exercises",
		"--offline",
		"--index", indexPath,
		"--exercises", exercisesPath,
	)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, got)
	}

	for _, want := range []string{"42", "Bench Press", "Barbell"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestExercisesCommand_Filter(t *testing.T) {
	indexPath, exercisesPath := writeFixtures(t)

	got, err := runCommand(t, "exercises",
		"--offline",
		"--index", indexPath,
		"--exercises", exercisesPath,
		"--filter", "deadlift",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, got)
	}
	if strings.Contains(got, "Bench Press") {
		t.Errorf("filter did not exclude Bench Press:\n%s", got)
	}
}
