// Package main provides the entry point for the rpexport CLI.
package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSelection parses an index selection like "0,2-4" into a sorted,
// de-duplicated list of positions. Ranges are inclusive.
func parseSelection(value string) ([]int, error) {
	seen := make(map[int]bool)
	var selection []int

	add := func(i int) {
		if !seen[i] {
			seen[i] = true
			selection = append(selection, i)
		}
	}

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		low, high, isRange := strings.Cut(part, "-")
		if !isRange {
			i, err := parseIndex(part)
			if err != nil {
				return nil, err
			}
			add(i)
			continue
		}

		start, err := parseIndex(low)
		if err != nil {
			return nil, err
		}
		end, err := parseIndex(high)
		if err != nil {
			return nil, err
		}
		if end < start {
			return nil, fmt.Errorf("invalid selection range %q: end before start", part)
		}
		for i := start; i <= end; i++ {
			add(i)
		}
	}

	if len(selection) == 0 {
		return nil, fmt.Errorf("selection %q contains no positions", value)
	}
	return selection, nil
}

// parseIndex parses one non-negative index position.
func parseIndex(value string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid selection position %q: expected a non-negative number", value)
	}
	return i, nil
}
