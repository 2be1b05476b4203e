package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/N4M3Z/rpstrength-export/internal/document"
)

// chartColors cycles through the per-muscle chart blocks.
var chartColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// createdLayout is the timestamp format used in front matter.
const createdLayout = "2006-01-02 15:04 UTC"

// FormatMarkdown renders an assembled document as a complete Markdown note:
// front matter, the fixed header block verbatim, the exercise summary table,
// the weekly volume section, and every training day in source order.
// Rendering is pure; the clock comes in via now so output is reproducible.
func FormatMarkdown(doc *document.Document, tmpl *Template, header string, now time.Time) (string, error) {
	if tmpl == nil {
		tmpl = DefaultTemplate()
	}

	stamp := now.UTC().Format(createdLayout)
	front, err := tmpl.Render(&Fields{
		Title:   doc.Title,
		Created: stamp,
		Updated: stamp,
		Source:  doc.Key + ".json",
		Start:   doc.StartDate,
		End:     doc.EndDate,
		Tags:    doc.Tags,
	})
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(front)
	builder.WriteString("\n\n")

	if header != "" {
		builder.WriteString(strings.TrimRight(header, "\n"))
		builder.WriteString("\n\n")
	}

	writeSummary(&builder, doc)
	writeVolume(&builder, doc)
	writeDays(&builder, doc)

	rendered := builder.String()
	if err := verifyFrontmatter(rendered); err != nil {
		return "", err
	}
	return rendered, nil
}

// verifyFrontmatter parses the rendered note's front matter back out and
// fails if substitution produced invalid YAML.
func verifyFrontmatter(rendered string) error {
	var meta map[string]any
	if _, err := frontmatter.Parse(strings.NewReader(rendered), &meta); err != nil {
		return &TemplateError{
			Message: fmt.Sprintf("rendered front matter is not valid YAML: %v", err),
		}
	}
	if len(meta) == 0 {
		return &TemplateError{Message: "rendered front matter is empty"}
	}
	return nil
}

// writeSummary writes the per-day exercise summary table.
func writeSummary(builder *strings.Builder, doc *document.Document) {
	builder.WriteString("## Exercise Summary\n\n")

	headers := make([]string, 0, doc.WeekCount+4)
	headers = append(headers, "Exercise")
	for w := 1; w <= doc.WeekCount; w++ {
		headers = append(headers, fmt.Sprintf("W%d", w))
	}
	headers = append(headers, "Total", "Max Weight", "Max Reps")

	fmt.Fprintf(builder, "| %s |\n", strings.Join(headers, " | "))
	fmt.Fprintf(builder, "|%s |\n", strings.Repeat(" --- |", len(headers)))

	for _, day := range doc.Summary {
		fmt.Fprintf(builder, "| **%s**%s |\n", day.Label, strings.Repeat(" |", len(headers)-1))
		for _, row := range day.Rows {
			cells := make([]string, 0, len(headers))
			cells = append(cells, "[["+row.Exercise+"]]")
			for _, sets := range row.WeeklySets {
				cells = append(cells, strconv.Itoa(sets))
			}
			cells = append(cells, strconv.Itoa(row.TotalSets))
			if row.HasMax {
				cells = append(cells, formatWeight(row.MaxWeight), strconv.Itoa(row.MaxReps))
			} else {
				cells = append(cells, "", "")
			}
			fmt.Fprintf(builder, "| %s |\n", strings.Join(cells, " | "))
		}
	}
	builder.WriteString("\n")
}

// writeVolume writes the weekly per-muscle volume table and its chart blocks.
func writeVolume(builder *strings.Builder, doc *document.Document) {
	if len(doc.Volume) == 0 {
		return
	}

	weekHeaders := make([]string, 0, doc.WeekCount)
	for w := 1; w <= doc.WeekCount; w++ {
		weekHeaders = append(weekHeaders, fmt.Sprintf("W%d", w))
	}
	fmt.Fprintf(builder, "| Muscle | %s |\n", strings.Join(weekHeaders, " | "))
	fmt.Fprintf(builder, "|%s\n", strings.Repeat("--------|", doc.WeekCount+1))

	for _, row := range doc.Volume {
		cells := make([]string, 0, doc.WeekCount+1)
		cells = append(cells, row.Muscle)
		for _, sets := range row.Sets {
			cells = append(cells, strconv.Itoa(sets))
		}
		fmt.Fprintf(builder, "| %s |\n", strings.Join(cells, " | "))
	}
	builder.WriteString("^table\n\n## Summary\n\n")

	for i, row := range doc.Volume {
		color := chartColors[i%len(chartColors)]
		fmt.Fprintf(builder, "```chart\ntype: bar\nid: table\ntitle: %q\nselect: [%q]\nlayout: rows\nwidth: 80%%\nbeginAtZero: true\ncolor: %q\nshowDataLabels: true\n```\n", row.Muscle, row.Muscle, color)
	}
	builder.WriteString("\n")
}

// writeDays writes every training day in source order.
func writeDays(builder *strings.Builder, doc *document.Document) {
	for weekIdx, week := range doc.Weeks {
		for _, day := range week.Days {
			fmt.Fprintf(builder, "## Week %d - Day %d - %s ([[%s]])\n\n",
				weekIdx+1, day.Position+1, day.Label, day.Date)

			for _, exercise := range day.Exercises {
				fmt.Fprintf(builder, "### %s — [[%s]]\n\n[[%s]]\n\n",
					strings.Join(exercise.MuscleGroups, " / "), exercise.Name, exercise.Equipment)

				builder.WriteString("| Weight | Reps |\n| ------ | ---- |\n")
				for _, set := range exercise.Sets {
					weight := ""
					if set.Weight != nil {
						weight = formatWeight(*set.Weight)
					}
					fmt.Fprintf(builder, "| %s | %d |\n", weight, set.Reps)
				}

				if exercise.Notes != "" {
					fmt.Fprintf(builder, "\n> %s\n", exercise.Notes)
				}
				builder.WriteString("\n")
			}

			builder.WriteString("---\n\n")
		}
	}
}

// formatWeight renders a weight without trailing zeros: 100, 102.5.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
