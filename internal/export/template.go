package export

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Supported front-matter placeholder keys. The template substitutes
// {placeholder} tokens; anything outside this set is a configuration error
// caught before any output is written.
var supportedPlaceholders = map[string]bool{
	"title":   true,
	"created": true,
	"updated": true,
	"source":  true,
	"start":   true,
	"end":     true,
	"tags":    true,
}

// placeholderPattern matches {name} tokens in a template body.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_]+)\}`)

// TemplateError reports a front-matter template that references unsupported
// placeholders or renders to invalid YAML. Always fatal: a broken template
// would corrupt every document, so nothing is written.
type TemplateError struct {
	Placeholders []string
	Message      string
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	if len(e.Placeholders) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Placeholders, ", "))
	}
	return e.Message
}

// Fields holds the document values substituted into a front-matter template.
type Fields struct {
	Title   string
	Created string
	Updated string
	Source  string
	Start   string
	End     string
	Tags    []string
}

// value returns the substitution value for a supported placeholder key.
func (f *Fields) value(key string) string {
	switch key {
	case "title":
		return f.Title
	case "created":
		return f.Created
	case "updated":
		return f.Updated
	case "source":
		return f.Source
	case "start":
		return f.Start
	case "end":
		return f.End
	case "tags":
		return "[" + strings.Join(f.Tags, ", ") + "]"
	}
	return ""
}

// Template is a front-matter template: text with {placeholder} tokens,
// delimited by --- lines. Templates without delimiters get them added.
type Template struct {
	Body string
}

// DefaultTemplate returns the built-in front-matter template covering every
// supported placeholder.
func DefaultTemplate() *Template {
	return &Template{Body: `---
title: {title}
created: {created}
updated: {updated}
source: {source}
start: {start}
end: {end}
tags: {tags}
---`}
}

// LoadTemplate reads a front-matter template from a file and validates its
// placeholders. An empty path returns the default template.
func LoadTemplate(path string) (*Template, error) {
	if path == "" {
		return DefaultTemplate(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading front-matter template %s: %w", path, err)
	}

	tmpl := &Template{Body: strings.TrimSpace(string(data))}
	if err := tmpl.validate(); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// validate rejects templates referencing placeholders the renderer never
// supplies.
func (t *Template) validate() error {
	var unknown []string
	seen := make(map[string]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(t.Body, -1) {
		name := match[1]
		if !supportedPlaceholders[name] && !seen[name] {
			seen[name] = true
			unknown = append(unknown, "{"+name+"}")
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &TemplateError{
			Placeholders: unknown,
			Message:      "front-matter template references unsupported placeholders",
		}
	}
	return nil
}

// Render substitutes fields into the template and returns the completed
// front-matter block, delimiters included.
func (t *Template) Render(fields *Fields) (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}

	rendered := placeholderPattern.ReplaceAllStringFunc(t.Body, func(token string) string {
		name := token[1 : len(token)-1]
		return fields.value(name)
	})

	rendered = strings.TrimSpace(rendered)
	if !strings.HasPrefix(rendered, "---") {
		rendered = "---\n" + rendered + "\n---"
	}
	return rendered, nil
}
