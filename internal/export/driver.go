package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/N4M3Z/rpstrength-export/internal/cache"
	"github.com/N4M3Z/rpstrength-export/internal/document"
	"github.com/N4M3Z/rpstrength-export/internal/meso"
	"github.com/N4M3Z/rpstrength-export/internal/muscles"
	"github.com/N4M3Z/rpstrength-export/internal/output"
	"github.com/N4M3Z/rpstrength-export/internal/rpapi"
)

// Cache file names for the two run-level fetches.
const (
	IndexCacheName   = "mesocycles.json"
	CatalogCacheName = "exercises.json"
)

// Runner orchestrates the export pipeline: load or fetch the index and
// catalog, assemble and render each mesocycle, and hand the results to the
// file-writing collaborator. Construct one per run; it holds no global state.
type Runner struct {
	Cache    *cache.Store
	Fetcher  rpapi.Fetcher // nil for offline runs
	Resolver *muscles.Resolver
	Template *Template

	// Header is inserted verbatim between the front matter and the body.
	Header string

	// IndexPath and CatalogPath, when set, are pre-supplied JSON files that
	// bypass both the cache and the network.
	IndexPath   string
	CatalogPath string

	OutDir string

	// Selection restricts the run to these index positions; nil means all.
	Selection []int

	// Strict aborts the run on the first mesocycle failure instead of
	// recording it and continuing.
	Strict bool

	// SaveJSON writes each mesocycle's raw JSON next to its Markdown file.
	SaveJSON bool

	WriteFile WriteFileFunc
	Now       func() time.Time
}

// Failure records one mesocycle that could not be exported.
type Failure struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Report summarizes an export run. Counts are sums, independent of the order
// mesocycles were processed in.
type Report struct {
	Written  int       `json:"written"`
	Skipped  int       `json:"skipped"`
	Failed   int       `json:"failed"`
	Failures []Failure `json:"failures,omitempty"`
	Warnings []string  `json:"warnings,omitempty"`
}

// prepared is one mesocycle rendered and ready to write.
type prepared struct {
	filename string
	content  string
	raw      []byte
}

// Run executes the export pipeline and returns the run report.
//
// Fatal errors (fetch failures, template errors, write failures) abort the
// run. Per-mesocycle data errors are recorded in the report and skipped,
// unless Strict is set, in which case the first one aborts before anything
// is written: rendering happens for every mesocycle first, writing second.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	r.applyDefaults()

	if err := r.Template.validate(); err != nil {
		return nil, output.NewUserError(err.Error())
	}

	index, err := r.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := r.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	var ready []prepared
	seen := make(map[string]bool)

	for _, m := range r.selected(index) {
		p, err := r.prepare(ctx, m, catalog)
		if err != nil {
			if errors.Is(err, rpapi.ErrGone) {
				report.Skipped++
				continue
			}
			if isMesocycleFailure(err) {
				if r.Strict {
					return nil, output.NewDataError(
						fmt.Sprintf("strict mode: aborting on %q: %v", m.Name, err))
				}
				report.Failed++
				report.Failures = append(report.Failures, Failure{Name: m.Name, Reason: err.Error()})
				continue
			}
			return nil, wrapFatal(err)
		}
		// Same-named mesocycles slugify to the same file; suffix the key so
		// one run never overwrites its own output.
		if seen[p.filename] {
			p.filename = strings.TrimSuffix(p.filename, ".md") + "-" + m.Key + ".md"
		}
		seen[p.filename] = true
		ready = append(ready, p)
	}

	for _, p := range ready {
		path := filepath.Join(r.OutDir, p.filename)
		if err := r.WriteFile(path, []byte(p.content)); err != nil {
			return report, output.NewSystemErrorWithCause("writing "+path, err)
		}
		if r.SaveJSON && p.raw != nil {
			jsonPath := strings.TrimSuffix(path, ".md") + ".json"
			if err := r.WriteFile(jsonPath, p.raw); err != nil {
				return report, output.NewSystemErrorWithCause("writing "+jsonPath, err)
			}
		}
		report.Written++
	}

	report.Warnings = r.Resolver.Warnings()
	return report, nil
}

// LoadIndex returns the mesocycle index: from the pre-supplied file when set,
// otherwise cache-or-fetch.
func (r *Runner) LoadIndex(ctx context.Context) ([]*meso.Mesocycle, error) {
	r.applyDefaults()

	data, err := r.loadBlob(ctx, r.IndexPath, IndexCacheName, func(ctx context.Context) ([]byte, error) {
		return r.Fetcher.FetchIndex(ctx)
	})
	if err != nil {
		return nil, err
	}

	index, err := meso.ParseIndex(data)
	if err != nil {
		return nil, output.NewDataError(err.Error())
	}
	return index, nil
}

// LoadCatalog returns the exercise catalog: from the pre-supplied file when
// set, otherwise cache-or-fetch.
func (r *Runner) LoadCatalog(ctx context.Context) (meso.Catalog, error) {
	r.applyDefaults()

	data, err := r.loadBlob(ctx, r.CatalogPath, CatalogCacheName, func(ctx context.Context) ([]byte, error) {
		return r.Fetcher.FetchExercises(ctx)
	})
	if err != nil {
		return nil, err
	}

	catalog, err := meso.ParseCatalog(data)
	if err != nil {
		return nil, output.NewDataError(err.Error())
	}
	return catalog, nil
}

// RenderMesocycle assembles and renders a single mesocycle by index key.
// Used by the MCP render tool and by tests that need one document.
func (r *Runner) RenderMesocycle(ctx context.Context, key string) (string, error) {
	r.applyDefaults()

	index, err := r.LoadIndex(ctx)
	if err != nil {
		return "", err
	}
	catalog, err := r.LoadCatalog(ctx)
	if err != nil {
		return "", err
	}

	for _, m := range index {
		if m.Key != key {
			continue
		}
		p, err := r.prepare(ctx, m, catalog)
		if err != nil {
			return "", wrapFatal(err)
		}
		return p.content, nil
	}
	return "", output.NewUserError("no mesocycle with key " + key)
}

// prepare resolves a mesocycle's detail, assembles it, and renders it.
func (r *Runner) prepare(ctx context.Context, m *meso.Mesocycle, catalog meso.Catalog) (prepared, error) {
	detail := m
	var raw []byte

	if !m.HasDetail() {
		if r.Fetcher == nil {
			return prepared{}, fmt.Errorf("mesocycle %q has no week data and no fetcher is configured", m.Name)
		}
		var err error
		raw, err = r.Fetcher.FetchMesocycle(ctx, m.Key)
		if err != nil {
			return prepared{}, err
		}
		detail, err = meso.ParseMesocycle(raw)
		if err != nil {
			return prepared{}, err
		}
	}

	doc, err := document.Assemble(detail, catalog, r.Resolver)
	if err != nil {
		return prepared{}, err
	}

	content, err := FormatMarkdown(doc, r.Template, r.Header, r.Now())
	if err != nil {
		return prepared{}, err
	}

	return prepared{filename: Filename(m), content: content, raw: raw}, nil
}

// loadBlob resolves one run-level JSON blob through the three supply paths:
// pre-supplied file, cache, fetch.
func (r *Runner) loadBlob(ctx context.Context, presupplied, cacheName string, fetch cache.FetchFunc) ([]byte, error) {
	if presupplied != "" {
		data, err := os.ReadFile(presupplied)
		if err != nil {
			return nil, output.NewSystemErrorWithCause("reading "+presupplied, err)
		}
		return data, nil
	}

	if r.Fetcher == nil {
		fetch = nil
	}
	data, _, err := r.Cache.LoadOrFetch(ctx, cacheName, fetch)
	if err != nil {
		return nil, wrapFatal(err)
	}
	return data, nil
}

// selected applies the Selection filter, preserving index order.
func (r *Runner) selected(index []*meso.Mesocycle) []*meso.Mesocycle {
	if r.Selection == nil {
		return index
	}
	chosen := make(map[int]bool, len(r.Selection))
	for _, i := range r.Selection {
		chosen[i] = true
	}
	var out []*meso.Mesocycle
	for i, m := range index {
		if chosen[i] {
			out = append(out, m)
		}
	}
	return out
}

// isMesocycleFailure reports whether err is a recoverable per-mesocycle data
// problem, as opposed to a fatal run-level error.
func isMesocycleFailure(err error) bool {
	var missingErr *document.MissingExerciseError
	var validationErr *meso.ValidationError
	var fetchErr *rpapi.FetchError
	var tmplErr *TemplateError
	if errors.As(err, &fetchErr) || errors.As(err, &tmplErr) {
		return false
	}
	if errors.As(err, &missingErr) || errors.As(err, &validationErr) {
		return true
	}
	// Missing week data without a fetcher is a data problem for that
	// mesocycle, not a run-level failure.
	return strings.Contains(err.Error(), "no week data")
}

// wrapFatal maps domain errors onto exit-coded errors for the CLI.
func wrapFatal(err error) error {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	var fetchErr *rpapi.FetchError
	if errors.As(err, &fetchErr) {
		return output.NewSystemErrorWithCause(fetchErr.Error(), fetchErr)
	}
	var tmplErr *TemplateError
	if errors.As(err, &tmplErr) {
		return output.NewUserError(tmplErr.Error())
	}
	var missingErr *document.MissingExerciseError
	if errors.As(err, &missingErr) {
		return output.NewDataError(missingErr.Error())
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}

// applyDefaults fills zero-valued collaborators so a Runner can be
// constructed with only the fields a caller cares about.
func (r *Runner) applyDefaults() {
	if r.Cache == nil {
		r.Cache = cache.New("conf")
	}
	if r.Resolver == nil {
		r.Resolver = muscles.NewResolver(nil)
	}
	if r.Template == nil {
		r.Template = DefaultTemplate()
	}
	if r.WriteFile == nil {
		r.WriteFile = DefaultWriteFile
	}
	if r.Now == nil {
		r.Now = time.Now
	}
}
