// Package export turns assembled mesocycle documents into Markdown notes on
// disk.
//
// The package has three layers. Template loads and validates a front matter
// template and substitutes its placeholders. FormatMarkdown renders one
// document into the final note text: front matter, optional header, exercise
// summary, weekly volume, and the per-day set tables. Runner drives a whole
// run: it resolves the index and catalog through the cache, prepares every
// selected mesocycle, and only then writes files, so a strict-mode abort
// leaves the output directory untouched.
//
//	runner := &export.Runner{Cache: store, Fetcher: client, OutDir: "output"}
//	report, err := runner.Run(ctx)
//
// Rendering the same mesocycle twice produces byte-identical output apart
// from the timestamp fields, and filenames are derived from the mesocycle
// name with a stable slug, so re-exports overwrite in place.
package export
