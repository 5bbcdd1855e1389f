// Copyright 2022-2025 Hexbee
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scan lexes whole projects: it finds etxe files on disk and runs an
// independent [lexer.Lexer] over each of them, in parallel.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hexbee-net/etxe/lexer"
	"github.com/hexbee-net/etxe/report"
	"github.com/hexbee-net/etxe/source"
)

// DefaultInclude is the glob used by [Discover] when no include globs are
// given.
const DefaultInclude = "**/*.etx"

// Result is the outcome of lexing a single file.
type Result struct {
	Path string
	File *source.File

	// Every item the lexer produced, ending with the end-of-input item.
	Items []lexer.Item
	// The recoverable errors found along the way.
	Diagnostics []lexer.Diagnostic

	// The context the lexer was in when it produced each error item, in the
	// order of the error items.
	errorContexts []lexer.Context
}

// HasErrors returns whether lexing this file produced any error, fatal or
// recoverable.
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0 || slices.ContainsFunc(r.Items, lexer.Item.IsError)
}

// Report converts every error item and diagnostic of this result into a
// [report.Report], in source order.
//
// Error items also note the context the lexer was in, since lexing resumes
// after them.
func (r *Result) Report() report.Report {
	type entry struct {
		diag    lexer.Diagnostic
		context *lexer.Context
	}

	var entries []entry
	for _, d := range r.Diagnostics {
		entries = append(entries, entry{diag: d})
	}
	var fatal int
	for _, item := range r.Items {
		if !item.IsError() {
			continue
		}
		e := entry{diag: item.Diagnostic()}
		if fatal < len(r.errorContexts) {
			e.context = &r.errorContexts[fatal]
		}
		entries = append(entries, e)
		fatal++
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.diag.Span.Compare(b.diag.Span)
	})

	var rep report.Report
	for _, e := range entries {
		opts := []report.DiagnosticOption{
			report.Snippet(r.File, e.diag.Span, ""),
			report.Help("%s", e.diag.Value.Help()),
		}
		if e.context != nil {
			opts = append(opts, report.Note("the lexer was in %v mode", *e.context))
		}
		rep.Error(e.diag.Value, opts...)
	}
	return rep
}

// lex runs a lexer over this result's file, filling in the items and
// diagnostics.
func (r *Result) lex(opts ...lexer.Option) {
	l := lexer.New(r.File.Text(), opts...)
	for {
		ctx := l.Context()
		item := l.NextItem()
		r.Items = append(r.Items, item)
		if item.IsError() {
			r.errorContexts = append(r.errorContexts, ctx)
		}
		if item.IsEOF() {
			break
		}
	}
	r.Diagnostics = l.Diagnostics()
}

// Option configures [Files].
type Option func(*options)

type options struct {
	parallelism int
	logger      logrus.FieldLogger
	debug       bool
}

// WithParallelism sets how many files are lexed at once. Values less than one
// mean no limit.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// WithLogger sets the logger for progress messages and lexer tracing.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) { o.logger = logger }
}

// WithDebug turns on lexer debug tracing for every file.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// Files reads and lexes each of paths, returning one result per path, in the
// same order.
//
// Lexical errors are recorded in the results; the returned error is only for
// files that could not be read, or for cancellation of ctx.
func Files(ctx context.Context, paths []string, opts ...Option) ([]*Result, error) {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]*Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if o.parallelism > 0 {
		g.SetLimit(o.parallelism)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			logger := o.logger.WithField("path", path)
			res := &Result{Path: path, File: source.NewFile(path, string(text))}
			res.lex(lexer.WithLogger(logger), lexer.WithDebug(o.debug))
			logger.WithFields(logrus.Fields{
				"tokens": len(res.Items),
				"errors": len(res.Diagnostics) + len(res.errorContexts),
			}).Debug("scan: file")

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Discover finds the files under root which match any of the include globs
// and none of the exclude globs. Globs use doublestar syntax and are matched
// against slash-separated paths relative to root.
//
// The returned paths are joined to root and sorted.
func Discover(root string, include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		include = []string{DefaultInclude}
	}
	for _, pattern := range slices.Concat(include, exclude) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("scan: %w: %q", doublestar.ErrBadPattern, pattern)
		}
	}

	fsys := os.DirFS(root)
	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("scan: globbing %q: %w", pattern, err)
		}

	match:
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			for _, pattern := range exclude {
				if doublestar.MatchUnvalidated(pattern, match) {
					continue match
				}
			}
			seen[match] = struct{}{}
			paths = append(paths, filepath.Join(root, filepath.FromSlash(match)))
		}
	}

	if len(paths) == 0 {
		if _, err := fs.Stat(fsys, "."); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
	}

	slices.Sort(paths)
	return paths, nil
}
