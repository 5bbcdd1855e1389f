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

package report

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/hexbee-net/etxe/source"
)

const (
	Error Level = 1 + iota
	Warning
	note // Used internally within the renderer.
)

const (
	Simple Style = 1 + iota
	Monochrome
	Colored
)

// Level represents the severity of a diagnostic message.
type Level int8

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case note:
		return "note"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Style indicates how a diagnostic should be rendered to show a user.
type Style int

// ParseStyle parses the name of a style, as written in configuration files
// and on the command line.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "simple":
		return Simple, nil
	case "monochrome", "mono":
		return Monochrome, nil
	case "colored", "color":
		return Colored, nil
	default:
		return 0, fmt.Errorf("unknown diagnostic style %q", name)
	}
}

// String implements [fmt.Stringer].
func (s Style) String() string {
	switch s {
	case Simple:
		return "simple"
	case Monochrome:
		return "monochrome"
	case Colored:
		return "colored"
	default:
		return fmt.Sprintf("report.Style(%d)", int(s))
	}
}

// Diagnostic is a type of error that can be rendered as a rich diagnostic.
//
// Not all Diagnostics are "errors", even though Diagnostic does embed error;
// some represent warnings.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	// The kind of diagnostic this is, which affects how and whether it is
	// shown to users.
	Level Level

	mention     string
	snippets    []snippet
	notes, help []string

	// Stack trace information for the diagnostic, for debugging etxe itself.
	// Only populated when the env var ETXE_DEBUG is set.
	trace []runtime.Frame
}

type snippet struct {
	file    *source.File
	span    source.Span
	message string
	primary bool
}

// Primary returns the file and location of this diagnostic's primary
// snippet. If it has none, ok is false and path is the mentioned file, if
// any.
func (d *Diagnostic) Primary() (path string, start source.Location, ok bool) {
	if len(d.snippets) == 0 {
		return d.mention, source.Location{}, false
	}
	return d.snippets[0].file.Path(), d.snippets[0].span.Start, true
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// MentionFile returns a DiagnosticOption that causes a diagnostic without
// a primary span to mention the given file.
func MentionFile(path string) DiagnosticOption {
	return func(d *Diagnostic) { d.mention = path }
}

// Snippet returns a DiagnosticOption that adds a new snippet of file to the
// diagnostic, underlining the span of at.
//
// The first snippet added is the "primary" snippet, and will be rendered
// differently from the others.
func Snippet(file *source.File, at source.Spanner, format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.snippets = append(d.snippets, snippet{
			file:    file,
			span:    at.Span(),
			message: fmt.Sprintf(format, args...),
			primary: len(d.snippets) == 0,
		})
	}
}

// Note returns a DiagnosticOption that provides the user with context about
// the diagnostic, after the snippets.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.notes = append(d.notes, fmt.Sprintf(format, args...))
	}
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic. Empty suggestions are dropped.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		if help := fmt.Sprintf(format, args...); help != "" {
			d.help = append(d.help, help)
		}
	}
}

// Report is a collection of diagnostics.
type Report []Diagnostic

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err error, opts ...DiagnosticOption) {
	r.push(1, err, Error, opts)
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err error, opts ...DiagnosticOption) {
	r.push(1, err, Warning, opts)
}

// Count returns the number of diagnostics at the given level.
func (r Report) Count(level Level) int {
	var n int
	for _, d := range r {
		if d.Level == level {
			n++
		}
	}
	return n
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(skip int, err error, level Level, opts []DiagnosticOption) {
	*r = append(*r, Diagnostic{Err: err, Level: level})
	d := &(*r)[len(*r)-1]
	for _, opt := range opts {
		opt(d)
	}

	if debugMode > debugOff {
		d.trace = callers(skip + 2)
	}
}

// callers captures the stack above the caller skip frames up.
func callers(skip int) []runtime.Frame {
	pc := make([]uintptr, 64)
	pc = pc[:runtime.Callers(skip+1, pc)]

	var trace []runtime.Frame
	frames := runtime.CallersFrames(pc)
	for {
		next, more := frames.Next()
		if next != (runtime.Frame{}) {
			trace = append(trace, next)
		}
		if !more {
			return trace
		}
	}
}

// Error implements [error].
func (d *Diagnostic) Error() string {
	return d.Err.Error()
}

// Unwrap returns the error that prompted this diagnostic.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}
