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
	"strings"

	"github.com/hexbee-net/etxe/internal/ext/unicodex"
)

// maxSnippetLines is the most lines of a multi-line snippet that are shown
// before the middle is elided.
const maxSnippetLines = 4

// Render renders this diagnostic report in a format suitable for showing to a user.
func (r Report) Render(style Style) string {
	var out strings.Builder
	for i := range r {
		out.WriteString(r[i].Render(style))
		out.WriteString("\n")
		if style != Simple {
			out.WriteString("\n")
		}
	}
	if style == Simple {
		return out.String()
	}

	var color color
	if style == Colored {
		color = ansiColor()
	}

	errors, warnings := r.Count(Error), r.Count(Warning)
	switch {
	case errors > 0:
		fmt.Fprint(&out, color.bRed, "encountered ", pluralize(errors, "error"))
		if warnings > 0 {
			fmt.Fprint(&out, " and ", pluralize(warnings, "warning"))
		}
		fmt.Fprint(&out, color.reset, "\n")
	case warnings > 0:
		fmt.Fprint(&out, color.bYellow, "encountered ", pluralize(warnings, "warning"), color.reset, "\n")
	}

	return out.String()
}

// Render renders this diagnostic in a format suitable for showing to a user.
func (d *Diagnostic) Render(style Style) string {
	// For the simple style, we imitate the Go compiler.
	if style == Simple {
		path, start, ok := d.Primary()
		if path == "" {
			path = "<unknown>"
		}
		if !ok {
			return fmt.Sprintf("%s: %s: %s", d.Level, path, d.Err.Error())
		}
		return fmt.Sprintf("%s: %s:%v: %s", d.Level, path, start, d.Err.Error())
	}

	// For the other styles, we imitate the Rust compiler.
	var color color
	if style == Colored {
		color = ansiColor()
	}

	var out strings.Builder
	fmt.Fprint(&out, color.BoldForLevel(d.Level), d.Level, ": ", d.Err.Error(), color.reset)

	// The line bar is as wide as the largest line number shown.
	var greatestLine int
	for _, snip := range d.snippets {
		greatestLine = max(greatestLine, snip.span.End.Line+1)
	}
	bar := strings.Repeat(" ", max(2, len(fmt.Sprint(greatestLine))))

	for i, snip := range d.snippets {
		if i == 0 || snip.file != d.snippets[i-1].file {
			arrow := "-->"
			if i > 0 {
				arrow = ":::"
			}
			fmt.Fprintf(&out, "\n%s%s%s %s:%v", color.nBlue, bar, arrow, snip.file.Path(), snip.span.Start)
			fmt.Fprintf(&out, "\n%s%s |%s", color.nBlue, bar, color.reset)
		}
		renderSnippet(&out, d.Level, snip, bar, &color)
	}

	if len(d.snippets) == 0 {
		path := d.mention
		if path == "" {
			path = "<unknown>"
		}
		fmt.Fprintf(&out, "\n%s%s--> %s%s", color.nBlue, bar, path, color.reset)
	}

	var footers [][2]string
	for _, note := range d.notes {
		footers = append(footers, [2]string{"note", note})
	}
	for _, help := range d.help {
		footers = append(footers, [2]string{"help", help})
	}
	for i, frame := range d.trace {
		if debugMode < debugFull && i > 0 {
			break
		}
		footers = append(footers,
			[2]string{"debug", "at " + frame.Function},
			[2]string{"debug", fmt.Sprintf("   %s:%d", frame.File, frame.Line)},
		)
	}
	for _, footer := range footers {
		fmt.Fprint(&out, "\n", color.nBlue, bar, " = ", color.bCyan, footer[0], ": ", color.reset, footer[1])
	}

	return out.String()
}

// renderSnippet renders the lines a snippet covers, each followed by an
// underline. The message goes after the last underline.
func renderSnippet(out *strings.Builder, level Level, snip snippet, bar string, color *color) {
	start, end := snip.span.Start, snip.span.End
	endLine, endColumn := end.Line, end.Column
	if endLine > start.Line && endColumn == 0 {
		// A span that ends with a newline does not reach the next line.
		endLine--
		endColumn = -1
	}

	mark, underline := "-", color.nBlue
	if snip.primary {
		mark, underline = "^", color.ColorForLevel(level)
	}

	for line := start.Line; line <= endLine; line++ {
		if endLine-start.Line > maxSnippetLines && line == start.Line+maxSnippetLines/2 {
			fmt.Fprintf(out, "\n%s...%s", color.nBlue, color.reset)
			line = endLine - maxSnippetLines/2
		}

		text := snip.file.Line(line)
		from, to := 0, -1
		if line == start.Line {
			from = start.Column
		}
		if line == endLine {
			to = endColumn
		}

		var w unicodex.Width
		w.Out = new(strings.Builder)
		w.WriteString(strings.TrimRight(text, "\r"))
		rendered := strings.TrimRight(w.Out.String(), " ")

		fmt.Fprintf(out, "\n%s%*d |%s", color.nBlue, len(bar), line+1, color.reset)
		if rendered != "" {
			out.WriteString(" " + rendered)
		}

		left, right := columns(text, from), columns(text, to)
		fmt.Fprintf(out, "\n%s%s |%s %s%s%s",
			color.nBlue, bar, color.reset,
			strings.Repeat(" ", left), underline, strings.Repeat(mark, max(1, right-left)))
		if line == endLine && snip.message != "" {
			out.WriteString(" " + snip.message)
		}
		out.WriteString(color.reset)
	}
}

// columns returns the terminal column at which the given character column of
// text is rendered. A negative column means the end of the line.
func columns(text string, column int) int {
	prefix := text
	for i := range text {
		if column == 0 {
			prefix = text[:i]
			break
		}
		column--
	}
	return unicodex.Columns(prefix)
}

func pluralize(count int, what string) string {
	if count == 1 {
		return "1 " + what
	}
	return fmt.Sprint(count, " ", what, "s")
}

// color is the colors used for pretty-rendering diagnostics.
//
// The zero value renders without color.
type color struct {
	reset string
	// Normal colors.
	nRed, nYellow, nCyan, nBlue string
	// Bold colors.
	bRed, bYellow, bCyan, bBlue string
}

func ansiColor() color {
	return color{
		reset:   "\033[0m",
		nRed:    "\033[0;31m",
		nYellow: "\033[0;33m",
		nCyan:   "\033[0;36m",
		nBlue:   "\033[0;34m",
		bRed:    "\033[1;31m",
		bYellow: "\033[1;33m",
		bCyan:   "\033[1;36m",
		bBlue:   "\033[1;34m",
	}
}

func (c color) ColorForLevel(l Level) string {
	switch l {
	case Error:
		return c.nRed
	case Warning:
		return c.nYellow
	case note:
		return c.nBlue
	default:
		return ""
	}
}

func (c color) BoldForLevel(l Level) string {
	switch l {
	case Error:
		return c.bRed
	case Warning:
		return c.bYellow
	case note:
		return c.bBlue
	default:
		return ""
	}
}
