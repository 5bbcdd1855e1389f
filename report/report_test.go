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

package report_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexbee-net/etxe/report"
	"github.com/hexbee-net/etxe/source"
)

func TestReport(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.etx", "resource \"x\" {\n\tsize = 0x\n}\n")

	var r report.Report
	r.Error(
		errors.New("incomplete literal"),
		report.Snippet(file, file.Span(23, 25), "expected digits"),
		report.Help("add at least one hex digit"),
	)
	r.Warn(
		errors.New("file is empty"),
		report.MentionFile("b.etx"),
	)

	assert.Equal(t, 1, r.Count(report.Error))
	assert.Equal(t, 1, r.Count(report.Warning))

	assert.Equal(t,
		"error: a.etx:2:9: incomplete literal\n"+
			"warning: b.etx: file is empty\n",
		r.Render(report.Simple))

	assert.Equal(t,
		"error: incomplete literal\n"+
			"  --> a.etx:2:9\n"+
			"   |\n"+
			" 2 |     size = 0x\n"+
			"   |            ^^ expected digits\n"+
			"   = help: add at least one hex digit\n"+
			"\n"+
			"warning: file is empty\n"+
			"  --> b.etx\n"+
			"\n"+
			"encountered 1 error and 1 warning\n",
		r.Render(report.Monochrome))

	colored := r.Render(report.Colored)
	assert.Contains(t, colored, "\033[1;31merror: incomplete literal")
	assert.Contains(t, colored, "\033[1;33mwarning: file is empty")
}

func TestMultilineSnippet(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.etx", "a = <<EOF\nx\nEOF\n")

	var r report.Report
	r.Error(errors.New("bad heredoc"), report.Snippet(file, file.Span(4, 15), "here"))
	d := r[0]

	assert.Equal(t,
		"error: bad heredoc\n"+
			"  --> a.etx:1:5\n"+
			"   |\n"+
			" 1 | a = <<EOF\n"+
			"   |     ^^^^^\n"+
			" 2 | x\n"+
			"   | ^\n"+
			" 3 | EOF\n"+
			"   | ^^^ here",
		d.Render(report.Monochrome))

	path, start, ok := d.Primary()
	assert.True(t, ok)
	assert.Equal(t, "a.etx", path)
	assert.Equal(t, source.Location{Line: 0, Column: 4, Offset: 4}, start)
}

func TestDiagnosticError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	var r report.Report
	r.Warn(cause, report.Note("just so you know"), report.Help(""))

	d := &r[0]
	assert.Equal(t, "boom", d.Error())
	assert.ErrorIs(t, d, cause)
	assert.Equal(t, report.Warning, d.Level)
	assert.Equal(t, "warning: <unknown>: boom", d.Render(report.Simple))
	assert.Equal(t,
		"warning: boom\n"+
			"  --> <unknown>\n"+
			"   = note: just so you know",
		d.Render(report.Monochrome))
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want report.Style
	}{
		{"simple", report.Simple},
		{"Monochrome", report.Monochrome},
		{"mono", report.Monochrome},
		{"colored", report.Colored},
		{"color", report.Colored},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			style, err := report.ParseStyle(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, style)
		})
	}

	_, err := report.ParseStyle("sparkly")
	assert.Error(t, err)
	assert.Equal(t, "colored", report.Colored.String())
	assert.Equal(t, "warning", report.Warning.String())
}
