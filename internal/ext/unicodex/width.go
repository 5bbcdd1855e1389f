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

package unicodex

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// NonPrint defines whether or not a rune is considered "unprintable for the
// purposes of diagnostics", that is, whether it is a rune that the diagnostics
// engine will replace with <U+NNNN> when printing.
func NonPrint(r rune) bool {
	return !strings.ContainsRune(" \r\t\n", r) && !unicode.IsPrint(r)
}

// Width is used for calculating the approximate width of a string in terminal
// columns.
//
// A zero Width starts at column zero and measures without writing anything.
type Width struct {
	// The column at which the text is being rendered. This is necessary for
	// tabstop calculations.
	Column int

	// If non-nil, text is copied here with tabs expanded to spaces and
	// unprintable runes escaped.
	Out *strings.Builder
}

// WriteString measures text, advancing w.Column, and copies it to w.Out.
func (w *Width) WriteString(text string) {
	for text != "" {
		// Find the next rune that needs special treatment; everything before it
		// is measured by grapheme cluster.
		idx := strings.IndexFunc(text, func(r rune) bool {
			return r == '\t' || r == utf8.RuneError || NonPrint(r)
		})
		if idx == -1 {
			w.plain(text)
			return
		}

		w.plain(text[:idx])
		text = text[idx:]

		r, n := utf8.DecodeRuneInString(text)
		b := text[0]
		text = text[n:]
		switch {
		case r == '\t':
			tab := TabstopWidth - w.Column%TabstopWidth
			w.Column += tab
			w.write(strings.Repeat(" ", tab))
		case r == utf8.RuneError && n == 1:
			w.escape(fmt.Sprintf("<%02X>", b))
		default:
			w.escape(fmt.Sprintf("<U+%04X>", r))
		}
	}
}

func (w *Width) plain(text string) {
	w.Column += uniseg.StringWidth(text)
	w.write(text)
}

func (w *Width) escape(text string) {
	w.Column += len(text)
	w.write(text)
}

func (w *Width) write(text string) {
	if w.Out != nil {
		w.Out.WriteString(text)
	}
}

// Columns returns the number of terminal columns text occupies when printed
// starting at column zero.
func Columns(text string) int {
	var w Width
	w.WriteString(text)
	return w.Column
}
