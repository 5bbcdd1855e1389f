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

package source

import (
	"cmp"
	"fmt"
	"unicode/utf8"
)

// Location is a point within a source text.
//
// Line and Column are zero-indexed; Column counts characters, not bytes.
// Only Offset is significant for comparisons: two locations with the same
// byte offset are equal even if their line information disagrees. Use
// [Location.Equal] rather than == for this reason.
type Location struct {
	Line, Column int

	// The absolute byte offset of this location.
	Offset int
}

// Advance returns the location immediately after r, assuming r is the
// character found at l.
func (l Location) Advance(r rune) Location {
	n := utf8.RuneLen(r)
	if n < 0 {
		n = 1
	}
	return l.AdvanceSized(r, n)
}

// AdvanceSized is like [Location.Advance], but takes the number of bytes r
// was decoded from. This matters for invalid UTF-8, where each bad byte
// decodes to [utf8.RuneError] but only occupies one byte.
func (l Location) AdvanceSized(r rune, size int) Location {
	l.Offset += size
	if r == '\n' {
		l.Line++
		l.Column = 0
	} else {
		l.Column++
	}
	return l
}

// AdvanceString is like [Location.Advance], but for every character in s.
func (l Location) AdvanceString(s string) Location {
	for len(s) > 0 {
		r, n := utf8.DecodeRuneInString(s)
		l = l.AdvanceSized(r, n)
		s = s[n:]
	}
	return l
}

// Equal returns whether two locations refer to the same byte offset.
func (l Location) Equal(that Location) bool {
	return l.Offset == that.Offset
}

// Compare orders locations by their byte offset.
func (l Location) Compare(that Location) int {
	return cmp.Compare(l.Offset, that.Offset)
}

// Before returns whether l comes strictly before that.
func (l Location) Before(that Location) bool {
	return l.Offset < that.Offset
}

// String implements [fmt.Stringer].
//
// Locations are printed one-indexed, the way editors display them.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line+1, l.Column+1)
}
