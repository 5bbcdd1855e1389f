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

package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/hexbee-net/etxe/source"
)

// cursor is a two-speed cursor over the input text.
//
// The commit location marks the end of the last item handed out. The peek
// location runs ahead of it while an item is being scanned, and can be
// rewound to any earlier point, down to the commit location, without
// rescanning.
type cursor struct {
	text   string
	commit source.Location
	peek   source.Location
}

// rest returns the text after the peek location.
func (c *cursor) rest() string {
	return c.text[c.peek.Offset:]
}

// done returns whether the peek location has reached the end of the text.
func (c *cursor) done() bool {
	return c.peek.Offset >= len(c.text)
}

// lookahead returns the nth rune after the peek location, without consuming
// anything; lookahead(0) is the next rune.
//
// Returns -1 past the end of the text.
func (c *cursor) lookahead(n int) rune {
	rest := c.rest()
	for ; rest != ""; n-- {
		r, size := utf8.DecodeRuneInString(rest)
		if n == 0 {
			return r
		}
		rest = rest[size:]
	}
	return -1
}

// next returns the next rune without consuming it.
//
// Returns -1 if c.done().
func (c *cursor) next() rune {
	return c.lookahead(0)
}

// pop consumes the next rune.
//
// Returns -1 if c.done().
func (c *cursor) pop() rune {
	if c.done() {
		return -1
	}
	r, size := utf8.DecodeRuneInString(c.rest())
	c.peek = c.peek.AdvanceSized(r, size)
	return r
}

// popString consumes s, which must be a prefix of c.rest().
func (c *cursor) popString(s string) {
	c.peek = c.peek.AdvanceString(s)
}

// startsWith returns whether the text after the peek location starts with
// prefix.
func (c *cursor) startsWith(prefix string) bool {
	return strings.HasPrefix(c.rest(), prefix)
}

// takeWhile consumes runes while they match the given function. Returns the
// consumed text.
func (c *cursor) takeWhile(f func(rune) bool) string {
	start := c.peek.Offset
	for !c.done() {
		if !f(c.next()) {
			break
		}
		c.pop()
	}
	return c.text[start:c.peek.Offset]
}

// mark returns the peek location, for a later call to rewind.
func (c *cursor) mark() source.Location {
	return c.peek
}

// rewind moves the peek location back to a previous mark.
func (c *cursor) rewind(mark source.Location) {
	if mark.Before(c.commit) {
		panic("lexer: rewound past the commit location; this is a bug in etxe")
	}
	c.peek = mark
}

// reset moves the peek location back to the commit location.
func (c *cursor) reset() {
	c.peek = c.commit
}

// pending returns the text between the commit and the peek locations.
func (c *cursor) pending() string {
	return source.Slice(c.text, c.commit, c.peek)
}

// since returns the text between a mark and the peek location.
func (c *cursor) since(mark source.Location) string {
	return source.Slice(c.text, mark, c.peek)
}

// accept commits everything up to the peek location, returning the span of
// the newly committed text.
func (c *cursor) accept() source.Span {
	span := source.NewSpan(c.commit, c.peek)
	c.commit = c.peek
	return span
}
