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
	"fmt"

	"github.com/hexbee-net/etxe/source"
)

const (
	General             ContextKind = iota // Ordinary code.
	String                                 // Inside a "quoted" string.
	HeredocString                          // Inside a heredoc body.
	HeredocStringEnd                       // A heredoc body ended; its delimiter is pending.
	StringInterpolation                    // Inside ${...}.
	StringDirective                        // Inside %{...}.
)

// ContextKind is a scanning mode of the [Lexer].
type ContextKind byte

// String implements [fmt.Stringer].
func (k ContextKind) String() string {
	switch k {
	case General:
		return "General"
	case String:
		return "String"
	case HeredocString:
		return "HeredocString"
	case HeredocStringEnd:
		return "HeredocStringEnd"
	case StringInterpolation:
		return "StringInterpolation"
	case StringDirective:
		return "StringDirective"
	default:
		return fmt.Sprintf("lexer.ContextKind(%d)", int(k))
	}
}

// Context is a scanning mode together with its parameters.
type Context struct {
	Kind ContextKind

	// Parameters of a HeredocString context.
	Delimiter       string
	SkipLeadingTabs bool
	QuotedDelimiter bool

	// The span of the closing delimiter, for a HeredocStringEnd context.
	End source.Span

	// Number of unclosed { seen inside a StringInterpolation or
	// StringDirective context.
	depth int

	// Indentation to strip from each line of a HeredocString with
	// SkipLeadingTabs set.
	indent int
}

// String implements [fmt.Stringer].
func (c Context) String() string {
	switch c.Kind {
	case HeredocString:
		return fmt.Sprintf("%v(%q, skip: %v, quoted: %v)", c.Kind, c.Delimiter, c.SkipLeadingTabs, c.QuotedDelimiter)
	case HeredocStringEnd:
		return fmt.Sprintf("%v(%v)", c.Kind, c.End)
	default:
		return c.Kind.String()
	}
}

// embedded returns whether this context lexes an embedded expression.
func (c Context) embedded() bool {
	return c.Kind == StringInterpolation || c.Kind == StringDirective
}

// contextStack is the pushdown stack of scanning modes.
//
// The zero value is an empty stack, whose current context is General.
type contextStack struct {
	stack []Context
}

// Current returns the context at the top of the stack.
func (s *contextStack) Current() Context {
	if len(s.stack) == 0 {
		return Context{Kind: General}
	}
	return s.stack[len(s.stack)-1]
}

// top returns a pointer to the context at the top of the stack, or nil if
// the stack is empty.
func (s *contextStack) top() *Context {
	if len(s.stack) == 0 {
		return nil
	}
	return &s.stack[len(s.stack)-1]
}

// Push makes c the current context.
func (s *contextStack) Push(c Context) {
	s.stack = append(s.stack, c)
}

// Pop removes the current context and returns it.
//
// Panics if the stack is empty: every Pop must be matched by an earlier Push.
func (s *contextStack) Pop() Context {
	if len(s.stack) == 0 {
		panic("lexer: popped an empty context stack; this is a bug in etxe")
	}
	c := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return c
}

// Depth returns the number of contexts on the stack.
func (s *contextStack) Depth() int {
	return len(s.stack)
}

// Reset unwinds the stack back to General.
func (s *contextStack) Reset() {
	s.stack = s.stack[:0]
}
