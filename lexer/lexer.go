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
	"iter"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/hexbee-net/etxe/source"
	"github.com/hexbee-net/etxe/token"
)

// MaxFileSize is the maximum input size the lexer supports.
const MaxFileSize int = math.MaxInt32 // 2GB

// Lexer is a pull-based lexer over a single input text.
//
// A Lexer is forward-only and must not be used from more than one goroutine.
type Lexer struct {
	cursor
	contexts    contextStack
	diagnostics []Diagnostic

	logger logrus.FieldLogger
	debug  bool
	owner  int64
}

// Option configures a [Lexer].
type Option func(*Lexer)

// WithLogger configures the logger used for debug tracing.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithDebug enables debug tracing of every item and context change, along
// with a check that the lexer is only pulled from one goroutine.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// New creates a new lexer over text.
//
// Token payloads share memory with text.
func New(text string, opts ...Option) *Lexer {
	if len(text) > MaxFileSize {
		panic("lexer: input exceeds MaxFileSize")
	}

	l := &Lexer{
		cursor: cursor{text: text},
		logger: logrus.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lex runs a new [Lexer] over text to completion, returning every item up to
// and including the end-of-input item, and the recoverable diagnostics.
func Lex(text string, opts ...Option) ([]Item, []Diagnostic) {
	l := New(text, opts...)
	var items []Item
	for item := range l.All() {
		items = append(items, item)
	}
	return items, l.Diagnostics()
}

// Text returns the text this lexer is scanning.
func (l *Lexer) Text() string {
	return l.text
}

// Context returns the current scanning context.
func (l *Lexer) Context() Context {
	return l.contexts.Current()
}

// Diagnostics returns the recoverable errors encountered so far, in the order
// they were found.
func (l *Lexer) Diagnostics() []Diagnostic {
	return l.diagnostics
}

// All returns an iterator over the remaining items, which ends after
// yielding the end-of-input item.
func (l *Lexer) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for {
			item := l.NextItem()
			if !yield(item) || item.IsEOF() {
				return
			}
		}
	}
}

// NextItem scans and returns the next item.
//
// Once the end-of-input item has been returned, every later call returns it
// again.
func (l *Lexer) NextItem() Item {
	if l.debug {
		l.checkOwner()
	}

	mp := l.mustProgress()
	item := l.dispatch()
	mp.check(item)

	if l.debug {
		l.trace(item)
	}
	return item
}

// dispatch lexes one item in the current context.
func (l *Lexer) dispatch() Item {
	switch ctx := l.contexts.Current(); ctx.Kind {
	case General, StringInterpolation, StringDirective:
		return lexGeneral(l)
	case String:
		return lexString(l)
	case HeredocString:
		return lexHeredocBody(l, ctx)
	case HeredocStringEnd:
		return lexHeredocEnd(l, ctx)
	default:
		panic("lexer: unknown context " + ctx.String())
	}
}

// pushContext pushes a new context.
func (l *Lexer) pushContext(ctx Context) {
	l.contexts.Push(ctx)
	if l.debug {
		l.logger.WithField("context", ctx).Debug("lexer: push")
	}
}

// popContext pops the current context.
func (l *Lexer) popContext() Context {
	ctx := l.contexts.Pop()
	if l.debug {
		l.logger.WithField("context", ctx).Debug("lexer: pop")
	}
	return ctx
}

// emit commits the pending text as a token.
func (l *Lexer) emit(tok token.Token) Item {
	return Item{Span: l.accept(), Token: tok}
}

// fail commits the pending text as a fatal error item.
func (l *Lexer) fail(kind ErrorKind) Item {
	return Item{Span: l.accept(), Err: kind}
}

// failEOF commits the pending text as a fatal [UnexpectedEOF], and unwinds
// the context stack, since nothing more can close the open contexts.
func (l *Lexer) failEOF() Item {
	l.contexts.Reset()
	if l.debug {
		l.logger.Debug("lexer: unwound context stack at end of input")
	}
	return l.fail(UnexpectedEOF)
}

// diagnose records a recoverable error. Scanning continues afterwards.
func (l *Lexer) diagnose(kind ErrorKind, span source.Span) {
	l.diagnostics = append(l.diagnostics, source.At(span, kind))
}

// diagnoseSince records a recoverable error spanning from mark to the peek
// location.
func (l *Lexer) diagnoseSince(kind ErrorKind, mark source.Location) {
	l.diagnose(kind, source.NewSpan(mark, l.peek))
}
