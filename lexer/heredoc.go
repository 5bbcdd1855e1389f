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
	"unicode"

	"github.com/hexbee-net/etxe/internal/ext/unicodex"
	"github.com/hexbee-net/etxe/source"
	"github.com/hexbee-net/etxe/token"
)

// lexHeredocHeader lexes a heredoc header such as <<-"EOF", along with the
// newline that ends it.
//
// On failure nothing is pushed, so lexing resumes in the current context.
func lexHeredocHeader(l *Lexer) Item {
	l.popString("<<")

	ctx := Context{Kind: HeredocString}
	if l.next() == '-' {
		l.pop()
		ctx.SkipLeadingTabs = true
	}
	l.takeWhile(unicodex.IsHorizontalSpace)

	var quote rune
	if r := l.next(); r == '"' || r == '\'' {
		quote = l.pop()
		ctx.QuotedDelimiter = true
	}

	start := l.mark()
	delim := l.takeWhile(func(r rune) bool {
		return r != '\n' && r != quote
	})
	if quote == 0 {
		// Trailing white space is not part of the header.
		delim = strings.TrimRightFunc(delim, unicode.IsSpace)
		l.rewind(start.AdvanceString(delim))
	}
	if delim == "" {
		return l.fail(MissingHeredocDelimiter)
	}

	if quote != 0 {
		if l.next() != quote {
			return l.fail(UnterminatedHeredocDelimiter)
		}
		l.pop()

		// Only white space may follow the closing quote.
		mark := l.mark()
		l.takeWhile(unicodex.IsHorizontalSpace)
		junk := !l.done() && l.next() != '\n'
		l.rewind(mark)
		if junk {
			return l.fail(UnterminatedHeredocDelimiter)
		}
	}
	ctx.Delimiter = delim

	item := l.emit(token.Of(token.HeredocStart))

	// The rest of the header line belongs to neither the header nor the body.
	l.takeWhile(unicodex.IsHorizontalSpace)
	if l.next() == '\n' {
		l.pop()
	}
	l.accept()

	if ctx.SkipLeadingTabs {
		ctx.indent = bodyIndent(l.rest(), delim)
	}
	l.pushContext(ctx)
	return item
}

// lexHeredocBody lexes a chunk of a heredoc body: every line up to the
// closing delimiter line, or up to the next interpolation or directive if
// the delimiter is unquoted.
func lexHeredocBody(l *Lexer, ctx Context) Item {
	if !ctx.QuotedDelimiter && opensEmbed(l) {
		return lexEmbedStart(l)
	}

	// A chunk that resumes after an interpolation starts partway through a
	// line, so its first line is never the delimiter line.
	partial := l.peek.Column != 0

	var lines []string
	lineStart := l.mark()
	for {
		if l.peek.Column == 0 {
			if end, ok := lexHeredocDelimiter(l, ctx.Delimiter); ok {
				stripIndent(lines, partial, ctx.indent)

				item := Item{Span: source.NewSpan(l.commit, lineStart), Token: token.NewHeredoc(lines...)}
				l.commit = l.peek
				l.pushContext(Context{Kind: HeredocStringEnd, End: end})
				return item
			}
		}

		if l.done() {
			return l.failEOF()
		}

		switch {
		case !ctx.QuotedDelimiter && opensEmbed(l):
			if line := l.since(lineStart); line != "" {
				lines = append(lines, line)
			}
			stripIndent(lines, partial, ctx.indent)
			return l.emit(token.NewHeredoc(lines...))

		case l.startsWith("$$"), l.startsWith("%%"):
			l.pop()
			l.pop()

		default:
			if l.pop() == '\n' {
				lines = append(lines, l.since(lineStart))
				lineStart = l.mark()
			}
		}
	}
}

// lexHeredocDelimiter checks whether the line at the cursor is the closing
// delimiter line. If it is, the whole line, minus its newline, is consumed
// and the span of the delimiter itself is returned.
func lexHeredocDelimiter(l *Lexer, delim string) (source.Span, bool) {
	mark := l.mark()
	line := l.takeWhile(func(r rune) bool { return r != '\n' })
	if strings.TrimSpace(line) != delim {
		l.rewind(mark)
		return source.Span{}, false
	}

	indent := line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
	start := mark.AdvanceString(indent)
	return source.NewSpan(start, start.AdvanceString(delim)), true
}

// lexHeredocEnd emits the closing delimiter of a heredoc, whose span was
// recorded when the body ended, and leaves the heredoc.
func lexHeredocEnd(l *Lexer, ctx Context) Item {
	l.popContext() // HeredocStringEnd.
	l.popContext() // HeredocString.
	return Item{Span: ctx.End, Token: token.Of(token.HeredocEnd)}
}

// bodyIndent returns the least indentation among the non-blank lines of the
// heredoc body at the start of text, which ends at the delimiter line.
//
// This looks at the whole body up front, since the body may be split into
// several chunks by interpolations.
func bodyIndent(text, delim string) int {
	indent := -1
	for line := range strings.Lines(text) {
		if strings.TrimSpace(line) == delim {
			break
		}
		if isBlankLine(line) {
			continue
		}
		if n := indentOf(line); indent == -1 || n < indent {
			indent = n
		}
	}
	return max(indent, 0)
}

// stripIndent removes up to indent leading white space characters from every
// non-blank line. If partial is set, the first line does not start at the
// beginning of a line, so it is left alone.
func stripIndent(lines []string, partial bool, indent int) {
	if indent == 0 {
		return
	}
	if partial && len(lines) > 0 {
		lines = lines[1:]
	}
	for i, line := range lines {
		if !isBlankLine(line) {
			lines[i] = line[min(indent, indentOf(line)):]
		}
	}
}

// indentOf returns the number of leading spaces and tabs in line.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// isBlankLine returns whether line has no content besides its newline.
func isBlankLine(line string) bool {
	return strings.TrimRight(line, "\r\n") == ""
}
