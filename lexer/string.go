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
	"strconv"
	"unicode/utf8"

	"github.com/hexbee-net/etxe/internal/ext/unicodex"
	"github.com/hexbee-net/etxe/token"
)

// lexString lexes one item inside of a quoted string: the closing quote, the
// opening of an interpolation or directive, or a run of literal text.
func lexString(l *Lexer) Item {
	if l.done() {
		return l.failEOF()
	}

	switch {
	case l.next() == '"':
		l.pop()
		l.popContext()
		return l.emit(token.Of(token.StringDelim))
	case opensEmbed(l):
		return lexEmbedStart(l)
	}

	for {
		if l.done() {
			return l.failEOF()
		}

		switch r := l.next(); {
		case r == '"', opensEmbed(l):
			return l.emit(token.NewString(l.pending()))

		case l.startsWith("$$"), l.startsWith("%%"):
			l.pop()
			l.pop()

		case r == '\\':
			mark := l.mark()
			if _, err := lexEscape(l, '"'); err != 0 {
				if err == UnexpectedEOF {
					return l.failEOF()
				}
				l.diagnoseSince(err, mark)
			}

		case r == '\n':
			// The newline is left for the enclosing context to skip.
			l.popContext()
			return l.fail(UnterminatedStringLiteral)

		default:
			l.pop()
		}
	}
}

// opensEmbed returns whether the cursor is at an unescaped ${ or %{.
func opensEmbed(l *Lexer) bool {
	return l.startsWith("${") || l.startsWith("%{")
}

// lexEmbedStart lexes the ${ or %{ that opens an interpolation or directive.
func lexEmbedStart(l *Lexer) Item {
	if l.pop() == '%' {
		l.pop()
		l.pushContext(Context{Kind: StringDirective})
		return l.emit(token.Of(token.DirectiveStart))
	}
	l.pop()
	l.pushContext(Context{Kind: StringInterpolation})
	return l.emit(token.Of(token.InterpolationStart))
}

// lexChar lexes a character literal. All errors in a character literal are
// recoverable: a Char token is always produced.
func lexChar(l *Lexer) Item {
	l.pop() // Opening quote.
	start := l.commit

	var value rune
	switch r := l.next(); {
	case r == -1:
		l.diagnoseSince(UnexpectedEOF, start)
		return l.emit(token.NewChar(0))

	case r == '\'':
		l.pop()
		l.diagnoseSince(EmptyCharLiteral, start)
		return l.emit(token.NewChar(0))

	case r == '\\':
		mark := l.mark()
		v, err := lexEscape(l, '\'')
		if err == UnexpectedEOF {
			l.diagnoseSince(UnexpectedEOF, start)
			return l.emit(token.NewChar(0))
		}
		if err != 0 {
			l.diagnoseSince(err, mark)
			v = 0
		}
		value = v

	default:
		value = l.pop()
	}

	switch l.next() {
	case '\'':
		l.pop()
	case -1:
		l.diagnoseSince(UnexpectedEOF, start)
		return l.emit(token.NewChar(0))
	default:
		l.diagnoseSince(UnterminatedCharLiteral, start)
	}
	return l.emit(token.NewChar(value))
}

// lexEscape consumes an escape sequence starting at the \ at the cursor, and
// returns the character it denotes. delim is the quote that encloses the
// escape, which may be escaped to itself.
func lexEscape(l *Lexer, delim rune) (rune, ErrorKind) {
	l.pop() // The backslash.

	switch r := l.pop(); r {
	case -1:
		return 0, UnexpectedEOF
	case 'n':
		return '\n', 0
	case 'r':
		return '\r', 0
	case 't':
		return '\t', 0
	case '\\':
		return '\\', 0
	case delim:
		return delim, 0
	case 'u':
		return lexUnicodeEscape(l)
	default:
		return 0, UnexpectedEscapeCode
	}
}

// lexUnicodeEscape lexes the {HEX} part of a \u{HEX} escape.
func lexUnicodeEscape(l *Lexer) (rune, ErrorKind) {
	if l.next() != '{' {
		return 0, MalformedUnicodeEscape
	}
	l.pop()

	digits := l.takeWhile(func(r rune) bool {
		_, ok := unicodex.Digit(r, 16)
		return ok
	})
	if l.next() != '}' {
		return 0, MalformedUnicodeEscape
	}
	l.pop()

	if digits == "" {
		return 0, EmptyUnicodeEscape
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, InvalidUnicodeEscape
	}
	return rune(v), 0
}
