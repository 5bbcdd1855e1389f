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
	"github.com/hexbee-net/etxe/token"
)

// lexGeneral lexes one item of ordinary code. This is also used inside of
// interpolations and directives, where braces are counted so that the
// closing } can be recognized.
func lexGeneral(l *Lexer) Item {
	l.takeWhile(unicode.IsSpace)
	l.accept()

	if l.done() {
		if l.contexts.Depth() > 0 {
			// An interpolation or directive is still open.
			return l.failEOF()
		}
		return l.emit(token.Of(token.EOF))
	}

	switch r := l.next(); {
	case r == '{':
		l.pop()
		if top := l.contexts.top(); top != nil && top.embedded() {
			top.depth++
		}
		return l.emit(token.Of(token.LBrace))

	case r == '}':
		l.pop()
		top := l.contexts.top()
		if top == nil || !top.embedded() {
			return l.emit(token.Of(token.RBrace))
		}
		if top.depth > 0 {
			top.depth--
			return l.emit(token.Of(token.RBrace))
		}
		if l.popContext().Kind == StringDirective {
			return l.emit(token.Of(token.DirectiveEnd))
		}
		return l.emit(token.Of(token.InterpolationEnd))

	case r == ',':
		l.pop()
		return l.emit(token.Of(token.Comma))
	case r == '[':
		l.pop()
		return l.emit(token.Of(token.LBracket))
	case r == '(':
		l.pop()
		return l.emit(token.Of(token.LParen))
	case r == ']':
		l.pop()
		return l.emit(token.Of(token.RBracket))
	case r == ')':
		l.pop()
		return l.emit(token.Of(token.RParen))

	case l.startsWith("//"):
		return lexLineComment(l)
	case l.startsWith("/*"):
		return lexBlockComment(l)

	case r == '"':
		l.pop()
		l.pushContext(Context{Kind: String})
		return l.emit(token.Of(token.StringDelim))

	case l.startsWith("<<"):
		return lexHeredocHeader(l)

	case r == '\'':
		return lexChar(l)

	case isDecimal(r), (r == '-' || r == '+') && isDecimal(l.lookahead(1)):
		return lexNumber(l)

	case token.IsOperatorChar(r):
		return lexOperator(l)

	case unicodex.IsXIDStart(r):
		return lexIdent(l)

	default:
		l.pop()
		return l.fail(UnexpectedChar)
	}
}

// lexLineComment lexes a // or /// comment, up to but not including the
// newline that ends it.
func lexLineComment(l *Lexer) Item {
	l.popString("//")
	kind := token.LineComment
	if l.next() == '/' && l.lookahead(1) != '/' {
		l.pop()
		kind = token.DocLineComment
	}

	body := l.takeWhile(func(r rune) bool { return r != '\n' })
	return l.emit(token.NewComment(kind, strings.TrimSpace(body)))
}

// lexBlockComment lexes a /* */ or /** */ comment. These do not nest: the
// comment ends at the first */.
func lexBlockComment(l *Lexer) Item {
	l.popString("/*")
	kind := token.BlockComment
	if l.next() == '*' && l.lookahead(1) != '/' {
		l.pop()
		kind = token.DocBlockComment
	}

	end := strings.Index(l.rest(), "*/")
	if end == -1 {
		l.popString(l.rest())
		return l.fail(UnexpectedEOF)
	}

	body := strings.TrimSpace(l.rest()[:end])
	l.popString(l.rest()[:end+len("*/")])
	if body == "" {
		kind = token.BlockComment
	}
	return l.emit(token.NewComment(kind, body))
}

// lexOperator lexes the longest operator at the cursor.
func lexOperator(l *Lexer) Item {
	run := l.takeWhile(token.IsOperatorChar)
	kind, n := token.LongestOperator(run)

	// Give back whatever the operator did not use.
	l.reset()
	if n == 0 {
		l.pop()
		return l.fail(UnexpectedChar)
	}
	l.popString(run[:n])
	return l.emit(token.Of(kind))
}

// lexIdent lexes an identifier or a keyword.
//
// Identifiers may contain dashes, so long as each one is followed by another
// identifier character: foo-bar is one identifier, but foo- is an identifier
// followed by an operator.
func lexIdent(l *Lexer) Item {
	l.pop()
	for {
		r := l.next()
		if unicodex.IsXIDContinue(r) {
			l.pop()
			continue
		}
		if r == '-' && unicodex.IsXIDContinue(l.lookahead(1)) {
			l.pop()
			continue
		}
		break
	}

	text := l.pending()
	if kw, ok := token.Keyword(text); ok {
		return l.emit(token.Of(kw))
	}
	switch text {
	case "true":
		return l.emit(token.NewBool(true))
	case "false":
		return l.emit(token.NewBool(false))
	}
	return l.emit(token.NewIdent(text))
}

func isDecimal(r rune) bool {
	return r >= '0' && r <= '9'
}
