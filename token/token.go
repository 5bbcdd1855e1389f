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

package token

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Token is a single lexical element.
//
// Which of the payload fields is meaningful depends on Kind:
//
//   - Ident, String and the comment kinds use Text.
//   - Int uses Int, Float uses Float, Bool uses Bool and Char uses Char.
//   - Heredoc uses Lines.
//
// Every other kind carries no payload. String payloads are raw source text:
// escapes are validated by the lexer but not decoded.
type Token struct {
	Kind Kind

	Text  string
	Int   int64
	Float float64
	Bool  bool
	Char  rune
	Lines []string
}

// Of returns a payload-less token of the given kind.
func Of(kind Kind) Token {
	return Token{Kind: kind}
}

// NewIdent returns a new identifier token.
func NewIdent(name string) Token {
	return Token{Kind: Ident, Text: name}
}

// NewInt returns a new integer literal token.
func NewInt(v int64) Token {
	return Token{Kind: Int, Int: v}
}

// NewFloat returns a new floating point literal token.
func NewFloat(v float64) Token {
	return Token{Kind: Float, Float: v}
}

// NewBool returns a new boolean literal token.
func NewBool(v bool) Token {
	return Token{Kind: Bool, Bool: v}
}

// NewChar returns a new character literal token.
func NewChar(v rune) Token {
	return Token{Kind: Char, Char: v}
}

// NewString returns a new string literal token with the given raw text.
func NewString(raw string) Token {
	return Token{Kind: String, Text: raw}
}

// NewHeredoc returns a new heredoc body token.
func NewHeredoc(lines ...string) Token {
	return Token{Kind: Heredoc, Lines: lines}
}

// NewComment returns a new comment token. kind must be a comment kind.
func NewComment(kind Kind, text string) Token {
	if !kind.IsComment() {
		panic(fmt.Sprintf("token: %v is not a comment kind", kind))
	}
	return Token{Kind: kind, Text: text}
}

// Equal returns whether two tokens have the same kind and payload.
func (t Token) Equal(that Token) bool {
	return t.Compare(that) == 0
}

// Compare orders tokens by kind, and then by payload.
func (t Token) Compare(that Token) int {
	if c := cmp.Compare(t.Kind, that.Kind); c != 0 {
		return c
	}

	switch t.Kind {
	case Int:
		return cmp.Compare(t.Int, that.Int)
	case Float:
		return cmp.Compare(t.Float, that.Float)
	case Bool:
		switch {
		case t.Bool == that.Bool:
			return 0
		case that.Bool:
			return -1
		default:
			return 1
		}
	case Char:
		return cmp.Compare(t.Char, that.Char)
	case Heredoc:
		return slices.Compare(t.Lines, that.Lines)
	case Ident, String, LineComment, DocLineComment, BlockComment, DocBlockComment:
		return strings.Compare(t.Text, that.Text)
	default:
		return 0
	}
}

// Value returns a printable rendition of this token's payload, or its fixed
// spelling if it has none.
func (t Token) Value() string {
	switch t.Kind {
	case Int:
		return strconv.FormatInt(t.Int, 10)
	case Float:
		return strconv.FormatFloat(t.Float, 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(t.Bool)
	case Char:
		return strconv.QuoteRune(t.Char)
	case Heredoc:
		quoted := make([]string, len(t.Lines))
		for i, line := range t.Lines {
			quoted[i] = strconv.Quote(line)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case Ident:
		return t.Text
	case String, LineComment, DocLineComment, BlockComment, DocBlockComment:
		return strconv.Quote(t.Text)
	default:
		return t.Kind.Text()
	}
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	v := t.Value()
	if v == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%v(%s)", t.Kind, v)
}
