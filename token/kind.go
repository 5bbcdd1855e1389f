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
	"fmt"
	"iter"
)

const (
	Unknown Kind = iota // The zero Kind; never produced by the lexer.
	EOF                 // End of input.
	Ident               // An identifier.

	Int     // A 64-bit signed integer literal.
	Float   // A 64-bit floating point literal.
	Bool    // true or false.
	Char    // A character literal.
	String  // A run of literal text inside a quoted string.
	Heredoc // A run of heredoc body lines.

	StringDelim        // The " delimiting a quoted string.
	HeredocStart       // A heredoc header, such as <<-EOF.
	HeredocEnd         // The delimiter line closing a heredoc.
	InterpolationStart // ${
	InterpolationEnd   // The } closing an interpolation.
	DirectiveStart     // %{
	DirectiveEnd       // The } closing a directive.

	LineComment     // // comment
	DocLineComment  // /// comment
	BlockComment    // /* comment */
	DocBlockComment // /** comment */

	Not        // !
	And        // &&
	Or         // ||
	BitAnd     // &
	BitOr      // |
	BitXor     // ^
	BitNot     // ~
	ShiftLeft  // <:
	ShiftRight // :>
	Mul        // *
	Div        // /
	Mod        // %
	Add        // +
	Sub        // -
	Eq         // ==
	NotEq      // !=
	Less       // <
	LessEq     // <=
	Greater    // >
	GreaterEq  // >=
	Dot        // .
	Range      // ..
	Assign     // =
	Arrow      // ->

	Comma    // ,
	LBrace   // {
	LBracket // [
	LParen   // (
	RBrace   // }
	RBracket // ]
	RParen   // )

	Resource
	Data
	Provider
	Module
	Let
	If
	Else
	For
	In
	While
	Break
	Continue
	Match
	Return

	kindCount // Total number of kinds.
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// All returns an iterator over every valid [Kind].
func All() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := EOF; k < kindCount; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// IsValid returns whether this is a valid kind (not including [Unknown]).
func (k Kind) IsValid() bool {
	return k.properties()&valid != 0
}

// IsLiteral returns whether tokens of this kind carry a literal value.
func (k Kind) IsLiteral() bool {
	return k.properties()&literal != 0
}

// IsStructural returns whether this kind marks the boundary of a string,
// heredoc, interpolation, or directive.
func (k Kind) IsStructural() bool {
	return k.properties()&structural != 0
}

// IsComment returns whether this is one of the comment kinds.
func (k Kind) IsComment() bool {
	return k.properties()&comment != 0
}

// IsDoc returns whether this is a doc comment kind.
func (k Kind) IsDoc() bool {
	return k.properties()&doc != 0
}

// IsOperator returns whether this is an operator.
func (k Kind) IsOperator() bool {
	return k.properties()&operator != 0
}

// IsPunct returns whether this is punctuation.
func (k Kind) IsPunct() bool {
	return k.properties()&punct != 0
}

// IsKeyword returns whether this is a reserved word.
func (k Kind) IsKeyword() bool {
	return k.properties()&keyword != 0
}

// Text returns the fixed spelling of this kind, if it has one. Operators,
// punctuation and keywords have one; other kinds return "".
func (k Kind) Text() string {
	if int(k) < len(spellings) {
		return spellings[k]
	}
	return ""
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return fmt.Sprintf("token.Kind(%d)", int(k))
}
