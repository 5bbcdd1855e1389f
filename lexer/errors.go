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
	"cmp"
	"fmt"

	"github.com/hexbee-net/etxe/source"
)

const (
	UnexpectedChar ErrorKind = iota + 1
	UnexpectedEOF
	UnterminatedStringLiteral

	UnexpectedEscapeCode
	MalformedUnicodeEscape
	EmptyUnicodeEscape
	InvalidUnicodeEscape

	EmptyCharLiteral
	UnterminatedCharLiteral

	MissingHeredocDelimiter
	UnterminatedHeredocDelimiter

	NonParseableInt
	NonParseableFloat
	LiteralIncomplete
	HexLiteralWrongPrefix
	BinLiteralWrongPrefix
	OctLiteralWrongPrefix
	HexLiteralOverflow
	HexLiteralUnderflow

	errorKindCount
)

// ErrorKind is a kind of lexical error.
//
// The zero ErrorKind means "no error". Every other value implements error.
type ErrorKind byte

// Diagnostic is an error together with the span of text it applies to.
type Diagnostic = source.Positioned[ErrorKind]

// Error implements [error].
func (e ErrorKind) Error() string {
	if int(e) < len(errorInfo) && errorInfo[e].message != "" {
		return errorInfo[e].message
	}
	return fmt.Sprintf("lexer.ErrorKind(%d)", int(e))
}

// String returns the name of this error kind.
func (e ErrorKind) String() string {
	if int(e) < len(errorInfo) && errorInfo[e].name != "" {
		return errorInfo[e].name
	}
	return fmt.Sprintf("lexer.ErrorKind(%d)", int(e))
}

// Help returns a suggestion for fixing this error, if there is one.
func (e ErrorKind) Help() string {
	if int(e) < len(errorInfo) {
		return errorInfo[e].help
	}
	return ""
}

// Equal implements [source.Value].
func (e ErrorKind) Equal(that ErrorKind) bool {
	return e == that
}

// Compare implements [source.Value].
func (e ErrorKind) Compare(that ErrorKind) int {
	return cmp.Compare(e, that)
}

var errorInfo = [...]struct {
	name, message, help string
}{
	UnexpectedChar: {
		name:    "UnexpectedChar",
		message: "unexpected character",
	},
	UnexpectedEOF: {
		name:    "UnexpectedEOF",
		message: "unexpected end of input",
	},
	UnterminatedStringLiteral: {
		name:    "UnterminatedStringLiteral",
		message: "unterminated string literal",
		help:    "strings cannot span lines; use a heredoc for multi-line text",
	},

	UnexpectedEscapeCode: {
		name:    "UnexpectedEscapeCode",
		message: "invalid escape sequence",
		help:    `the valid escapes are \n, \r, \t, \\, the closing quote, and \u{...}`,
	},
	MalformedUnicodeEscape: {
		name:    "MalformedUnicodeEscape",
		message: "malformed unicode escape",
		help:    `unicode escapes are written as \u{HEX}`,
	},
	EmptyUnicodeEscape: {
		name:    "EmptyUnicodeEscape",
		message: "empty unicode escape",
	},
	InvalidUnicodeEscape: {
		name:    "InvalidUnicodeEscape",
		message: "unicode escape is not a valid scalar value",
	},

	EmptyCharLiteral: {
		name:    "EmptyCharLiteral",
		message: "empty character literal",
	},
	UnterminatedCharLiteral: {
		name:    "UnterminatedCharLiteral",
		message: "unterminated character literal",
		help:    "character literals contain exactly one character; use \" for strings",
	},

	MissingHeredocDelimiter: {
		name:    "MissingHeredocDelimiter",
		message: "missing heredoc delimiter",
		help:    "heredocs start with a delimiter, such as <<EOF",
	},
	UnterminatedHeredocDelimiter: {
		name:    "UnterminatedHeredocDelimiter",
		message: "unterminated heredoc delimiter",
		help:    "a quoted heredoc delimiter must be closed by the same quote, at the end of the line",
	},

	NonParseableInt: {
		name:    "NonParseableInt",
		message: "integer literal out of range",
	},
	NonParseableFloat: {
		name:    "NonParseableFloat",
		message: "invalid floating point literal",
	},
	LiteralIncomplete: {
		name:    "LiteralIncomplete",
		message: "integer literal has no digits",
	},
	HexLiteralWrongPrefix: {
		name:    "HexLiteralWrongPrefix",
		message: "hexadecimal literal must start with 0x or -0x",
	},
	BinLiteralWrongPrefix: {
		name:    "BinLiteralWrongPrefix",
		message: "binary literal must start with 0b or -0b",
	},
	OctLiteralWrongPrefix: {
		name:    "OctLiteralWrongPrefix",
		message: "octal literal must start with 0o or -0o",
	},
	HexLiteralOverflow: {
		name:    "HexLiteralOverflow",
		message: "integer literal overflows a 64-bit integer",
	},
	HexLiteralUnderflow: {
		name:    "HexLiteralUnderflow",
		message: "integer literal underflows a 64-bit integer",
	},
}
