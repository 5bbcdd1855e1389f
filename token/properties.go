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

type property uint8

const (
	valid property = 1 << iota

	literal
	structural
	comment
	doc
	operator
	punct
	keyword
)

func (k Kind) properties() property {
	if int(k) < len(properties) {
		return properties[k]
	}
	return 0
}

// properties is a table of kind properties, stored as bitsets.
var properties = [...]property{
	EOF:   valid,
	Ident: valid,

	Int:     valid | literal,
	Float:   valid | literal,
	Bool:    valid | literal,
	Char:    valid | literal,
	String:  valid | literal,
	Heredoc: valid | literal,

	StringDelim:        valid | structural,
	HeredocStart:       valid | structural,
	HeredocEnd:         valid | structural,
	InterpolationStart: valid | structural,
	InterpolationEnd:   valid | structural,
	DirectiveStart:     valid | structural,
	DirectiveEnd:       valid | structural,

	LineComment:     valid | comment,
	DocLineComment:  valid | comment | doc,
	BlockComment:    valid | comment,
	DocBlockComment: valid | comment | doc,

	Not:        valid | operator,
	And:        valid | operator,
	Or:         valid | operator,
	BitAnd:     valid | operator,
	BitOr:      valid | operator,
	BitXor:     valid | operator,
	BitNot:     valid | operator,
	ShiftLeft:  valid | operator,
	ShiftRight: valid | operator,
	Mul:        valid | operator,
	Div:        valid | operator,
	Mod:        valid | operator,
	Add:        valid | operator,
	Sub:        valid | operator,
	Eq:         valid | operator,
	NotEq:      valid | operator,
	Less:       valid | operator,
	LessEq:     valid | operator,
	Greater:    valid | operator,
	GreaterEq:  valid | operator,
	Dot:        valid | operator,
	Range:      valid | operator,
	Assign:     valid | operator,
	Arrow:      valid | operator,

	Comma:    valid | punct,
	LBrace:   valid | punct,
	LBracket: valid | punct,
	LParen:   valid | punct,
	RBrace:   valid | punct,
	RBracket: valid | punct,
	RParen:   valid | punct,

	Resource: valid | keyword,
	Data:     valid | keyword,
	Provider: valid | keyword,
	Module:   valid | keyword,
	Let:      valid | keyword,
	If:       valid | keyword,
	Else:     valid | keyword,
	For:      valid | keyword,
	In:       valid | keyword,
	While:    valid | keyword,
	Break:    valid | keyword,
	Continue: valid | keyword,
	Match:    valid | keyword,
	Return:   valid | keyword,
}

var names = [...]string{
	Unknown: "Unknown",
	EOF:     "EOF",
	Ident:   "Ident",

	Int:     "Int",
	Float:   "Float",
	Bool:    "Bool",
	Char:    "Char",
	String:  "String",
	Heredoc: "Heredoc",

	StringDelim:        "StringDelim",
	HeredocStart:       "HeredocStart",
	HeredocEnd:         "HeredocEnd",
	InterpolationStart: "InterpolationStart",
	InterpolationEnd:   "InterpolationEnd",
	DirectiveStart:     "DirectiveStart",
	DirectiveEnd:       "DirectiveEnd",

	LineComment:     "LineComment",
	DocLineComment:  "DocLineComment",
	BlockComment:    "BlockComment",
	DocBlockComment: "DocBlockComment",

	Not:        "Not",
	And:        "And",
	Or:         "Or",
	BitAnd:     "BitAnd",
	BitOr:      "BitOr",
	BitXor:     "BitXor",
	BitNot:     "BitNot",
	ShiftLeft:  "ShiftLeft",
	ShiftRight: "ShiftRight",
	Mul:        "Mul",
	Div:        "Div",
	Mod:        "Mod",
	Add:        "Add",
	Sub:        "Sub",
	Eq:         "Eq",
	NotEq:      "NotEq",
	Less:       "Less",
	LessEq:     "LessEq",
	Greater:    "Greater",
	GreaterEq:  "GreaterEq",
	Dot:        "Dot",
	Range:      "Range",
	Assign:     "Assign",
	Arrow:      "Arrow",

	Comma:    "Comma",
	LBrace:   "LBrace",
	LBracket: "LBracket",
	LParen:   "LParen",
	RBrace:   "RBrace",
	RBracket: "RBracket",
	RParen:   "RParen",

	Resource: "Resource",
	Data:     "Data",
	Provider: "Provider",
	Module:   "Module",
	Let:      "Let",
	If:       "If",
	Else:     "Else",
	For:      "For",
	In:       "In",
	While:    "While",
	Break:    "Break",
	Continue: "Continue",
	Match:    "Match",
	Return:   "Return",
}

var spellings = [...]string{
	Not:        "!",
	And:        "&&",
	Or:         "||",
	BitAnd:     "&",
	BitOr:      "|",
	BitXor:     "^",
	BitNot:     "~",
	ShiftLeft:  "<:",
	ShiftRight: ":>",
	Mul:        "*",
	Div:        "/",
	Mod:        "%",
	Add:        "+",
	Sub:        "-",
	Eq:         "==",
	NotEq:      "!=",
	Less:       "<",
	LessEq:     "<=",
	Greater:    ">",
	GreaterEq:  ">=",
	Dot:        ".",
	Range:      "..",
	Assign:     "=",
	Arrow:      "->",

	Comma:    ",",
	LBrace:   "{",
	LBracket: "[",
	LParen:   "(",
	RBrace:   "}",
	RBracket: "]",
	RParen:   ")",

	Resource: "resource",
	Data:     "data",
	Provider: "provider",
	Module:   "module",
	Let:      "let",
	If:       "if",
	Else:     "else",
	For:      "for",
	In:       "in",
	While:    "while",
	Break:    "break",
	Continue: "continue",
	Match:    "match",
	Return:   "return",
}
