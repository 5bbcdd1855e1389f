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

import "strings"

// OperatorChars is every character that may appear in an operator.
const OperatorChars = "!%&*+-./:<=>|~^"

// maxOperatorLen is the length of the longest operator spelling.
const maxOperatorLen = 2

var (
	keywords  = make(map[string]Kind)
	operators = make(map[string]Kind)
)

func init() {
	for k := range All() {
		switch {
		case k.IsKeyword():
			keywords[k.Text()] = k
		case k.IsOperator():
			operators[k.Text()] = k
		}
	}
}

// Keyword looks up the reserved word spelled exactly as text.
func Keyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// Operator looks up the operator spelled exactly as text.
func Operator(text string) (Kind, bool) {
	k, ok := operators[text]
	return k, ok
}

// LongestOperator returns the longest operator that is a prefix of text,
// along with its length in bytes.
//
// Returns [Unknown] and zero if text does not start with an operator.
func LongestOperator(text string) (Kind, int) {
	for n := min(maxOperatorLen, len(text)); n > 0; n-- {
		if k, ok := operators[text[:n]]; ok {
			return k, n
		}
	}
	return Unknown, 0
}

// IsOperatorChar returns whether r may appear in an operator.
func IsOperatorChar(r rune) bool {
	return r < 0x80 && strings.ContainsRune(OperatorChars, r)
}
