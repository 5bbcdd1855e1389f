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

package unicodex

// Digit parses an ASCII digit in the given base, up to base 16.
func Digit(d rune, base int) (value int, ok bool) {
	switch {
	case d >= '0' && d <= '9':
		value = int(d - '0')
	case d >= 'a' && d <= 'f':
		value = int(d-'a') + 10
	case d >= 'A' && d <= 'F':
		value = int(d-'A') + 10
	default:
		return 0, false
	}

	if value >= base {
		return 0, false
	}
	return value, true
}

// InDigitRun returns whether d may appear in a run of digits in base, which
// includes the '_' separator.
func InDigitRun(d rune, base int) bool {
	_, ok := Digit(d, base)
	return ok || d == '_'
}

// IsHorizontalSpace returns whether r is white space other than a line break.
func IsHorizontalSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
