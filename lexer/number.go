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
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/hexbee-net/etxe/internal/ext/unicodex"
	"github.com/hexbee-net/etxe/source"
	"github.com/hexbee-net/etxe/token"
)

// radix describes a radix-prefixed integer literal.
type radix struct {
	base        int
	wrongPrefix ErrorKind
}

var radixes = map[rune]radix{
	'x': {16, HexLiteralWrongPrefix},
	'b': {2, BinLiteralWrongPrefix},
	'o': {8, OctLiteralWrongPrefix},
}

// lexNumber lexes a numeric literal, with an optional leading sign.
//
// Every error in a number is recoverable: an Int or Float token is always
// produced, holding zero if the value could not be computed.
func lexNumber(l *Lexer) Item {
	if r := l.next(); r == '-' || r == '+' {
		l.pop()
	}
	l.takeWhile(isDecimalRun)

	r := l.next()
	switch {
	case r == '.' && isDecimal(l.lookahead(1)):
		l.pop()
		l.takeWhile(isDecimalRun)
		if startsExponent(l) {
			lexExponent(l)
		}
		return lexFloat(l)

	case startsExponent(l):
		lexExponent(l)
		return lexFloat(l)
	}

	if rdx, ok := radixes[r]; ok {
		return lexRadix(l, rdx)
	}

	digits := strings.ReplaceAll(l.pending(), "_", "")
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		item := l.emit(token.NewInt(0))
		l.diagnose(NonParseableInt, item.Span)
		return item
	}
	return l.emit(token.NewInt(v))
}

// startsExponent returns whether the cursor is at an exponent: e or E,
// followed by a digit, optionally after a sign.
func startsExponent(l *Lexer) bool {
	if r := l.next(); r != 'e' && r != 'E' {
		return false
	}
	next := l.lookahead(1)
	if next == '-' || next == '+' {
		next = l.lookahead(2)
	}
	return isDecimal(next)
}

// lexExponent consumes an exponent, which startsExponent has already
// checked for.
func lexExponent(l *Lexer) {
	l.pop()
	if r := l.next(); r == '-' || r == '+' {
		l.pop()
	}
	l.takeWhile(isDecimalRun)
}

// lexFloat emits the pending text as a floating-point literal.
func lexFloat(l *Lexer) Item {
	digits := strings.ReplaceAll(l.pending(), "_", "")
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		item := l.emit(token.NewFloat(0))
		l.diagnose(NonParseableFloat, item.Span)
		return item
	}
	return l.emit(token.NewFloat(v))
}

// lexRadix lexes the rest of a radix-prefixed integer, starting at the radix
// marker. The pending text is the prefix before the marker.
func lexRadix(l *Lexer, rdx radix) Item {
	prefix := l.pending()
	prefixEnd := l.mark()
	l.pop()

	digits := l.takeWhile(func(r rune) bool { return unicodex.InDigitRun(r, rdx.base) })
	item := l.emit(token.NewInt(0))

	if prefix != "0" && prefix != "-0" {
		l.diagnose(rdx.wrongPrefix, source.NewSpan(item.Span.Start, prefixEnd))
	}

	digits = strings.ReplaceAll(digits, "_", "")
	if digits == "" {
		l.diagnose(LiteralIncomplete, item.Span)
		return item
	}

	v, err := parseRadix(digits, rdx.base, strings.HasPrefix(prefix, "-"))
	if err != 0 {
		l.diagnose(err, item.Span)
		return item
	}
	item.Token = token.NewInt(v)
	return item
}

// parseRadix converts a run of digits in the given base, checking that the
// result fits in an int64.
func parseRadix(digits string, base int, negative bool) (int64, ErrorKind) {
	var mag uint64
	overflow := false
	for _, r := range digits {
		d, _ := unicodex.Digit(r, base)

		hi, lo := bits.Mul64(mag, uint64(base))
		sum, carry := bits.Add64(lo, uint64(d), 0)
		if hi != 0 || carry != 0 {
			overflow = true
			break
		}
		mag = sum
	}

	switch {
	case negative && (overflow || mag > 1<<63):
		return 0, HexLiteralUnderflow
	case negative:
		// -(1<<63) wraps around to itself.
		return -int64(mag), 0
	case overflow || mag > math.MaxInt64:
		return 0, HexLiteralOverflow
	default:
		return int64(mag), 0
	}
}

func isDecimalRun(r rune) bool {
	return unicodex.InDigitRun(r, 10)
}
