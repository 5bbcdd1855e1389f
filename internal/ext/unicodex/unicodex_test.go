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

package unicodex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexbee-net/etxe/internal/ext/unicodex"
)

func TestColumns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, unicodex.Columns("abc"))
	assert.Equal(t, 5, unicodex.Columns("\tx"))
	assert.Equal(t, 8, unicodex.Columns("ab\tcd\t"))
	assert.Equal(t, 2, unicodex.Columns("貓"))
	assert.Equal(t, 9, unicodex.Columns("a\x00"))
	assert.Equal(t, 4, unicodex.Columns("\xff"))
}

func TestWidthOut(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	w := unicodex.Width{Column: 1, Out: &out}
	w.WriteString("a\tb\x01")
	assert.Equal(t, "a  b<U+0001>", out.String())
	assert.Equal(t, 13, w.Column)
}

func TestDigit(t *testing.T) {
	t.Parallel()

	v, ok := unicodex.Digit('f', 16)
	assert.True(t, ok)
	assert.Equal(t, 15, v)

	_, ok = unicodex.Digit('8', 8)
	assert.False(t, ok)
	_, ok = unicodex.Digit('g', 16)
	assert.False(t, ok)

	assert.True(t, unicodex.InDigitRun('_', 2))
	assert.True(t, unicodex.InDigitRun('1', 2))
	assert.False(t, unicodex.InDigitRun('2', 2))
}

func TestXID(t *testing.T) {
	t.Parallel()

	for _, r := range "aZ_éλ名" {
		assert.True(t, unicodex.IsXIDStart(r), "%q", r)
	}
	for _, r := range "0-.\" {" {
		assert.False(t, unicodex.IsXIDStart(r), "%q", r)
	}
	for _, r := range "a0_é٣" {
		assert.True(t, unicodex.IsXIDContinue(r), "%q", r)
	}
	assert.False(t, unicodex.IsXIDContinue('-'))
	assert.True(t, unicodex.IsHorizontalSpace('\t'))
	assert.False(t, unicodex.IsHorizontalSpace('\n'))
}
