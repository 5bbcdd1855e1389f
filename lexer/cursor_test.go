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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexbee-net/etxe/source"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	c := &cursor{text: "ab🐈\ncd"}
	assert.Equal(t, 'a', c.next())
	assert.Equal(t, '🐈', c.lookahead(2))
	assert.Equal(t, 'd', c.lookahead(5))
	assert.Equal(t, rune(-1), c.lookahead(6))

	assert.Equal(t, "ab", c.takeWhile(func(r rune) bool { return r < 0x80 }))
	mark := c.mark()
	assert.Equal(t, '🐈', c.pop())
	assert.Equal(t, source.Location{Column: 3, Offset: 6}, c.peek)
	assert.Equal(t, "🐈", c.since(mark))

	c.rewind(mark)
	assert.Equal(t, "ab", c.pending())
	assert.Equal(t, source.NewSpan(source.Location{}, mark), c.accept())
	assert.Panics(t, func() { c.rewind(source.Location{}) })

	c.popString("🐈\n")
	assert.Equal(t, source.Location{Line: 1, Offset: 7}, c.peek)
	assert.True(t, c.startsWith("cd"))
	c.reset()
	assert.Equal(t, c.commit, c.peek)

	c.popString("🐈\ncd")
	assert.True(t, c.done())
	assert.Equal(t, rune(-1), c.pop())
	assert.Equal(t, rune(-1), c.next())
}

func TestCursorInvalidUTF8(t *testing.T) {
	t.Parallel()

	c := &cursor{text: "\xffa"}
	c.pop()
	assert.Equal(t, source.Location{Column: 1, Offset: 1}, c.peek)
	assert.Equal(t, 'a', c.pop())
}

func TestContextStack(t *testing.T) {
	t.Parallel()

	var s contextStack
	assert.Equal(t, General, s.Current().Kind)
	assert.Nil(t, s.top())
	assert.Panics(t, func() { s.Pop() })

	s.Push(Context{Kind: String})
	s.Push(Context{Kind: StringInterpolation})
	require.Equal(t, 2, s.Depth())

	s.top().depth++
	assert.Equal(t, 1, s.Current().depth)
	assert.Equal(t, StringInterpolation, s.Pop().Kind)
	assert.Equal(t, String, s.Current().Kind)

	s.Push(Context{Kind: HeredocString})
	s.Reset()
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, General, s.Current().Kind)
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	for e := ErrorKind(1); e < errorKindCount; e++ {
		assert.NotEmpty(t, e.Error(), "%d", e)
		assert.NotContains(t, e.String(), "ErrorKind(", "%d", e)
	}
	assert.Equal(t, "lexer.ErrorKind(0)", ErrorKind(0).String())
	assert.Equal(t, "UnexpectedChar", UnexpectedChar.String())
	assert.Equal(t, "unexpected character", UnexpectedChar.Error())
	assert.NotEmpty(t, UnterminatedStringLiteral.Help())

	for k := General; k <= StringDirective; k++ {
		assert.NotContains(t, k.String(), "ContextKind(", "%d", k)
	}
	assert.Equal(t, `HeredocString("EOF", skip: true, quoted: false)`,
		Context{Kind: HeredocString, Delimiter: "EOF", SkipLeadingTabs: true}.String())
}
