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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexbee-net/etxe/token"
)

func TestKindTables(t *testing.T) {
	t.Parallel()

	var keywords, operators, punct int
	for k := range token.All() {
		assert.True(t, k.IsValid(), "%v", k)
		assert.NotContains(t, k.String(), "token.Kind", "%d has no name", k)

		switch {
		case k.IsKeyword():
			keywords++
			kw, ok := token.Keyword(k.Text())
			assert.True(t, ok)
			assert.Equal(t, k, kw)
		case k.IsOperator():
			operators++
			op, ok := token.Operator(k.Text())
			assert.True(t, ok)
			assert.Equal(t, k, op)
			for _, r := range k.Text() {
				assert.True(t, token.IsOperatorChar(r), "%q in %v", r, k)
			}
		case k.IsPunct():
			punct++
			assert.Len(t, k.Text(), 1)
		default:
			assert.Empty(t, k.Text(), "%v", k)
		}
	}

	assert.Equal(t, 14, keywords)
	assert.Equal(t, 24, operators)
	assert.Equal(t, 7, punct)
	assert.False(t, token.Unknown.IsValid())
}

func TestLongestOperator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		kind token.Kind
		n    int
	}{
		{"==", token.Eq, 2},
		{"=-", token.Assign, 1},
		{"..5", token.Range, 2},
		{"<:", token.ShiftLeft, 2},
		{":>", token.ShiftRight, 2},
		{"->x", token.Arrow, 2},
		{"!!", token.Not, 1},
		{"&&&", token.And, 2},
		{":", token.Unknown, 0},
		{"", token.Unknown, 0},
	}

	for _, test := range tests {
		kind, n := token.LongestOperator(test.text)
		assert.Equal(t, test.kind, kind, "%q", test.text)
		assert.Equal(t, test.n, n, "%q", test.text)
	}
}

func TestTokenEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, token.NewInt(42).Equal(token.NewInt(42)))
	assert.False(t, token.NewInt(42).Equal(token.NewFloat(42)))
	assert.True(t, token.NewHeredoc("a\n", "b").Equal(token.NewHeredoc("a\n", "b")))
	assert.False(t, token.NewHeredoc("a\n").Equal(token.NewHeredoc("a\n", "b")))
	assert.True(t, token.Of(token.Comma).Equal(token.Of(token.Comma)))
	assert.False(t, token.NewIdent("x").Equal(token.NewString("x")))
	assert.Equal(t, -1, token.NewBool(false).Compare(token.NewBool(true)))
	assert.Equal(t, 1, token.NewChar('b').Compare(token.NewChar('a')))

	assert.Panics(t, func() { token.NewComment(token.String, "x") })
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Int(-10)", token.NewInt(-10).String())
	assert.Equal(t, "Float(12.3456)", token.NewFloat(12.3456).String())
	assert.Equal(t, "Char('❤')", token.NewChar('❤').String())
	assert.Equal(t, `String("a\\n")`, token.NewString(`a\n`).String())
	assert.Equal(t, `Heredoc(["x\n", "  y"])`, token.NewHeredoc("x\n", "  y").String())
	assert.Equal(t, "Ident(foo-bar)", token.NewIdent("foo-bar").String())
	assert.Equal(t, "Arrow(->)", token.Of(token.Arrow).String())
	assert.Equal(t, "Let(let)", token.Of(token.Let).String())
	assert.Equal(t, "StringDelim", token.Of(token.StringDelim).String())
	assert.Equal(t, "EOF", token.Of(token.EOF).String())
}
