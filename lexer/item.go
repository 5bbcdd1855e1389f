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
	"fmt"

	"github.com/hexbee-net/etxe/source"
	"github.com/hexbee-net/etxe/token"
)

// Item is the result of a single pull from a [Lexer]: either a token, a
// fatal error, or the end of input (a token of kind [token.EOF]).
type Item struct {
	Span source.Span

	// The token, if Err is zero.
	Token token.Token

	// If non-zero, this item is an error rather than a token.
	Err ErrorKind
}

// IsEOF returns whether this is the end-of-input item.
func (i Item) IsEOF() bool {
	return i.Err == 0 && i.Token.Kind == token.EOF
}

// IsError returns whether this is an error item.
func (i Item) IsError() bool {
	return i.Err != 0
}

// Positioned returns this item's token along with its span.
func (i Item) Positioned() source.Positioned[token.Token] {
	return source.At(i.Span, i.Token)
}

// Diagnostic returns this item's error along with its span.
func (i Item) Diagnostic() Diagnostic {
	return source.At(i.Span, i.Err)
}

// String implements [fmt.Stringer].
func (i Item) String() string {
	if i.IsError() {
		return fmt.Sprintf("error(%s)@%v", i.Err.String(), i.Span)
	}
	return fmt.Sprintf("%v@%v", i.Token, i.Span)
}
