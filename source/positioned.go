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

package source

import "fmt"

// Value is a constraint for values that can be [Positioned].
type Value[T any] interface {
	Equal(T) bool
	Compare(T) int
}

// Positioned is a value together with the span of text it was produced from.
type Positioned[T Value[T]] struct {
	Span  Span
	Value T
}

// At constructs a new [Positioned].
func At[T Value[T]](span Span, value T) Positioned[T] {
	return Positioned[T]{Span: span, Value: value}
}

// Equal returns whether both the spans and the values of p and that are equal.
func (p Positioned[T]) Equal(that Positioned[T]) bool {
	return p.Span.Equal(that.Span) && p.Value.Equal(that.Value)
}

// ValueEqual is like [Positioned.Equal], but ignores spans.
func (p Positioned[T]) ValueEqual(that Positioned[T]) bool {
	return p.Value.Equal(that.Value)
}

// Compare orders by span first, and then by value.
func (p Positioned[T]) Compare(that Positioned[T]) int {
	if c := p.Span.Compare(that.Span); c != 0 {
		return c
	}
	return p.Value.Compare(that.Value)
}

// Format implements [fmt.Formatter].
func (p Positioned[T]) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), p.Value)
	fmt.Fprintf(s, "@%v", p.Span)
}
