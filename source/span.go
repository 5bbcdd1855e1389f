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

// Spanner is any type with a [Span].
type Spanner interface {
	Span() Span
}

// Span is a range of text between two [Location]s.
//
// Start never comes after End.
type Span struct {
	Start, End Location
}

// NewSpan constructs a new span between two locations.
//
// If the locations are given in the wrong order, they are swapped.
func NewSpan(a, b Location) Span {
	if b.Before(a) {
		a, b = b, a
	}
	return Span{Start: a, End: b}
}

// Point returns an empty span at l.
func Point(l Location) Span {
	return Span{Start: l, End: l}
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// IsZero returns whether or not this span is empty.
func (s Span) IsZero() bool {
	return s.Len() == 0
}

// Contains returns whether offset falls within this span. The end of the
// span is exclusive.
func (s Span) Contains(offset int) bool {
	return s.Start.Offset <= offset && offset < s.End.Offset
}

// Join returns the smallest span that contains both s and that.
func (s Span) Join(that Span) Span {
	if that.Start.Before(s.Start) {
		s.Start = that.Start
	}
	if s.End.Before(that.End) {
		s.End = that.End
	}
	return s
}

// Equal returns whether two spans cover the same byte range.
func (s Span) Equal(that Span) bool {
	return s.Start.Equal(that.Start) && s.End.Equal(that.End)
}

// Compare orders spans by start offset, and then by end offset.
func (s Span) Compare(that Span) int {
	if c := s.Start.Compare(that.Start); c != 0 {
		return c
	}
	return s.End.Compare(that.End)
}

// Text returns the text this span covers in src.
func (s Span) Text(src string) string {
	return Slice(src, s.Start, s.End)
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("%v-%v", s.Start, s.End)
}

// Slice returns the text between two locations in text, using their absolute
// byte offsets. The result shares memory with text.
func Slice(text string, start, end Location) string {
	return text[start.Offset:end.Offset]
}
