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

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

// File is a source file, consisting of a path and its full text.
//
// Files are immutable once created. A nil *File behaves like an empty file
// with the path name "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, it is possible
	// to recover which line that offset is on by performing a binary search on this
	// list.
	//
	// Alternatively, this slice can be interpreted as the index after each \n in the
	// original file.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's path.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// LineCount returns the number of lines in this file. A trailing newline
// starts a final, empty line.
func (f *File) LineCount() int {
	return len(f.lines())
}

// Line returns the text of the given zero-indexed line, without its
// terminating newline.
func (f *File) Line(n int) string {
	lines := f.lines()
	if n < 0 || n >= len(lines) {
		return ""
	}

	start := lines[n]
	end := len(f.Text())
	if n+1 < len(lines) {
		end = lines[n+1]
	}
	return strings.TrimSuffix(f.Text()[start:end], "\n")
}

// Location searches this file's line index to build full [Location]
// information for the given byte offset.
//
// The result agrees with the one obtained by calling [Location.Advance] on
// every character from the start of the file. This operation is O(log n).
func (f *File) Location(offset int) Location {
	if f == nil || offset <= 0 {
		return Location{}
	}
	offset = min(offset, len(f.Text()))

	lines := f.lines()
	// Find the largest line such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	return Location{
		Line:   line,
		Column: utf8.RuneCountInString(f.Text()[lines[line]:offset]),
		Offset: offset,
	}
}

// Offset inverts [File.Location]: it returns the byte offset of the given
// zero-indexed line and character column.
//
// Returns false if the position does not exist in this file.
func (f *File) Offset(line, column int) (int, bool) {
	lines := f.lines()
	if line < 0 || line >= len(lines) || column < 0 {
		return 0, false
	}

	text := f.Line(line)
	for i := range text {
		if column == 0 {
			return lines[line] + i, true
		}
		column--
	}
	if column > 0 {
		return 0, false
	}
	// One past the last character of the line.
	return lines[line] + len(text), true
}

// Span returns a span between two byte offsets of this file.
func (f *File) Span(start, end int) Span {
	return NewSpan(f.Location(start), f.Location(end))
}

// lines returns the line index, building it on first use.
func (f *File) lines() []int {
	if f == nil {
		return []int{0}
	}

	f.once.Do(func() {
		f.lineIndex = append(f.lineIndex, 0)

		var next int
		// We add 1 to the return value of IndexByte because we want to work
		// with the index immediately *after* the newline byte.
		text := f.text
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]
			next += newline
			f.lineIndex = append(f.lineIndex, next)
		}
	})
	return f.lineIndex
}
