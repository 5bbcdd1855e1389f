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
	"github.com/hexbee-net/etxe/internal/interval"
)

// Index maps byte offsets back to the items whose spans contain them.
type Index struct {
	items interval.Map[int, Item]
}

// NewIndex builds an index over items, which must be in source order.
//
// Empty items, such as the end-of-input item, cannot contain any offset and
// are not indexed.
func NewIndex(items []Item) *Index {
	idx := new(Index)
	for _, item := range items {
		if item.Span.Len() == 0 {
			continue
		}
		if overlap := idx.items.Insert(item.Span.Start.Offset, item.Span.End.Offset-1, item); overlap.Value != nil {
			panic("lexer: indexed overlapping items " + overlap.Value.String() + " and " + item.String())
		}
	}
	return idx
}

// At returns the item whose span contains the given byte offset.
//
// Returns false if offset falls between items, such as in white space.
func (idx *Index) At(offset int) (Item, bool) {
	found := idx.items.Get(offset)
	if found.Value == nil {
		return Item{}, false
	}
	return *found.Value, true
}

// Len returns the number of indexed items.
func (idx *Index) Len() int {
	return idx.items.Len()
}
