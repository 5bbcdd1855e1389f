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

package interval_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexbee-net/etxe/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()

	type r struct {
		start, end int
		value      string
	}

	tests := []struct {
		name   string
		ranges []r    // Ranges to insert.
		want   string // If not "", the value of the overlap for the last range.
	}{
		{
			name:   "empty-map",
			ranges: []r{{0, 9, "foo"}},
		},
		{
			name:   "new-max",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}},
		},
		{
			name:   "new-min",
			ranges: []r{{30, 39, "bar"}, {0, 9, "foo"}},
		},
		{
			name:   "between",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {10, 29, "baz"}},
		},
		{
			name:   "adjacent",
			ranges: []r{{0, 0, "a"}, {1, 1, "b"}, {2, 5, "c"}},
		},
		{
			name:   "inside",
			ranges: []r{{0, 9, "foo"}, {1, 2, "baz"}},
			want:   "foo",
		},
		{
			name:   "same",
			ranges: []r{{0, 9, "foo"}, {0, 9, "baz"}},
			want:   "foo",
		},
		{
			name:   "straddle-end",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {9, 29, "baz"}},
			want:   "foo",
		},
		{
			name:   "straddle-start",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {20, 32, "baz"}},
			want:   "bar",
		},
		{
			name:   "straddle-both",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {9, 30, "baz"}},
			want:   "foo",
		},
		{
			name:   "contains",
			ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {-2, 40, "baz"}},
			want:   "foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			type v struct{ v string } // This aids in pretty-printing for assertions.
			m := new(interval.Map[int, v])
			for i, e := range tt.ranges {
				overlap := m.Insert(e.start, e.end, v{e.value})
				if i < len(tt.ranges)-1 || tt.want == "" {
					require.Nil(t, overlap.Value)
				} else {
					assert.Equal(t, &v{tt.want}, overlap.Value)
				}
				t.Logf("%v", m)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	m := new(interval.Map[int, string])
	m.Insert(0, 2, "foo")
	m.Insert(5, 5, "bar")
	m.Insert(6, 9, "baz")

	get := func(point int) string {
		i := m.Get(point)
		if i.Value == nil {
			return ""
		}
		assert.True(t, i.Contains(point))
		return *i.Value
	}

	assert.Equal(t, "foo", get(0))
	assert.Equal(t, "foo", get(2))
	assert.Empty(t, get(3))
	assert.Empty(t, get(4))
	assert.Equal(t, "bar", get(5))
	assert.Equal(t, "baz", get(6))
	assert.Equal(t, "baz", get(9))
	assert.Empty(t, get(10))
	assert.Empty(t, get(-1))

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, `{[0, 2]: foo, 5: bar, [6, 9]: baz}`, fmt.Sprintf("%v", m))

	var starts []int
	for i := range m.Intervals() {
		starts = append(starts, i.Start)
	}
	assert.Equal(t, []int{0, 5, 6}, starts)
}
