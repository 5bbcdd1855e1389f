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

package scan_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexbee-net/etxe/lexer"
	"github.com/hexbee-net/etxe/report"
	"github.com/hexbee-net/etxe/scan"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, text := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	}
	return root
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, map[string]string{
		"main.etx":           "",
		"net/vpc.etx":        "",
		"net/vendor/x.etx":   "",
		"notes.txt":          "",
		"deep/er/still.etx":  "",
		"deep/er/skip.etx.1": "",
	})

	tests := []struct {
		name             string
		include, exclude []string
		want             []string
	}{
		{
			name: "default",
			want: []string{"deep/er/still.etx", "main.etx", "net/vendor/x.etx", "net/vpc.etx"},
		},
		{
			name:    "exclude",
			exclude: []string{"**/vendor/**"},
			want:    []string{"deep/er/still.etx", "main.etx", "net/vpc.etx"},
		},
		{
			name:    "include",
			include: []string{"net/*.etx", "*.txt"},
			want:    []string{"net/vpc.etx", "notes.txt"},
		},
		{
			name:    "overlapping-includes",
			include: []string{"*.etx", "**/*.etx"},
			exclude: []string{"deep/**", "net/**"},
			want:    []string{"main.etx"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := scan.Discover(root, tt.include, tt.exclude)
			require.NoError(t, err)

			var want []string
			for _, path := range tt.want {
				want = append(want, filepath.Join(root, filepath.FromSlash(path)))
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestDiscoverErrors(t *testing.T) {
	t.Parallel()

	_, err := scan.Discover(t.TempDir(), []string{"[a-"}, nil)
	assert.Error(t, err)

	_, err = scan.Discover(t.TempDir(), nil, []string{"{a,b"})
	assert.Error(t, err)

	_, err = scan.Discover(filepath.Join(t.TempDir(), "missing"), nil, nil)
	assert.Error(t, err)
}

func TestFiles(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, map[string]string{
		"ok.etx":    "x = 1\n",
		"char.etx":  "x = ''\n",
		"fatal.etx": "x = \"abc\n",
	})
	paths := []string{
		filepath.Join(root, "ok.etx"),
		filepath.Join(root, "char.etx"),
		filepath.Join(root, "fatal.etx"),
	}

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	results, err := scan.Files(context.Background(), paths,
		scan.WithParallelism(2),
		scan.WithLogger(logger),
	)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
		assert.Equal(t, paths[i], res.File.Path())
		require.NotEmpty(t, res.Items)
		assert.True(t, res.Items[len(res.Items)-1].IsEOF())
	}

	ok := results[0]
	assert.False(t, ok.HasErrors())
	assert.Empty(t, ok.Report())
	assert.Len(t, ok.Items, 4)

	char := results[1]
	assert.True(t, char.HasErrors())
	require.Len(t, char.Diagnostics, 1)
	assert.Equal(t, lexer.EmptyCharLiteral, char.Diagnostics[0].Value)
	assert.Equal(t,
		fmt.Sprintf("error: %s:1:5: empty character literal\n", paths[1]),
		char.Report().Render(report.Simple))

	fatal := results[2]
	assert.True(t, fatal.HasErrors())
	assert.Empty(t, fatal.Diagnostics)
	rep := fatal.Report()
	require.Len(t, rep, 1)
	assert.ErrorIs(t, rep[0].Err, lexer.UnterminatedStringLiteral)
	assert.Contains(t, rep.Render(report.Monochrome), "   = note: the lexer was in String mode\n")
	assert.NotContains(t, char.Report().Render(report.Monochrome), "note:")

	var logged int
	for _, entry := range hook.AllEntries() {
		if entry.Message == "scan: file" {
			logged++
		}
	}
	assert.Equal(t, 3, logged)
}

func TestFilesErrors(t *testing.T) {
	t.Parallel()

	_, err := scan.Files(context.Background(), []string{filepath.Join(t.TempDir(), "missing.etx")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	root := writeFiles(t, map[string]string{"a.etx": "a"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = scan.Files(ctx, []string{filepath.Join(root, "a.etx")})
	assert.ErrorIs(t, err, context.Canceled)
}
