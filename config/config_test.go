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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexbee-net/etxe/config"
	"github.com/hexbee-net/etxe/report"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want *config.Config
		err  string
	}{
		{
			name: "empty",
			text: "",
			want: config.Default(),
		},
		{
			name: "full",
			text: `
include: ["src/**/*.etx"]
exclude:
  - "**/vendor/**"
parallelism: 4
style: colored
debug: true
`,
			want: &config.Config{
				Include:     []string{"src/**/*.etx"},
				Exclude:     []string{"**/vendor/**"},
				Parallelism: 4,
				Style:       "colored",
				Debug:       true,
			},
		},
		{
			name: "partial",
			text: "parallelism: 2\n",
			want: &config.Config{
				Include:     []string{"**/*.etx"},
				Parallelism: 2,
				Style:       "monochrome",
			},
		},
		{name: "unknown-field", text: "colour: red\n", err: "colour"},
		{name: "bad-glob", text: "exclude: ['[a-']\n", err: "syntax error in pattern"},
		{name: "empty-include", text: "include: []\n", err: "include must not be empty"},
		{name: "negative", text: "parallelism: -1\n", err: "parallelism"},
		{name: "bad-style", text: "style: sparkly\n", err: "sparkly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := config.Parse([]byte(tt.text))
			if tt.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, config.DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("style: simple\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	style, err := cfg.ReportStyle()
	require.NoError(t, err)
	assert.Equal(t, report.Simple, style)

	require.NoError(t, os.WriteFile(path, []byte("parallelism: lots\n"), 0o600))
	_, err = config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
