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

// Package config loads project configuration from .etxe.yaml files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/hexbee-net/etxe/report"
	"github.com/hexbee-net/etxe/scan"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = ".etxe.yaml"

// Config is the project configuration.
type Config struct {
	// Globs selecting the files to check, relative to the input directory.
	Include []string `yaml:"include"`
	// Globs removing files from the included set.
	Exclude []string `yaml:"exclude"`

	// How many files to lex at once. Zero means one per CPU.
	Parallelism int `yaml:"parallelism"`

	// How diagnostics are rendered: simple, monochrome or colored.
	Style string `yaml:"style"`

	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{
		Include: []string{scan.DefaultInclude},
		Style:   report.Monochrome.String(),
	}
}

// Load reads the configuration file at path. A missing file is not an error:
// the defaults are returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses and validates a configuration file's contents. Fields that
// are not set keep their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field of the configuration has a usable value.
func (c *Config) Validate() error {
	if len(c.Include) == 0 {
		return errors.New("include must not be empty")
	}
	for _, pattern := range append(c.Include[:len(c.Include):len(c.Include)], c.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
		}
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must not be negative, got %d", c.Parallelism)
	}
	if _, err := c.ReportStyle(); err != nil {
		return err
	}
	return nil
}

// ReportStyle returns the parsed diagnostic style.
func (c *Config) ReportStyle() (report.Style, error) {
	return report.ParseStyle(c.Style)
}
