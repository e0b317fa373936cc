// Copyright 2026 wtlin1228. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	keyusage "github.com/wtlin1228/lokalise-key-usage/analyzer"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = ".keyusage.yaml"

// Settings represents the configuration options of a key usage run.
type Settings struct {
	// Binding is the name of the tracked label binding.
	Binding *string `yaml:"binding"`
	// Translate is the name of the function building the label tree.
	Translate *string `yaml:"translate"`
	// LazyTuples accepts ["key", ...] array values.
	LazyTuples *bool `yaml:"lazy-tuples"`
	// BareReferences records all keys for a label binding used as a value.
	BareReferences *bool `yaml:"bare-references"`
	// FailFast stops at the first file that fails.
	FailFast *bool `yaml:"fail-fast"`
	// Concurrency limits the number of files analyzed in parallel.
	Concurrency *int `yaml:"concurrency"`
	// Include restricts directory walks to matching files.
	Include *[]string `yaml:"include"`
	// Exclude skips matching files and directories.
	Exclude *[]string `yaml:"exclude"`
	// GitIgnore honors .gitignore rules.
	GitIgnore *bool `yaml:"gitignore"`

	// Whitelist lists glob patterns of catalog keys never reported as unused.
	Whitelist []string `yaml:"whitelist"`
}

// Load reads settings from a YAML or JSON file.
// A missing file yields empty settings when optional is set.
func Load(path string, optional bool) (Settings, error) {
	var s Settings

	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}

		return s, err
	}
	defer f.Close()

	if err := Decode(f, &s); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Decode reads settings from r, rejecting unknown keys. YAML is a superset of JSON,
// so both formats are accepted.
func Decode(r io.Reader, s *Settings) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return nil
}

// Options converts [Settings] into a list of [keyusage.Option] for the analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() keyusage.Options {
	var opts keyusage.Options

	opts = appendOption(opts, s.Binding, keyusage.WithBinding)
	opts = appendOption(opts, s.Translate, keyusage.WithTranslateFunc)
	opts = appendOption(opts, s.LazyTuples, keyusage.WithLazyTuples)
	opts = appendOption(opts, s.BareReferences, keyusage.WithBareReferences)
	opts = appendOption(opts, s.FailFast, keyusage.WithFailFast)
	opts = appendOption(opts, s.Concurrency, keyusage.WithConcurrency)
	opts = appendOption(opts, s.Include, keyusage.WithInclude)
	opts = appendOption(opts, s.Exclude, keyusage.WithExclude)
	opts = appendOption(opts, s.GitIgnore, keyusage.WithGitIgnore)

	return opts
}

// appendOption appends a non-nil setting to a [keyusage.Option] list.
func appendOption[T any](opts keyusage.Options, value *T, constructor func(T) keyusage.Option) keyusage.Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
