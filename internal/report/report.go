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

// Package report writes analysis results as text, JSON or YAML.
//
// All output is deterministic: owners, keys and files are sorted.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
	"github.com/wtlin1228/lokalise-key-usage/internal/run"
	"github.com/wtlin1228/lokalise-key-usage/internal/usage"
)

// Writer writes results in a configured format.
type Writer struct {
	// Format is the output encoding.
	Format Format

	// PerFile keys the output by file path instead of merging all files.
	PerFile bool

	// Color enables colored text output.
	Color bool
}

// document is the encoded form of a usage result.
type document struct {
	Usage   usage.Map  `json:"usage"             yaml:"usage"`
	Unowned keyset.Set `json:"unowned,omitempty" yaml:"unowned,omitempty"`
}

// Usage writes the usage of a run.
func (w Writer) Usage(out io.Writer, res *run.Result) error {
	if w.PerFile {
		if w.Format == FormatText {
			return w.textFiles(out, res.Files)
		}

		files := make(map[string]document, len(res.Files))
		for _, f := range res.Files {
			files[f.Path] = document{Usage: f.Usage, Unowned: f.Unowned}
		}

		return w.encode(out, files)
	}

	doc := document{Usage: res.Usage, Unowned: res.Unowned}
	if w.Format == FormatText {
		return w.textDocument(out, doc, "")
	}

	return w.encode(out, doc)
}

// Keys writes a list of translation keys, such as the unused keys of a catalog.
func (w Writer) Keys(out io.Writer, keys []string) error {
	if keys == nil {
		keys = []string{}
	}

	if w.Format == FormatText {
		for _, k := range keys {
			if _, err := fmt.Fprintln(out, k); err != nil {
				return err
			}
		}

		return nil
	}

	return w.encode(out, keys)
}

func (w Writer) encode(out io.Writer, v any) error {
	switch w.Format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(v)

	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()

	default:
		return fmt.Errorf("can't encode %s", w.Format)
	}
}
