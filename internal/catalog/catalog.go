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

// Package catalog loads translation catalogs and finds keys no module references.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
)

// ErrFormat is returned for catalogs that are not a JSON or YAML mapping.
var ErrFormat = errors.New("unsupported catalog format")

// Load reads a catalog file. Files ending in .json are decoded as JSON, all others as YAML.
func Load(path string) (keyset.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.NewDecoder(f).Decode(&doc)

	default:
		err = yaml.NewDecoder(f).Decode(&doc)
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, path, err)
	}

	return Keys(doc), nil
}

// Keys flattens a decoded catalog into translation keys. Nested mappings are joined with ".",
// so {"a": {"b": "text"}} and {"a.b": "text"} both yield the key "a.b".
func Keys(doc map[string]any) keyset.Set {
	keys := keyset.New()
	flatten(keys, "", doc)

	return keys
}

func flatten(keys keyset.Set, prefix string, doc map[string]any) {
	for k, v := range doc {
		leaf(keys, join(prefix, k), v)
	}
}

// leaf adds key, or the keys below it when v is a mapping. YAML mappings with
// non-string keys such as 404: decode as map[any]any.
func leaf(keys keyset.Set, key string, v any) {
	switch v := v.(type) {
	case map[string]any:
		if len(v) > 0 {
			flatten(keys, key, v)
			return
		}

	case map[any]any:
		if len(v) > 0 {
			for k, nested := range v {
				leaf(keys, join(key, fmt.Sprint(k)), nested)
			}

			return
		}
	}

	keys.Add(key)
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

// Whitelist matches keys that are used in ways static analysis can't see.
type Whitelist []glob.Glob

// CompileWhitelist compiles glob patterns such as "repo.status.*".
func CompileWhitelist(patterns []string) (Whitelist, error) {
	w := make(Whitelist, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid whitelist pattern %q: %w", p, err)
		}

		w = append(w, g)
	}

	return w, nil
}

// Match reports whether key is whitelisted.
func (w Whitelist) Match(key string) bool {
	for _, g := range w {
		if g.Match(key) {
			return true
		}
	}

	return false
}

// Unused returns the catalog keys not in used and not whitelisted, sorted.
func Unused(catalog, used keyset.Set, w Whitelist) []string {
	var unused []string
	for key := range catalog {
		if used.Contains(key) || w.Match(key) {
			continue
		}

		unused = append(unused, key)
	}

	slices.Sort(unused)

	return unused
}
