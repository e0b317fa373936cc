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

package settings_test

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	. "github.com/wtlin1228/lokalise-key-usage/settings"
)

const allSettings = `{
  "binding": "L",
  "translate": "t",
  "lazy-tuples": true,
  "bare-references": false,
  "fail-fast": true,
  "concurrency": 4,
  "include": ["src/**"],
  "exclude": ["**/*.test.*"],
  "gitignore": false,
  "whitelist": ["i18n.error.*"]
}`

const yamlSettings = `
binding: L
lazy-tuples: true
exclude:
  - "**/*.test.*"
whitelist:
  - i18n.error.*
`

func TestSettings(t *testing.T) {
	t.Parallel()

	// Whitelist is not an analyzer option.
	all := reflect.TypeFor[Settings]().NumField() - 1

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, all},
		{"none", `{}`, 0},
		{"yaml", yamlSettings, 3},
		{"empty", ``, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var s Settings
			if err := Decode(strings.NewReader(tc.settings), &s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), got.LogValue(), tc.want)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	var s Settings
	if err := Decode(strings.NewReader(allSettings), &s); err != nil {
		t.Fatalf("Can't decode settings: %v", err)
	}

	if got, want := s.Whitelist, []string{"i18n.error.*"}; !slices.Equal(got, want) {
		t.Errorf("Whitelist = %q, want %q", got, want)
	}

	if s.Include == nil || !slices.Equal(*s.Include, []string{"src/**"}) {
		t.Errorf("Include = %v, want [src/**]", s.Include)
	}
}

func TestDecodeUnknown(t *testing.T) {
	t.Parallel()

	var s Settings
	if err := Decode(strings.NewReader("bindings: L\n"), &s); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, DefaultFile), false); err == nil {
		t.Error("Expected error for missing file")
	}

	s, err := Load(filepath.Join(dir, DefaultFile), true)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got := s.Options(); len(got) != 0 {
		t.Errorf("Got options %s for missing file", got.LogValue())
	}

	path := filepath.Join(dir, "keyusage.json")
	if err := os.WriteFile(path, []byte(allSettings), 0o644); err != nil {
		t.Fatalf("Can't write settings: %v", err)
	}

	s, err = Load(path, false)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if s.Binding == nil || *s.Binding != "L" {
		t.Errorf("Binding = %v, want L", s.Binding)
	}
}
