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

package discover_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	git "github.com/go-git/go-git/v5"

	. "github.com/wtlin1228/lokalise-key-usage/internal/discover"
)

var tree = [...]string{
	".gitignore",
	"README.md",
	"dist/bundle.js",
	"node_modules/lib/index.js",
	"src/app.tsx",
	"src/app.spec.tsx",
	"src/labels.gen.js",
	"src/types.d.ts",
	"src/util/format.ts",
	"src/util/legacy.cjs",
}

func setup(tb testing.TB, repo bool) string {
	tb.Helper()

	dir := tb.TempDir()
	for _, name := range tree {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			tb.Fatalf("Can't create directory: %v", err)
		}

		data := []byte("export {};\n")
		if name == ".gitignore" {
			data = []byte("dist/\n*.gen.js\n")
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			tb.Fatalf("Can't write file: %v", err)
		}
	}

	if repo {
		if _, err := git.PlainInit(dir, false); err != nil {
			tb.Fatalf("PlainInit: %v", err)
		}
	}

	return dir
}

func TestFiles(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name    string
		options Options
		repo    bool
		want    []string
	}{
		{
			name: "all",
			want: []string{"dist/bundle.js", "src/app.spec.tsx", "src/app.tsx", "src/labels.gen.js", "src/util/format.ts", "src/util/legacy.cjs"},
		},
		{
			name:    "gitignore",
			options: Options{GitIgnore: true},
			repo:    true,
			want:    []string{"src/app.spec.tsx", "src/app.tsx", "src/util/format.ts", "src/util/legacy.cjs"},
		},
		{
			name:    "gitignore without repository",
			options: Options{GitIgnore: true},
			want:    []string{"dist/bundle.js", "src/app.spec.tsx", "src/app.tsx", "src/labels.gen.js", "src/util/format.ts", "src/util/legacy.cjs"},
		},
		{
			name:    "exclude base name",
			options: Options{Exclude: []string{"*.spec.tsx", "*.gen.js"}},
			want:    []string{"dist/bundle.js", "src/app.tsx", "src/util/format.ts", "src/util/legacy.cjs"},
		},
		{
			name:    "exclude directory",
			options: Options{Exclude: []string{"dist", "src/util"}},
			want:    []string{"src/app.spec.tsx", "src/app.tsx", "src/labels.gen.js"},
		},
		{
			name:    "include",
			options: Options{Include: []string{"src/**/*.ts", "*.tsx"}},
			want:    []string{"src/app.spec.tsx", "src/app.tsx", "src/util/format.ts"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := setup(t, tc.repo)

			files, err := tc.options.Files([]string{dir})
			if err != nil {
				t.Fatalf("Files() failed: %v", err)
			}

			got := make([]string, 0, len(files))
			for _, f := range files {
				rel, err := filepath.Rel(dir, f)
				if err != nil {
					t.Fatalf("Can't relativize %s: %v", f, err)
				}
				got = append(got, filepath.ToSlash(rel))
			}

			if !slices.Equal(got, tc.want) {
				t.Errorf("Files() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFilesExplicit(t *testing.T) {
	t.Parallel()

	dir := setup(t, false)
	readme := filepath.Join(dir, "README.md")
	app := filepath.Join(dir, "src", "app.tsx")

	files, err := Options{}.Files([]string{readme, app, filepath.Join(dir, "src"), app})
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}

	if !slices.Contains(files, readme) {
		t.Errorf("Explicit file %s missing from %q", readme, files)
	}

	if n := len(files); n != 6 {
		t.Errorf("Got %d files, want 6: %q", n, files)
	}
}

func TestFilesErrors(t *testing.T) {
	t.Parallel()

	dir := setup(t, false)

	if _, err := (Options{Exclude: []string{"[a-"}}).Files([]string{dir}); !errors.Is(err, ErrPattern) {
		t.Errorf("Files() = %v, want %v", err, ErrPattern)
	}

	if _, err := (Options{}).Files([]string{filepath.Join(dir, "missing")}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Files() = %v, want %v", err, os.ErrNotExist)
	}
}
