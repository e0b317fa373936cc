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

// Package discover expands command line arguments into the source files to analyze.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/wtlin1228/lokalise-key-usage/internal/jsparse"
)

// Options configure file discovery.
type Options struct {
	// Include limits directory walks to files matching one of the glob patterns.
	Include []string

	// Exclude skips files and directories matching one of the glob patterns.
	Exclude []string

	// GitIgnore skips files ignored by the enclosing git repository.
	GitIgnore bool
}

// ErrPattern is returned for malformed glob patterns.
var ErrPattern = errors.New("invalid glob pattern")

// skipDirs are never descended into.
var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
}

// Files returns the source files named by args, sorted and without duplicates.
//
// A file argument is returned as is. A directory argument is walked recursively for files
// with a supported extension, honoring the include, exclude and .gitignore rules.
func (o Options) Files(args []string) ([]string, error) {
	include, err := compile(o.Include)
	if err != nil {
		return nil, err
	}

	exclude, err := compile(o.Exclude)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		w := walker{root: arg, include: include, exclude: exclude}
		if o.GitIgnore {
			if w.ignore, err = openIgnore(arg); err != nil {
				return nil, err
			}
		}

		found, err := w.walk()
		if err != nil {
			return nil, err
		}

		files = append(files, found...)
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

// patterns is a list of compiled globs.
type patterns []pattern

type pattern struct {
	glob glob.Glob

	// base is set for patterns without a separator, which match the file name.
	base bool
}

func compile(globs []string) (patterns, error) {
	ps := make(patterns, 0, len(globs))
	for _, g := range globs {
		c, err := glob.Compile(g, '/')
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrPattern, g, err)
		}

		ps = append(ps, pattern{glob: c, base: !strings.Contains(g, "/")})
	}

	return ps, nil
}

// Match reports whether the slash separated relative path matches any pattern.
func (ps patterns) Match(rel string) bool {
	for _, p := range ps {
		if p.glob.Match(rel) || p.base && p.glob.Match(path.Base(rel)) {
			return true
		}
	}

	return false
}

type walker struct {
	root    string
	include patterns
	exclude patterns
	ignore  *ignore
}

func (w walker) walk() ([]string, error) {
	var files []string

	err := filepath.WalkDir(w.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if p == w.root {
			return nil
		}

		rel, err := filepath.Rel(w.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if _, ok := skipDirs[d.Name()]; ok || w.exclude.Match(rel) || w.ignore.Ignored(rel, true) {
				return filepath.SkipDir
			}

			return nil
		}

		switch {
		case !d.Type().IsRegular(), !jsparse.Supported(p):

		case len(w.include) > 0 && !w.include.Match(rel):

		case w.exclude.Match(rel):

		case w.ignore.Ignored(rel, false):
			slog.Debug("Ignoring file", slog.String("path", p))

		default:
			files = append(files, p)
		}

		return nil
	})

	return files, err
}
