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

package discover

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ignore applies the .gitignore rules of a repository to paths below a walk root.
type ignore struct {
	// prefix is the walk root relative to the repository root.
	prefix  []string
	matcher gitignore.Matcher
}

// openIgnore loads the .gitignore rules of the repository enclosing dir.
// It returns nil when dir is not inside a git repository.
func openIgnore(dir string) (*ignore, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}

	root := wt.Filesystem.Root()

	prefix, err := relative(root, dir)
	if err != nil {
		return nil, err
	}

	ps, err := gitignore.ReadPatterns(osfs.New(root), nil)
	if err != nil {
		return nil, err
	}

	return &ignore{prefix: prefix, matcher: gitignore.NewMatcher(ps)}, nil
}

// relative returns the path components of dir below root, resolving symbolic links.
func relative(root, dir string) ([]string, error) {
	root, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, err
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	if dir, err = filepath.EvalSymlinks(dir); err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return nil, err
	}

	if rel == "." {
		return nil, nil
	}

	return strings.Split(filepath.ToSlash(rel), "/"), nil
}

// Ignored reports whether a slash separated path relative to the walk root is ignored.
// A nil *ignore ignores nothing.
func (i *ignore) Ignored(rel string, dir bool) bool {
	if i == nil {
		return false
	}

	parts := append(append(make([]string, 0, len(i.prefix)+4), i.prefix...), strings.Split(rel, "/")...)

	return i.matcher.Match(parts, dir)
}
