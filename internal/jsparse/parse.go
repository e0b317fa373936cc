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

// Package jsparse converts JavaScript and TypeScript sources into resolved [jsast] modules.
//
// Parsing uses the tree-sitter grammars for JavaScript (with JSX), TypeScript and TSX.
// The concrete syntax tree is reduced to [jsast] nodes, TypeScript type syntax is dropped
// and identifiers are resolved to bindings with [scope.Resolve].
package jsparse

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
	"github.com/wtlin1228/lokalise-key-usage/internal/scope"
)

// ErrUnsupported is returned for files without a supported source extension.
var ErrUnsupported = errors.New("unsupported file type")

// Parse parses a source file, choosing the grammar by the file extension.
func Parse(ctx context.Context, path string, src []byte) (*jsast.Module, error) {
	lang, ok := LanguageFor(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}

	return ParseLanguage(ctx, lang, path, src)
}

// ParseLanguage parses a source file with the given grammar.
//
// Each call uses its own tree-sitter parser, so ParseLanguage is safe for concurrent use.
func ParseLanguage(ctx context.Context, lang Language, path string, src []byte) (*jsast.Module, error) {
	defer trace.StartRegion(ctx, "Parse").End()

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang.grammar())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: tree-sitter parse failed: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		e := diag.New(diag.ParseError, syntaxErrorPos(root), "syntax error")
		return nil, e.WithPath(path)
	}

	c := converter{src: src}
	m := c.module(root)
	m.Path = path

	scope.Resolve(m)

	return m, nil
}

// syntaxErrorPos finds the position of the first error or missing node.
func syntaxErrorPos(n *sitter.Node) jsast.Position {
	if n.IsError() || n.IsMissing() {
		return position(n)
	}

	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}

		return syntaxErrorPos(child)
	}

	return position(n)
}

func position(n *sitter.Node) jsast.Position {
	p := n.StartPoint()
	return jsast.Position{Line: int(p.Row) + 1, Column: int(p.Column)}
}
