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

// Package testsource provides utilities for parsing JavaScript and TypeScript source in tests.
//
// It handles the boilerplate of running source fragments through the real front end,
// so tests work on resolved syntax trees.
package testsource

import (
	"testing"

	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
	"github.com/wtlin1228/lokalise-key-usage/internal/jsparse"
)

// Parse parses a JavaScript module and resolves its bindings.
func Parse(tb testing.TB, src string) *jsast.Module {
	tb.Helper()

	return ParseFile(tb, "test.js", src)
}

// ParseFile parses a module, choosing the grammar by the file extension of path.
func ParseFile(tb testing.TB, path, src string) *jsast.Module {
	tb.Helper()

	m, err := jsparse.Parse(tb.Context(), path, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return m
}

// Expr parses a single JavaScript expression.
// The provided source `src` is wrapped in a declaration `const _ = ...;`.
func Expr(tb testing.TB, src string) jsast.Expr {
	tb.Helper()

	m := Parse(tb, "const _ = "+src+";\n")

	if len(m.Body) != 1 {
		tb.Fatalf("Expected one statement, got %d", len(m.Body))
	}

	decl, ok := m.Body[0].(*jsast.VarDecl)
	if !ok || len(decl.Decls) != 1 || decl.Decls[0].Init == nil {
		tb.Fatalf("Can't find expression in %q", src)
	}

	return decl.Decls[0].Init
}

// ObjectLit parses an object literal.
func ObjectLit(tb testing.TB, src string) *jsast.ObjectLit {
	tb.Helper()

	lit, ok := Expr(tb, src).(*jsast.ObjectLit)
	if !ok {
		tb.Fatalf("Expected object literal, got %q", src)
	}

	return lit
}
