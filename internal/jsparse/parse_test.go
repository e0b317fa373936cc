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

package jsparse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
	. "github.com/wtlin1228/lokalise-key-usage/internal/jsparse"
	"github.com/wtlin1228/lokalise-key-usage/internal/testsource"
)

func TestLanguageFor(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		path string
		want Language
		ok   bool
	}{
		{"a.js", JavaScript, true},
		{"a.JSX", JavaScript, true},
		{"a.mjs", JavaScript, true},
		{"a.cjs", JavaScript, true},
		{"a.ts", TypeScript, true},
		{"a.mts", TypeScript, true},
		{"a.tsx", TSX, true},
		{"a.d.ts", 0, false},
		{"a.css", 0, false},
		{"Makefile", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, ok := LanguageFor(tt.path)
			if ok != tt.ok || got != tt.want {
				t.Errorf("LanguageFor(%q) = %v, %t, want %v, %t", tt.path, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse(t.Context(), "src/a.js", []byte("const a = {;\n"))
	if !errors.Is(err, diag.ErrParse) {
		t.Fatalf("Parse() = %v, want %v", err, diag.ErrParse)
	}

	if k, ok := diag.KindOf(err); !ok || k != diag.ParseError {
		t.Errorf("KindOf() = %v, %t, want %v", k, ok, diag.ParseError)
	}

	if !strings.HasPrefix(err.Error(), "src/a.js:1:") {
		t.Errorf("Got error %q, want position in src/a.js", err)
	}

	if _, err := Parse(t.Context(), "a.vue", nil); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Parse() = %v, want %v", err, ErrUnsupported)
	}
}

func TestParseTypeScript(t *testing.T) {
	t.Parallel()

	if _, err := Parse(t.Context(), "a.ts", []byte("const a = <T>(x: T) => x;\n")); err != nil {
		t.Errorf("Parse() failed for TypeScript: %v", err)
	}

	// Type assertion syntax conflicts with JSX.
	if _, err := Parse(t.Context(), "a.tsx", []byte("const a = <T,>(x: T) => <b>{x}</b>;\n")); err != nil {
		t.Errorf("Parse() failed for TSX: %v", err)
	}
}

func TestConvertExportDefault(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name, src string
		decl      bool
		named     bool
	}{
		{"function declaration", "export default function Foo() {}", true, true},
		{"anonymous function", "export default function () {}", false, false},
		{"class declaration", "export default class Foo {}", true, true},
		{"arrow", "export default () => 1;", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := testsource.Parse(t, tt.src)
			if len(m.Body) != 1 {
				t.Fatalf("Got %d statements, want 1", len(m.Body))
			}

			d, ok := m.Body[0].(*jsast.ExportDefault)
			if !ok {
				t.Fatalf("Got %T, want *jsast.ExportDefault", m.Body[0])
			}

			if d.Decl != tt.decl {
				t.Errorf("Decl = %t, want %t", d.Decl, tt.decl)
			}

			var named bool
			switch v := d.Value.(type) {
			case *jsast.FuncLit:
				named = v.Name != nil
			case *jsast.ClassLit:
				named = v.Name != nil
			default:
				t.Fatalf("Got value %T, want function or class", d.Value)
			}

			if named != tt.named {
				t.Errorf("Named = %t, want %t", named, tt.named)
			}
		})
	}
}

func TestConvertObject(t *testing.T) {
	t.Parallel()

	lit := testsource.ObjectLit(t, `{a: "x", "b-c": "y", 1: "z", [K.d]: "w", ...rest, m() {}, e}`)

	want := [...]struct {
		kind     jsast.PropertyKind
		key      string
		computed bool
	}{
		{jsast.PropKeyValue, "a", false},
		{jsast.PropKeyValue, "b-c", false},
		{jsast.PropKeyValue, "1", false},
		{jsast.PropKeyValue, "", true},
		{jsast.PropSpread, "", false},
		{jsast.PropMethod, "m", false},
		{jsast.PropShorthand, "e", false},
	}

	if len(lit.Props) != len(want) {
		t.Fatalf("Got %d properties, want %d", len(lit.Props), len(want))
	}

	for i, p := range lit.Props {
		if w := want[i]; p.Kind != w.kind || p.Key != w.key || p.IsComputed() != w.computed {
			t.Errorf("Property %d = {%v %q %t}, want %v", i, p.Kind, p.Key, p.IsComputed(), w)
		}
	}

	if s, ok := lit.Props[0].Value.(*jsast.StringLit); !ok || s.Value != "x" {
		t.Errorf("Got value %#v, want string literal x", lit.Props[0].Value)
	}
}

func TestConvertChain(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name, path, src string
	}{
		{"member", "a.js", `LABELS.a.b`},
		{"optional", "a.js", `LABELS?.a?.b`},
		{"parenthesized", "a.js", `(LABELS.a).b`},
		{"as", "a.ts", `(LABELS.a as Labels).b`},
		{"non-null", "a.ts", `LABELS.a!.b`},
		{"satisfies", "a.ts", `(LABELS.a satisfies object).b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := testsource.ParseFile(t, tt.path, "const _ = "+tt.src+";\n")

			d, ok := m.Body[0].(*jsast.VarDecl)
			if !ok {
				t.Fatalf("Got %T, want *jsast.VarDecl", m.Body[0])
			}

			var names []string

			x := d.Decls[0].Init
			for {
				sel, ok := x.(*jsast.MemberExpr)
				if !ok {
					break
				}

				names = append(names, sel.Name)
				x = sel.X
			}

			if id, ok := x.(*jsast.Ident); !ok || id.Name != "LABELS" {
				t.Errorf("Got chain root %#v, want LABELS", x)
			}

			if got := strings.Join(names, ","); got != "b,a" {
				t.Errorf("Got chain %s, want b,a", got)
			}
		})
	}
}

func TestConvertDropsTypes(t *testing.T) {
	t.Parallel()

	const src = `
import type { Props } from "./props";

interface State { open: boolean }

type Name = string;

export const a: Name = "x";
`

	m := testsource.ParseFile(t, "a.ts", src)

	var kinds []string

	for _, s := range m.Body {
		switch s := s.(type) {
		case *jsast.ExportDecl:
			kinds = append(kinds, "export")
		case *jsast.ImportDecl:
			kinds = append(kinds, "import:"+s.Source)
		case *jsast.Other:
			kinds = append(kinds, s.Kind)
		default:
			kinds = append(kinds, "other")
		}
	}

	if got, want := strings.Join(kinds, " "), "import:./props export"; got != want {
		t.Errorf("Got statements %q, want %q", got, want)
	}
}
