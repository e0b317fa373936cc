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

package labels_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
	. "github.com/wtlin1228/lokalise-key-usage/internal/labels"
	"github.com/wtlin1228/lokalise-key-usage/internal/testsource"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name      string
		src       string
		computed  bool
		wantNames []string
		wantKeys  []string
	}{
		{
			name:      "plain",
			src:       `{bird: "i18n.bird", cat: "i18n.cat"}`,
			wantNames: []string{"bird", "cat"},
			wantKeys:  []string{"i18n.bird", "i18n.cat"},
		},
		{
			name:      "empty",
			src:       `{}`,
			wantNames: []string{},
			wantKeys:  nil,
		},
		{
			name:     "computed",
			src:      `{[PET.bird]: "i18n.bird", [PET.cat]: "i18n.cat"}`,
			computed: true,
			wantKeys: []string{"i18n.bird", "i18n.cat"},
		},
		{
			name:     "computed nested",
			src:      `{[a]: {x: "k1", [y]: {z: "k2"}}, [b + 1]: "k3"}`,
			computed: true,
			wantKeys: []string{"k1", "k2", "k3"},
		},
		{
			name:      "nested",
			src:       `{fly: {bird: "i18n.bird"}, walk: {cat: "i18n.cat", dog: "i18n.dog"}}`,
			wantNames: []string{"fly", "walk"},
			wantKeys:  []string{"i18n.bird", "i18n.cat", "i18n.dog"},
		},
		{
			name:      "quoted keys",
			src:       `{"bird-size": 'i18n.size', 42: "i18n.answer"}`,
			wantNames: []string{"42", "bird-size"},
			wantKeys:  []string{"i18n.answer", "i18n.size"},
		},
		{
			name:      "escapes",
			src:       `{tab: "a\tb", quote: 'it\'s', uni: "\u00e9"}`,
			wantNames: []string{"quote", "tab", "uni"},
			wantKeys:  []string{"a\tb", "it's", "é"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tree, err := Build(testsource.ObjectLit(t, tc.src))
			if err != nil {
				t.Fatalf("Build() failed: %v", err)
			}

			if got := tree.Computed(); got != tc.computed {
				t.Errorf("Computed() = %t, want %t", got, tc.computed)
			}

			if !tc.computed {
				if got := tree.Names(); !slices.Equal(got, tc.wantNames) {
					t.Errorf("Names() = %q, want %q", got, tc.wantNames)
				}
			}

			if got := tree.Leaves().Sorted(); !slices.Equal(got, tc.wantKeys) {
				t.Errorf("Leaves() = %q, want %q", got, tc.wantKeys)
			}
		})
	}
}

func TestBuildLeaves(t *testing.T) {
	t.Parallel()

	tree, err := Build(testsource.ObjectLit(t, `{bird: "i18n.bird", cat: "i18n.cat"}`))
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	for name, want := range map[string]string{"bird": "i18n.bird", "cat": "i18n.cat"} {
		l, ok := tree.Lookup(name)
		if !ok || !l.IsKey() || l.Key != want {
			t.Errorf("Lookup(%q) = %+v, %t, want key %q", name, l, ok, want)
		}
	}

	if tree.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tree.Len())
	}
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name string
		src  string
	}{
		{"plain then computed", `{a: "x", [b]: "y"}`},
		{"computed then plain", `{[b]: "y", a: "x"}`},
		{"nested mixing", `{a: {b: "x", [c]: "y"}}`},
		{"spread", `{...other}`},
		{"spread later", `{a: "x", ...other}`},
		{"shorthand", `{a}`},
		{"method", `{a() { return "x" }}`},
		{"getter", `{get a() { return "x" }}`},
		{"number value", `{a: 1}`},
		{"identifier value", `{a: KEY}`},
		{"template value", "{a: `x`}"},
		{"array value", `{a: ["x", "lazy"]}`},
		{"computed bad value", `{[a]: {b: 1}}`},
		{"computed spread", `{[a]: {...b}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tree, err := Build(testsource.ObjectLit(t, tc.src))
			if !errors.Is(err, diag.ErrConstruction) {
				t.Errorf("Build() = %v, %v, want construction error", tree, err)
			}

			if tree != nil {
				t.Error("Expected no partial tree")
			}
		})
	}
}

func TestLazyTuples(t *testing.T) {
	t.Parallel()

	b := Builder{LazyTuples: true}

	tree, err := b.Build(testsource.ObjectLit(t, `{a: ["i18n.a", "lazy"], b: {[c]: ["i18n.c"]}}`))
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if got, want := tree.Leaves().Sorted(), []string{"i18n.a", "i18n.c"}; !slices.Equal(got, want) {
		t.Errorf("Leaves() = %q, want %q", got, want)
	}

	if _, err := b.Build(testsource.ObjectLit(t, `{a: [1, "lazy"]}`)); !errors.Is(err, diag.ErrConstruction) {
		t.Errorf("Expected construction error for non-string tuple, got %v", err)
	}

	if _, err := b.Build(testsource.ObjectLit(t, `{a: []}`)); !errors.Is(err, diag.ErrConstruction) {
		t.Errorf("Expected construction error for empty tuple, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	const (
		object   = `{fly: {bird: "i18n.bird"}, walk: {cat: "i18n.cat", dog: "i18n.dog"}, empty: {}, top: "i18n.top"}`
		computed = `{[PET.bird]: "i18n.bird", [PET.cat]: "i18n.cat"}`
		mixed    = `{pets: {[PET.bird]: "i18n.bird", [PET.cat]: "i18n.cat"}, other: "i18n.other"}`
	)

	testCases := [...]struct {
		name   string
		labels string
		chain  string
		want   []string
		lookup bool
	}{
		{"leaf", object, `LABELS.walk.cat`, []string{"i18n.cat"}, false},
		{"top leaf", object, `LABELS.top`, []string{"i18n.top"}, false},
		{"optional", object, `LABELS?.fly?.bird`, []string{"i18n.bird"}, false},
		{"literal index", object, `LABELS["walk"]["dog"]`, []string{"i18n.dog"}, false},
		{"partial", object, `LABELS.walk`, []string{"i18n.cat", "i18n.dog"}, false},
		{"root", object, `LABELS`, []string{"i18n.bird", "i18n.cat", "i18n.dog", "i18n.top"}, false},
		{"empty subtree", object, `LABELS.empty`, nil, false},
		{"past leaf", object, `LABELS.top.length`, []string{"i18n.top"}, false},
		{"dynamic", object, `LABELS.walk[pet]`, []string{"i18n.cat", "i18n.dog"}, false},
		{"unknown", object, `LABELS.swim`, nil, true},
		{"unknown nested", object, `LABELS.walk.fish`, nil, true},
		{"computed", computed, `LABELS.bird`, []string{"i18n.bird", "i18n.cat"}, false},
		{"computed deep", computed, `LABELS.bird.size.whatever`, []string{"i18n.bird", "i18n.cat"}, false},
		{"computed root", computed, `LABELS`, []string{"i18n.bird", "i18n.cat"}, false},
		{"through computed", mixed, `LABELS.pets.bird`, []string{"i18n.bird", "i18n.cat"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tree, err := Build(testsource.ObjectLit(t, tc.labels))
			if err != nil {
				t.Fatalf("Build() failed: %v", err)
			}

			chain, ok := ChainOf(testsource.Expr(t, tc.chain))
			if !ok {
				t.Fatalf("ChainOf(%s) failed", tc.chain)
			}

			got, err := Resolve(chain, tree)
			if tc.lookup {
				if !errors.Is(err, diag.ErrLookup) {
					t.Errorf("Resolve(%s) = %q, %v, want lookup failure", chain, got.Sorted(), err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Resolve(%s) failed: %v", chain, err)
			}

			if !got.Equal(keyset.New(tc.want...)) {
				t.Errorf("Resolve(%s) = %q, want %q", chain, got.Sorted(), tc.want)
			}
		})
	}
}

func TestChainOf(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		src  string
		want string
		ok   bool
	}{
		{`LABELS.bird.size`, "LABELS.bird.size", true},
		{`LABELS["bird-size"]`, `LABELS["bird-size"]`, true},
		{`LABELS[key].x`, "LABELS[...].x", true},
		{`(LABELS).bird`, "LABELS.bird", true},
		{`getLabels().bird`, "", false},
		{`this.bird`, "", false},
		{`LABELS.bird().size`, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()

			chain, ok := ChainOf(testsource.Expr(t, tc.src))
			if ok != tc.ok {
				t.Fatalf("ChainOf(%s) ok = %t, want %t", tc.src, ok, tc.ok)
			}

			if got := chain.String(); ok && got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
