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

package diag_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
)

func TestError(t *testing.T) {
	t.Parallel()

	pos := jsast.Position{Line: 3, Column: 9}

	tests := [...]struct {
		name string
		err  *Error
		want string
	}{
		{"full", New(LookupFailure, pos, `LABELS has no label "x"`).WithPath("src/a.js"), `src/a.js:3:10: lookup failure: LABELS has no label "x"`},
		{"no path", New(ConstructionError, pos, "spread is not allowed"), "3:10: construction error: spread is not allowed"},
		{"no position", New(ParseError, jsast.Position{}, "").WithPath("a.js"), "a.js: parse error"},
		{"bare", New(ConventionMismatch, jsast.Position{}, ""), "convention mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	t.Parallel()

	sentinels := map[Kind]error{
		ParseError:         ErrParse,
		ConstructionError:  ErrConstruction,
		ConventionMismatch: ErrConventionMismatch,
		LookupFailure:      ErrLookup,
	}

	for kind := range sentinels {
		err := fmt.Errorf("wrapped: %w", New(kind, jsast.Position{}, "msg"))

		for other, s := range sentinels {
			if got, want := errors.Is(err, s), other == kind; got != want {
				t.Errorf("errors.Is(%v, %v) = %t, want %t", kind, s, got, want)
			}
		}

		if k, ok := KindOf(err); !ok || k != kind {
			t.Errorf("KindOf(%v) = %v, %t", err, k, ok)
		}

		if got, want := kind.Fatal(), kind != LookupFailure; got != want {
			t.Errorf("%v.Fatal() = %t, want %t", kind, got, want)
		}
	}

	if _, ok := KindOf(errors.New("other")); ok {
		t.Error("KindOf() succeeded for a foreign error")
	}
}

func TestWithPath(t *testing.T) {
	t.Parallel()

	e := New(LookupFailure, jsast.Position{Line: 1}, "msg")
	c := e.WithPath("a.js")

	if e.Path != "" || c.Path != "a.js" {
		t.Errorf("WithPath modified the original: %q, %q", e.Path, c.Path)
	}
}
