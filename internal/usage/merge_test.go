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

package usage_test

import (
	"testing"

	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
	. "github.com/wtlin1228/lokalise-key-usage/internal/usage"
)

func merged(maps ...Map) Map {
	m := make(Map)
	for _, o := range maps {
		Merge(m, o)
	}

	return m
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a := Map{"Foo": keyset.New("k1"), "Bar": keyset.New("k2")}
	b := Map{"Foo": keyset.New("k3"), "Baz": keyset.New()}
	c := Map{"Bar": keyset.New("k1", "k2"), "Qux": keyset.New("k4")}

	testCases := [...]struct {
		name        string
		left, right Map
	}{
		{"commutative", merged(a, b), merged(b, a)},
		{"associative", merged(merged(a, b), c), merged(a, merged(b, c))},
		{"idempotent", merged(a, a), a},
		{"empty", merged(a, Map{}), a},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if !tc.left.Equal(tc.right) {
				t.Errorf("Got %v, want %v", tc.left, tc.right)
			}
		})
	}
}

func TestMergeKeepsEntries(t *testing.T) {
	t.Parallel()

	target := Map{"Foo": keyset.New("k1")}
	incoming := Map{"Foo": keyset.New(), "Bar": keyset.New()}

	Merge(target, incoming)

	want := Map{"Foo": keyset.New("k1"), "Bar": keyset.New()}
	if !target.Equal(want) {
		t.Errorf("Got %v, want %v", target, want)
	}

	if incoming["Foo"].Len() != 0 {
		t.Error("Merge modified incoming map")
	}

	if got := merged(target, Map{"Baz": keyset.New("k2")}).Keys().Sorted(); len(got) != 2 {
		t.Errorf("Keys() = %q, want 2 keys", got)
	}
}
