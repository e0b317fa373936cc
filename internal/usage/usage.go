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

// Package usage attributes translation keys to the top-level constructs of a module.
//
// [Locate] finds the LABELS = translate({...}) declarations of a module and builds their
// label trees. [Walk] then traverses the module's top-level items, resolves every member
// chain rooted at a tracked binding and records the keys against the current [Owner].
// Per-owner results are combined with [Merge].
package usage

import (
	"maps"
	"slices"

	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
)

// Map maps owner names to the translation keys referenced while the owner was active.
type Map map[string]keyset.Set

// Add unions keys into the entry of owner, creating it if absent.
func (m Map) Add(owner string, keys keyset.Set) {
	s, ok := m[owner]
	if !ok {
		s = keyset.New()
		m[owner] = s
	}

	s.AddAll(keys)
}

// Merge unions every entry of incoming into target. Merging is commutative, associative
// and idempotent, and never removes owners or keys. incoming is not modified.
func Merge(target, incoming Map) {
	for owner, keys := range incoming {
		target.Add(owner, keys)
	}
}

// Owners returns the owner names in sorted order.
func (m Map) Owners() []string {
	return slices.Sorted(maps.Keys(m))
}

// Keys returns the union of all owners' keys.
func (m Map) Keys() keyset.Set {
	s := keyset.New()
	for _, keys := range m {
		s.AddAll(keys)
	}

	return s
}

// Equal reports whether both maps have the same owners with the same keys.
func (m Map) Equal(o Map) bool {
	return maps.EqualFunc(m, o, keyset.Set.Equal)
}

// Clone returns a deep copy of the map.
func (m Map) Clone() Map {
	c := make(Map, len(m))
	Merge(c, m)

	return c
}
