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

// Package keyset provides an unordered set of translation keys.
package keyset

import (
	"encoding/json"
	"iter"
	"maps"
	"slices"
)

// Set is a set of translation keys. The zero value is an empty set ready for reads;
// use [New] or [Set.Add] on a non-nil set for writes.
type Set map[string]struct{}

// New returns a set holding the given keys.
func New(keys ...string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}

	return s
}

// Add inserts a key.
func (s Set) Add(key string) {
	s[key] = struct{}{}
}

// AddAll inserts all keys of o and reports whether s grew.
func (s Set) AddAll(o Set) bool {
	n := len(s)
	for k := range o {
		s[k] = struct{}{}
	}

	return len(s) > n
}

// Contains reports whether key is in the set.
func (s Set) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys.
func (s Set) Len() int { return len(s) }

// Clone returns a copy of the set.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	c.AddAll(s)

	return c
}

// Equal reports whether both sets hold the same keys.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}

	for k := range s {
		if !o.Contains(k) {
			return false
		}
	}

	return true
}

// All iterates over the keys in unspecified order.
func (s Set) All() iter.Seq[string] {
	return maps.Keys(s)
}

// Sorted returns the keys in ascending order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s Set) MarshalJSON() ([]byte, error) {
	keys := s.Sorted()
	if keys == nil {
		keys = []string{}
	}

	return json.Marshal(keys)
}

// UnmarshalJSON decodes a JSON array of keys.
func (s *Set) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*s = New(keys...)

	return nil
}

// MarshalYAML encodes the set as a sorted YAML sequence.
func (s Set) MarshalYAML() (any, error) {
	keys := s.Sorted()
	if keys == nil {
		keys = []string{}
	}

	return keys, nil
}
