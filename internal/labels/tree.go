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

// Package labels models the object literal passed to translate() as a label tree and
// resolves member chains against it.
//
// A level of the tree is either in object mode, mapping property names to translation
// keys or nested levels, or in computed mode, where the keys are bracketed expressions
// that cannot be evaluated statically. A computed level keeps only the flat set of all
// translation keys below it.
package labels

import (
	"maps"
	"slices"

	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
)

// Leaf is the value of an object mode property: a translation key or a nested tree.
type Leaf struct {
	Key  string
	Tree *Tree
}

// IsKey reports whether the leaf is a translation key.
func (l Leaf) IsKey() bool { return l.Tree == nil }

// Tree is one level of a label tree. It is immutable after construction.
type Tree struct {
	pos      jsast.Position
	computed bool
	entries  map[string]Leaf
	keys     keyset.Set
}

// NewObject returns an object mode tree.
func NewObject(pos jsast.Position, entries map[string]Leaf) *Tree {
	if entries == nil {
		entries = make(map[string]Leaf)
	}

	return &Tree{pos: pos, entries: entries}
}

// NewComputed returns a computed mode tree holding a flat key set.
func NewComputed(pos jsast.Position, keys keyset.Set) *Tree {
	if keys == nil {
		keys = keyset.New()
	}

	return &Tree{pos: pos, computed: true, keys: keys}
}

// Pos returns the position of the object literal the tree was built from.
func (t *Tree) Pos() jsast.Position { return t.pos }

// Computed reports whether the level is in computed mode.
func (t *Tree) Computed() bool { return t.computed }

// Len returns the number of properties of an object mode level, or the number of
// keys of a computed level.
func (t *Tree) Len() int {
	if t.computed {
		return len(t.keys)
	}

	return len(t.entries)
}

// Lookup returns the value of a property. It always fails on computed levels.
func (t *Tree) Lookup(name string) (Leaf, bool) {
	l, ok := t.entries[name]
	return l, ok
}

// Names returns the property names of an object mode level in sorted order.
func (t *Tree) Names() []string {
	return slices.Sorted(maps.Keys(t.entries))
}

// Leaves returns every translation key reachable below the tree.
func (t *Tree) Leaves() keyset.Set {
	s := keyset.New()
	t.addLeaves(s)

	return s
}

func (t *Tree) addLeaves(s keyset.Set) {
	if t.computed {
		s.AddAll(t.keys)
		return
	}

	for _, l := range t.entries {
		if l.IsKey() {
			s.Add(l.Key)
		} else {
			l.Tree.addLeaves(s)
		}
	}
}
