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

package labels

import (
	"fmt"

	"github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
)

// Builder converts translate() object literals into label trees.
type Builder struct {
	// LazyTuples accepts ["key", ...] array values as the translation key "key".
	LazyTuples bool
}

// Build converts an object literal into a label tree with the default [Builder].
func Build(lit *jsast.ObjectLit) (*Tree, error) {
	return Builder{}.Build(lit)
}

// Build converts an object literal into a label tree.
//
// The key style of the first property decides the mode of the level. Building fails with a
// [diag.ConstructionError] on spread properties, shorthand properties and methods, on values
// other than string and object literals, and on levels mixing plain and computed keys.
func (b Builder) Build(lit *jsast.ObjectLit) (*Tree, error) {
	if len(lit.Props) == 0 {
		return NewObject(lit.Pos(), nil), nil
	}

	computed := lit.Props[0].IsComputed()
	if computed {
		keys := keyset.New()
		for _, p := range lit.Props {
			if err := checkProperty(p, computed); err != nil {
				return nil, err
			}

			if err := b.flatten(p, p.Value, keys); err != nil {
				return nil, err
			}
		}

		return NewComputed(lit.Pos(), keys), nil
	}

	entries := make(map[string]Leaf, len(lit.Props))
	for _, p := range lit.Props {
		if err := checkProperty(p, computed); err != nil {
			return nil, err
		}

		l, err := b.leaf(p)
		if err != nil {
			return nil, err
		}

		entries[p.Key] = l // a duplicate key overrides, as at runtime
	}

	return NewObject(lit.Pos(), entries), nil
}

func (b Builder) leaf(p *jsast.Property) (Leaf, error) {
	switch v := p.Value.(type) {
	case *jsast.StringLit:
		return Leaf{Key: v.Value}, nil

	case *jsast.ObjectLit:
		t, err := b.Build(v)
		if err != nil {
			return Leaf{}, err
		}

		return Leaf{Tree: t}, nil

	case *jsast.ArrayLit:
		if key, ok := b.tuple(v); ok {
			return Leaf{Key: key}, nil
		}
	}

	return Leaf{}, badValue(p)
}

// flatten collects every string leaf below a computed property value, ignoring keys.
func (b Builder) flatten(p *jsast.Property, v jsast.Expr, keys keyset.Set) error {
	switch v := v.(type) {
	case *jsast.StringLit:
		keys.Add(v.Value)
		return nil

	case *jsast.ObjectLit:
		for _, np := range v.Props {
			if err := checkKind(np); err != nil {
				return err
			}

			if err := b.flatten(np, np.Value, keys); err != nil {
				return err
			}
		}

		return nil

	case *jsast.ArrayLit:
		if key, ok := b.tuple(v); ok {
			keys.Add(key)
			return nil
		}
	}

	return badValue(p)
}

// tuple extracts the key of a ["key", ...] lazy translation tuple.
func (b Builder) tuple(a *jsast.ArrayLit) (string, bool) {
	if !b.LazyTuples || len(a.Elems) == 0 {
		return "", false
	}

	s, ok := a.Elems[0].(*jsast.StringLit)
	if !ok {
		return "", false
	}

	return s.Value, true
}

func checkProperty(p *jsast.Property, computed bool) error {
	if err := checkKind(p); err != nil {
		return err
	}

	if p.IsComputed() != computed {
		return diag.New(diag.ConstructionError, p.Pos(), "mixing plain and computed keys is not allowed")
	}

	return nil
}

func checkKind(p *jsast.Property) error {
	switch p.Kind {
	case jsast.PropKeyValue:
		return nil

	case jsast.PropSpread:
		return diag.New(diag.ConstructionError, p.Pos(), "spread is not allowed")

	default:
		return diag.New(diag.ConstructionError, p.Pos(), "only key-value properties are allowed")
	}
}

func badValue(p *jsast.Property) error {
	pos := p.Pos()
	if p.Value != nil {
		pos = p.Value.Pos()
	}

	msg := "value can only be a string or object literal"
	if p.Key != "" {
		msg = fmt.Sprintf("value of %q can only be a string or object literal", p.Key)
	}

	return diag.New(diag.ConstructionError, pos, msg)
}
