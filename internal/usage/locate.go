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

package usage

import (
	"fmt"

	"github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
	"github.com/wtlin1228/lokalise-key-usage/internal/labels"
)

// Default names of the recognized convention.
const (
	DefaultBinding   = "LABELS"
	DefaultTranslate = "translate"
)

// Convention names the tracked binding and the translate function of
// BINDING = TRANSLATE({...}) declarations.
type Convention struct {
	Binding   string
	Translate string
}

// DefaultConvention returns the LABELS = translate({...}) convention.
func DefaultConvention() Convention {
	return Convention{Binding: DefaultBinding, Translate: DefaultTranslate}
}

// Trees maps tracked bindings to their label trees.
type Trees map[jsast.Ref]*labels.Tree

// Locate finds all declarations following the convention in a module, at any depth,
// and builds their label trees.
//
// A translate() call without arguments or with a first argument other than an object
// literal is a [diag.ConventionMismatch]. Label tree construction errors are returned
// unchanged. Both abort the analysis of the module.
func Locate(m *jsast.Module, conv Convention, b labels.Builder) (Trees, error) {
	trees := make(Trees)

	var err error
	jsast.Inspect(m, func(n jsast.Node) bool {
		if err != nil {
			return false
		}

		d, ok := n.(*jsast.Declarator)
		if !ok {
			return true
		}

		id, call, ok := conv.match(d)
		if !ok {
			return true
		}

		var tree *labels.Tree
		if tree, err = build(call, conv, b); err != nil {
			return false
		}

		if prev, ok := trees[id.Ref]; ok {
			// var redeclaration: either tree may be live at a read
			keys := prev.Leaves()
			keys.AddAll(tree.Leaves())
			tree = labels.NewComputed(prev.Pos(), keys)
		}
		trees[id.Ref] = tree

		return true
	})

	if err != nil {
		return nil, err
	}

	return trees, nil
}

// match reports whether d is BINDING = TRANSLATE(...).
func (c Convention) match(d *jsast.Declarator) (*jsast.Ident, *jsast.CallExpr, bool) {
	id, ok := d.Target.Ident()
	if !ok || id.Name != c.Binding {
		return nil, nil, false
	}

	call, ok := d.Init.(*jsast.CallExpr)
	if !ok {
		return nil, nil, false
	}

	fun, ok := call.Fun.(*jsast.Ident)
	if !ok || fun.Name != c.Translate {
		return nil, nil, false
	}

	return id, call, true
}

func build(call *jsast.CallExpr, conv Convention, b labels.Builder) (*labels.Tree, error) {
	if len(call.Args) == 0 {
		msg := fmt.Sprintf("%s() called without arguments", conv.Translate)
		return nil, diag.New(diag.ConventionMismatch, call.Pos(), msg)
	}

	lit, ok := call.Args[0].(*jsast.ObjectLit)
	if !ok {
		msg := fmt.Sprintf("first argument of %s() must be an object literal", conv.Translate)
		return nil, diag.New(diag.ConventionMismatch, call.Args[0].Pos(), msg)
	}

	return b.Build(lit)
}
