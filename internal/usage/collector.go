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
	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
)

// Walk attributes the member chains rooted at tracked bindings to owners.
//
// Only the module's top-level items establish owners. With
// bareReferences set, a tracked identifier used as a value records all keys of its tree.
func Walk(m *jsast.Module, trees Trees, bareReferences bool) Result {
	c := collector{
		trees:     trees,
		anonymous: anonymousDefault(m),
		bare:      bareReferences,
		result:    newResult(),
	}

	if len(trees) == 0 {
		return c.result
	}

	for _, s := range m.Body {
		c.item(s)
	}

	return c.result
}

// collector walks one module.
type collector struct {
	// trees maps tracked bindings to their label trees.
	trees Trees

	// anonymous is the owner of unnamed default exports.
	anonymous Owner

	// bare enables recording bare references to tracked bindings.
	bare bool

	result Result
}

// walk visits n with the given owner slot. The slot is a value: an owner started
// below n ends when the recursive call returns.
func (c *collector) walk(n jsast.Node, owner Owner) {
	switch n := n.(type) {
	// keep-sorted start newline_separated=yes
	case nil:

	case *jsast.ClassDecl:
		c.walk(n.Class, owner)

	case *jsast.ClassLit:
		if n.Name != nil && !owner.Valid() {
			owner = Owner{Name: n.Name.Name, Pos: n.Name.Pos()}
		}

		for _, d := range n.Decorators {
			c.walk(d, owner)
		}

		c.walk(n.Super, owner)

		for _, m := range n.Members {
			c.walk(m, owner)
		}

	case *jsast.FuncDecl:
		c.walk(n.Func, owner)

	case *jsast.FuncLit:
		if n.Name != nil && !owner.Valid() {
			owner = Owner{Name: n.Name.Name, Pos: n.Name.Pos()}
		}

		for _, p := range n.Params {
			c.walk(p, owner)
		}

		for _, s := range n.Body {
			c.walk(s, owner)
		}

		c.walk(n.Result, owner)

	case *jsast.Ident:
		c.bareReference(n, owner)

	case *jsast.ImportDecl:
		// bindings only

	case *jsast.IndexExpr:
		if !c.reference(n, owner) {
			c.walk(n.X, owner)
			c.walk(n.Index, owner)
		}

	case *jsast.MemberExpr:
		if !c.reference(n, owner) {
			c.walk(n.X, owner)
		}

	case *jsast.Pattern:
		// Names are binding occurrences, not reads.
		for _, x := range n.Exprs {
			c.walk(x, owner)
		}

	case *jsast.StringLit:

	default:
		for child := range jsast.Children(n) {
			c.walk(child, owner)
		}

		// keep-sorted end
	}
}
