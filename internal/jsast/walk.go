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

package jsast

import "iter"

// Children yields the direct children of a node in source order.
func Children(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		c := children{yield: yield}
		c.of(n)
	}
}

// Inspect traverses the tree rooted at n in depth-first order. If f returns
// true, Inspect descends into the children of the node.
func Inspect(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}

	for c := range Children(n) {
		Inspect(c, f)
	}
}

type children struct {
	yield func(Node) bool
	done  bool
}

func (c *children) add(n Node) {
	if c.done || isNil(n) {
		return
	}

	if !c.yield(n) {
		c.done = true
	}
}

func addAll[N Node](c *children, ns []N) {
	for _, n := range ns {
		c.add(n)
	}
}

func (c *children) of(n Node) {
	switch n := n.(type) {
	// keep-sorted start newline_separated=yes
	case *ArrayLit:
		addAll(c, n.Elems)

	case *BlockStmt:
		addAll(c, n.Body)

	case *CallExpr:
		c.add(n.Fun)
		addAll(c, n.Args)

	case *ClassDecl:
		c.add(n.Class)

	case *ClassLit:
		addAll(c, n.Decorators)
		c.add(n.Name)
		c.add(n.Super)
		addAll(c, n.Members)

	case *Declarator:
		c.add(n.Target)
		c.add(n.Init)

	case *ExportDecl:
		c.add(n.Decl)

	case *ExportDefault:
		c.add(n.Value)

	case *ExprStmt:
		c.add(n.X)

	case *FuncDecl:
		c.add(n.Func)

	case *FuncLit:
		c.add(n.Name)
		addAll(c, n.Params)
		addAll(c, n.Body)
		c.add(n.Result)

	case *ImportDecl:
		addAll(c, n.Names)

	case *IndexExpr:
		c.add(n.X)
		c.add(n.Index)

	case *MemberExpr:
		c.add(n.X)

	case *Module:
		addAll(c, n.Body)

	case *ObjectLit:
		addAll(c, n.Props)

	case *Other:
		addAll(c, n.Children)

	case *Pattern:
		addAll(c, n.Names)
		addAll(c, n.Exprs)

	case *Property:
		c.add(n.Computed)
		c.add(n.Value)

	case *SpreadExpr:
		c.add(n.X)

	case *VarDecl:
		addAll(c, n.Decls)

		// keep-sorted end
	}
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Ident:
		return n == nil
	case *FuncLit:
		return n == nil
	case *ClassLit:
		return n == nil
	case *Pattern:
		return n == nil
	}

	return false
}
