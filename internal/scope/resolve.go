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

package scope

import "github.com/wtlin1228/lokalise-key-usage/internal/jsast"

// Resolve assigns a [jsast.Ref] to every identifier in the module and records the
// bindings in [jsast.Module.Symbols]. It returns the module scope.
func Resolve(m *jsast.Module) *Scope {
	r := resolver{module: m, unbound: make(map[string]jsast.Ref)}

	s := newScope(nil, true)
	r.declareBody(s, m.Body)

	for _, stmt := range m.Body {
		r.visit(s, stmt)
	}

	return s
}

type resolver struct {
	module  *jsast.Module
	unbound map[string]jsast.Ref
}

// declare binds id in scope s. A redeclaration in the same scope (var x; var x)
// resolves to the existing binding.
func (r *resolver) declare(s *Scope, id *jsast.Ident, kind jsast.SymbolKind) {
	if ref, ok := s.names[id.Name]; ok {
		id.Ref = ref
		return
	}

	r.module.Symbols = append(r.module.Symbols, jsast.Symbol{
		Name:     id.Name,
		Kind:     kind,
		TopLevel: s.parent == nil,
		Decl:     id.Pos(),
	})

	ref := jsast.Ref(len(r.module.Symbols))
	s.names[id.Name] = ref
	id.Ref = ref
}

func (r *resolver) declarePattern(s *Scope, p *jsast.Pattern, kind jsast.SymbolKind) {
	if p == nil {
		return
	}

	for _, id := range p.Names {
		r.declare(s, id, kind)
	}
}

// lookup resolves a use of name from scope s.
func (r *resolver) lookup(s *Scope, name string) jsast.Ref {
	if ref, ok := s.Lookup(name); ok {
		return ref
	}

	if ref, ok := r.unbound[name]; ok {
		return ref
	}

	r.module.Symbols = append(r.module.Symbols, jsast.Symbol{Name: name, Kind: jsast.SymbolUnbound})
	ref := jsast.Ref(len(r.module.Symbols))
	r.unbound[name] = ref

	return ref
}

// declareBody declares the block scoped bindings of a statement list, and the
// hoisted var bindings when s is a function scope.
func (r *resolver) declareBody(s *Scope, body []jsast.Stmt) {
	for _, stmt := range body {
		r.declareLexical(s, stmt)
	}

	if s.function {
		for _, stmt := range body {
			r.hoistVars(s, stmt)
		}
	}
}

func (r *resolver) declareLexical(s *Scope, n jsast.Node) {
	switch n := n.(type) {
	case *jsast.VarDecl:
		if !n.Kind.Lexical() {
			break
		}

		kind := jsast.SymbolLet
		if n.Kind == jsast.DeclConst {
			kind = jsast.SymbolConst
		}

		for _, d := range n.Decls {
			r.declarePattern(s, d.Target, kind)
		}

	case *jsast.FuncDecl:
		if n.Func.Name != nil {
			r.declare(s, n.Func.Name, jsast.SymbolFunction)
		}

	case *jsast.ClassDecl:
		if n.Class.Name != nil {
			r.declare(s, n.Class.Name, jsast.SymbolClass)
		}

	case *jsast.ImportDecl:
		for _, id := range n.Names {
			r.declare(s, id, jsast.SymbolImport)
		}

	case *jsast.ExportDecl:
		r.declareLexical(s, n.Decl)

	case *jsast.ExportDefault:
		if !n.Decl {
			break
		}

		switch v := n.Value.(type) {
		case *jsast.FuncLit:
			if v.Name != nil {
				r.declare(s, v.Name, jsast.SymbolFunction)
			}

		case *jsast.ClassLit:
			if v.Name != nil {
				r.declare(s, v.Name, jsast.SymbolClass)
			}
		}
	}
}

// hoistVars declares all var bindings below n that belong to function scope s.
func (r *resolver) hoistVars(s *Scope, n jsast.Node) {
	jsast.Inspect(n, func(n jsast.Node) bool {
		switch n := n.(type) {
		case *jsast.FuncLit, *jsast.ClassLit:
			return false // new var scope

		case *jsast.VarDecl:
			if n.Kind.Lexical() {
				break
			}

			for _, d := range n.Decls {
				r.declarePattern(s, d.Target, jsast.SymbolVar)
			}
		}

		return true
	})
}

func (r *resolver) visit(s *Scope, n jsast.Node) {
	switch n := n.(type) {
	// keep-sorted start newline_separated=yes
	case *jsast.BlockStmt:
		bs := newScope(s, false)
		r.declareBody(bs, n.Body)

		for _, stmt := range n.Body {
			r.visit(bs, stmt)
		}

	case *jsast.ClassDecl:
		r.visitClass(s, n.Class, false)

	case *jsast.ClassLit:
		r.visitClass(s, n, true)

	case *jsast.ExportDefault:
		switch v := n.Value.(type) {
		case *jsast.FuncLit:
			r.visitFunc(s, v, !n.Decl)

		case *jsast.ClassLit:
			r.visitClass(s, v, !n.Decl)

		default:
			r.visit(s, n.Value)
		}

	case *jsast.FuncDecl:
		r.visitFunc(s, n.Func, false)

	case *jsast.FuncLit:
		r.visitFunc(s, n, true)

	case *jsast.Ident:
		if !n.Ref.Valid() {
			n.Ref = r.lookup(s, n.Name)
		}

	case *jsast.Other:
		os := newScope(s, false)
		for _, c := range n.Children {
			r.declareLexical(os, c)

			if p, ok := c.(*jsast.Pattern); ok {
				r.declarePattern(os, p, jsast.SymbolParam) // catch clause parameter
			}
		}

		for _, c := range n.Children {
			r.visit(os, c)
		}

	default:
		for c := range jsast.Children(n) {
			r.visit(s, c)
		}

		// keep-sorted end
	}
}

// visitFunc resolves a function. Declared function names were bound by the enclosing
// scope; the name of a function expression binds inside the function only.
func (r *resolver) visitFunc(s *Scope, f *jsast.FuncLit, expression bool) {
	fs := newScope(s, true)

	if f.Name != nil {
		if expression {
			r.declare(fs, f.Name, jsast.SymbolFunction)
		} else {
			r.visit(s, f.Name)
		}
	}

	for _, p := range f.Params {
		r.declarePattern(fs, p, jsast.SymbolParam)
	}

	for _, p := range f.Params {
		for _, e := range p.Exprs {
			r.visit(fs, e)
		}
	}

	r.declareBody(fs, f.Body)

	for _, stmt := range f.Body {
		r.visit(fs, stmt)
	}

	if f.Result != nil {
		r.visit(fs, f.Result)
	}
}

// visitClass resolves a class. Class decorators and the heritage expression are resolved
// outside the class scope.
func (r *resolver) visitClass(s *Scope, c *jsast.ClassLit, expression bool) {
	for _, d := range c.Decorators {
		r.visit(s, d)
	}

	if c.Super != nil {
		r.visit(s, c.Super)
	}

	cs := newScope(s, false)

	if c.Name != nil {
		if expression {
			r.declare(cs, c.Name, jsast.SymbolClass)
		} else {
			r.visit(s, c.Name)
		}
	}

	for _, m := range c.Members {
		r.visit(cs, m)
	}
}
