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

package jsparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
)

// converter reduces a tree-sitter concrete syntax tree to [jsast] nodes.
type converter struct {
	src []byte
}

func (c *converter) module(root *sitter.Node) *jsast.Module {
	return &jsast.Module{Loc: c.loc(root), Body: c.stmts(root)}
}

func (c *converter) loc(n *sitter.Node) jsast.Loc {
	return jsast.Loc{Start: position(n)}
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

// convert dispatches on the node type. It returns nil for trivia and type-only syntax.
func (c *converter) convert(n *sitter.Node) jsast.Node {
	if n == nil {
		return nil
	}

	switch t := n.Type(); t {
	// keep-sorted start
	case nodeArray:
		return c.array(n)

	case nodeArrowFunction, nodeFunction, nodeFunctionExpression, nodeGeneratorFunction:
		return c.function(n)

	case nodeAsExpression, nodeNonNullExpression, nodeParenthesizedExpr, nodeSatisfiesExpression:
		return c.unwrap(n)

	case nodeCallExpression:
		return c.call(n)

	case nodeCatchClause:
		return c.catch(n)

	case nodeClass:
		return c.class(n)

	case nodeClassDeclaration, nodeAbstractClassDecl:
		return &jsast.ClassDecl{Loc: c.loc(n), Class: c.class(n)}

	case nodeEmptyStatement:
		return nil

	case nodeExportStatement:
		return c.export(n)

	case nodeExpressionStatement:
		x := c.firstExpr(n)
		if x == nil {
			return nil
		}

		return &jsast.ExprStmt{Loc: c.loc(n), X: x}

	case nodeForInStatement:
		return c.forIn(n)

	case nodeFunctionDeclaration, nodeGeneratorFuncDecl:
		return &jsast.FuncDecl{Loc: c.loc(n), Func: c.function(n)}

	case nodeIdentifier, nodeShorthandPropertyIdent:
		return c.ident(n)

	case nodeImportStatement:
		return c.importDecl(n)

	case nodeJSXExpression:
		return c.firstExpr(n)

	case nodeLexicalDeclaration, nodeVariableDeclaration:
		return c.varDecl(n)

	case nodeMemberExpression:
		return c.member(n)

	case nodeObject:
		return c.object(n)

	case nodeSpreadElement:
		return &jsast.SpreadExpr{Loc: c.loc(n), X: c.firstExpr(n)}

	case nodeStatementBlock:
		return &jsast.BlockStmt{Loc: c.loc(n), Body: c.stmts(n)}

	case nodeString:
		return &jsast.StringLit{Loc: c.loc(n), Value: unquote(c.text(n))}

	case nodeSubscriptExpression:
		return c.subscript(n)

	case nodeSwitchBody:
		return c.switchBody(n)

	case nodeTypeAssertion:
		// <T>x: the operand follows the type arguments.
		if k := int(n.NamedChildCount()); k > 0 {
			return c.convert(n.NamedChild(k - 1))
		}

		return nil
		// keep-sorted end

	default:
		if _, ok := typeOnly[t]; ok {
			return nil
		}

		if _, ok := nameOnly[t]; ok {
			return nil
		}

		return c.other(n)
	}
}

// other keeps a construct without a dedicated type together with its children.
func (c *converter) other(n *sitter.Node) *jsast.Other {
	o := &jsast.Other{Loc: c.loc(n), Kind: n.Type()}
	for child := range namedChildren(n) {
		if x := c.convert(child); x != nil {
			o.Children = append(o.Children, x)
		}
	}

	return o
}

func (c *converter) expr(n *sitter.Node) jsast.Expr {
	switch x := c.convert(n).(type) {
	case nil:
		return nil

	case jsast.Expr:
		return x

	default:
		return &jsast.Other{Loc: c.loc(n), Kind: n.Type(), Children: []jsast.Node{x}}
	}
}

func (c *converter) stmt(n *sitter.Node) jsast.Stmt {
	switch s := c.convert(n).(type) {
	case nil:
		return nil

	case jsast.Stmt:
		return s

	default:
		return &jsast.Other{Loc: c.loc(n), Kind: n.Type(), Children: []jsast.Node{s}}
	}
}

func (c *converter) stmts(n *sitter.Node) []jsast.Stmt {
	var body []jsast.Stmt
	for child := range namedChildren(n) {
		if s := c.stmt(child); s != nil {
			body = append(body, s)
		}
	}

	return body
}

// firstExpr converts the first named child that is not trivia or type syntax.
func (c *converter) firstExpr(n *sitter.Node) jsast.Expr {
	for child := range namedChildren(n) {
		if x := c.expr(child); x != nil {
			return x
		}
	}

	return nil
}

// unwrap drops parentheses and TypeScript assertions around an expression.
func (c *converter) unwrap(n *sitter.Node) jsast.Node {
	x := c.firstExpr(n)
	if x == nil {
		return nil
	}

	return x
}

func (c *converter) ident(n *sitter.Node) *jsast.Ident {
	return &jsast.Ident{Loc: c.loc(n), Name: c.text(n)}
}

func (c *converter) array(n *sitter.Node) *jsast.ArrayLit {
	a := &jsast.ArrayLit{Loc: c.loc(n)}
	for child := range namedChildren(n) {
		if x := c.expr(child); x != nil {
			a.Elems = append(a.Elems, x)
		}
	}

	return a
}

func (c *converter) member(n *sitter.Node) jsast.Expr {
	x := c.expr(n.ChildByFieldName("object"))
	prop := n.ChildByFieldName("property")

	if x == nil || prop == nil {
		return c.other(n)
	}

	return &jsast.MemberExpr{Loc: c.loc(n), X: x, Name: c.text(prop), Optional: hasOptionalChain(n)}
}

func (c *converter) subscript(n *sitter.Node) jsast.Expr {
	x := c.expr(n.ChildByFieldName("object"))
	index := c.expr(n.ChildByFieldName("index"))

	if x == nil || index == nil {
		return c.other(n)
	}

	return &jsast.IndexExpr{Loc: c.loc(n), X: x, Index: index, Optional: hasOptionalChain(n)}
}

func (c *converter) call(n *sitter.Node) jsast.Expr {
	fun := c.expr(n.ChildByFieldName("function"))
	if fun == nil {
		return c.other(n)
	}

	call := &jsast.CallExpr{Loc: c.loc(n), Fun: fun}

	args := n.ChildByFieldName("arguments")
	if args == nil || args.Type() != nodeArguments {
		// tagged template
		if args != nil {
			if x := c.expr(args); x != nil {
				call.Args = append(call.Args, x)
			}
		}

		return call
	}

	for arg := range namedChildren(args) {
		if x := c.expr(arg); x != nil {
			call.Args = append(call.Args, x)
		}
	}

	return call
}

func (c *converter) object(n *sitter.Node) *jsast.ObjectLit {
	o := &jsast.ObjectLit{Loc: c.loc(n)}

	for child := range namedChildren(n) {
		p := &jsast.Property{Loc: c.loc(child)}

		switch child.Type() {
		case nodePair:
			c.propertyKey(p, child.ChildByFieldName("key"))
			p.Kind = jsast.PropKeyValue
			p.Value = c.expr(child.ChildByFieldName("value"))

		case nodeShorthandPropertyIdent, nodeIdentifier:
			p.Kind = jsast.PropShorthand
			p.Key = c.text(child)
			p.Value = c.ident(child)

		case nodeSpreadElement:
			p.Kind = jsast.PropSpread
			p.Value = c.firstExpr(child)

		case nodeMethodDefinition:
			c.propertyKey(p, child.ChildByFieldName("name"))
			p.Kind = jsast.PropMethod
			p.Value = c.function(child)

		default:
			continue
		}

		o.Props = append(o.Props, p)
	}

	return o
}

// propertyKey fills the key of a property from an object or class member name node.
func (c *converter) propertyKey(p *jsast.Property, key *sitter.Node) {
	if key == nil {
		return
	}

	switch key.Type() {
	case nodeString:
		p.Key = unquote(c.text(key))

	case nodeComputedPropertyName:
		p.Computed = c.firstExpr(key)
		if p.Computed == nil {
			p.Computed = &jsast.Other{Loc: c.loc(key), Kind: key.Type()}
		}

	default:
		p.Key = c.text(key)
	}
}

// function converts function declarations and expressions, arrow functions and methods.
func (c *converter) function(n *sitter.Node) *jsast.FuncLit {
	f := &jsast.FuncLit{Loc: c.loc(n), Arrow: n.Type() == nodeArrowFunction}

	if name := n.ChildByFieldName("name"); name != nil && n.Type() != nodeMethodDefinition {
		f.Name = c.ident(name)
	}

	if param := n.ChildByFieldName("parameter"); param != nil {
		f.Params = append(f.Params, c.pattern(param))
	}

	if params := n.ChildByFieldName("parameters"); params != nil {
		for param := range namedChildren(params) {
			if skipped(param) {
				continue
			}

			f.Params = append(f.Params, c.pattern(param))
		}
	}

	body := n.ChildByFieldName("body")
	switch {
	case body == nil:

	case body.Type() == nodeStatementBlock:
		f.Body = c.stmts(body)

	default:
		f.Result = c.expr(body)
	}

	return f
}

func (c *converter) class(n *sitter.Node) *jsast.ClassLit {
	cl := &jsast.ClassLit{Loc: c.loc(n), Decorators: c.decorators(n)}

	if name := n.ChildByFieldName("name"); name != nil {
		cl.Name = c.ident(name)
	}

	for child := range namedChildren(n) {
		if child.Type() == nodeClassHeritage {
			cl.Super = c.heritage(child)
		}
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		return cl
	}

	for member := range namedChildren(body) {
		switch member.Type() {
		case nodeMethodDefinition:
			cl.Members = c.appendDecorators(cl.Members, member)

			p := &jsast.Property{Loc: c.loc(member), Kind: jsast.PropMethod}
			c.propertyKey(p, member.ChildByFieldName("name"))
			p.Value = c.function(member)
			cl.Members = append(cl.Members, p)

		case nodeFieldDefinition, nodePublicFieldDef:
			cl.Members = c.appendDecorators(cl.Members, member)

			p := &jsast.Property{Loc: c.loc(member), Kind: jsast.PropKeyValue}
			key := member.ChildByFieldName("property")
			if key == nil {
				key = member.ChildByFieldName("name")
			}
			c.propertyKey(p, key)
			p.Value = c.expr(member.ChildByFieldName("value"))
			cl.Members = append(cl.Members, p)

		case nodeClassStaticBlock:
			if b := member.ChildByFieldName("body"); b != nil {
				cl.Members = append(cl.Members, &jsast.BlockStmt{Loc: c.loc(b), Body: c.stmts(b)})
			}

		default:
			if x := c.convert(member); x != nil {
				cl.Members = append(cl.Members, x)
			}
		}
	}

	return cl
}

// decorators converts the decorator children of a class, member or export statement.
func (c *converter) decorators(n *sitter.Node) []jsast.Expr {
	var ds []jsast.Expr
	for child := range namedChildren(n) {
		if child.Type() != nodeDecorator {
			continue
		}

		if x := c.firstExpr(child); x != nil {
			ds = append(ds, x)
		}
	}

	return ds
}

func (c *converter) appendDecorators(members []jsast.Node, n *sitter.Node) []jsast.Node {
	for _, d := range c.decorators(n) {
		members = append(members, d)
	}

	return members
}

// heritage returns the superclass expression of a class_heritage node.
func (c *converter) heritage(n *sitter.Node) jsast.Expr {
	for child := range namedChildren(n) {
		switch child.Type() {
		case nodeExtendsClause:
			if v := child.ChildByFieldName("value"); v != nil {
				return c.expr(v)
			}

			return c.firstExpr(child)

		case nodeImplementsClause:
			continue

		default:
			if x := c.expr(child); x != nil {
				return x
			}
		}
	}

	return nil
}

func (c *converter) varDecl(n *sitter.Node) *jsast.VarDecl {
	d := &jsast.VarDecl{Loc: c.loc(n), Kind: jsast.DeclVar}

	if kind := n.ChildByFieldName("kind"); kind != nil {
		d.Kind = declKind(kind.Type())
	} else if n.ChildCount() > 0 {
		d.Kind = declKind(n.Child(0).Type())
	}

	for child := range namedChildren(n) {
		if child.Type() != nodeVariableDeclarator {
			continue
		}

		decl := &jsast.Declarator{Loc: c.loc(child), Target: c.pattern(child.ChildByFieldName("name"))}
		decl.Init = c.expr(child.ChildByFieldName("value"))
		d.Decls = append(d.Decls, decl)
	}

	return d
}

func declKind(keyword string) jsast.DeclKind {
	switch keyword {
	case nodeConst:
		return jsast.DeclConst

	case nodeLet:
		return jsast.DeclLet

	default:
		return jsast.DeclVar
	}
}

func (c *converter) importDecl(n *sitter.Node) *jsast.ImportDecl {
	d := &jsast.ImportDecl{Loc: c.loc(n)}

	if src := n.ChildByFieldName("source"); src != nil {
		d.Source = unquote(c.text(src))
	}

	for child := range namedChildren(n) {
		if child.Type() != nodeImportClause {
			continue
		}

		for item := range namedChildren(child) {
			switch item.Type() {
			case nodeIdentifier:
				d.Names = append(d.Names, c.ident(item))

			case nodeNamespaceImport:
				for name := range namedChildren(item) {
					if name.Type() == nodeIdentifier {
						d.Names = append(d.Names, c.ident(name))
					}
				}

			case nodeNamedImports:
				for spec := range namedChildren(item) {
					if spec.Type() != nodeImportSpecifier {
						continue
					}

					name := spec.ChildByFieldName("alias")
					if name == nil {
						name = spec.ChildByFieldName("name")
					}

					if name != nil && name.Type() == nodeIdentifier {
						d.Names = append(d.Names, c.ident(name))
					}
				}
			}
		}
	}

	return d
}

func (c *converter) export(n *sitter.Node) jsast.Stmt {
	isDefault := false
	for i := range int(n.ChildCount()) {
		if child := n.Child(i); child != nil && child.Type() == nodeDefault {
			isDefault = true
			break
		}
	}

	if decl := n.ChildByFieldName("declaration"); decl != nil {
		if isDefault {
			switch decl.Type() {
			case nodeFunctionDeclaration, nodeGeneratorFuncDecl:
				return &jsast.ExportDefault{Loc: c.loc(n), Value: c.function(decl), Decl: true}

			case nodeClassDeclaration, nodeAbstractClassDecl:
				return &jsast.ExportDefault{Loc: c.loc(n), Value: c.exportedClass(n, decl), Decl: true}
			}
		}

		if t := decl.Type(); t == nodeClassDeclaration || t == nodeAbstractClassDecl {
			return &jsast.ExportDecl{Loc: c.loc(n), Decl: &jsast.ClassDecl{Loc: c.loc(decl), Class: c.exportedClass(n, decl)}}
		}

		s := c.stmt(decl)
		if s == nil {
			return nil // type-only export
		}

		return &jsast.ExportDecl{Loc: c.loc(n), Decl: s}
	}

	if value := n.ChildByFieldName("value"); value != nil {
		x := c.expr(value)
		if x == nil {
			return nil
		}

		if cl, ok := x.(*jsast.ClassLit); ok {
			cl.Decorators = append(c.decorators(n), cl.Decorators...)
		}

		return &jsast.ExportDefault{Loc: c.loc(n), Value: x}
	}

	// export { a, b as c }, export * from "m"
	return c.other(n)
}

// exportedClass converts a class declaration with the decorators written before export.
func (c *converter) exportedClass(export, decl *sitter.Node) *jsast.ClassLit {
	cl := c.class(decl)
	cl.Decorators = append(c.decorators(export), cl.Decorators...)

	return cl
}

func (c *converter) catch(n *sitter.Node) *jsast.Other {
	o := &jsast.Other{Loc: c.loc(n), Kind: n.Type()}

	if param := n.ChildByFieldName("parameter"); param != nil {
		o.Children = append(o.Children, c.pattern(param))
	}

	if body := n.ChildByFieldName("body"); body != nil {
		o.Children = append(o.Children, &jsast.BlockStmt{Loc: c.loc(body), Body: c.stmts(body)})
	}

	return o
}

// forIn converts for-in and for-of loops. A declared loop variable is kept as a
// [jsast.VarDecl] so it binds in the loop scope.
func (c *converter) forIn(n *sitter.Node) *jsast.Other {
	o := &jsast.Other{Loc: c.loc(n), Kind: n.Type()}

	left := n.ChildByFieldName("left")
	if kind := n.ChildByFieldName("kind"); kind != nil && left != nil {
		o.Children = append(o.Children, &jsast.VarDecl{
			Loc:   c.loc(left),
			Kind:  declKind(kind.Type()),
			Decls: []*jsast.Declarator{{Loc: c.loc(left), Target: c.pattern(left)}},
		})
	} else if x := c.expr(left); x != nil {
		o.Children = append(o.Children, x)
	}

	if x := c.expr(n.ChildByFieldName("right")); x != nil {
		o.Children = append(o.Children, x)
	}

	if s := c.stmt(n.ChildByFieldName("body")); s != nil {
		o.Children = append(o.Children, s)
	}

	return o
}

// switchBody converts the case clauses of a switch into one block, since lexical
// declarations of all clauses share the scope of the switch body. Each clause becomes
// its test expression followed by its statements.
func (c *converter) switchBody(n *sitter.Node) *jsast.BlockStmt {
	b := &jsast.BlockStmt{Loc: c.loc(n)}

	for clause := range namedChildren(n) {
		t := clause.Type()
		if t != nodeSwitchCase && t != nodeSwitchDefault {
			if s := c.stmt(clause); s != nil {
				b.Body = append(b.Body, s)
			}

			continue
		}

		value := clause.ChildByFieldName("value")
		if x := c.expr(value); x != nil {
			b.Body = append(b.Body, &jsast.Other{Loc: c.loc(clause), Kind: t, Children: []jsast.Node{x}})
		}

		for child := range namedChildren(clause) {
			if value != nil && child.Equal(value) {
				continue
			}

			if s := c.stmt(child); s != nil {
				b.Body = append(b.Body, s)
			}
		}
	}

	return b
}

func skipped(n *sitter.Node) bool {
	t := n.Type()
	if _, ok := typeOnly[t]; ok {
		return true
	}

	return t == nodeComment
}

func hasOptionalChain(n *sitter.Node) bool {
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child != nil && (child.Type() == nodeOptionalChain || child.Type() == "?.") {
			return true
		}
	}

	return false
}
