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

// Package jsast is a reduced syntax tree for JavaScript and TypeScript modules.
//
// It keeps the constructs translation-key analysis needs (declarations, functions,
// classes, object literals and member chains) as dedicated node types. Everything
// else is kept as an [Other] node with its children, so walkers still reach nested
// expressions. Identifiers carry a [Ref] assigned by binding resolution.
package jsast

// Node is implemented by all syntax tree nodes.
type Node interface {
	Pos() Position
	node()
}

// Expr is an expression node.
type Expr interface {
	Node
	expr()
}

// Stmt is a statement or module item.
type Stmt interface {
	Node
	stmt()
}

// Loc is embedded in all nodes to record their source position.
type Loc struct {
	Start Position
}

// Pos returns the start position of the node.
func (l Loc) Pos() Position { return l.Start }

// Module is one parsed source file.
type Module struct {
	Loc
	Path    string
	Body    []Stmt
	Symbols []Symbol // indexed by Ref-1
}

// Symbol returns the symbol for a reference, or the zero [Symbol] for [InvalidRef].
func (m *Module) Symbol(ref Ref) Symbol {
	if !ref.Valid() || int(ref) > len(m.Symbols) {
		return Symbol{}
	}

	return m.Symbols[ref-1]
}

// Expressions.
type (
	// Ident is an identifier reference or binding occurrence.
	Ident struct {
		Loc
		Name string
		Ref  Ref
	}

	// StringLit is a string literal with escapes decoded.
	StringLit struct {
		Loc
		Value string
	}

	// ObjectLit is an object literal.
	ObjectLit struct {
		Loc
		Props []*Property
	}

	// ArrayLit is an array literal. Holes are omitted.
	ArrayLit struct {
		Loc
		Elems []Expr
	}

	// MemberExpr is a static property access: X.Name or X?.Name.
	MemberExpr struct {
		Loc
		X        Expr
		Name     string
		Optional bool
	}

	// IndexExpr is a computed property access: X[Index].
	IndexExpr struct {
		Loc
		X        Expr
		Index    Expr
		Optional bool
	}

	// CallExpr is a function call.
	CallExpr struct {
		Loc
		Fun  Expr
		Args []Expr
	}

	// SpreadExpr is a spread element in a call or array literal.
	SpreadExpr struct {
		Loc
		X Expr
	}

	// FuncLit is a function, arrow function or method body.
	// Name is nil for anonymous functions and for methods.
	FuncLit struct {
		Loc
		Name   *Ident
		Params []*Pattern
		Body   []Stmt
		Result Expr // concise arrow function body
		Arrow  bool
	}

	// ClassLit is a class body. Decorators of the class itself are kept in
	// Decorators, member decorators precede their member in Members.
	ClassLit struct {
		Loc
		Decorators []Expr
		Name       *Ident
		Super      Expr
		Members    []Node
	}

	// Other is any construct without a dedicated type. It is both an
	// expression and a statement, and keeps its children in source order.
	Other struct {
		Loc
		Kind     string
		Children []Node
	}
)

// PropertyKind distinguishes object literal members.
type PropertyKind uint8

const (
	// PropKeyValue is a key: value property.
	PropKeyValue PropertyKind = iota

	// PropShorthand is a shorthand property { x }.
	PropShorthand

	// PropMethod is a method, getter or setter.
	PropMethod

	// PropSpread is a spread property { ...x }.
	PropSpread
)

// Property is one member of an object literal.
type Property struct {
	Loc
	Kind PropertyKind

	// Key is the property name for non-computed keys.
	Key string

	// Computed is the key expression of a computed key [expr].
	Computed Expr

	// Value is the property value, the method function or the spread argument.
	Value Expr
}

// IsComputed reports whether the property uses a computed key.
func (p *Property) IsComputed() bool { return p.Computed != nil }

// Pattern is a binding target: an identifier or a destructuring pattern.
type Pattern struct {
	Loc

	// Names are the bound identifiers in source order.
	Names []*Ident

	// Exprs are expressions embedded in the pattern: defaults and computed keys.
	Exprs []Expr

	// Destructured is set for object and array patterns.
	Destructured bool
}

// Ident returns the bound identifier if the pattern is a plain identifier.
func (p *Pattern) Ident() (*Ident, bool) {
	if p == nil || p.Destructured || len(p.Names) != 1 {
		return nil, false
	}

	return p.Names[0], true
}

// DeclKind is the keyword of a variable declaration.
type DeclKind uint8

const (
	// DeclVar is a var declaration.
	DeclVar DeclKind = iota

	// DeclLet is a let declaration.
	DeclLet

	// DeclConst is a const declaration.
	DeclConst
)

// Lexical reports whether the declaration is block scoped.
func (k DeclKind) Lexical() bool { return k != DeclVar }

// Statements.
type (
	// VarDecl is a var, let or const declaration.
	VarDecl struct {
		Loc
		Kind  DeclKind
		Decls []*Declarator
	}

	// Declarator is one target = init entry of a [VarDecl].
	Declarator struct {
		Loc
		Target *Pattern
		Init   Expr
	}

	// FuncDecl is a function declaration.
	FuncDecl struct {
		Loc
		Func *FuncLit
	}

	// ClassDecl is a class declaration.
	ClassDecl struct {
		Loc
		Class *ClassLit
	}

	// ImportDecl is an import declaration.
	ImportDecl struct {
		Loc
		Names  []*Ident
		Source string
	}

	// ExportDecl is export followed by a declaration.
	ExportDecl struct {
		Loc
		Decl Stmt
	}

	// ExportDefault is an export default item. Value is a *[FuncLit] or *[ClassLit]
	// for declaration forms and an arbitrary expression otherwise.
	ExportDefault struct {
		Loc
		Value Expr

		// Decl is set for export default function/class declarations,
		// whose name binds in the module scope.
		Decl bool
	}

	// ExprStmt is an expression statement.
	ExprStmt struct {
		Loc
		X Expr
	}

	// BlockStmt is a braced statement list.
	BlockStmt struct {
		Loc
		Body []Stmt
	}
)

func (*Module) node()        {}
func (*Ident) node()         {}
func (*StringLit) node()     {}
func (*ObjectLit) node()     {}
func (*ArrayLit) node()      {}
func (*MemberExpr) node()    {}
func (*IndexExpr) node()     {}
func (*CallExpr) node()      {}
func (*SpreadExpr) node()    {}
func (*FuncLit) node()       {}
func (*ClassLit) node()      {}
func (*Other) node()         {}
func (*Property) node()      {}
func (*Pattern) node()       {}
func (*VarDecl) node()       {}
func (*Declarator) node()    {}
func (*FuncDecl) node()      {}
func (*ClassDecl) node()     {}
func (*ImportDecl) node()    {}
func (*ExportDecl) node()    {}
func (*ExportDefault) node() {}
func (*ExprStmt) node()      {}
func (*BlockStmt) node()     {}

func (*Ident) expr()      {}
func (*StringLit) expr()  {}
func (*ObjectLit) expr()  {}
func (*ArrayLit) expr()   {}
func (*MemberExpr) expr() {}
func (*IndexExpr) expr()  {}
func (*CallExpr) expr()   {}
func (*SpreadExpr) expr() {}
func (*FuncLit) expr()    {}
func (*ClassLit) expr()   {}
func (*Other) expr()      {}

func (*Other) stmt()         {}
func (*VarDecl) stmt()       {}
func (*FuncDecl) stmt()      {}
func (*ClassDecl) stmt()     {}
func (*ImportDecl) stmt()    {}
func (*ExportDecl) stmt()    {}
func (*ExportDefault) stmt() {}
func (*ExprStmt) stmt()      {}
func (*BlockStmt) stmt()     {}
