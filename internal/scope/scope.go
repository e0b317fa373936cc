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

// Package scope resolves JavaScript identifiers to their bindings.
//
// Resolution follows the lexical scoping rules of ECMAScript modules:
//   - var declarations and function declarations in function bodies hoist to the function scope
//   - let, const, class and import bindings are visible in their whole block
//   - parameters bind in the function scope, catch parameters in the catch clause
//   - the name of a function or class expression binds only inside the expression
//
// Names without a declaration share one unbound [jsast.Ref] per name.
package scope

import "github.com/wtlin1228/lokalise-key-usage/internal/jsast"

// Scope is one lexical scope.
type Scope struct {
	parent   *Scope
	names    map[string]jsast.Ref
	function bool
}

// newScope creates a new child scope of parent.
// Function scopes (including the module scope) receive hoisted var declarations.
func newScope(parent *Scope, function bool) *Scope {
	return &Scope{parent: parent, names: make(map[string]jsast.Ref), function: function}
}

// Parent returns the enclosing scope, or nil for the module scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Lookup finds the binding of name in this scope or its parents.
func (s *Scope) Lookup(name string) (jsast.Ref, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if ref, ok := scope.names[name]; ok {
			return ref, true
		}
	}

	return jsast.InvalidRef, false
}

// functionScope returns the closest enclosing function or module scope.
func (s *Scope) functionScope() *Scope {
	scope := s
	for !scope.function && scope.parent != nil {
		scope = scope.parent
	}

	return scope
}
