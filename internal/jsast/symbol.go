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

// Ref is the stable identity of a binding within one [Module].
// Identifiers referring to the same declaration carry the same Ref.
type Ref uint32

// InvalidRef is the Ref of an identifier that has not been resolved.
const InvalidRef Ref = 0

// Valid reports whether the reference was resolved.
func (r Ref) Valid() bool { return r != InvalidRef }

// SymbolKind describes how a binding was introduced.
type SymbolKind uint8

const (
	// SymbolUnbound is a name without a declaration in the module, e.g. a global.
	SymbolUnbound SymbolKind = iota

	// SymbolVar is a var declaration.
	SymbolVar

	// SymbolLet is a let declaration.
	SymbolLet

	// SymbolConst is a const declaration.
	SymbolConst

	// SymbolFunction is a function declaration or a named function expression.
	SymbolFunction

	// SymbolClass is a class declaration or a named class expression.
	SymbolClass

	// SymbolParam is a function or catch clause parameter.
	SymbolParam

	// SymbolImport is an imported binding.
	SymbolImport
)

// Symbol is a declared (or unbound) name.
type Symbol struct {
	Name string
	Kind SymbolKind

	// TopLevel is set for bindings declared in the module scope.
	TopLevel bool

	// Decl is the position of the declaring identifier.
	Decl Position
}
