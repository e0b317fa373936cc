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

import "github.com/wtlin1228/lokalise-key-usage/internal/jsast"

// item visits one top-level item of the module and decides its owner:
//
//   - function and class declarations are owned by their name;
//   - each name = init entry of a variable declaration is owned by name;
//   - export default of a named function or class is owned by the name, of an unnamed
//     function or class, an array or an object literal by [AnonymousDefault];
//   - export default of an identifier is skipped;
//   - everything else is walked with an empty slot.
func (c *collector) item(s jsast.Stmt) {
	switch s := s.(type) {
	case *jsast.ExportDecl:
		c.item(s.Decl)

	case *jsast.ExportDefault:
		c.exportDefault(s)

	case *jsast.VarDecl:
		for _, d := range s.Decls {
			c.declarator(d)
		}

	default:
		c.walk(s, Owner{})
	}
}

// declarator visits a top-level name = init entry. Destructuring declarations bind
// several names and start no owner.
func (c *collector) declarator(d *jsast.Declarator) {
	var owner Owner
	if id, ok := d.Target.Ident(); ok {
		owner = Owner{Name: id.Name, Pos: id.Pos()}
	}

	c.walk(d.Target, owner)
	c.walk(d.Init, owner)
}

func (c *collector) exportDefault(s *jsast.ExportDefault) {
	switch v := s.Value.(type) {
	case *jsast.FuncLit:
		c.walk(v, c.namedOrAnonymous(v.Name))

	case *jsast.ClassLit:
		c.walk(v, c.namedOrAnonymous(v.Name))

	case *jsast.ArrayLit, *jsast.ObjectLit:
		c.walk(v, c.anonymous)

	case *jsast.Ident:
		// export default Foo: Foo is attributed where it is declared

	default:
		c.walk(v, Owner{})
	}
}

func (c *collector) namedOrAnonymous(name *jsast.Ident) Owner {
	if name == nil {
		return c.anonymous
	}

	return Owner{Name: name.Name, Pos: name.Pos()}
}
