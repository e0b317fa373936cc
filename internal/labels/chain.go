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
	"slices"
	"strconv"
	"strings"

	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
)

// Segment is one property access of a member chain.
type Segment struct {
	// Name is the accessed property for .name, ?.name and ["name"] accesses.
	Name string

	// Dynamic is set for [expr] accesses with a non-literal index.
	Dynamic bool

	Pos jsast.Position
}

// Chain is a member access chain such as LABELS.bird.size.
type Chain struct {
	Root     *jsast.Ident
	Segments []Segment
}

// ChainOf decomposes a member or index expression into its root identifier and the
// accessed properties. It fails when the innermost base is not a bare identifier.
func ChainOf(x jsast.Expr) (Chain, bool) {
	var segs []Segment

	for {
		switch e := x.(type) {
		case *jsast.MemberExpr:
			segs = append(segs, Segment{Name: e.Name, Pos: e.Pos()})
			x = e.X

		case *jsast.IndexExpr:
			if s, ok := e.Index.(*jsast.StringLit); ok {
				segs = append(segs, Segment{Name: s.Value, Pos: e.Pos()})
			} else {
				segs = append(segs, Segment{Dynamic: true, Pos: e.Pos()})
			}
			x = e.X

		case *jsast.Ident:
			slices.Reverse(segs)
			return Chain{Root: e, Segments: segs}, true

		default:
			return Chain{}, false
		}
	}
}

// String renders the chain in source form, with dynamic accesses as [...].
func (c Chain) String() string {
	return c.prefix(len(c.Segments))
}

func (c Chain) prefix(n int) string {
	var b strings.Builder

	if c.Root != nil {
		b.WriteString(c.Root.Name)
	}

	for _, s := range c.Segments[:n] {
		switch {
		case s.Dynamic:
			b.WriteString("[...]")

		case isIdentifierName(s.Name):
			b.WriteByte('.')
			b.WriteString(s.Name)

		default:
			b.WriteByte('[')
			b.WriteString(strconv.Quote(s.Name))
			b.WriteByte(']')
		}
	}

	return b.String()
}

func isIdentifierName(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || r == '$', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':

		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}

		default:
			return false
		}
	}

	return true
}
