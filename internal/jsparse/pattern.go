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

// pattern converts a binding target. Nested defaults and computed keys are kept as expressions.
func (c *converter) pattern(n *sitter.Node) *jsast.Pattern {
	if n == nil {
		return &jsast.Pattern{}
	}

	p := &jsast.Pattern{Loc: c.loc(n)}
	c.collect(p, n)

	return p
}

func (c *converter) collect(p *jsast.Pattern, n *sitter.Node) {
	if n == nil || skipped(n) {
		return
	}

	switch n.Type() {
	case nodeIdentifier, nodeShorthandPropertyIdentP:
		p.Names = append(p.Names, c.ident(n))

	case nodeObjectPattern, nodeArrayPattern:
		p.Destructured = true
		for child := range namedChildren(n) {
			c.collect(p, child)
		}

	case nodePairPattern:
		if key := n.ChildByFieldName("key"); key != nil && key.Type() == nodeComputedPropertyName {
			c.patternExpr(p, key)
		}
		c.collect(p, n.ChildByFieldName("value"))

	case nodeAssignmentPattern, nodeObjectAssignmentPattern:
		c.collect(p, n.ChildByFieldName("left"))
		c.patternExpr(p, n.ChildByFieldName("right"))

	case nodeRestPattern:
		for child := range namedChildren(n) {
			c.collect(p, child)
		}

	case nodeRequiredParameter, nodeOptionalParameter:
		c.collect(p, n.ChildByFieldName("pattern"))
		c.patternExpr(p, n.ChildByFieldName("value"))

	default:
		// assignment targets such as obj.prop in for-in heads
		c.patternExpr(p, n)
	}
}

func (c *converter) patternExpr(p *jsast.Pattern, n *sitter.Node) {
	if x := c.expr(n); x != nil {
		p.Exprs = append(p.Exprs, x)
	}
}
