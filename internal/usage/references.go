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
	"errors"

	"github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
	"github.com/wtlin1228/lokalise-key-usage/internal/labels"
)

// reference resolves a member chain rooted at a tracked binding and records its keys.
// It reports false when x is not such a chain, so the caller descends instead.
func (c *collector) reference(x jsast.Expr, owner Owner) bool {
	chain, ok := labels.ChainOf(x)
	if !ok {
		return false
	}

	tree, ok := c.trees[chain.Root.Ref]
	if !ok {
		return false
	}

	// computed indexes may read other chains
	c.walkIndexes(x, owner)

	keys, err := labels.Resolve(chain, tree)
	if err != nil {
		var e *diag.Error
		if errors.As(err, &e) {
			c.result.Failures = append(c.result.Failures, e)
		}

		return true
	}

	c.record(owner, chain.String(), x.Pos(), keys)

	return true
}

func (c *collector) walkIndexes(x jsast.Expr, owner Owner) {
	for {
		switch e := x.(type) {
		case *jsast.MemberExpr:
			x = e.X

		case *jsast.IndexExpr:
			if _, ok := e.Index.(*jsast.StringLit); !ok {
				c.walk(e.Index, owner)
			}
			x = e.X

		default:
			return
		}
	}
}

// bareReference records all keys of a tracked binding used as a value.
func (c *collector) bareReference(id *jsast.Ident, owner Owner) {
	if !c.bare {
		return
	}

	tree, ok := c.trees[id.Ref]
	if !ok {
		return
	}

	c.record(owner, id.Name, id.Pos(), tree.Leaves())
}

func (c *collector) record(owner Owner, chain string, pos jsast.Position, keys keyset.Set) {
	c.result.References = append(c.result.References, Reference{Owner: owner, Chain: chain, Pos: pos, Keys: keys})

	if !owner.Valid() {
		c.result.Unowned.AddAll(keys)
		return
	}

	c.result.Usage.Add(owner.Name, keys)
}
