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
	"fmt"

	"github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
)

// Resolve returns the translation keys a member chain denotes.
//
// A chain ending on a translation key yields exactly that key. Reaching a computed level or
// a dynamic access stops resolution and yields every key below the current level, as does a
// chain ending on a nested level. Segments after a translation key are ignored. An unknown
// property name yields a [diag.LookupFailure] and no keys.
func Resolve(c Chain, t *Tree) (keyset.Set, error) {
	cur := t

	for i, seg := range c.Segments {
		if cur.computed || seg.Dynamic {
			return cur.Leaves(), nil
		}

		l, ok := cur.Lookup(seg.Name)
		if !ok {
			msg := fmt.Sprintf("%s has no label %q", c.prefix(i), seg.Name)
			return nil, diag.New(diag.LookupFailure, seg.Pos, msg)
		}

		if l.IsKey() {
			return keyset.New(l.Key), nil
		}

		cur = l.Tree
	}

	return cur.Leaves(), nil
}
