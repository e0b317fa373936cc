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
	"github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
)

// AnonymousDefault is the owner name of unnamed default exports.
// It is a reserved word, so no binding can carry it.
const AnonymousDefault = "default"

// Owner identifies the top-level construct that usage is attributed to.
// The zero value is the empty slot.
type Owner struct {
	Name string
	Pos  jsast.Position
}

// Valid reports whether the owner slot is set.
func (o Owner) Valid() bool { return o.Name != "" }

// anonymousDefault returns the owner of unnamed default exports in module m.
func anonymousDefault(m *jsast.Module) Owner {
	return Owner{Name: AnonymousDefault, Pos: m.Pos()}
}

// Reference is one resolved member chain.
type Reference struct {
	// Owner is the active owner, or the empty slot for unowned references.
	Owner Owner

	// Chain is the member chain in source form.
	Chain string

	Pos  jsast.Position
	Keys keyset.Set
}

// Result is the outcome of walking one module.
type Result struct {
	// Usage maps owners to their referenced keys.
	Usage Map

	// Unowned holds keys referenced outside any owner. They are not part of Usage.
	Unowned keyset.Set

	// References lists all resolved chains in source order.
	References []Reference

	// Failures are the non-fatal [diag.LookupFailure]s of the walk.
	Failures []*diag.Error
}

func newResult() Result {
	return Result{Usage: make(Map), Unowned: keyset.New()}
}
