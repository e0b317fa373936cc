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

package analyzer

import (
	"github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
	"github.com/wtlin1228/lokalise-key-usage/internal/run"
	"github.com/wtlin1228/lokalise-key-usage/internal/usage"
)

type (
	// Result is the outcome of [Analyzer.Run].
	Result = run.Result

	// ModuleResult is the outcome for a single module.
	ModuleResult = run.ModuleResult

	// Failure is a file that could not be analyzed.
	Failure = run.Failure

	// Map maps owner names to the keys they use.
	Map = usage.Map

	// KeySet is a set of translation keys.
	KeySet = keyset.Set
)

// AnonymousDefault is the owner name of an unnamed default export.
const AnonymousDefault = usage.AnonymousDefault

// Errors reported in [Result.Failures] and [ModuleResult.Failures].
var (
	ErrParse              = diag.ErrParse
	ErrConstruction       = diag.ErrConstruction
	ErrConventionMismatch = diag.ErrConventionMismatch
	ErrLookup             = diag.ErrLookup
)
