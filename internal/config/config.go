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

package config

// Behavior represents switches of the analysis and the driver.
type Behavior uint8

const (
	// LazyTuples accepts ["key", ...] array values in translate() literals.
	LazyTuples Behavior = 1 << iota

	// BareReferences records all keys for a tracked binding used as a value.
	BareReferences

	// FailFast stops a run at the first failed file.
	FailFast

	// GitIgnore skips files ignored by the enclosing git repository.
	GitIgnore
)

// DefaultBehavior returns the default behavior switches.
func DefaultBehavior() BitMask[Behavior] {
	return NewBitMask(GitIgnore)
}
