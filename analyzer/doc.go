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

// Package analyzer collects which translation keys each top-level binding of a
// JavaScript or TypeScript code base uses.
//
// # Overview
//
// Modules declare their labels with a call like
//
//	const LABELS = translate({
//	  title: "i18n.pet.party",
//	  bird: { name: "i18n.bird", size: "i18n.bird.size" },
//	});
//
// and read them through member chains. The analyzer resolves every chain rooted at
// the label binding to the keys it can reach and attributes them to the enclosing
// top-level declaration:
//
//	export function Title() {
//	  return LABELS.title; // Title uses i18n.pet.party
//	}
//
//	const Bird = () => <p>{LABELS.bird.size}</p>; // Bird uses i18n.bird.size
//
// A chain that stops early, or that indexes with a runtime value, uses all keys below
// the node it reached. Objects with computed keys ([PET.bird]: "i18n.bird") can only be
// indexed dynamically, so any access yields all of their keys.
//
// # Output
//
// [Result.Usage] maps owner names to key sets. Unnamed default exports are reported
// under [AnonymousDefault].
package analyzer
