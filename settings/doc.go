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

/*
Package settings reads key usage configuration files.

# Usage

Add a file `.keyusage.yaml` to your project root:

	---
	binding: LABELS
	translate: translate
	lazy-tuples: true
	exclude:
	  - "**/*.test.*"
	  - "storybook"
	whitelist:
	  - "i18n.error.*"

Settings that are not present keep their defaults. JSON files with the same keys are
accepted too. Command line flags override the file.
*/
package settings
