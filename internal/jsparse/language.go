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
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Language selects the tree-sitter grammar for a source file.
type Language uint8

const (
	// JavaScript covers .js, .jsx, .mjs and .cjs files. The grammar includes JSX.
	JavaScript Language = iota

	// TypeScript covers .ts, .mts and .cts files.
	TypeScript

	// TSX covers .tsx files.
	TSX
)

var extensions = map[string]Language{
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
}

// LanguageFor returns the language of a file based on its extension.
func LanguageFor(path string) (Language, bool) {
	if strings.HasSuffix(path, ".d.ts") {
		return 0, false // declaration files carry no runtime code
	}

	lang, ok := extensions[strings.ToLower(filepath.Ext(path))]

	return lang, ok
}

// Supported reports whether the file has a supported source extension.
func Supported(path string) bool {
	_, ok := LanguageFor(path)
	return ok
}

// String returns the name of the language.
func (l Language) String() string {
	switch l {
	case JavaScript:
		return "javascript"

	case TypeScript:
		return "typescript"

	case TSX:
		return "tsx"

	default:
		return "unknown"
	}
}

func (l Language) grammar() *sitter.Language {
	switch l {
	case TypeScript:
		return typescript.GetLanguage()

	case TSX:
		return tsx.GetLanguage()

	default:
		return javascript.GetLanguage()
	}
}
