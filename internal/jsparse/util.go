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
	"iter"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// namedChildren iterates over the named children of a node.
func namedChildren(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		if n == nil {
			return
		}

		for i := range int(n.NamedChildCount()) {
			child := n.NamedChild(i)
			if child == nil {
				continue
			}

			if !yield(child) {
				return
			}
		}
	}
}

// unquote decodes a JavaScript string literal including its quotes.
// Malformed escapes are kept verbatim.
func unquote(lit string) string {
	if len(lit) < 2 {
		return lit
	}

	if q := lit[0]; (q != '"' && q != '\'') || lit[len(lit)-1] != q {
		return lit
	}

	s := lit[1 : len(lit)-1]
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for len(s) > 0 {
		i := strings.IndexByte(s, '\\')
		if i < 0 {
			b.WriteString(s)
			break
		}

		b.WriteString(s[:i])
		s = s[i+1:]

		if s == "" {
			b.WriteByte('\\')
			break
		}

		n := unescape(&b, s)
		s = s[n:]
	}

	return b.String()
}

// unescape writes the escape sequence at the start of s (after the backslash)
// and returns the number of bytes consumed.
func unescape(b *strings.Builder, s string) int {
	switch c := s[0]; c {
	case 'n':
		b.WriteByte('\n')

	case 't':
		b.WriteByte('\t')

	case 'r':
		b.WriteByte('\r')

	case 'b':
		b.WriteByte('\b')

	case 'f':
		b.WriteByte('\f')

	case 'v':
		b.WriteByte('\v')

	case '0':
		if len(s) > 1 && s[1] >= '0' && s[1] <= '9' {
			b.WriteString("\\0") // legacy octal
			return 1
		}
		b.WriteByte(0)

	case '\r':
		// line continuation
		if len(s) > 1 && s[1] == '\n' {
			return 2
		}

	case '\n':

	case 'x':
		if len(s) >= 3 {
			if v, err := strconv.ParseUint(s[1:3], 16, 8); err == nil {
				b.WriteRune(rune(v))
				return 3
			}
		}
		b.WriteString("\\x")

	case 'u':
		if r, n := unicodeEscape(s[1:]); n > 0 {
			b.WriteRune(r)
			return n + 1
		}
		b.WriteString("\\u")

	default:
		r, n := utf8.DecodeRuneInString(s)
		b.WriteRune(r)

		return n
	}

	return 1
}

// unicodeEscape decodes XXXX or {X...} and returns the rune and the consumed length.
func unicodeEscape(s string) (rune, int) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0
		}

		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0
		}

		return rune(v), end + 1
	}

	if len(s) < 4 {
		return 0, 0
	}

	v, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, 0
	}

	r := rune(v)
	if utf16.IsSurrogate(r) && len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		if lo, err := strconv.ParseUint(s[6:10], 16, 16); err == nil {
			if pair := utf16.DecodeRune(r, rune(lo)); pair != utf8.RuneError {
				return pair, 10
			}
		}
	}

	return r, 4
}
