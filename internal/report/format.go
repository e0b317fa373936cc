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

package report

import (
	"fmt"
	"strings"
)

// Format selects the output encoding.
type Format uint8

const (
	// FormatText is human readable, optionally colored text.
	FormatText Format = iota

	// FormatJSON is indented JSON.
	FormatJSON

	// FormatYAML is YAML.
	FormatYAML
)

// String returns the name of the format.
func (f Format) String() string {
	text, err := f.MarshalText()
	if err != nil {
		return fmt.Sprintf("Format(%d)", f)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case FormatText:
		return []byte("text"), nil

	case FormatJSON:
		return []byte("json"), nil

	case FormatYAML:
		return []byte("yaml"), nil

	default:
		return nil, fmt.Errorf("unknown format %d", f)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "text", "txt":
		*f = FormatText

	case "json":
		*f = FormatJSON

	case "yaml", "yml":
		*f = FormatYAML

	default:
		return fmt.Errorf("unknown format %q", string(text))
	}

	return nil
}
