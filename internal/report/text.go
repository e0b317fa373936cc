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
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/run"
)

// unownedHeading titles keys referenced outside any owner.
const unownedHeading = "(unowned)"

// palette holds the text colors. Colors are disabled unless [Writer.Color] is set.
type palette struct {
	file, owner, unowned, failure, warning *color.Color
}

func (w Writer) palette() palette {
	p := palette{
		file:    color.New(color.Bold),
		owner:   color.New(color.FgCyan),
		unowned: color.New(color.FgMagenta),
		failure: color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgYellow),
	}

	for _, c := range [...]*color.Color{p.file, p.owner, p.unowned, p.failure, p.warning} {
		if w.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (w Writer) textFiles(out io.Writer, files []run.ModuleResult) error {
	p := w.palette()

	for _, f := range files {
		if len(f.Usage) == 0 && f.Unowned.Len() == 0 {
			continue
		}

		if _, err := p.file.Fprintln(out, f.Path); err != nil {
			return err
		}

		if err := w.textDocument(out, document{Usage: f.Usage, Unowned: f.Unowned}, "  "); err != nil {
			return err
		}
	}

	return nil
}

func (w Writer) textDocument(out io.Writer, doc document, indent string) error {
	p := w.palette()

	for _, owner := range doc.Usage.Owners() {
		if _, err := p.owner.Fprintf(out, "%s%s\n", indent, owner); err != nil {
			return err
		}

		for _, k := range doc.Usage[owner].Sorted() {
			if _, err := fmt.Fprintf(out, "%s  %s\n", indent, k); err != nil {
				return err
			}
		}
	}

	if doc.Unowned.Len() == 0 {
		return nil
	}

	if _, err := p.unowned.Fprintf(out, "%s%s\n", indent, unownedHeading); err != nil {
		return err
	}

	for _, k := range doc.Unowned.Sorted() {
		if _, err := fmt.Fprintf(out, "%s  %s\n", indent, k); err != nil {
			return err
		}
	}

	return nil
}

// Diagnostics writes the failed files and the lookup failures of a run as text.
func (w Writer) Diagnostics(out io.Writer, res *run.Result) error {
	p := w.palette()

	for _, f := range res.Failures {
		if err := writeError(out, p.failure, f.Path, f.Err); err != nil {
			return err
		}
	}

	for _, m := range res.Files {
		for _, e := range m.Failures {
			if err := writeError(out, p.warning, m.Path, e); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeError writes one error line: location, highlighted kind and message.
func writeError(out io.Writer, c *color.Color, path string, err error) error {
	var e *diag.Error
	if !errors.As(err, &e) {
		_, werr := fmt.Fprintf(out, "%s: %s: %v\n", path, c.Sprint("error"), err)
		return werr
	}

	loc := path
	if e.Path != "" {
		loc = e.Path
	}

	if e.Pos.IsValid() {
		loc += ":" + e.Pos.String()
	}

	msg := e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	_, werr := fmt.Fprintf(out, "%s: %s: %s\n", loc, c.Sprint(e.Kind.String()), msg)

	return werr
}
