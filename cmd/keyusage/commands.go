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

package main

import (
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	keyusage "github.com/wtlin1228/lokalise-key-usage/analyzer"
	"github.com/wtlin1228/lokalise-key-usage/internal/catalog"
	"github.com/wtlin1228/lokalise-key-usage/internal/report"
	"github.com/wtlin1228/lokalise-key-usage/settings"
)

// Exit codes.
const (
	exitFindings = 1
	exitError    = 2
)

func collect(c *cli.Context) error {
	s, w, err := setup(c)
	if err != nil {
		return err
	}

	w.PerFile = c.Bool("per-file")

	res, err := analyze(c, s, w)
	if err != nil {
		return err
	}

	if err := w.Usage(c.App.Writer, res); err != nil {
		return cli.Exit(color.RedString("Error writing usage: %s", err), exitError)
	}

	if len(res.Failures) > 0 {
		return cli.Exit("", exitFindings)
	}

	return nil
}

func unused(c *cli.Context) error {
	s, w, err := setup(c)
	if err != nil {
		return err
	}

	whitelist, err := catalog.CompileWhitelist(append(s.Whitelist, c.StringSlice("whitelist")...))
	if err != nil {
		return cli.Exit(color.RedString("Error: %s", err), exitError)
	}

	keys, err := catalog.Load(c.String("catalog"))
	if err != nil {
		return cli.Exit(color.RedString("Error reading catalog: %s", err), exitError)
	}

	res, err := analyze(c, s, w)
	if err != nil {
		return err
	}

	if len(res.Failures) > 0 {
		return cli.Exit(color.RedString("Error: %d files failed, refusing to report unused keys", len(res.Failures)), exitError)
	}

	used := res.Usage.Keys()
	used.AddAll(res.Unowned)

	found := catalog.Unused(keys, used, whitelist)
	if err := w.Keys(c.App.Writer, found); err != nil {
		return cli.Exit(color.RedString("Error writing keys: %s", err), exitError)
	}

	if len(found) > 0 {
		return cli.Exit("", exitFindings)
	}

	return nil
}

func setup(c *cli.Context) (settings.Settings, report.Writer, error) {
	var w report.Writer
	if err := w.Format.UnmarshalText([]byte(c.String("format"))); err != nil {
		return settings.Settings{}, w, cli.Exit(color.RedString("Error: %s", err), exitError)
	}

	w.Color = !c.Bool("no-color") && !color.NoColor

	s, err := settings.Load(c.String("config"), !c.IsSet("config"))
	if err != nil {
		return s, w, cli.Exit(color.RedString("Error reading settings: %s", err), exitError)
	}

	return s, w, nil
}

// analyze runs the analyzer on the command line arguments and prints diagnostics.
func analyze(c *cli.Context, s settings.Settings, w report.Writer) (*keyusage.Result, error) {
	args := c.Args().Slice()
	if len(args) == 0 {
		args = []string{"."}
	}

	res, err := keyusage.New(options(c, s)...).Run(c.Context, args)
	if res != nil {
		if err := w.Diagnostics(c.App.ErrWriter, res); err != nil {
			return nil, cli.Exit(color.RedString("Error writing diagnostics: %s", err), exitError)
		}
	}

	if err != nil {
		return nil, cli.Exit(color.RedString("Error: %s", err), exitError)
	}

	return res, nil
}
