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
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	keyusage "github.com/wtlin1228/lokalise-key-usage/analyzer"
	"github.com/wtlin1228/lokalise-key-usage/settings"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:                   "keyusage",
		Usage:                  "Report translation key usage of JavaScript and TypeScript modules",
		UseShortOptionHandling: true,
		Writer:                 stdout,
		ErrWriter:              stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Read settings from `FILE`",
				Value:   settings.DefaultFile,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log progress to stderr",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelWarn
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}

			h := slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(h))

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "collect",
				Usage:     "Print the keys used by each top-level binding",
				ArgsUsage: "paths...",
				Flags: append(analysisFlags(),
					&cli.BoolFlag{
						Name:    "per-file",
						Aliases: []string{"p"},
						Usage:   "Report usage per file",
					},
				),
				Action: collect,
			},
			{
				Name:      "unused",
				Usage:     "Print catalog keys no module uses",
				ArgsUsage: "paths...",
				Flags: append(analysisFlags(),
					&cli.StringFlag{
						Name:     "catalog",
						Usage:    "Translation catalog `FILE` (JSON or YAML)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:    "whitelist",
						Aliases: []string{"w"},
						Usage:   "Never report keys matching `GLOB`",
					},
				),
				Action: unused,
			},
		},
	}
}

func analysisFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text, json or yaml",
			Value:   "text",
		},
		&cli.StringFlag{
			Name:  "binding",
			Usage: "Name of the label binding",
			Value: "LABELS",
		},
		&cli.StringFlag{
			Name:  "translate",
			Usage: "Name of the function building the label tree",
			Value: "translate",
		},
		&cli.BoolFlag{
			Name:  "lazy-tuples",
			Usage: `Accept ["key", ...] label values`,
		},
		&cli.BoolFlag{
			Name:  "bare-references",
			Usage: "Record all keys when the label binding is used as a value",
		},
		&cli.StringSliceFlag{
			Name:    "include",
			Aliases: []string{"i"},
			Usage:   "Only analyze files matching `GLOB`",
		},
		&cli.StringSliceFlag{
			Name:    "exclude",
			Aliases: []string{"e"},
			Usage:   "Skip files and directories matching `GLOB`",
		},
		&cli.BoolFlag{
			Name:  "gitignore",
			Usage: "Honor .gitignore rules",
			Value: true,
		},
		&cli.IntFlag{
			Name:  "concurrency",
			Usage: "Number of files analyzed in parallel, 0 for one per CPU",
		},
		&cli.BoolFlag{
			Name:  "fail-fast",
			Usage: "Stop at the first file that fails",
		},
	}
}

// options merges the settings file with the flags set on the command line.
func options(c *cli.Context, s settings.Settings) keyusage.Options {
	opts := s.Options()

	opts = appendFlag(opts, c, "binding", c.String, keyusage.WithBinding)
	opts = appendFlag(opts, c, "translate", c.String, keyusage.WithTranslateFunc)
	opts = appendFlag(opts, c, "lazy-tuples", c.Bool, keyusage.WithLazyTuples)
	opts = appendFlag(opts, c, "bare-references", c.Bool, keyusage.WithBareReferences)
	opts = appendFlag(opts, c, "include", c.StringSlice, keyusage.WithInclude)
	opts = appendFlag(opts, c, "exclude", c.StringSlice, keyusage.WithExclude)
	opts = appendFlag(opts, c, "gitignore", c.Bool, keyusage.WithGitIgnore)
	opts = appendFlag(opts, c, "concurrency", c.Int, keyusage.WithConcurrency)
	opts = appendFlag(opts, c, "fail-fast", c.Bool, keyusage.WithFailFast)

	return opts
}

// appendFlag appends an option for a flag given on the command line.
func appendFlag[T any](opts keyusage.Options, c *cli.Context, name string, get func(string) T, constructor func(T) keyusage.Option) keyusage.Options {
	if !c.IsSet(name) {
		return opts
	}

	return append(opts, constructor(get(name)))
}
