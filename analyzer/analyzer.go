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
	"context"
	"log/slog"
)

// Analyzer collects translation key usage from JavaScript and TypeScript sources.
type Analyzer struct {
	opts Options
	r    *runOptions
}

// New creates a new key usage analyzer.
// It allows for programmatic configuration using [Option]. Without options, it tracks
// LABELS = translate({...}) bindings and honors .gitignore rules.
func New(opts ...Option) *Analyzer {
	return &Analyzer{opts: opts, r: makeRunOptions(opts)}
}

// LogValue implements [slog.LogValuer].
func (a *Analyzer) LogValue() slog.Value { return a.opts.LogValue() }

// Run analyzes the files named by args. Directory arguments are searched recursively
// for supported source files.
//
// Failed files are reported in [Result.Failures]. Run returns an error for invalid
// arguments, when ctx is canceled or when a file fails with [WithFailFast] enabled.
func (a *Analyzer) Run(ctx context.Context, args []string) (*Result, error) {
	files, err := a.r.discover().Files(args)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Discovered files", slog.Int("files", len(files)), slog.Any("options", a))

	return a.r.run.Run(ctx, files)
}

// AnalyzeSource analyzes a single module. The path selects the grammar by extension.
func (a *Analyzer) AnalyzeSource(ctx context.Context, path string, src []byte) (ModuleResult, error) {
	return a.r.run.AnalyzeSource(ctx, path, src)
}

// Analyze runs a default [Analyzer].
func Analyze(ctx context.Context, args ...string) (*Result, error) {
	return New().Run(ctx, args)
}
