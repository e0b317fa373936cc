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

// Package run drives the key usage analysis over modules and files.
package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/trace"

	"github.com/wtlin1228/lokalise-key-usage/internal/config"
	"github.com/wtlin1228/lokalise-key-usage/internal/diag"
	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
	"github.com/wtlin1228/lokalise-key-usage/internal/jsparse"
	"github.com/wtlin1228/lokalise-key-usage/internal/usage"
)

// ModuleResult is the analysis outcome of one module.
type ModuleResult struct {
	Path string

	// Trees is the number of tracked bindings found in the module.
	Trees int

	usage.Result
}

// AnalyzeModule runs the analysis pipeline on a parsed module:
// locate the tracked declarations, build their label trees and walk the module.
func (o *Options) AnalyzeModule(ctx context.Context, m *jsast.Module) (ModuleResult, error) {
	defer trace.StartRegion(ctx, "AnalyzeModule").End()

	trees, err := usage.Locate(m, o.Convention, o.builder())
	if err != nil {
		return ModuleResult{}, withPath(err, m.Path)
	}

	r := usage.Walk(m, trees, o.Behavior.Enabled(config.BareReferences))
	for i, f := range r.Failures {
		r.Failures[i] = f.WithPath(m.Path)
	}

	return ModuleResult{Path: m.Path, Trees: len(trees), Result: r}, nil
}

// AnalyzeSource parses and analyzes a source file.
func (o *Options) AnalyzeSource(ctx context.Context, path string, src []byte) (ModuleResult, error) {
	m, err := jsparse.Parse(ctx, path, src)
	if err != nil {
		return ModuleResult{}, err
	}

	return o.AnalyzeModule(ctx, m)
}

// AnalyzeFile reads, parses and analyzes a source file.
func (o *Options) AnalyzeFile(ctx context.Context, path string) (ModuleResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return ModuleResult{}, fmt.Errorf("can't read source: %w", err)
	}

	r, err := o.AnalyzeSource(ctx, path, src)
	if err != nil {
		return ModuleResult{}, err
	}

	slog.DebugContext(ctx, "Analyzed file",
		slog.String("path", path),
		slog.Int("trees", r.Trees),
		slog.Int("owners", len(r.Usage)),
		slog.Int("references", len(r.References)))

	return r, nil
}

func withPath(err error, path string) error {
	var e *diag.Error
	if errors.As(err, &e) && e.Path == "" {
		return e.WithPath(path)
	}

	return err
}
