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

package run

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wtlin1228/lokalise-key-usage/internal/config"
	"github.com/wtlin1228/lokalise-key-usage/internal/keyset"
	"github.com/wtlin1228/lokalise-key-usage/internal/usage"
)

// Failure is a file whose analysis failed.
type Failure struct {
	Path string
	Err  error
}

// Error implements [error].
func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

// Unwrap returns the cause of the failure.
func (f Failure) Unwrap() error { return f.Err }

// Result is the outcome of a run over several files.
type Result struct {
	// Usage is the merged usage of all analyzed files.
	Usage usage.Map

	// Unowned holds keys referenced outside any owner in any file.
	Unowned keyset.Set

	// Files are the per-file results, sorted by path.
	Files []ModuleResult

	// Failures are the failed files, sorted by path.
	Failures []Failure
}

func newResult() *Result {
	return &Result{Usage: make(usage.Map), Unowned: keyset.New()}
}

// add merges a module result. Calls must be synchronized.
func (r *Result) add(m ModuleResult) {
	usage.Merge(r.Usage, m.Usage)
	r.Unowned.AddAll(m.Unowned)
	r.Files = append(r.Files, m)
}

func (r *Result) sort() {
	slices.SortFunc(r.Files, func(a, b ModuleResult) int { return cmp.Compare(a.Path, b.Path) })
	slices.SortFunc(r.Failures, func(a, b Failure) int { return cmp.Compare(a.Path, b.Path) })
}

// Run analyzes files in parallel and merges their usage.
//
// A failed file is recorded in [Result.Failures] and does not stop the run, unless
// [config.FailFast] is enabled. Run returns an error when the context is canceled or a
// file failed in fail-fast mode; the partial result is returned in both cases.
func (o *Options) Run(ctx context.Context, paths []string) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "KeyUsage")
	defer task.End()

	failFast := o.Behavior.Enabled(config.FailFast)

	var (
		mu  sync.Mutex
		res = newResult()
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency())

	for _, path := range paths {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			m, err := o.AnalyzeFile(gctx, path)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				res.Failures = append(res.Failures, Failure{Path: path, Err: err})

				slog.WarnContext(gctx, "Analysis failed", slog.String("path", path), slog.Any("error", err))

				if failFast {
					return Failure{Path: path, Err: err}
				}

				return nil
			}

			res.add(m)

			return nil
		})
	}

	err := g.Wait()

	res.sort()

	slog.InfoContext(ctx, "Run complete",
		slog.Int("files", len(res.Files)),
		slog.Int("failures", len(res.Failures)),
		slog.Int("owners", len(res.Usage)),
		slog.Int("keys", res.Usage.Keys().Len()))

	if err != nil {
		return res, err
	}

	return res, ctx.Err()
}
