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
	"log/slog"

	"github.com/wtlin1228/lokalise-key-usage/internal/config"
)

// Option configures specific behavior of a [New] key usage analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithBinding is an [Option] to configure the name of the tracked label binding.
// The default is "LABELS".
func WithBinding(name string) Option { return bindingOption{name: name} }

type bindingOption struct{ name string }

func (o bindingOption) apply(r *runOptions) {
	r.run.Convention.Binding = o.name
}

func (o bindingOption) LogAttr() slog.Attr {
	return slog.String("binding", o.name)
}

// WithTranslateFunc is an [Option] to configure the name of the function building the label tree.
// The default is "translate".
func WithTranslateFunc(name string) Option { return translateOption{name: name} }

type translateOption struct{ name string }

func (o translateOption) apply(r *runOptions) {
	r.run.Convention.Translate = o.name
}

func (o translateOption) LogAttr() slog.Attr {
	return slog.String("translate", o.name)
}

// WithLazyTuples is an [Option] to accept ["key", ...] array values in label trees.
func WithLazyTuples(lazy bool) Option { return lazyTuplesOption{lazy: lazy} }

type lazyTuplesOption struct{ lazy bool }

func (o lazyTuplesOption) apply(r *runOptions) {
	r.run.Behavior.Set(config.LazyTuples, o.lazy)
}

func (o lazyTuplesOption) LogAttr() slog.Attr {
	return slog.Bool("lazy-tuples", o.lazy)
}

// WithBareReferences is an [Option] to record all keys when the label binding is used as a value.
func WithBareReferences(bare bool) Option { return bareReferencesOption{bare: bare} }

type bareReferencesOption struct{ bare bool }

func (o bareReferencesOption) apply(r *runOptions) {
	r.run.Behavior.Set(config.BareReferences, o.bare)
}

func (o bareReferencesOption) LogAttr() slog.Attr {
	return slog.Bool("bare-references", o.bare)
}

// WithFailFast is an [Option] to stop a run at the first file that fails.
func WithFailFast(failFast bool) Option { return failFastOption{failFast: failFast} }

type failFastOption struct{ failFast bool }

func (o failFastOption) apply(r *runOptions) {
	r.run.Behavior.Set(config.FailFast, o.failFast)
}

func (o failFastOption) LogAttr() slog.Attr {
	return slog.Bool("fail-fast", o.failFast)
}

// WithConcurrency is an [Option] to limit the number of files analyzed in parallel.
// Values below 1 use the number of CPUs.
func WithConcurrency(n int) Option { return concurrencyOption{n: n} }

type concurrencyOption struct{ n int }

func (o concurrencyOption) apply(r *runOptions) {
	r.run.Concurrency = o.n
}

func (o concurrencyOption) LogAttr() slog.Attr {
	return slog.Int("concurrency", o.n)
}

// WithInclude is an [Option] to restrict directory walks to files matching one of the glob patterns.
func WithInclude(patterns []string) Option { return includeOption{patterns: patterns} }

type includeOption struct{ patterns []string }

func (o includeOption) apply(r *runOptions) {
	r.include = append(r.include, o.patterns...)
}

func (o includeOption) LogAttr() slog.Attr {
	return slog.Any("include", o.patterns)
}

// WithExclude is an [Option] to skip files and directories matching one of the glob patterns.
func WithExclude(patterns []string) Option { return excludeOption{patterns: patterns} }

type excludeOption struct{ patterns []string }

func (o excludeOption) apply(r *runOptions) {
	r.exclude = append(r.exclude, o.patterns...)
}

func (o excludeOption) LogAttr() slog.Attr {
	return slog.Any("exclude", o.patterns)
}

// WithGitIgnore is an [Option] to configure whether .gitignore rules are honored. Enabled by default.
func WithGitIgnore(gitIgnore bool) Option { return gitIgnoreOption{gitIgnore: gitIgnore} }

type gitIgnoreOption struct{ gitIgnore bool }

func (o gitIgnoreOption) apply(r *runOptions) {
	r.run.Behavior.Set(config.GitIgnore, o.gitIgnore)
}

func (o gitIgnoreOption) LogAttr() slog.Attr {
	return slog.Bool("gitignore", o.gitIgnore)
}
