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
	"github.com/wtlin1228/lokalise-key-usage/internal/config"
	"github.com/wtlin1228/lokalise-key-usage/internal/discover"
	"github.com/wtlin1228/lokalise-key-usage/internal/run"
)

// runOptions represent configuration runOptions for the key usage analyzer.
type runOptions struct {
	// run holds the convention, behavior switches and concurrency of the driver.
	run run.Options

	// include and exclude are glob patterns applied to directory walks.
	include, exclude []string
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{run: *run.DefaultOptions()}
}

func (r *runOptions) discover() discover.Options {
	return discover.Options{
		Include:   r.include,
		Exclude:   r.exclude,
		GitIgnore: r.run.Behavior.Enabled(config.GitIgnore),
	}
}
