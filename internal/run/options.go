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
	"runtime"

	"github.com/wtlin1228/lokalise-key-usage/internal/config"
	"github.com/wtlin1228/lokalise-key-usage/internal/labels"
	"github.com/wtlin1228/lokalise-key-usage/internal/usage"
)

// Options represent the configuration of an analysis run.
type Options struct {
	// Convention names the tracked binding and the translate function.
	Convention usage.Convention

	// Behavior holds behavioral switches.
	Behavior config.BitMask[config.Behavior]

	// Concurrency limits the number of files analyzed in parallel.
	// Values below 1 use the number of CPUs.
	Concurrency int
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Convention:  usage.DefaultConvention(),
		Behavior:    config.DefaultBehavior(),
		Concurrency: 0,
	}
}

func (o *Options) builder() labels.Builder {
	return labels.Builder{LazyTuples: o.Behavior.Enabled(config.LazyTuples)}
}

func (o *Options) concurrency() int {
	if o.Concurrency < 1 {
		return runtime.GOMAXPROCS(0)
	}

	return o.Concurrency
}
