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
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/urfave/cli/v2"
	"golang.org/x/tools/txtar"
)

func extract(tb testing.TB) string {
	tb.Helper()

	ar, err := txtar.ParseFile(filepath.Join("testdata", "project.txtar"))
	if err != nil {
		tb.Fatalf("Can't read archive: %v", err)
	}

	dir := tb.TempDir()
	for _, f := range ar.Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			tb.Fatalf("Can't create directory: %v", err)
		}

		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			tb.Fatalf("Can't write file: %v", err)
		}
	}

	return dir
}

// execute runs the command line and returns stdout and the exit code.
func execute(tb testing.TB, args ...string) (string, int) {
	tb.Helper()

	var stdout, stderr bytes.Buffer

	app := newApp(&stdout, &stderr)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.RunContext(tb.Context(), append([]string{"keyusage", "--no-color"}, args...))

	var exit cli.ExitCoder

	switch {
	case err == nil:
		return stdout.String(), 0

	case errors.As(err, &exit):
		return stdout.String(), exit.ExitCode()

	default:
		tb.Logf("stderr: %s", stderr.String())
		tb.Fatalf("Run failed: %v", err)

		return "", -1
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	dir := extract(t)

	out, code := execute(t, "collect", "--format", "json", filepath.Join(dir, "src"))
	if code != 0 {
		t.Fatalf("Exit code %d, want 0", code)
	}

	var got struct {
		Usage map[string][]string `json:"usage"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Can't decode output %q: %v", out, err)
	}

	want := map[string][]string{
		"Title":    {"i18n.title"},
		"Bird":     {"i18n.bird"},
		"CardTest": {"i18n.card"},
	}

	if len(got.Usage) != len(want) {
		t.Fatalf("Usage = %v, want %v", got.Usage, want)
	}

	for owner, keys := range want {
		if !slices.Equal(got.Usage[owner], keys) {
			t.Errorf("Usage[%s] = %q, want %q", owner, got.Usage[owner], keys)
		}
	}
}

func TestCollectConfig(t *testing.T) {
	t.Parallel()

	dir := extract(t)

	out, code := execute(t, "--config", filepath.Join(dir, "keyusage.yaml"),
		"collect", "--format", "yaml", filepath.Join(dir, "src"))
	if code != 0 {
		t.Fatalf("Exit code %d, want 0", code)
	}

	const want = `usage:
  Bird:
    - i18n.bird
  Title:
    - i18n.title
`

	if out != want {
		t.Errorf("Got output %q, want %q", out, want)
	}
}

func TestUnused(t *testing.T) {
	t.Parallel()

	dir := extract(t)

	testCases := [...]struct {
		name string
		args []string
		want string
		code int
	}{
		{
			name: "config",
			args: []string{"--config", filepath.Join(dir, "keyusage.yaml"), "unused"},
			want: "i18n.cat\ni18n.dog\n",
			code: 1,
		},
		{
			name: "whitelist",
			args: []string{"unused", "--whitelist", "i18n.error.*", "--whitelist", "i18n.[cd]*"},
			code: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			args := append(tc.args, "--catalog", filepath.Join(dir, "en.json"), filepath.Join(dir, "src"))

			out, code := execute(t, args...)
			if code != tc.code {
				t.Errorf("Exit code %d, want %d", code, tc.code)
			}

			if out != tc.want {
				t.Errorf("Got output %q, want %q", out, tc.want)
			}
		})
	}
}

func TestInvalidFormat(t *testing.T) {
	t.Parallel()

	if _, code := execute(t, "collect", "--format", "xml", t.TempDir()); code != exitError {
		t.Errorf("Exit code %d, want %d", code, exitError)
	}
}
