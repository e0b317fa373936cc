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

// Package diag defines the error kinds reported while analyzing a module.
//
// Callers distinguish fatal per-module errors ([ConstructionError], [ConventionMismatch],
// [ParseError]) from recoverable [LookupFailure]s, so a multi-file run can continue past
// a failed module while still surfacing it.
package diag

import (
	"errors"
	"strings"

	"github.com/wtlin1228/lokalise-key-usage/internal/jsast"
)

// Kind classifies an analysis error.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// ParseError indicates the source could not be parsed.
	ParseError Kind = iota // parse error

	// ConstructionError indicates a translate() literal violates the label tree shape rules.
	ConstructionError // construction error

	// ConventionMismatch indicates a malformed LABELS = translate(...) call.
	ConventionMismatch // convention mismatch

	// LookupFailure indicates a member chain names a property missing from the label tree.
	// It does not abort the analysis.
	LookupFailure // lookup failure
)

// Fatal reports whether errors of this kind abort the analysis of a module.
func (k Kind) Fatal() bool { return k != LookupFailure }

// Sentinel errors for use with [errors.Is].
var (
	ErrParse              = errors.New("parse error")
	ErrConstruction       = errors.New("construction error")
	ErrConventionMismatch = errors.New("convention mismatch")
	ErrLookup             = errors.New("lookup failure")
)

func (k Kind) sentinel() error {
	switch k {
	case ParseError:
		return ErrParse

	case ConstructionError:
		return ErrConstruction

	case ConventionMismatch:
		return ErrConventionMismatch

	case LookupFailure:
		return ErrLookup

	default:
		return nil
	}
}

// Error is an analysis error at a source position.
type Error struct {
	Kind Kind
	Path string
	Pos  jsast.Position
	Msg  string
	Err  error
}

// New creates a new [Error] without path information.
func New(kind Kind, pos jsast.Position, msg string) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: msg}
}

// Error implements [error].
func (e *Error) Error() string {
	var b strings.Builder

	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteByte(':')
	}

	if e.Pos.IsValid() {
		b.WriteString(e.Pos.String())
		b.WriteByte(':')
	}

	if b.Len() > 0 {
		b.WriteByte(' ')
	}

	b.WriteString(e.Kind.String())

	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel error of the error's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// WithPath returns a copy of the error annotated with a file path.
func (e *Error) WithPath(path string) *Error {
	c := *e
	c.Path = path

	return &c
}

// KindOf returns the kind of err and true if err wraps an *[Error].
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}

	return e.Kind, true
}
