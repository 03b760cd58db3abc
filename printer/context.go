// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package printer implements the two-pass pretty-printing engine: the
// length-lookahead first pass and [Context.Print], the second pass that
// actually emits text.
package printer

import (
	"github.com/petermattis/goid"

	"github.com/inkfmt/inkfmt/config"
	"github.com/inkfmt/inkfmt/report"
)

// Context is the per-file state a single [Context.Print] call is built
// from: configuration, a diagnostic sink, an optional application range,
// and the source file used to resolve diagnostic positions.
//
// A Context is constructed fresh for one file and discarded after one
// Print call; it is not safe to reuse across files or to share between
// goroutines. debugOwner records the id of the goroutine that constructed
// it so that [Context.checkOwner] catches a Context leaking across a
// goroutine boundary, which would otherwise silently corrupt two unrelated
// formatting runs' state.
type Context struct {
	Config config.Configuration
	Sink   *report.Sink
	File   *report.File
	Range  *config.Range

	debugOwner int64
}

// NewContext builds a Context for formatting a single file. sink may be
// nil, in which case diagnostics are discarded.
func NewContext(cfg config.Configuration, file *report.File, sink *report.Sink) *Context {
	if sink == nil {
		sink = new(report.Sink)
	}
	return &Context{
		Config:     cfg,
		Sink:       sink,
		File:       file,
		debugOwner: goid.Get(),
	}
}

// WithRange narrows this Context to a partial-region application window.
// Returns the same Context for chaining.
func (c *Context) WithRange(r config.Range) *Context {
	c.Range = &r
	return c
}

// checkOwner panics if called from a goroutine other than the one that
// constructed c.
func (c *Context) checkOwner() {
	if got := goid.Get(); got != c.debugOwner {
		panic("inkfmt/printer: Context used from a goroutine other than the one that created it")
	}
}
