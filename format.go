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

package inkfmt

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/inkfmt/inkfmt/config"
	"github.com/inkfmt/inkfmt/printer"
	"github.com/inkfmt/inkfmt/report"
	"github.com/inkfmt/inkfmt/token"
)

// Job is one file's worth of work for [FormatAll]: a token stream already
// built by the caller's producer, the source file it measures diagnostics
// against, the configuration to format it with, and an optional
// partial-region window.
type Job struct {
	Name   string
	Stream *token.Stream
	File   *report.File
	Config config.Configuration
	Range  *config.Range
}

// Result is one [Job]'s output: the formatted text and any diagnostics the
// engine reported while producing it.
type Result struct {
	Name        string
	Text        string
	Diagnostics []report.Diagnostic
}

// Format runs the engine over a single job and returns its formatted text
// and any diagnostics reported along the way. It is the non-batched
// counterpart to [FormatAll].
func Format(job Job) Result {
	sink := new(report.Sink)
	ctx := printer.NewContext(job.Config, job.File, sink)
	if job.Range != nil {
		ctx = ctx.WithRange(*job.Range)
	}
	text := ctx.Print(job.Stream)
	return Result{Name: job.Name, Text: text, Diagnostics: sink.Diagnostics()}
}

// FormatAll runs jobs concurrently, one [printer.Context] per job, and
// returns their results in the same order as jobs. No state is shared
// between jobs; a panic from a [printer.StructuralError] in one job is
// recovered and returned as an error without aborting the others still in
// flight.
//
// ctx only parents the errgroup's context; no job observes it, so every
// job runs to completion even after another job has failed, and
// formatting never blocks on ctx.
func FormatAll(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, _ := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					if se, ok := r.(*printer.StructuralError); ok {
						err = se
						return
					}
					panic(r)
				}
			}()
			results[i] = Format(job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
