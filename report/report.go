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

package report

import "fmt"

// Level represents the severity of a [Diagnostic].
//
// The engine itself only ever reports [Warning]-level diagnostics (e.g. an
// end-of-line comment that overruns the line length); the other levels
// exist for hosts that want to route their own diagnostics through the
// same [Sink].
type Level int8

const (
	Error Level = 1 + iota
	Warning
	Remark
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Diagnostic is a single non-fatal observation surfaced by the engine: a
// severity, a message, and the span it concerns.
type Diagnostic struct {
	Level   Level
	Message string
	At      Span
}

// DiagnosticOption configures a [Diagnostic] built via [New].
type DiagnosticOption func(*Diagnostic)

// Message sets the diagnostic's message, formatted with [fmt.Sprintf].
func Message(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) { d.Message = fmt.Sprintf(format, args...) }
}

// At attaches a source span to the diagnostic.
func At(span Span) DiagnosticOption {
	return func(d *Diagnostic) { d.At = span }
}

// New builds a Diagnostic at the given level, applying opts in order.
func New(level Level, opts ...DiagnosticOption) Diagnostic {
	d := Diagnostic{Level: level}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Error implements the error interface so a [Diagnostic] can be returned or
// wrapped like any other Go error, even though most diagnostics reported
// through a [Sink] are not fatal.
func (d Diagnostic) Error() string {
	if d.At.IsZero() {
		return fmt.Sprintf("%s: %s", d.Level, d.Message)
	}
	loc := d.At.StartLoc()
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.At.File.Path(), loc.Line, loc.Column, d.Level, d.Message)
}

// Sink accumulates [Diagnostic]s in report order. The zero Sink is ready to
// use. A Sink is written to in call order from a single goroutine — the
// engine never reports concurrently within one [printer.Context].
type Sink struct {
	diagnostics []Diagnostic
}

// Report appends a diagnostic to the sink.
func (s *Sink) Report(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// Warnf is a convenience for Report(New(Warning, Message(format, args...), At(span))).
func (s *Sink) Warnf(span Span, format string, args ...any) {
	s.Report(New(Warning, Message(format, args...), At(span)))
}

// Diagnostics returns all diagnostics reported so far, in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}
