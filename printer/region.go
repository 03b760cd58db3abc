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

package printer

import (
	"github.com/inkfmt/inkfmt/token"
)

// printBypass emits token i unreformatted, for partial-region mode: no
// break ever fires, no force-break or length decision is consulted, and no
// diagnostic is ever raised. Open/Close and Break(Open)/Break(Close) still
// run their ordinary bookkeeping so the indentation and active-open stacks
// stay consistent for tokens that re-enter the application window later in
// the stream.
func (p *Printer) printBypass(i int) {
	t := p.stream.At(i)
	switch t.Kind() {
	case token.Syntax:
		p.write(t.Text())
	case token.Space:
		p.enqueueSpaces(t.Size())
	case token.Open:
		p.printOpen(t, i)
	case token.Close:
		p.printClose()
	case token.Break:
		p.bypassBreak(t)
	case token.Newlines:
		// Outside the application range a run of blank lines must come out
		// byte-identical to the input, so it bypasses the maximumBlankLines
		// cap that writeNewlines enforces.
		p.writeRawNewlines(t.Count())
	case token.Comment:
		p.write(renderComment(t.Comment(), p.effectiveIndent(), p.ctx.Config))
	case token.Verbatim:
		p.write(renderVerbatim(t.Verbatim(), p.effectiveIndent()))
	}
}

// bypassBreak runs a Break's indentation/continuation bookkeeping without
// ever consulting length or mustBreak: a bypassed break always renders as
// its configured spacing, never as a newline.
func (p *Printer) bypassBreak(t token.Token) {
	kind := t.BreakKind()
	p.lastBreakKind = kind

	switch kind {
	case token.BreakOpen:
		p.openBreak()
	case token.BreakClose:
		p.closeBreak(t)
	}

	p.enqueueSpaces(t.Size())
	p.lastBreak = false
}
