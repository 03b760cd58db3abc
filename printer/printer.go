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
	"strings"

	"github.com/inkfmt/inkfmt/indent"
	"github.com/inkfmt/inkfmt/internal/interval"
	"github.com/inkfmt/inkfmt/internal/width"
	"github.com/inkfmt/inkfmt/report"
	"github.com/inkfmt/inkfmt/token"
)

// activeOpenBreak is a record on the printer's activeOpenBreaks stack.
type activeOpenBreak struct {
	openLine  int
	didIndent bool
}

// Printer holds the second-pass state for a single [Context.Print] call.
// It is not reused across calls.
type Printer struct {
	ctx     *Context
	stream  *token.Stream
	lengths []int
	origins *interval.LineIndex

	out                      strings.Builder
	lineNumber               int
	isAtStartOfLine          bool
	consecutiveNewlineCount  int
	pendingSpaces            int
	spaceRemaining           int
	indentStack              *indent.Indent
	continuationStack        []bool
	activeOpenBreaks         []activeOpenBreak
	forceBreakStack          []bool
	currentLineIsContinuation bool
	lastBreakKind            token.BreakKind
	lastBreak                bool
}

// Print runs the two-pass engine over s and returns the formatted text. It
// panics with a [StructuralError] if s violates the token-stream producer
// contract.
func (c *Context) Print(s *token.Stream) string {
	c.checkOwner()

	result := scan(s, c.Config)
	p := &Printer{
		ctx:             c,
		stream:          s,
		lengths:         result.lengths,
		origins:         result.lineOrigins,
		lineNumber:      1,
		isAtStartOfLine: true,
		spaceRemaining:  c.Config.LineLength,
		indentStack:     new(indent.Indent),
	}
	return p.run()
}

func (p *Printer) run() string {
	n := p.stream.Len()
	for i := 0; i < n; i++ {
		if p.outsideRange(i) {
			p.printBypass(i)
			continue
		}
		p.printOne(i)
	}

	if len(p.activeOpenBreaks) != 0 {
		fail(n, token.Break, "at least one Break(Open) was not matched by a Break(Close) at end of stream")
	}
	if len(p.continuationStack) != 0 {
		fail(n, token.Break, "continuation stack not empty at end of stream")
	}

	return p.out.String()
}

// outsideRange reports whether token i falls outside the Context's
// optional partial-region application window.
func (p *Printer) outsideRange(i int) bool {
	if p.ctx.Range == nil {
		return false
	}
	entry := p.origins.Get(i)
	if entry.Line == nil {
		return false
	}
	return !p.ctx.Range.Contains(*entry.Line)
}

func (p *Printer) printOne(i int) {
	t := p.stream.At(i)
	switch t.Kind() {
	case token.Syntax:
		p.printSyntax(t)
	case token.Open:
		p.printOpen(t, i)
	case token.Close:
		p.printClose()
	case token.Break:
		p.printBreak(t, i)
	case token.Space:
		p.enqueueSpaces(t.Size())
	case token.Newlines:
		p.printNewlines(t)
	case token.Comment:
		p.printComment(t, i)
	case token.Verbatim:
		p.printVerbatim(t, i)
	}
}

func (p *Printer) printSyntax(t token.Token) {
	text := t.Text()
	if text != "" {
		p.write(text)
		p.spaceRemaining -= width.Width(text, p.ctx.Config.TabWidth)
	}
	p.lastBreak = false
}

func (p *Printer) printOpen(t token.Token, i int) {
	force := false
	if t.OpenStyle() == token.Consistent && (p.lengths[i] > p.spaceRemaining || p.lastBreak) {
		force = true
	}
	p.forceBreakStack = append(p.forceBreakStack, force)
}

func (p *Printer) printClose() {
	if len(p.forceBreakStack) == 0 {
		fail(0, token.Close, "unmatched Close: no Open on the force-break stack")
	}
	p.forceBreakStack = p.forceBreakStack[:len(p.forceBreakStack)-1]
}

func (p *Printer) printBreak(t token.Token, i int) {
	kind := t.BreakKind()
	p.lastBreakKind = kind

	var mustBreak bool
	if len(p.forceBreakStack) > 0 {
		mustBreak = p.forceBreakStack[len(p.forceBreakStack)-1]
	}

	var continuesIfFires bool
	switch kind {
	case token.BreakOpen:
		continuesIfFires = p.openBreak()
	case token.BreakClose:
		var closeMustBreak bool
		continuesIfFires, closeMustBreak = p.closeBreak(t)
		if t.MustBreakOnClose() || closeMustBreak {
			mustBreak = closeMustBreak
		}
	case token.BreakContinue:
		continuesIfFires = true
	case token.BreakSame:
		// no state change
	case token.BreakReset:
		mustBreak = p.currentLineIsContinuation
	}

	if p.lengths[i] > p.spaceRemaining || mustBreak {
		p.writeNewlines(1, t.IgnoresDiscretionary())
		p.currentLineIsContinuation = continuesIfFires
		p.lastBreak = true
		return
	}

	p.enqueueSpaces(t.Size())
	if p.isAtStartOfLine {
		p.currentLineIsContinuation = continuesIfFires
	}
	p.lastBreak = false
}

// openBreak applies a Break(Open)'s state transition and returns whether
// the current line becomes a continuation if the break fires.
func (p *Printer) openBreak() bool {
	sameLineAsLastOpen := len(p.activeOpenBreaks) > 0 &&
		p.lineNumber == p.activeOpenBreaks[len(p.activeOpenBreaks)-1].openLine

	if sameLineAsLastOpen {
		p.activeOpenBreaks[len(p.activeOpenBreaks)-1].didIndent = false
	} else {
		p.indentStack.Push(p.ctx.Config.Indentation)
		if p.currentLineIsContinuation {
			p.indentStack.Push(p.ctx.Config.Indentation)
		}
	}

	p.continuationStack = append(p.continuationStack, p.currentLineIsContinuation)
	p.activeOpenBreaks = append(p.activeOpenBreaks, activeOpenBreak{
		openLine:  p.lineNumber,
		didIndent: true,
	})
	p.currentLineIsContinuation = false
	return false
}

// closeBreak applies a Break(Close)'s state transition. It returns
// isContinuationIfBreakFires and whether the close itself forces the break;
// printBreak keeps the enclosing group's force-break state unless the token
// carries its own mustBreak flag or the close forces the break.
func (p *Printer) closeBreak(t token.Token) (continuesIfFires bool, mustBreak bool) {
	if len(p.activeOpenBreaks) == 0 {
		fail(0, token.Break, "unmatched Break(Close): no active Break(Open)")
	}
	mo := p.activeOpenBreaks[len(p.activeOpenBreaks)-1]
	p.activeOpenBreaks = p.activeOpenBreaks[:len(p.activeOpenBreaks)-1]

	if mo.didIndent {
		differentLine := p.lineNumber != mo.openLine
		noMoreActives := len(p.activeOpenBreaks) == 0
		nextOuterAlreadyIndented := !noMoreActives && p.activeOpenBreaks[len(p.activeOpenBreaks)-1].didIndent
		if differentLine || noMoreActives || nextOuterAlreadyIndented {
			p.indentStack.Pop()
		} else {
			p.activeOpenBreaks[len(p.activeOpenBreaks)-1].didIndent = true
		}
	}

	var wasContinuation bool
	if len(p.continuationStack) > 0 {
		wasContinuation = p.continuationStack[len(p.continuationStack)-1]
		p.continuationStack = p.continuationStack[:len(p.continuationStack)-1]
	}
	if wasContinuation {
		p.indentStack.Pop()
	}

	switch {
	case t.MustBreakOnClose():
		mustBreak = p.lineNumber != mo.openLine
	case p.spaceRemaining == 0:
		mustBreak = true
	case p.lineNumber != mo.openLine:
		p.currentLineIsContinuation = mo.didIndent
	}

	p.currentLineIsContinuation = p.currentLineIsContinuation || wasContinuation
	return wasContinuation, mustBreak
}

func (p *Printer) printNewlines(t token.Token) {
	p.currentLineIsContinuation = p.lastBreakKind == token.BreakContinue
	count := t.Count()
	if t.Discretionary() && !p.ctx.Config.RespectsExistingLineBreaks {
		count = 1
	}
	p.writeNewlines(count, t.Discretionary())
	p.lastBreak = true
}

func (p *Printer) printComment(t token.Token, i int) {
	c := t.Comment()
	p.write(renderComment(c, p.effectiveIndent(), p.ctx.Config))

	if t.WasEndOfLine() && c.Length > p.spaceRemaining {
		p.ctx.Sink.Warnf(p.spanFor(i), "end-of-line comment exceeds the line length")
	} else {
		p.spaceRemaining -= c.Length
	}
}

func (p *Printer) printVerbatim(t token.Token, i int) {
	v := t.Verbatim()
	p.write(renderVerbatim(v, p.effectiveIndent()))
	p.consecutiveNewlineCount = 0
	p.spaceRemaining -= p.lengths[i]
}

// effectiveIndent renders the current indentation stack, plus one extra
// unit if the current line is a continuation line.
func (p *Printer) effectiveIndent() string {
	if !p.currentLineIsContinuation {
		return p.indentStack.Render()
	}
	extra := p.indentStack.Clone()
	extra.Push(p.ctx.Config.Indentation)
	return extra.Render()
}

// spanFor returns a zero-width [report.Span] at token i's source line, for
// attaching to diagnostics. The engine only has line-granularity origin
// information, not byte offsets, so the span always starts and ends at the
// first byte of that line.
func (p *Printer) spanFor(i int) report.Span {
	entry := p.origins.Get(i)
	if entry.Line == nil || p.ctx.File == nil {
		return report.Span{}
	}
	line := *entry.Line
	offset := p.ctx.File.LineStartOffset(line)
	return p.ctx.File.Span(offset, offset)
}
