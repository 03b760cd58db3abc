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

import "strings"

// write flushes any pending indentation or spaces and appends text to the
// output buffer. It must never be called with text that could itself
// introduce trailing whitespace on a line; callers are responsible for
// that invariant.
func (p *Printer) write(text string) {
	if text == "" {
		return
	}
	if p.isAtStartOfLine {
		indentText := p.indentStack.Render()
		p.out.WriteString(indentText)
		p.spaceRemaining = p.ctx.Config.LineLength - p.indentStack.Width(p.ctx.Config.TabWidth)
		p.isAtStartOfLine = false
	} else if p.pendingSpaces > 0 {
		p.out.WriteString(strings.Repeat(" ", p.pendingSpaces))
	}
	p.out.WriteString(text)
	p.consecutiveNewlineCount = 0
	p.pendingSpaces = 0
}

// writeNewlines emits up to count newlines, capped at maximumBlankLines+1
// and throttled against newlines already emitted since the last write.
func (p *Printer) writeNewlines(count int, discretionary bool) {
	cap := p.ctx.Config.MaximumBlankLines + 1
	toWrite := count
	if toWrite > cap {
		toWrite = cap
	}
	toWrite -= p.consecutiveNewlineCount

	if toWrite > 0 && (discretionary || p.consecutiveNewlineCount == 0) {
		p.out.WriteString(strings.Repeat("\n", toWrite))
		p.lineNumber += toWrite
		p.isAtStartOfLine = true
		p.consecutiveNewlineCount += toWrite
		p.pendingSpaces = 0
	}
}

// writeRawNewlines emits exactly count newlines, uncapped and
// unthrottled: used by bypass mode, where a token outside the
// application range must be reproduced byte-for-byte regardless of
// maximumBlankLines.
func (p *Printer) writeRawNewlines(count int) {
	if count <= 0 {
		return
	}
	p.out.WriteString(strings.Repeat("\n", count))
	p.lineNumber += count
	p.isAtStartOfLine = true
	p.consecutiveNewlineCount += count
	p.pendingSpaces = 0
}

// enqueueSpaces queues n spaces to be written on the next call to write,
// without touching the output buffer directly.
func (p *Printer) enqueueSpaces(n int) {
	p.pendingSpaces += n
}
