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
	"github.com/inkfmt/inkfmt/config"
	"github.com/inkfmt/inkfmt/internal/interval"
	"github.com/inkfmt/inkfmt/internal/width"
	"github.com/inkfmt/inkfmt/token"
)

// scanResult is the output of the length scanner: a lookahead length per
// token index, and a map from token index to the source line it
// originated from, used by partial-region mode.
type scanResult struct {
	lengths     []int
	lineOrigins *interval.LineIndex
}

// scan runs the length scanner (Oppen's first pass) over s. It panics with
// a *StructuralError if s violates the producer contract in a way that
// leaves the delimiter stack unbalanced.
func scan(s *token.Stream, cfg config.Configuration) scanResult {
	n := s.Len()
	lengths := make([]int, n)

	var total int
	var stack []int // delimIndexStack: indices of unresolved Open/Break tokens

	// closeTopBreak resolves the Break at the top of the stack, if any, by
	// charging it the length accumulated since it was pushed.
	closeTopBreak := func() {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if s.At(top).Kind() == token.Break {
			lengths[top] += total
			stack = stack[:len(stack)-1]
		}
	}

	for i := 0; i < n; i++ {
		t := s.At(i)
		switch t.Kind() {
		case token.Syntax:
			w := width.Width(t.Text(), cfg.TabWidth)
			lengths[i] = w
			total += w

		case token.Space:
			w := t.Size()
			lengths[i] = w
			total += w

		case token.Open:
			lengths[i] = -total
			stack = append(stack, i)

		case token.Close:
			lengths[i] = 0
			// A break immediately preceding a close never fires into
			// whitespace trailing the group: resolve it before exposing
			// the matching Open underneath.
			closeTopBreak()
			if len(stack) == 0 {
				fail(i, token.Close, "unmatched Close: no Open on the delimiter stack")
			}
			openIdx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			lengths[openIdx] += total

		case token.Break:
			closeTopBreak()
			stack = append(stack, i)
			lengths[i] = -total
			total += t.Size()

		case token.Newlines:
			closeTopBreak()
			lengths[i] = cfg.LineLength
			total += cfg.LineLength

		case token.Comment:
			c := t.Comment()
			lengths[i] = c.Length
			if !t.WasEndOfLine() {
				total += c.Length
			}

		case token.Verbatim:
			v := t.Verbatim()
			var w int
			if v.Multiline() {
				w = cfg.LineLength
			} else {
				w = v.Width(cfg.TabWidth)
			}
			lengths[i] = w
			total += w
		}
	}

	closeTopBreak()
	if len(stack) > 0 {
		fail(stack[len(stack)-1], token.Open, "unclosed Open at end of token stream")
	}

	return scanResult{lengths: lengths, lineOrigins: buildLineOrigins(s)}
}

// buildLineOrigins builds the token-index -> source-line map partial-region
// mode consults. Synthetic tokens (SourceLine() == 0) map to the line of
// the preceding originating token.
func buildLineOrigins(s *token.Stream) *interval.LineIndex {
	m := new(interval.LineIndex)
	n := s.Len()
	if n == 0 {
		return m
	}

	last := 1
	runStart := 0
	runLine := 0
	for i := 0; i < n; i++ {
		line := s.At(i).SourceLine()
		if line == 0 {
			line = last
		} else {
			last = line
		}
		if i == 0 {
			runLine = line
			continue
		}
		if line != runLine {
			m.Insert(runStart, i-1, runLine)
			runStart = i
			runLine = line
		}
	}
	m.Insert(runStart, n-1, runLine)
	return m
}
