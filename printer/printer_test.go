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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkfmt/inkfmt/config"
	"github.com/inkfmt/inkfmt/indent"
	"github.com/inkfmt/inkfmt/report"
	"github.com/inkfmt/inkfmt/token"
)

func newTestContext(cfg config.Configuration) *Context {
	return NewContext(cfg, report.NewFile("test.swift", ""), nil)
}

// group builds a Consistent Open/Close group around items, each item
// separated by a Break(Same) that fires as one space when the group fits
// and as a newline at the same indentation when it doesn't.
func group(lineLength int, items ...string) *token.Stream {
	cfg := config.Default()
	cfg.LineLength = lineLength
	s := token.NewStream()
	s.Push(token.Op(token.Consistent))
	for i, item := range items {
		if i > 0 {
			s.Push(token.Brk(token.BreakSame, 1, false))
		}
		s.Push(token.Syn(item))
	}
	s.Push(token.Cl())
	return s
}

func TestGroupStaysOnOneLineWhenItFits(t *testing.T) {
	cfg := config.Default()
	cfg.LineLength = 80
	ctx := newTestContext(cfg)
	out := ctx.Print(group(80, "let", "A:", "Int"))
	require.Equal(t, "let A: Int", out)
}

func TestConsistentGroupBreaksAllWhenTooLong(t *testing.T) {
	cfg := config.Default()
	cfg.LineLength = 10
	cfg.Indentation = indent.Spaces(2)
	ctx := newTestContext(cfg)
	out := ctx.Print(group(10, "aaaaaaaaaa", "bbbbbbbbbb"))
	require.Equal(t, "aaaaaaaaaa\nbbbbbbbbbb", out)
}

func TestOpenBreakIndentsAndCloseBreakDedents(t *testing.T) {
	cfg := config.Default()
	cfg.LineLength = 5
	cfg.Indentation = indent.Spaces(2)
	ctx := newTestContext(cfg)

	s := token.NewStream()
	s.Push(token.Op(token.Consistent))
	s.Push(token.Syn("{"))
	s.Push(token.Brk(token.BreakOpen, 0, false))
	s.Push(token.Syn("body"))
	s.Push(token.BrkClose(0, true, false))
	s.Push(token.Syn("}"))
	s.Push(token.Cl())

	out := ctx.Print(s)
	require.Equal(t, "{\n  body\n}", out)
}

func TestBlankLinesAreCappedByConfiguration(t *testing.T) {
	cfg := config.Default()
	cfg.MaximumBlankLines = 1
	ctx := newTestContext(cfg)

	s := token.NewStream()
	s.Push(token.Syn("a"))
	s.Push(token.NL(5, true)) // user wrote four blank lines
	s.Push(token.Syn("b"))

	out := ctx.Print(s)
	require.Equal(t, "a\n\nb", out) // capped to one blank line (two newlines)
}

func TestNoTrailingWhitespaceOnAnyLine(t *testing.T) {
	cfg := config.Default()
	ctx := newTestContext(cfg)

	s := token.NewStream()
	s.Push(token.Syn("a"))
	s.Push(token.Spc(3, false))
	s.Push(token.NL(1, false))
	s.Push(token.Syn("b"))

	out := ctx.Print(s)
	for _, line := range strings.Split(out, "\n") {
		require.False(t, strings.HasSuffix(line, " "), "line %q ends in whitespace", line)
	}
}

func TestEndOfLineCommentTooLongEmitsDiagnostic(t *testing.T) {
	cfg := config.Default()
	cfg.LineLength = 20
	sink := new(report.Sink)
	ctx := NewContext(cfg, report.NewFile("test.swift", strings.Repeat("x", 64)), sink)

	s := token.NewStream()
	s.Push(token.Syn("let x = 1"))
	comment := token.NewComment(token.Line, []string{" a comment that is too long for the line"})
	s.Push(token.Com(comment, true))

	out := ctx.Print(s)
	require.Contains(t, out, "let x = 1")
	require.Contains(t, out, "// a comment")
	require.Len(t, sink.Diagnostics(), 1)
	require.Contains(t, sink.Diagnostics()[0].Message, "end-of-line comment exceeds the line length")
}

func TestUnmatchedBreakOpenPanicsAtEndOfStream(t *testing.T) {
	cfg := config.Default()
	ctx := newTestContext(cfg)

	s := token.NewStream()
	s.Push(token.Syn("a"))
	s.Push(token.Brk(token.BreakOpen, 0, false))

	require.Panics(t, func() {
		ctx.Print(s)
	})
}

func TestPartialRegionLeavesOutOfWindowLinesAlone(t *testing.T) {
	cfg := config.Default()
	cfg.LineLength = 5
	ctx := newTestContext(cfg).WithRange(config.Range{StartLine: 2, EndLine: 2})

	s := token.NewStream()
	s.Push(token.Syn("aaaaaaaaaa").WithSourceLine(1))
	s.Push(token.NL(1, true).WithSourceLine(1))
	s.Push(token.Op(token.Consistent))
	s.Push(token.Syn("bbbbbbbbbb").WithSourceLine(2))
	s.Push(token.Brk(token.BreakSame, 1, false))
	s.Push(token.Syn("cccccccccc").WithSourceLine(2))
	s.Push(token.Cl())

	out := ctx.Print(s)
	lines := strings.Split(out, "\n")
	require.Equal(t, "aaaaaaaaaa", lines[0])
	// Inside the window, the too-long Consistent group still breaks.
	require.True(t, len(lines) > 1)
}

func TestIdempotentOnAlreadyFormattedOutput(t *testing.T) {
	cfg := config.Default()
	cfg.LineLength = 80

	s := group(80, "let", "A:", "Int")
	first := NewContext(cfg, report.NewFile("t.swift", ""), nil).Print(s)

	s2 := token.NewStream()
	s2.Push(token.Op(token.Consistent))
	s2.Push(token.Syn(first))
	s2.Push(token.Cl())
	second := NewContext(cfg, report.NewFile("t.swift", ""), nil).Print(s2)

	require.Equal(t, first, second)
}
