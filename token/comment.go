// Copyright 2020-2024 Buf Technologies, Inc.
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

package token

import (
	"strings"
	"unicode"

	"github.com/inkfmt/inkfmt/internal/width"
)

// CommentKind classifies a [Comment] by its lexical delimiter.
type CommentKind byte

const (
	// Line is a "//" comment.
	Line CommentKind = iota + 1
	// DocLine is a "///" doc comment; its body may be reflowed as Markdown.
	DocLine
	// Block is a "/* */" comment.
	Block
	// DocBlock is a "/** */" doc comment.
	DocBlock
)

// Prefix returns the fixed textual prefix for this comment kind.
func (k CommentKind) Prefix() string {
	switch k {
	case Line:
		return "//"
	case DocLine:
		return "///"
	case Block:
		return "/*"
	case DocBlock:
		return "/**"
	default:
		return "//"
	}
}

// IsDoc returns whether this comment kind participates in doc-comment
// reflow.
func (k CommentKind) IsDoc() bool {
	return k == DocLine || k == DocBlock
}

// IsBlock returns whether this comment kind is terminated by "*/" rather
// than by end of line.
func (k CommentKind) IsBlock() bool {
	return k == Block || k == DocBlock
}

// Comment is a normalized, classified comment: its kind, its body split
// into lines with any comment-margin whitespace and delimiters already
// stripped, and a precomputed visual print length.
type Comment struct {
	Kind  CommentKind
	Lines []string
	// Length is the visual length the comment contributes to a line: for a
	// single-line comment this is prefix + body + any separators; for a
	// multi-line comment the length scanner only cares that it is nonzero,
	// since a multi-line comment always forces a break one way or another.
	Length int
}

// NewComment builds a [Comment] from the given kind and raw, un-prefixed,
// un-margined text lines, computing Length to include prefix characters
// and any required inter-line separators.
func NewComment(kind CommentKind, lines []string) Comment {
	c := Comment{Kind: kind, Lines: lines}
	c.Length = c.measure()
	return c
}

func (c Comment) measure() int {
	if len(c.Lines) == 0 {
		return width.Width(c.Kind.Prefix(), 1)
	}
	prefix := c.Kind.Prefix()
	total := 0
	for i, line := range c.Lines {
		if i > 0 {
			total++ // "\n" separator
		}
		total += width.Width(prefix, 1) + width.Width(line, 1)
	}
	if c.Kind.IsBlock() {
		total += width.Width("*/", 1)
	}
	return total
}

// commentFormatter incrementally builds the normalized Lines of a Comment
// out of raw lexical comment text (including delimiters), stripping a
// uniform margin the way gofmt and swift-format both do: the margin is
// whatever whitespace prefixes the first body line, and it is trimmed from
// every subsequent line too so that re-indenting the comment at print time
// doesn't duplicate the original indentation.
type commentFormatter struct {
	lines  []string
	margin string
}

// appendLine folds one raw "//" or "///" line into the formatter.
func (c *commentFormatter) appendLine(raw, linePrefix string) {
	text := strings.TrimPrefix(raw, linePrefix)
	text = strings.TrimSuffix(text, "\n")
	if c.margin == "" {
		c.margin, text = trimLeadingWhitespace(text)
	} else {
		text = strings.TrimPrefix(text, c.margin)
	}
	c.lines = append(c.lines, text)
}

// appendBlock folds a raw "/* ... */" or "/** ... */" block into the
// formatter, stripping the delimiters and, when every continuation line
// starts with '*', stripping the leading asterisk column as well (the
// common "/**\n * foo\n */" doc-comment style).
func (c *commentFormatter) appendBlock(raw, openPrefix string) {
	text := strings.TrimPrefix(raw, openPrefix)
	text = strings.TrimSuffix(text, "*/")

	start := len(c.lines)
	c.lines = append(c.lines, strings.Split(text, "\n")...)
	lines := c.lines[start:]
	if len(lines) <= 1 {
		return
	}

	haveStars := true
	var margin string
	for i, line := range lines[1:] {
		var rest string
		if margin == "" {
			margin, rest = trimLeadingWhitespace(line)
		} else {
			rest = strings.TrimPrefix(line, margin)
		}
		if !strings.HasPrefix(rest, "*") {
			haveStars = false
		}
		lines[i+1] = rest
	}
	if !haveStars {
		return
	}

	margin = ""
	for i, line := range lines {
		line = strings.TrimPrefix(line, "*")
		if margin == "" {
			margin, line = trimLeadingWhitespace(line)
		} else {
			line = strings.TrimPrefix(line, margin)
		}
		lines[i] = line
	}
}

// trimLeadingWhitespace splits s into its leading run of pattern
// whitespace and everything after it. The leading run becomes the margin a
// commentFormatter strips from every subsequent line, so trimming the
// wrong end here would silently break margin detection for any comment
// body that isn't already left-flush.
func trimLeadingWhitespace(s string) (space, rest string) {
	rest = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.Is(unicode.Pattern_White_Space, r)
	})
	return s[:len(s)-len(rest)], rest
}
