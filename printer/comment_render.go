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

	"zombiezen.com/go/commonmark"

	"github.com/inkfmt/inkfmt/config"
	"github.com/inkfmt/inkfmt/internal/width"
	"github.com/inkfmt/inkfmt/token"
)

// renderComment renders c's text, including delimiters, ready to be passed
// to [Printer.write]. indentText is the rendering of the current effective
// indentation, used to re-indent every continuation line of a multi-line
// comment.
func renderComment(c token.Comment, indentText string, cfg config.Configuration) string {
	switch c.Kind {
	case token.Line:
		return joinCommentLines(c.Lines, indentText, "//")
	case token.DocLine:
		if cfg.ReflowDocComments {
			return renderReflowedDoc(c, indentText, cfg)
		}
		return joinCommentLines(c.Lines, indentText, "///")
	case token.Block, token.DocBlock:
		return renderBlockComment(c, indentText)
	default:
		return ""
	}
}

// joinCommentLines renders a line-style comment ("//" or "///"), prefixing
// every line and re-indenting continuation lines to indentText.
func joinCommentLines(lines []string, indentText, prefix string) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(indentText)
		}
		b.WriteString(prefix)
		b.WriteString(line)
	}
	return b.String()
}

// renderBlockComment renders a "/* */" or "/** */" comment, emitting the
// original body lines joined with newlines and terminated with "*/".
func renderBlockComment(c token.Comment, indentText string) string {
	prefix := c.Kind.Prefix()
	if len(c.Lines) <= 1 {
		var line string
		if len(c.Lines) == 1 {
			line = c.Lines[0]
		}
		return prefix + line + "*/"
	}

	var b strings.Builder
	b.WriteString(prefix)
	for _, line := range c.Lines {
		b.WriteString("\n")
		b.WriteString(indentText)
		b.WriteString(line)
	}
	b.WriteString("\n")
	b.WriteString(indentText)
	b.WriteString("*/")
	return b.String()
}

// renderReflowedDoc reflows a DocLine comment's body as Markdown, wrapping
// it to lineLength - currentIndentWidth.
func renderReflowedDoc(c token.Comment, indentText string, cfg config.Configuration) string {
	const prefix = "/// "

	limit := cfg.LineLength - width.Width(indentText, cfg.TabWidth) - width.Width(prefix, 1)
	if limit < 1 {
		limit = 1
	}

	body := strings.Join(c.Lines, "\n")
	wrapped := reflowMarkdown(body, limit)
	for i, line := range wrapped {
		wrapped[i] = normalizeQuotes(strings.TrimRight(line, " \t"))
	}
	return joinCommentLines(wrapped, indentText, prefix)
}

// renderVerbatim renders a Verbatim block at the given effective
// indentation, pasting its lines without reflow.
func renderVerbatim(v token.Verbatim, indentText string) string {
	if !v.Multiline() {
		if len(v.Lines) == 0 {
			return ""
		}
		return v.Lines[0]
	}
	return strings.Join(v.Lines, "\n"+indentText)
}

// reflowMarkdown parses body as CommonMark and re-wraps its paragraphs to
// limit visual columns. Non-paragraph blocks (headings, lists, fenced
// code) are passed through verbatim: reflowing their structure is out of
// scope for a doc-comment line-wrap pass.
func reflowMarkdown(body string, limit int) []string {
	roots := commonmark.Parse([]byte(body))
	var out []string
	for _, root := range roots {
		out = append(out, reflowBlocks(root.Children(), root.Source, limit)...)
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

func reflowBlocks(nodes []commonmark.Node, source []byte, limit int) []string {
	var out []string
	for _, n := range nodes {
		b := n.Block()
		if b == nil {
			continue
		}
		if b.Kind() == commonmark.ParagraphKind {
			out = append(out, wrapWords(inlineText(b, source), limit)...)
			continue
		}
		raw := strings.TrimRight(string(source[b.Start():b.End()]), "\n")
		if raw != "" {
			out = append(out, strings.Split(raw, "\n")...)
		}
	}
	return out
}

// inlineText flattens a block's inline children into a single string,
// treating soft/hard line breaks as spaces so wrapWords can re-flow them.
func inlineText(b *commonmark.Block, source []byte) string {
	var sb strings.Builder
	for _, child := range b.Children() {
		if inl := child.Inline(); inl != nil {
			appendInlineText(&sb, inl, source)
		}
	}
	return sb.String()
}

func appendInlineText(sb *strings.Builder, inl *commonmark.Inline, source []byte) {
	if n := inl.ChildCount(); n > 0 {
		for i := 0; i < n; i++ {
			appendInlineText(sb, inl.Child(i), source)
		}
		return
	}
	text := inl.Text(source)
	if text == "\n" {
		text = " "
	}
	sb.WriteString(text)
}

// wrapWords greedily wraps text to at most limit visual columns per line.
func wrapWords(text string, limit int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0
	for _, word := range words {
		wordWidth := width.Width(word, 1)
		if cur.Len() > 0 && curWidth+1+wordWidth > limit {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(word)
		curWidth += wordWidth
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// normalizeQuotes undoes any typographic quote substitution the Markdown
// reflow pass may have introduced, normalizing curly quotes back to their
// ASCII equivalents.
func normalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

var quoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", "\"", "”", "\"",
)
