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

import "fmt"

// Token is a single element of a [Stream]: a tagged union whose active
// fields depend on Kind(). See [Kind] for the full list of variants.
//
// Token is a value type; the zero Token is not a valid token of any kind.
// There is no "nil token" sentinel in this package: a Stream is just a flat
// []Token, so absence is expressed by slicing, not by a sentinel value.
type Token struct {
	kind Kind

	text string // Syntax

	style OpenStyle // Open

	breakKind            BreakKind // Break
	size                 int       // Break, Space: spaces emitted when the break does not fire
	mustBreak            bool      // Break(Close): forces the break when the open was on another line
	ignoresDiscretionary bool      // Break: does not wait for a discretionary newline to fire
	flexible             bool      // Space: reserved for producers that want to mark a space as elidable

	count         int  // Newlines
	discretionary bool // Newlines: preserves a user-written blank run, subject to the cap

	comment      Comment // Comment
	wasEndOfLine bool    // Comment: placed on the line of the preceding code token

	verbatim Verbatim // Verbatim

	sourceLine int // 1-based; 0 means synthetic / unknown origin
}

// Kind returns which variant of the tagged union is populated.
func (t Token) Kind() Kind {
	return t.kind
}

// SourceLine returns the 1-based source line this token originated from, or
// 0 if the token is synthetic and has no origin of its own.
func (t Token) SourceLine() int {
	return t.sourceLine
}

// WithSourceLine returns a copy of t with its source line of origin set.
// Used by the token-stream producer to attach positions. The length
// scanner does not rewrite tokens: it maps synthesized tokens to the line
// of the preceding originating token in its own line-origin index.
func (t Token) WithSourceLine(line int) Token {
	t.sourceLine = line
	return t
}

func (t Token) expect(k Kind) {
	if t.kind != k {
		panic(fmt.Sprintf("inkfmt/token: expected %v token, got %v", k, t.kind))
	}
}

// Text returns the literal text of a Syntax token.
//
// Panics if t is not a Syntax token.
func (t Token) Text() string {
	t.expect(Syntax)
	return t.text
}

// OpenStyle returns the grouping style of an Open token.
//
// Panics if t is not an Open token.
func (t Token) OpenStyle() OpenStyle {
	t.expect(Open)
	return t.style
}

// BreakKind returns the kind of a Break token.
//
// Panics if t is not a Break token.
func (t Token) BreakKind() BreakKind {
	t.expect(Break)
	return t.breakKind
}

// Size returns the number of spaces emitted by a Break or Space token when
// it does not turn into a newline.
//
// Panics if t is neither a Break nor a Space token.
func (t Token) Size() int {
	if t.kind != Break && t.kind != Space {
		panic(fmt.Sprintf("inkfmt/token: expected Break or Space token, got %v", t.kind))
	}
	return t.size
}

// MustBreakOnClose returns the mustBreak payload of a Break(Close, ...)
// token: when true, the break is forced if the matching open occurred on a
// different physical line.
//
// Panics if t is not a Break token with BreakKind() == BreakClose.
func (t Token) MustBreakOnClose() bool {
	t.expect(Break)
	if t.breakKind != BreakClose {
		panic("inkfmt/token: MustBreakOnClose called on a non-Close break")
	}
	return t.mustBreak
}

// IgnoresDiscretionary returns whether a Break token's newline, if fired,
// should not be throttled by the blank-line cap the way a discretionary
// Newlines token is.
//
// Panics if t is not a Break token.
func (t Token) IgnoresDiscretionary() bool {
	t.expect(Break)
	return t.ignoresDiscretionary
}

// Flexible returns whether a Space token's spacing may be elided by a
// producer-specific convention. The engine itself never elides a Space; it
// always emits Size() spaces for one.
//
// Panics if t is not a Space token.
func (t Token) Flexible() bool {
	t.expect(Space)
	return t.flexible
}

// Count returns the number of newlines a Newlines token requests.
//
// Panics if t is not a Newlines token.
func (t Token) Count() int {
	t.expect(Newlines)
	return t.count
}

// Discretionary returns whether a Newlines token represents newlines the
// user actually wrote (and so should be preserved, subject to the
// blank-line cap) as opposed to one synthesized by the token builder.
//
// Panics if t is not a Newlines token.
func (t Token) Discretionary() bool {
	t.expect(Newlines)
	return t.discretionary
}

// Comment returns the comment payload of a Comment token.
//
// Panics if t is not a Comment token.
func (t Token) Comment() Comment {
	t.expect(Comment)
	return t.comment
}

// WasEndOfLine returns whether a Comment token was written at the end of a
// line of code, as opposed to on a line of its own.
//
// Panics if t is not a Comment token.
func (t Token) WasEndOfLine() bool {
	t.expect(Comment)
	return t.wasEndOfLine
}

// Verbatim returns the payload of a Verbatim token.
//
// Panics if t is not a Verbatim token.
func (t Token) Verbatim() Verbatim {
	t.expect(Verbatim)
	return t.verbatim
}

// Syn constructs a Syntax token.
func Syn(text string) Token {
	return Token{kind: Syntax, text: text}
}

// Op constructs an Open token with the given grouping style.
func Op(style OpenStyle) Token {
	return Token{kind: Open, style: style}
}

// Cl constructs a Close token.
func Cl() Token {
	return Token{kind: Close}
}

// Brk constructs a Break token that is not a Close break.
//
// Panics if kind is BreakClose; use [BrkClose] for those.
func Brk(kind BreakKind, size int, ignoresDiscretionary bool) Token {
	if kind == BreakClose {
		panic("inkfmt/token: use BrkClose to construct a Break(Close, ...) token")
	}
	return Token{kind: Break, breakKind: kind, size: size, ignoresDiscretionary: ignoresDiscretionary}
}

// BrkClose constructs a Break(Close, mustBreak) token.
func BrkClose(size int, mustBreak, ignoresDiscretionary bool) Token {
	return Token{
		kind:                 Break,
		breakKind:            BreakClose,
		size:                 size,
		mustBreak:            mustBreak,
		ignoresDiscretionary: ignoresDiscretionary,
	}
}

// Spc constructs a Space token.
func Spc(size int, flexible bool) Token {
	return Token{kind: Space, size: size, flexible: flexible}
}

// NL constructs a Newlines token.
func NL(count int, discretionary bool) Token {
	if count < 1 {
		panic("inkfmt/token: Newlines count must be >= 1")
	}
	return Token{kind: Newlines, count: count, discretionary: discretionary}
}

// Com constructs a Comment token.
func Com(c Comment, wasEndOfLine bool) Token {
	return Token{kind: Comment, comment: c, wasEndOfLine: wasEndOfLine}
}

// Verb constructs a Verbatim token.
func Verb(v Verbatim) Token {
	return Token{kind: Verbatim, verbatim: v}
}
