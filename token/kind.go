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

const (
	_ Kind = iota // zero value is intentionally not a valid kind

	Syntax   // printable text of a lexical token
	Open     // begins a group
	Close    // ends the nearest open group
	Break    // a potential newline site
	Space    // mandatory horizontal spacing, never a newline
	Newlines // forced newlines, subject to the blank-line cap
	Comment  // a formatted comment
	Verbatim // a pre-rendered multi-line block, pasted without reflow
)

// Kind identifies which variant of the [Token] tagged union is populated.
type Kind byte

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Open:
		return "Open"
	case Close:
		return "Close"
	case Break:
		return "Break"
	case Space:
		return "Space"
	case Newlines:
		return "Newlines"
	case Comment:
		return "Comment"
	case Verbatim:
		return "Verbatim"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}

// OpenStyle is the payload of an [Open] token.
type OpenStyle byte

const (
	// Consistent groups break all of their breaks, or none of them.
	Consistent OpenStyle = iota + 1
	// Inconsistent groups decide each break independently.
	Inconsistent
)

// String implements [fmt.Stringer].
func (s OpenStyle) String() string {
	switch s {
	case Consistent:
		return "Consistent"
	case Inconsistent:
		return "Inconsistent"
	default:
		return fmt.Sprintf("token.OpenStyle(%d)", int(s))
	}
}

// BreakKind identifies what a [Break] token does to the indentation and
// continuation state when it fires.
type BreakKind byte

const (
	// BreakOpen pushes indentation when fired; pairs with a matching
	// BreakClose.
	BreakOpen BreakKind = iota + 1
	// BreakClose pops the matching BreakOpen.
	BreakClose
	// BreakContinue marks the subsequent line as a continuation line.
	BreakContinue
	// BreakSame produces a newline at the same indent as the scope.
	BreakSame
	// BreakReset clears continuation; must itself fire if the line is
	// currently a continuation.
	BreakReset
)

// String implements [fmt.Stringer].
func (k BreakKind) String() string {
	switch k {
	case BreakOpen:
		return "BreakOpen"
	case BreakClose:
		return "BreakClose"
	case BreakContinue:
		return "BreakContinue"
	case BreakSame:
		return "BreakSame"
	case BreakReset:
		return "BreakReset"
	default:
		return fmt.Sprintf("token.BreakKind(%d)", int(k))
	}
}
