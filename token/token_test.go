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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSynTextRoundTrips(t *testing.T) {
	tok := Syn("let x = 1")
	require.Equal(t, Syntax, tok.Kind())
	require.Equal(t, "let x = 1", tok.Text())
}

func TestAccessorPanicsOnWrongKind(t *testing.T) {
	tok := Syn("a")
	require.Panics(t, func() { tok.OpenStyle() })
	require.Panics(t, func() { tok.BreakKind() })
	require.Panics(t, func() { tok.Comment() })
	require.Panics(t, func() { tok.Verbatim() })
}

func TestSizeAcceptsBreakAndSpace(t *testing.T) {
	require.Equal(t, 2, Brk(BreakSame, 2, false).Size())
	require.Equal(t, 3, Spc(3, false).Size())
	require.Panics(t, func() { Syn("a").Size() })
}

func TestBrkPanicsForBreakClose(t *testing.T) {
	require.Panics(t, func() { Brk(BreakClose, 0, false) })
}

func TestBrkCloseMustBreakOnClose(t *testing.T) {
	tok := BrkClose(0, true, false)
	require.Equal(t, BreakClose, tok.BreakKind())
	require.True(t, tok.MustBreakOnClose())

	require.Panics(t, func() { Brk(BreakSame, 0, false).MustBreakOnClose() })
}

func TestNLRejectsNonPositiveCount(t *testing.T) {
	require.Panics(t, func() { NL(0, false) })
	tok := NL(2, true)
	require.Equal(t, 2, tok.Count())
	require.True(t, tok.Discretionary())
}

func TestWithSourceLineIsImmutable(t *testing.T) {
	base := Syn("a")
	tagged := base.WithSourceLine(7)
	require.Equal(t, 0, base.SourceLine())
	require.Equal(t, 7, tagged.SourceLine())
}
