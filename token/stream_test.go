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

func TestStreamPushAndAt(t *testing.T) {
	s := NewStream()
	i := s.Push(Syn("a"))
	require.Equal(t, 0, i)
	require.Equal(t, 1, s.Len())
	require.Equal(t, "a", s.At(0).Text())
}

func TestStreamSetReplacesToken(t *testing.T) {
	s := NewStream()
	s.Push(Syn("a"))
	s.Set(0, Syn("a").WithSourceLine(3))
	require.Equal(t, 3, s.At(0).SourceLine())
}

func TestStreamAllIteratesInOrder(t *testing.T) {
	s := NewStream()
	s.Push(Syn("a"))
	s.Push(Syn("b"))

	var texts []string
	s.All()(func(i int, tok Token) bool {
		texts = append(texts, tok.Text())
		return true
	})
	require.Equal(t, []string{"a", "b"}, texts)
}

func TestStreamValidateBalancedOK(t *testing.T) {
	s := NewStream()
	s.Push(Op(Consistent))
	s.Push(Syn("a"))
	s.Push(Brk(BreakOpen, 0, false))
	s.Push(Syn("b"))
	s.Push(BrkClose(0, false, false))
	s.Push(Cl())

	_, _, ok := s.Validate()
	require.True(t, ok)
}

func TestStreamValidateCatchesUnmatchedClose(t *testing.T) {
	s := NewStream()
	s.Push(Cl())

	index, kind, ok := s.Validate()
	require.False(t, ok)
	require.Equal(t, 0, index)
	require.Equal(t, Close, kind)
}

func TestStreamValidateCatchesUnclosedOpen(t *testing.T) {
	s := NewStream()
	s.Push(Op(Consistent))
	s.Push(Syn("a"))

	index, kind, ok := s.Validate()
	require.False(t, ok)
	require.Equal(t, 2, index)
	require.Equal(t, Open, kind)
}

func TestStreamValidateCatchesUnbalancedBreakOpen(t *testing.T) {
	s := NewStream()
	s.Push(Brk(BreakOpen, 0, false))

	index, kind, ok := s.Validate()
	require.False(t, ok)
	require.Equal(t, 1, index)
	require.Equal(t, Break, kind)
}
