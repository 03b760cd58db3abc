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

package indent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfmt/inkfmt/indent"
)

func TestRenderAndWidth(t *testing.T) {
	var ind indent.Indent
	ind.Push(indent.Spaces(2))
	ind.Push(indent.Tabs(1))

	assert.Equal(t, "  \t", ind.Render())
	assert.Equal(t, 2+4, ind.Width(4))
}

func TestPopEmptyPanics(t *testing.T) {
	var ind indent.Indent
	require.Panics(t, func() { ind.Pop() })
}

func TestCloneIsIndependent(t *testing.T) {
	var ind indent.Indent
	ind.Push(indent.Spaces(2))

	clone := ind.Clone()
	clone.Push(indent.Spaces(2))

	assert.Equal(t, 2, ind.Width(4))
	assert.Equal(t, 4, clone.Width(4))
}

func TestRegular(t *testing.T) {
	assert.True(t, indent.Regular("    x", indent.Spaces(2)))
	assert.False(t, indent.Regular("  \tx", indent.Spaces(2)))
}
