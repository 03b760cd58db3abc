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

package difftest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffEmptyWhenEqual(t *testing.T) {
	require.Equal(t, "", Diff("x", "a\nb\n", "a\nb\n"))
}

func TestDiffReportsMismatch(t *testing.T) {
	out := Diff("x.swift", "a\nb\n", "a\nc\n")
	require.NotEmpty(t, out)
	require.Contains(t, out, "x.swift (want)")
	require.Contains(t, out, "x.swift (got)")
}
