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

// Package difftest renders a unified diff between an expected and an
// actual string, for use in golden and idempotence tests where a bare
// require.Equal failure message is too long to read.
package difftest

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff of want vs. got, with "<name> (want)" and
// "<name> (got)" as the "from"/"to" file names, or "" if the two are
// identical.
func Diff(name string, want, got string) string {
	if want == got {
		return ""
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: fmt.Sprintf("%s (want)", name),
		ToFile:   fmt.Sprintf("%s (got)", name),
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("want:\n%s\ngot:\n%s", want, got)
	}
	return text
}
