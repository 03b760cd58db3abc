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

// package width exports functions which measure the number of terminal
// window cells that a particular Unicode string can be expected to use up,
// via [github.com/rivo/uniseg]'s East-Asian-width-aware grapheme counting.
//
// This is what the length scanner, comment measurement, and doc-comment
// reflow use in place of len(s) or utf8.RuneCountInString(s), so that
// double-width runes and
// combining marks are measured the way a terminal or editor would
// actually lay them out.
package width

import "github.com/rivo/uniseg"

// Width makes a best-effort guess at the width of s when displayed on a
// terminal. Tabstops ('\t') are special-cased: each one advances to the
// next column that is a multiple of tabstop.
func Width(s string, tabstop int) int {
	if tabstop <= 0 {
		tabstop = 1
	}

	total := 0
	remainder := s
	for remainder != "" {
		var cluster string
		cluster, remainder, _, _ = uniseg.FirstGraphemeClusterInString(remainder, -1)
		if cluster == "\t" {
			total += tabstop - total%tabstop
			continue
		}
		total += uniseg.StringWidth(cluster)
	}
	return total
}

// Ruler tracks the state of an ongoing measurement, for callers that need
// to measure text one piece at a time. Tabs are measured with a tab stop
// of 1.
//
// A zero Ruler is ready to use.
type Ruler struct {
	width int
}

// Measure adds s's width to the running tally and returns the new total.
func (r *Ruler) Measure(s string) int {
	r.width += Width(s, 1)
	return r.width
}

// Width returns the width this ruler has measured so far.
func (r *Ruler) Width() int {
	return r.width
}
