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

	"github.com/inkfmt/inkfmt/internal/width"
)

// Verbatim is a pre-rendered, possibly multi-line block of text that the
// engine pastes into the output without reflowing it. Typical producers
// are raw string literals and unparsed embedded languages.
type Verbatim struct {
	// Lines are the block's lines, already laid out relative to its own
	// internal indentation baseline.
	Lines []string
}

// NewVerbatim splits text on "\n" to build a Verbatim block.
func NewVerbatim(text string) Verbatim {
	return Verbatim{Lines: strings.Split(text, "\n")}
}

// Multiline reports whether this block spans more than one line.
func (v Verbatim) Multiline() bool {
	return len(v.Lines) > 1
}

// Width returns the visual width of the block's single line. Only
// meaningful when !Multiline(); multi-line blocks are always considered
// "too wide to fit" by the length scanner.
func (v Verbatim) Width(tabWidth int) int {
	if len(v.Lines) == 0 {
		return 0
	}
	return width.Width(v.Lines[0], tabWidth)
}
