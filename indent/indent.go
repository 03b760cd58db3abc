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

// Package indent represents indentation as a sequence of indent units and
// measures/renders it against a configured tab width.
package indent

import (
	"strings"
)

// UnitKind distinguishes the two flavors of indent unit.
type UnitKind byte

const (
	// SpacesKind is a run of literal space characters.
	SpacesKind UnitKind = iota + 1
	// TabsKind is a run of literal tab characters.
	TabsKind
)

// Unit is one element of an [Indent]: a run of n spaces or n tabs.
type Unit struct {
	Kind UnitKind
	N    int
}

// Spaces constructs a Unit of n space characters.
func Spaces(n int) Unit { return Unit{Kind: SpacesKind, N: n} }

// Tabs constructs a Unit of n tab characters.
func Tabs(n int) Unit { return Unit{Kind: TabsKind, N: n} }

func (u Unit) render() string {
	switch u.Kind {
	case TabsKind:
		return strings.Repeat("\t", u.N)
	default:
		return strings.Repeat(" ", u.N)
	}
}

func (u Unit) width(tabWidth int) int {
	switch u.Kind {
	case TabsKind:
		return u.N * tabWidth
	default:
		return u.N
	}
}

// Indent is an ordered sequence of indent [Unit]s, as pushed onto the
// printer's indentationStack by fired Open breaks and by persisted
// continuations.
type Indent struct {
	units []Unit
}

// Push appends a unit to the indent.
func (ind *Indent) Push(u Unit) {
	ind.units = append(ind.units, u)
}

// Pop removes the most recently pushed unit. Panics if ind is empty — the
// printer never pops more units than it pushed.
func (ind *Indent) Pop() {
	if len(ind.units) == 0 {
		panic("inkfmt/indent: Pop called on an empty Indent")
	}
	ind.units = ind.units[:len(ind.units)-1]
}

// Len returns the number of units currently pushed.
func (ind *Indent) Len() int {
	return len(ind.units)
}

// Render returns the literal text of the indent, one unit after another.
func (ind *Indent) Render() string {
	var b strings.Builder
	for _, u := range ind.units {
		b.WriteString(u.render())
	}
	return b.String()
}

// Width returns the visual column width of the indent, given the
// configured tab width.
func (ind *Indent) Width(tabWidth int) int {
	total := 0
	for _, u := range ind.units {
		total += u.width(tabWidth)
	}
	return total
}

// Clone returns an independent copy of ind.
func (ind *Indent) Clone() *Indent {
	return &Indent{units: append([]Unit(nil), ind.units...)}
}

// Regular reports whether line, an already-rendered line of output, begins
// with zero or more whole copies of unit and then either ends or starts a
// non-whitespace character — i.e. it does not mix indent-unit kinds. Tabs
// and spaces used together (e.g. "\t " continuation padding) are
// considered regular only
// when unit itself is a mixed single-unit render, which this package never
// produces; mixed input should be checked by the caller one Unit at a time.
func Regular(line string, unit Unit) bool {
	rendered := unit.render()
	if rendered == "" {
		return true
	}
	trimmed := line
	for strings.HasPrefix(trimmed, rendered) {
		trimmed = trimmed[len(rendered):]
	}
	return !strings.HasPrefix(trimmed, " ") && !strings.HasPrefix(trimmed, "\t")
}
