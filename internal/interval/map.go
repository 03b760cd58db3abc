package interval

import (
	"fmt"

	"github.com/tidwall/btree"
)

// LineIndex maps disjoint, closed token-index intervals to the 1-based
// source line the tokens in that interval originated from. The printer
// builds one per [printer.Context.Print] call so that partial-region mode
// and diagnostic spans can answer "what source line was token i on",
// including for synthesized tokens that carry no line of their own.
//
// A zero LineIndex is ready to use.
type LineIndex struct {
	// Keys in this tree are the ends of runs in the index.
	tree btree.Map[int, *run]
}

// Interval is a token-index range returned by [LineIndex.Get] or
// [LineIndex.Insert]: Start and End are inclusive token indices, and Line
// is the source line they share. Line is nil when no run covers the
// queried index.
type Interval struct {
	Start, End int
	Line       *int
}

// Get looks up the run of tokens that contains tokenIndex, if one exists.
//
// If no such run exists, the Line of the returned [Interval] will be nil.
func (m *LineIndex) Get(tokenIndex int) Interval {
	iter := m.tree.Iter()
	found := iter.Seek(tokenIndex)

	if !found || tokenIndex < iter.Value().start {
		// The run at iter, if any, starts after tokenIndex: it does not
		// contain it. It is implicit already that tokenIndex <= end.
		return Interval{}
	}

	return Interval{
		Start: iter.Value().start,
		End:   iter.Key(),
		Line:  &iter.Value().line,
	}
}

// Insert records that the closed token-index range [start, end] originated
// from the given source line. Both endpoints are inclusive.
//
// If [start, end] overlaps a run already present in the index, Insert
// leaves the index unmodified and returns the overlapping run with the
// least start. This case is distinguished by overlap.Line != nil.
func (m *LineIndex) Insert(start, end, line int) (overlap Interval) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%d) > end (%d)", start, end))
	}

	// Five cases to handle. Let start and end be a and b here.
	//
	// 1. [a, b] does not overlap any run.
	// 2. [a, b] is a subset of a run.
	// 3. [a, b] intersects the greatest run before it.
	// 4. [a, b] intersects the least run after it.
	// 5. [a, b] contains a run.

	iter := m.tree.Iter()
	if !iter.Seek(start) {
		// Either the index is empty, or every run ends before start: this
		// is a degenerate version of case (1).
		m.tree.Set(end, &run{start: start, line: line})
		return Interval{}
	}

	switch {
	case end < iter.Value().start:
		// a <= b < c <= d, where [c, d] is the least run with a <= d. Case
		// (1).
		m.tree.Set(end, &run{start: start, line: line})
		return Interval{}

	case end <= iter.Key():
		// c <= b <= d. Case (2), or case (4) when a < c.
		return Interval{
			Start: iter.Value().start,
			End:   iter.Key(),
			Line:  &iter.Value().line,
		}
	}

	// Check for case (3): c <= a <= d <= b, where [c, d) is the greatest
	// run with d <= b.
	iter.Seek(end)
	notFirst := iter.Prev()
	if notFirst {
		if start <= iter.Key() {
			// Case (3), and also case (5): a <= c <= d <= b.
			return Interval{
				Start: iter.Value().start,
				End:   iter.Key(),
				Line:  &iter.Value().line,
			}
		}
	}

	// Check for case (4): a <= c <= b <= d, where [c, d) is the least run
	// with b <= d.
	if notFirst {
		iter.Next() // Undo the iter.Prev() above, if it succeeded.
	}

	// By elimination, this is case (4).
	return Interval{
		Start: iter.Value().start,
		End:   iter.Key(),
		Line:  &iter.Value().line,
	}
}

// Format implements [fmt.Formatter], rendering the index as
// "{[start, end]: line, ...}" for use in test failure output.
func (m *LineIndex) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	m.tree.Scan(func(end int, r *run) bool {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false

		if r.start == end {
			fmt.Fprintf(s, "%d: ", r.start)
		} else {
			fmt.Fprintf(s, "[%d, %d]: ", r.start, end)
		}
		fmt.Fprintf(s, fmt.FormatString(s, v), r.line)

		return true
	})
	fmt.Fprint(s, "}")
}

type run struct {
	start int
	line  int
}
