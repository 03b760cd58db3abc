package interval_test

import (
	"testing"

	"github.com/inkfmt/inkfmt/internal/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	t.Parallel()
	type r struct {
		start, end, line int
	}

	tests := []struct {
		name   string
		ranges []r  // token-index runs to insert.
		want   int  // if wantOK, the line of the overlap for the last range.
		wantOK bool
	}{
		{
			name:   "empty-index",
			ranges: []r{{0, 9, 1}},
		},
		{
			name: "new-max",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
			},
		},
		{
			name: "new-min",
			ranges: []r{
				{30, 39, 2},
				{0, 9, 1},
			},
		},

		{
			name: "case-1",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
				{20, 25, 3},
			},
		},
		{
			name: "case-1",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
				{20, 29, 3},
			},
		},
		{
			name: "case-1",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
				{10, 19, 3},
			},
		},
		{
			name: "case-1",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
				{10, 29, 3},
			},
		},

		{
			name: "case-2",
			ranges: []r{
				{0, 9, 1},
				{1, 2, 3},
			},
			want:   1,
			wantOK: true,
		},
		{
			name: "case-2",
			ranges: []r{
				{0, 9, 1},
				{0, 2, 3},
			},
			want:   1,
			wantOK: true,
		},
		{
			name: "case-2",
			ranges: []r{
				{0, 9, 1},
				{0, 9, 3},
			},
			want:   1,
			wantOK: true,
		},

		{
			name: "case-3",
			ranges: []r{
				{0, 9, 1},
				{9, 12, 3},
			},
			want:   1,
			wantOK: true,
		},
		{
			name: "case-3",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
				{9, 12, 3},
			},
			want:   1,
			wantOK: true,
		},
		{
			name: "case-3",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
				{9, 29, 3},
			},
			want:   1,
			wantOK: true,
		},
		{
			name: "case-3",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
				{9, 30, 3},
			},
			want:   1,
			wantOK: true,
		},

		{
			name: "case-4",
			ranges: []r{
				{0, 10, 1},
				{-2, 0, 3},
			},
			want:   1,
			wantOK: true,
		},
		{
			name: "case-4",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
				{20, 32, 3},
			},
			want:   2,
			wantOK: true,
		},
		{
			name: "case-4",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
				{10, 32, 3},
			},
			want:   2,
			wantOK: true,
		},

		{
			name: "case-5",
			ranges: []r{
				{0, 9, 1},
				{-2, 12, 3},
			},
			want:   1,
			wantOK: true,
		},
		{
			name: "case-5",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
				{-2, 29, 3},
			},
			want:   1,
			wantOK: true,
		},
		{
			name: "case-5",
			ranges: []r{
				{0, 9, 1},
				{30, 39, 2},
				{-2, 30, 3},
			},
			want:   1,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := new(interval.LineIndex)
			for i, e := range tt.ranges {
				overlap := m.Insert(e.start, e.end, e.line)
				if i < len(tt.ranges)-1 || !tt.wantOK {
					require.Nil(t, overlap.Line)
				} else {
					require.NotNil(t, overlap.Line)
					assert.Equal(t, tt.want, *overlap.Line)
				}
				t.Logf("%v", m)
			}
		})
	}
}

func TestGetMissReturnsNilLine(t *testing.T) {
	t.Parallel()

	m := new(interval.LineIndex)
	m.Insert(10, 20, 5)

	got := m.Get(25)
	require.Nil(t, got.Line)
}

func TestGetHitReturnsBoundingRun(t *testing.T) {
	t.Parallel()

	m := new(interval.LineIndex)
	m.Insert(10, 20, 5)

	got := m.Get(15)
	require.NotNil(t, got.Line)
	assert.Equal(t, 5, *got.Line)
	assert.Equal(t, 10, got.Start)
	assert.Equal(t, 20, got.End)
}
