package beamtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T, g *Geomstr) *BeamTable {
	t.Helper()
	table := NewBeamTable(g)
	require.NoError(t, table.Build())
	return table
}

func TestMask_And_Or_Not_ShapeMismatchPanics(t *testing.T) {
	g := NewGeomstr()
	g.Rect(0, 0, 10, 10, 1)
	table := buildTable(t, g)
	m := table.EvenOddFill(1)

	bad := Mask{Inside: [][]bool{{true}}}
	assert.Panics(t, func() { m.And(bad) })
	assert.Panics(t, func() { m.Or(bad) })
}

func TestMask_BooleanAlgebraLaws(t *testing.T) {
	g := NewGeomstr()
	g.Rect(0, 0, 10, 10, 1)
	g.Rect(5, 0, 10, 10, 2)
	table := buildTable(t, g)

	m1 := table.EvenOddFill(1)
	m2 := table.EvenOddFill(2)
	_ = m2

	notNot := m1.Not().Not()
	assert.Equal(t, m1, notNot)

	assert.Equal(t, m1, m1.And(m1))
	assert.Equal(t, m1, m1.Or(m1))

	zero := m1.And(m1.Not())
	for _, row := range zero.Inside {
		for _, v := range row {
			assert.False(t, v)
		}
	}

	one := m1.Or(m1.Not())
	for _, row := range one.Inside {
		for _, v := range row {
			assert.True(t, v)
		}
	}
}

func TestMask_EvenOddFill_TwoDisjointRectangles_RoundTrip(t *testing.T) {
	g := NewGeomstr()
	g.Rect(0, 0, 10, 10, 1)
	g.Rect(20, 0, 10, 10, 1)
	table := buildTable(t, g)

	mask := table.EvenOddFill(1)
	region := table.Create(mask, false)

	assert.Len(t, region.Segments, 8, "4 boundary segments per disjoint rectangle")
	for _, seg := range region.Segments {
		assert.Equal(t, 1.0, seg.Meta.Label)
	}
}

func TestMask_UnionVsIntersection(t *testing.T) {
	g := NewGeomstr()
	g.Rect(0, 0, 10, 10, 1)
	g.Rect(5, 0, 10, 10, 2)
	table := buildTable(t, g)

	m1 := table.EvenOddFill(1)
	m2 := table.EvenOddFill(2)

	union := table.Create(m1.Or(m2), false)
	intersection := table.Create(m1.And(m2), false)

	assert.NotEmpty(t, union.Segments)
	assert.NotEmpty(t, intersection.Segments)
	assert.NotEqual(t, len(union.Segments), 0)
	assert.Less(t, len(intersection.Segments), len(union.Segments)+1)
}

func TestMask_EvenOddIgnoringOrigin(t *testing.T) {
	g := NewGeomstr()
	g.Rect(0, 0, 10, 10, 1)
	g.Rect(2, 2, 4, 4, 2) // different label, nested

	table := buildTable(t, g)
	mask := table.EvenOddIgnoringOrigin()
	region := table.Create(mask, false)

	// Ignoring origin toggles on every active regardless of label, so every
	// non-degenerate active in every beam is a boundary of the combined
	// curve; with a nested shape of a different label, that includes edges
	// subdivided at the inner rectangle's events, so more than the 8 plain
	// boundary segments of the two shapes are reconstructed.
	assert.NotEmpty(t, region.Segments)
	for _, seg := range region.Segments {
		assert.False(t, seg.P0.Eq(seg.P4), "reconstructed boundary segment should not be degenerate")
	}
}

func TestMask_UnionAll_SingleShapeMatchesEvenOdd(t *testing.T) {
	g := NewGeomstr()
	g.Rect(0, 0, 10, 10, 1)
	table := buildTable(t, g)

	assert.Equal(t, table.EvenOddFill(1), table.UnionAll())
}
