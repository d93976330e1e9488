package beamtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatarize/beamtable/point"
)

func TestBeamTable_Build_RejectsUnsupportedKind(t *testing.T) {
	g := NewGeomstr()
	g.Line(point.New(0, 0), point.New(1, 1), 0)
	g.Segments[0].Meta.Kind = 99

	table := NewBeamTable(g)
	err := table.Build()
	require.Error(t, err)
}

func TestBeamTable_Build_SecondCall_IsNoOp(t *testing.T) {
	g := NewGeomstr()
	g.Rect(0, 0, 10, 10, 1)
	table := NewBeamTable(g)
	require.NoError(t, table.Build())
	events := table.Events

	require.NoError(t, table.Build())
	assert.Equal(t, events, table.Events, "a second Build must leave the already-built table untouched")
}

func TestBeamTable_ActivesAt_NestedRectangles(t *testing.T) {
	g := NewGeomstr()
	g.Rect(0, 0, 10, 10, 1)
	g.Rect(2, 2, 4, 4, 2)

	table := NewBeamTable(g)
	require.NoError(t, table.Build())

	// At x=1 (inside the outer rectangle only), exactly two of the outer
	// rectangle's edges cross the beam (top and bottom).
	actives := table.ActivesAt(1, 5)
	assert.Len(t, actives, 2)

	// At x=3 (inside both rectangles) four edges cross the beam: two from
	// each rectangle.
	actives = table.ActivesAt(3, 5)
	assert.Len(t, actives, 4)
}

func TestBeamTable_ActivesAt_OverlappingRectangles(t *testing.T) {
	g := NewGeomstr()
	g.Rect(0, 0, 100, 100, 1)
	g.Rect(5, 5, 100, 100, 0)

	table := NewBeamTable(g)
	require.NoError(t, table.Build())

	// Between x=5 and x=100 both rectangles contribute their top and
	// bottom edges to the beam.
	assert.Len(t, table.ActivesAt(50, 50), 4)
}

func TestBeamTable_ActivesAt_EmptyGeometry_Panics(t *testing.T) {
	table := NewBeamTable(NewGeomstr())
	require.NoError(t, table.Build())
	assert.Panics(t, func() { table.ActivesAt(0, 0) })
}

func TestBeamTable_ActivesAt_BeforeFirstEvent_WrapsToLastRow(t *testing.T) {
	g := NewGeomstr()
	g.Rect(0, 0, 10, 10, 1)

	table := NewBeamTable(g)
	require.NoError(t, table.Build())

	before := table.ActivesAt(-100, 0)
	assert.Equal(t, table.Actives[len(table.Actives)-1], before)
}
