package beamtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatarize/beamtable/point"
)

func TestActiveList_Insert_OrdersByYIntercept(t *testing.T) {
	g := NewGeomstr()
	g.Line(point.New(0, 2), point.New(10, 2), 0) // index 0: horizontal at y=2
	g.Line(point.New(0, 0), point.New(10, 0), 0) // index 1: horizontal at y=0
	g.Line(point.New(0, 1), point.New(10, 1), 0) // index 2: horizontal at y=1

	al := &activeList{}
	scanline := point.New(0, 0)
	al.insert(g, 0, scanline)
	al.insert(g, 1, scanline)
	al.insert(g, 2, scanline)

	assert.Equal(t, []int{1, 2, 0}, al.indices)
}

func TestActiveList_PositionOfAndRemove(t *testing.T) {
	al := &activeList{indices: []int{5, 2, 9}}

	pos, found := al.positionOf(2)
	require.True(t, found)
	assert.Equal(t, 1, pos)

	_, found = al.positionOf(100)
	assert.False(t, found)

	al.removeAt(pos)
	assert.Equal(t, []int{5, 9}, al.indices)
}

func TestActiveList_Snapshot_IsIndependentCopy(t *testing.T) {
	al := &activeList{indices: []int{1, 2, 3}}
	snap := al.snapshot()
	al.indices[0] = 99
	assert.Equal(t, []int{1, 2, 3}, snap)
}
