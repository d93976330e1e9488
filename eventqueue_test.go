package beamtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatarize/beamtable/options"
	"github.com/tatarize/beamtable/point"
)

func TestEventQueue_GetOrInsert_ExactAndTolerant(t *testing.T) {
	q := newEventQueue()

	ev1 := q.getOrInsert(point.New(1, 1))
	ev1.Add = append(ev1.Add, 42)

	// Exact re-query returns the same event.
	ev2 := q.getOrInsert(point.New(1, 1))
	require.Same(t, ev1, ev2)
	assert.Equal(t, []int{42}, ev2.Add)

	// Nearby query within the supplied tolerance coalesces to the same event.
	ev3 := q.getOrInsert(point.New(1+1e-10, 1), options.WithEpsilon(1e-8))
	require.Same(t, ev1, ev3)

	// Query outside tolerance creates a distinct event.
	ev4 := q.getOrInsert(point.New(2, 2), options.WithEpsilon(1e-8))
	assert.NotSame(t, ev1, ev4)
}

func TestEventQueue_PopOrder(t *testing.T) {
	q := newEventQueue()
	q.getOrInsert(point.New(3, 0))
	q.getOrInsert(point.New(1, 0))
	q.getOrInsert(point.New(2, 0))

	var order []point.Point
	for !q.isEmpty() {
		order = append(order, q.pop().Point)
	}

	assert.Equal(t, []point.Point{
		point.New(1, 0),
		point.New(2, 0),
		point.New(3, 0),
	}, order)
}

func TestEventQueue_PopOnEmpty_Panics(t *testing.T) {
	q := newEventQueue()
	assert.Panics(t, func() { q.pop() })
}
