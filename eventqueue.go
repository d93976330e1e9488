package beamtable

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/tatarize/beamtable/options"
	"github.com/tatarize/beamtable/point"
)

// eventQueue is the sorted container over event points driving the sweep.
// It is backed by a red-black tree (github.com/emirpasic/gods), keyed under
// the exact lexicographic point order: a balanced search tree needs a
// consistent strict comparator, and tolerance cannot be folded into the key
// order itself without breaking the tree's invariants. Tolerance-aware
// coalescing is instead applied in getOrInsert by probing the tree's
// Floor/Ceiling neighbors of the exact key, the same neighbor-scan idiom
// used elsewhere to find segments bracketing a point, repurposed here to
// find an existing event "close enough" to count as the same point.
type eventQueue struct {
	tree *rbt.Tree
}

func pointComparator(a, b interface{}) int {
	return point.Compare(a.(point.Point), b.(point.Point))
}

func newEventQueue() *eventQueue {
	return &eventQueue{tree: rbt.NewWith(pointComparator)}
}

// isEmpty reports whether the queue has no remaining events.
func (q *eventQueue) isEmpty() bool {
	return q.tree.Empty()
}

// getOrInsert returns the event at p, creating and inserting an empty one
// if none exists yet. If p's Floor or Ceiling neighbor under the exact
// order lies within the tolerance configured by opts (defaulting to
// point.DefaultEpsilon) of p, that event is returned and reused instead of
// inserting a new one at the exact coordinates of p — a tolerance-aware
// coalescing step realized here as a Floor/Ceiling probe instead of a
// linear bisection, since the queue is tree-backed. Only those two
// neighbors are probed: an event within tolerance that is not one of them
// is not found.
func (q *eventQueue) getOrInsert(p point.Point, opts ...options.GeometryOptionsFunc) *Event {
	if v, found := q.tree.Get(p); found {
		return v.(*Event)
	}
	if node, found := q.tree.Floor(p); found {
		if fp := node.Key.(point.Point); fp.Eq(p, opts...) {
			return node.Value.(*Event)
		}
	}
	if node, found := q.tree.Ceiling(p); found {
		if cp := node.Key.(point.Point); cp.Eq(p, opts...) {
			return node.Value.(*Event)
		}
	}
	ev := &Event{Point: p}
	q.tree.Put(p, ev)
	return ev
}

// pop removes and returns the event at the smallest remaining point.
// It panics if the queue is empty; callers must check isEmpty first.
func (q *eventQueue) pop() *Event {
	node := q.tree.Left()
	if node == nil {
		panic("beamtable: pop called on an empty event queue")
	}
	ev := node.Value.(*Event)
	q.tree.Remove(node.Key)
	return ev
}
