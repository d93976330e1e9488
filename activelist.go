package beamtable

import (
	"sort"

	"github.com/tatarize/beamtable/point"
)

// activeList is the mutable, y-intercept-ordered sequence of segment
// indices crossing the current scanline. Unlike the event queue, it is a
// plain slice bisected with sort.Search rather than a
// persistent tree: its sort key (each segment's y-intercept at the current
// scanline) changes every time the scanline advances, so no balanced tree
// built against one scanline's keys would stay valid at the next.
type activeList struct {
	indices []int
}

// yintCmp orders the active list: compare y-intercepts at the scanline,
// then slope (smaller sorts first), then segment index as a final
// stabilizing tie-break.
func yintCmp(g *Geomstr, a, b int, scanline point.Point) int {
	ya := g.YIntercept(a, scanline.X(), scanline.Y())
	yb := g.YIntercept(b, scanline.X(), scanline.Y())
	if c := point.Compare(ya, yb); c != 0 {
		return c
	}
	sa, sb := g.Slope(a), g.Slope(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// insert places segment index i into the active list using bisection under
// yintCmp and returns its insertion position.
func (al *activeList) insert(g *Geomstr, i int, scanline point.Point) int {
	pos := sort.Search(len(al.indices), func(k int) bool {
		return yintCmp(g, al.indices[k], i, scanline) >= 0
	})
	al.indices = append(al.indices, 0)
	copy(al.indices[pos+1:], al.indices[pos:])
	al.indices[pos] = i
	return pos
}

// positionOf locates segment index i in the active list by identity (a
// linear scan), returning its position and whether it was found.
func (al *activeList) positionOf(i int) (int, bool) {
	for pos, v := range al.indices {
		if v == i {
			return pos, true
		}
	}
	return -1, false
}

// removeAt deletes the entry at position pos.
func (al *activeList) removeAt(pos int) {
	al.indices = append(al.indices[:pos], al.indices[pos+1:]...)
}

// snapshot returns an independent copy of the active list's current
// contents, since later events continue to mutate it in place.
func (al *activeList) snapshot() []int {
	out := make([]int, len(al.indices))
	copy(out, al.indices)
	return out
}
