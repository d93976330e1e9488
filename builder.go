package beamtable

import (
	"github.com/tatarize/beamtable/options"
	"github.com/tatarize/beamtable/point"
)

// eventEpsilon is the coalescing tolerance used when locating or inserting
// event points, looser than point.DefaultEpsilon used by the
// geometric primitives in geomstr.go: nearly-coincident event points must
// collapse into one event even when floating point produced their
// coordinates through slightly different arithmetic, while the primitives
// computing those coordinates need a much tighter tolerance or distinct
// segments would be mistaken for overlapping ones.
const eventEpsilon = 1e-8

// swapKey identifies an unordered pair of segment indices scheduled for an
// intersection swap, so the same pair is never scheduled twice.
type swapKey struct {
	lo, hi int
}

func newSwapKey(i, j int) swapKey {
	if i < j {
		return swapKey{i, j}
	}
	return swapKey{j, i}
}

// sweepResult holds everything the sweep accumulates: one events/actives
// pair per processed event point, plus every intersection point discovered
// along the way, in discovery order.
type sweepResult struct {
	events        []point.Point
	actives       [][]int
	intersections []point.Point
}

// runSweep executes the sweep over g's segments: seed add/remove events at
// every segment endpoint, then repeatedly pop the
// smallest remaining event, apply its removes, adds and updates to the
// active list in that order, and probe each adjacency those operations
// create for future intersection swaps.
func runSweep(g *Geomstr) (*sweepResult, error) {
	queue := newEventQueue()
	opt := options.WithEpsilon(eventEpsilon)

	for i, seg := range g.Segments {
		if seg.Meta.Kind != KindLine {
			return nil, &ErrUnsupportedKind{Index: i, Kind: seg.Meta.Kind}
		}
		lo, hi := seg.P0, seg.P4
		if point.Compare(hi, lo) < 0 {
			lo, hi = hi, lo
		}
		loEvent := queue.getOrInsert(lo, opt)
		loEvent.Add = append(loEvent.Add, i)
		hiEvent := queue.getOrInsert(hi, opt)
		hiEvent.Remove = append(hiEvent.Remove, i)
	}

	active := &activeList{}
	checked := make(map[swapKey]struct{})
	res := &sweepResult{}

	probe := func(a, b int, scanline point.Point) {
		checkIntersection(g, queue, checked, &res.intersections, a, b, scanline, opt)
	}

	for !queue.isEmpty() {
		ev := queue.pop()
		scanline := ev.Point

		for _, i := range ev.Remove {
			pos, found := active.positionOf(i)
			if !found {
				continue
			}
			active.removeAt(pos)
			if pos > 0 && pos < len(active.indices) {
				probe(active.indices[pos-1], active.indices[pos], scanline)
			}
		}
		for _, i := range ev.Add {
			ip := active.insert(g, i, scanline)
			if ip > 0 {
				probe(active.indices[ip-1], active.indices[ip], scanline)
			}
			if ip < len(active.indices)-1 {
				probe(active.indices[ip], active.indices[ip+1], scanline)
			}
		}
		for _, i := range ev.Update {
			pos, found := active.positionOf(i)
			if !found {
				// The target retired at this same event; a swap for a
				// segment no longer active is a stale request, not an error.
				continue
			}
			active.removeAt(pos)
			if pos > 0 && pos < len(active.indices) {
				probe(active.indices[pos-1], active.indices[pos], scanline)
			}
			ip := active.insert(g, i, scanline)
			if ip > 0 {
				probe(active.indices[ip-1], active.indices[ip], scanline)
			}
			if ip < len(active.indices)-1 {
				probe(active.indices[ip], active.indices[ip+1], scanline)
			}
		}

		res.events = append(res.events, scanline)
		res.actives = append(res.actives, active.snapshot())
	}

	return res, nil
}

// checkIntersection tests whether adjacent active segments i and j cross at
// a point that is not an endpoint of both (a crossing at an endpoint of only
// one of them still counts). Every crossing found is recorded in
// intersections; only a crossing strictly ahead of the current scanline is
// scheduled, adding both segments to the Update list of the event at the
// crossing point. Pairs already scheduled are skipped via checked, since a
// straight line pair crosses at most once and the same adjacency can be
// re-tested at several events before its swap event fires.
func checkIntersection(g *Geomstr, queue *eventQueue, checked map[swapKey]struct{}, intersections *[]point.Point, i, j int, scanline point.Point, opt options.GeometryOptionsFunc) {
	key := newSwapKey(i, j)
	if _, seen := checked[key]; seen {
		return
	}
	t1, t2, ok := g.Intersection(i, j)
	if !ok {
		return
	}
	if (t1 == 0 || t1 == 1) && (t2 == 0 || t2 == 1) {
		// Both parameters land on an endpoint: the segments merely share a
		// vertex, already represented by ordinary Add/Remove events.
		return
	}
	pt := g.PointAt(i, t1)
	*intersections = append(*intersections, pt)
	if point.Compare(pt, scanline) <= 0 {
		// At or behind the scanline: the crossing was already handled (or
		// is being handled by the very event in flight) and must not
		// re-enter the queue.
		return
	}
	checked[key] = struct{}{}
	ev := queue.getOrInsert(pt, opt)
	ev.addUpdate(i)
	ev.addUpdate(j)
}
