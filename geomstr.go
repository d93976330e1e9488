package beamtable

import (
	"math"

	"github.com/tatarize/beamtable/point"
)

// KindLine marks a Segment as a straight line, the only segment kind the
// sweep builder processes. Segments carrying any other Kind are rejected by
// Build with ErrUnsupportedKind (see errors.go) rather than silently
// skipped, per the data model's §9 open-question resolution on non-line
// kinds.
const KindLine = 41.0

// SegmentMeta carries a segment's kind tag and its caller-assigned label.
// Label is the real-valued tag the mask constructors (EvenOddFill,
// UnionAll) key off of.
type SegmentMeta struct {
	Kind  float64
	Label float64
}

// Segment is the fixed-shape 5-tuple record (P0, C1, Meta, C2, P4) described
// by the beam table's data model. C1 and C2 are reserved control slots,
// zero-valued for straight lines; they exist so the record shape matches
// the geometry store's sister structure in other beamtable implementations,
// even though this sweep only interprets KindLine segments.
type Segment struct {
	P0   point.Point
	C1   point.Point
	Meta SegmentMeta
	C2   point.Point
	P4   point.Point
}

// Geomstr is the geometry store: an ordered sequence of segment records.
// It is never mutated by the sweep builder or mask constructors, which
// borrow it immutably. Apart from the Line and Rect constructors, which
// append segments, GreedyDistance and Reverse are the only operations that
// mutate a Geomstr in place; within this package they are applied only to
// freshly constructed output geometry (the result of BeamTable.Create).
type Geomstr struct {
	Segments []Segment
}

// NewGeomstr returns an empty geometry store.
func NewGeomstr() *Geomstr {
	return &Geomstr{}
}

// FromSegments wraps a caller-supplied slice of segment records as a
// Geomstr without copying.
func FromSegments(segments []Segment) *Geomstr {
	return &Geomstr{Segments: segments}
}

// Line appends a straight line segment from p0 to p1 carrying label.
func (g *Geomstr) Line(p0, p1 point.Point, label float64) {
	g.Segments = append(g.Segments, Segment{
		P0:   p0,
		Meta: SegmentMeta{Kind: KindLine, Label: label},
		P4:   p1,
	})
}

// Rect appends four oriented edges forming a closed, axis-aligned rectangle
// with corner (x, y) and the given width and height, all carrying label.
func (g *Geomstr) Rect(x, y, w, h, label float64) {
	g.Line(point.New(x, y), point.New(x+w, y), label)
	g.Line(point.New(x+w, y), point.New(x+w, y+h), label)
	g.Line(point.New(x+w, y+h), point.New(x, y+h), label)
	g.Line(point.New(x, y+h), point.New(x, y), label)
}

// Slope returns the slope of segment i: (y0-y4)/(x0-x4). A vertical segment
// (x0 == x4) returns +Inf, treated as the steepest possible slope so it
// sorts last among ties in the active-list comparator (see yintCmp in
// activelist.go).
func (g *Geomstr) Slope(i int) float64 {
	seg := g.Segments[i]
	rise := seg.P0.Y() - seg.P4.Y()
	run := seg.P0.X() - seg.P4.X()
	if run == 0 {
		return math.Inf(1)
	}
	return rise / run
}

// Intersection solves the parametric intersection of segments i and j.
// It returns ok=false when the lines are parallel/coincident (the 2x2
// system's determinant has magnitude below point.DefaultEpsilon) or when the
// solution parameters fall outside [0,1] for either segment. Shared
// endpoints (t1 or t2 exactly 0 or 1) are a valid solution here; the sweep
// builder is responsible for rejecting those as non-events — that
// "endpoints are not intersections" rule lives in checkIntersection, not
// here, so this stays a pure geometric primitive.
func (g *Geomstr) Intersection(i, j int) (t1, t2 float64, ok bool) {
	a, b := g.Segments[i].P0, g.Segments[i].P4
	c, d := g.Segments[j].P0, g.Segments[j].P4

	denom := (d.Y()-c.Y())*(b.X()-a.X()) - (d.X()-c.X())*(b.Y()-a.Y())
	if math.Abs(denom) < point.DefaultEpsilon {
		return 0, 0, false
	}

	t1 = ((d.X()-c.X())*(a.Y()-c.Y()) - (d.Y()-c.Y())*(a.X()-c.X())) / denom
	t2 = ((b.X()-a.X())*(a.Y()-c.Y()) - (b.Y()-a.Y())*(a.X()-c.X())) / denom
	if t1 < 0 || t1 > 1 || t2 < 0 || t2 > 1 {
		return 0, 0, false
	}
	return t1, t2, true
}

// YIntercept returns the point at which segment i crosses the vertical line
// x, using defaultY when the segment itself is vertical (x is constant along
// its whole length, so "the" y-intercept is whatever the caller's current
// scanline y is).
func (g *Geomstr) YIntercept(i int, x, defaultY float64) point.Point {
	seg := g.Segments[i]
	a, b := seg.P0, seg.P4
	rise := a.Y() - b.Y()
	run := a.X() - b.X()
	if rise == 0 {
		return point.New(x, a.Y())
	}
	if run == 0 {
		return point.New(x, defaultY)
	}
	m := run / rise
	x0 := a.X() - m*a.Y()
	return point.New(x, (x-x0)/m)
}

// PointAt linearly interpolates segment i at parameter t in [0,1].
func (g *Geomstr) PointAt(i int, t float64) point.Point {
	seg := g.Segments[i]
	return point.New(
		t*(seg.P4.X()-seg.P0.X())+seg.P0.X(),
		t*(seg.P4.Y()-seg.P0.Y())+seg.P0.Y(),
	)
}

// Reverse swaps segment i's start and end (and its control slots), leaving
// its meta untouched.
func (g *Geomstr) Reverse(i int) {
	seg := g.Segments[i]
	g.Segments[i] = Segment{
		P0:   seg.P4,
		C1:   seg.C2,
		Meta: seg.Meta,
		C2:   seg.C1,
		P4:   seg.P0,
	}
}

// TravelDistanceSq sums the squared pen-up gap between each consecutive
// pair of line-kind segments: segments[i-1].P4 to segments[i].P0. It is the
// objective GreedyDistance tries to shrink.
func (g *Geomstr) TravelDistanceSq() float64 {
	total := 0.0
	for i := 1; i < len(g.Segments); i++ {
		prev, cur := g.Segments[i-1], g.Segments[i]
		if prev.Meta.Kind != KindLine || cur.Meta.Kind != KindLine {
			continue
		}
		dx := prev.P4.X() - cur.P0.X()
		dy := prev.P4.Y() - cur.P0.Y()
		total += dx*dx + dy*dy
	}
	return total
}

// GreedyDistance performs a local-greedy reorder of g's segments to reduce
// total pen travel, starting the pen at start. For each position j it scans
// the remaining positions k > j for whichever segment endpoint (its start,
// or also its end when flips is true) lies closest to the current pen
// position, swaps that segment into position j (reversing it first if its
// end was the closer endpoint), then advances the pen to the end of the
// segment now in position j. This is O(n^2), purely local, and gives no
// optimality guarantee; it exists only to shrink plotter travel distance.
func (g *Geomstr) GreedyDistance(start point.Point, flips bool) {
	pt := start
	n := len(g.Segments)
	for j := 0; j < n; j++ {
		if j > 0 {
			pt = g.Segments[j-1].P4
		}
		best := math.Inf(1)
		bestK := -1
		bestFlip := false
		for k := j + 1; k < n; k++ {
			seg := g.Segments[k]
			if flips {
				dx, dy := pt.X()-seg.P4.X(), pt.Y()-seg.P4.Y()
				if d := dx*dx + dy*dy; d < best {
					best, bestK, bestFlip = d, k, true
				}
			}
			dx, dy := pt.X()-seg.P0.X(), pt.Y()-seg.P0.Y()
			if d := dx*dx + dy*dy; d < best {
				best, bestK, bestFlip = d, k, false
			}
		}
		if bestK == -1 {
			continue
		}
		if bestFlip {
			g.Reverse(bestK)
		}
		g.Segments[j], g.Segments[bestK] = g.Segments[bestK], g.Segments[j]
	}
}
