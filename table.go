package beamtable

import (
	"sort"

	"github.com/tatarize/beamtable/point"
)

// BeamTable is the built (events, actives) table over a Geomstr: Events and
// Actives are parallel, equal-length slices where row
// j is the active-list snapshot immediately after processing Events[j],
// valid for the beam [Events[j].X(), Events[j+1].X()]. Geometry is borrowed
// immutably; Build is the only method that mutates a BeamTable's own
// fields, and only its first successful call does so.
type BeamTable struct {
	Geometry      *Geomstr
	Events        []point.Point
	Actives       [][]int
	Intersections []point.Point

	built bool
}

// NewBeamTable returns a table over geometry, not yet built.
func NewBeamTable(geometry *Geomstr) *BeamTable {
	return &BeamTable{Geometry: geometry}
}

// Build runs the sweep over t.Geometry, populating Events, Actives and
// Intersections. It returns ErrUnsupportedKind if any segment's Meta.Kind
// is not KindLine. A table already built is left untouched: per the
// sweep's termination behavior, a second call is a no-op rather than an
// error or a re-run.
func (t *BeamTable) Build() error {
	if t.built {
		return nil
	}
	res, err := runSweep(t.Geometry)
	if err != nil {
		return err
	}
	t.Events = res.events
	t.Actives = res.actives
	t.Intersections = res.intersections
	t.built = true
	return nil
}

// ActivesAt returns the ordered set of segment indices crossing the beam
// containing column x; y places the query among events that share the same
// x under the lexicographic point order. A query at or past Events[k] and
// before Events[k+1] returns Actives[k]; a query before every event falls
// outside the table's recorded range and, matching the table's own
// wraparound convention, returns the last row (empty once every segment
// has retired).
// Calling ActivesAt on a table built from empty geometry is a precondition
// violation and panics rather than returning a nil slice silently.
func (t *BeamTable) ActivesAt(x, y float64) []int {
	if len(t.Events) == 0 {
		panic("beamtable: ActivesAt called on a table with no events (built from empty geometry)")
	}
	q := point.New(x, y)
	idx := sort.Search(len(t.Events), func(k int) bool {
		return point.Compare(t.Events[k], q) >= 0
	})
	if idx < len(t.Events) && t.Events[idx].Eq(q) {
		return t.Actives[idx]
	}
	if idx == 0 {
		return t.Actives[len(t.Actives)-1]
	}
	return t.Actives[idx-1]
}
