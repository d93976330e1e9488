// Package shim is a pure-Go stand-in for a foreign-language binding layer
// (the original system exposed this as a pyo3 Python extension): a single
// flat-data entry point that a cgo or FFI boundary could call without
// needing to know about beamtable's Go types. Segments cross the boundary
// as plain [5][2]float64 tuples — (p0, c1, meta, c2, p4), each an (x, y)
// pair, with meta's pair holding (kind, label) — mirroring the tuple shape
// the original binding passed across the Python boundary.
package shim

import (
	"github.com/tatarize/beamtable"
	"github.com/tatarize/beamtable/point"
)

// RawSegment is the flat, binding-friendly encoding of a beamtable.Segment.
type RawSegment [5][2]float64

func toSegment(raw RawSegment) beamtable.Segment {
	return beamtable.Segment{
		P0:   point.New(raw[0][0], raw[0][1]),
		C1:   point.New(raw[1][0], raw[1][1]),
		Meta: beamtable.SegmentMeta{Kind: raw[2][0], Label: raw[2][1]},
		C2:   point.New(raw[3][0], raw[3][1]),
		P4:   point.New(raw[4][0], raw[4][1]),
	}
}

func fromSegment(seg beamtable.Segment) RawSegment {
	x0, y0 := seg.P0.Coordinates()
	x1, y1 := seg.C1.Coordinates()
	x4, y4 := seg.P4.Coordinates()
	x3, y3 := seg.C2.Coordinates()
	return RawSegment{
		{x0, y0},
		{x1, y1},
		{seg.Meta.Kind, seg.Meta.Label},
		{x3, y3},
		{x4, y4},
	}
}

// Union sweeps segments and returns the boundary of the union of every
// label's region, greedily reordered for minimal pen travel — the same
// operation the original binding's "union" entry point exposed.
func Union(segments []RawSegment) ([]RawSegment, error) {
	g := beamtable.FromSegments(make([]beamtable.Segment, len(segments)))
	for i, raw := range segments {
		g.Segments[i] = toSegment(raw)
	}

	table := beamtable.NewBeamTable(g)
	if err := table.Build(); err != nil {
		return nil, err
	}

	region := table.Create(table.UnionAll(), true)

	out := make([]RawSegment, len(region.Segments))
	for i, seg := range region.Segments {
		out[i] = fromSegment(seg)
	}
	return out, nil
}

// Build runs the sweep over segments and returns the raw (events, actives)
// table without any mask applied, for bindings that want point-location
// queries rather than a reconstructed region.
func Build(segments []RawSegment) ([]point.Point, [][]int, error) {
	g := beamtable.FromSegments(make([]beamtable.Segment, len(segments)))
	for i, raw := range segments {
		g.Segments[i] = toSegment(raw)
	}

	table := beamtable.NewBeamTable(g)
	if err := table.Build(); err != nil {
		return nil, nil, err
	}
	return table.Events, table.Actives, nil
}
