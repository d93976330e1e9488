// Package beamtable implements a planar-sweep acceleration structure over
// labeled straight line segments: a vertical decomposition of the plane
// into beams (the strip between two consecutive event x-coordinates)
// together with the ordered list of segments crossing each beam.
//
// The package is built around [Geomstr] (the geometry store), [BeamTable]
// (the built events/actives table and point-location query), and [Mask]
// (Boolean region algebra over per-beam bit-vectors, with [BeamTable.Create]
// converting a mask back to boundary geometry).
//
// # Coordinate system
//
// The sweep advances along x; within a beam, segments are ordered by their
// y-intercept at the current scanline. Events and active-list ordering use
// exact point comparison ([point.Compare]); tolerance is applied only where
// floating-point error would otherwise split a single coincident event into
// two (see eventEpsilon in builder.go).
//
// # Typical use
//
// Build a geometry store, sweep it into a table, derive a mask, and
// optionally reconstruct boundary geometry from the mask:
//
//	g := beamtable.NewGeomstr()
//	g.Rect(0, 0, 10, 10, 1)
//	t := beamtable.NewBeamTable(g)
//	if err := t.Build(); err != nil {
//		// handle ErrUnsupportedKind
//	}
//	mask := t.EvenOddFill(1)
//	region := t.Create(mask, false)
//
// # Precision control
//
// Intersection in [Geomstr] compares its determinant against
// [point.DefaultEpsilon]; event coalescing during Build uses a looser
// tolerance since coincident events can arrive with more accumulated
// floating-point error than the primitives that compute them.
package beamtable
