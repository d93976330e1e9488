// Package point defines the foundational geometric primitive used throughout
// beamtable: the Point type.
//
// # Overview
//
// Point represents a two-dimensional point with float64 coordinates. Its
// ordering (Less, Compare) is the exact lexicographic order (x then y)
// required by sorted containers such as the event queue; its equality (Eq)
// is tolerance-aware, since floating-point sweep coordinates rarely compare
// exactly equal even when they describe the same geometric event.
//
// # Precision Control with Epsilon
//
// Eq accepts [options.GeometryOptionsFunc] values. When none are supplied,
// it falls back to DefaultEpsilon (1e-12), matching the geometric-primitive
// tolerance described by the beam table's data model. Callers needing the
// looser event-coalescing tolerance pass options.WithEpsilon explicitly.
package point

import (
	"encoding/json"
	"fmt"

	"github.com/tatarize/beamtable/numeric"
	"github.com/tatarize/beamtable/options"
)

// DefaultEpsilon is the absolute tolerance used for geometric point equality
// when no epsilon option is supplied.
const DefaultEpsilon = 1e-12

// Point represents a point in two-dimensional space with float64 coordinates.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the x-coordinate of the point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point) Y() float64 {
	return p.y
}

// Coordinates returns the x and y coordinates of the point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// Eq reports whether p and q are equal within an epsilon tolerance.
//
// If no [options.GeometryOptionsFunc] is supplied, DefaultEpsilon (1e-12) is
// used. Pass options.WithEpsilon to use a looser tolerance, such as the
// event queue's coalescing tolerance.
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	resolved := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: DefaultEpsilon}, opts...)
	return numeric.FloatEquals(p.x, q.x, resolved.Epsilon) && numeric.FloatEquals(p.y, q.y, resolved.Epsilon)
}

// Less reports whether p sorts strictly before q under the exact
// lexicographic order (x, then y). This order is exact, not tolerance-aware:
// it is used to key sorted containers (the event queue's red-black tree,
// the beam table's Events slice for binary search) where a consistent
// strict order is required.
func (p Point) Less(q Point) bool {
	if p.x != q.x {
		return p.x < q.x
	}
	return p.y < q.y
}

// Compare returns -1, 0, or 1 as p is less than, equal to, or greater than q
// under the exact lexicographic order used by Less.
func Compare(p, q Point) int {
	switch {
	case p.Less(q):
		return -1
	case q.Less(p):
		return 1
	default:
		return 0
	}
}

// String returns a string representation of the point in the form "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.x, p.y)
}

// MarshalJSON serializes Point as a JSON object with "x" and "y" fields.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes a JSON object with "x" and "y" fields into Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}
