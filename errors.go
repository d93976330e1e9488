package beamtable

import "fmt"

// ErrUnsupportedKind is returned by Build when the geometry store contains
// a segment whose Meta.Kind is not KindLine. Curved segment kinds are
// unspecified by the data model, so this module surfaces the condition as
// an error at the API boundary rather than silently dropping such
// segments, which would quietly change the geometry a caller thinks it
// built.
type ErrUnsupportedKind struct {
	Index int
	Kind  float64
}

func (e *ErrUnsupportedKind) Error() string {
	return fmt.Sprintf("beamtable: segment %d has unsupported kind %g (only KindLine=%g is supported)", e.Index, e.Kind, KindLine)
}
