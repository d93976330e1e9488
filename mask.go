package beamtable

import "fmt"

// Mask is a space mask aligned to a BeamTable's (events, actives) output:
// len(Inside) == len(actives), and len(Inside[j]) == len(actives[j]) + 1.
// Inside[j][k] answers "at beam j, in the slab below
// active[j][k] and above active[j][k-1], is the region inside?" —
// Inside[j][0] is the state at y = -infinity, and the last entry the state
// at y = +infinity.
type Mask struct {
	Inside [][]bool
}

func (m Mask) shapeMismatch(o Mask) bool {
	if len(m.Inside) != len(o.Inside) {
		return true
	}
	for i := range m.Inside {
		if len(m.Inside[i]) != len(o.Inside[i]) {
			return true
		}
	}
	return false
}

// And returns the pointwise conjunction of m and o. It panics if the two
// masks are not aligned to the same (events, actives) shape.
func (m Mask) And(o Mask) Mask {
	if m.shapeMismatch(o) {
		panic(fmt.Sprintf("beamtable: mask shape mismatch in And: %d rows vs %d rows", len(m.Inside), len(o.Inside)))
	}
	return m.zip(o, func(a, b bool) bool { return a && b })
}

// Or returns the pointwise disjunction of m and o. It panics if the two
// masks are not aligned to the same (events, actives) shape.
func (m Mask) Or(o Mask) Mask {
	if m.shapeMismatch(o) {
		panic(fmt.Sprintf("beamtable: mask shape mismatch in Or: %d rows vs %d rows", len(m.Inside), len(o.Inside)))
	}
	return m.zip(o, func(a, b bool) bool { return a || b })
}

// Not returns the pointwise negation of m.
func (m Mask) Not() Mask {
	out := make([][]bool, len(m.Inside))
	for i, row := range m.Inside {
		negated := make([]bool, len(row))
		for j, v := range row {
			negated[j] = !v
		}
		out[i] = negated
	}
	return Mask{Inside: out}
}

func (m Mask) zip(o Mask, op func(a, b bool) bool) Mask {
	out := make([][]bool, len(m.Inside))
	for i, row := range m.Inside {
		combined := make([]bool, len(row))
		for j, v := range row {
			combined[j] = op(v, o.Inside[i][j])
		}
		out[i] = combined
	}
	return Mask{Inside: out}
}

// EvenOddFill builds the even-odd space mask for a single label: within
// each beam row, inside starts false and toggles every time the walk
// crosses an active segment whose label equals label.
func (t *BeamTable) EvenOddFill(label float64) Mask {
	return Mask{Inside: t.fill(func(segLabel float64) bool {
		return segLabel == label
	})}
}

// EvenOddIgnoringOrigin builds the even-odd mask treating every active
// segment as a boundary regardless of its label, collapsing all labels
// into a single unlabeled curve.
func (t *BeamTable) EvenOddIgnoringOrigin() Mask {
	return Mask{Inside: t.fill(func(float64) bool {
		return true
	})}
}

// fill is the shared even-odd walk used by EvenOddFill and
// EvenOddIgnoringOrigin, parameterized on which active segments count as
// boundaries for the toggle.
func (t *BeamTable) fill(toggles func(label float64) bool) [][]bool {
	rows := make([][]bool, len(t.Actives))
	for j, row := range t.Actives {
		rowMask := make([]bool, len(row)+1)
		inside := false
		rowMask[0] = inside
		for k, segIdx := range row {
			if toggles(t.Geometry.Segments[segIdx].Meta.Label) {
				inside = !inside
			}
			rowMask[k+1] = inside
		}
		rows[j] = rowMask
	}
	return rows
}

// UnionAll builds the mask for the union of every label's own even-odd
// region: each label maintains its own toggle state as the walk crosses
// its boundaries, and a slab is inside the union if any label's toggle is
// currently true.
func (t *BeamTable) UnionAll() Mask {
	rows := make([][]bool, len(t.Actives))
	for j, row := range t.Actives {
		rowMask := make([]bool, len(row)+1)
		labelState := make(map[float64]bool)
		rowMask[0] = false
		for k, segIdx := range row {
			label := t.Geometry.Segments[segIdx].Meta.Label
			labelState[label] = !labelState[label]
			inside := false
			for _, v := range labelState {
				if v {
					inside = true
					break
				}
			}
			rowMask[k+1] = inside
		}
		rows[j] = rowMask
	}
	return Mask{Inside: rows}
}

// Create converts mask back into boundary line segments: for
// each beam row j in 0..len(Events)-1 and each position k in its active
// list, a transition between Inside[j][k] and Inside[j][k+1] means
// actives[j][k] bounds the masked region across that beam, and a line is
// emitted from its y-intercept at the beam's left event to its y-intercept
// at the beam's right event, carrying the active segment's label. When
// greedy is true the result is passed through GreedyDistance before being
// returned.
func (t *BeamTable) Create(mask Mask, greedy bool) *Geomstr {
	out := NewGeomstr()
	for j := 0; j+1 < len(t.Events); j++ {
		left, right := t.Events[j], t.Events[j+1]
		row := t.Actives[j]
		rowMask := mask.Inside[j]
		for k, segIdx := range row {
			if rowMask[k] == rowMask[k+1] {
				continue
			}
			a := t.Geometry.YIntercept(segIdx, left.X(), left.Y())
			b := t.Geometry.YIntercept(segIdx, right.X(), right.Y())
			if a.Eq(b) {
				// A zero-width beam (left and right events share an x
				// coordinate) makes every horizontal active degenerate at
				// its own constant y; only a genuinely crossing active
				// contributes a real boundary there.
				continue
			}
			out.Line(a, b, t.Geometry.Segments[segIdx].Meta.Label)
		}
	}
	if greedy && len(out.Segments) > 0 {
		out.GreedyDistance(out.Segments[0].P0, true)
	}
	return out
}
