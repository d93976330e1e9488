package beamtable

import "github.com/tatarize/beamtable/point"

// Event is a single coalesced event point in the sweep: every segment index
// that starts, ends, or must be removed-and-reinserted (an intersection
// swap) at Point is recorded in the appropriate list. Events are unique per
// point — getOrInsert merges action lists for coincident points rather than
// creating duplicate events.
type Event struct {
	Point point.Point

	// Add holds segment indices whose lower endpoint is at Point.
	Add []int

	// Remove holds segment indices whose upper endpoint is at Point.
	Remove []int

	// Update holds segment indices that must be removed from the active
	// list and reinserted at Point (an intersection swap).
	Update []int
}

// addUpdate appends i to Update if it is not already present: when three or
// more segments meet at a single point, the same segment is queued for a
// swap by more than one pair, and update lists must stay deduplicated per
// event.
func (e *Event) addUpdate(i int) {
	for _, existing := range e.Update {
		if existing == i {
			return
		}
	}
	e.Update = append(e.Update, i)
}
