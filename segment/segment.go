// Package segment builds the segment graph described in spec §4.1: the
// text is split into maximal spans between consecutive entity-boundary
// frontiers, and each segment is annotated with the entities it covers
// and which entities may start/end there.
package segment

import (
	"sort"

	"github.com/nescoring/nescore/entity"
)

// StartRef pairs a reference entity with one of its start alternatives
// that lands at a segment's start offset.
type StartRef struct {
	Entity entity.ID
	Alt    int // index into Starts
}

// EndRef pairs a reference entity with one of its end alternatives that
// lands at a segment's end offset.
type EndRef struct {
	Entity entity.ID
	Alt    int // index into Ends
}

// Segment is a half-open [Start,End) byte range between two consecutive
// frontiers (spec §3 "Segment").
type Segment struct {
	Start, End int

	// Entities is every entity whose span (under any alternative)
	// overlaps this segment.
	Entities []entity.ID

	// StartingRef are reference entities for which some start
	// alternative equals Start.
	StartingRef []StartRef

	// EndingRef are reference entities for which some end alternative
	// equals End.
	EndingRef []EndRef

	// StartingHyp are hypothesis entities whose unique start equals
	// Start.
	StartingHyp []entity.ID
}

// frontierIndex maps a byte offset that is a start or end of some
// entity to every entity touching it (spec §2's "Boundary frontier
// index"; grounded on add_frontiers in the original implementation).
type frontierIndex map[int][]entity.ID

func buildFrontierIndex(store *entity.Store) frontierIndex {
	idx := frontierIndex{}
	for _, id := range store.All() {
		e := store.Get(id)
		for _, s := range e.Starts {
			idx[s] = append(idx[s], id)
		}
		for _, en := range e.Ends {
			idx[en] = append(idx[en], id)
		}
	}
	return idx
}

// Build constructs the segment graph for every entity in store
// (grounded on add_frontiers/build_segments in the original
// implementation).
func Build(store *entity.Store) []Segment {
	idx := buildFrontierIndex(store)
	if len(idx) == 0 {
		return nil
	}

	frontiers := make([]int, 0, len(idx))
	for f := range idx {
		frontiers = append(frontiers, f)
	}
	sort.Ints(frontiers)

	segments := make([]Segment, 0, len(frontiers)-1)
	current := map[entity.ID]struct{}{}

	for i := 0; i+1 < len(frontiers); i++ {
		start, end := frontiers[i], frontiers[i+1]
		seg := Segment{Start: start, End: end}

		for _, id := range idx[start] {
			e := store.Get(id)
			if e.Ends[len(e.Ends)-1] <= start {
				// the entity's last end lands on this segment's start, so
				// it does not overlap this segment.
				continue
			}
			current[id] = struct{}{}
			if e.Side == entity.Hypothesis {
				if e.Starts[0] == start {
					seg.StartingHyp = append(seg.StartingHyp, id)
				}
				continue
			}
			for k, s := range e.Starts {
				if s == start {
					seg.StartingRef = append(seg.StartingRef, StartRef{Entity: id, Alt: k})
				}
			}
		}

		for _, id := range idx[end] {
			e := store.Get(id)
			if e.Side == entity.Reference {
				for k, en := range e.Ends {
					if en == end {
						seg.EndingRef = append(seg.EndingRef, EndRef{Entity: id, Alt: k})
					}
				}
			}
		}

		// entities still "open" across this segment, closing out
		// (removing from `current`) any whose outermost end has been
		// reached.
		ids := make([]entity.ID, 0, len(current))
		for id := range current {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

		for _, id := range ids {
			seg.Entities = append(seg.Entities, id)
			e := store.Get(id)
			if e.Ends[len(e.Ends)-1] <= end {
				delete(current, id)
			}
		}

		segments = append(segments, seg)
	}

	return segments
}
