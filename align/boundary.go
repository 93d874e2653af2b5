package align

import (
	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/segment"
)

// boundaryChoice is one reference entity's instantiation decision for
// the segment currently being processed.
type boundaryChoice struct {
	id     entity.ID
	sf, ef int
}

// enumerateBoundaries depth-first enumerates every legal combination of
// boundary choices for the reference entities starting in seg, calling
// collect once per complete combination (spec §4.3 "Boundary
// enumeration"; grounded on the per-segment slot loop in align(), here
// expressed as recursion rather than the original's goto-based state
// machine).
func enumerateBoundaries(store *entity.Store, pan *state, seg *segment.Segment, collect func([]boundaryChoice)) {
	var rec func(idx int, cur []boundaryChoice)
	rec = func(idx int, cur []boundaryChoice) {
		if idx == len(seg.StartingRef) {
			out := make([]boundaryChoice, len(cur))
			copy(out, cur)
			collect(out)
			return
		}

		slot := seg.StartingRef[idx]
		if _, already := pan.frontiers[slot.Entity]; already {
			rec(idx+1, cur)
			return
		}

		e := store.Get(slot.Entity)
		inProgress := choiceMap(cur)

		isLastStartAlt := slot.Alt == len(e.Starts)-1
		if !isLastStartAlt {
			rec(idx+1, cur)
		}

		for ef := range e.Ends {
			if e.Starts[slot.Alt] >= e.Ends[ef] {
				continue
			}
			if !parentSatisfied(store, pan, inProgress, e, slot.Alt, ef) {
				continue
			}
			if !leftSatisfied(store, pan, inProgress, e, slot.Alt, ef) {
				continue
			}
			cur = append(cur, boundaryChoice{id: slot.Entity, sf: slot.Alt, ef: ef})
			rec(idx+1, cur)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0, nil)
}

func choiceMap(cur []boundaryChoice) map[entity.ID]FrontierChoice {
	m := make(map[entity.ID]FrontierChoice, len(cur))
	for _, c := range cur {
		m[c.id] = FrontierChoice{SF: c.sf, EF: c.ef}
	}
	return m
}

// parentSatisfied enforces spec §3's parent-containment constraint: a
// non-root entity's chosen span must sit inside its parent's chosen
// span, and the parent must already be instantiated (in pan or in the
// choices being built for this same segment).
func parentSatisfied(store *entity.Store, pan *state, inProgress map[entity.ID]FrontierChoice, e *entity.Entity, sf, ef int) bool {
	if e.Parent == entity.NoID {
		return true
	}
	pFc, ok := findFrontier(pan, inProgress, e.Parent)
	if !ok {
		return false
	}
	parent := store.Get(e.Parent)
	return parent.Starts[pFc.SF] <= e.Starts[sf] && parent.Ends[pFc.EF] >= e.Ends[ef]
}

// leftSatisfied enforces spec §3's left-neighbor ordering: if the left
// constraint entity's outermost end could still extend past this
// entity's candidate start, it must already be instantiated with a
// chosen end that does not.
func leftSatisfied(store *entity.Store, pan *state, inProgress map[entity.ID]FrontierChoice, e *entity.Entity, sf, ef int) bool {
	if e.LeftConstraint == entity.NoID {
		return true
	}
	left := store.Get(e.LeftConstraint)
	if left.Ends[len(left.Ends)-1] <= e.Starts[sf] {
		return true
	}
	lFc, ok := findFrontier(pan, inProgress, e.LeftConstraint)
	if !ok {
		return false
	}
	return left.Ends[lFc.EF] <= e.Starts[sf]
}
