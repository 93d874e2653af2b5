package align

import (
	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/segment"
)

// Run executes the segment-by-segment search described in spec §4.3 and
// reconstructs the winning alignment (spec §4.4), returning one
// SegmentDelta per segment plus the union of every reference entity's
// chosen boundary across the whole run.
func Run(store *entity.Store, segments []segment.Segment) ([]SegmentDelta, map[entity.ID]FrontierChoice, error) {
	if len(segments) == 0 {
		return nil, map[entity.ID]FrontierChoice{}, nil
	}

	current := []*state{newRootState()}

	for i := range segments {
		seg := &segments[i]
		next, err := stepSegment(store, current, seg)
		if err != nil {
			return nil, nil, err
		}
		current = next
	}

	if len(current) != 1 {
		return nil, nil, ErrNotOneSurvivor
	}

	return backwardWalk(current[0], len(segments))
}

// stepSegment expands every surviving state in cur by enumerating
// boundary choices then pairing choices, and merges equivalent results
// (spec §4.3, "Process segment").
func stepSegment(store *entity.Store, cur []*state, seg *segment.Segment) ([]*state, error) {
	merged := map[string]*state{}
	var stepErr error

	for _, pan := range cur {
		enumerateBoundaries(store, pan, seg, func(choices []boundaryChoice) {
			if stepErr != nil {
				return
			}
			children, err := applyCombinations(store, pan, seg, choices)
			if err != nil {
				stepErr = err
				return
			}
			for _, child := range children {
				closeEntities(store, child, seg)
				key := equivKey(store, child, seg.End, seg.Entities)
				if incumbent, ok := merged[key]; ok {
					if incumbent.score <= child.score {
						continue
					}
				}
				merged[key] = child
			}
		})
		if stepErr != nil {
			return nil, stepErr
		}
	}

	out := make([]*state, 0, len(merged))
	for _, st := range merged {
		out = append(out, st)
	}
	return out, nil
}

// applyCombinations builds one child state per valid pairing
// combination for a single boundary-choice assignment.
func applyCombinations(store *entity.Store, pan *state, seg *segment.Segment, choices []boundaryChoice) ([]*state, error) {
	base := pan.clone()
	for _, c := range choices {
		base.frontiers[c.id] = FrontierChoice{SF: c.sf, EF: c.ef}
	}

	slots := buildPairSlots(store, base, seg, choices)
	total := totalCombinations(slots)

	var children []*state
	for k := 0; k < total; k++ {
		child, ok, err := applyOneCombination(store, base, slots, decode(k, slots))
		if err != nil {
			return nil, err
		}
		if ok {
			children = append(children, child)
		}
	}
	return children, nil
}

// applyOneCombination replays one decoded pairing combination on top of
// base, returning (nil, false, nil) if the combination conflicts with
// itself (an entity targeted twice, or a crossing pair) and must be
// discarded (spec §4.3 "Reject on conflict").
func applyOneCombination(store *entity.Store, base *state, slots []pairSlot, opts []int) (*state, bool, error) {
	child := base.clone()

	for i, slot := range slots {
		opt := opts[i]
		if opt == 0 {
			if child.isActive(slot.id) {
				continue
			}
			cost, errTypes, err := unmappedCost(store, child, slot.id)
			if err != nil {
				return nil, false, err
			}
			child.unmapped = append(child.unmapped, UnmappedInfo{Entity: slot.id, Cost: cost, ErrorTypes: errTypes})
			child.score += cost
			continue
		}

		target := slot.targets[opt-1]
		var eh, er entity.ID
		if slot.isHyp {
			eh, er = slot.id, target
		} else {
			eh, er = target, slot.id
		}

		if child.isActive(eh) || child.isActive(er) {
			return nil, false, nil
		}
		for _, p := range child.currentPairs {
			if crosses(store, p, eh, er) {
				return nil, false, nil
			}
		}

		fc, ok := child.frontiers[er]
		if !ok {
			return nil, false, nil
		}
		refEntity := store.Get(er)
		grid, ok := refEntity.SubstCosts[eh]
		if !ok {
			return nil, false, ErrUncomputedCost
		}
		cell := grid[fc.SF][fc.EF]
		if cell.Cost == entity.Uncomputed {
			return nil, false, ErrUncomputedCost
		}

		child.addedPairs = append(child.addedPairs, PairInfo{Ref: er, Hyp: eh, Cost: cell.Cost, ErrorTypes: cell.ErrorTypes})
		child.currentPairs = append(child.currentPairs, pairKV{Hyp: eh, Ref: er})
		child.active[eh] = struct{}{}
		child.active[er] = struct{}{}
		child.score += cell.Cost
	}

	return child, true, nil
}

// unmappedCost returns the miss cost for leaving id unmapped: a
// reference entity uses its just-chosen boundary; a hypothesis entity
// always uses its unique (0,0) cell.
func unmappedCost(store *entity.Store, st *state, id entity.ID) (float64, []int, error) {
	e := store.Get(id)
	if e.Side == entity.Hypothesis {
		cell := e.MissCosts[0][0]
		if cell.Cost == entity.Uncomputed {
			return 0, nil, ErrUncomputedCost
		}
		return cell.Cost, cell.ErrorTypes, nil
	}
	fc, ok := st.frontiers[id]
	if !ok {
		return 0, nil, ErrUncomputedCost
	}
	cell := e.MissCosts[fc.SF][fc.EF]
	if cell.Cost == entity.Uncomputed {
		return 0, nil, ErrUncomputedCost
	}
	return cell.Cost, cell.ErrorTypes, nil
}

// closeEntities removes from a state's active set and pair list every
// entity whose outermost end lands exactly at seg's end (spec §4.3
// "Close entities").
func closeEntities(store *entity.Store, st *state, seg *segment.Segment) {
	closing := map[entity.ID]struct{}{}
	for _, id := range seg.Entities {
		e := store.Get(id)
		if e.Ends[len(e.Ends)-1] == seg.End {
			closing[id] = struct{}{}
		}
	}
	if len(closing) == 0 {
		return
	}

	// frontiers entries are deliberately kept forever once set: the
	// equivalence key already treats a closed entity's boundary choice
	// as irrelevant (see equivKey's "closing" category), and the final
	// backward walk needs some persisted state to still carry it.
	for id := range closing {
		delete(st.active, id)
	}

	kept := make([]pairKV, 0, len(st.currentPairs))
	for _, p := range st.currentPairs {
		_, hClosed := closing[p.Hyp]
		_, rClosed := closing[p.Ref]
		if hClosed || rClosed {
			continue
		}
		kept = append(kept, p)
	}
	st.currentPairs = kept
}

// backwardWalk reconstructs the per-segment deltas and the union of
// every reference entity's chosen boundary by walking the winning
// state's predecessor chain (spec §4.4). A frontier choice never
// changes once set, so overwriting duplicates found in older ancestors
// is safe.
func backwardWalk(final *state, numSegments int) ([]SegmentDelta, map[entity.ID]FrontierChoice, error) {
	deltas := make([]SegmentDelta, numSegments)
	frontiers := map[entity.ID]FrontierChoice{}

	st := final
	for idx := numSegments - 1; idx >= 0; idx-- {
		for id, fc := range st.frontiers {
			frontiers[id] = fc
		}
		deltas[idx] = SegmentDelta{AddedPairs: st.addedPairs, Unmapped: st.unmapped}
		st = st.prev
	}

	return deltas, frontiers, nil
}
