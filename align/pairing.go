package align

import (
	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/segment"
)

// pairSlot is one entity that gets to decide, for this segment, whether
// it stays unmapped or pairs with one of targets (spec §4.3 "Pairing
// enumeration").
type pairSlot struct {
	id      entity.ID
	isHyp   bool
	targets []entity.ID
}

// buildPairSlots lists, in the order the original processes them: every
// reference entity just instantiated this segment (targets = hypothesis
// entities in the segment whose span overlaps the chosen reference
// span), then every hypothesis entity starting this segment (targets =
// reference entities already instantiated in pan whose chosen end
// extends past this segment's start).
func buildPairSlots(store *entity.Store, pan *state, seg *segment.Segment, choices []boundaryChoice) []pairSlot {
	var slots []pairSlot

	for _, c := range choices {
		re := store.Get(c.id)
		start, end := re.Starts[c.sf], re.Ends[c.ef]
		var targets []entity.ID
		for _, id := range seg.Entities {
			he := store.Get(id)
			if he.Side != entity.Hypothesis {
				continue
			}
			hs, he2 := he.SingleSpan()
			if hs < end && he2 > start {
				targets = append(targets, id)
			}
		}
		slots = append(slots, pairSlot{id: c.id, isHyp: false, targets: targets})
	}

	for _, hid := range seg.StartingHyp {
		var targets []entity.ID
		for _, id := range seg.Entities {
			re := store.Get(id)
			if re.Side != entity.Reference {
				continue
			}
			fc, ok := pan.frontiers[id]
			if !ok {
				continue
			}
			if re.Ends[fc.EF] > seg.Start {
				targets = append(targets, id)
			}
		}
		slots = append(slots, pairSlot{id: hid, isHyp: true, targets: targets})
	}

	return slots
}

// totalCombinations returns the product of (1+len(targets)) across
// slots: option 0 is "leave unmapped", option i selects targets[i-1].
func totalCombinations(slots []pairSlot) int {
	total := 1
	for _, s := range slots {
		total *= 1 + len(s.targets)
	}
	return total
}

// decode splits a combination index into one option per slot via
// mixed-radix division (spec §4.3 "Pairing enumeration", grounded on
// the original's slot-index decomposition).
func decode(k int, slots []pairSlot) []int {
	opts := make([]int, len(slots))
	for i, s := range slots {
		radix := 1 + len(s.targets)
		opts[i] = k % radix
		k /= radix
	}
	return opts
}
