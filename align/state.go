package align

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nescoring/nescore/entity"
)

// pairKV is one active (hypothesis, reference) pair, kept in the order
// it was formed so the non-crossing check can walk it.
type pairKV struct {
	Hyp, Ref entity.ID
}

// state is one partial-alignment search state (spec §4.3 "Search
// state"). Predecessors form a chain via prev; Go's garbage collector
// reclaims any state once nothing downstream still points to it, which
// is the equivalent effect of the original's reference-counted arena
// (see DESIGN.md).
type state struct {
	prev  *state
	score float64

	// frontiers holds the chosen (sf,ef) for every reference entity
	// instantiated so far; entries are kept after the entity closes.
	frontiers map[entity.ID]FrontierChoice

	// currentPairs is every pair active right now, in formation order.
	currentPairs []pairKV

	// active is the set of entities (either side) currently paired.
	active map[entity.ID]struct{}

	// addedPairs/unmapped are this state's own segment delta.
	addedPairs []PairInfo
	unmapped   []UnmappedInfo
}

func newRootState() *state {
	return &state{
		frontiers: map[entity.ID]FrontierChoice{},
		active:    map[entity.ID]struct{}{},
	}
}

// clone starts a child state from parent, ready to accumulate this
// segment's boundary/pairing choices.
func (s *state) clone() *state {
	c := &state{
		prev:      s,
		score:     s.score,
		frontiers: make(map[entity.ID]FrontierChoice, len(s.frontiers)),
		active:    make(map[entity.ID]struct{}, len(s.active)),
	}
	for k, v := range s.frontiers {
		c.frontiers[k] = v
	}
	for k := range s.active {
		c.active[k] = struct{}{}
	}
	c.currentPairs = append(c.currentPairs, s.currentPairs...)
	return c
}

func (s *state) isActive(id entity.ID) bool {
	_, ok := s.active[id]
	return ok
}

// findFrontier looks up an entity's frontier, checking this state first
// and falling back to the boundary choices still being assembled for
// the current segment (grounded on find_frontier, which checks the
// live node before the in-progress choice map).
func findFrontier(s *state, inProgress map[entity.ID]FrontierChoice, id entity.ID) (FrontierChoice, bool) {
	if fc, ok := s.frontiers[id]; ok {
		return fc, true
	}
	if fc, ok := inProgress[id]; ok {
		return fc, true
	}
	return FrontierChoice{}, false
}

// crosses reports whether pairing (eh,er) would cross an existing pair
// (spec §3 "Non-crossing constraint"): one pair must not nest its
// hypothesis side inside the other's while inverting the reference
// side, or vice versa.
func crosses(store *entity.Store, existing pairKV, eh, er entity.ID) bool {
	dh, dh2 := store.Get(existing.Hyp).Depth, store.Get(eh).Depth
	dr, dr2 := store.Get(existing.Ref).Depth, store.Get(er).Depth
	return (dh2 < dh && dr2 > dr) || (dh2 > dh && dr2 < dr)
}

// equivKey builds a canonical key capturing everything the equivalence
// merge considers (spec §4.3 "Equivalence merging"): the active-pair
// set, the ordered pair list, and, for every reference entity present
// in this segment, whether it is uninstantiated, already closed as of
// this segment's end (boundary choice no longer matters), or still open
// with a specific boundary (must match exactly).
func equivKey(store *entity.Store, s *state, segEnd int, segEntities []entity.ID) string {
	var b strings.Builder

	actives := make([]int, 0, len(s.active))
	for id := range s.active {
		actives = append(actives, int(id))
	}
	sort.Ints(actives)
	b.WriteString("A:")
	for _, id := range actives {
		b.WriteString(strconv.Itoa(id))
		b.WriteByte(',')
	}

	b.WriteString("|P:")
	for _, p := range s.currentPairs {
		b.WriteString(strconv.Itoa(int(p.Hyp)))
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(int(p.Ref)))
		b.WriteByte(',')
	}

	b.WriteString("|F:")
	for _, id := range segEntities {
		e := store.Get(id)
		if e.Side != entity.Reference {
			continue
		}
		fc, ok := s.frontiers[id]
		b.WriteString(strconv.Itoa(int(id)))
		switch {
		case !ok:
			b.WriteString(":absent,")
		case e.Ends[fc.EF] <= segEnd:
			b.WriteString(":closing,")
		default:
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(fc.SF))
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(fc.EF))
			b.WriteByte(',')
		}
	}

	return b.String()
}
