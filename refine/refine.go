// Package refine tightens entity boundaries so that no candidate start
// or end includes leading/trailing whitespace, per spec §6 "Whitespace
// refinement" (grounded on refine_entities in the original implementation).
package refine

import (
	"sort"

	"github.com/nescoring/nescore/entity"
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Entities refines every entity in store against data in place. It
// advances each start alternative past leading whitespace, retracts each
// end alternative past trailing whitespace, sorts and deduplicates the
// resulting offsets, and drops alternatives that become empty or
// inverted from either end of the list while preserving at least one
// alternative on each side. It returns entity.ErrEmptyEntity if an
// entity has no legal (start,end) pair left after refinement.
func Entities(store *entity.Store, data []byte) error {
	for _, id := range store.All() {
		e := store.Get(id)

		for i, s := range e.Starts {
			e.Starts[i] = advancePastSpace(data, s)
		}
		for i, en := range e.Ends {
			e.Ends[i] = retreatPastSpace(data, en)
		}

		e.Starts = sortUnique(e.Starts)
		e.Ends = sortUnique(e.Ends)

		// Drop leading ends that are at or before the first start.
		for len(e.Ends) > 0 && len(e.Starts) > 0 && e.Ends[0] <= e.Starts[0] {
			e.Ends = e.Ends[1:]
		}
		if len(e.Ends) == 0 {
			return entity.ErrEmptyEntity
		}

		// Drop trailing starts that are at or past the last legal end.
		last := e.Ends[len(e.Ends)-1]
		for len(e.Starts) > 1 && e.Starts[len(e.Starts)-1] >= last {
			e.Starts = e.Starts[:len(e.Starts)-1]
		}
		if len(e.Starts) == 0 || e.Starts[0] >= last {
			return entity.ErrEmptyEntity
		}
	}

	return nil
}

func advancePastSpace(data []byte, pos int) int {
	for pos < len(data) && isSpace(data[pos]) {
		pos++
	}
	return pos
}

func retreatPastSpace(data []byte, pos int) int {
	for pos > 0 && isSpace(data[pos-1]) {
		pos--
	}
	return pos
}

func sortUnique(xs []int) []int {
	if len(xs) < 2 {
		return xs
	}
	sort.Ints(xs)
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
