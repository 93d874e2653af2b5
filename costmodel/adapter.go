package costmodel

import (
	"fmt"

	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/segment"
	"github.com/nescoring/nescore/tag"
)

// view builds an EntityView for e under the boundary (start,end),
// escaping control characters in the text slice per spec §6.
func view(e *entity.Entity, tags *tag.Table, start, end int, data []byte) EntityView {
	attrs := make([]KV, len(e.Attrs))
	for i, a := range e.Attrs {
		attrs[i] = KV{Key: a.Key, Value: a.Value}
	}
	return EntityView{
		Tag:   tags.Name(e.Tag),
		Hyp:   e.Side == entity.Hypothesis,
		Start: start,
		End:   end,
		Attr:  attrs,
		Value: Escape(data[start:end]),
	}
}

// Escape renders a byte slice for inclusion in diagnostics and cost
// model input, collapsing runs of literal space and escaping control
// characters (grounded on the `escape` helper in the original
// implementation).
func Escape(s []byte) string {
	out := make([]byte, 0, len(s))
	var prev byte
	for _, c := range s {
		switch {
		case c == '\n':
			out = append(out, '\\', 'n')
		case c < 32:
			out = append(out, []byte(fmt.Sprintf("\\0x%02x", c))...)
		case c != ' ' || c != prev:
			out = append(out, c)
		}
		prev = c
	}
	return string(out)
}

// errorIDs interns a list of error-type strings into a table and
// returns their ids.
func errorIDs(errs *tag.Table, names []string) []int {
	ids := make([]int, len(names))
	for i, n := range names {
		ids[i] = errs.Intern(n)
	}
	return ids
}

// uncomputedGrid allocates a rows x cols grid of cost cells, each
// carrying entity.Uncomputed until a cell is actually filled in (spec
// §4.2: any access of a cell still at Uncomputed during search is a
// logic bug).
func uncomputedGrid(rows, cols int) [][]entity.CostCell {
	grid := make([][]entity.CostCell, rows)
	for i := range grid {
		grid[i] = make([]entity.CostCell, cols)
		for j := range grid[i] {
			grid[i][j].Cost = entity.Uncomputed
		}
	}
	return grid
}

// PopulateMissCosts materializes miss_costs[s][e] for every entity in
// store exhaustively up front, for every (s,e) with Starts[s] < Ends[e]
// (spec §4.2).
func PopulateMissCosts(model Model, store *entity.Store, tags, errs *tag.Table, data []byte) error {
	for _, id := range store.All() {
		e := store.Get(id)
		e.MissCosts = uncomputedGrid(len(e.Starts), len(e.Ends))
		for s := range e.Starts {
			for en := range e.Ends {
				if e.Starts[s] >= e.Ends[en] {
					continue
				}
				cost, errNames, err := model.MissCost(view(e, tags, e.Starts[s], e.Ends[en], data))
				if err != nil {
					return fmt.Errorf("costmodel: get_miss_cost: %w", err)
				}
				if cost < 0 {
					return ErrBadCost
				}
				e.MissCosts[s][en] = entity.CostCell{Cost: cost, ErrorTypes: errorIDs(errs, errNames)}
			}
		}
	}
	return nil
}

// PopulateSubstitutionCosts lazily computes substitution costs for every
// (reference, hypothesis) pair that co-occur in some segment, over every
// feasible reference (s,e) whose span overlaps the hypothesis entity's
// unique span (spec §4.2, grounded on compute_substitution_errors_costs).
func PopulateSubstitutionCosts(model Model, store *entity.Store, segments []segment.Segment, tags, errs *tag.Table, data []byte) error {
	for _, seg := range segments {
		for _, hid := range seg.Entities {
			eh := store.Get(hid)
			if eh.Side != entity.Hypothesis {
				continue
			}
			hStart, hEnd := eh.SingleSpan()

			for _, rid := range seg.Entities {
				er := store.Get(rid)
				if er.Side != entity.Reference {
					continue
				}
				if er.SubstCosts == nil {
					er.SubstCosts = map[entity.ID][][]entity.CostCell{}
				}
				if _, ok := er.SubstCosts[hid]; ok {
					continue
				}

				grid := uncomputedGrid(len(er.Starts), len(er.Ends))
				hv := view(eh, tags, hStart, hEnd, data)
				for s := range er.Starts {
					if er.Starts[s] >= hEnd {
						continue
					}
					for en := range er.Ends {
						if er.Ends[en] < hStart {
							continue
						}
						if er.Starts[s] >= er.Ends[en] {
							continue
						}
						rv := view(er, tags, er.Starts[s], er.Ends[en], data)
						cost, errNames, err := model.SubstitutionCost(rv, hv)
						if err != nil {
							return fmt.Errorf("costmodel: get_substitution_cost: %w", err)
						}
						if cost < 0 {
							return ErrBadCost
						}
						grid[s][en] = entity.CostCell{Cost: cost, ErrorTypes: errorIDs(errs, errNames)}
					}
				}
				er.SubstCosts[hid] = grid
			}
		}
	}
	return nil
}
