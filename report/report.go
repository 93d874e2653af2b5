// Package report renders score.Counts/score.IAG and a result.Result
// into the summary, detail and IAG text views (spec §9, grounded on
// show_summary/show_details/show_entity/build_error_string/show_iag in
// the original implementation).
package report

import (
	"fmt"
	"io"

	"github.com/nescoring/nescore/align"
	"github.com/nescoring/nescore/costmodel"
	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/result"
	"github.com/nescoring/nescore/score"
	"github.com/nescoring/nescore/tag"
)

// Summary writes the overall SER, error breakdown, precision/recall/F
// and per-tag table to w.
func Summary(w io.Writer, c score.Counts, countRef, countHyp int, tags *tag.Table) {
	ser := score.SERRate(c, countRef)
	fmt.Fprintf(w, "Slot Error Rate: %5.1f%% (%g %d)\n\n", ser*100, c.SER, countRef)

	pct := func(n int) float64 {
		if countRef == 0 {
			return 0
		}
		return float64(n) * 100 / float64(countRef)
	}
	fmt.Fprintf(w, "%6d %5.1f%% corrects\n", c.Correct, pct(c.Correct))
	fmt.Fprintf(w, "%6d %5.1f%% inserts\n", c.Insert, pct(c.Insert))
	fmt.Fprintf(w, "%6d %5.1f%% deletes\n", c.Delete, pct(c.Delete))
	fmt.Fprintf(w, "%6d %5.1f%% substitutions\n", c.Subst, pct(c.Subst))
	fmt.Fprintf(w, "%6d %5.1f%% total errors\n\n", c.Total, pct(c.Total))

	overall := score.ComputeOverall(c, countRef, countHyp)
	if countHyp > 0 {
		fmt.Fprintf(w, "%5.1f%% overall precision (%d entities in hypothesis)\n", overall.Precision, countHyp)
	} else {
		fmt.Fprintf(w, "   0.0%% overall precision (0 entities in hypothesis)\n")
	}
	fmt.Fprintf(w, "%5.1f%% overall recall (%d entities in reference)\n", overall.Recall, countRef)
	fmt.Fprintf(w, "%5.1f%% overall F-measure\n\n", overall.FMeasure)

	fmt.Fprintf(w, "   P      R      F   tag\n")
	names := tags.Names()
	for i, st := range score.ComputeByTag(c) {
		if st.HypCount+st.RefCount == 0 {
			continue
		}
		fmt.Fprintf(w, "%5.1f%% %5.1f%% %5.1f%% %s (hyp_count=%d, ref_count=%d, correct=%d)\n",
			st.Precision, st.Recall, st.FMeasure, names[i], st.HypCount, st.RefCount, st.Correct)
	}
}

// IAGReport writes the IAG block to w.
func IAGReport(w io.Writer, iag score.IAG) {
	fmt.Fprintf(w, "Total entities: %d\n", int(iag.TotalEntities))
	fmt.Fprintf(w, "Tag types: %d\n\n", iag.TagTypes)
	fmt.Fprintf(w, "S         = %7.5f\n", iag.S)
	fmt.Fprintf(w, "Pi        = %7.5f\n", iag.Pi)
	fmt.Fprintf(w, "Kappa     = %7.5f\n", iag.Kappa)
	fmt.Fprintf(w, "F-measure = %7.5f\n", iag.FMeasure)
}

// buildErrorString joins interned error-type ids into a space-separated
// label, or "correct" for an empty list.
func buildErrorString(errs *tag.Table, ids []int) string {
	if len(ids) == 0 {
		return "correct"
	}
	s := ""
	for i, id := range ids {
		if i > 0 {
			s += " "
		}
		s += errs.Name(id)
	}
	return s
}

// entityLabel renders one entity's tag, attributes and chosen text span
// the way show_entity does.
func entityLabel(e *entity.Entity, tags *tag.Table, data []byte, frontiers map[entity.ID]align.FrontierChoice) string {
	sf, ef := 0, len(e.Ends)-1
	if fc, ok := frontiers[e.ID]; ok {
		sf, ef = fc.SF, fc.EF
	}

	name := tags.Name(e.Tag)
	if len(e.Attrs) > 0 {
		name += " ("
		for i, a := range e.Attrs {
			if i > 0 {
				name += " "
			}
			name += a.Key + "=" + a.Value
		}
		name += ")"
	}

	side := "ref"
	if e.Side == entity.Hypothesis {
		side = "hyp"
	}
	snippet := costmodel.Escape(data[e.Starts[sf]:e.Ends[ef]])
	return fmt.Sprintf("%s: %s - %s", side, name, snippet)
}

// Detail writes one block per error (and, if showCorrect, per correct
// match too): a line with the error type, cost and source locations,
// one line per entity involved, then a blank line.
func Detail(w io.Writer, res result.Result, store *entity.Store, data []byte, tags, errs *tag.Table, refName, hypName string, showCorrect bool) {
	for _, u := range res.Unmapped {
		e := store.Get(u.Entity)
		kind := byte('D')
		fname := refName
		if e.Side == entity.Hypothesis {
			kind = 'I'
			fname = hypName
		}
		fmt.Fprintf(w, "%c: %s (%g): %s:%d\n", kind, buildErrorString(errs, u.ErrorTypes), u.Cost, fname, e.Line)
		fmt.Fprintf(w, "%s\n\n", entityLabel(e, tags, data, res.Frontiers))
	}

	for _, p := range res.Pairs {
		er := store.Get(p.Ref)
		eh := store.Get(p.Hyp)

		var kind byte
		if len(p.ErrorTypes) == 0 {
			if showCorrect {
				kind = 'C'
			}
		} else {
			kind = 'S'
		}
		if kind == 0 {
			continue
		}

		fmt.Fprintf(w, "%c: %s (%g): %s:%d %s:%d\n", kind, buildErrorString(errs, p.ErrorTypes), p.Cost, refName, er.Line, hypName, eh.Line)
		fmt.Fprintf(w, "%s\n", entityLabel(er, tags, data, res.Frontiers))
		fmt.Fprintf(w, "%s\n\n", entityLabel(eh, tags, data, res.Frontiers))
	}
}
