// Package result assembles the alignment engine's per-segment deltas
// into one final, de-duplicated alignment: every pair, every truly
// unmapped entity, and the boundary each reference entity was actually
// scored under (spec §4.4).
package result

import (
	"sort"

	"github.com/nescoring/nescore/align"
	"github.com/nescoring/nescore/entity"
)

// Result is the fully assembled alignment, ready for scoring and
// reporting.
type Result struct {
	Pairs     []align.PairInfo
	Unmapped  []align.UnmappedInfo
	Frontiers map[entity.ID]align.FrontierChoice
}

// Assemble concatenates every segment's pairs in original order, then
// filters the unmapped list: an entity recorded unmapped at the segment
// where it was first resolved may still have been paired at a later
// segment (spec §4.3's "may be unmapped at its first feasible segment
// and paired later"), so the second pass removes any unmapped record
// for an entity that ended up in Pairs (grounded on cleanup_unmapped in
// the original implementation).
func Assemble(deltas []align.SegmentDelta, frontiers map[entity.ID]align.FrontierChoice) Result {
	var pairs []align.PairInfo
	var unmapped []align.UnmappedInfo

	for _, d := range deltas {
		pairs = append(pairs, d.AddedPairs...)
		unmapped = append(unmapped, d.Unmapped...)
	}

	paired := make(map[entity.ID]struct{}, len(pairs))
	for _, p := range pairs {
		paired[p.Ref] = struct{}{}
		paired[p.Hyp] = struct{}{}
	}

	kept := unmapped[:0]
	for _, u := range unmapped {
		if _, ok := paired[u.Entity]; ok {
			continue
		}
		kept = append(kept, u)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Ref != pairs[j].Ref {
			return pairs[i].Ref < pairs[j].Ref
		}
		return pairs[i].Hyp < pairs[j].Hyp
	})
	sort.Slice(kept, func(i, j int) bool { return kept[i].Entity < kept[j].Entity })

	return Result{Pairs: pairs, Unmapped: kept, Frontiers: frontiers}
}
