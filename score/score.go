// Package score turns an alignment result into Slot Error Rate,
// precision/recall/F-measure, and inter-annotator agreement statistics
// (spec §8, grounded on calc_scores/show_summary/show_iag in the
// original implementation).
package score

import (
	"math"

	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/result"
)

// Counts holds the raw tallies calc_scores produces, plus SER, from
// which every summary and IAG statistic is derived.
type Counts struct {
	TagHypCount, TagRefCount, TagCorrect []int

	SER float64

	Insert, Delete, Subst, Correct, Total int
}

// Compute tallies res against store, sized to tagCount tag ids.
func Compute(res result.Result, store *entity.Store, tagCount int) Counts {
	c := Counts{
		TagHypCount: make([]int, tagCount),
		TagRefCount: make([]int, tagCount),
		TagCorrect:  make([]int, tagCount),
	}

	for _, u := range res.Unmapped {
		e := store.Get(u.Entity)
		if e.Side == entity.Hypothesis {
			c.Insert++
			c.TagHypCount[e.Tag]++
		} else {
			c.Delete++
			c.TagRefCount[e.Tag]++
		}
		c.SER += u.Cost
	}

	for _, p := range res.Pairs {
		er := store.Get(p.Ref)
		eh := store.Get(p.Hyp)
		c.TagRefCount[er.Tag]++
		c.TagHypCount[eh.Tag]++
		if len(p.ErrorTypes) == 0 {
			c.Correct++
			c.TagCorrect[er.Tag]++
		} else {
			c.Subst++
		}
		c.SER += p.Cost
	}

	c.Total = c.Insert + c.Delete + c.Subst
	return c
}

// SERRate returns the Slot Error Rate against countRef reference
// entities. Per spec Open Question #1, a reference set with zero
// entities is defined as 0 SER when there are also zero errors, and
// +Inf otherwise (there is no sane ratio to report).
func SERRate(c Counts, countRef int) float64 {
	if countRef == 0 {
		if c.Total == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return c.SER / float64(countRef)
}

// Overall holds the whole-corpus precision/recall/F-measure figures.
type Overall struct {
	Precision, Recall, FMeasure float64
}

// ComputeOverall derives precision, recall and F-measure from c against
// the total reference and hypothesis entity counts.
func ComputeOverall(c Counts, countRef, countHyp int) Overall {
	var o Overall
	if countHyp > 0 {
		o.Precision = 100 * float64(c.Correct) / float64(countHyp)
	}
	if countRef > 0 {
		o.Recall = 100 * float64(c.Correct) / float64(countRef)
	}
	if countRef+countHyp > 0 {
		o.FMeasure = 2 * 100 * float64(c.Correct) / float64(countRef+countHyp)
	}
	return o
}

// TagStat holds per-tag precision/recall/F-measure plus the raw counts
// used to compute them.
type TagStat struct {
	Precision, Recall, FMeasure float64
	HypCount, RefCount, Correct int
}

// ComputeByTag returns one TagStat per tag id, in tag id order. A tag
// that appears in neither reference nor hypothesis is still present,
// with every field zero.
func ComputeByTag(c Counts) []TagStat {
	out := make([]TagStat, len(c.TagHypCount))
	for i := range out {
		cc := 100 * float64(c.TagCorrect[i])
		if c.TagHypCount[i] > 0 {
			out[i].Precision = cc / float64(c.TagHypCount[i])
		}
		if c.TagRefCount[i] > 0 {
			out[i].Recall = cc / float64(c.TagRefCount[i])
		}
		if c.TagHypCount[i]+c.TagRefCount[i] > 0 {
			out[i].FMeasure = 2 * cc / float64(c.TagHypCount[i]+c.TagRefCount[i])
		}
		out[i].HypCount = c.TagHypCount[i]
		out[i].RefCount = c.TagRefCount[i]
		out[i].Correct = c.TagCorrect[i]
	}
	return out
}
