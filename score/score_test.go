package score_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nescoring/nescore/align"
	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/result"
	"github.com/nescoring/nescore/score"
)

func TestCompute_CorrectAndSubstAndInsertDelete(t *testing.T) {
	store := entity.NewStore()

	// Reference entities: 0 correct, 1 substituted, 2 deleted.
	require.NoError(t, store.BuildFromEvents([]entity.OpenTag{
		{TagID: 0, Pos: 0}, {TagID: 0, Closing: true, Pos: 1},
		{TagID: 0, Pos: 2}, {TagID: 0, Closing: true, Pos: 3},
		{TagID: 0, Pos: 4}, {TagID: 0, Closing: true, Pos: 5},
	}, entity.Reference))
	refCorrect, refSubst, refDeleted := entity.ID(0), entity.ID(1), entity.ID(2)

	// Hypothesis entities: 3 correct (tag 0), 4 substituted (tag 1),
	// 5 a pure false-positive insertion (tag 1).
	require.NoError(t, store.BuildFromEvents([]entity.OpenTag{
		{TagID: 0, Pos: 0}, {TagID: 0, Closing: true, Pos: 1},
		{TagID: 1, Pos: 2}, {TagID: 1, Closing: true, Pos: 3},
		{TagID: 1, Pos: 4}, {TagID: 1, Closing: true, Pos: 5},
	}, entity.Hypothesis))
	hypCorrect, hypSubst, hypInserted := entity.ID(3), entity.ID(4), entity.ID(5)

	res := result.Result{
		Pairs: []align.PairInfo{
			{Ref: refCorrect, Hyp: hypCorrect, Cost: 0, ErrorTypes: nil},
			{Ref: refSubst, Hyp: hypSubst, Cost: 1, ErrorTypes: []int{0}},
		},
		Unmapped: []align.UnmappedInfo{
			{Entity: refDeleted, Cost: 1},
			{Entity: hypInserted, Cost: 1},
		},
	}

	c := score.Compute(res, store, 2)
	assert.Equal(t, 1, c.Correct)
	assert.Equal(t, 1, c.Subst)
	assert.Equal(t, 1, c.Delete)
	assert.Equal(t, 1, c.Insert)
	assert.Equal(t, 3, c.Total)
	assert.Equal(t, 3.0, c.SER)

	overall := score.ComputeOverall(c, 3, 3)
	require.InDelta(t, 33.333, overall.Precision, 0.01)
	require.InDelta(t, 33.333, overall.Recall, 0.01)

	byTag := score.ComputeByTag(c)
	require.Len(t, byTag, 2)
	assert.Equal(t, 1, byTag[0].Correct)
	assert.Equal(t, 0, byTag[1].Correct)
}

func TestSERRate_ZeroReferenceEntities(t *testing.T) {
	assert.Equal(t, 0.0, score.SERRate(score.Counts{}, 0))
	assert.True(t, math.IsInf(score.SERRate(score.Counts{Total: 1}, 0), 1))
}

func TestComputeIAG_ClosedMode(t *testing.T) {
	c := score.Counts{
		TagHypCount: []int{1, 1},
		TagRefCount: []int{1, 1},
		TagCorrect:  []int{1, 0},
		Correct:     1,
		Subst:       1,
	}
	iag := score.ComputeIAG(c, 2, 2, 10, false)
	assert.Equal(t, 2, iag.TagTypes)
	assert.False(t, math.IsNaN(iag.S))
	assert.False(t, math.IsNaN(iag.Kappa))
}
