package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nescoring/nescore/align"
	"github.com/nescoring/nescore/costmodel"
	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/segment"
	"github.com/nescoring/nescore/tag"
)

func buildAndRun(t *testing.T, data []byte, store *entity.Store) ([]align.SegmentDelta, map[entity.ID]align.FrontierChoice) {
	t.Helper()
	var tags, errs tag.Table
	tags.Intern("N")
	model := costmodel.NewDefault([]string{"N"})
	require.NoError(t, costmodel.PopulateMissCosts(model, store, &tags, &errs, data))
	segs := segment.Build(store)
	require.NoError(t, costmodel.PopulateSubstitutionCosts(model, store, segs, &tags, &errs, data))

	deltas, frontiers, err := align.Run(store, segs)
	require.NoError(t, err)
	return deltas, frontiers
}

func allPairs(deltas []align.SegmentDelta) []align.PairInfo {
	var out []align.PairInfo
	for _, d := range deltas {
		out = append(out, d.AddedPairs...)
	}
	return out
}

func allUnmapped(deltas []align.SegmentDelta) []align.UnmappedInfo {
	var out []align.UnmappedInfo
	for _, d := range deltas {
		out = append(out, d.Unmapped...)
	}
	return out
}

func TestRun_ExactMatch(t *testing.T) {
	data := []byte("Alice met Bob.")
	store := entity.NewStore()
	require.NoError(t, store.BuildFromEvents([]entity.OpenTag{
		{TagID: 0, Closing: false, Pos: 0},
		{TagID: 0, Closing: true, Pos: 5},
	}, entity.Reference))
	require.NoError(t, store.BuildFromEvents([]entity.OpenTag{
		{TagID: 0, Closing: false, Pos: 0},
		{TagID: 0, Closing: true, Pos: 5},
	}, entity.Hypothesis))

	deltas, _ := buildAndRun(t, data, store)
	pairs := allPairs(deltas)
	require.Len(t, pairs, 1)
	assert.Equal(t, 0.0, pairs[0].Cost)
	assert.Empty(t, allUnmapped(deltas))
}

func TestRun_MissAndFalsePositive(t *testing.T) {
	data := []byte("Alice met Bob.")
	store := entity.NewStore()
	require.NoError(t, store.BuildFromEvents([]entity.OpenTag{
		{TagID: 0, Closing: false, Pos: 0},
		{TagID: 0, Closing: true, Pos: 5},
	}, entity.Reference))
	require.NoError(t, store.BuildFromEvents([]entity.OpenTag{
		{TagID: 0, Closing: false, Pos: 10},
		{TagID: 0, Closing: true, Pos: 13},
	}, entity.Hypothesis))

	deltas, _ := buildAndRun(t, data, store)
	assert.Empty(t, allPairs(deltas))
	unmapped := allUnmapped(deltas)
	require.Len(t, unmapped, 2)
	assert.Equal(t, 1.0, unmapped[0].Cost)
	assert.Equal(t, 1.0, unmapped[1].Cost)
}

// TestRun_ChoosesBestBoundaryAlternative mirrors spec §8's worked example:
// a reference entity with two boundary alternatives ("Alice" vs "Smith")
// must be resolved against the alternative that gives the cheapest total
// alignment, not the first one offered.
func TestRun_ChoosesBestBoundaryAlternative(t *testing.T) {
	data := []byte("Alice Smith")
	store := entity.NewStore()
	require.NoError(t, store.BuildFromAref([]entity.ArefMarker{
		{EntityID: 0, TagID: 0, Pos: 0, Opening: true, Parent: -1},
		{EntityID: 0, TagID: 0, Pos: 6, Opening: true, Parent: -1},
		{EntityID: 0, TagID: 0, Pos: 5, Closing: true, Parent: -1},
		{EntityID: 0, TagID: 0, Pos: 11, Closing: true, Parent: -1},
	}, entity.Reference))
	require.NoError(t, store.BuildFromEvents([]entity.OpenTag{
		{TagID: 0, Closing: false, Pos: 6},
		{TagID: 0, Closing: true, Pos: 11},
	}, entity.Hypothesis))

	deltas, frontiers := buildAndRun(t, data, store)

	pairs := allPairs(deltas)
	require.Len(t, pairs, 1)
	assert.Equal(t, entity.ID(0), pairs[0].Ref)
	assert.Equal(t, entity.ID(1), pairs[0].Hyp)
	assert.Equal(t, 0.0, pairs[0].Cost)
	assert.Empty(t, allUnmapped(deltas))

	ref := store.Get(0)
	fc := frontiers[0]
	assert.Equal(t, 6, ref.Starts[fc.SF])
	assert.Equal(t, 11, ref.Ends[fc.EF])
}
