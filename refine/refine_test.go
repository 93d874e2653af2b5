package refine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/refine"
)

func TestEntities_TrimsWhitespace(t *testing.T) {
	data := []byte("  Alice  met Bob.")
	s := entity.NewStore()
	require.NoError(t, s.BuildFromEvents([]entity.OpenTag{
		{TagID: 0, Closing: false, Pos: 0},
		{TagID: 0, Closing: true, Pos: 9},
	}, entity.Reference))

	require.NoError(t, refine.Entities(s, data))
	e := s.Get(0)
	assert.Equal(t, []int{2}, e.Starts)
	assert.Equal(t, []int{7}, e.Ends)
}

func TestEntities_KeepsAlternativesWithAnInvertedCombination(t *testing.T) {
	data := []byte("Alice Smith")
	s := entity.NewStore()
	s.BuildFromAref([]entity.ArefMarker{
		{EntityID: 0, TagID: 0, Pos: 0, Opening: true, Parent: -1},
		{EntityID: 0, TagID: 0, Pos: 6, Opening: true, Parent: -1},
		{EntityID: 0, TagID: 0, Pos: 5, Closing: true, Parent: -1},
		{EntityID: 0, TagID: 0, Pos: 11, Closing: true, Parent: -1},
	}, entity.Reference)

	require.NoError(t, refine.Entities(s, data))
	e := s.Get(0)
	// end=5 is after Starts.front()=0 and start=6 is before
	// Ends.back()=11, so refinement keeps both alternatives on each side;
	// the inverted (6,5) combination is left for the engine to reject at
	// search time.
	assert.Equal(t, []int{0, 6}, e.Starts)
	assert.Equal(t, []int{5, 11}, e.Ends)
}

func TestEntities_EmptyAfterRefinement(t *testing.T) {
	data := []byte("   ")
	s := entity.NewStore()
	require.NoError(t, s.BuildFromEvents([]entity.OpenTag{
		{TagID: 0, Closing: false, Pos: 0},
		{TagID: 0, Closing: true, Pos: 3},
	}, entity.Reference))

	err := refine.Entities(s, data)
	assert.ErrorIs(t, err, entity.ErrEmptyEntity)
}
