package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nescoring/nescore/align"
	"github.com/nescoring/nescore/entity"
	"github.com/nescoring/nescore/report"
	"github.com/nescoring/nescore/result"
	"github.com/nescoring/nescore/score"
	"github.com/nescoring/nescore/tag"
)

func buildFixture(t *testing.T) (*entity.Store, *tag.Table, *tag.Table, []byte, result.Result) {
	t.Helper()
	data := []byte("Alice Smith met Bob.")

	var tags tag.Table
	personID := tags.Intern("PERSON")

	store := entity.NewStore()
	require.NoError(t, store.BuildFromEvents([]entity.OpenTag{
		{TagID: personID, Pos: 0}, {TagID: personID, Closing: true, Pos: 11},
	}, entity.Reference))
	require.NoError(t, store.BuildFromEvents([]entity.OpenTag{
		{TagID: personID, Pos: 16}, {TagID: personID, Closing: true, Pos: 19},
	}, entity.Hypothesis))

	var errs tag.Table
	missingID := errs.Intern("missing")

	res := result.Result{
		Unmapped: []align.UnmappedInfo{{Entity: entity.ID(0), Cost: 1.0, ErrorTypes: []int{missingID}}},
		Pairs:    []align.PairInfo{},
	}
	return store, &tags, &errs, data, res
}

func TestSummary_WritesHeaderAndTagTable(t *testing.T) {
	_, tags, _, _, _ := buildFixture(t)
	c := score.Counts{
		TagHypCount: []int{1},
		TagRefCount: []int{1},
		TagCorrect:  []int{0},
		Delete:      1,
		Total:       1,
		SER:         1.0,
	}

	var buf bytes.Buffer
	report.Summary(&buf, c, 1, 1, tags)
	out := buf.String()
	assert.Contains(t, out, "Slot Error Rate:")
	assert.Contains(t, out, "PERSON")
}

func TestIAGReport_WritesCoefficients(t *testing.T) {
	var buf bytes.Buffer
	report.IAGReport(&buf, score.IAG{TotalEntities: 2, TagTypes: 1, S: 0.5, Pi: 0.5, Kappa: 0.5, FMeasure: 0.5})
	out := buf.String()
	assert.Contains(t, out, "S         =")
	assert.Contains(t, out, "Kappa     =")
}

func TestDetail_WritesDeleteLine(t *testing.T) {
	store, tags, errs, data, res := buildFixture(t)

	var buf bytes.Buffer
	report.Detail(&buf, res, store, data, tags, errs, "ref.txt", "hyp.txt", false)
	out := buf.String()
	assert.Contains(t, out, "D: missing")
	assert.Contains(t, out, "ref: PERSON")
}
