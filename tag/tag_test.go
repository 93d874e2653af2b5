package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nescoring/nescore/tag"
)

func TestTable_InternStable(t *testing.T) {
	var tb tag.Table

	id1 := tb.Intern("PERSON")
	id2 := tb.Intern("LOCATION")
	id3 := tb.Intern("PERSON")

	assert.Equal(t, id1, id3, "re-interning the same name returns the same id")
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, tb.Len())
}

func TestTable_Find(t *testing.T) {
	var tb tag.Table
	tb.Intern("ORG")

	id, ok := tb.Find("ORG")
	require.True(t, ok)
	assert.Equal(t, 0, id)

	_, ok = tb.Find("MISSING")
	assert.False(t, ok)
}

func TestTable_Name(t *testing.T) {
	var tb tag.Table
	id := tb.Intern("PERSON")
	assert.Equal(t, "PERSON", tb.Name(id))
}

func TestTable_Names(t *testing.T) {
	var tb tag.Table
	tb.Intern("A")
	tb.Intern("B")

	names := tb.Names()
	assert.Equal(t, []string{"A", "B"}, names)

	// mutating the returned slice must not affect the table
	names[0] = "Z"
	assert.Equal(t, "A", tb.Name(0))
}
