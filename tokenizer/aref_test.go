package tokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nescoring/nescore/tag"
	"github.com/nescoring/nescore/tokenizer"
)

func TestExtractArefMarkers_StartAndEnd(t *testing.T) {
	var tags tag.Table
	src := `Alice Smith<annotation id="0" type="person" ftype="s" depth="0" parent="-1" />` +
		` said hi<annotation id="0" type="person" ftype="e" depth="0" parent="-1" />.`
	text, markers, err := tokenizer.ExtractArefMarkers([]byte(src), &tags)
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith said hi.", string(text))
	require.Len(t, markers, 2)

	assert.Equal(t, 0, markers[0].EntityID)
	assert.True(t, markers[0].Opening)
	assert.False(t, markers[0].Closing)
	assert.Equal(t, 11, markers[0].Pos)
	assert.Equal(t, -1, markers[0].Parent)

	personID, ok := tags.Find("person")
	require.True(t, ok)
	assert.Equal(t, personID, markers[0].TagID)

	assert.True(t, markers[1].Closing)
	assert.Equal(t, 19, markers[1].Pos)
}

func TestExtractArefMarkers_SingleFtypeSE(t *testing.T) {
	var tags tag.Table
	src := `<annotation id="0" type="loc" ftype="se" depth="0" parent="-1" />Paris`
	_, markers, err := tokenizer.ExtractArefMarkers([]byte(src), &tags)
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.True(t, markers[0].Opening)
	assert.True(t, markers[0].Closing)
}

func TestExtractArefMarkers_UnknownFtype(t *testing.T) {
	var tags tag.Table
	src := `<annotation id="0" type="loc" ftype="x" depth="0" parent="-1" />Paris`
	_, _, err := tokenizer.ExtractArefMarkers([]byte(src), &tags)
	assert.Error(t, err)
}

func TestExtractArefMarkers_DuplicateAttr(t *testing.T) {
	var tags tag.Table
	src := `<annotation id="0" id="1" type="loc" ftype="s" depth="0" parent="-1" />Paris`
	_, _, err := tokenizer.ExtractArefMarkers([]byte(src), &tags)
	assert.Error(t, err)
}

func TestExtractArefMarkers_UnknownAttribute(t *testing.T) {
	var tags tag.Table
	src := `<annotation id="0" type="loc" ftype="s" depth="0" parent="-1" bogus="1" />Paris`
	_, _, err := tokenizer.ExtractArefMarkers([]byte(src), &tags)
	assert.Error(t, err)
}

func TestExtractArefMarkers_MissingTerminator(t *testing.T) {
	var tags tag.Table
	src := `<annotation id="0" type="loc" ftype="s" depth="0" parent="-1"`
	_, _, err := tokenizer.ExtractArefMarkers([]byte(src), &tags)
	assert.Error(t, err)
}

func TestExtractArefMarkers_NonAnnotationTagPassesThrough(t *testing.T) {
	var tags tag.Table
	text, markers, err := tokenizer.ExtractArefMarkers([]byte("a <b> c"), &tags)
	require.NoError(t, err)
	assert.Empty(t, markers)
	assert.Equal(t, "a <b> c", string(text))
}
