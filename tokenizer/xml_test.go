package tokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nescoring/nescore/tag"
	"github.com/nescoring/nescore/tokenizer"
)

func TestExtractXMLTags_SimpleEntity(t *testing.T) {
	var tags tag.Table
	text, events, err := tokenizer.ExtractXMLTags([]byte("Hi <person>Alice Smith</person>."), &tags)
	require.NoError(t, err)

	assert.Equal(t, "Hi Alice Smith.", string(text))
	require.Len(t, events, 2)

	assert.False(t, events[0].Closing)
	assert.Equal(t, 3, events[0].Pos)
	personID, ok := tags.Find("person")
	require.True(t, ok)
	assert.Equal(t, personID, events[0].TagID)

	assert.True(t, events[1].Closing)
	assert.Equal(t, 14, events[1].Pos)
}

func TestExtractXMLTags_NestedWithAttrs(t *testing.T) {
	var tags tag.Table
	text, events, err := tokenizer.ExtractXMLTags(
		[]byte(`<org kind=bank>Bank of <loc id="1">America</loc></org>`), &tags)
	require.NoError(t, err)

	assert.Equal(t, "Bank of America", string(text))
	require.Len(t, events, 4)
	require.Len(t, events[0].Attrs, 1)
	assert.Equal(t, "kind", events[0].Attrs[0].Key)
	assert.Equal(t, "bank", events[0].Attrs[0].Value)
	require.Len(t, events[1].Attrs, 1)
	assert.Equal(t, "id", events[1].Attrs[0].Key)
	assert.Equal(t, "1", events[1].Attrs[0].Value)
}

func TestExtractXMLTags_MissingCloseAngle(t *testing.T) {
	var tags tag.Table
	_, _, err := tokenizer.ExtractXMLTags([]byte("<person>Alice</person"), &tags)
	assert.Error(t, err)
}

func TestExtractXMLTags_UnterminatedQuote(t *testing.T) {
	var tags tag.Table
	_, _, err := tokenizer.ExtractXMLTags([]byte(`<org kind="bank>Acme</org>`), &tags)
	assert.Error(t, err)
}
