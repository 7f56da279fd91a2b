package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeContextValues_Identity(t *testing.T) {
	c := FromJSONInterface(map[string]interface{}{"name": "http://example.org/name"})

	merged, err := MergeContextValues(NewMapValue(), c)
	require.NoError(t, err)
	assert.True(t, merged.Equal(c))

	merged, err = MergeContextValues(c, NewMapValue())
	require.NoError(t, err)
	assert.True(t, merged.Equal(c))
}

func TestMergeContextValues_IRIReplacement(t *testing.T) {
	c1 := FromJSONInterface(map[string]interface{}{"a": "http://example.org/i"})
	c2 := FromJSONInterface(map[string]interface{}{"b": "http://example.org/i"})

	merged, err := MergeContextValues(c1, c2)
	require.NoError(t, err)

	m := merged.Map()
	assert.False(t, m.Has("a"), "a's term mapping is displaced by b claiming the same IRI")
	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, "http://example.org/i", v.Str())
}

func TestMergeContextValues_PlainKeyCollisionLaterWins(t *testing.T) {
	c1 := FromJSONInterface(map[string]interface{}{"name": "http://one.org/name"})
	c2 := FromJSONInterface(map[string]interface{}{"name": "http://two.org/name"})

	merged, err := MergeContextValues(c1, c2)
	require.NoError(t, err)

	v, ok := merged.Map().Get("name")
	require.True(t, ok)
	assert.Equal(t, "http://two.org/name", v.Str())
}

func TestMergeContextValues_FoldsSequence(t *testing.T) {
	list := Seq(
		FromJSONInterface(map[string]interface{}{"a": "http://example.org/i"}),
		FromJSONInterface(map[string]interface{}{"b": "http://example.org/i"}),
	)

	merged, err := MergeContextValues(NewMapValue(), list)
	require.NoError(t, err)

	m := merged.Map()
	assert.False(t, m.Has("a"))
	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, "http://example.org/i", v.Str())
}

func TestMergeContextValues_NullEntryRemovesKey(t *testing.T) {
	c1 := FromJSONInterface(map[string]interface{}{"name": "http://example.org/name"})
	c2 := FromJSONInterface(map[string]interface{}{"name": nil})

	merged, err := MergeContextValues(c1, c2)
	require.NoError(t, err)
	assert.False(t, merged.Map().Has("name"))
}

func TestMergeContextValues_RejectsNonObjectShape(t *testing.T) {
	_, err := MergeContextValues(Str("not a context"), NewMapValue())
	require.Error(t, err)
	jsonLDErr, ok := err.(*JsonLdError)
	require.True(t, ok)
	assert.Equal(t, InvalidContext, jsonLDErr.Code)
}
