package ld

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSONInterface_SortsMapKeys(t *testing.T) {
	v := FromJSONInterface(map[string]interface{}{
		"z": 1,
		"a": 2,
		"m": 3,
	})
	require.True(t, v.IsMap())
	assert.Equal(t, []string{"a", "m", "z"}, v.Map().Keys())
}

func TestFromJSONInterface_NumberKinds(t *testing.T) {
	whole := FromJSONInterface(float64(3))
	_, isDouble := whole.Num()
	assert.False(t, isDouble)

	frac := FromJSONInterface(float64(3.5))
	_, isDouble = frac.Num()
	assert.True(t, isDouble)
}

func TestToJSONInterface_RoundTrips(t *testing.T) {
	original := map[string]interface{}{
		"name":  "Bob",
		"count": float64(2),
		"tags":  []interface{}{"a", "b"},
	}
	v := FromJSONInterface(original)
	back := ToJSONInterface(v)

	backMap, ok := back.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Bob", backMap["name"])
	assert.Equal(t, int64(2), backMap["count"])
}

func TestDecodeJSON(t *testing.T) {
	r := strings.NewReader(`{"name": "Bob", "age": 42}`)
	v, err := DecodeJSON(r)
	require.NoError(t, err)

	name, ok := v.Map().Get("name")
	require.True(t, ok)
	assert.Equal(t, "Bob", name.Str())
}

func TestDecodeJSON_InvalidInput(t *testing.T) {
	r := strings.NewReader(`{not valid json`)
	_, err := DecodeJSON(r)
	require.Error(t, err)
}
