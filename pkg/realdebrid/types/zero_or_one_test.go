package types

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroOrOne_Unmarshal(t *testing.T) {
	t.Run("zero and one", func(t *testing.T) {
		var v struct {
			A ZeroOrOne `json:"a"`
			B ZeroOrOne `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a":0,"b":1}`), &v))
		assert.False(t, v.A.Bool())
		assert.True(t, v.B.Bool())
	})

	t.Run("other integers are rejected", func(t *testing.T) {
		for _, input := range []string{"2", "-1", "42"} {
			var b ZeroOrOne
			err := json.Unmarshal([]byte(input), &b)
			require.Error(t, err, input)
			assert.ErrorContains(t, err, "expected 0 or 1")
		}
	})

	t.Run("non integers are rejected", func(t *testing.T) {
		for _, input := range []string{`"1"`, `true`, `1.5`, `[]`} {
			var b ZeroOrOne
			err := json.Unmarshal([]byte(input), &b)
			require.Error(t, err, input)
			assert.ErrorContains(t, err, "expected an integer between 0 and 1")
		}
	})

	t.Run("optional", func(t *testing.T) {
		var v struct {
			Present *ZeroOrOne `json:"present"`
			Null    *ZeroOrOne `json:"null"`
			Absent  *ZeroOrOne `json:"absent"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"present":1,"null":null}`), &v))

		value, ok := OptionalBool(v.Present)
		assert.True(t, ok)
		assert.True(t, value)
		assert.Nil(t, v.Null)
		assert.Nil(t, v.Absent)

		_, ok = OptionalBool(v.Absent)
		assert.False(t, ok)
	})
}

func TestZeroOrOne_Marshal(t *testing.T) {
	data, err := json.Marshal(struct {
		A ZeroOrOne `json:"a"`
		B ZeroOrOne `json:"b"`
	}{A: true, B: false})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":0}`, string(data))
}
