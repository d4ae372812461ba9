package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FlexString
	}{
		{name: "string", in: `"32평"`, want: "32평"},
		{name: "integer", in: `32`, want: "32"},
		{name: "float", in: `32.5`, want: "32.5"},
		{name: "bool", in: `true`, want: "true"},
		{name: "null", in: `null`, want: ""},
		{name: "array", in: `[1, "a"]`, want: `[1,"a"]`},
		{name: "object", in: `{"a": 1}`, want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FlexString("stale")
			require.NoError(t, f.UnmarshalJSON([]byte(tt.in)))
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestFlexStringInStruct(t *testing.T) {
	var v struct {
		Size   FlexString            `json:"size"`
		Values map[string]FlexString `json:"values"`
		Images []FlexString          `json:"images"`
	}

	err := json.Unmarshal([]byte(`{"size":32,"values":{"phone":1234,"name":"a"},"images":["x.jpg",7]}`), &v)
	require.NoError(t, err)

	assert.Equal(t, FlexString("32"), v.Size)
	assert.Equal(t, map[string]FlexString{"phone": "1234", "name": "a"}, v.Values)
	assert.Equal(t, []string{"x.jpg", "7"}, FlexStrings(v.Images))
	assert.Nil(t, FlexStrings(nil))
}
