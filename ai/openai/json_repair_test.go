package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"valid passes through", `{"answer":"Paris","confidence":0.9}`, `{"answer":"Paris","confidence":0.9}`},
		{"bare key", `{answer: "Paris"}`, `{"answer": "Paris"}`},
		{"missing opening quote", `{answer": "Paris"}`, `{"answer": "Paris"}`},
		{"trailing comma in object", `{"answer": "Paris",}`, `{"answer": "Paris"}`},
		{"trailing comma in array", `{"items": [1, 2, ]}`, `{"items": [1, 2 ]}`},
		{"second bare key", `{"answer": "Paris", confidence: 0.9}`, `{"answer": "Paris", "confidence": 0.9}`},
		{"commas inside strings untouched", `{"answer": "a, b,"}`, `{"answer": "a, b,"}`},
		{"colons inside strings untouched", `{"answer": "time: noon"}`, `{"answer": "time: noon"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := repairJSON(tc.in)
			assert.Equal(t, tc.want, got)

			var v map[string]any
			require.NoError(t, json.Unmarshal([]byte(got), &v), "repaired JSON must parse")
		})
	}
}
