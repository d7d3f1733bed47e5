package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"string", `"hello"`, `"hello"`},
		{"int", `42`, `42`},
		{"negative", `-100`, `-100`},
		{"float", `1.5`, `1.5`},
		{"integral float", `2.0`, `2`},
		{"bool", `true`, `true`},
		{"null", `null`, `null`},
		{"empty array", `[ ]`, `[]`},
		{"empty object", `{ }`, `{}`},
		{"whitespace", "{ \"a\" : [ 1 , 2 ] }", `{"a":[1,2]}`},
		{"sorted keys", `{"zebra":1,"alpha":2,"beta":3}`, `{"alpha":2,"beta":3,"zebra":1}`},
		{"nested", `{"z":{"b":1,"a":2},"a":3}`, `{"a":3,"z":{"a":2,"b":1}}`},
		{"no html escaping", `"<a&b>"`, `"<a&b>"`},
		{"control chars", `"a\u0001b\n"`, `"a\u0001b\n"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestTransformUTF16Ordering(t *testing.T) {
	// U+10000 encodes as the surrogate pair D800 DC00, which sorts before U+E000
	// in UTF-16 even though its UTF-8 bytes sort after.
	got, err := Transform([]byte(`{"\ue000":1,"\ud800\udc00":2}`))
	require.NoError(t, err)
	assert.Equal(t, "{\"\U00010000\":2,\"\ue000\":1}", string(got))
}

func TestTransformNFC(t *testing.T) {
	// "e" + combining acute accent normalizes to the precomposed form.
	got, err := Transform([]byte(`"e\u0301"`))
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(got))
}

func TestTransformLineSeparatorsLiteral(t *testing.T) {
	got, err := Transform([]byte(`"a\u2028b\u2029c"`))
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\u2029c\"", string(got))
}

func TestMarshalStruct(t *testing.T) {
	v := struct {
		B string `json:"b"`
		A int    `json:"a"`
	}{B: "x", A: 1}

	got, err := Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":"x"}`, string(got))
}

func TestTransformInvalid(t *testing.T) {
	_, err := Transform([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestCompareUTF16(t *testing.T) {
	assert.Less(t, compareUTF16("A", "a"), 0)
	assert.Less(t, compareUTF16("a", "aa"), 0)
	assert.Equal(t, 0, compareUTF16("", ""))
	assert.Greater(t, compareUTF16("b", "a"), 0)
}
