package json

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null{}, "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"integer", Number(42), "42"},
		{"fraction", Number(3.14), "3.14"},
		{"negative", Number(-1), "-1"},
		{"large", Number(1e21), "1e+21"},
		{"string", String("hi"), `"hi"`},
		{"empty array", Array(nil), "[]"},
		{"array", Array{Number(1), Bool(false)}, "[1,false]"},
		{"empty object", Object{}, "{}"},
		{"nested", Array{Object{"a": Array(nil)}}, `[{"a":[]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.v))
		})
	}
}

func TestEncodeEscapesStrings(t *testing.T) {
	got := Encode(String("a\"b\\c\nd\x01"))
	assert.Equal(t, `"a\"b\\c\nd\u0001"`, got)
}

func TestEncodeSortsObjectKeys(t *testing.T) {
	obj := Object{"b": Number(2), "a": Number(1), "c": Number(3)}
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, Encode(obj))
}

func TestEncoderIndented(t *testing.T) {
	var buf strings.Builder
	enc := NewEncoder(&buf)
	enc.SetIndent("  ")

	err := enc.Encode(Object{"a": Array{Number(1), Number(2)}})
	require.NoError(t, err)

	want := `{
  "a": [
    1,
    2
  ]
}
`
	assert.Equal(t, want, buf.String())
}

func TestEncoderCompactWriter(t *testing.T) {
	var buf strings.Builder
	err := NewEncoder(&buf).Encode(Array{Null{}})
	require.NoError(t, err)
	assert.Equal(t, "[null]", buf.String())
}
