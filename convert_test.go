// FILE: lixenwraith/flagset/convert_test.go
package flagset

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		valid    bool
	}{
		{"t", true, true},
		{"true", true, true},
		{"True", true, true},
		{"TRUE", true, true},
		{"y", true, true},
		{"yes", true, true},
		{"1", true, true},
		{"f", false, true},
		{"false", false, true},
		{"False", false, true},
		{"n", false, true},
		{"no", false, true},
		{"0", false, true},
		{"maybe", false, false},
		{"", false, false},
		{"2", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBool(tt.input)
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuiltinConverters(t *testing.T) {
	t.Run("Convert", func(t *testing.T) {
		tests := []struct {
			name     string
			conv     Converter
			input    string
			expected any
		}{
			{"String", String(), "hi", "hi"},
			{"StringEmpty", String(), "", ""},
			{"Int", Int(), "1000", 1000},
			{"IntNegative", Int(), "-7", -7},
			{"Float", Float(), "1.1", 1.1},
			{"Bool", Bool(), "yes", true},
			{"Duration", Duration(), "1m30s", 90 * time.Second},
			{"StringSlice", StringSlice(), "a, b,c", []string{"a", "b", "c"}},
			{"StringSliceEmpty", StringSlice(), "", []string{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := tt.conv.Convert(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			})
		}
	})

	t.Run("ConvertFailure", func(t *testing.T) {
		_, err := Int().Convert("abc")
		assert.Error(t, err)
		_, err = Float().Convert("x1")
		assert.Error(t, err)
		_, err = Bool().Convert("maybe")
		assert.Error(t, err)
		_, err = Duration().Convert("soon")
		assert.Error(t, err)
	})

	t.Run("DecodeTypedLeaves", func(t *testing.T) {
		tests := []struct {
			name     string
			conv     Converter
			input    any
			expected any
		}{
			{"IntFromJSONNumber", Int(), json.Number("42"), 42},
			{"IntFromTOML", Int(), int64(42), 42},
			{"FloatFromJSONNumber", Float(), json.Number("2.5"), 2.5},
			{"FloatFromInt", Float(), int64(3), 3.0},
			{"StringFromNumber", String(), int64(7), "7"},
			{"BoolFromBool", Bool(), true, true},
			{"BoolFromString", Bool(), "no", false},
			{"DurationFromString", Duration(), "5s", 5 * time.Second},
			{"SliceFromList", StringSlice(), []any{"a", "b"}, []string{"a", "b"}},
			{"SliceFromString", StringSlice(), "a,b", []string{"a", "b"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := tt.conv.Decode(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			})
		}
	})

	t.Run("DecodeRejectsLossyLeaves", func(t *testing.T) {
		tests := []struct {
			name  string
			conv  Converter
			input any
		}{
			{"IntFromFraction", Int(), 1.5},
			{"IntFromJSONFraction", Int(), json.Number("1.5")},
			{"IntFromBool", Int(), true},
			{"IntOverflow", Int(), json.Number("12345678901234567890")},
			{"FloatFromBool", Float(), false},
			{"BoolFromNumber", Bool(), int64(2)},
			{"DurationWithoutUnit", Duration(), int64(1000)},
			{"SliceWithNumbers", StringSlice(), []any{"a", int64(1)}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := tt.conv.Decode(tt.input)
				assert.Error(t, err)
			})
		}
	})

	t.Run("DecodeKeepsDigits", func(t *testing.T) {
		got, err := String().Decode(json.Number("12345678901234567890"))
		require.NoError(t, err)
		assert.Equal(t, "12345678901234567890", got)

		got, err = String().Decode(json.Number("1.50"))
		require.NoError(t, err)
		assert.Equal(t, "1.50", got)

		got, err = Int().Decode(2.0)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("DecodeMapIntoScalarFails", func(t *testing.T) {
		_, err := Int().Decode(map[string]any{"a": 1})
		assert.Error(t, err)
	})

	t.Run("TypeNames", func(t *testing.T) {
		assert.Equal(t, "string", String().Type())
		assert.Equal(t, "int", Int().Type())
		assert.Equal(t, "bool", Bool().Type())
		assert.Equal(t, "strings", StringSlice().Type())
	})
}

func TestFuncConverter(t *testing.T) {
	upper := Func("upper", func(s string) (string, error) {
		if s == "" {
			return "", errors.New("empty")
		}
		return strings.ToUpper(s), nil
	})

	got, err := upper.Convert("abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)

	_, err = upper.Convert("")
	assert.Error(t, err)

	assert.Equal(t, "upper", upper.Type())

	f := Flag{Type: upper, Cmdline: []string{"--x"}}
	assert.False(t, f.IsBool())
	f.Type = Bool()
	assert.True(t, f.IsBool())
}

func TestConverterByName(t *testing.T) {
	for _, name := range []string{"", "string", "int", "float", "bool", "duration", "strings"} {
		_, ok := converterByName(name)
		assert.True(t, ok, name)
	}
	_, ok := converterByName("uuid")
	assert.False(t, ok)
}
