// FILE: lixenwraith/flagset/convert.go
package flagset

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Converter turns raw flag input into a typed value.
// Convert handles text from the command line and environment. Decode handles
// leaves of a config document, which may already be typed (numbers, lists).
type Converter interface {
	Convert(raw string) (any, error)
	Decode(v any) (any, error)
	Type() string
}

// boolFlag is implemented by converters whose flags may be given bare on the command line.
type boolFlag interface {
	IsBoolFlag() bool
}

type typed[T any] struct {
	name  string
	parse func(string) (T, error)
}

func (c typed[T]) Convert(raw string) (any, error) {
	v, err := c.parse(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Decode routes scalar leaves through the parse function as text, so config
// files accept exactly what the command line accepts: 1.5 is not an int and
// true is not a number. Lists and tables are decoded strictly.
func (c typed[T]) Decode(v any) (any, error) {
	if s, ok := scalarText(v); ok {
		return c.Convert(s)
	}
	var out T
	if err := decodeValue(v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// scalarText renders strings, numbers and booleans in their canonical text
// form. JSON numbers keep their original digits.
func scalarText(v any) (string, bool) {
	switch tv := v.(type) {
	case string:
		return tv, true
	case json.Number:
		return tv.String(), true
	case bool:
		return strconv.FormatBool(tv), true
	case nil:
		return "", false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}

func (c typed[T]) Type() string { return c.name }

type boolConverter struct {
	typed[bool]
}

func (boolConverter) IsBoolFlag() bool { return true }

// Func wraps a user parsing function as a Converter. name is shown in help output.
func Func[T any](name string, fn func(string) (T, error)) Converter {
	return typed[T]{name: name, parse: fn}
}

// String returns the identity converter.
func String() Converter {
	return typed[string]{name: "string", parse: func(s string) (string, error) { return s, nil }}
}

// Int converts base-10 integers.
func Int() Converter {
	return typed[int]{name: "int", parse: func(s string) (int, error) {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("expecting integer value")
		}
		return i, nil
	}}
}

// Float converts floating point numbers.
func Float() Converter {
	return typed[float64]{name: "float", parse: func(s string) (float64, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("expecting float value")
		}
		return f, nil
	}}
}

// Bool converts textual booleans with ParseBool. Flags using it may be given
// bare on the command line, which means true.
func Bool() Converter {
	return boolConverter{typed[bool]{name: "bool", parse: ParseBool}}
}

// Duration converts values accepted by time.ParseDuration.
func Duration() Converter {
	return typed[time.Duration]{name: "duration", parse: time.ParseDuration}
}

// StringSlice splits comma separated text. Config lists decode element-wise.
func StringSlice() Converter {
	return typed[[]string]{name: "strings", parse: func(s string) ([]string, error) {
		if strings.TrimSpace(s) == "" {
			return []string{}, nil
		}
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}}
}

// ParseBool accepts t, true, y, yes, 1 and f, false, n, no, 0 in any case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "t", "true", "y", "yes", "1":
		return true, nil
	case "f", "false", "n", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expecting boolean value")
	}
}

func isBoolLiteral(s string) bool {
	_, err := ParseBool(s)
	return err == nil
}

// converterByName maps schema type names to built-in converters.
func converterByName(name string) (Converter, bool) {
	switch name {
	case "", "string":
		return String(), true
	case "int":
		return Int(), true
	case "float":
		return Float(), true
	case "bool":
		return Bool(), true
	case "duration":
		return Duration(), true
	case "strings":
		return StringSlice(), true
	}
	return nil, false
}
