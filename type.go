// File: lixenwraith/flagset/type.go
package flagset

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// Typed accessors read a resolved value whatever converter produced it.
// Unknown names and nil values are errors, except String which reads nil as "".

// String returns the value as text. Stringers (durations included) use their
// String method.
func (c *Config) String(name string) (string, error) {
	if v, ok := c.values[name]; ok && v == nil {
		return "", nil
	}
	v, err := c.lookup(name)
	if err != nil {
		return "", err
	}

	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String(), nil
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	}
	if i, ok, err := asInt64(v); ok {
		if err != nil {
			return "", fmt.Errorf("flag %s: %w", name, err)
		}
		return strconv.FormatInt(i, 10), nil
	}
	return "", fmt.Errorf("cannot read %T as string for flag %s", v.Interface(), name)
}

// Int64 returns the value as an integer. Floats are truncated and strings are
// parsed with base prefixes allowed.
func (c *Config) Int64(name string) (int64, error) {
	v, err := c.lookup(name)
	if err != nil {
		return 0, err
	}

	if i, ok, err := asInt64(v); ok {
		if err != nil {
			return 0, fmt.Errorf("flag %s: %w", name, err)
		}
		return i, nil
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return int64(v.Float()), nil
	case reflect.String:
		i, err := strconv.ParseInt(v.String(), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot read %q as int64 for flag %s: %w", v.String(), name, err)
		}
		return i, nil
	}
	return 0, fmt.Errorf("cannot read %T as int64 for flag %s", v.Interface(), name)
}

// Float64 returns the value as a float. Integers are widened.
func (c *Config) Float64(name string) (float64, error) {
	v, err := c.lookup(name)
	if err != nil {
		return 0, err
	}

	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.String:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot read %q as float64 for flag %s: %w", v.String(), name, err)
		}
		return f, nil
	}
	if v.Kind() >= reflect.Uint && v.Kind() <= reflect.Uint64 {
		return float64(v.Uint()), nil
	}
	if i, ok, _ := asInt64(v); ok {
		return float64(i), nil
	}
	return 0, fmt.Errorf("cannot read %T as float64 for flag %s", v.Interface(), name)
}

// Bool returns the value as a boolean. Strings go through ParseBool and
// numbers are true when non-zero.
func (c *Config) Bool(name string) (bool, error) {
	v, err := c.lookup(name)
	if err != nil {
		return false, err
	}

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		b, err := ParseBool(v.String())
		if err != nil {
			return false, fmt.Errorf("cannot read %q as bool for flag %s: %w", v.String(), name, err)
		}
		return b, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}
	if v.Kind() >= reflect.Uint && v.Kind() <= reflect.Uint64 {
		return v.Uint() != 0, nil
	}
	if v.Kind() >= reflect.Int && v.Kind() <= reflect.Int64 {
		return v.Int() != 0, nil
	}
	return false, fmt.Errorf("cannot read %T as bool for flag %s", v.Interface(), name)
}

// Duration returns the value as a time.Duration. Strings are parsed with
// time.ParseDuration; bare integers are not accepted.
func (c *Config) Duration(name string) (time.Duration, error) {
	v, err := c.lookup(name)
	if err != nil {
		return 0, err
	}

	switch d := v.Interface().(type) {
	case time.Duration:
		return d, nil
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return 0, fmt.Errorf("cannot read %q as duration for flag %s: %w", d, name, err)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("cannot read %T as duration for flag %s", v.Interface(), name)
}

func (c *Config) lookup(name string) (reflect.Value, error) {
	val, found := c.Get(name)
	if !found {
		return reflect.Value{}, fmt.Errorf("flag not registered: %s", name)
	}
	if val == nil {
		return reflect.Value{}, fmt.Errorf("flag %s has no value", name)
	}
	return reflect.ValueOf(val), nil
}

// asInt64 reads signed and unsigned integer kinds. ok is false for other kinds.
func asInt64(v reflect.Value) (i int64, ok bool, err error) {
	switch {
	case v.Kind() >= reflect.Int && v.Kind() <= reflect.Int64:
		return v.Int(), true, nil
	case v.Kind() >= reflect.Uint && v.Kind() <= reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, true, fmt.Errorf("unsigned value %d overflows int64", u)
		}
		return int64(u), true, nil
	}
	return 0, false, nil
}
