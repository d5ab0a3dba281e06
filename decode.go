// FILE: lixenwraith/flagset/decode.go
package flagset

import (
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// decodeHook is shared by config leaf decoding and Config.Scan.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		textHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// decodeValue strictly decodes a document value into target. Mismatched kinds
// are errors, never coerced.
func decodeValue(input any, target any) error {
	// The standard string hooks assert plain strings, so JSON numbers are unwrapped first.
	// Integers beyond int64 keep their digits as text.
	if n, ok := input.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			input = i
		} else if !strings.ContainsAny(n.String(), ".eE") {
			input = n.String()
		} else if f, err := n.Float64(); err == nil {
			input = f
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		DecodeHook: decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	return decoder.Decode(input)
}

// decodeStruct decodes resolved values into a struct or map using the "flag" tag.
func decodeStruct(values map[string]any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "flag",
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to scan flags into %T: %w", target, err)
	}
	return nil
}

var (
	ipType  = reflect.TypeOf(net.IP{})
	urlType = reflect.TypeOf(url.URL{})
)

// textHook decodes strings into net.IP, url.URL and *url.URL fields.
func textHook() mapstructure.DecodeHookFunc {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		s := reflect.ValueOf(data).String()

		switch {
		case to == ipType:
			if len(s) > 45 { // longest textual IPv6
				return nil, fmt.Errorf("invalid IP length: %d", len(s))
			}
			ip := net.ParseIP(s)
			if ip == nil {
				return nil, fmt.Errorf("invalid IP address: %s", s)
			}
			return ip, nil
		case to == urlType, to.Kind() == reflect.Ptr && to.Elem() == urlType:
			if len(s) > 2048 {
				return nil, fmt.Errorf("URL too long: %d bytes", len(s))
			}
			u, err := url.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("invalid URL: %w", err)
			}
			if to == urlType {
				return *u, nil
			}
			return u, nil
		}
		return data, nil
	}
}
