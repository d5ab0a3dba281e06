// File: lixenwraith/flagset/helper.go
package flagset

import (
	"strings"
	"unicode"
)

// navigateToPath walks a nested map one dot-separated segment at a time.
// The second return is false if any segment is missing or a non-map value is
// reached before the last segment.
func navigateToPath(nested map[string]any, path string) (any, bool) {
	if path == "" {
		return nested, true
	}

	current := any(nested)
	for _, segment := range strings.Split(path, ".") {
		currentMap, ok := asMap(current)
		if !ok {
			return nil, false
		}
		value, exists := currentMap[segment]
		if !exists {
			return nil, false
		}
		current = value
	}

	return current, true
}

// asMap accepts the map shapes produced by the JSON, TOML and YAML decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

// isValidKeySegment checks a single config path segment. Document keys are
// looser than TOML bare keys, so only empty and whitespace-bearing segments are rejected.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
