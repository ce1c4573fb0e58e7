// File: adf/path.go
package adf

import "strings"

// parsePath splits a dot-notation path into segments. A double quote
// toggles a protected mode in which dots do not split, so quoted segments
// may contain dots. Quoted segments are unquoted before lookup.
func parsePath(path string) []string {
	var parts []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range path {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			current.WriteRune(ch)
		case ch == '.' && !inQuotes:
			if current.Len() > 0 {
				parts = append(parts, unquoteKey(current.String()))
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, unquoteKey(current.String()))
	}
	return parts
}

// unquoteKey strips one pair of surrounding double quotes, if present.
func unquoteKey(key string) string {
	if len(key) >= 2 && strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) {
		return key[1 : len(key)-1]
	}
	return key
}

// deepMergeObjects combines two objects: the result holds every key of
// base; keys present in both merge recursively when both values are
// objects, otherwise the overlay value wins; keys only in the overlay are
// added. Arrays and scalars are replaced wholesale, never element-wise.
func deepMergeObjects(base, overlay map[string]Value) map[string]Value {
	result := make(map[string]Value, len(base)+len(overlay))
	for key, val := range base {
		result[key] = val
	}

	for key, overlayVal := range overlay {
		if baseVal, exists := result[key]; exists {
			baseObj := baseVal.objectRef()
			overlayObj := overlayVal.objectRef()
			if baseObj != nil && overlayObj != nil {
				result[key] = Object(deepMergeObjects(baseObj, overlayObj))
				continue
			}
		}
		result[key] = overlayVal
	}

	return result
}
