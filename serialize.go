// File: adf/serialize.go
package adf

import (
	"sort"
	"strconv"
	"strings"
)

// Serialize renders the document back to ADF text. Simple objects become
// sections of key-value lines, arrays become scalar or object array
// sections, and nested structures recurse into dotted section paths.
// Absolute sections are written first, then relative sections without the
// '#' prefix. Keys are emitted in sorted order so output is deterministic
// even though the underlying maps are not.
func (d *Document) Serialize() string {
	var lines []string
	serializeTree(d.root, "", &lines, true)

	if len(d.relativeSections) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		serializeTree(d.relativeSections, "", &lines, false)
	}

	return strings.Join(lines, "\n")
}

// String renders the document as ADF text.
func (d *Document) String() string {
	return d.Serialize()
}

func serializeTree(data map[string]Value, parentPath string, lines *[]string, absolute bool) {
	keys := sortedKeys(data)

	// Scalars at this level share one section at the parent path, so they
	// re-parse into the same place instead of gaining a spurious segment.
	var scalarKeys []string
	for _, key := range keys {
		if k := data[key].Kind(); k != KindObject && k != KindArray {
			scalarKeys = append(scalarKeys, key)
		}
	}
	if len(scalarKeys) > 0 {
		writeSectionHeader(parentPath, lines, absolute)
		for _, key := range scalarKeys {
			writeKeyValue(key, data[key], lines)
		}
		*lines = append(*lines, "")
	}

	for _, key := range keys {
		value := data[key]
		currentPath := headerSegment(key)
		if parentPath != "" {
			currentPath = parentPath + "." + headerSegment(key)
		}

		switch value.Kind() {
		case KindObject:
			obj := value.objectRef()
			if isSimpleObject(obj) {
				writeSectionHeader(currentPath, lines, absolute)
				writeObject(obj, lines)
				*lines = append(*lines, "")
			} else {
				serializeTree(obj, currentPath, lines, absolute)
			}
		case KindArray:
			arr, _ := value.AsArray()
			writeSectionHeader(currentPath, lines, absolute)
			writeArray(arr, lines)
			*lines = append(*lines, "")
		}
	}
}

// headerSegment renders a map key as one header path segment, quoting keys
// that contain dots or other non-identifier characters so they re-parse as
// a single level.
func headerSegment(key string) string {
	if isIdentifier(key) {
		return key
	}
	return `"` + key + `"`
}

// isSimpleObject reports whether the object holds only scalars, so it can
// be written as a flat run of key-value lines.
func isSimpleObject(obj map[string]Value) bool {
	for _, value := range obj {
		if value.IsObject() || value.IsArray() {
			return false
		}
	}
	return true
}

func writeSectionHeader(path string, lines *[]string, absolute bool) {
	prefix := ""
	if absolute {
		prefix = "# "
	}
	if path == "" {
		*lines = append(*lines, strings.TrimSuffix(prefix, " ")+":")
		return
	}
	*lines = append(*lines, prefix+path+":")
}

func writeObject(obj map[string]Value, lines *[]string) {
	for _, key := range sortedKeys(obj) {
		writeKeyValue(key, obj[key], lines)
	}
}

func writeArray(arr []Value, lines *[]string) {
	if len(arr) == 0 {
		return
	}

	objectArray := false
	for _, item := range arr {
		if item.IsObject() {
			objectArray = true
			break
		}
	}

	if !objectArray {
		for _, item := range arr {
			*lines = append(*lines, formatScalar(item))
		}
		return
	}

	for i, item := range arr {
		if i > 0 {
			*lines = append(*lines, "")
		}
		if obj := item.objectRef(); obj != nil {
			writeObject(obj, lines)
		} else {
			*lines = append(*lines, formatScalar(item))
		}
	}
}

func writeKeyValue(key string, value Value, lines *[]string) {
	if s, ok := value.AsString(); ok && strings.Contains(s, "\n") {
		*lines = append(*lines, key+` = """`)
		*lines = append(*lines, s)
		*lines = append(*lines, `"""`)
		return
	}
	*lines = append(*lines, key+" = "+formatScalar(value))
}

// formatScalar renders a scalar, quoting strings that would otherwise
// re-parse as a different type or collide with the line grammar.
func formatScalar(value Value) string {
	if s, ok := value.AsString(); ok {
		if needsQuoting(s) {
			return `"` + s + `"`
		}
		return s
	}
	return value.String()
}

// needsQuoting flags strings that type inference would misread or that
// contain characters with grammar meaning.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}

	switch strings.ToLower(s) {
	case "true", "false":
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}

	return strings.ContainsAny(s, "=#:()")
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
