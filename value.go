// File: adf/value.go
package adf

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindArray
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single datum in an ADF document: a scalar, an ordered array,
// or an object mapping string keys to further values. The zero Value is Null.
// Values have no identity semantics; they are compared structurally with
// Equal and duplicated with Clone.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	bln  bool
	arr  []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// String wraps s as a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Integer wraps i as an integer value.
func Integer(i int64) Value {
	return Value{kind: KindInteger, num: i}
}

// Float wraps f as a float value.
func Float(f float64) Value {
	return Value{kind: KindFloat, flt: f}
}

// Boolean wraps b as a boolean value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, bln: b}
}

// Array wraps items as an array value. The slice is not copied.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, arr: items}
}

// Object wraps m as an object value. The map is not copied; a nil map is
// replaced with an empty one.
func Object(m map[string]Value) Value {
	if m == nil {
		m = make(map[string]Value)
	}
	return Value{kind: KindObject, obj: m}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool    { return v.kind == KindNull }
func (v Value) IsString() bool  { return v.kind == KindString }
func (v Value) IsInteger() bool { return v.kind == KindInteger }
func (v Value) IsFloat() bool   { return v.kind == KindFloat }
func (v Value) IsBoolean() bool { return v.kind == KindBoolean }
func (v Value) IsArray() bool   { return v.kind == KindArray }
func (v Value) IsObject() bool  { return v.kind == KindObject }

// AsString returns the string content and whether the value is a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsInt returns the integer content and whether the value is an integer.
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInteger
}

// AsFloat returns the numeric content as float64. Integers convert
// implicitly, matching the usual widening rule.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.flt, true
	case KindInteger:
		return float64(v.num), true
	default:
		return 0, false
	}
}

// AsBool returns the boolean content and whether the value is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.bln, v.kind == KindBoolean
}

// AsArray returns the element slice and whether the value is an array.
// The slice is shared with the value, not copied.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the key map and whether the value is an object.
// The map is shared with the value, not copied.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// objectRef returns the mutable key map of an object value, or nil for any
// other kind. Mutations through the map are visible to every holder of the
// value since the map is shared.
func (v Value) objectRef() map[string]Value {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Equal reports structural equality between two values.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == other.str
	case KindInteger:
		return v.num == other.num
	case KindFloat:
		return v.flt == other.flt
	case KindBoolean:
		return v.bln == other.bln
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for key, val := range v.obj {
			otherVal, exists := other.obj[key]
			if !exists || !val.Equal(otherVal) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of the value. Container contents are duplicated
// recursively so the clone shares no structure with the original.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		items := make([]Value, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Clone()
		}
		return Value{kind: KindArray, arr: items}
	case KindObject:
		m := make(map[string]Value, len(v.obj))
		for key, val := range v.obj {
			m[key] = val.Clone()
		}
		return Value{kind: KindObject, obj: m}
	default:
		return v
	}
}

// Interface converts the value to plain Go types: string, int64, float64,
// bool, nil, []any, and map[string]any. This is the bridge to external
// encoders and to struct decoding.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		return v.num
	case KindFloat:
		return v.flt
	case KindBoolean:
		return v.bln
	case KindArray:
		items := make([]any, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.Interface()
		}
		return items
	case KindObject:
		m := make(map[string]any, len(v.obj))
		for key, val := range v.obj {
			m[key] = val.Interface()
		}
		return m
	default:
		return nil
	}
}

// FromInterface converts plain Go data (as produced by Interface, or by the
// stdlib/toml/yaml decoders) into a Value. Unsupported types become their
// fmt representation as a string value.
func FromInterface(data any) Value {
	switch d := data.(type) {
	case nil:
		return Null()
	case string:
		return String(d)
	case bool:
		return Boolean(d)
	case int:
		return Integer(int64(d))
	case int64:
		return Integer(d)
	case float64:
		return Float(d)
	case []any:
		items := make([]Value, len(d))
		for i, item := range d {
			items[i] = FromInterface(item)
		}
		return Array(items...)
	case map[string]any:
		m := make(map[string]Value, len(d))
		for key, val := range d {
			m[key] = FromInterface(val)
		}
		return Object(m)
	case Value:
		return d
	default:
		return String(fmt.Sprint(d))
	}
}

// String renders scalar values the way the serializer writes them.
// Containers and null render as their kind name in angle brackets.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return formatFloat(v.flt)
	case KindBoolean:
		return strconv.FormatBool(v.bln)
	default:
		return "<" + v.kind.String() + ">"
	}
}

// formatFloat renders a float so it re-parses as a float, keeping a decimal
// point even for whole numbers.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
