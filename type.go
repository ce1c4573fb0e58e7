// File: adf/type.go
package adf

import (
	"fmt"
	"strconv"
)

// GetString retrieves a string value at the path.
// Scalar values of other kinds are rendered to their text form.
func (d *Document) GetString(path string) (string, error) {
	val, found := d.Get(path)
	if !found {
		return "", fmt.Errorf("path not found: %s", path)
	}

	switch val.Kind() {
	case KindString:
		s, _ := val.AsString()
		return s, nil
	case KindInteger, KindFloat, KindBoolean:
		return val.String(), nil
	case KindNull:
		return "", nil
	default:
		return "", fmt.Errorf("cannot convert %s to string for path %s", val.Kind(), path)
	}
}

// GetInt retrieves an int64 value at the path.
// Floats truncate, booleans map to 1/0, and parsable strings convert.
func (d *Document) GetInt(path string) (int64, error) {
	val, found := d.Get(path)
	if !found {
		return 0, fmt.Errorf("path not found: %s", path)
	}

	switch val.Kind() {
	case KindInteger:
		i, _ := val.AsInt()
		return i, nil
	case KindFloat:
		f, _ := val.AsFloat()
		return int64(f), nil
	case KindBoolean:
		if b, _ := val.AsBool(); b {
			return 1, nil
		}
		return 0, nil
	case KindString:
		s, _ := val.AsString()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("cannot convert string %q to int64 for path %s", s, path)
	default:
		return 0, fmt.Errorf("cannot convert %s to int64 for path %s", val.Kind(), path)
	}
}

// GetFloat retrieves a float64 value at the path.
// Integers widen, booleans map to 1/0, and parsable strings convert.
func (d *Document) GetFloat(path string) (float64, error) {
	val, found := d.Get(path)
	if !found {
		return 0, fmt.Errorf("path not found: %s", path)
	}

	switch val.Kind() {
	case KindFloat, KindInteger:
		f, _ := val.AsFloat()
		return f, nil
	case KindBoolean:
		if b, _ := val.AsBool(); b {
			return 1, nil
		}
		return 0, nil
	case KindString:
		s, _ := val.AsString()
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
		return 0, fmt.Errorf("cannot convert string %q to float64 for path %s", s, path)
	default:
		return 0, fmt.Errorf("cannot convert %s to float64 for path %s", val.Kind(), path)
	}
}

// GetBool retrieves a boolean value at the path.
// Numbers read as zero/non-zero and parsable strings convert.
func (d *Document) GetBool(path string) (bool, error) {
	val, found := d.Get(path)
	if !found {
		return false, fmt.Errorf("path not found: %s", path)
	}

	switch val.Kind() {
	case KindBoolean:
		b, _ := val.AsBool()
		return b, nil
	case KindInteger:
		i, _ := val.AsInt()
		return i != 0, nil
	case KindFloat:
		f, _ := val.AsFloat()
		return f != 0, nil
	case KindString:
		s, _ := val.AsString()
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		}
		return false, fmt.Errorf("cannot convert string %q to bool for path %s", s, path)
	default:
		return false, fmt.Errorf("cannot convert %s to bool for path %s", val.Kind(), path)
	}
}

// GetArray retrieves an array value at the path.
func (d *Document) GetArray(path string) ([]Value, error) {
	val, found := d.Get(path)
	if !found {
		return nil, fmt.Errorf("path not found: %s", path)
	}
	arr, ok := val.AsArray()
	if !ok {
		return nil, fmt.Errorf("value at path %s is %s, not array", path, val.Kind())
	}
	return arr, nil
}

// GetObject retrieves an object value at the path.
func (d *Document) GetObject(path string) (map[string]Value, error) {
	val, found := d.Get(path)
	if !found {
		return nil, fmt.Errorf("path not found: %s", path)
	}
	obj, ok := val.AsObject()
	if !ok {
		return nil, fmt.Errorf("value at path %s is %s, not object", path, val.Kind())
	}
	return obj, nil
}
