// File: adf/document.go
package adf

import "fmt"

// Document is the result of a parse: a canonical root tree populated by
// absolute sections, and a separate tree holding relative sections. The two
// trees are disjoint; relative content is never merged into the root.
type Document struct {
	root             map[string]Value
	relativeSections map[string]Value
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		root:             make(map[string]Value),
		relativeSections: make(map[string]Value),
	}
}

// Get retrieves the value at a dot-notation path. Double-quoted segments
// protect dots, so `servers."eu.west".host` addresses three levels. An
// empty path returns the whole root as an object. The boolean is false if
// any segment is missing or an intermediate value is not an object.
func (d *Document) Get(path string) (Value, bool) {
	if path == "" {
		return Object(d.root), true
	}

	current := Object(d.root)
	for _, part := range parsePath(path) {
		obj := current.objectRef()
		if obj == nil {
			return Value{}, false
		}
		next, exists := obj[part]
		if !exists {
			return Value{}, false
		}
		current = next
	}
	return current, true
}

// Set stores a value at a dot-notation path, creating intermediate objects
// as needed. It fails with a ValidationError rather than silently
// overwriting a non-object intermediate with nested content. An empty path
// replaces the entire root when the value is an object.
func (d *Document) Set(path string, value Value) error {
	if path == "" {
		if obj := value.objectRef(); obj != nil {
			d.root = obj
		}
		return nil
	}
	return setAtPath(d.root, path, value)
}

// Merge deep-merges another document's root into this one. Relative
// sections are not merged.
func (d *Document) Merge(other *Document) {
	d.root = deepMergeObjects(d.root, other.root)
}

// MergeAtPath deep-merges value into the existing value at path when both
// are objects; otherwise it behaves exactly like Set.
func (d *Document) MergeAtPath(path string, value Value) error {
	if existing, found := d.Get(path); found {
		existingObj := existing.objectRef()
		newObj := value.objectRef()
		if existingObj != nil && newObj != nil {
			return d.Set(path, Object(deepMergeObjects(existingObj, newObj)))
		}
	}
	return d.Set(path, value)
}

// AddRelativeSection inserts a value into the relative-section tree. The
// insertion is a direct assignment, so a later section at the same path
// overwrites the earlier one instead of merging with it.
func (d *Document) AddRelativeSection(path string, value Value) error {
	if path == "" {
		if obj := value.objectRef(); obj != nil {
			d.relativeSections = obj
		}
		return nil
	}
	return setAtPath(d.relativeSections, path, value)
}

// RelativeSections returns the relative-section tree. The map is shared
// with the document, not copied.
func (d *Document) RelativeSections() map[string]Value {
	return d.relativeSections
}

// AsMap returns the root mapping. The map is shared with the document.
func (d *Document) AsMap() map[string]Value {
	return d.root
}

// IntoMap returns the root mapping and detaches it from the document,
// which is left empty.
func (d *Document) IntoMap() map[string]Value {
	root := d.root
	d.root = make(map[string]Value)
	d.relativeSections = make(map[string]Value)
	return root
}

// setAtPath walks root along the parsed path, creating intermediate object
// nodes, and assigns the final segment. A non-object at an intermediate
// segment is a structural conflict.
func setAtPath(root map[string]Value, path string, value Value) error {
	parts := parsePath(path)
	if len(parts) == 0 {
		return nil
	}
	current := root

	for _, part := range parts[:len(parts)-1] {
		existing, exists := current[part]
		if !exists {
			child := Object(nil)
			current[part] = child
			current = child.objectRef()
			continue
		}
		inner := existing.objectRef()
		if inner == nil {
			return &ValidationError{
				Path:    path,
				Message: fmt.Sprintf("cannot set nested value: %q is not an object", part),
			}
		}
		current = inner
	}

	current[parts[len(parts)-1]] = value
	return nil
}
