// File: adf/decode.go
package adf

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the document subtree at basePath into the target struct or
// map pointer. Field mapping uses the "adf" struct tag, falling back to
// field names. Weak typing applies, so string scalars convert to the
// target's numeric, boolean, duration, and slice types where possible.
func (d *Document) Scan(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	section, found := d.Get(basePath)
	if !found {
		return fmt.Errorf("path not found: %s", basePath)
	}

	sectionMap, ok := section.Interface().(map[string]any)
	if !ok {
		return fmt.Errorf("path %q refers to non-object value (%s)", basePath, section.Kind())
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "adf",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("decode failed for path %q: %w", basePath, err)
	}
	return nil
}

// ScanRelative is Scan over the relative-section tree instead of the root.
func (d *Document) ScanRelative(basePath string, target any) error {
	rel := &Document{root: d.relativeSections, relativeSections: map[string]Value{}}
	return rel.Scan(basePath, target)
}
