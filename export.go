// File: adf/export.go
package adf

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// interfaceMap converts the root tree to plain Go maps and slices for the
// external encoders.
func (d *Document) interfaceMap() map[string]any {
	m, _ := Object(d.root).Interface().(map[string]any)
	return m
}

// ToJSON renders the root tree as indented JSON.
func (d *Document) ToJSON() (string, error) {
	data, err := json.MarshalIndent(d.interfaceMap(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal document to JSON: %w", err)
	}
	return string(data), nil
}

// ToTOML renders the root tree as TOML. TOML cannot represent every ADF
// shape; heterogeneous arrays or non-table top-level values fail.
func (d *Document) ToTOML() (string, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(d.interfaceMap()); err != nil {
		return "", fmt.Errorf("failed to marshal document to TOML: %w", err)
	}
	return buf.String(), nil
}

// ToYAML renders the root tree as YAML.
func (d *Document) ToYAML() (string, error) {
	data, err := yaml.Marshal(d.interfaceMap())
	if err != nil {
		return "", fmt.Errorf("failed to marshal document to YAML: %w", err)
	}
	return string(data), nil
}
