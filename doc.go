// File: adf/doc.go

// Package adf parses the Augmentable Data Format (ADF), a small
// human-writable configuration language built from section headers,
// key/value pairs, quoted multiline blocks, constraint annotations, and
// implicit arrays.
//
// Features:
//   - Absolute sections ('# path:') merge additively into one canonical tree
//   - Relative sections ('path:') accumulate separately, last write wins
//   - Section shape inference: scalar array, object array, or plain object,
//     decided purely by blank-line placement
//   - Scalar type inference (bool, int64, float64, string), configurable
//   - Dot-path access with double-quoted segments protecting inner dots
//   - Struct decoding via mapstructure, exports to JSON, TOML, and YAML
//
// Quick Start:
//
//	doc, err := adf.Parse(`
//	# person:
//	name = Matthew
//	age = 54
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	name, _ := doc.GetString("person.name")
//	age, _ := doc.GetInt("person.age")
//
// Section shapes. Only bare lines make a scalar array:
//
//	# hobbies:
//	reading
//	physics
//
// Blank-separated key/value runs make an object array:
//
//	# users:
//
//	name = Alice
//
//	name = Bob
//
// A contiguous run of key/value lines makes a plain object:
//
//	# server:
//	host = localhost
//	port = 8080
//
// Parsing is synchronous and single-pass; each call owns its document
// exclusively, and the first error aborts the parse with no partial
// result.
package adf
