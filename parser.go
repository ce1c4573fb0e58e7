// File: adf/parser.go
package adf

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOptions controls how ADF text is interpreted.
type ParseOptions struct {
	// InferTypes enables scalar type inference (bool, then int64, then
	// float64, then string). When false every scalar stays a string.
	InferTypes bool

	// Strict is reserved. It is accepted and carried but does not change
	// the parse algorithm.
	Strict bool
}

// DefaultParseOptions returns the standard options: type inference on,
// strict off.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{InferTypes: true}
}

// Parser turns ADF text into a Document. A Parser is cheap to create and
// safe to reuse; each Parse call owns its own lexer and output document.
type Parser struct {
	opts ParseOptions
}

// NewParser creates a Parser with default options.
func NewParser() *Parser {
	return &Parser{opts: DefaultParseOptions()}
}

// NewParserWithOptions creates a Parser with the given options.
func NewParserWithOptions(opts ParseOptions) *Parser {
	return &Parser{opts: opts}
}

// WithTypeInference toggles scalar type inference.
func (p *Parser) WithTypeInference(on bool) *Parser {
	p.opts.InferTypes = on
	return p
}

// WithStrict toggles the reserved strict flag.
func (p *Parser) WithStrict(on bool) *Parser {
	p.opts.Strict = on
	return p
}

// Parse tokenizes and parses text into a populated Document. On error no
// document is returned; callers never observe a partially merged tree.
func (p *Parser) Parse(text string) (*Document, error) {
	tokens := newLexer().tokenize(text)

	doc := NewDocument()
	if err := p.parseTokens(tokens, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// parseTokens walks the token sequence once, splitting it into sections at
// header boundaries. Tokens before the first header form an implicit
// absolute section with the empty path.
func (p *Parser) parseTokens(tokens []token, doc *Document) error {
	sectionPath := ""
	sectionAbsolute := true
	sectionStart := 0

	for i, tok := range tokens {
		if tok.kind != tokenAbsoluteHeader && tok.kind != tokenRelativeHeader {
			continue
		}

		if i > sectionStart {
			if err := p.processSection(tokens[sectionStart:i], sectionPath, sectionAbsolute, doc); err != nil {
				return err
			}
		}

		sectionPath = tok.path
		sectionAbsolute = tok.isAbsolute
		sectionStart = i + 1
	}

	if sectionStart < len(tokens) {
		return p.processSection(tokens[sectionStart:], sectionPath, sectionAbsolute, doc)
	}
	return nil
}

// processSection classifies a section's shape and stores the resulting
// value. Blank lines are ignored for shape analysis but drive the
// object-array element splitting.
func (p *Parser) processSection(tokens []token, sectionPath string, isAbsolute bool, doc *Document) error {
	var content []token
	for _, tok := range tokens {
		if tok.kind != tokenBlankLine {
			content = append(content, tok)
		}
	}
	if len(content) == 0 {
		return nil
	}

	hasKeyValue := false
	for _, tok := range content {
		if tok.kind == tokenKeyValue || tok.kind == tokenMultilineStart {
			hasKeyValue = true
			break
		}
	}

	if !hasKeyValue {
		// Scalar array: every value-bearing line becomes one element
		values := make([]Value, 0, len(content))
		for _, tok := range content {
			values = append(values, p.inferType(tok.value))
		}
		if isAbsolute {
			return doc.Set(sectionPath, Array(values...))
		}
		return doc.AddRelativeSection(sectionPath, Array(values...))
	}

	if hasBlankLineSeparators(tokens) {
		objects, err := p.parseObjectArray(tokens)
		if err != nil {
			return err
		}
		if isAbsolute {
			return doc.Set(sectionPath, Array(objects...))
		}
		return doc.AddRelativeSection(sectionPath, Array(objects...))
	}

	obj, err := p.parseObject(tokens)
	if err != nil {
		return err
	}
	if !isAbsolute {
		return doc.AddRelativeSection(sectionPath, Object(obj))
	}

	// Repeated absolute headers at the same path merge their fields, so
	// each top-level key merges individually instead of replacing the
	// whole section.
	for key, value := range obj {
		fullPath := key
		if sectionPath != "" {
			fullPath = sectionPath + "." + key
		}
		if err := doc.MergeAtPath(fullPath, value); err != nil {
			return err
		}
	}
	return nil
}

// hasBlankLineSeparators reports whether a blank line sits strictly between
// two stretches of key-value content, which marks the section as an array
// of objects.
func hasBlankLineSeparators(tokens []token) bool {
	hasBlank := false
	hasContentAfterBlank := false
	foundContent := false

	for _, tok := range tokens {
		switch tok.kind {
		case tokenBlankLine:
			if foundContent {
				hasBlank = true
				foundContent = false
			}
		case tokenKeyValue, tokenMultilineStart:
			if hasBlank {
				hasContentAfterBlank = true
			}
			foundContent = true
		}
	}

	return hasBlank && hasContentAfterBlank
}

// parseObjectArray re-scans the section in order, flushing the current
// object on each blank line and once more at end of section.
func (p *Parser) parseObjectArray(tokens []token) ([]Value, error) {
	var objects []Value
	current := make(map[string]Value)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.kind {
		case tokenBlankLine:
			if len(current) > 0 {
				objects = append(objects, Object(current))
				current = make(map[string]Value)
			}
		case tokenKeyValue:
			current[tok.key] = p.inferType(tok.value)
		case tokenMultilineStart:
			value, next := collectMultiline(tokens, i)
			current[tok.key] = String(value)
			i = next
		}
	}

	if len(current) > 0 {
		objects = append(objects, Object(current))
	}
	return objects, nil
}

// parseObject accumulates the section's key-value pairs into one object.
// Dotted keys expand into nested objects within this object only.
func (p *Parser) parseObject(tokens []token) (map[string]Value, error) {
	obj := make(map[string]Value)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.kind {
		case tokenKeyValue:
			if err := setNestedKey(obj, tok.key, p.inferType(tok.value), tok.lineNumber, tok.rawLine); err != nil {
				return nil, err
			}
		case tokenMultilineStart:
			value, next := collectMultiline(tokens, i)
			if err := setNestedKey(obj, tok.key, String(value), tok.lineNumber, tok.rawLine); err != nil {
				return nil, err
			}
			i = next
		}
	}

	return obj, nil
}

// collectMultiline concatenates the start fragment, every content line, and
// the trimmed end fragment with newlines. It returns the joined text and
// the index of the closing token (or the last token if the block never
// closes, in which case the partial content is the value).
func collectMultiline(tokens []token, startIdx int) (string, int) {
	var parts []string
	if tokens[startIdx].value != "" {
		parts = append(parts, tokens[startIdx].value)
	}

	i := startIdx + 1
	for ; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.kind == tokenMultilineContent {
			parts = append(parts, tok.value)
			continue
		}
		if tok.kind == tokenMultilineEnd {
			if tok.value != "" {
				parts = append(parts, tok.value)
			}
			break
		}
	}
	if i == len(tokens) {
		i--
	}

	return strings.Join(parts, "\n"), i
}

// setNestedKey expands a dotted key into nested objects inside obj. A
// non-object value at an intermediate segment is a structural conflict.
func setNestedKey(obj map[string]Value, key string, value Value, line int, rawLine string) error {
	if !strings.Contains(key, ".") {
		obj[key] = value
		return nil
	}

	parts := strings.Split(key, ".")
	current := obj
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
			return &ParseError{
				Line:    line,
				Message: fmt.Sprintf("cannot set nested value: %q is not an object", part),
				Context: rawLine,
			}
		}
		current = inner
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// inferType converts a raw scalar string to a typed value. Precedence is
// boolean, then integer, then float, with case-insensitive booleans.
// Multiline-derived text never passes through here.
func (p *Parser) inferType(value string) Value {
	if !p.opts.InferTypes {
		return String(value)
	}

	switch strings.ToLower(value) {
	case "true":
		return Boolean(true)
	case "false":
		return Boolean(false)
	}

	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return Integer(i)
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return Float(f)
	}
	return String(value)
}

// Parse parses ADF text with default options.
func Parse(text string) (*Document, error) {
	return NewParser().Parse(text)
}

// ParseWithOptions parses ADF text with custom options.
func ParseWithOptions(text string, opts ParseOptions) (*Document, error) {
	return NewParserWithOptions(opts).Parse(text)
}
