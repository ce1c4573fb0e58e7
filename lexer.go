// File: adf/lexer.go
package adf

import (
	"strings"
	"unicode"
)

// tokenKind classifies a single source line.
type tokenKind int

const (
	tokenBlankLine tokenKind = iota
	tokenAbsoluteHeader
	tokenRelativeHeader
	tokenKeyValue
	tokenScalarValue
	tokenMultilineStart
	tokenMultilineContent
	tokenMultilineEnd
)

// token is one lexical unit. Tokens are immutable once produced and live
// only for the duration of a parse call.
type token struct {
	kind       tokenKind
	lineNumber int
	rawLine    string

	// Header fields
	path       string
	isAbsolute bool

	// Key-value fields
	key        string
	value      string
	constraint string

	// Multiline delimiter length
	quoteCount int
}

// lexer tokenizes ADF text line by line. The only cross-line state is the
// open multiline block and the length of the quote run that opened it.
type lexer struct {
	inMultiline         bool
	multilineQuoteCount int
}

func newLexer() *lexer {
	return &lexer{}
}

// tokenize converts the whole text into a flat token sequence, one token
// per line. Line numbers are 1-based. An unterminated multiline block is
// not an error; the lexer simply runs out of lines while still inside it.
func (lx *lexer) tokenize(text string) []token {
	lines := splitLines(text)
	tokens := make([]token, 0, len(lines))
	for i, line := range lines {
		tokens = append(tokens, lx.tokenizeLine(line, i+1))
	}
	return tokens
}

func (lx *lexer) tokenizeLine(line string, lineNumber int) token {
	// Multiline continuation takes priority over everything else
	if lx.inMultiline {
		return lx.continueMultiline(line, lineNumber)
	}

	if strings.TrimSpace(line) == "" {
		return token{kind: tokenBlankLine, lineNumber: lineNumber, rawLine: line}
	}

	if tok, ok := lx.tryParseHeader(line, lineNumber); ok {
		return tok
	}

	if strings.Contains(line, "=") {
		return lx.parseKeyValue(line, lineNumber)
	}

	// Bare keyless line, one element of a scalar array
	return token{
		kind:       tokenScalarValue,
		lineNumber: lineNumber,
		rawLine:    line,
		value:      strings.TrimSpace(line),
	}
}

// tryParseHeader attempts to read the line as a section header. A header is
// a trimmed line ending in ':' whose remainder, after an optional leading
// '#', is a valid dot path. '#:' alone is the absolute root section.
// Anything else is not a header and falls through to key-value or scalar
// handling.
func (lx *lexer) tryParseHeader(line string, lineNumber int) (token, bool) {
	stripped := strings.TrimSpace(line)
	if !strings.HasSuffix(stripped, ":") {
		return token{}, false
	}

	pathPart := strings.TrimSpace(stripped[:len(stripped)-1])
	isAbsolute := strings.HasPrefix(pathPart, "#")
	if isAbsolute {
		pathPart = strings.TrimSpace(pathPart[1:])
	}

	if pathPart == "" {
		if !isAbsolute {
			// A bare ':' line is not a header
			return token{}, false
		}
		return token{
			kind:       tokenAbsoluteHeader,
			lineNumber: lineNumber,
			rawLine:    line,
			path:       "",
			isAbsolute: true,
		}, true
	}

	if !isValidHeaderPath(pathPart) {
		return token{}, false
	}

	kind := tokenRelativeHeader
	if isAbsolute {
		kind = tokenAbsoluteHeader
	}
	return token{
		kind:       kind,
		lineNumber: lineNumber,
		rawLine:    line,
		path:       pathPart,
		isAbsolute: isAbsolute,
	}, true
}

// parseKeyValue splits at the first '=' and classifies the value region:
// a bare scalar with optional trailing constraint, a quoted literal that
// closes on the same line, or the start of a multiline block.
func (lx *lexer) parseKeyValue(line string, lineNumber int) token {
	equalsPos := strings.Index(line, "=")
	key := strings.TrimSpace(line[:equalsPos])
	rawValue := strings.TrimLeft(line[equalsPos+1:], " \t")

	quoteCount := countLeadingQuotes(rawValue)
	if quoteCount > 0 {
		// The literal closes on this line only if the whole raw value is
		// long enough to hold both runs and ends with a run of exactly the
		// opening length.
		if len(rawValue) > quoteCount*2 && endsWithQuoteRun(rawValue, quoteCount) {
			return token{
				kind:       tokenKeyValue,
				lineNumber: lineNumber,
				rawLine:    line,
				key:        key,
				value:      rawValue[quoteCount : len(rawValue)-quoteCount],
			}
		}

		lx.inMultiline = true
		lx.multilineQuoteCount = quoteCount
		return token{
			kind:       tokenMultilineStart,
			lineNumber: lineNumber,
			rawLine:    line,
			key:        key,
			value:      rawValue[quoteCount:],
			quoteCount: quoteCount,
		}
	}

	value, constraint := parseValueAndConstraint(rawValue)
	return token{
		kind:       tokenKeyValue,
		lineNumber: lineNumber,
		rawLine:    line,
		key:        key,
		value:      value,
		constraint: constraint,
	}
}

// continueMultiline handles a line inside an open multiline block. The
// block closes only on a trailing run of exactly the opening quote length,
// checked against the raw line before any trimming.
func (lx *lexer) continueMultiline(line string, lineNumber int) token {
	if endsWithQuoteRun(line, lx.multilineQuoteCount) {
		lx.inMultiline = false
		content := strings.TrimRight(line[:len(line)-lx.multilineQuoteCount], " \t")
		return token{
			kind:       tokenMultilineEnd,
			lineNumber: lineNumber,
			rawLine:    line,
			value:      content,
		}
	}
	return token{
		kind:       tokenMultilineContent,
		lineNumber: lineNumber,
		rawLine:    line,
		value:      line,
	}
}

// isValidHeaderPath accepts dot-separated paths whose segments are either
// alphanumeric/underscore identifiers or fully double-quoted keys. Dots
// inside quoted segments do not split.
func isValidHeaderPath(path string) bool {
	for _, part := range splitHeaderSegments(path) {
		if len(part) > 2 && strings.HasPrefix(part, `"`) && strings.HasSuffix(part, `"`) {
			continue
		}
		if !isIdentifier(part) {
			return false
		}
	}
	return true
}

// splitHeaderSegments splits a header path on unquoted dots, keeping the
// quotes and any empty segments so validation can reject them.
func splitHeaderSegments(path string) []string {
	var parts []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range path {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			current.WriteRune(ch)
		case ch == '.' && !inQuotes:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	return append(parts, current.String())
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func countLeadingQuotes(s string) int {
	count := 0
	for _, r := range s {
		if r != '"' {
			break
		}
		count++
	}
	return count
}

// endsWithQuoteRun reports whether s ends with a run of exactly count quote
// characters. A longer or shorter trailing run does not match.
func endsWithQuoteRun(s string, count int) bool {
	if count <= 0 || len(s) < count {
		return false
	}
	for i := len(s) - count; i < len(s); i++ {
		if s[i] != '"' {
			return false
		}
	}
	if len(s) > count && s[len(s)-count-1] == '"' {
		return false
	}
	return true
}

// parseValueAndConstraint separates a bare value from a trailing
// parenthesized constraint annotation, if one is present.
func parseValueAndConstraint(s string) (string, string) {
	constraint := parseConstraint(s)
	if constraint != "" {
		if parenPos := strings.LastIndex(s, "("); parenPos >= 0 {
			return strings.TrimRight(s[:parenPos], " \t"), constraint
		}
	}
	return strings.TrimSpace(s), ""
}

// parseConstraint recognizes a trailing '(...)' annotation by the last '('
// and last ')' with non-whitespace content between them. The content is
// kept verbatim; constraint semantics are not interpreted here.
func parseConstraint(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	openParen := strings.LastIndex(trimmed, "(")
	closeParen := strings.LastIndex(trimmed, ")")
	if openParen == -1 || closeParen == -1 || closeParen < openParen {
		return ""
	}

	return strings.TrimSpace(trimmed[openParen+1 : closeParen])
}

// splitLines splits text into lines without the terminators, treating a
// trailing newline as ending the last line rather than opening an empty one.
// Both LF and CRLF endings are handled.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
