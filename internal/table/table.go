// Package table holds the in-memory CSV text model: a header line plus
// positional data rows, parsed and re-serialized with no dialect
// handling.
//
// Commas split fields unconditionally and quote characters have no
// special meaning, so a header such as `hea"der1` is matched verbatim.
// Lines are separated by "\n" with an optional trailing "\r"; empty
// lines carry no data and are skipped.
package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHeaders reports input with no parseable header line.
var ErrNoHeaders = errors.New("input has no headers")

// HeaderError represents a column name that is absent from the header
// set.
type HeaderError struct {
	Column string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("header %q not found", e.Column)
}

// Table is one parsed CSV payload.
type Table struct {
	Headers []string   // Header fields in input order
	Rows    [][]string // Data rows, fields keyed by header position

	index map[string]int // Header name to position, last duplicate wins
}

// Parse splits CSV text into a header and data rows. The first
// non-empty line is the header; every following non-empty line is one
// row. Returns ErrNoHeaders when no line qualifies as a header.
func Parse(text string) (*Table, error) {
	t := &Table{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if t.Headers == nil {
			t.Headers = fields
			continue
		}
		t.Rows = append(t.Rows, fields)
	}
	if t.Headers == nil {
		return nil, ErrNoHeaders
	}
	t.index = make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		t.index[h] = i
	}
	return t, nil
}

// Check verifies that a column name is present in the header set.
func (t *Table) Check(column string) error {
	if _, ok := t.index[column]; !ok {
		return &HeaderError{Column: column}
	}
	return nil
}

// Lookup resolves a column name to the row's value. A name outside the
// header set is a HeaderError; a row too short for the column's
// position reads the value as the empty string.
func (t *Table) Lookup(row []string, column string) (string, error) {
	pos, ok := t.index[column]
	if !ok {
		return "", &HeaderError{Column: column}
	}
	if pos >= len(row) {
		return "", nil
	}
	return row[pos], nil
}

// Project extracts the named columns from row, in the given order,
// failing on the first name outside the header set.
func (t *Table) Project(row []string, columns []string) ([]string, error) {
	fields := make([]string, len(columns))
	for i, col := range columns {
		v, err := t.Lookup(row, col)
		if err != nil {
			return nil, err
		}
		fields[i] = v
	}
	return fields, nil
}

// SelectHeaders resolves a selection spec against the header list. An
// empty spec selects every header in original order; otherwise the
// spec is split on commas and each token is trimmed, keeping the
// caller's order. Tokens are not deduplicated or validated here.
func SelectHeaders(spec string, headers []string) []string {
	if spec == "" {
		return headers
	}
	tokens := strings.Split(spec, ",")
	for i, tok := range tokens {
		tokens[i] = strings.TrimSpace(tok)
	}
	return tokens
}

// AppendRecord appends one CSV line to b: fields joined by commas and
// terminated by a newline, written literally with no quoting.
func AppendRecord(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f)
	}
	b.WriteByte('\n')
}
