package csvsift

import (
	"io"
	"strings"

	"github.com/kolkov/csvsift/internal/filter"
	"github.com/kolkov/csvsift/internal/table"
)

// Query represents a compiled column selection and filter set ready to
// apply to CSV payloads. It is immutable after compilation and safe for
// concurrent use; each call to Apply works on its own payload.
type Query struct {
	columns    string // Selection spec as given by the caller
	predicates []filter.Predicate
}

// Apply runs the query against one CSV payload and returns the
// resulting CSV text.
//
// If config is nil, default configuration is used.
// If config.Output is set, the result is written there and the
// returned string will be empty.
func (q *Query) Apply(csvText string, config *Config) (string, error) {
	t, err := table.Parse(csvText)
	if err != nil {
		return "", publicError(err)
	}
	return q.run(t, config)
}

// run drives the query: check columns, filter each row, project the
// survivors, and serialize. Selection defaulting happens here because
// it depends on the payload's header.
func (q *Query) run(t *table.Table, config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}

	selected := table.SelectHeaders(q.columns, t.Headers)

	// Every column is checked against the header set before the row
	// loop, so a missing column is reported even when no data row would
	// reach it. Predicate columns come first, matching the row loop's
	// filter-then-project order.
	for _, p := range q.predicates {
		if err := t.Check(p.Column); err != nil {
			return "", publicError(err)
		}
	}
	for _, col := range selected {
		if err := t.Check(col); err != nil {
			return "", publicError(err)
		}
	}

	var b strings.Builder
	table.AppendRecord(&b, selected)
	for _, row := range t.Rows {
		keep, err := filter.Matches(t, row, q.predicates)
		if err != nil {
			return "", publicError(err)
		}
		if !keep {
			continue
		}
		fields, err := t.Project(row, selected)
		if err != nil {
			return "", publicError(err)
		}
		table.AppendRecord(&b, fields)
	}

	if config.Output != nil {
		_, err := io.WriteString(config.Output, b.String())
		return "", err
	}
	return b.String(), nil
}

// String returns a compact description of the compiled query, such as
// `select(header1,header3) where(header1>1)`.
func (q *Query) String() string {
	var b strings.Builder
	b.WriteString("select(")
	if q.columns == "" {
		b.WriteByte('*')
	} else {
		b.WriteString(q.columns)
	}
	b.WriteByte(')')
	for _, p := range q.predicates {
		b.WriteString(" where(")
		b.WriteString(p.Column)
		b.WriteString(p.Op.String())
		b.WriteString(p.Value)
		b.WriteByte(')')
	}
	return b.String()
}
