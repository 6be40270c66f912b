package filter

import "github.com/kolkov/csvsift/internal/table"

// Matches reports whether every predicate holds for row. An empty
// predicate list keeps the row. A column outside the header set or a
// non-integer operand aborts evaluation with an error rather than
// dropping the row.
func Matches(t *table.Table, row []string, preds []Predicate) (bool, error) {
	for _, p := range preds {
		cell, err := t.Lookup(row, p.Column)
		if err != nil {
			return false, err
		}
		keep, err := compare(cell, p.Op, p.Value)
		if err != nil || !keep {
			return false, err
		}
	}
	return true, nil
}

// compare evaluates one predicate against a cell value. The cell is
// parsed before the filter value, so the cell's text is the one
// reported when both are malformed.
func compare(cell string, op Op, value string) (bool, error) {
	a, err := parseInt(cell)
	if err != nil {
		return false, err
	}
	b, err := parseInt(value)
	if err != nil {
		return false, err
	}
	return op.eval(a, b), nil
}
