// Package filter implements the row-filter mini-language: one
// comparison per line, written as a column name, one of six operators,
// and an integer value, such as "header1>=5".
package filter

// Op identifies one of the six comparison operators.
type Op uint8

const (
	Invalid Op = iota // <invalid>
	NotEqual          // !=
	GreaterEqual      // >=
	LessEqual         // <=
	Equal             // =
	Greater           // >
	Less              // <
)

// scanOrder lists the operator tokens in detection priority order.
// Compound tokens come before the single-character tokens they overlap
// with, so "col>=5" is never read as ">" with a dangling "=5".
var scanOrder = [...]struct {
	tok string
	op  Op
}{
	{"!=", NotEqual},
	{">=", GreaterEqual},
	{"<=", LessEqual},
	{"=", Equal},
	{">", Greater},
	{"<", Less},
}

// String returns the operator's token text.
func (op Op) String() string {
	switch op {
	case NotEqual:
		return "!="
	case GreaterEqual:
		return ">="
	case LessEqual:
		return "<="
	case Equal:
		return "="
	case Greater:
		return ">"
	case Less:
		return "<"
	}
	return "<invalid>"
}

// eval applies the operator to two integers.
func (op Op) eval(a, b int64) bool {
	switch op {
	case NotEqual:
		return a != b
	case GreaterEqual:
		return a >= b
	case LessEqual:
		return a <= b
	case Equal:
		return a == b
	case Greater:
		return a > b
	case Less:
		return a < b
	}
	return false
}

// Predicate is one parsed filter: a column name, an operator, and the
// comparison value exactly as written on the filter line.
//
// Value stays a string until evaluation so that a missing column is
// reported before a malformed number on the same line.
type Predicate struct {
	Column string
	Op     Op
	Value  string
}
