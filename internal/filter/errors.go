package filter

import "fmt"

// SyntaxError represents a filter line containing none of the six
// comparison operators.
type SyntaxError struct {
	Line string // The offending line, verbatim
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid filter: %q", e.Line)
}

// NumberError represents a comparison operand that is not a base-10
// integer.
type NumberError struct {
	Value string // The offending operand text
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid number: %q", e.Value)
}
