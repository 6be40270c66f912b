package filter

import (
	"strconv"

	"github.com/coregx/coregex"
)

// intPattern gates operands before conversion so that any failure is
// reported with the operand text. ParseInt still rejects literals that
// pass the shape check but overflow int64.
var intPattern = mustCompile(`^[+-]?[0-9]+$`)

// mustCompile creates a Regexp, panicking on error.
func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// parseInt converts a base-10 integer literal to int64. Any failure is
// a NumberError carrying the original text.
func parseInt(s string) (int64, error) {
	if !intPattern.MatchString(s) {
		return 0, &NumberError{Value: s}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &NumberError{Value: s}
	}
	return n, nil
}
