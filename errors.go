package csvsift

import (
	"errors"
	"fmt"

	"github.com/kolkov/csvsift/internal/filter"
	"github.com/kolkov/csvsift/internal/table"
)

// ErrNoHeaders reports CSV input with no parseable header line.
var ErrNoHeaders = errors.New("input has no headers")

// InputError represents a required input that is missing, such as an
// empty file path. It is raised before any parsing begins.
type InputError struct {
	Message string // Error description
}

func (e *InputError) Error() string {
	return e.Message
}

// HeaderError represents a selected or filtered column name that is
// absent from the input's header set. It aborts the whole call, not
// just the offending row.
type HeaderError struct {
	Column string // The missing column name
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("header %q not found", e.Column)
}

// FilterError represents a filter-definition line containing none of
// the six comparison operators.
type FilterError struct {
	Line string // The offending line, verbatim
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid filter: %q", e.Line)
}

// NumberError represents a cell or filter value that is not a base-10
// integer. Filter comparisons are always numeric; a non-numeric operand
// is an error, not a predicate non-match.
type NumberError struct {
	Value string // The offending operand text
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid number: %q", e.Value)
}

// FileError represents a failure to read the file passed to
// ProcessFile. It is distinct from all CSV-content errors.
type FileError struct {
	Path string // The path that could not be read
	Err  error  // The underlying operating system error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *FileError) Unwrap() error {
	return e.Err
}

// publicError converts internal engine errors to their exported
// counterparts. Errors of unknown origin pass through unchanged.
func publicError(err error) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *table.HeaderError:
		return &HeaderError{Column: e.Column}
	case *filter.SyntaxError:
		return &FilterError{Line: e.Line}
	case *filter.NumberError:
		return &NumberError{Value: e.Value}
	}
	if errors.Is(err, table.ErrNoHeaders) {
		return ErrNoHeaders
	}
	return err
}
