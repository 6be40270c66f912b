package csvsift

import (
	"io"
	"os"

	"github.com/kolkov/csvsift/internal/filter"
	"github.com/kolkov/csvsift/internal/table"
)

// Version is the csvsift version string.
const Version = "0.1.0"

// Process applies a column selection and row filters to CSV text held
// in memory and returns the resulting CSV text.
// This is a convenience function for one-off processing.
// For applying the same selection and filters to many payloads, use
// Compile followed by Query.Apply.
//
// Parameters:
//   - csvText: CSV input whose first non-empty line is the header
//   - selectedColumns: comma-separated column names, kept in the given
//     order (empty selects every column in original header order)
//   - rowFilters: newline-separated filter definitions such as
//     "header1>1" (empty keeps every row)
//
// Returns the projected and filtered CSV text, or an error if parsing
// or evaluation fails.
//
// Example:
//
//	output, err := csvsift.Process("h1,h2\n1,2\n", "h2", "h1=1")
//	// output: "h2\n2\n"
func Process(csvText, selectedColumns, rowFilters string) (string, error) {
	// The payload is parsed before the filter spec, so a headerless
	// input is reported even when the filters are also malformed.
	t, err := table.Parse(csvText)
	if err != nil {
		return "", publicError(err)
	}
	q, err := Compile(selectedColumns, rowFilters)
	if err != nil {
		return "", err
	}
	return q.run(t, nil)
}

// ProcessFile reads the file at path fully into memory and behaves as
// Process. An empty path is an *InputError; an unreadable path is a
// *FileError wrapping the underlying error, distinct from all
// CSV-content errors.
func ProcessFile(path, selectedColumns, rowFilters string) (string, error) {
	if path == "" {
		return "", &InputError{Message: "missing file path"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	return Process(string(data), selectedColumns, rowFilters)
}

// Compile parses the selection spec and filter spec into a Query.
// The returned Query can be applied to any number of CSV payloads.
//
// Example:
//
//	q, err := csvsift.Compile("name,score", "score>=50")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out1, _ := q.Apply(csv1, nil)
//	out2, _ := q.Apply(csv2, nil)
func Compile(selectedColumns, rowFilters string) (*Query, error) {
	preds, err := filter.Parse(rowFilters)
	if err != nil {
		return nil, publicError(err)
	}
	return &Query{columns: selectedColumns, predicates: preds}, nil
}

// Exec is a simplified interface for one-off processing. It writes the
// resulting CSV text to output and returns any error.
//
// Example:
//
//	err := csvsift.Exec(csv, "header1,header3", "header1>1", os.Stdout)
func Exec(csvText, selectedColumns, rowFilters string, output io.Writer) error {
	t, err := table.Parse(csvText)
	if err != nil {
		return publicError(err)
	}
	q, err := Compile(selectedColumns, rowFilters)
	if err != nil {
		return err
	}
	_, err = q.run(t, &Config{Output: output})
	return err
}

// MustCompile is like Compile but panics if the specs cannot be parsed.
// It simplifies initialization of global query variables.
//
// Example:
//
//	var adults = csvsift.MustCompile("name,age", "age>=18")
func MustCompile(selectedColumns, rowFilters string) *Query {
	q, err := Compile(selectedColumns, rowFilters)
	if err != nil {
		panic(err)
	}
	return q
}
