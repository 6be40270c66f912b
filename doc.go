// Package csvsift provides a CSV projection-and-filter engine.
//
// csvsift takes CSV text with a header row, a comma-separated list of
// columns to keep, and newline-separated comparison filters, and emits
// a new CSV containing only the selected columns, restricted to rows
// satisfying all filters:
//   - Column order in the output follows the selection, not the input
//   - Filters combine with AND semantics, including on the same column
//   - Comparisons are integer comparisons, never string comparisons
//   - Fields split on literal commas; quote characters match verbatim
//
// # Quick Start
//
// For simple one-off processing:
//
//	output, err := csvsift.Process(csv, "header1,header3", "header1>1")
//
// From a file:
//
//	output, err := csvsift.ProcessFile("data.csv", "header1", "")
//
// # Compiled Queries
//
// For applying the same selection and filters to many payloads:
//
//	q, err := csvsift.Compile("name,score", "score>=50\nscore<100")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, csv := range payloads {
//	    output, err := q.Apply(csv, nil)
//	    // ...
//	}
//
// # Filter Definitions
//
// Each non-empty line of the filter spec is one comparison: a column
// name, an operator, and a base-10 integer value. The recognized
// operators are !=, >=, <=, =, > and <; compound operators are matched
// before their single-character overlaps, so "score>=50" always means
// greater-or-equal. Every filter line must hold for a row to survive.
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [ErrNoHeaders]: input without a header line
//   - [HeaderError]: a selected or filtered column missing from the header
//   - [FilterError]: a filter line with no recognized operator
//   - [NumberError]: a non-integer cell or filter value
//   - [FileError]: an unreadable input file (wraps the cause)
//   - [InputError]: a missing required input
//
// # Thread Safety
//
// Compiled [Query] objects are safe for concurrent use.
// Each call to [Query.Apply] processes an independent payload.
package csvsift
