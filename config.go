package csvsift

import "io"

// Config holds optional settings for applying a query.
// A nil *Config is equivalent to the zero value.
type Config struct {
	// Output is the writer for the resulting CSV text.
	// If nil, the result is captured and returned from Apply.
	Output io.Writer
}
