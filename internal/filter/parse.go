package filter

import "strings"

// Parse turns a newline-separated filter spec into predicates. Empty
// lines are skipped. Line order is preserved and the same column may
// appear in any number of predicates; all of them must hold for a row
// to survive.
func Parse(spec string) ([]Predicate, error) {
	var preds []Predicate
	for _, line := range strings.Split(spec, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// parseLine scans a line for the first operator token in priority
// order and splits at that token's first occurrence. Both sides are
// trimmed of surrounding whitespace.
func parseLine(line string) (Predicate, error) {
	for _, e := range scanOrder {
		i := strings.Index(line, e.tok)
		if i < 0 {
			continue
		}
		return Predicate{
			Column: strings.TrimSpace(line[:i]),
			Op:     e.op,
			Value:  strings.TrimSpace(line[i+len(e.tok):]),
		}, nil
	}
	return Predicate{}, &SyntaxError{Line: line}
}
