package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		column string
		op     Op
		value  string
	}{
		{"a!=1", "a", NotEqual, "1"},
		{"a>=5", "a", GreaterEqual, "5"},
		{"a<=5", "a", LessEqual, "5"},
		{"a=5", "a", Equal, "5"},
		{"a>5", "a", Greater, "5"},
		{"a<5", "a", Less, "5"},

		// Both sides are trimmed
		{" header1 > 1 ", "header1", Greater, "1"},
		{"\ta\t<=\t2\t", "a", LessEqual, "2"},

		// Compound operators win over their single-character overlaps
		{"col>=5", "col", GreaterEqual, "5"},
		{"col<=5", "col", LessEqual, "5"},
		{"col!=5", "col", NotEqual, "5"},

		// Priority order beats position in the line
		{"a<b!=c", "a<b", NotEqual, "c"},
		{"a>b<=c", "a>b", LessEqual, "c"},

		// "=>" is not ">=": the "=" splits first
		{"x=>5", "x", Equal, ">5"},

		// Split happens at the first occurrence of the winning token
		{"a>1>2", "a", Greater, "1>2"},
		{"a==1", "a", Equal, "=1"},

		// Empty sides are the evaluator's concern, not the parser's
		{">=5", "", GreaterEqual, "5"},
		{"a=", "a", Equal, ""},

		// Quote characters are ordinary column text
		{`hea"der1>2`, `hea"der1`, Greater, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			p, err := parseLine(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.column, p.Column)
			require.Equal(t, tt.op, p.Op)
			require.Equal(t, tt.value, p.Value)
		})
	}
}

func TestParseLineNoOperator(t *testing.T) {
	for _, line := range []string{"header1#2", "plain text", "  ", "≥5"} {
		_, err := parseLine(line)
		var se *SyntaxError
		require.ErrorAs(t, err, &se, "line %q", line)
		require.Equal(t, line, se.Line)
		require.Contains(t, err.Error(), line)
	}
}

func TestParse(t *testing.T) {
	preds, err := Parse("a>1\n\nb<2\nc!=3\n")
	require.NoError(t, err)
	require.Equal(t, []Predicate{
		{Column: "a", Op: Greater, Value: "1"},
		{Column: "b", Op: Less, Value: "2"},
		{Column: "c", Op: NotEqual, Value: "3"},
	}, preds)
}

func TestParseEmpty(t *testing.T) {
	preds, err := Parse("")
	require.NoError(t, err)
	require.Empty(t, preds)

	preds, err = Parse("\n\n")
	require.NoError(t, err)
	require.Empty(t, preds)
}

func TestParseCRLF(t *testing.T) {
	preds, err := Parse("a>1\r\nb<2\r\n")
	require.NoError(t, err)
	require.Equal(t, []Predicate{
		{Column: "a", Op: Greater, Value: "1"},
		{Column: "b", Op: Less, Value: "2"},
	}, preds)
}

func TestParseStopsAtBadLine(t *testing.T) {
	_, err := Parse("a>1\nbad line\nb<2")
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "bad line", se.Line)
}

func TestParseKeepsDuplicateColumns(t *testing.T) {
	preds, err := Parse("a>1\na<9\na!=4")
	require.NoError(t, err)
	require.Len(t, preds, 3)
	for _, p := range preds {
		require.Equal(t, "a", p.Column)
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		text string
	}{
		{NotEqual, "!="},
		{GreaterEqual, ">="},
		{LessEqual, "<="},
		{Equal, "="},
		{Greater, ">"},
		{Less, "<"},
		{Invalid, "<invalid>"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.text, tt.op.String())
	}
}

func TestOpEval(t *testing.T) {
	tests := []struct {
		op   Op
		a, b int64
		want bool
	}{
		{Equal, 2, 2, true},
		{Equal, 1, 2, false},
		{NotEqual, 1, 2, true},
		{NotEqual, 2, 2, false},
		{Greater, 3, 2, true},
		{Greater, 2, 2, false},
		{GreaterEqual, 2, 2, true},
		{GreaterEqual, 1, 2, false},
		{Less, 1, 2, true},
		{Less, 2, 2, false},
		{LessEqual, 2, 2, true},
		{LessEqual, 3, 2, false},
		{Invalid, 1, 1, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.op.eval(tt.a, tt.b), "%d %s %d", tt.a, tt.op, tt.b)
	}
}
