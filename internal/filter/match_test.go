package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kolkov/csvsift/internal/table"
)

func mustParseTable(t *testing.T, text string) *table.Table {
	t.Helper()
	tb, err := table.Parse(text)
	require.NoError(t, err)
	return tb
}

func TestMatches(t *testing.T) {
	tb := mustParseTable(t, "id,score\n3,50\n")
	row := tb.Rows[0]

	tests := []struct {
		name    string
		filters string
		want    bool
	}{
		{"no predicates keeps the row", "", true},
		{"single match", "id>=3", true},
		{"single non-match", "id>3", false},
		{"all must hold", "id>=3\nscore>40", true},
		{"one failing predicate drops the row", "id>=3\nscore>60", false},
		{"same column conjunction", "score>40\nscore<60", true},
		{"same column contradiction", "score=50\nscore=51", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preds, err := Parse(tt.filters)
			require.NoError(t, err)

			got, err := Matches(tb, row, preds)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesMissingColumn(t *testing.T) {
	tb := mustParseTable(t, "id,score\n3,50\n")
	preds, err := Parse("missing>1")
	require.NoError(t, err)

	_, err = Matches(tb, tb.Rows[0], preds)
	var he *table.HeaderError
	require.ErrorAs(t, err, &he)
	require.Equal(t, "missing", he.Column)
}

func TestMatchesNonNumericCell(t *testing.T) {
	tb := mustParseTable(t, "id,name\n3,alice\n")
	preds, err := Parse("name>1")
	require.NoError(t, err)

	_, err = Matches(tb, tb.Rows[0], preds)
	var ne *NumberError
	require.ErrorAs(t, err, &ne)
	require.Equal(t, "alice", ne.Value)
}

func TestCompareReportsCellFirst(t *testing.T) {
	// When the cell and the filter value are both malformed, the cell
	// is the one named in the error.
	_, err := compare("x", Greater, "y")
	var ne *NumberError
	require.ErrorAs(t, err, &ne)
	require.Equal(t, "x", ne.Value)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"007", 7, true},
		{"-5", -5, true},
		{"+5", 5, true},
		{"9223372036854775807", 9223372036854775807, true},

		{"", 0, false},
		{" 1", 0, false},
		{"1 ", 0, false},
		{"1.5", 0, false},
		{"1e3", 0, false},
		{"0x1A", 0, false},
		{"abc", 0, false},
		{"--1", 0, false},
		{"+", 0, false},
		{"9223372036854775808", 0, false},  // overflows int64
		{"99999999999999999999", 0, false}, // passes the shape gate, fails conversion
	}

	for _, tt := range tests {
		n, err := parseInt(tt.in)
		if !tt.ok {
			var ne *NumberError
			require.ErrorAs(t, err, &ne, "parseInt(%q)", tt.in)
			require.Equal(t, tt.in, ne.Value)
			continue
		}
		require.NoError(t, err, "parseInt(%q)", tt.in)
		require.Equal(t, tt.want, n, "parseInt(%q)", tt.in)
	}
}
