package dates

import (
	"strings"
	"testing"
	"time"

	"datadiff/core/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var newDate = time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("05-07-2024")
	require.NoError(t, err)
	assert.Equal(t, newDate, d)

	for _, bad := range []string{"2024-07-05", "5-7-2024", "31-02-2024", ""} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, failure.ErrInvalidInput, bad)
	}
}

func TestRewriteCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"Dash", "01-01-2020", "05-07-2024", true},
		{"Slash", "due 31/12/1999 noon", "due 05/07/2024 noon", true},
		{"FirstOnly", "01-01-2020 to 02-02-2021", "05-07-2024 to 02-02-2021", true},
		{"NoDate", "hello", "hello", false},
		{"IsoIgnored", "2020-01-01", "2020-01-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := RewriteCell(tt.in, newDate)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewrite(t *testing.T) {
	t.Run("RewritesDataRows", func(t *testing.T) {
		in := "name,01-01-2000\nAda,10/10/2010\nBob,none\n"

		result, err := Rewrite("My Report.csv", strings.NewReader(in), newDate)
		require.NoError(t, err)

		assert.Equal(t, "name,01-01-2000\nAda,05/07/2024\nBob,none\n", string(result.Data))
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, "05-07-2024-My_Report.csv", result.Name)
	})

	t.Run("NothingToRewrite", func(t *testing.T) {
		result, err := Rewrite("book.csv", strings.NewReader("a\nb\n"), newDate)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Updated)
		assert.Equal(t, "book_updated.csv", result.Name)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := Rewrite("book.xlsx", strings.NewReader("a"), newDate)
		assert.ErrorIs(t, err, failure.ErrUnsupportedFileType)

		_, err = Rewrite("book.csv", strings.NewReader(""), newDate)
		assert.ErrorIs(t, err, failure.ErrEmptyInput)
	})
}
