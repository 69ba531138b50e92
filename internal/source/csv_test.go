package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSV(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected [][]string
	}{
		{
			name:     "Empty input yields no rows",
			text:     "",
			expected: nil,
		},
		{
			name:     "Whitespace only yields no rows",
			text:     " \n\n ",
			expected: nil,
		},
		{
			name:     "Cells are trimmed",
			text:     "h1, h2\n Alice ,5 \n",
			expected: [][]string{{"h1", "h2"}, {"Alice", "5"}},
		},
		{
			name:     "CRLF line endings",
			text:     "a,b\r\nc,d\r\n",
			expected: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:     "Quoted commas still split",
			text:     "name,notes\nAlice,\"one, two\"",
			expected: [][]string{{"name", "notes"}, {"Alice", "\"one", "two\""}},
		},
		{
			name:     "Blank line in the middle is one empty cell",
			text:     "a\n\nb",
			expected: [][]string{{"a"}, {""}, {"b"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows := ParseCSV(tc.text)
			assert.Equal(t, tc.expected, rows)
			assert.Equal(t, rows, ParseCSV(tc.text))
		})
	}
}

func TestLinks(t *testing.T) {
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc/edit?gid=42#gid=42&range=7:7",
		RowURL("abc", "42", 7),
	)
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc/edit?usp=sharing",
		EditURL("abc"),
	)
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc/export?format=csv&gid=42",
		CSVExportURL("abc", "42"),
	)
}

func TestValuesToRows(t *testing.T) {
	rows := valuesToRows([][]interface{}{
		{"Name", "Points"},
		{" Alice ", 20},
		{},
	})
	assert.Equal(t, [][]string{{"Name", "Points"}, {"Alice", "20"}, {}}, rows)
	assert.Nil(t, valuesToRows(nil))
}
