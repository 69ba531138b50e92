package source

import "strings"

// ParseCSV splits sheet export text into rows of trimmed cells.
//
// Quoted fields are not supported: a comma inside a cell splits it. The
// sheets feeding this are plain name/activity/number columns, so the
// export never quotes anything we care about.
func ParseCSV(text string) [][]string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		cells := strings.Split(line, ",")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, cells)
	}
	return rows
}
