package models

const (
	ActivityWalk = "Walk"
	ActivityRuck = "Ruck"
	ActivityRun  = "Run"
)

// MileageEntry is one logged distance. Activity keeps the sheet's casing.
type MileageEntry struct {
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Activity string  `json:"activity"`
	Distance float64 `json:"distance"`
	Notes    string  `json:"notes"`
}

// MileageFromRows maps timestamp, name, date, activity, distance, notes
// columns. The form timestamp is not kept. Rows without a name or with a
// distance that is not positive are dropped.
func MileageFromRows(rows [][]string) []MileageEntry {
	data := dataRows(rows)
	entries := make([]MileageEntry, 0, len(data))
	for _, row := range data {
		entry := MileageEntry{
			Name:     cell(row, 1),
			Date:     cell(row, 2),
			Activity: cell(row, 3),
			Distance: parseDistance(cell(row, 4)),
			Notes:    cell(row, 5),
		}
		if entry.Name == "" || entry.Distance <= 0 {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
