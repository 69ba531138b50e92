package models

// Submission is one completed challenge from the form responses tab.
type Submission struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Challenge string `json:"challenge"`
	Notes     string `json:"notes"`
	// Row is the 1-based sheet row including the header, used for deep links.
	Row int `json:"row"`
}

// SubmissionsFromRows maps timestamp, name, challenge, notes columns.
// Rows without a name are dropped; Row still counts them.
func SubmissionsFromRows(rows [][]string) []Submission {
	data := dataRows(rows)
	submissions := make([]Submission, 0, len(data))
	for i, row := range data {
		sub := Submission{
			Timestamp: cell(row, 0),
			Name:      cell(row, 1),
			Challenge: cell(row, 2),
			Notes:     cell(row, 3),
			Row:       i + headerRows + 1,
		}
		if sub.Name == "" {
			continue
		}
		submissions = append(submissions, sub)
	}
	return submissions
}
