package source

import "fmt"

const spreadsheetBaseURL = "https://docs.google.com/spreadsheets/d/"

// EditURL is where visitors land when they ask for the spreadsheet itself.
func EditURL(spreadsheetID string) string {
	return fmt.Sprintf("%s%s/edit?usp=sharing", spreadsheetBaseURL, spreadsheetID)
}

// RowURL opens the sheet tab gid with row selected. Row is the 1-based sheet
// row, header included.
func RowURL(spreadsheetID, gid string, row int) string {
	return fmt.Sprintf("%s%s/edit?gid=%s#gid=%s&range=%d:%d", spreadsheetBaseURL, spreadsheetID, gid, gid, row, row)
}

// CSVExportURL is the public export link for one tab.
func CSVExportURL(spreadsheetID, gid string) string {
	return fmt.Sprintf("%s%s/export?format=csv&gid=%s", spreadsheetBaseURL, spreadsheetID, gid)
}
