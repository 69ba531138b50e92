package models

import (
	"math"
	"regexp"
	"strconv"
)

// Sheet exports always carry a single header row; column names are never read.
const headerRows = 1

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

func dataRows(rows [][]string) [][]string {
	if len(rows) <= headerRows {
		return nil
	}
	return rows[headerRows:]
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parsePoints reads the leading integer of s, so "20 pts" is 20.
// Anything unreadable or negative is 0.
func parsePoints(s string) int {
	n, err := strconv.Atoi(leadingInt.FindString(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseDistance reads the leading decimal of s, so "3.1mi" is 3.1.
func parseDistance(s string) float64 {
	f, err := strconv.ParseFloat(leadingFloat.FindString(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
