package handlers

import "strings"

type Tab string

const (
	TabInfo       Tab = "info"
	TabRanks      Tab = "ranks"
	TabChallenges Tab = "challenges"
	TabDistance   Tab = "distance"
)

// Route is what the dashboard path segments ask for: a tab plus which
// modals are open.
type Route struct {
	Tab               Tab  `json:"tab"`
	ShowSubmit        bool `json:"show_submit"`
	ShowInstall       bool `json:"show_install"`
	ShowMileageSubmit bool `json:"show_mileage_submit"`
}

// ParseRoute reads segments in any order and ignores the ones it does not
// know. The last tab segment wins.
func ParseRoute(segments []string) Route {
	route := Route{Tab: TabInfo}
	for _, seg := range segments {
		switch seg {
		case "submit":
			route.ShowSubmit = true
		case "install":
			route.ShowInstall = true
		case "log-miles":
			route.ShowMileageSubmit = true
		case "ranks":
			route.Tab = TabRanks
		case "challenges":
			route.Tab = TabChallenges
		case "distance", "gwot":
			route.Tab = TabDistance
		}
	}
	return route
}

func splitSegments(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
