package scoring

import (
	"regexp"
	"strings"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a participant name into its profile path segment.
func Slug(name string) string {
	s := nonSlugRun.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// ResolveSlug finds the leaderboard name whose slug matches. When two names
// share a slug the higher ranked one wins.
func ResolveSlug(slug string, board []LeaderboardEntry) (string, bool) {
	for _, e := range board {
		if Slug(e.Name) == slug {
			return e.Name, true
		}
	}
	return "", false
}
