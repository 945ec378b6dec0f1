package domain

import (
	"sort"
	"strings"
)

// NormalizeKeyword lower-cases and trims a search keyword for logging, so
// that " Thriller " and "thriller" collide inside the dedup window.
func NormalizeKeyword(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CleanGenres trims every genre and drops blank entries, preserving order.
// Both the query path and the logging path run genre lists through this.
func CleanGenres(genres []string) []string {
	clean := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		clean = append(clean, g)
	}
	return clean
}

// SortedGenres cleans a genre list and sorts it lexicographically. Casing is
// preserved: unlike keywords, genre names are not lower-cased before
// comparison.
func SortedGenres(genres []string) []string {
	clean := CleanGenres(genres)
	sort.Strings(clean)
	return clean
}
