// Package search derives the visible user table from the fetched list and
// the text typed into the search box.
package search

import (
	"strings"

	"github.com/dmitrijs2005/weatherdesk/internal/client/models"
)

// Filter returns the users whose first or last name contains query,
// ignoring case, in source order.
//
// An empty query returns source itself. Any other query, including one made
// only of spaces, is matched literally. The source slice is never modified.
func Filter(source []models.User, query string) []models.User {
	if query == "" {
		return source
	}

	q := strings.ToLower(query)
	out := make([]models.User, 0, len(source))
	for _, u := range source {
		if matches(u, q) {
			out = append(out, u)
		}
	}
	return out
}

func matches(u models.User, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(u.FirstName), lowerQuery) ||
		strings.Contains(strings.ToLower(u.LastName), lowerQuery)
}
