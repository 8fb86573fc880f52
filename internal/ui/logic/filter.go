package logic

import (
	"net/url"
	"strings"

	"linkdeck/internal/domain"
)

// SearchFilter matches links against search queries
type SearchFilter struct{}

// NewSearchFilter creates a new search filter
func NewSearchFilter() *SearchFilter {
	return &SearchFilter{}
}

// MatchesFilter checks if a link matches the given filter query.
// A query may be narrowed to one field with a title:, url: or host: prefix.
func (sf *SearchFilter) MatchesFilter(link domain.Link, filterQuery string) bool {
	if filterQuery == "" {
		return true
	}

	query := strings.ToLower(filterQuery)

	field, value, ok := strings.Cut(query, ":")
	if ok {
		switch field {
		case "title":
			return strings.Contains(strings.ToLower(link.Title), value)
		case "url":
			return strings.Contains(strings.ToLower(link.URL), value)
		case "host":
			return sf.MatchesHost(link, value)
		}
	}

	// Regular filter - check title and URL
	return strings.Contains(strings.ToLower(link.Title), query) ||
		strings.Contains(strings.ToLower(link.URL), query)
}

// MatchesHost checks if the host of a link contains host
func (sf *SearchFilter) MatchesHost(link domain.Link, host string) bool {
	u, err := url.Parse(link.URL)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.Contains(strings.ToLower(u.Hostname()), host)
}

// FilterIndices returns the indices of links matching the query, in deck order
func (sf *SearchFilter) FilterIndices(links []domain.Link, filterQuery string) []int {
	var matches []int
	for i, link := range links {
		if sf.MatchesFilter(link, filterQuery) {
			matches = append(matches, i)
		}
	}
	return matches
}
