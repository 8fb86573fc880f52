package search

import (
	"log"
	"strings"

	"linkdeck/internal/domain"
	"linkdeck/internal/ui/logic"
	"linkdeck/internal/ui/services/events"
)

// Service finds links by title or URL and steps through the matches
type Service struct {
	state      *State
	bus        events.EventBus
	matcherFn  func(string) []int // Function to find matches
	navigateFn func(int) bool     // Function to navigate to index
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetMatcherFunction sets the function to find matches
func (s *Service) SetMatcherFunction(fn func(string) []int) {
	s.matcherFn = fn
}

// SetNavigateFunction sets the function to navigate to an index
func (s *Service) SetNavigateFunction(fn func(int) bool) {
	s.navigateFn = fn
}

// StartSearch runs query and moves to the first match at or after from,
// wrapping to the first match overall. It returns the number of matches.
func (s *Service) StartSearch(query string, from int) int {
	query = strings.TrimSpace(query)
	if query == "" {
		s.ClearSearch()
		return 0
	}

	s.state.Query = query
	s.state.Matches = nil
	s.state.CurrentMatch = 0
	if s.matcherFn != nil {
		s.state.Matches = s.matcherFn(query)
	}

	for i, idx := range s.state.Matches {
		if idx >= from {
			s.state.CurrentMatch = i
			break
		}
	}

	log.Printf("Search completed for '%s': found %d matches", query, len(s.state.Matches))

	firstMatch := -1
	if len(s.state.Matches) > 0 {
		firstMatch = s.state.Matches[0]
		s.navigateToCurrentMatch()
	}

	s.bus.Publish(SearchCompletedEvent{
		Query:      query,
		MatchCount: len(s.state.Matches),
		FirstMatch: firstMatch,
	})
	return len(s.state.Matches)
}

// ClearSearch clears the current search
func (s *Service) ClearSearch() {
	s.state.Query = ""
	s.state.Matches = nil
	s.state.CurrentMatch = 0

	s.bus.Publish(SearchClearedEvent{})
}

// NavigateNext moves to the next search result, wrapping around
func (s *Service) NavigateNext() bool {
	return s.step(1)
}

// NavigatePrevious moves to the previous search result, wrapping around
func (s *Service) NavigatePrevious() bool {
	return s.step(-1)
}

func (s *Service) step(delta int) bool {
	n := len(s.state.Matches)
	if n == 0 {
		return false
	}

	oldMatch := s.state.CurrentMatch
	s.state.CurrentMatch = ((s.state.CurrentMatch+delta)%n + n) % n
	s.navigateToCurrentMatch()

	s.bus.Publish(SearchNavigatedEvent{
		OldIndex: s.state.Matches[oldMatch],
		NewIndex: s.state.Matches[s.state.CurrentMatch],
	})
	return true
}

// Query returns the current search query
func (s *Service) Query() string {
	return s.state.Query
}

// MatchCount returns the number of matches
func (s *Service) MatchCount() int {
	return len(s.state.Matches)
}

// Position returns the one-based position of the current match, 0 without matches
func (s *Service) Position() int {
	if len(s.state.Matches) == 0 {
		return 0
	}
	return s.state.CurrentMatch + 1
}

// CurrentMatchIndex returns the link index of the current match, -1 without matches
func (s *Service) CurrentMatchIndex() int {
	if len(s.state.Matches) == 0 {
		return -1
	}
	return s.state.Matches[s.state.CurrentMatch]
}

// IsMatch checks if a link index is a search match
func (s *Service) IsMatch(index int) bool {
	for _, match := range s.state.Matches {
		if match == index {
			return true
		}
	}
	return false
}

func (s *Service) navigateToCurrentMatch() {
	if s.navigateFn == nil || len(s.state.Matches) == 0 {
		return
	}
	s.navigateFn(s.state.Matches[s.state.CurrentMatch])
}

// MatchLinks returns the indices of links matching query, ignoring case.
// See logic.SearchFilter for the accepted field prefixes.
func MatchLinks(links []domain.Link, query string) []int {
	return logic.NewSearchFilter().FilterIndices(links, query)
}
