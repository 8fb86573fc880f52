package navigation

import (
	"fmt"

	"linkdeck/internal/domain"
)

// State holds all navigation-related state
type State struct {
	Records []domain.Link
	Index   int
	Version uint64 // bumped on every accepted index change
	Loaded  bool
}

// Direction represents movement directions
type Direction string

const (
	DirectionPrevious Direction = "prev"
	DirectionNext     Direction = "next"
	DirectionFirst    Direction = "first"
	DirectionLast     Direction = "last"
)

// PageChangedEvent is published after the current page moved
type PageChangedEvent struct {
	OldIndex int
	NewIndex int
	URL      string
}

// DeckLoadedEvent is published when the controller receives its records
type DeckLoadedEvent struct {
	Total int
}

// Snapshot is a read-only view of the navigation state for one render pass.
// Every projection below is a pure function of it.
type Snapshot struct {
	Index     int
	Total     int
	Version   uint64
	Active    domain.Link
	HasActive bool
}

// Empty reports whether there is nothing to navigate
func (s Snapshot) Empty() bool {
	return s.Total == 0
}

// CanPrevious reports whether the previous control is enabled
func (s Snapshot) CanPrevious() bool {
	return s.Total > 0 && s.Index > 0
}

// CanNext reports whether the next control is enabled
func (s Snapshot) CanNext() bool {
	return s.Total > 0 && s.Index < s.Total-1
}

// Page returns the 1-based page number, 0 when empty
func (s Snapshot) Page() int {
	if s.Total == 0 {
		return 0
	}
	return s.Index + 1
}

// Counter renders the "current / total" header text
func (s Snapshot) Counter() string {
	return fmt.Sprintf("%d / %d", s.Page(), s.Total)
}
