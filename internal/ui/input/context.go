package input

import (
	"linkdeck/internal/ui/services/navigation"
	"linkdeck/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State      *state.AppState
	Navigation *navigation.Service
}

// CurrentIndex returns the current page, -1 when there is none
func (c *ModelContext) CurrentIndex() int {
	return c.Navigation.Current()
}

// TotalItems returns the number of pages
func (c *ModelContext) TotalItems() int {
	return c.Navigation.Total()
}

// HasActive returns true when a link is on screen
func (c *ModelContext) HasActive() bool {
	return c.Navigation.Snapshot().HasActive
}

// ActiveURL returns the URL of the current page
func (c *ModelContext) ActiveURL() string {
	return c.Navigation.Snapshot().Active.URL
}

// Loading reports whether the deck is still being read
func (c *ModelContext) Loading() bool {
	return c.State.Loading
}
