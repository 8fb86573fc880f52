package coordinator

import (
	"log"

	"linkdeck/internal/domain"
	"linkdeck/internal/ui/services/codeview"
	"linkdeck/internal/ui/services/events"
	"linkdeck/internal/ui/services/navigation"
	"linkdeck/internal/ui/services/search"
)

// Coordinator manages the UI services and their interactions.
// The code view only ever sees the navigation index through the active URL.
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Code       *codeview.Service
	Search     *search.Service

	// Dependencies
	bus events.EventBus
}

// NewCoordinator creates a new coordinator with all services
func NewCoordinator(bus events.EventBus, factory codeview.Factory) *Coordinator {
	if bus == nil {
		bus = &events.NullBus{}
	}
	c := &Coordinator{
		Navigation: navigation.NewService(bus),
		Code:       codeview.NewService(&codeview.Surface{}, factory),
		Search:     search.NewService(bus),
		bus:        bus,
	}

	c.wireServices()
	c.subscribeToEvents()

	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices() {
	// Every accepted page change reaches the code view before the next render
	c.Navigation.SetChangeHandler(func(s navigation.Snapshot) {
		if s.HasActive {
			c.Code.SetURL(s.Active.URL)
		}
	})

	// Search matches are selected like any other direct page selection
	c.Search.SetMatcherFunction(func(query string) []int {
		links := make([]domain.Link, 0, c.Navigation.Total())
		for i := 0; i < c.Navigation.Total(); i++ {
			l, _ := c.Navigation.LinkAt(i)
			links = append(links, l)
		}
		return search.MatchLinks(links, query)
	})
	c.Search.SetNavigateFunction(c.Navigation.GoToIndex)
}

// subscribeToEvents sets up event handlers
func (c *Coordinator) subscribeToEvents() {
	c.bus.Subscribe(events.TypeOf(navigation.PageChangedEvent{}), func(e interface{}) {
		if ev, ok := e.(navigation.PageChangedEvent); ok {
			log.Printf("navigation: page %d -> %d (%s)", ev.OldIndex+1, ev.NewIndex+1, ev.URL)
		}
	})

	c.bus.Subscribe(events.TypeOf(navigation.DeckLoadedEvent{}), func(e interface{}) {
		if ev, ok := e.(navigation.DeckLoadedEvent); ok {
			log.Printf("navigation: deck of %d links", ev.Total)
		}
	})
}

// LoadDeck hands the links to navigation. An empty deck has no code to show,
// so the code view is unmounted.
func (c *Coordinator) LoadDeck(links []domain.Link) {
	if !c.Navigation.Load(links) {
		return
	}
	if c.Navigation.Total() == 0 {
		c.Code.Unmount()
	}
}

// FailDeck records that no deck will arrive
func (c *Coordinator) FailDeck() {
	c.LoadDeck(nil)
}

// EnvironmentReady is called once the terminal can host the code
func (c *Coordinator) EnvironmentReady() {
	c.Code.MarkReady()
}

// Snapshot returns the navigation state for one render pass
func (c *Coordinator) Snapshot() navigation.Snapshot {
	return c.Navigation.Snapshot()
}

// ActiveURL returns the URL of the current page, empty when there is none
func (c *Coordinator) ActiveURL() string {
	return c.Navigation.Snapshot().Active.URL
}
