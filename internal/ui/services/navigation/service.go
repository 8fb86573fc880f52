package navigation

import (
	"log"

	"linkdeck/internal/domain"
	"linkdeck/internal/ui/services/events"
)

// Service owns the deck and the one authoritative page index.
// All movement goes through GoToIndex, which rejects anything outside the deck.
type Service struct {
	state    *State
	bus      events.EventBus
	onChange func(Snapshot)
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetChangeHandler registers the function called synchronously after every page change
func (s *Service) SetChangeHandler(fn func(Snapshot)) {
	s.onChange = fn
}

// Load hands the deck to the controller. The deck is fixed for the session,
// so only the first call is accepted.
func (s *Service) Load(records []domain.Link) bool {
	if s.state.Loaded {
		log.Printf("navigation: ignoring second deck of %d links", len(records))
		return false
	}

	s.state.Records = append([]domain.Link(nil), records...)
	s.state.Index = 0
	s.state.Loaded = true
	s.state.Version++

	s.bus.Publish(DeckLoadedEvent{Total: len(s.state.Records)})
	if len(s.state.Records) > 0 {
		s.notify()
	}
	return true
}

// Loaded reports whether a deck (possibly empty) has been received
func (s *Service) Loaded() bool {
	return s.state.Loaded
}

// Total returns the number of pages
func (s *Service) Total() int {
	return len(s.state.Records)
}

// Current returns the current page index, -1 when there is none
func (s *Service) Current() int {
	if len(s.state.Records) == 0 {
		return -1
	}
	return s.state.Index
}

// GoToIndex moves to page i when it exists; any other request is ignored
func (s *Service) GoToIndex(i int) bool {
	if i < 0 || i >= len(s.state.Records) || i == s.state.Index {
		return false
	}

	old := s.state.Index
	s.state.Index = i
	s.state.Version++

	s.bus.Publish(PageChangedEvent{
		OldIndex: old,
		NewIndex: i,
		URL:      s.state.Records[i].URL,
	})
	s.notify()
	return true
}

// GoToNext moves one page forward; the last page absorbs the move
func (s *Service) GoToNext() bool {
	return s.GoToIndex(s.state.Index + 1)
}

// GoToPrevious moves one page back; the first page absorbs the move
func (s *Service) GoToPrevious() bool {
	return s.GoToIndex(s.state.Index - 1)
}

// GoToFirst jumps to the first page
func (s *Service) GoToFirst() bool {
	return s.GoToIndex(0)
}

// GoToLast jumps to the last page
func (s *Service) GoToLast() bool {
	return s.GoToIndex(len(s.state.Records) - 1)
}

// Navigate handles movement in a direction
func (s *Service) Navigate(direction Direction) bool {
	switch direction {
	case DirectionPrevious:
		return s.GoToPrevious()
	case DirectionNext:
		return s.GoToNext()
	case DirectionFirst:
		return s.GoToFirst()
	case DirectionLast:
		return s.GoToLast()
	}
	return false
}

// Snapshot captures the current state for a render pass
func (s *Service) Snapshot() Snapshot {
	snap := Snapshot{
		Index:   s.state.Index,
		Total:   len(s.state.Records),
		Version: s.state.Version,
	}
	if snap.Total > 0 {
		snap.Active = s.state.Records[s.state.Index]
		snap.HasActive = true
	}
	return snap
}

// LinkAt returns the record for page i
func (s *Service) LinkAt(i int) (domain.Link, bool) {
	if i < 0 || i >= len(s.state.Records) {
		return domain.Link{}, false
	}
	return s.state.Records[i], true
}

func (s *Service) notify() {
	if s.onChange != nil {
		s.onChange(s.Snapshot())
	}
}
