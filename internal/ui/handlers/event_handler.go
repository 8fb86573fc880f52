package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"linkdeck/internal/eventbus"
	"linkdeck/internal/ui/coordinator"
	"linkdeck/internal/ui/state"
)

// ClearStatusMsg clears the status message numbered Seq
type ClearStatusMsg struct {
	Seq int
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state         *state.AppState
	coord         *coordinator.Coordinator
	statusTimeout time.Duration
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, coord *coordinator.Coordinator, statusTimeout time.Duration) *EventHandler {
	if statusTimeout <= 0 {
		statusTimeout = 3 * time.Second
	}
	return &EventHandler{
		state:         appState,
		coord:         coord,
		statusTimeout: statusTimeout,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LinksLoadStartedEvent:
		// A deck that already arrived wins over a late start notice
		if h.coord.Navigation.Loaded() {
			return nil
		}
		h.state.Loading = true
		h.state.Source = e.Source.Location

	case eventbus.LinksLoadedEvent:
		h.state.Loading = false
		h.state.LoadError = ""
		h.state.Skipped = e.Skipped
		h.coord.LoadDeck(e.Links)
		if e.Skipped > 0 {
			return h.Status(fmt.Sprintf("Loaded %d links, skipped %d incomplete entries", len(e.Links), e.Skipped), false)
		}

	case eventbus.LinksLoadFailedEvent:
		// The failure only ever shows up as the empty state
		h.state.Loading = false
		if e.Err != nil {
			h.state.LoadError = e.Err.Error()
		}
		h.coord.FailDeck()

	case eventbus.LinkOpenedEvent:
		return h.Status(fmt.Sprintf("Opened %s", e.URL), false)

	case eventbus.LinkCopiedEvent:
		return h.Status(fmt.Sprintf("Copied %s", e.URL), false)

	case eventbus.CodeExportedEvent:
		return h.Status(fmt.Sprintf("Saved QR code to %s", e.Path), false)

	case eventbus.ErrorEvent:
		return h.Status(fmt.Sprintf("Error: %s", e.Message), true)
	}

	return nil
}

// Status shows a transient message and schedules its removal
func (h *EventHandler) Status(msg string, isError bool) tea.Cmd {
	seq := h.state.SetStatus(msg, isError)
	return tea.Tick(h.statusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
