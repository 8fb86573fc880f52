package input

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"linkdeck/internal/ui/input/types"
	"linkdeck/internal/ui/services/gesture"
	"linkdeck/internal/ui/views"
)

// MouseHandler turns mouse events into actions using the last frame's hit map.
// Drags that start on the card are swipes; a press and release on the link
// without a swipe opens it.
type MouseHandler struct {
	tracker     *gesture.Tracker
	wheel       bool
	pressedLink bool
}

// NewMouseHandler creates a handler with a swipe threshold in cells
func NewMouseHandler(threshold int, wheel bool) *MouseHandler {
	return &MouseHandler{
		tracker: gesture.NewTracker(threshold),
		wheel:   wheel,
	}
}

// Abandon drops a drag in progress
func (h *MouseHandler) Abandon() {
	h.tracker.Abandon()
	h.pressedLink = false
}

// Dragging reports whether a swipe gesture is being tracked
func (h *MouseHandler) Dragging() bool {
	return h.tracker.Active()
}

// HandleMouse interprets one mouse event
func (h *MouseHandler) HandleMouse(msg tea.MouseMsg, hits views.HitMap) []types.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		return h.press(msg, hits)

	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			h.tracker.Move(msg.X)
		}
		return nil

	case tea.MouseActionRelease:
		return h.release(msg, hits)
	}
	return nil
}

func (h *MouseHandler) press(msg tea.MouseMsg, hits views.HitMap) []types.Action {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if h.wheel {
			return []types.Action{types.NavigateAction{Direction: types.DirectionPrevious, Source: types.SourceWheel}}
		}
		return nil

	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if h.wheel {
			return []types.Action{types.NavigateAction{Direction: types.DirectionNext, Source: types.SourceWheel}}
		}
		return nil

	case tea.MouseButtonLeft:
	default:
		return nil
	}

	x, y := msg.X, msg.Y
	switch {
	case hits.Content.Contains(x, y):
		h.tracker.Begin(x)
		h.pressedLink = hits.Link.Contains(x, y)
		return nil

	case hits.Prev.Contains(x, y):
		h.Abandon()
		return []types.Action{types.NavigateAction{Direction: types.DirectionPrevious, Source: types.SourceArrow}}

	case hits.Next.Contains(x, y):
		h.Abandon()
		return []types.Action{types.NavigateAction{Direction: types.DirectionNext, Source: types.SourceArrow}}
	}

	h.Abandon()
	if i, ok := hits.DotAt(x, y); ok {
		return []types.Action{types.GoToPageAction{Index: i, Source: types.SourceDot}}
	}
	return nil
}

func (h *MouseHandler) release(msg tea.MouseMsg, hits views.HitMap) []types.Action {
	if !h.tracker.Active() {
		return nil
	}
	onLink := h.pressedLink
	h.pressedLink = false

	swipe := h.tracker.End()
	log.Printf("mouse: gesture ended at x=%d: %s", msg.X, swipe)

	switch swipe {
	case gesture.SwipeAdvance:
		return []types.Action{types.NavigateAction{Direction: types.DirectionNext, Source: types.SourceSwipe}}
	case gesture.SwipeRetreat:
		return []types.Action{types.NavigateAction{Direction: types.DirectionPrevious, Source: types.SourceSwipe}}
	}

	if onLink && hits.Link.Contains(msg.X, msg.Y) {
		return []types.Action{types.OpenLinkAction{}}
	}
	return nil
}
