package modes

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"linkdeck/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true

	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case msg.Type == tea.KeyEsc:
		return []types.Action{types.AbandonGestureAction{}}, true
	}

	// Everything below needs something to navigate
	if ctx.TotalItems() == 0 {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Previous):
		return navigate(types.DirectionPrevious), true

	case key.Matches(msg, m.keys.Next):
		return navigate(types.DirectionNext), true

	case key.Matches(msg, m.keys.First):
		return navigate(types.DirectionFirst), true

	case key.Matches(msg, m.keys.Last):
		return navigate(types.DirectionLast), true

	case key.Matches(msg, m.keys.Page):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return nil, false
		}
		return []types.Action{types.GoToPageAction{Index: n - 1, Source: types.SourceKey}}, true

	case key.Matches(msg, m.keys.Jump):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeJump}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.NextHit):
		return []types.Action{types.SearchNavigateAction{Direction: types.DirectionNext}}, true

	case key.Matches(msg, m.keys.PrevHit):
		return []types.Action{types.SearchNavigateAction{Direction: types.DirectionPrevious}}, true
	}

	if !ctx.HasActive() {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Open):
		return []types.Action{types.OpenLinkAction{}}, true

	case key.Matches(msg, m.keys.Copy):
		return []types.Action{types.CopyLinkAction{}}, true

	case key.Matches(msg, m.keys.Export):
		return []types.Action{types.ExportCodeAction{}}, true
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction, Source: types.SourceKey}}
}
