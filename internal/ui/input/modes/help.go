package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"linkdeck/internal/ui/input/types"
)

// HelpMode is active while the help popup covers the card
type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.SetHelpAction{Visible: true}}
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.SetHelpAction{Visible: false}}
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "?", "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "H":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
			types.OpenHelpPagerAction{},
		}, true
	}
	// The popup swallows everything else
	return nil, true
}
