package ui

import (
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkdeck/internal/config"
	"linkdeck/internal/domain"
	"linkdeck/internal/eventbus"
	"linkdeck/internal/ui/handlers"
)

var deck = []domain.Link{
	{URL: "https://github.com/jane", Title: "GitHub"},
	{URL: "https://linkedin.com/in/jane", Title: "LinkedIn"},
	{URL: "https://jane.dev", Title: "Website"},
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Code.ExportDir = t.TempDir()
	return NewModel(nil, cfg, "links.json")
}

func loadedModel(t *testing.T) *Model {
	t.Helper()
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	m.Update(EventMsg{Event: eventbus.LinksLoadedEvent{Links: deck}})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes cmd and returns the messages it produced, without running ticks
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestCodeWaitsForFirstWindowSize(t *testing.T) {
	m := newTestModel(t)
	m.Update(EventMsg{Event: eventbus.LinksLoadedEvent{Links: deck}})

	assert.False(t, m.coord.Code.Ready())
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	assert.True(t, m.coord.Code.Ready())
	assert.Equal(t, deck[0].URL, m.coord.Code.Payload())

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	assert.Equal(t, 1, m.coord.Code.Builds())
}

func TestKeysNavigateAndUpdateCodeInPlace(t *testing.T) {
	m := loadedModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.coord.Navigation.Current())
	assert.Equal(t, deck[1].URL, m.coord.Code.Payload())

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.coord.Navigation.Current())

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.coord.Navigation.Current())

	assert.Equal(t, 1, m.coord.Code.Builds())
}

func TestDigitSelectsPage(t *testing.T) {
	m := loadedModel(t)

	m.Update(keyRunes("3"))
	assert.Equal(t, 2, m.coord.Navigation.Current())

	m.Update(keyRunes("9"))
	assert.Equal(t, 2, m.coord.Navigation.Current())
}

func TestJumpPrompt(t *testing.T) {
	m := loadedModel(t)

	m.Update(keyRunes(":"))
	assert.Contains(t, m.View(), "Go to page")

	m.Update(keyRunes("2"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.coord.Navigation.Current())

	m.Update(keyRunes(":"))
	m.Update(keyRunes("7"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.coord.Navigation.Current())
	assert.True(t, m.state.StatusIsError)
	assert.Contains(t, m.state.StatusMessage, "No page")
}

func TestSearchSelectsMatchingLink(t *testing.T) {
	m := loadedModel(t)

	m.Update(keyRunes("/"))
	assert.Contains(t, m.View(), "Search:")
	for _, r := range "site" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, m.coord.Navigation.Current())
	assert.Equal(t, `Match 1 of 1 for "site"`, m.state.StatusMessage)

	m.Update(keyRunes("/"))
	for _, r := range "zzz" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, m.coord.Navigation.Current())
	assert.True(t, m.state.StatusIsError)
}

func TestSearchMatchCycling(t *testing.T) {
	m := loadedModel(t)

	m.Update(keyRunes("/"))
	for _, r := range "https" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, m.coord.Navigation.Current())

	m.Update(keyRunes("n"))
	assert.Equal(t, 1, m.coord.Navigation.Current())
	m.Update(keyRunes("N"))
	m.Update(keyRunes("N"))
	assert.Equal(t, 2, m.coord.Navigation.Current())
	assert.Equal(t, `Match 3 of 3 for "https"`, m.state.StatusMessage)
}

func TestSwipeThroughRenderedHitMap(t *testing.T) {
	m := loadedModel(t)
	m.View()

	content := m.hits.Content
	require.False(t, content.Empty())
	y := content.Y + 1
	start := content.X + content.W - 2
	end := start - 10

	m.Update(tea.MouseMsg{X: start, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: end, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: end, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	assert.Equal(t, 1, m.coord.Navigation.Current())

	// Short drags are taps
	m.View()
	m.Update(tea.MouseMsg{X: start, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: start - 3, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: start - 3, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	assert.Equal(t, 1, m.coord.Navigation.Current())
}

func TestBlurAbandonsSwipe(t *testing.T) {
	m := loadedModel(t)
	m.View()

	content := m.hits.Content
	y := content.Y + 1
	start := content.X + content.W - 2

	m.Update(tea.MouseMsg{X: start, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: start - 10, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.BlurMsg{})
	m.Update(tea.MouseMsg{X: start - 10, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	assert.Equal(t, 0, m.coord.Navigation.Current())
}

func TestDotClickSelectsPage(t *testing.T) {
	m := loadedModel(t)
	m.View()

	require.Len(t, m.hits.Dots, 3)
	dot := m.hits.Dots[2]
	m.Update(tea.MouseMsg{X: dot.X, Y: dot.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 2, m.coord.Navigation.Current())
}

func TestWheelPages(t *testing.T) {
	m := loadedModel(t)

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1, m.coord.Navigation.Current())
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 0, m.coord.Navigation.Current())
}

func TestDeckShownWhenStartNoticeArrivesLate(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	m.Update(EventMsg{Event: eventbus.LinksLoadedEvent{Links: deck}})
	m.Update(EventMsg{Event: eventbus.LinksLoadStartedEvent{Source: domain.LinkSource{Location: "links.json"}}})

	view := sgrRE.ReplaceAllString(m.View(), "")
	assert.False(t, m.state.Loading)
	assert.NotContains(t, view, "Loading links...")
	assert.Contains(t, view, "GitHub")
	assert.Contains(t, view, "1 / 3")
	assert.Len(t, m.hits.Dots, 3)
	assert.False(t, m.needsSpinner())
}

func TestLoadFailureShowsEmptyState(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(EventMsg{Event: eventbus.LinksLoadFailedEvent{Err: errors.New("boom")}})

	view := m.View()
	assert.Contains(t, view, "No links to display")
	assert.Contains(t, view, "0 / 0")
	assert.Empty(t, m.hits.Dots)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, -1, m.coord.Navigation.Current())
	assert.False(t, m.needsSpinner())
}

func TestCopyLinkShowsStatus(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { clipboardWrite = orig })

	m := loadedModel(t)
	_, cmd := m.Update(keyRunes("y"))
	for _, msg := range runCmd(cmd) {
		m.Update(msg)
	}

	assert.Equal(t, deck[0].URL, copied)
	assert.Equal(t, "Copied "+deck[0].URL, m.state.StatusMessage)
}

func TestCopyFailureIsTransientError(t *testing.T) {
	orig := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { clipboardWrite = orig })

	m := loadedModel(t)
	_, cmd := m.Update(keyRunes("y"))
	for _, msg := range runCmd(cmd) {
		m.Update(msg)
	}

	assert.True(t, m.state.StatusIsError)
	assert.Contains(t, m.state.StatusMessage, "no clipboard")

	m.Update(handlers.ClearStatusMsg{Seq: m.state.StatusSeq})
	assert.Empty(t, m.state.StatusMessage)
}

func TestExportWritesPNG(t *testing.T) {
	m := loadedModel(t)
	_, cmd := m.Update(keyRunes("e"))
	for _, msg := range runCmd(cmd) {
		m.Update(msg)
	}

	require.Contains(t, m.state.StatusMessage, "Saved QR code to ")
	path := m.state.StatusMessage[len("Saved QR code to "):]
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestHelpPopupToggles(t *testing.T) {
	m := loadedModel(t)

	m.Update(keyRunes("?"))
	assert.True(t, m.state.ShowHelp)

	// Navigation keys are swallowed while the popup is open
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.coord.Navigation.Current())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.state.ShowHelp)
}

func TestHelpPagerFailureFallsBackToPopup(t *testing.T) {
	m := loadedModel(t)

	m.Update(helpPagerMsg{err: errors.New("no tty")})
	assert.True(t, m.state.ShowHelp)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.state.ShowHelp)
}

func TestPagerModePausesInput(t *testing.T) {
	m := loadedModel(t)

	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.coord.Navigation.Current())

	m.Update(resumeRenderingMsg{})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.coord.Navigation.Current())
}

func TestQuit(t *testing.T) {
	m := loadedModel(t)
	_, cmd := m.Update(keyRunes("q"))
	assert.Contains(t, runCmd(cmd), tea.Msg(tea.QuitMsg{}))
}

func TestSpinnerStopsOnceCodeIsReady(t *testing.T) {
	m := newTestModel(t)
	assert.True(t, m.needsSpinner())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	m.Update(EventMsg{Event: eventbus.LinksLoadedEvent{Links: deck}})
	assert.False(t, m.needsSpinner())
}
