package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"linkdeck/internal/config"
	"linkdeck/internal/eventbus"
	"linkdeck/internal/ui/commands"
	"linkdeck/internal/ui/coordinator"
	"linkdeck/internal/ui/handlers"
	"linkdeck/internal/ui/input"
	"linkdeck/internal/ui/input/modes"
	inputtypes "linkdeck/internal/ui/input/types"
	"linkdeck/internal/ui/services/codeview"
	"linkdeck/internal/ui/services/events"
	"linkdeck/internal/ui/services/navigation"
	"linkdeck/internal/ui/state"
	"linkdeck/internal/ui/viewmodels"
	"linkdeck/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	coord  *coordinator.Coordinator

	help    help.Model
	spinner spinner.Model
	hits    views.HitMap // click targets of the last rendered frame

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	mouse        *input.MouseHandler
	helpRenderer *HelpRenderer
	commands     *commands.Executor
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model for the deck read from source
func NewModel(bus eventbus.EventBus, cfg *config.Config, source string) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState(source)

	opts, err := cfg.Code.QROptions()
	if err != nil {
		log.Printf("Invalid code settings, using defaults: %v", err)
	}

	keys := inputtypes.DefaultKeyMap()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		coord:        coordinator.NewCoordinator(events.NewBus(), codeview.QRFactory(opts)),
		help:         help.New(),
		spinner:      sp,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(keys),
		mouse:        input.NewMouseHandler(cfg.Navigation.SwipeThreshold, cfg.Navigation.MouseWheel),
		helpRenderer: NewHelpRenderer(keys),
		commands:     commands.NewExecutor(NewLinkOps(cfg.Code.ExportDir)),
		helpOps:      NewHelpOps(nil),
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.coord, cfg.StatusTimeout())

	// Create view model with a placeholder text input (actual one is in input handler)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.coord, textinput.New())
	m.viewModel.SetHelp(m.help, keys)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		first := m.state.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.inputHandler.Keys())
		if first {
			// The terminal can host the code only once its size is known
			m.coord.EnvironmentReady()
		}
		return m, nil

	case tea.KeyMsg:
		if m.state.InPagerMode {
			return m, nil
		}

		ctx := &input.ModelContext{
			State:      m.state,
			Navigation: m.coord.Navigation,
		}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		// Popups and prompts own the screen while they are open
		if m.state.InPagerMode || m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
			m.mouse.Abandon()
			return m, nil
		}

		cmds := []tea.Cmd{}
		for _, action := range m.mouse.HandleMouse(msg, m.hits) {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.BlurMsg:
		m.mouse.Abandon()
		return m, nil

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	if !m.state.Ready {
		return "Loading..."
	}

	var mode viewmodels.InputMode
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeJump:
		mode = viewmodels.InputModeJump
	case inputtypes.ModeHelp:
		mode = viewmodels.InputModeHelp
	case inputtypes.ModeSearch:
		mode = viewmodels.InputModeSearch
	default:
		mode = viewmodels.InputModeNormal
	}
	m.viewModel.SetInputMode(mode, m.inputHandler.Prompt())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	m.viewModel.SetSpinner(m.spinner.View())

	out, hits := m.renderer.Render(m.viewModel.BuildViewState())
	m.hits = hits
	return out
}

// needsSpinner reports whether anything on screen is still waiting
func (m *Model) needsSpinner() bool {
	if m.state.Loading {
		return true
	}
	snap := m.coord.Snapshot()
	return snap.HasActive && !m.coord.Code.Ready() && m.coord.Code.Err() == nil &&
		m.coord.Code.Phase() != codeview.PhaseUnmounted
}

// processAction handles a single action from the input handlers
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if !m.coord.Navigation.Navigate(navigation.Direction(a.Direction)) {
			log.Printf("navigate %s via %s ignored", a.Direction, a.Source)
		}

	case inputtypes.GoToPageAction:
		if !m.coord.Navigation.GoToIndex(a.Index) {
			log.Printf("go to page %d via %s ignored", a.Index+1, a.Source)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeJump:
			return m.jumpTo(a.Text)
		case inputtypes.ModeSearch:
			return m.search(a.Text)
		}

	case inputtypes.SearchNavigateAction:
		if m.coord.Search.MatchCount() == 0 {
			return nil
		}
		if a.Direction == inputtypes.DirectionPrevious {
			m.coord.Search.NavigatePrevious()
		} else {
			m.coord.Search.NavigateNext()
		}
		return m.matchStatus()

	case inputtypes.OpenLinkAction:
		if url := m.coord.ActiveURL(); url != "" {
			return m.commands.ExecuteOpen(url)
		}

	case inputtypes.CopyLinkAction:
		if url := m.coord.ActiveURL(); url != "" {
			return m.commands.ExecuteCopy(url)
		}

	case inputtypes.ExportCodeAction:
		return m.exportCode()

	case inputtypes.SetHelpAction:
		m.state.ShowHelp = a.Visible
		m.mouse.Abandon()

	case inputtypes.OpenHelpPagerAction:
		if m.program == nil {
			return m.eventHandler.Status("Pager unavailable", true)
		}
		return m.fetchHelpPager(m.helpRenderer.Render(m.state.Width))

	case inputtypes.AbandonGestureAction:
		m.mouse.Abandon()

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// jumpTo navigates to the one-based page typed at the jump prompt
func (m *Model) jumpTo(text string) tea.Cmd {
	total := m.coord.Navigation.Total()
	index, ok := modes.ParsePage(text, total)
	if !ok {
		return m.eventHandler.Status(fmt.Sprintf("No page %q (1-%d)", text, total), true)
	}
	m.coord.Navigation.GoToIndex(index)
	return nil
}

// search selects the first link matching query at or after the current page
func (m *Model) search(query string) tea.Cmd {
	if m.coord.Search.StartSearch(query, m.coord.Navigation.Current()) == 0 {
		if m.coord.Search.Query() == "" {
			return nil
		}
		return m.eventHandler.Status(fmt.Sprintf("No links match %q", query), true)
	}
	return m.matchStatus()
}

func (m *Model) matchStatus() tea.Cmd {
	s := m.coord.Search
	return m.eventHandler.Status(fmt.Sprintf("Match %d of %d for %q", s.Position(), s.MatchCount(), s.Query()), false)
}

// exportCode encodes the code on screen and returns a command that writes it
func (m *Model) exportCode() tea.Cmd {
	url := m.coord.Code.Payload()
	if url == "" || !m.coord.Code.Ready() {
		return m.eventHandler.Status("QR code is not ready yet", true)
	}

	data, err := m.coord.Code.PNG(m.config.Code.ExportSize)
	if err != nil {
		log.Printf("Failed to encode QR code for %s: %v", url, err)
		return m.eventHandler.Status(fmt.Sprintf("Failed to export QR code: %v", err), true)
	}
	return m.commands.ExecuteExport(url, data)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// publish announces a completed operation. Without a bus the event is handled in place.
func (m *Model) publish(event eventbus.DomainEvent) tea.Cmd {
	if m.bus != nil {
		m.bus.Publish(event)
		return nil
	}
	return m.eventHandler.HandleEvent(event)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		// Process domain events
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd

	case spinner.TickMsg:
		// Stop ticking once nothing is waiting
		if !m.needsSpinner() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case handlers.ClearStatusMsg:
		m.state.ClearStatus(msg.Seq)
		return m, nil

	case commands.LinkOpenedMsg:
		if msg.Err != nil {
			log.Printf("Failed to open %s: %v", msg.URL, msg.Err)
			return m, m.eventHandler.Status(fmt.Sprintf("Failed to open link: %v", msg.Err), true)
		}
		return m, m.publish(eventbus.LinkOpenedEvent{URL: msg.URL})

	case commands.LinkCopiedMsg:
		if msg.Err != nil {
			log.Printf("Failed to copy %s: %v", msg.URL, msg.Err)
			return m, m.eventHandler.Status(fmt.Sprintf("Failed to copy link: %v", msg.Err), true)
		}
		return m, m.publish(eventbus.LinkCopiedEvent{URL: msg.URL})

	case commands.CodeExportedMsg:
		if msg.Err != nil {
			log.Printf("Failed to export QR code for %s: %v", msg.URL, msg.Err)
			return m, m.eventHandler.Status(fmt.Sprintf("Failed to export QR code: %v", msg.Err), true)
		}
		return m, m.publish(eventbus.CodeExportedEvent{URL: msg.URL, Path: msg.Path})

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, log and fall back to the popup
			log.Printf("Help pager failed: %v", msg.err)
			ctx := &input.ModelContext{State: m.state, Navigation: m.coord.Navigation}
			var cmds []tea.Cmd
			for _, action := range m.inputHandler.SwitchMode(inputtypes.ModeHelp, ctx) {
				cmds = append(cmds, m.processAction(action))
			}
			return m, tea.Batch(cmds...)
		}
		return m, nil

	case pauseRenderingMsg:
		// Signal that rendering should be paused for external pager
		m.state.InPagerMode = true
		m.mouse.Abandon()
		return m, nil

	case resumeRenderingMsg:
		// Bubble Tea's RestoreTerminal() should handle the actual resuming
		m.state.InPagerMode = false
		return m, nil

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}

// State returns the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Coordinator returns the coordinator that owns navigation and the code view
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coord
}
