package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"linkdeck/internal/config"
	"linkdeck/internal/ui/coordinator"
	"linkdeck/internal/ui/state"
	"linkdeck/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	coord            *coordinator.Coordinator
	help             help.Model
	keyMap           help.KeyMap
	spinner          string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, coord *coordinator.Coordinator, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		coord:            coord,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetHelp sets the help model and the bindings it describes
func (vm *ViewModel) SetHelp(helpModel help.Model, keyMap help.KeyMap) {
	vm.help = helpModel
	vm.keyMap = keyMap
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode, prompt string) {
	vm.inputTransformer.SetMode(mode, prompt)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering. The navigation snapshot is
// taken once so every part of the frame shows the same page.
func (vm *ViewModel) BuildViewState() views.ViewState {
	code := views.CodeState{
		Ready: vm.coord.Code.Ready(),
		Frame: vm.coord.Code.Frame(),
	}
	if err := vm.coord.Code.Err(); err != nil {
		code.Err = err.Error()
	}

	return views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		Title:         vm.config.UISettings.Title,
		Snapshot:      vm.coord.Snapshot(),
		Loading:       vm.state.Loading,
		Source:        vm.state.Source,
		LoadError:     vm.state.LoadError,
		Code:          code,
		Spinner:       vm.spinner,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		ShowHelp:      vm.state.ShowHelp,
		ShowHints:     vm.config.UISettings.ShowHints,
		HelpModel:     vm.help,
		KeyMap:        vm.keyMap,
		Prompt:        vm.inputTransformer.Prompt(),
		TextInput:     vm.inputTransformer.GetInputText(),
	}
}
