package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeJump
	InputModeHelp
	InputModeSearch
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	prompt    string
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode and the prompt shown for it
func (it *InputTransformer) SetMode(mode InputMode, prompt string) {
	it.mode = mode
	it.prompt = prompt
}

// Prompt returns the label shown before the text input, empty outside text modes
func (it *InputTransformer) Prompt() string {
	if !it.textMode() {
		return ""
	}
	return it.prompt
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	if !it.textMode() {
		return ""
	}
	return it.textInput.View()
}

func (it *InputTransformer) textMode() bool {
	return it.mode == InputModeJump || it.mode == InputModeSearch
}
