package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Counter       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Card          lipgloss.Style
	CardTitle     lipgloss.Style
	LinkButton    lipgloss.Style
	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style
	DotActive     lipgloss.Style
	DotInactive   lipgloss.Style
	Empty         lipgloss.Style
	Prompt        lipgloss.Style
	InfoBox       lipgloss.Style
	PopupTitle    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")), // red
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true),
		LinkButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true),
		Arrow:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		ArrowDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		DotActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		DotInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		PopupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
	}
}
