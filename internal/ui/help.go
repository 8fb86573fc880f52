package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"

	"linkdeck/internal/ui/input/types"
)

// helpSections names the rows of KeyMap.FullHelp
var helpSections = []string{"Navigation", "Jump & Search", "Link Actions", "Other"}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys types.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// Markdown returns the full help as a markdown document
func (r *HelpRenderer) Markdown() string {
	var b strings.Builder

	b.WriteString("# linkdeck Help\n\n")
	b.WriteString("Browse a deck of links one card at a time. ")
	b.WriteString("Drag across the card with the mouse to swipe between pages, ")
	b.WriteString("or click the arrows, the page dots or the link itself.\n")

	for i, row := range r.keys.FullHelp() {
		title := "More"
		if i < len(helpSections) {
			title = helpSections[i]
		}
		fmt.Fprintf(&b, "\n## %s\n\n", title)
		b.WriteString("| Key | Action |\n|---|---|\n")
		for _, binding := range row {
			fmt.Fprintf(&b, "| `%s` | %s |\n", keyLabel(binding), binding.Help().Desc)
		}
	}

	b.WriteString("\n## Mouse\n\n")
	b.WriteString("| Gesture | Action |\n|---|---|\n")
	b.WriteString("| drag left | next page |\n")
	b.WriteString("| drag right | previous page |\n")
	b.WriteString("| wheel down / up | next / previous page |\n")
	b.WriteString("| click a dot | go to that page |\n")
	b.WriteString("| click the link | open link |\n")

	return b.String()
}

// keyLabel lists every key of a binding, falling back to its help label
func keyLabel(b key.Binding) string {
	keys := b.Keys()
	if len(keys) == 0 {
		return b.Help().Key
	}
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, ", ")
}

// Render renders the help markdown for a terminal of the given width.
// The raw markdown is returned when glamour cannot render it.
func (r *HelpRenderer) Render(width int) string {
	md := r.Markdown()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(24, width-4)),
	)
	if err != nil {
		log.Printf("Help: failed to create markdown renderer: %v", err)
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		log.Printf("Help: failed to render markdown: %v", err)
		return md
	}
	return out
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram sets the program reference for terminal management
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
