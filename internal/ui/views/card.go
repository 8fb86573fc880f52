package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"linkdeck/internal/domain"
)

const (
	minCardInner = 24
	cardChrome   = 4 // border and horizontal padding
)

// Card is one rendered link card and its measurements
type Card struct {
	View    string
	Width   int
	Height  int
	LinkRow int // row of the link button, relative to the card's top border
}

// CardRenderer draws the active link
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// Render draws link with its code. maxInner bounds the text area width.
func (cr *CardRenderer) Render(link domain.Link, code CodeState, spinner string, maxInner int) Card {
	var codeBlock string
	switch {
	case code.Ready:
		codeBlock = code.Frame
	case code.Err != "":
		codeBlock = cr.styles.Dim.Render("Code unavailable")
	default:
		codeBlock = fmt.Sprintf("%s Preparing code...", spinner)
	}

	inner := lipgloss.Width(codeBlock)
	if w := lipgloss.Width(link.Title); w > inner {
		inner = w
	}
	if inner < minCardInner {
		inner = minCardInner
	}
	if maxInner > 0 && inner > maxInner {
		inner = maxInner
	}

	var blocks []string
	if link.HasIcon() {
		blocks = append(blocks, link.IconArt)
	}
	blocks = append(blocks,
		cr.styles.CardTitle.Render(truncate(link.Title, inner)),
		"",
		codeBlock,
		"",
	)

	centered := make([]string, len(blocks))
	for i, b := range blocks {
		centered[i] = lipgloss.PlaceHorizontal(inner, lipgloss.Center, b)
	}
	above := strings.Join(centered, "\n")

	label := truncate("↗ "+link.URL, inner)
	button := lipgloss.PlaceHorizontal(inner, lipgloss.Center, Hyperlink(link.URL, cr.styles.LinkButton.Render(label)))

	view := cr.styles.Card.Render(above + "\n" + button)
	return Card{
		View:    view,
		Width:   lipgloss.Width(view),
		Height:  lipgloss.Height(view),
		LinkRow: 1 + lipgloss.Height(above),
	}
}

// Hyperlink wraps text in an OSC 8 link so terminals that support it open url on click
func Hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
