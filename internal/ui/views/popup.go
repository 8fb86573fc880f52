package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of a greyed-out copy of mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(ansiRE.ReplaceAllString(mainContent, ""), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	modal := strings.Split(styledPopup, "\n")
	out := make([]string, len(base))
	for i, line := range base {
		if i < y || i >= y+len(modal) {
			out[i] = grey.Render(line)
			continue
		}
		left, right := cutCells(line, x, x+modalW)
		out[i] = grey.Render(left) + modal[i-y] + grey.Render(right)
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors and OSC 8 links
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m|\x1b\]8;;[^\x1b]*\x1b\\`)

// cutCells splits plain text around the cell range [from, to), padding short lines
func cutCells(s string, from, to int) (string, string) {
	var left, right strings.Builder
	col := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		switch {
		case col+w <= from:
			left.WriteRune(r)
		case col >= to:
			right.WriteRune(r)
		}
		col += w
	}
	if pad := from - lipgloss.Width(left.String()); pad > 0 {
		left.WriteString(strings.Repeat(" ", pad))
	}
	return left.String(), right.String()
}
