package qr

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const finderSize = 7

// Render draws a module matrix with the quiet zone and style from opts
func Render(bits [][]bool, opts Options) string {
	n := len(bits)
	if n == 0 {
		return ""
	}
	margin := opts.Margin
	if margin < 0 {
		margin = 0
	}
	side := n + 2*margin

	dark := func(r, c int) bool {
		r, c = r-margin, c-margin
		if r < 0 || c < 0 || r >= n || c >= n {
			return false
		}
		return bits[r][c]
	}
	corner := func(r, c int) bool {
		r, c = r-margin, c-margin
		if r < 0 || c < 0 || r >= n || c >= n {
			return false
		}
		top := r < finderSize
		left := c < finderSize
		return (top && left) || (top && c >= n-finderSize) || (r >= n-finderSize && left)
	}

	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color(opts.Foreground)).
		Background(lipgloss.Color(opts.Background))
	cornerStyle := base
	if opts.CornerColor != "" {
		cornerStyle = base.Foreground(lipgloss.Color(opts.CornerColor))
	}

	var lines []string
	switch resolveDots(opts, side) {
	case DotsFullBlock:
		for r := 0; r < side; r++ {
			var row runWriter
			for c := 0; c < side; c++ {
				glyph := "  "
				if dark(r, c) {
					glyph = "██"
				}
				row.add(glyph, corner(r, c))
			}
			lines = append(lines, row.render(base, cornerStyle))
		}

	default:
		for r := 0; r < side; r += 2 {
			var row runWriter
			for c := 0; c < side; c++ {
				top := dark(r, c)
				bottom := r+1 < side && dark(r+1, c)
				row.add(halfBlock(top, bottom), corner(r, c) || corner(r+1, c))
			}
			lines = append(lines, row.render(base, cornerStyle))
		}
	}

	return strings.Join(lines, "\n")
}

// resolveDots picks the concrete style for a code of the given side length
func resolveDots(opts Options, side int) DotStyle {
	switch opts.Dots {
	case DotsHalfBlock, DotsFullBlock:
		return opts.Dots
	}
	if (opts.Width <= 0 || side*2 <= opts.Width) && (opts.Height <= 0 || side <= opts.Height) {
		return DotsFullBlock
	}
	return DotsHalfBlock
}

func halfBlock(top, bottom bool) string {
	switch {
	case top && bottom:
		return "█"
	case top:
		return "▀"
	case bottom:
		return "▄"
	}
	return " "
}

// runWriter groups consecutive glyphs sharing a style so each run is styled once
type runWriter struct {
	runs []run
}

type run struct {
	text   []byte
	corner bool
}

func (w *runWriter) add(glyph string, corner bool) {
	if len(w.runs) == 0 || w.runs[len(w.runs)-1].corner != corner {
		w.runs = append(w.runs, run{corner: corner})
	}
	last := &w.runs[len(w.runs)-1]
	last.text = append(last.text, glyph...)
}

func (w *runWriter) render(base, corner lipgloss.Style) string {
	var sb strings.Builder
	for i := range w.runs {
		style := base
		if w.runs[i].corner {
			style = corner
		}
		sb.WriteString(style.Render(string(w.runs[i].text)))
	}
	return sb.String()
}
