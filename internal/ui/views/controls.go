package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"

	"linkdeck/internal/ui/services/navigation"
)

const (
	arrowWidth = 3
	dotWidth   = 2
)

// renderArrow draws a previous/next control as a column as tall as the card.
// A disabled control keeps its place so the card does not shift.
func (r *Renderer) renderArrow(glyph string, enabled bool, height int) string {
	style := r.styles.Arrow
	if !enabled {
		style = r.styles.ArrowDisabled
	}

	blank := strings.Repeat(" ", arrowWidth)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}
	if height > 0 {
		lines[height/2] = " " + style.Render(glyph) + " "
	}
	return strings.Join(lines, "\n")
}

// renderDots draws one indicator per page on screen row y. When the deck has
// more pages than fit, only a window around the current page is drawn and
// an ellipsis marks the hidden pages on either side. The returned offset is
// the page of the first drawn indicator.
func (r *Renderer) renderDots(snap navigation.Snapshot, contentW, y int) (string, []Rect, int) {
	first, count := dotWindow(snap, contentW/dotWidth)

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = r.styles.DotActive.Render("●") + " "
	p.InactiveDot = r.styles.DotInactive.Render("○") + " "
	p.SetTotalPages(count)
	p.Page = snap.Index - first

	windowed := count < snap.Total
	rowW := dotWidth * count
	if windowed {
		rowW += 2 * dotWidth
	}
	left := (contentW - rowW) / 2
	if left < 0 {
		left = 0
	}

	before, after := "", ""
	start := left
	if windowed {
		before = "  "
		if first > 0 {
			before = r.styles.DotInactive.Render("…") + " "
		}
		if first+count < snap.Total {
			after = r.styles.DotInactive.Render("…")
		}
		start += dotWidth
	}

	rects := make([]Rect, count)
	for i := range rects {
		rects[i] = Rect{X: originX + start + i*dotWidth, Y: y, W: dotWidth, H: 1}
	}
	return strings.Repeat(" ", left) + before + p.View() + after, rects, first
}

// dotWindow picks which pages get an indicator when only maxDots of them
// fit, keeping the current page near the middle.
func dotWindow(snap navigation.Snapshot, maxDots int) (first, count int) {
	if snap.Total <= maxDots {
		return 0, snap.Total
	}
	count = maxDots - 2
	if count < 1 {
		count = 1
	}
	first = snap.Index - count/2
	if first > snap.Total-count {
		first = snap.Total - count
	}
	if first < 0 {
		first = 0
	}
	return first, count
}
