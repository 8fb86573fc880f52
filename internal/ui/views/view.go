package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"linkdeck/internal/ui/services/navigation"
)

// Offsets of the content origin inside Main's padding
const (
	originX = 2
	originY = 1

	bodyRow      = 2 // header, blank, body
	defaultWidth = 80
	defaultRows  = 24
)

// CodeState is what the card needs to know about the QR code
type CodeState struct {
	Ready bool
	Frame string
	Err   string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Snapshot      navigation.Snapshot
	Loading       bool
	Source        string
	LoadError     string
	Code          CodeState
	Spinner       string
	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	ShowHints     bool
	HelpModel     help.Model
	KeyMap        help.KeyMap
	Prompt        string // non-empty while a text prompt is open
	TextInput     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view and the map of its clickable regions
func (r *Renderer) Render(state ViewState) (string, HitMap) {
	var hits HitMap

	width := state.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := state.Height
	if height <= 0 {
		height = defaultRows
	}
	contentW := width - 2*originX
	if contentW < 20 {
		contentW = 20
	}

	lines := []string{r.renderHeader(state, contentW), ""}

	snap := state.Snapshot
	switch {
	case state.Loading:
		lines = append(lines, centerLine(fmt.Sprintf("%s Loading links...", state.Spinner), contentW))

	case snap.Empty():
		lines = append(lines, centerLine(r.styles.Empty.Render("No links to display"), contentW))
		hint := state.Source
		if state.LoadError != "" {
			hint = state.LoadError
		}
		if hint != "" {
			lines = append(lines, centerLine(r.styles.Dim.Render(hint), contentW))
		}

	default:
		body, bodyHits := r.renderBody(state, contentW)
		lines = append(lines, body...)
		hits = bodyHits

		lines = append(lines, "")
		dots, dotHits, firstDot := r.renderDots(snap, contentW, originY+len(lines))
		lines = append(lines, dots)
		hits.Dots = dotHits
		hits.FirstDot = firstDot
	}

	footer := r.renderFooter(state, contentW)

	// Push the footer to the bottom, accounting for Main's vertical padding
	available := height - 2*originY
	if gap := available - len(lines) - len(footer); gap > 0 {
		lines = append(lines, make([]string, gap)...)
	}
	lines = append(lines, footer...)

	mainStyle := r.styles.Main.MaxHeight(height)
	final := mainStyle.Render(strings.Join(lines, "\n"))

	if state.ShowHelp {
		popup := r.renderHelpContent(state)
		return r.popupRender.RenderPopupOverlay(final, popup, height, width, r.styles.InfoBox), HitMap{}
	}

	return final, hits
}

func (r *Renderer) renderHeader(state ViewState, contentW int) string {
	title := r.styles.Title.Render(state.Title)
	counter := r.styles.Counter.Render(state.Snapshot.Counter())

	gap := contentW - lipgloss.Width(title) - lipgloss.Width(counter)
	if gap < 2 {
		gap = 2
	}
	return title + strings.Repeat(" ", gap) + counter
}

// renderBody draws the arrows around the card and records their positions
func (r *Renderer) renderBody(state ViewState, contentW int) ([]string, HitMap) {
	snap := state.Snapshot
	maxInner := contentW - 2*arrowWidth - cardChrome
	card := r.cardRender.Render(snap.Active, state.Code, state.Spinner, maxInner)

	prev := r.renderArrow("‹", snap.CanPrevious(), card.Height)
	next := r.renderArrow("›", snap.CanNext(), card.Height)
	body := lipgloss.JoinHorizontal(lipgloss.Top, prev, card.View, next)

	bodyW := 2*arrowWidth + card.Width
	left := (contentW - bodyW) / 2
	if left < 0 {
		left = 0
	}

	out := strings.Split(body, "\n")
	pad := strings.Repeat(" ", left)
	for i := range out {
		out[i] = pad + out[i]
	}

	top := originY + bodyRow
	x := originX + left
	hits := HitMap{
		Content: Rect{X: x + arrowWidth, Y: top, W: card.Width, H: card.Height},
		Link:    Rect{X: x + arrowWidth, Y: top + card.LinkRow, W: card.Width, H: 1},
	}
	if snap.CanPrevious() {
		hits.Prev = Rect{X: x, Y: top, W: arrowWidth, H: card.Height}
	}
	if snap.CanNext() {
		hits.Next = Rect{X: x + arrowWidth + card.Width, Y: top, W: arrowWidth, H: card.Height}
	}
	return out, hits
}

func (r *Renderer) renderFooter(state ViewState, contentW int) []string {
	var footer []string

	if state.Prompt != "" {
		footer = append(footer, r.styles.Prompt.Render(state.Prompt)+state.TextInput)
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		footer = append(footer, style.Render(truncate(state.StatusMessage, contentW)))
	}

	if state.ShowHints && !state.ShowHelp && state.KeyMap != nil {
		h := state.HelpModel
		h.Width = contentW
		footer = append(footer, h.ShortHelpView(state.KeyMap.ShortHelp()))
	}
	return footer
}

// renderHelpContent builds the popup listing every binding
func (r *Renderer) renderHelpContent(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.PopupTitle.Render(state.Title + " Help"))
	b.WriteString("\n")
	if state.KeyMap != nil {
		b.WriteString(state.HelpModel.FullHelpView(state.KeyMap.FullHelp()))
		b.WriteString("\n\n")
	}
	b.WriteString(r.styles.Dim.Render("Drag the card sideways to swipe. Click the dots to jump."))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Press ? or esc to close, H for the full help."))
	return b.String()
}

func centerLine(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// truncate shortens plain text to at most width cells
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + "…"
}
