package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"linkdeck/internal/ui/input/types"
)

// SearchMode reads a query matched against link titles and URLs
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
