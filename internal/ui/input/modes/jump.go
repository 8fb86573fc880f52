package modes

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"linkdeck/internal/ui/input/types"
)

// JumpMode reads a 1-based page number
type JumpMode struct {
	TextInputMode
}

func NewJumpMode(ti *textinput.Model) *JumpMode {
	return &JumpMode{
		TextInputMode: NewTextInputMode(types.ModeJump, "jump", "Go to page: ", ti),
	}
}

// ParsePage converts jump input into a zero-based index within total pages
func ParsePage(text string, total int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > total {
		return 0, false
	}
	return n - 1, true
}
