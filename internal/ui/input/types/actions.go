package types

// Navigation directions
const (
	DirectionPrevious = "prev"
	DirectionNext     = "next"
	DirectionFirst    = "first"
	DirectionLast     = "last"
)

// Input sources, used for logging
const (
	SourceKey   = "key"
	SourceArrow = "arrow"
	SourceSwipe = "swipe"
	SourceWheel = "wheel"
	SourceDot   = "dot"
	SourceJump  = "jump"
	SourceMatch = "search"
)

// Navigation actions
type NavigateAction struct {
	Direction string
	Source    string
}

func (a NavigateAction) Type() string { return "navigate" }

// GoToPageAction selects a page directly
type GoToPageAction struct {
	Index  int // zero-based
	Source string
}

func (a GoToPageAction) Type() string { return "go_to_page" }

// SearchNavigateAction steps through search matches
type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

// Link actions
type OpenLinkAction struct{}

func (a OpenLinkAction) Type() string { return "open_link" }

type CopyLinkAction struct{}

func (a CopyLinkAction) Type() string { return "copy_link" }

type ExportCodeAction struct{}

func (a ExportCodeAction) Type() string { return "export_code" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Help actions
type SetHelpAction struct {
	Visible bool
}

func (a SetHelpAction) Type() string { return "set_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

// AbandonGestureAction drops any drag in progress
type AbandonGestureAction struct{}

func (a AbandonGestureAction) Type() string { return "abandon_gesture" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
