package state

// AppState contains the UI state that is not owned by a service
type AppState struct {
	// Deck loading
	Loading   bool   // whether the loader is still running
	Source    string // where links are read from
	LoadError string // why the deck could not be read
	Skipped   int    // entries dropped for missing fields

	// Terminal
	Width  int
	Height int
	Ready  bool // first size message seen

	// UI state
	ShowHelp      bool
	InPagerMode   bool
	StatusMessage string // status bar message
	StatusIsError bool
	StatusSeq     int // bumped on every new status message
}

// NewAppState creates a new application state
func NewAppState(source string) *AppState {
	return &AppState{
		Loading: true,
		Source:  source,
	}
}

// SetStatus replaces the status message and returns its sequence number
func (s *AppState) SetStatus(msg string, isError bool) int {
	s.StatusMessage = msg
	s.StatusIsError = isError
	s.StatusSeq++
	return s.StatusSeq
}

// ClearStatus clears the status message if it is still the one numbered seq
func (s *AppState) ClearStatus(seq int) bool {
	if seq != s.StatusSeq {
		return false
	}
	s.StatusMessage = ""
	s.StatusIsError = false
	return true
}

// Resize records new terminal dimensions and reports whether this was the first size seen
func (s *AppState) Resize(width, height int) bool {
	s.Width = width
	s.Height = height
	if s.Ready {
		return false
	}
	s.Ready = true
	return true
}
