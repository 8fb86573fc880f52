package domain

// Link represents one card in the deck
type Link struct {
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title" yaml:"title"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"` // image reference or short glyph

	// IconArt is the terminal rendering of Icon, empty when the icon could not be loaded
	IconArt string `json:"-" yaml:"-"`
}

// HasIcon reports whether the link has something to draw above its title
func (l Link) HasIcon() bool {
	return l.IconArt != ""
}

// LinkSource describes where a deck was loaded from
type LinkSource struct {
	Location string // path or http(s) URL
	Format   string // "json" or "yaml"
}
