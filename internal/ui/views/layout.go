package views

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 &&
		x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// HitMap records where the interactive parts of the last frame were drawn.
// Disabled or absent controls have empty rects.
type HitMap struct {
	Content  Rect // the card; drags here are swipes
	Prev     Rect
	Next     Rect
	Link     Rect
	Dots     []Rect
	FirstDot int // page of Dots[0]
}

// DotAt returns the page whose indicator covers (x, y)
func (h HitMap) DotAt(x, y int) (int, bool) {
	for i, r := range h.Dots {
		if r.Contains(x, y) {
			return h.FirstDot + i, true
		}
	}
	return 0, false
}
