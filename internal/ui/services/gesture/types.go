package gesture

// DefaultMinSwipeDistance is the horizontal travel a gesture must exceed to count as a swipe
const DefaultMinSwipeDistance = 50

// Swipe is the interpretation of a finished gesture
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeAdvance
	SwipeRetreat
)

func (s Swipe) String() string {
	switch s {
	case SwipeAdvance:
		return "advance"
	case SwipeRetreat:
		return "retreat"
	}
	return "none"
}

// sample holds the two endpoints of one gesture.
// Zero is a valid coordinate, so presence is tracked separately.
type sample struct {
	startX   int
	endX     int
	hasStart bool
	hasEnd   bool
}

func (s *sample) reset() {
	*s = sample{}
}
