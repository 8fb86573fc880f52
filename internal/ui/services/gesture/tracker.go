package gesture

// Tracker turns a press/move/release sequence into a swipe decision
type Tracker struct {
	min    int
	sample sample
}

// NewTracker creates a tracker; a non-positive threshold falls back to the default
func NewTracker(minDistance int) *Tracker {
	if minDistance <= 0 {
		minDistance = DefaultMinSwipeDistance
	}
	return &Tracker{min: minDistance}
}

// MinDistance returns the configured threshold
func (t *Tracker) MinDistance() int {
	return t.min
}

// Active reports whether a gesture has begun and not yet ended
func (t *Tracker) Active() bool {
	return t.sample.hasStart
}

// Begin starts a new gesture. Both endpoints are cleared first so a stale
// end from an earlier gesture never leaks into this one.
func (t *Tracker) Begin(x int) {
	t.sample.reset()
	t.sample.startX = x
	t.sample.hasStart = true
}

// Move records the latest position of an active gesture
func (t *Tracker) Move(x int) {
	if !t.sample.hasStart {
		return
	}
	t.sample.endX = x
	t.sample.hasEnd = true
}

// End interprets the gesture and resets the tracker
func (t *Tracker) End() Swipe {
	defer t.sample.reset()

	if !t.sample.hasStart || !t.sample.hasEnd {
		return SwipeNone
	}
	return Classify(t.sample.startX, t.sample.endX, t.min)
}

// Abandon drops any gesture in progress
func (t *Tracker) Abandon() {
	t.sample.reset()
}

// Classify decides a swipe from two endpoints. Leftward travel beyond min
// advances, rightward travel beyond min retreats. Exactly min is not enough.
func Classify(startX, endX, min int) Swipe {
	distance := startX - endX
	switch {
	case distance > min:
		return SwipeAdvance
	case distance < -min:
		return SwipeRetreat
	}
	return SwipeNone
}
