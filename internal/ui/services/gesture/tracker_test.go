package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func swipe(tr *Tracker, start int, moves ...int) Swipe {
	tr.Begin(start)
	for _, x := range moves {
		tr.Move(x)
	}
	return tr.End()
}

func TestClassifyDefaultThreshold(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       Swipe
	}{
		{"leftward advances", 500, 440, SwipeAdvance},
		{"rightward retreats", 440, 500, SwipeRetreat},
		{"short leftward ignored", 500, 470, SwipeNone},
		{"exact threshold ignored", 500, 450, SwipeNone},
		{"exact negative threshold ignored", 450, 500, SwipeNone},
		{"just past threshold", 500, 449, SwipeAdvance},
		{"zero start is valid", 0, 60, SwipeRetreat},
		{"zero end is valid", 60, 0, SwipeAdvance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.start, tt.end, DefaultMinSwipeDistance))
		})
	}
}

func TestTrackerSwipes(t *testing.T) {
	tr := NewTracker(0)
	assert.Equal(t, DefaultMinSwipeDistance, tr.MinDistance())

	assert.Equal(t, SwipeAdvance, swipe(tr, 500, 480, 440))
	assert.Equal(t, SwipeRetreat, swipe(tr, 440, 500))
	assert.Equal(t, SwipeNone, swipe(tr, 500, 470))
}

func TestTapWithoutMoveIsNotASwipe(t *testing.T) {
	tr := NewTracker(DefaultMinSwipeDistance)
	assert.Equal(t, SwipeNone, swipe(tr, 500))
}

func TestBeginClearsStaleEnd(t *testing.T) {
	tr := NewTracker(DefaultMinSwipeDistance)

	// A move left over from a gesture that never ended
	tr.Begin(500)
	tr.Move(100)

	tr.Begin(300)
	assert.Equal(t, SwipeNone, tr.End())
}

func TestEndResetsSample(t *testing.T) {
	tr := NewTracker(DefaultMinSwipeDistance)
	assert.Equal(t, SwipeAdvance, swipe(tr, 500, 400))

	assert.False(t, tr.Active())
	assert.Equal(t, SwipeNone, tr.End())
}

func TestMoveWithoutBeginIgnored(t *testing.T) {
	tr := NewTracker(DefaultMinSwipeDistance)
	tr.Move(10)
	assert.False(t, tr.Active())
	assert.Equal(t, SwipeNone, tr.End())
}

func TestAbandon(t *testing.T) {
	tr := NewTracker(DefaultMinSwipeDistance)
	tr.Begin(500)
	tr.Move(300)
	tr.Abandon()

	assert.False(t, tr.Active())
	assert.Equal(t, SwipeNone, tr.End())
}

func TestCellThreshold(t *testing.T) {
	tr := NewTracker(6)

	assert.Equal(t, SwipeAdvance, swipe(tr, 40, 33))
	assert.Equal(t, SwipeNone, swipe(tr, 40, 34))
	assert.Equal(t, SwipeRetreat, swipe(tr, 0, 7))
}

func TestSwipeString(t *testing.T) {
	assert.Equal(t, "advance", SwipeAdvance.String())
	assert.Equal(t, "retreat", SwipeRetreat.String())
	assert.Equal(t, "none", SwipeNone.String())
}
