package game

import "time"

// RoundTimer counts a round down in whole seconds from accumulated frame time.
type RoundTimer struct {
	timeLeft int
	accum    time.Duration
}

// NewRoundTimer creates a timer holding seconds.
func NewRoundTimer(seconds int) *RoundTimer {
	return &RoundTimer{timeLeft: seconds}
}

// Reset refills the timer and drops any partial second.
func (t *RoundTimer) Reset(seconds int) {
	t.timeLeft = seconds
	t.accum = 0
}

// Set overrides the remaining seconds, keeping the partial second.
func (t *RoundTimer) Set(seconds int) {
	t.timeLeft = max(seconds, 0)
}

// Advance accumulates dt while running and returns how many seconds elapsed.
func (t *RoundTimer) Advance(dt time.Duration, running bool) int {
	if !running || dt <= 0 {
		return 0
	}
	t.accum += dt
	ticked := 0
	for t.accum >= time.Second && t.timeLeft > 0 {
		t.accum -= time.Second
		t.timeLeft--
		ticked++
	}
	return ticked
}

// TimeLeft returns the whole seconds remaining.
func (t *RoundTimer) TimeLeft() int {
	return t.timeLeft
}

// Expired reports whether the countdown reached zero.
func (t *RoundTimer) Expired() bool {
	return t.timeLeft <= 0
}
