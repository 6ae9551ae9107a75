// Package tracker holds the smoothed current weight of the monitored vessel
// and classifies incoming samples against it.
package tracker

// Tracker denotes the debounced weight state of the vessel. It has exactly
// one writer, the poll loop
type Tracker struct {
	current         int
	changeThreshold int
	emptyThreshold  int
}

// New instantiates a new Tracker with the given thresholds
func New(changeThreshold, emptyThreshold int) *Tracker {
	return &Tracker{
		changeThreshold: changeThreshold,
		emptyThreshold:  emptyThreshold,
	}
}

// Seed sets the baseline weight prior to the first classification, so the
// first delta check runs against a real reading instead of zero
func (t *Tracker) Seed(grams int) {
	t.current = grams
}

// ShouldUpdate reports whether the sample differs from the held weight by
// more than the change threshold. A delta exactly at the threshold counts as
// scale jitter, not as a change
func (t *Tracker) ShouldUpdate(grams int) bool {
	delta := t.current - grams
	if delta < 0 {
		delta = -delta
	}

	return delta > t.changeThreshold
}

// Update unconditionally overwrites the held weight. Callers are expected to
// consult ShouldUpdate first; the guard lives at the call site so that
// logging and state mutation stay atomic with respect to each other
func (t *Tracker) Update(grams int) {
	t.current = grams
}

// Current returns the held weight
func (t *Tracker) Current() int {
	return t.current
}

// PotLifted reports whether the held weight is at or below the empty
// threshold, i.e. the pot has been taken off the scale. The threshold sits
// above zero to tolerate residual scale offset
func (t *Tracker) PotLifted() bool {
	return t.current <= t.emptyThreshold
}
