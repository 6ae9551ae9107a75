// Package schedule provides the two gates pacing the poll loop: a tick-count
// cadence for heartbeat notifications and a wall-clock deadline for log
// archival.
package schedule

import "time"

// Cadence denotes a loop-count gate: every Nth Tick fires and resets the
// counter, independent of whether anything changed in between
type Cadence struct {
	every int
	count int
}

// NewCadence instantiates a new Cadence firing every given number of ticks
func NewCadence(every int) *Cadence {
	return &Cadence{
		every: every,
	}
}

// Tick advances the counter and reports whether the gate fired; firing
// resets the counter to zero
func (c *Cadence) Tick() bool {
	c.count++
	if c.count >= c.every {
		c.count = 0
		return true
	}

	return false
}

// Deadline denotes a recurring wall-clock gate. It is not a precise timer:
// drift of up to one poll tick is expected and acceptable
type Deadline struct {
	interval time.Duration
	next     time.Time
}

// NewDeadline instantiates a new Deadline, scheduling the first trigger one
// interval from now
func NewDeadline(interval time.Duration, now time.Time) *Deadline {
	return &Deadline{
		interval: interval,
		next:     now.Add(interval),
	}
}

// Due reports whether the deadline has passed, rescheduling the next trigger
// relative to now when it has
func (d *Deadline) Due(now time.Time) bool {
	if now.After(d.next) {
		d.next = now.Add(d.interval)
		return true
	}

	return false
}

// Next returns the upcoming trigger time
func (d *Deadline) Next() time.Time {
	return d.next
}
