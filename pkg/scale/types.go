package scale

import "time"

// Unavailable is the sentinel gram value returned when no reading could be
// acquired from the sensor transport
const Unavailable = -1

// Sample denotes a single weight reading at a certain point in time
type Sample struct {
	TimeStamp time.Time
	Grams     int
}

// Valid reports whether the sample carries an actual reading (as opposed to
// the Unavailable sentinel)
func (s Sample) Valid() bool {
	return s.Grams != Unavailable
}
