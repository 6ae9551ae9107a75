// Package capacity maps a measured pot weight to the number of servings the
// pot still contains, based on a fixed table of gram breakpoints.
package capacity

import "fmt"

// Table denotes an ascending sequence of gram breakpoints, each representing
// one more serving contained in the vessel. Loaded once at startup and
// immutable thereafter
type Table struct {
	Breakpoints     []int
	ServingCapacity int
	Margin          int
}

// Validate checks the table for structural sanity: at least one breakpoint,
// strictly ascending order and a positive per-serving capacity
func (t Table) Validate() error {
	if len(t.Breakpoints) == 0 {
		return fmt.Errorf("capacity table has no breakpoints")
	}
	if t.ServingCapacity <= 0 {
		return fmt.Errorf("invalid per-serving capacity: %d", t.ServingCapacity)
	}
	for i := 1; i < len(t.Breakpoints); i++ {
		if t.Breakpoints[i] <= t.Breakpoints[i-1] {
			return fmt.Errorf("breakpoints not strictly ascending at index %d: %d <= %d",
				i, t.Breakpoints[i], t.Breakpoints[i-1])
		}
	}

	return nil
}

// Total returns the number of servings a full vessel contains
func (t Table) Total() int {
	return len(t.Breakpoints)
}

// MaxWeight returns the gram weight of a full vessel
func (t Table) MaxWeight() int {
	if len(t.Breakpoints) == 0 {
		return 0
	}
	return t.Breakpoints[len(t.Breakpoints)-1]
}

// Servings returns the number of servings still available at the given
// weight. A breakpoint counts as available while the weight exceeds the
// breakpoint minus a tenth of the serving capacity minus the fixed margin
// (slack for partially drained servings); counting stops at the first
// breakpoint that fails
func (t Table) Servings(weight int) int {

	available := 0
	for _, breakpoint := range t.Breakpoints {
		minimum := float64(breakpoint) - float64(t.ServingCapacity)*0.1 - float64(t.Margin)
		if float64(weight) <= minimum {
			break
		}
		available++
	}

	return available
}
