package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldUpdate(t *testing.T) {
	tr := New(5, 10)
	tr.Seed(1000)

	cases := []struct {
		grams int
		want  bool
	}{
		{1000, false},
		{1004, false},
		{1005, false}, // delta exactly at threshold is jitter
		{1006, true},
		{995, false},
		{994, true},
		{0, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, tr.ShouldUpdate(c.grams), "sample %d", c.grams)
	}
}

func TestUpdateIsUnguarded(t *testing.T) {
	tr := New(5, 10)
	tr.Seed(1000)

	// Update applies even when the delta is below the threshold; the guard
	// lives at the call site
	tr.Update(1002)
	assert.Equal(t, 1002, tr.Current())
}

func TestPotLifted(t *testing.T) {
	tr := New(5, 10)

	cases := []struct {
		grams int
		want  bool
	}{
		{0, true},
		{9, true},
		{10, true}, // boundary: exactly at the empty threshold counts as lifted
		{11, false},
		{2530, false},
	}
	for _, c := range cases {
		tr.Update(c.grams)
		assert.Equal(t, c.want, tr.PotLifted(), "weight %d", c.grams)
	}
}

func TestSeed(t *testing.T) {
	tr := New(5, 10)
	assert.Equal(t, 0, tr.Current())

	tr.Seed(2530)
	assert.Equal(t, 2530, tr.Current())
	assert.False(t, tr.ShouldUpdate(2528))
}
