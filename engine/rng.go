package engine

import (
	"math/rand"

	"github.com/nathoo/dirquest/location"
)

// Randomizer is the source of every probabilistic decision in the engine:
// encounter rolls, level jitter, and uniform choices. Implementations must
// not block and must hold no state beyond an internal seed, so tests can
// substitute a deterministic stub.
type Randomizer interface {
	// ShouldEnemyAppear rolls for an encounter. The success probability is
	// monotonically non-decreasing in distance.
	ShouldEnemyAppear(d location.Distance) bool

	// EnemyLevel applies bounded jitter around a base level, never
	// returning less than 1.
	EnemyLevel(base int) int

	// Range returns a uniform integer in [0, n).
	Range(n int) int
}

// RNG is the default seeded Randomizer. It tracks its call position so a
// save can reproduce the exact stream on restore.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// appearChance returns the encounter probability at distance d as a ratio
// num/den: (min(steps,9)+1)/12. Farther from home means more frequent
// encounters, capped so they never become certain.
func appearChance(d location.Distance) (num, den int) {
	steps := d.Len()
	if steps > 9 {
		steps = 9
	}
	return steps + 1, 12
}

// ShouldEnemyAppear rolls the distance-scaled encounter chance.
func (r *RNG) ShouldEnemyAppear(d location.Distance) bool {
	num, den := appearChance(d)
	return r.Range(den) < num
}

// EnemyLevel jitters the base level by ±1, floored at 1.
func (r *RNG) EnemyLevel(base int) int {
	level := base + r.Range(3) - 1
	if level < 1 {
		level = 1
	}
	return level
}

// Range returns a uniform integer in [0, n). n < 1 yields 0.
func (r *RNG) Range(n int) int {
	r.pos++
	if n < 1 {
		return 0
	}
	return r.src.Intn(n)
}

// Seed returns the seed this RNG was created from.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// RestoreRNG recreates an RNG from a seed and advances it to the saved
// position, reproducing the exact stream for save/load.
func RestoreRNG(seed, position int64) *RNG {
	rng := NewRNG(seed)
	for i := int64(0); i < position; i++ {
		rng.src.Int63()
	}
	rng.pos = position
	return rng
}
