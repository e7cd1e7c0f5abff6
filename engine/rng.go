package engine

import "math/rand"

// RNG wraps math/rand.Rand with a fixed seed so a session is reproducible
// when the seed is known. Damage rolls are the only non-determinism in the
// engine.
type RNG struct {
	src *rand.Rand
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Between returns a uniformly random integer in [min, max], inclusive on
// both ends. min must be <= max.
func (r *RNG) Between(min, max int) int {
	return r.src.Intn(max-min+1) + min
}
