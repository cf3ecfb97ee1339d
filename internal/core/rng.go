package core

import "math/rand/v2"

// RNG draws the wire states of a scrambled reset. Equal seeds give equal
// sequences.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a PCG source with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool draws one fair coin flip.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}
