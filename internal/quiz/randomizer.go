package quiz

import "math/rand/v2"

// Randomizer produces the display order of answer options. Two randomizers
// built from the same seed produce the same sequence of permutations.
type Randomizer struct {
	rng *rand.Rand
}

// NewRandomizer creates a Randomizer seeded with seed.
func NewRandomizer(seed uint64) *Randomizer {
	return &Randomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Perm returns a uniformly random permutation of [0, n) using the
// Fisher–Yates shuffle. Perm(0) returns an empty slice.
func (z *Randomizer) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := z.rng.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
