package aquarium

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Random is the seedable stream an aquarium draws fish speeds from.
type Random struct {
	pcg *rand.PCG
}

// NewRandom returns a stream seeded with seed.
func NewRandom(seed uint64) *Random {
	r := &Random{pcg: rand.NewPCG(0, 0)}
	r.Seed(seed)
	return r
}

// Seed restarts the stream. Two streams with the same seed produce the same values.
func (r *Random) Seed(seed uint64) {
	r.pcg.Seed(seed, seed^0x9e3779b97f4a7c15)
}

// Uniform draws from the uniform distribution over [min, max].
func (r *Random) Uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: r.pcg}.Rand()
}
