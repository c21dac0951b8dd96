package sim

import (
	"fmt"
	"math"
	"math/rand"

	"edpulse/internal/domain"
)

// Variates wraps a seeded random source and exposes the draw primitives the
// simulator needs. A Variates instance is not safe for concurrent use; the
// runner gives every user simulation its own substream (see UserSeed) so
// draws never cross goroutines.
type Variates struct {
	rng *rand.Rand
}

// NewVariates constructs a provider over an isolated stream seeded with seed.
func NewVariates(seed int64) *Variates {
	return &Variates{rng: rand.New(rand.NewSource(seed))}
}

// UserSeed derives the substream seed for one user from the master seed.
// The mix constant keeps adjacent user indexes from producing correlated
// low-bit sequences while staying a pure function of (master, index), so a
// run is reproducible regardless of worker scheduling.
func UserSeed(master int64, index int) int64 {
	const mix uint64 = 0x9e3779b97f4a7c15
	return master + int64(uint64(index+1)*mix)
}

// Uniform returns a draw in [0,1).
func (v *Variates) Uniform() float64 {
	return v.rng.Float64()
}

// Bernoulli returns true with probability p.
func (v *Variates) Bernoulli(p float64) bool {
	return v.rng.Float64() < p
}

// IntBetween returns a uniform integer in [lo, hi). hi must exceed lo.
func (v *Variates) IntBetween(lo, hi int) int {
	return lo + v.rng.Intn(hi-lo)
}

// Categorical draws an index distributed by the given weights. Weights need
// not be normalized but must be non-negative and sum to a positive value.
func (v *Variates) Categorical(weights []float64) (int, error) {
	var total float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return 0, fmt.Errorf("weight %d is %v: %w", i, w, domain.ErrInvalidDistribution)
		}
		total += w
	}
	if total <= 0 {
		return 0, fmt.Errorf("weights sum to %v: %w", total, domain.ErrInvalidDistribution)
	}

	r := v.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i, nil
		}
	}
	// Float round-off can leave r at exactly 0 after the last subtraction.
	return len(weights) - 1, nil
}

// Poisson draws a non-negative integer with the given mean using Knuth's
// product-of-uniforms method. Fine for the small means the simulator uses.
func (v *Variates) Poisson(mean float64) int {
	if mean <= 0 {
		return 0
	}
	limit := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		p *= v.rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

// Normal draws from N(mean, stddev).
func (v *Variates) Normal(mean, stddev float64) float64 {
	return v.rng.NormFloat64()*stddev + mean
}
