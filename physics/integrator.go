// Package physics holds the per-variant update rules that advance particles one frame.
//
// Rules mutate a particle in place and draw random numbers only when a particle is
// (re)spawned, so motion between respawns is continuous.
package physics

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/particlefx/particle"
)

// Rand is the random source rules draw spawn attributes from
type Rand interface {
	Float64() float64
}

// NewRand returns a PCG source seeded from the wall clock
func NewRand() *rand.Rand {
	now := time.Now()
	return rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.UnixMicro())))
}

// NewSeededRand returns a reproducible source for tooling and tests
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Integrator is one variant's spawn and update rule pair
type Integrator interface {
	// Seed initializes slot i when the store is allocated
	Seed(p *particle.Particle, i int, b particle.Bounds, rng Rand)

	// Step advances p by dt frames, respawning it in place when it leaves its valid region
	Step(p *particle.Particle, dt float64, b particle.Bounds, ptr particle.Pointer, rng Rand)
}

// lerp maps t in [0, 1) onto [lo, hi)
func lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}

// signed maps t in [0, 1) onto [-1, 1)
func signed(t float64) float64 {
	return t*2 - 1
}
