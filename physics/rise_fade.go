package physics

import (
	"math"

	"github.com/lixenwraith/particlefx/palette"
	"github.com/lixenwraith/particlefx/particle"
)

// RiseFade emits particles from an origin region; they rise and fade over their lifetime
// Covers both rising note emitters and radial spray bursts
type RiseFade struct {
	// Origin as a fraction of the surface size
	OriginX float64
	OriginY float64

	// Spawn jitter half-extent in surface units
	SpreadX float64
	SpreadY float64

	// Additional jitter half-extent as a fraction of the surface size
	SpanX float64
	SpanY float64

	// Upward speed range
	RiseMin float64
	RiseMax float64

	// Maximum random horizontal drift
	DriftX float64

	// Maximum burst speed over the upper half-circle, zero for a pure rise
	Burst float64

	// Lifetime range in frames
	LifeMin float64
	LifeMax float64

	SizeMin float64
	SizeMax float64
	Palette palette.Palette

	// Opacity at or below which a particle is recycled
	FadeFloor float64

	// Emit from the pointer position while the pointer is active
	FollowPointer bool
}

// Seed respawns and staggers ages so the initial population does not fade in lockstep
func (r RiseFade) Seed(p *particle.Particle, i int, b particle.Bounds, rng Rand) {
	r.respawn(p, b, particle.Pointer{}, rng)
	p.Age = rng.Float64() * p.Life
}

// Step moves a particle up by Speed plus its upward burst and recycles it at the fade floor or an edge
func (r RiseFade) Step(p *particle.Particle, dt float64, b particle.Bounds, ptr particle.Pointer, rng Rand) {
	p.X += p.VX * dt
	p.Y += (p.VY - p.Speed) * dt
	p.Age += dt

	if p.Fade() <= r.FadeFloor || !Inside(p.X, p.Y, b.Width, b.Height) {
		r.respawn(p, b, ptr, rng)
	}
}

func (r RiseFade) respawn(p *particle.Particle, b particle.Bounds, ptr particle.Pointer, rng Rand) {
	ox, oy := r.OriginX*b.Width, r.OriginY*b.Height
	if r.FollowPointer && ptr.Active {
		ox, oy = ptr.X, ptr.Y
	}

	sx := r.SpreadX + r.SpanX*b.Width
	sy := r.SpreadY + r.SpanY*b.Height
	p.X = ClampInto(ox+signed(rng.Float64())*sx, b.Width)
	p.Y = ClampInto(oy+signed(rng.Float64())*sy, b.Height)

	angle := rng.Float64() * 2 * math.Pi
	burst := rng.Float64() * r.Burst
	p.VX = signed(rng.Float64())*r.DriftX + math.Cos(angle)*burst
	p.VY = -math.Abs(math.Sin(angle)) * burst

	p.Speed = lerp(r.RiseMin, r.RiseMax, rng.Float64())
	p.Life = math.Max(1, lerp(r.LifeMin, r.LifeMax, rng.Float64()))
	p.Age = 0
	p.Size = lerp(r.SizeMin, r.SizeMax, rng.Float64())
	p.Color = r.Palette.At(rng.Float64())
	p.Phase = rng.Float64()
}
