package physics

import (
	"math"

	"github.com/lixenwraith/particlefx/palette"
	"github.com/lixenwraith/particlefx/particle"
)

// WrapDrift moves particles at constant velocity across a toroidal surface
type WrapDrift struct {
	SpeedMin float64
	SpeedMax float64
	SizeMin  float64
	SizeMax  float64
	Palette  palette.Palette

	// Pointer repulsion, disabled when RepelRadius is zero
	RepelRadius   float64
	RepelStrength float64
}

func (r WrapDrift) Seed(p *particle.Particle, i int, b particle.Bounds, rng Rand) {
	p.X = rng.Float64() * b.Width
	p.Y = rng.Float64() * b.Height
	angle := rng.Float64() * 2 * math.Pi
	speed := lerp(r.SpeedMin, r.SpeedMax, rng.Float64())
	p.VX = math.Cos(angle) * speed
	p.VY = math.Sin(angle) * speed
	p.Size = lerp(r.SizeMin, r.SizeMax, rng.Float64())
	p.Color = r.Palette.Pick(i)
	p.Phase = rng.Float64()
}

func (r WrapDrift) Step(p *particle.Particle, dt float64, b particle.Bounds, ptr particle.Pointer, rng Rand) {
	p.X += p.VX * dt
	p.Y += p.VY * dt

	if ptr.Active && r.RepelRadius > 0 {
		r.repel(p, ptr)
	}

	p.X = Wrap(p.X, b.Width)
	p.Y = Wrap(p.Y, b.Height)
}

// repel displaces p radially away from the pointer, strongest at the pointer
func (r WrapDrift) repel(p *particle.Particle, ptr particle.Pointer) {
	dx := p.X - ptr.X
	dy := p.Y - ptr.Y
	d := math.Hypot(dx, dy)
	if d == 0 || d >= r.RepelRadius {
		return
	}
	push := r.RepelStrength * (1 - d/r.RepelRadius)
	p.X += dx / d * push
	p.Y += dy / d * push
}
