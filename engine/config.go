package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/particlefx/physics"
	"github.com/lixenwraith/particlefx/projection"
	"github.com/lixenwraith/particlefx/render"
	"github.com/lixenwraith/particlefx/spatial"
	"github.com/lixenwraith/particlefx/status"
)

// Configuration errors returned by Start before any frame is scheduled
var (
	ErrInvalidCount      = errors.New("particle count must be >= 0")
	ErrMissingIntegrator = errors.New("integrator rule is required")
	ErrMissingProjector  = errors.New("projection rule is required")
	ErrInvalidThreshold  = errors.New("neighbor threshold must be > 0")
	ErrInvalidDepth      = errors.New("depth must be > 0 for depth rules")
	ErrNilScheduler      = errors.New("scheduler is required")
)

// LayerSpec mounts an overlay at a render priority
type LayerSpec struct {
	Layer    render.Layer
	Priority render.Priority
}

// Config selects one variant's rules and appearance
type Config struct {
	Name  string
	Count int

	// Depth is the maximum depth for 3D rules; zero for 2D
	Depth float64

	Integrator physics.Integrator
	Projector  projection.Projector

	// Neighbors enables the edge pass when non-nil
	Neighbors         spatial.Finder
	NeighborThreshold float64

	Render render.Options
	Layers []LayerSpec

	Pointer Smoothing

	// Rand defaults to a time-seeded source
	Rand physics.Rand

	// Metrics defaults to a private registry
	Metrics *status.Registry

	// OnError is invoked once, outside the loop lock, when a frame fails to present
	OnError func(error)
}

// Validate reports the first configuration error
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, c.Count)
	}
	if c.Integrator == nil {
		return ErrMissingIntegrator
	}
	if c.Projector == nil {
		return ErrMissingProjector
	}
	if c.Neighbors != nil && !(c.NeighborThreshold > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, c.NeighborThreshold)
	}
	if c.usesDepth() && !(c.Depth > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDepth, c.Depth)
	}
	return nil
}

// usesDepth reports whether the rules respawn at or divide by Depth
func (c *Config) usesDepth() bool {
	switch c.Integrator.(type) {
	case physics.DepthDrift, *physics.DepthDrift:
		return true
	}
	switch c.Projector.(type) {
	case projection.Perspective, *projection.Perspective:
		return true
	}
	return false
}
