// Package preset turns a variant name and tuning into a ready engine configuration.
package preset

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/palette"
	"github.com/lixenwraith/particlefx/physics"
	"github.com/lixenwraith/particlefx/render"
	"github.com/lixenwraith/particlefx/status"
)

// ErrUnknownPreset is returned for a variant name Build does not know
var ErrUnknownPreset = errors.New("unknown preset")

// Variant names
const (
	Starfield     = "starfield"
	Constellation = "constellation"
	Spray         = "spray"
	Chiptune      = "chiptune"
)

// Names lists the variants in key-binding order
func Names() []string {
	return []string{Starfield, Constellation, Spray, Chiptune}
}

// Options is the complete tuning for every variant plus host-level settings
type Options struct {
	// Count overrides the variant's particle count when > 0
	Count int

	// Palette overrides the variant's palette when non-empty
	Palette palette.Palette

	Glow bool

	// AspectY corrects vertical perspective on hosts with tall cells
	AspectY float64

	Pointer engine.Smoothing

	Starfield     StarfieldOptions
	Constellation ConstellationOptions
	Spray         SprayOptions
	Chiptune      ChiptuneOptions

	// Samples feeds the chiptune waveform layer; nil omits it
	Samples render.SampleSource

	// Layers are mounted on every variant, e.g. the HUD
	Layers []engine.LayerSpec

	Metrics *status.Registry
	Rand    physics.Rand
	OnError func(error)
}

// Defaults returns every variant at its built-in tuning
func Defaults() Options {
	return Options{
		Glow:          true,
		AspectY:       1,
		Starfield:     DefaultStarfield(),
		Constellation: DefaultConstellation(),
		Spray:         DefaultSpray(),
		Chiptune:      DefaultChiptune(),
	}
}

// Build assembles the engine configuration for the named variant
func Build(name string, o Options) (engine.Config, error) {
	var (
		cfg engine.Config
		err error
	)
	switch name {
	case Starfield:
		cfg, err = buildStarfield(o)
	case Constellation:
		cfg, err = buildConstellation(o)
	case Spray:
		cfg, err = buildSpray(o)
	case Chiptune:
		cfg, err = buildChiptune(o)
	default:
		return engine.Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	if err != nil {
		return engine.Config{}, fmt.Errorf("preset %s: %w", name, err)
	}

	cfg.Name = name
	if o.Count > 0 {
		cfg.Count = o.Count
	}
	cfg.Layers = append(cfg.Layers, o.Layers...)
	cfg.Pointer = o.Pointer
	cfg.Metrics = o.Metrics
	cfg.Rand = o.Rand
	cfg.OnError = o.OnError
	return cfg, nil
}

// pick returns the override palette, else the named theme
func pick(o Options, theme string) (palette.Palette, error) {
	if len(o.Palette) > 0 {
		return o.Palette, nil
	}
	return palette.Resolve(theme, nil)
}
