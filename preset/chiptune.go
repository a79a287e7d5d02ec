package preset

import (
	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/palette"
	"github.com/lixenwraith/particlefx/parameter"
	"github.com/lixenwraith/particlefx/physics"
	"github.com/lixenwraith/particlefx/projection"
	"github.com/lixenwraith/particlefx/render"
)

// ChiptuneOptions tunes the rising note field and its waveform overlay
type ChiptuneOptions struct {
	Count         int     `toml:"count"`
	RiseMin       float64 `toml:"rise_min"`
	RiseMax       float64 `toml:"rise_max"`
	LifeMin       float64 `toml:"life_min"`
	LifeMax       float64 `toml:"life_max"`
	WaveAmplitude float64 `toml:"wave_amplitude"`
	Trail         float64 `toml:"trail"`
	Palette       string  `toml:"palette"`

	// Audio voice, read by the binaries
	Wave    string `toml:"wave"`
	TempoMS int    `toml:"tempo_ms"`
	Volume  int    `toml:"volume"`
}

func DefaultChiptune() ChiptuneOptions {
	return ChiptuneOptions{
		Count:         parameter.ChiptuneCount,
		RiseMin:       parameter.ChiptuneRiseMin,
		RiseMax:       parameter.ChiptuneRiseMax,
		LifeMin:       parameter.ChiptuneLifeMin,
		LifeMax:       parameter.ChiptuneLifeMax,
		WaveAmplitude: parameter.ChiptuneWaveAmplitude,
		Trail:         parameter.ChiptuneTrail,
		Palette:       "pixel",
		Wave:          "square",
		TempoMS:       int(parameter.ChiptuneTempo.Milliseconds()),
		Volume:        int(parameter.ChiptuneVolume * 100),
	}
}

func buildChiptune(o Options) (engine.Config, error) {
	c := o.Chiptune
	pal, err := pick(o, c.Palette)
	if err != nil {
		return engine.Config{}, err
	}

	cfg := engine.Config{
		Count: c.Count,
		Integrator: physics.RiseFade{
			OriginX:   0.5,
			OriginY:   1,
			SpanX:     parameter.ChiptuneSpanX,
			SpreadY:   1,
			RiseMin:   c.RiseMin,
			RiseMax:   c.RiseMax,
			LifeMin:   c.LifeMin,
			LifeMax:   c.LifeMax,
			SizeMin:   0.5,
			SizeMax:   1,
			Palette:   pal,
			FadeFloor: parameter.ChiptuneFadeFloor,
		},
		Projector: projection.Identity{},
		Render: render.Options{
			Background: palette.Background,
			Trail:      c.Trail,
			Glyph:      parameter.ChiptuneNote,
			Fog:        true,
		},
	}
	if o.Samples != nil {
		cfg.Layers = append(cfg.Layers, engine.LayerSpec{
			Layer: &render.Waveform{
				Source:    o.Samples,
				Color:     pal.At(0.75),
				Alpha:     parameter.ChiptuneWaveAlpha,
				Amplitude: c.WaveAmplitude,
			},
			Priority: render.PriorityWaveform,
		})
	}
	return cfg, nil
}
