// Package config loads the demo settings: built-in defaults, then a TOML file,
// then environment variables. Command-line flags are applied by the binaries last.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/particlefx/audio"
	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/palette"
	"github.com/lixenwraith/particlefx/parameter"
	"github.com/lixenwraith/particlefx/preset"
)

// Sentinel errors
var (
	ErrUnknownPreset = preset.ErrUnknownPreset
	ErrUnknownKey    = errors.New("unknown config key")
	ErrInvalidValue  = errors.New("invalid config value")
)

// PointerFile is the [pointer] table
type PointerFile struct {
	Smoothing bool    `toml:"smoothing"`
	Frequency float64 `toml:"frequency"`
	Damping   float64 `toml:"damping"`
}

// File is the on-disk configuration
type File struct {
	Preset    string   `toml:"preset"`
	Count     int      `toml:"count"`
	FrameRate int      `toml:"frame_rate"`
	Trail     float64  `toml:"trail"`
	Glow      bool     `toml:"glow"`
	Palette   string   `toml:"palette"`
	Colors    []string `toml:"colors"`
	HUD       bool     `toml:"hud"`
	Audio     bool     `toml:"audio"`

	Starfield     preset.StarfieldOptions     `toml:"starfield"`
	Constellation preset.ConstellationOptions `toml:"constellation"`
	Spray         preset.SprayOptions         `toml:"spray"`
	Chiptune      preset.ChiptuneOptions      `toml:"chiptune"`
	Pointer       PointerFile                 `toml:"pointer"`
}

// Default returns the built-in configuration
func Default() File {
	d := preset.Defaults()
	return File{
		Preset:        preset.Starfield,
		FrameRate:     parameter.DefaultFrameRate,
		Glow:          d.Glow,
		HUD:           parameter.DefaultHUD,
		Starfield:     d.Starfield,
		Constellation: d.Constellation,
		Spray:         d.Spray,
		Chiptune:      d.Chiptune,
		Pointer: PointerFile{
			Frequency: parameter.PointerSmoothingFrequency,
			Damping:   parameter.PointerSmoothingDamping,
		},
	}
}

// Load decodes path over the defaults; an empty path returns the defaults
// Keys the File does not declare are rejected so typos do not pass silently
func Load(path string) (File, error) {
	f := Default()
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return f, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return f, fmt.Errorf("%w in %s: %s", ErrUnknownKey, filepath.Base(path), strings.Join(keys, ", "))
	}

	if err := f.Validate(); err != nil {
		return f, err
	}
	return f, nil
}

// Save writes f as TOML, creating parent directories
func Save(path string, f File) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(out).Encode(f); err != nil {
		out.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return out.Close()
}

// Validate checks the settings a File can get wrong
func (f *File) Validate() error {
	if !knownPreset(f.Preset) {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, f.Preset)
	}
	if f.Count < 0 || f.Count > parameter.MaxParticles {
		return fmt.Errorf("%w: count %d outside [0, %d]", ErrInvalidValue, f.Count, parameter.MaxParticles)
	}
	if f.FrameRate < 1 || f.FrameRate > parameter.MaxFrameRate {
		return fmt.Errorf("%w: frame_rate %d outside [1, %d]", ErrInvalidValue, f.FrameRate, parameter.MaxFrameRate)
	}
	if f.Trail < 0 || f.Trail > 1 {
		return fmt.Errorf("%w: trail %v outside [0, 1]", ErrInvalidValue, f.Trail)
	}
	variants := []struct {
		table string
		count int
	}{
		{preset.Starfield, f.Starfield.Count},
		{preset.Constellation, f.Constellation.Count},
		{preset.Spray, f.Spray.Count},
		{preset.Chiptune, f.Chiptune.Count},
	}
	for _, v := range variants {
		if v.count < 0 || v.count > parameter.MaxParticles {
			return fmt.Errorf("%w: [%s] count %d outside [0, %d]", ErrInvalidValue, v.table, v.count, parameter.MaxParticles)
		}
	}
	if !(f.Starfield.Depth > 0) {
		return fmt.Errorf("%w: [starfield] depth %v must be > 0", ErrInvalidValue, f.Starfield.Depth)
	}
	return nil
}

func knownPreset(name string) bool {
	for _, n := range preset.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Options resolves palettes and global overrides into preset tuning
func (f *File) Options() (preset.Options, error) {
	o := preset.Defaults()
	o.Count = f.Count
	o.Glow = f.Glow
	o.Starfield = f.Starfield
	o.Constellation = f.Constellation
	o.Spray = f.Spray
	o.Chiptune = f.Chiptune

	if f.Trail > 0 {
		o.Starfield.Trail = f.Trail
		o.Constellation.Trail = f.Trail
		o.Spray.Trail = f.Trail
		o.Chiptune.Trail = f.Trail
	}

	if f.Palette != "" || len(f.Colors) > 0 {
		pal, err := palette.Resolve(f.Palette, f.Colors)
		if err != nil {
			return o, err
		}
		o.Palette = pal
	}

	o.Pointer = engine.Smoothing{
		Enabled:   f.Pointer.Smoothing,
		FrameRate: f.FrameRate,
		Frequency: f.Pointer.Frequency,
		Damping:   f.Pointer.Damping,
	}
	return o, nil
}

// AudioConfig builds the chiptune voice from the [chiptune] table and the audio switch
// PARTICLEFX_VOLUME, PARTICLEFX_WAVE and PARTICLEFX_SAMPLE_RATE apply on top
func (f *File) AudioConfig() (audio.Config, error) {
	c := audio.DefaultConfig()
	c.Enabled = f.Audio

	if f.Chiptune.Wave != "" {
		w, err := audio.ParseWave(f.Chiptune.Wave)
		if err != nil {
			return c, err
		}
		c.Wave = w
	}
	if f.Chiptune.TempoMS > 0 {
		c.Tempo = time.Duration(f.Chiptune.TempoMS) * time.Millisecond
	}
	c.Volume = min(max(float64(f.Chiptune.Volume)/100, 0), 1)

	c.ApplyEnv()
	return c, nil
}
