// Package session runs one engine loop at a time for a binary and applies
// user commands to it: preset switching, pause, the HUD and chiptune audio.
package session

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/particlefx/audio"
	"github.com/lixenwraith/particlefx/config"
	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/palette"
	"github.com/lixenwraith/particlefx/parameter"
	"github.com/lixenwraith/particlefx/preset"
	"github.com/lixenwraith/particlefx/render"
	"github.com/lixenwraith/particlefx/status"
)

// player is the speaker side of chiptune playback
type player interface {
	Start(rate beep.SampleRate, s beep.Streamer, volume float64) error
	SetPaused(paused bool) error
	Stop()
	Close()
}

// Session owns the active loop and everything shared across preset switches
type Session struct {
	file    config.File
	host    engine.Host
	sched   engine.Scheduler
	aspectY float64

	metrics *status.Registry
	hud     *render.HUD
	errs    chan error

	player    player
	newPlayer func() player

	mu     sync.Mutex
	loop   *engine.Loop
	name   string
	paused bool
}

// New prepares a session; aspectY is the host's vertical correction
func New(f config.File, host engine.Host, sched engine.Scheduler, aspectY float64) *Session {
	metrics := status.NewRegistry()
	s := &Session{
		file:    f,
		host:    host,
		sched:   sched,
		aspectY: aspectY,
		metrics: metrics,
		hud:     &render.HUD{Registry: metrics, Color: palette.White},
		errs:    make(chan error, 1),
		newPlayer: func() player {
			return audio.NewPlayer()
		},
	}
	if !f.HUD {
		s.hud.Toggle()
	}
	return s
}

// Errors delivers loop failures; the loop is already stopped when one arrives
func (s *Session) Errors() <-chan error {
	return s.errs
}

// Metrics returns the registry shared by every loop of the session
func (s *Session) Metrics() *status.Registry {
	return s.metrics
}

// Loop returns the active loop, nil before Switch
func (s *Session) Loop() *engine.Loop {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loop
}

// Name returns the active preset
func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// HUDVisible reports whether the metrics overlay is shown
func (s *Session) HUDVisible() bool {
	return s.hud.IsVisible()
}

// Switch stops the active loop and starts the named preset
func (s *Session) Switch(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.file.Options()
	if err != nil {
		return err
	}
	o.AspectY = s.aspectY
	o.Metrics = s.metrics
	o.OnError = s.report
	o.Layers = append(o.Layers, engine.LayerSpec{Layer: s.hud, Priority: render.PriorityUI})

	var (
		src  *audio.WaveSource
		acfg audio.Config
	)
	if name == preset.Chiptune {
		if src, acfg, err = s.chiptune(); err != nil {
			return err
		}
		o.Samples = src
	}

	// The running preset and its audio stay untouched until the new one builds
	cfg, err := preset.Build(name, o)
	if err != nil {
		return err
	}

	if s.player != nil {
		s.player.Stop()
	}
	if src != nil && acfg.Enabled {
		s.play(src, acfg)
	}
	if s.loop != nil {
		s.loop.Stop()
	}
	s.hud.Title = fmt.Sprintf("%s [%s]", parameter.AppName, name)
	loop, err := engine.Start(s.host, cfg, s.sched)
	if err != nil {
		return err
	}
	s.loop = loop
	s.name = name
	s.paused = false

	log.Printf("session: started %s with %d particles (state %s)", name, loop.Count(), loop.State())
	return nil
}

// chiptune builds the audio stream and its waveform tap without starting playback
func (s *Session) chiptune() (*audio.WaveSource, audio.Config, error) {
	acfg, err := s.file.AudioConfig()
	if err != nil {
		return nil, acfg, err
	}
	stream, err := audio.Chiptune(acfg)
	if err != nil {
		return nil, acfg, err
	}
	rate := beep.SampleRate(acfg.SampleRate)
	return audio.NewWaveSource(stream, rate, s.file.FrameRate, parameter.AudioWindowSamples), acfg, nil
}

// play sends src to the speaker
// Playback failure leaves the waveform running on pulled samples
func (s *Session) play(src *audio.WaveSource, acfg audio.Config) {
	if s.player == nil {
		s.player = s.newPlayer()
	}
	if err := s.player.Start(beep.SampleRate(acfg.SampleRate), src, acfg.Volume); err != nil {
		log.Printf("session: audio unavailable, waveform only: %v", err)
	}
}

func (s *Session) report(err error) {
	log.Printf("session: loop stopped: %v", err)
	select {
	case s.errs <- err:
	default:
	}
}

// Apply executes a user command; quit reports whether the binary should exit
func (s *Session) Apply(a Action) (quit bool, err error) {
	switch a.Kind {
	case KindQuit:
		return true, nil
	case KindPause:
		s.togglePause()
	case KindHUD:
		s.hud.Toggle()
	case KindPreset:
		if a.Preset == s.Name() {
			return false, nil
		}
		return false, s.Switch(a.Preset)
	}
	return false, nil
}

func (s *Session) togglePause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loop == nil {
		return
	}

	if s.paused {
		s.loop.Resume()
	} else {
		s.loop.Pause()
	}
	s.paused = !s.paused

	if s.player != nil {
		if err := s.player.SetPaused(s.paused); err != nil && !errors.Is(err, audio.ErrNotPlaying) {
			log.Printf("session: audio pause: %v", err)
		}
	}
}

// Paused reports whether the user paused the loop
func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Close stops the loop and releases the speaker
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loop != nil {
		s.loop.Stop()
	}
	if s.player != nil {
		s.player.Close()
	}
}
