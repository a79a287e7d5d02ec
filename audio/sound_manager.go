package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/particlefx/parameter"
)

// Player owns the speaker for the chiptune preset
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
}

// NewPlayer creates an idle player
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Start initializes the speaker and plays s at the given linear volume
// A WaveSource is attached so the waveform follows what is heard
func (p *Player) Start(rate beep.SampleRate, s beep.Streamer, volume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
			return fmt.Errorf("speaker init: %w", err)
		}
		speaker.Play(p.mixer)
		p.initialized = true
	}

	if ws, ok := s.(*WaveSource); ok {
		ws.Attach()
	}

	speaker.Lock()
	if p.ctrl != nil {
		p.ctrl.Streamer = nil
	}
	p.ctrl = &beep.Ctrl{Streamer: newVolume(s, volume)}
	p.mixer.Add(p.ctrl)
	speaker.Unlock()
	return nil
}

// SetPaused pauses or resumes playback
func (p *Player) SetPaused(paused bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return ErrNotPlaying
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
	return nil
}

// Stop silences the current stream but keeps the speaker open
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Streamer = nil
	speaker.Unlock()
	p.ctrl = nil
}

// Close stops all sounds and closes the audio system
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ctrl = nil
	p.initialized = false
}
