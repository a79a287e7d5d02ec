package session

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/particlefx/config"
	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/preset"
	"github.com/lixenwraith/particlefx/render"
)

type bufferHost struct {
	buf     *render.CellBuffer
	resize  engine.Listeners[engine.Size]
	pointer engine.Listeners[engine.Point]
}

func newBufferHost(w, h int, f render.Flusher) *bufferHost {
	return &bufferHost{buf: render.NewCellBuffer(w, h, f)}
}

func (h *bufferHost) Surface() (render.Surface, bool)        { return h.buf, true }
func (h *bufferHost) OnResize(fn func(engine.Size)) func()   { return h.resize.Add(fn) }
func (h *bufferHost) OnPointer(fn func(engine.Point)) func() { return h.pointer.Add(fn) }

type failFlusher struct{ err error }

func (f failFlusher) Flush([]render.Cell, int, int) error { return f.err }

// recordPlayer counts speaker calls instead of opening a device
type recordPlayer struct {
	starts, stops int
	paused        bool
}

func (p *recordPlayer) Start(beep.SampleRate, beep.Streamer, float64) error {
	p.starts++
	return nil
}
func (p *recordPlayer) SetPaused(paused bool) error { p.paused = paused; return nil }
func (p *recordPlayer) Stop()                       { p.stops++ }
func (p *recordPlayer) Close()                      {}

func newSession(t *testing.T, f render.Flusher) (*Session, *engine.FrameClock) {
	t.Helper()
	file := config.Default()
	file.Count = 20
	clock := engine.NewFrameClock()
	s := New(file, newBufferHost(40, 20, f), clock, 0.5)
	t.Cleanup(s.Close)
	return s, clock
}

func pump(c *engine.FrameClock, n int) {
	now := time.Unix(0, 0)
	for i := 0; i < n; i++ {
		now = now.Add(time.Second / 30)
		c.Pump(now)
	}
}

func TestForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Action
	}{
		{'q', Action{Kind: KindQuit}},
		{' ', Action{Kind: KindPause}},
		{'H', Action{Kind: KindHUD}},
		{'1', Action{Kind: KindPreset, Preset: preset.Starfield}},
		{'4', Action{Kind: KindPreset, Preset: preset.Chiptune}},
		{'5', Action{}},
		{'0', Action{}},
		{'x', Action{}},
	}
	for _, tt := range tests {
		if got := ForRune(tt.r); got != tt.want {
			t.Errorf("ForRune(%q) = %+v, want %+v", tt.r, got, tt.want)
		}
	}
}

func TestSwitchReplacesLoop(t *testing.T) {
	s, clock := newSession(t, nil)
	if err := s.Switch(preset.Starfield); err != nil {
		t.Fatal(err)
	}
	first := s.Loop()
	pump(clock, 2)

	if err := s.Switch(preset.Spray); err != nil {
		t.Fatal(err)
	}
	if first.State() != engine.StateStopped {
		t.Errorf("previous loop state = %v", first.State())
	}
	if s.Name() != preset.Spray || s.Loop().Count() != 20 {
		t.Errorf("active = %s with %d", s.Name(), s.Loop().Count())
	}
	if clock.Pending() != 1 {
		t.Errorf("pending frames = %d, want only the new loop's", clock.Pending())
	}

	if err := s.Switch("aurora"); !errors.Is(err, preset.ErrUnknownPreset) {
		t.Errorf("err = %v", err)
	}
	if s.Name() != preset.Spray || s.Loop().State() != engine.StateRunning {
		t.Error("failed switch disturbed the active loop")
	}
}

func TestApply(t *testing.T) {
	s, clock := newSession(t, nil)
	if err := s.Switch(preset.Constellation); err != nil {
		t.Fatal(err)
	}

	if quit, _ := s.Apply(ForRune(' ')); quit || !s.Paused() {
		t.Fatal("pause not applied")
	}
	if s.Loop().State() != engine.StateStopped || clock.Pending() != 0 {
		t.Errorf("paused loop state = %v pending = %d", s.Loop().State(), clock.Pending())
	}
	s.Apply(ForRune(' '))
	if s.Paused() || s.Loop().State() != engine.StateRunning {
		t.Error("resume not applied")
	}

	visible := s.HUDVisible()
	s.Apply(ForRune('h'))
	if s.HUDVisible() == visible {
		t.Error("HUD toggle not applied")
	}

	before := s.Loop()
	if _, err := s.Apply(ForRune('2')); err != nil || s.Loop() != before {
		t.Error("selecting the active preset restarted it")
	}
	if _, err := s.Apply(ForRune('3')); err != nil || s.Name() != preset.Spray {
		t.Errorf("preset key: %v, active %s", err, s.Name())
	}

	if quit, _ := s.Apply(ForRune('q')); !quit {
		t.Error("quit not reported")
	}
}

func TestChiptuneWithoutSpeaker(t *testing.T) {
	s, clock := newSession(t, nil)
	if err := s.Switch(preset.Chiptune); err != nil {
		t.Fatal(err)
	}
	pump(clock, 3)
	if s.Loop().State() != engine.StateRunning {
		t.Fatalf("state = %v err = %v", s.Loop().State(), s.Loop().Err())
	}
	if s.player != nil {
		t.Error("speaker opened with audio disabled")
	}
}

func TestFailedSwitchKeepsChiptuneAudio(t *testing.T) {
	s, clock := newSession(t, nil)
	s.file.Audio = true
	rec := &recordPlayer{}
	s.newPlayer = func() player { return rec }

	if err := s.Switch(preset.Chiptune); err != nil {
		t.Fatal(err)
	}
	if rec.starts != 1 || rec.stops != 0 {
		t.Fatalf("after chiptune: starts=%d stops=%d", rec.starts, rec.stops)
	}

	if err := s.Switch("aurora"); !errors.Is(err, preset.ErrUnknownPreset) {
		t.Fatalf("err = %v", err)
	}
	if rec.stops != 0 || rec.starts != 1 {
		t.Errorf("failed switch touched audio: starts=%d stops=%d", rec.starts, rec.stops)
	}
	if s.Name() != preset.Chiptune {
		t.Errorf("active = %s", s.Name())
	}

	s.Apply(ForRune(' '))
	if !rec.paused {
		t.Error("pause not forwarded to audio")
	}
	s.Apply(ForRune(' '))

	if err := s.Switch(preset.Spray); err != nil {
		t.Fatal(err)
	}
	pump(clock, 1)
	if rec.stops != 1 || rec.starts != 1 {
		t.Errorf("after spray: starts=%d stops=%d", rec.starts, rec.stops)
	}
}

func TestHUDShowsMetrics(t *testing.T) {
	file := config.Default()
	file.Count = 5
	file.HUD = true
	clock := engine.NewFrameClock()
	host := newBufferHost(40, 10, nil)
	s := New(file, host, clock, 1)
	defer s.Close()

	if err := s.Switch(preset.Spray); err != nil {
		t.Fatal(err)
	}
	pump(clock, 2)

	want := "particlefx [spray]"
	for i, r := range want {
		if got := host.buf.At(i, 0).Rune; got != r {
			t.Fatalf("title cell %d = %q, want %q", i, got, r)
		}
	}
	if len(s.Metrics().Snapshot()) == 0 {
		t.Error("no metrics recorded")
	}
}

func TestLoopFailureReported(t *testing.T) {
	errGone := errors.New("gone")
	s, clock := newSession(t, failFlusher{errGone})
	if err := s.Switch(preset.Starfield); err != nil {
		t.Fatal(err)
	}
	pump(clock, 1)

	select {
	case err := <-s.Errors():
		if !errors.Is(err, errGone) {
			t.Errorf("err = %v", err)
		}
	default:
		t.Fatal("failure not reported")
	}
}
