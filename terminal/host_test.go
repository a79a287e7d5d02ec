package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/preset"
	"github.com/lixenwraith/particlefx/render"
)

func newSimHost(t *testing.T, w, h int) (*Host, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	host := NewHost(s)
	t.Cleanup(host.Close)
	return host, s
}

func TestSurfaceMatchesScreen(t *testing.T) {
	host, _ := newSimHost(t, 20, 8)
	s, ok := host.Surface()
	if !ok {
		t.Fatal("surface unavailable")
	}
	if w, h := s.Size(); w != 20 || h != 8 {
		t.Errorf("size = %dx%d", w, h)
	}
}

func TestFlushWritesStyledCells(t *testing.T) {
	host, screen := newSimHost(t, 10, 3)
	s, _ := host.Surface()

	bg := render.RGB{R: 10, G: 20, B: 30}
	s.Clear(bg)
	s.(render.TextDrawer).Text(1, 1, "hi", render.RGB{R: 255, G: 128})
	if err := s.Present(); err != nil {
		t.Fatal(err)
	}

	r, _, style, _ := screen.GetContent(1, 1)
	if r != 'h' {
		t.Errorf("rune = %q", r)
	}
	fg, gotBg, _ := style.Decompose()
	if cr, cg, cb := fg.RGB(); cr != 255 || cg != 128 || cb != 0 {
		t.Errorf("fg = %d,%d,%d", cr, cg, cb)
	}
	if cr, cg, cb := gotBg.RGB(); cr != 10 || cg != 20 || cb != 30 {
		t.Errorf("bg = %d,%d,%d", cr, cg, cb)
	}

	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("blank cell rune = %q", r)
	}
}

func TestDispatch(t *testing.T) {
	host, _ := newSimHost(t, 10, 5)

	var sizes []engine.Size
	var points []engine.Point
	host.OnResize(func(s engine.Size) { sizes = append(sizes, s) })
	removePointer := host.OnPointer(func(p engine.Point) { points = append(points, p) })

	host.Dispatch(tcell.NewEventResize(30, 12))
	host.Dispatch(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	removePointer()
	host.Dispatch(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone))

	if len(sizes) != 1 || sizes[0] != (engine.Size{Width: 30, Height: 12}) {
		t.Errorf("sizes = %v", sizes)
	}
	if len(points) != 1 || points[0] != (engine.Point{X: 3.5, Y: 4.5}) {
		t.Errorf("points = %v", points)
	}

	if !host.Dispatch(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("key not handled")
	}
	select {
	case k := <-host.Keys():
		if k.Rune() != 'q' {
			t.Errorf("key = %q", k.Rune())
		}
	default:
		t.Error("key not forwarded")
	}

	if host.Dispatch(tcell.NewEventInterrupt(nil)) {
		t.Error("interrupt reported as handled")
	}
}

func TestKeysDropWhenFull(t *testing.T) {
	host, _ := newSimHost(t, 4, 4)
	for i := 0; i < keyBuffer+10; i++ {
		host.Dispatch(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	}
	if n := len(host.Keys()); n != keyBuffer {
		t.Errorf("buffered keys = %d", n)
	}
}

func TestPollLoopDeliversInjectedEvents(t *testing.T) {
	host, screen := newSimHost(t, 10, 10)
	got := make(chan engine.Point, 1)
	host.OnPointer(func(p engine.Point) {
		select {
		case got <- p:
		default:
		}
	})

	host.Start()
	screen.InjectMouse(2, 7, tcell.ButtonNone, tcell.ModNone)

	select {
	case p := <-got:
		if p != (engine.Point{X: 2.5, Y: 7.5}) {
			t.Errorf("point = %v", p)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("pointer event not delivered")
	}
	host.Close()
}

func TestCloseDetaches(t *testing.T) {
	host, _ := newSimHost(t, 4, 4)
	host.Start()
	host.Close()
	host.Close()

	if _, ok := host.Surface(); ok {
		t.Error("surface available after close")
	}
	if err := host.Flush(nil, 0, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("flush err = %v", err)
	}
}

func TestEngineDrawsOnScreen(t *testing.T) {
	host, screen := newSimHost(t, 40, 20)

	o := preset.Defaults()
	o.Count = 30
	cfg, err := preset.Build(preset.Constellation, o)
	if err != nil {
		t.Fatal(err)
	}

	clock := engine.NewFrameClock()
	loop, err := engine.Start(host, cfg, clock)
	if err != nil {
		t.Fatal(err)
	}
	defer loop.Stop()

	now := time.Unix(0, 0)
	for i := 0; i < 3; i++ {
		now = now.Add(time.Second / 30)
		clock.Pump(now)
	}
	if loop.State() != engine.StateRunning {
		t.Fatalf("state = %v, err = %v", loop.State(), loop.Err())
	}

	cells, _, _ := screen.GetContents()
	drawn := 0
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			if r, _, _, _ := screen.GetContent(x, y); r != ' ' && r != 0 {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Errorf("no particles on a %d-cell screen", len(cells))
	}
}
