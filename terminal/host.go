package terminal

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/particlefx/core"
	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/render"
)

// ErrClosed is returned by Flush once the screen has been finalized
var ErrClosed = errors.New("terminal closed")

// keyBuffer bounds pending key events; extra keys are dropped while the consumer lags
const keyBuffer = 64

// Host adapts a tcell screen to engine.Host
type Host struct {
	screen tcell.Screen
	buf    *render.CellBuffer

	resize  engine.Listeners[engine.Size]
	pointer engine.Listeners[engine.Point]
	keys    chan *tcell.EventKey

	closed atomic.Bool

	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once
}

// Available reports whether fd is an interactive terminal
func Available(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Open initializes the process terminal and registers it for crash restore
func Open() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashTerminal(screen)
	return NewHost(screen), nil
}

// NewHost wraps an initialized screen
func NewHost(screen tcell.Screen) *Host {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	w, h := screen.Size()
	host := &Host{
		screen: screen,
		keys:   make(chan *tcell.EventKey, keyBuffer),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	host.buf = render.NewCellBuffer(w, h, host)
	return host
}

// Surface implements engine.Host
func (h *Host) Surface() (render.Surface, bool) {
	if h.closed.Load() {
		return nil, false
	}
	return h.buf, true
}

// OnResize implements engine.Host
func (h *Host) OnResize(fn func(engine.Size)) func() {
	return h.resize.Add(fn)
}

// OnPointer implements engine.Host
func (h *Host) OnPointer(fn func(engine.Point)) func() {
	return h.pointer.Add(fn)
}

// Keys delivers key presses in arrival order
func (h *Host) Keys() <-chan *tcell.EventKey {
	return h.keys
}

// Screen exposes the wrapped screen
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Flush implements render.Flusher
func (h *Host) Flush(cells []render.Cell, width, height int) error {
	if h.closed.Load() {
		return ErrClosed
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(toColor(c.Fg)).Background(toColor(c.Bg))
			h.screen.SetContent(x, y, r, nil, style)
		}
	}
	h.screen.Show()
	return nil
}

func toColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Dispatch routes one screen event to listeners
// Returns false for events the host does not handle
func (h *Host) Dispatch(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.screen.Sync()
		h.resize.Emit(engine.Size{Width: w, Height: hgt})
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.pointer.Emit(engine.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	case *tcell.EventKey:
		select {
		case h.keys <- ev:
		default:
		}
	default:
		return false
	}
	return true
}

// Start launches the input polling goroutine
func (h *Host) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running || h.closed.Load() {
		return
	}
	h.running = true
	core.Go(h.pollLoop)
}

func (h *Host) pollLoop() {
	defer close(h.doneCh)

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		h.Dispatch(ev)
	}
}

// Close stops polling and restores the terminal, safe to call repeatedly
func (h *Host) Close() {
	h.closeOnce.Do(func() {
		h.closed.Store(true)
		close(h.stopCh)

		h.mu.Lock()
		running := h.running
		h.mu.Unlock()

		if running {
			// Wake PollEvent so the loop observes stopCh
			h.screen.PostEvent(tcell.NewEventInterrupt(nil))
			<-h.doneCh
		}
		h.screen.Fini()
	})
}
