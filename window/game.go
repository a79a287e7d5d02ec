// Package window hosts the engine in a desktop window through ebiten.
//
// The engine draws on an offscreen canvas measured in surface units of
// parameter.WindowScale pixels. Game.Update pumps a FrameClock, so frames run
// on ebiten's update goroutine at the configured TPS.
package window

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/render"
)

// Game implements ebiten.Game and engine.Host
type Game struct {
	canvas *Canvas
	image  *imageTarget
	clock  *engine.FrameClock
	scale  float64

	resize  engine.Listeners[engine.Size]
	pointer engine.Listeners[engine.Point]

	// OnKey receives newly pressed keys; returning true ends the game
	OnKey func(k ebiten.Key) (quit bool)

	cursor  func() (int, int)
	pressed func([]ebiten.Key) []ebiten.Key
	now     func() time.Time

	keys         []ebiten.Key
	lastX, lastY int
	outW, outH   int
	closed       bool
}

// NewGame creates a game with an initial window of width x height pixels
func NewGame(width, height int, scale float64) *Game {
	img := &imageTarget{}
	g := newGame(img, width, height, scale)
	g.image = img
	return g
}

func newGame(t target, width, height int, scale float64) *Game {
	c := newCanvas(t, 0, 0, scale)
	c.Resize(int(float64(width)/c.scale), int(float64(height)/c.scale))
	return &Game{
		canvas:  c,
		clock:   engine.NewFrameClock(),
		scale:   c.scale,
		cursor:  ebiten.CursorPosition,
		pressed: inpututil.AppendJustPressedKeys,
		now:     time.Now,
		lastX:   -1,
		lastY:   -1,
		outW:    width,
		outH:    height,
	}
}

// Clock is the scheduler to start loops on
func (g *Game) Clock() *engine.FrameClock {
	return g.clock
}

// Surface implements engine.Host
func (g *Game) Surface() (render.Surface, bool) {
	if g.closed {
		return nil, false
	}
	return g.canvas, true
}

// OnResize implements engine.Host
func (g *Game) OnResize(fn func(engine.Size)) func() {
	return g.resize.Add(fn)
}

// OnPointer implements engine.Host
func (g *Game) OnPointer(fn func(engine.Point)) func() {
	return g.pointer.Add(fn)
}

// Update forwards input then runs any frame requested since the last tick
func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}

	g.keys = g.pressed(g.keys[:0])
	for _, k := range g.keys {
		if g.OnKey != nil && g.OnKey(k) {
			g.Close()
			return ebiten.Termination
		}
	}

	if x, y := g.cursor(); x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		g.pointer.Emit(engine.Point{X: float64(x) / g.scale, Y: float64(y) / g.scale})
	}

	g.clock.Pump(g.now())
	return nil
}

// Draw copies the canvas to the screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.image == nil || g.image.img == nil {
		return
	}
	screen.DrawImage(g.image.img, nil)
}

// Layout keeps one screen pixel per window pixel and reports size changes in units
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		g.resize.Emit(engine.Size{
			Width:  int(float64(outsideWidth) / g.scale),
			Height: int(float64(outsideHeight) / g.scale),
		})
	}
	return outsideWidth, outsideHeight
}

// Close detaches the surface; the next Present fails and the loop stops
func (g *Game) Close() {
	g.closed = true
	g.canvas.closed = true
}

// Run opens the window and blocks until it closes
func Run(g *Game, title string, tps int) error {
	ebiten.SetWindowSize(g.outW, g.outH)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// RuneForKey maps window keys onto the terminal key bindings
func RuneForKey(k ebiten.Key) (rune, bool) {
	switch k {
	case ebiten.KeyQ, ebiten.KeyEscape:
		return 'q', true
	case ebiten.KeySpace:
		return ' ', true
	case ebiten.KeyH:
		return 'h', true
	case ebiten.KeyDigit1:
		return '1', true
	case ebiten.KeyDigit2:
		return '2', true
	case ebiten.KeyDigit3:
		return '3', true
	case ebiten.KeyDigit4:
		return '4', true
	}
	return 0, false
}
