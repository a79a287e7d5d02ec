package render

import (
	"errors"
	"math"
	"testing"
)

type captureFlusher struct {
	calls  int
	width  int
	height int
	err    error
}

func (f *captureFlusher) Flush(cells []Cell, width, height int) error {
	f.calls++
	f.width, f.height = width, height
	return f.err
}

func TestCellBufferResizeClampsNegative(t *testing.T) {
	b := NewCellBuffer(-3, 5, nil)
	w, h := b.Size()
	if w != 0 || h != 5 {
		t.Fatalf("Size = %dx%d, want 0x5", w, h)
	}
	if len(b.Cells()) != 0 {
		t.Errorf("expected no cells, got %d", len(b.Cells()))
	}
}

func TestCellBufferOutOfBoundsIsNoop(t *testing.T) {
	b := NewCellBuffer(4, 4, nil)
	b.Clear(RGBBlack)
	c := RGB{R: 200, G: 100, B: 50}

	nan := math.NaN()
	inf := math.Inf(1)
	b.Dot(-10, -10, 3, c, 1)
	b.Dot(100, 2, 0.5, c, 1)
	b.Dot(nan, 1, 1, c, 1)
	b.Glow(inf, 1, 2, c, 1)
	b.Glyph(1, nan, '*', c, 1)
	b.Line(nan, 0, 2, 2, c, 1)
	b.Line(-50, -50, -40, -40, c, 1)

	for i, cell := range b.Cells() {
		if !cell.Blank() || cell.Bg != RGBBlack {
			t.Fatalf("cell %d modified: %+v", i, cell)
		}
	}
}

func TestCellBufferDotSmallUsesGlyph(t *testing.T) {
	b := NewCellBuffer(3, 3, nil)
	c := RGB{R: 0, G: 255, B: 0}
	b.Dot(1.5, 1.5, 0.2, c, 1)
	if got := b.At(1, 1); got.Rune != dotGlyphs[0] || got.Fg != c {
		t.Errorf("small dot = %+v", got)
	}
	b.Dot(0.5, 0.5, 0.9, c, 1)
	if got := b.At(0, 0); got.Rune != dotGlyphs[2] {
		t.Errorf("near-cell dot rune = %q", got.Rune)
	}
}

func TestCellBufferDotLargeFillsBackground(t *testing.T) {
	b := NewCellBuffer(10, 5, nil)
	c := RGB{R: 0, G: 0, B: 255}
	b.Dot(5, 2.5, 2, c, 1)
	if got := b.At(5, 2); got.Bg != c {
		t.Errorf("center bg = %v, want %v", got.Bg, c)
	}
	if got := b.At(0, 0); got.Bg != RGBBlack {
		t.Errorf("corner painted: %v", got.Bg)
	}
}

func TestCellBufferFadeLeavesTrailThenErases(t *testing.T) {
	b := NewCellBuffer(1, 1, nil)
	white := RGB{R: 255, G: 255, B: 255}
	b.Glyph(0.5, 0.5, '*', white, 1)

	b.Fade(RGBBlack, 0.25)
	c := b.At(0, 0)
	if c.Rune != '*' {
		t.Fatalf("glyph erased after one fade")
	}
	if c.Fg.R >= 255 || c.Fg.R == 0 {
		t.Errorf("fg not dimmed partially: %v", c.Fg)
	}

	for i := 0; i < 40; i++ {
		b.Fade(RGBBlack, 0.25)
	}
	if c := b.At(0, 0); !c.Blank() {
		t.Errorf("glyph survived fading: %+v", c)
	}
}

func TestCellBufferFadeFullClears(t *testing.T) {
	b := NewCellBuffer(2, 1, nil)
	b.Glyph(0, 0, '*', RGB{R: 255, G: 0, B: 0}, 1)
	bg := RGB{R: 10, G: 10, B: 18}
	b.Fade(bg, 1)
	if c := b.At(0, 0); !c.Blank() || c.Bg != bg {
		t.Errorf("Fade(1) = %+v", c)
	}
}

func TestCellBufferLineKeepsGlyphs(t *testing.T) {
	b := NewCellBuffer(10, 1, nil)
	red := RGB{R: 255, G: 0, B: 0}
	b.Glyph(5, 0, '@', red, 1)
	b.Line(0, 0.5, 9.5, 0.5, RGB{R: 0, G: 255, B: 0}, 1)

	if c := b.At(5, 0); c.Rune != '@' {
		t.Errorf("line overwrote particle glyph: %q", c.Rune)
	}
	if c := b.At(2, 0); c.Rune != '─' {
		t.Errorf("horizontal line rune = %q", c.Rune)
	}
}

func TestSlopeGlyph(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   rune
	}{
		{1, 0, '─'},
		{0, 1, '│'},
		{1, 1, '╲'},
		{1, -1, '╱'},
		{-1, -1, '╲'},
	}
	for _, tt := range tests {
		if got := slopeGlyph(tt.dx, tt.dy); got != tt.want {
			t.Errorf("slopeGlyph(%v, %v) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestClipSegment(t *testing.T) {
	x0, y0, x1, y1, ok := clipSegment(-5, 0.5, 15, 0.5, 0, 0, 10, 1)
	if !ok || x0 != 0 || x1 != 10 || y0 != 0.5 || y1 != 0.5 {
		t.Errorf("clip = (%v,%v)-(%v,%v) ok=%v", x0, y0, x1, y1, ok)
	}
	if _, _, _, _, ok := clipSegment(-5, -5, -1, -1, 0, 0, 10, 10); ok {
		t.Error("segment outside the box was accepted")
	}
}

func TestCellBufferText(t *testing.T) {
	b := NewCellBuffer(5, 1, nil)
	bg := RGB{R: 1, G: 2, B: 3}
	b.Clear(bg)
	b.Text(1, 0, "hello", RGB{R: 9, G: 9, B: 9})
	if c := b.At(1, 0); c.Rune != 'h' || c.Bg != bg {
		t.Errorf("text cell = %+v", c)
	}
	if c := b.At(4, 0); c.Rune != 'l' {
		t.Errorf("clipped text cell = %+v", c)
	}
}

func TestCellBufferPresent(t *testing.T) {
	f := &captureFlusher{}
	b := NewCellBuffer(3, 2, f)
	if err := b.Present(); err != nil {
		t.Fatal(err)
	}
	if f.calls != 1 || f.width != 3 || f.height != 2 {
		t.Errorf("flusher got %+v", f)
	}

	f.err = errors.New("closed")
	if err := b.Present(); !errors.Is(err, f.err) {
		t.Errorf("Present err = %v", err)
	}

	if err := NewCellBuffer(1, 1, nil).Present(); err != nil {
		t.Errorf("nil flusher Present = %v", err)
	}
}
