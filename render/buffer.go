package render

import (
	"math"
)

// CellAspect is the height/width ratio of a terminal cell
// Radii are in column units; vertical extents are divided by CellAspect
const CellAspect = 2.0

// fadeCutoff is the per-channel distance below which a fading glyph is erased
const fadeCutoff = 10

// Glyph ramp for sub-cell dots, smallest first
var dotGlyphs = [3]rune{'·', '•', '●'}

// CellBuffer is a Surface backed by a terminal cell array
// The buffer persists across frames so Fade can leave motion trails
type CellBuffer struct {
	cells   []Cell
	width   int
	height  int
	flusher Flusher
}

// NewCellBuffer creates a buffer with the specified dimensions
// flusher may be nil for offscreen use
func NewCellBuffer(width, height int, flusher Flusher) *CellBuffer {
	b := &CellBuffer{flusher: flusher}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(RGBBlack)
}

// Size returns buffer dimensions in cells
func (b *CellBuffer) Size() (int, int) {
	return b.width, b.height
}

// Cells exposes the row-major cell array for flushing
func (b *CellBuffer) Cells() []Cell {
	return b.cells
}

// At returns the cell at (x, y), zero Cell when out of bounds
func (b *CellBuffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Clear resets all cells using exponential copy
func (b *CellBuffer) Clear(bg RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Fade blends every cell toward bg; glyphs that become indistinguishable are erased
func (b *CellBuffer) Fade(bg RGB, alpha float64) {
	if alpha >= 1 {
		b.Clear(bg)
		return
	}
	for i := range b.cells {
		c := &b.cells[i]
		c.Bg = Blend(c.Bg, bg, alpha)
		c.Fg = Blend(c.Fg, bg, alpha)
		if !c.Blank() && Distance(c.Fg, c.Bg) < fadeCutoff {
			c.Rune = ' '
		}
	}
}

// inBounds returns true if in screen bounds
func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set composites a cell with specified blend mode; zero rune keeps the existing glyph
func (b *CellBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	if r != 0 {
		dst.Rune = r
	}
	flags := uint8(mode) & 0xF0
	if flags&flagBg != 0 {
		dst.Bg = mode.apply(dst.Bg, bg, alpha)
	}
	if flags&flagFg != 0 {
		dst.Fg = mode.apply(dst.Fg, fg, alpha)
	}
}

// Glyph draws r into the cell containing (x, y)
func (b *CellBuffer) Glyph(x, y float64, r rune, c RGB, alpha float64) {
	if !finite(x) || !finite(y) || alpha <= 0 {
		return
	}
	b.Set(int(math.Floor(x)), int(math.Floor(y)), r, c, c, BlendAlphaFg, alpha)
}

// Dot draws sub-cell particles as a sized glyph and larger ones as a filled ellipse of cell backgrounds
func (b *CellBuffer) Dot(x, y, radius float64, c RGB, alpha float64) {
	if !finite(x) || !finite(y) || !finite(radius) || alpha <= 0 {
		return
	}
	if radius < 1 {
		idx := int(radius * float64(len(dotGlyphs)))
		idx = min(max(idx, 0), len(dotGlyphs)-1)
		b.Glyph(x, y, dotGlyphs[idx], c, alpha)
		return
	}
	b.ellipse(x, y, radius, func(cx, cy int, t float64) {
		b.Set(cx, cy, 0, c, c, BlendAlphaBg, alpha)
	})
}

// Glow applies a quadratic radial falloff of c over the cell backgrounds within radius
func (b *CellBuffer) Glow(x, y, radius float64, c RGB, alpha float64) {
	if !finite(x) || !finite(y) || !finite(radius) || radius <= 0 || alpha <= 0 {
		return
	}
	b.ellipse(x, y, radius, func(cx, cy int, t float64) {
		falloff := (1 - t) * (1 - t)
		b.Set(cx, cy, 0, c, c, BlendScreenBg, alpha*falloff)
	})
}

// ellipse visits cells whose centers lie within radius of (x, y) in aspect-corrected space
// t is the normalized distance in [0, 1]
func (b *CellBuffer) ellipse(x, y, radius float64, fn func(cx, cy int, t float64)) {
	ry := radius / CellAspect
	minX := max(int(math.Floor(x-radius)), 0)
	maxX := min(int(math.Ceil(x+radius)), b.width-1)
	minY := max(int(math.Floor(y-ry)), 0)
	maxY := min(int(math.Ceil(y+ry)), b.height-1)

	rSq := radius * radius
	for cy := minY; cy <= maxY; cy++ {
		dy := (float64(cy) + 0.5 - y) * CellAspect
		for cx := minX; cx <= maxX; cx++ {
			dx := float64(cx) + 0.5 - x
			dSq := dx*dx + dy*dy
			if dSq > rSq {
				continue
			}
			fn(cx, cy, math.Sqrt(dSq)/radius)
		}
	}
}

// Line steps a DDA across cells, drawing a slope glyph into blank cells only
// so edges never overwrite particle glyphs
func (b *CellBuffer) Line(x0, y0, x1, y1 float64, c RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	var ok bool
	x0, y0, x1, y1, ok = clipSegment(x0, y0, x1, y1, -1, -1, float64(b.width)+1, float64(b.height)+1)
	if !ok {
		return
	}

	dx, dy := x1-x0, y1-y0
	ch := slopeGlyph(dx, dy*CellAspect)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	sx, sy := dx/float64(steps), dy/float64(steps)

	x, y := x0, y0
	for i := 0; i <= steps; i++ {
		cx, cy := int(math.Floor(x)), int(math.Floor(y))
		if b.inBounds(cx, cy) {
			dst := &b.cells[cy*b.width+cx]
			if dst.Blank() {
				dst.Rune = ch
				dst.Fg = dst.Bg
			}
			dst.Fg = Blend(dst.Fg, c, alpha)
		}
		x += sx
		y += sy
	}
}

// slopeGlyph picks a line character for a visual-space direction
func slopeGlyph(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay < 0.4*ax:
		return '─'
	case ax < 0.4*ay:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// Text writes s left to right from (col, row) at full opacity, keeping backgrounds
func (b *CellBuffer) Text(col, row int, s string, c RGB) {
	x := col
	for _, r := range s {
		b.Set(x, row, r, c, c, BlendReplaceFg, 1)
		x++
	}
}

// Present hands the frame to the flusher
func (b *CellBuffer) Present() error {
	if b.flusher == nil {
		return nil
	}
	return b.flusher.Flush(b.cells, b.width, b.height)
}

// clipSegment is Liang-Barsky clipping against [minX, maxX] x [minY, maxY]
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return 0, 0, 0, 0, false
	}
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - minX, maxX - x0, y0 - minY, maxY - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
