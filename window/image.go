package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageTarget draws on an offscreen ebiten image
type imageTarget struct {
	img *ebiten.Image
}

func (t *imageTarget) resize(w, h int) {
	if t.img != nil {
		b := t.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		t.img.Deallocate()
	}
	t.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

func (t *imageTarget) fill(c color.Color) {
	t.img.Fill(c)
}

func (t *imageTarget) rect(x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(t.img, x, y, w, h, c, false)
}

func (t *imageTarget) circle(cx, cy, r float32, c color.Color) {
	vector.DrawFilledCircle(t.img, cx, cy, r, c, true)
}

func (t *imageTarget) line(x0, y0, x1, y1, width float32, c color.Color) {
	vector.StrokeLine(t.img, x0, y0, x1, y1, width, c, true)
}

func (t *imageTarget) text(s string, x, y int) {
	ebitenutil.DebugPrintAt(t.img, s, x, y)
}
