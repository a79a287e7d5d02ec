package render

import "testing"

func TestBlend(t *testing.T) {
	white := RGB{R: 255, G: 255, B: 255}
	tests := []struct {
		name  string
		alpha float64
		want  RGB
	}{
		{"zero keeps dst", 0, RGBBlack},
		{"negative keeps dst", -1, RGBBlack},
		{"full replaces", 1, white},
		{"half rounds", 0.5, RGB{R: 128, G: 128, B: 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(RGBBlack, white, tt.alpha); got != tt.want {
				t.Errorf("Blend alpha %v = %v, want %v", tt.alpha, got, tt.want)
			}
		})
	}
}

func TestScreenNeverDarkens(t *testing.T) {
	dst := RGB{R: 100, G: 40, B: 200}
	for _, src := range []RGB{RGBBlack, {R: 10, G: 10, B: 10}, {R: 255, G: 0, B: 128}, {R: 255, G: 255, B: 255}} {
		got := Screen(dst, src, 1)
		if got.R < dst.R || got.G < dst.G || got.B < dst.B {
			t.Errorf("Screen(%v, %v) = %v darkened a channel", dst, src, got)
		}
	}
	if got := Screen(RGBBlack, RGB{R: 255, G: 255, B: 255}, 1); got != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("Screen over black with white = %v", got)
	}
}

func TestAddClamps(t *testing.T) {
	got := Add(RGB{R: 200, G: 10, B: 0}, RGB{R: 100, G: 100, B: 0}, 1)
	if got != (RGB{R: 255, G: 110, B: 0}) {
		t.Errorf("Add = %v", got)
	}
	if got := Add(RGB{R: 1, G: 2, B: 3}, RGB{R: 255, G: 255, B: 255}, 0); got != (RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("Add alpha 0 changed dst: %v", got)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(RGB{R: 10, G: 20, B: 30}, RGB{R: 15, G: 5, B: 30}); d != 15 {
		t.Errorf("Distance = %d, want 15", d)
	}
}

func TestBlendModeTargets(t *testing.T) {
	b := NewCellBuffer(1, 1, nil)
	red := RGB{R: 255, G: 0, B: 0}

	b.Set(0, 0, 'x', red, red, BlendAlphaFg, 1)
	c := b.At(0, 0)
	if c.Fg != red || c.Bg != RGBBlack || c.Rune != 'x' {
		t.Errorf("BlendAlphaFg touched the wrong channel: %+v", c)
	}

	b.Set(0, 0, 0, RGBBlack, red, BlendAlphaBg, 1)
	c = b.At(0, 0)
	if c.Bg != red || c.Fg != red || c.Rune != 'x' {
		t.Errorf("BlendAlphaBg result: %+v", c)
	}
}
