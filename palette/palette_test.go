package palette

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	p, err := Parse([]string{"#ff0000", " 00ff00 ", "#fff"})
	if err != nil {
		t.Fatal(err)
	}
	want := Palette{{255, 0, 0}, {0, 255, 0}, {255, 255, 255}}
	for i := range want {
		if !p[i].Equal(want[i]) {
			t.Errorf("p[%d] = %v, want %v", i, p[i], want[i])
		}
	}

	if _, err := Parse(nil); err == nil {
		t.Error("empty list accepted")
	}
	if _, err := Parse([]string{"#zzzzzz"}); err == nil {
		t.Error("invalid hex accepted")
	}
}

func TestPickAndAt(t *testing.T) {
	p := Palette{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	if got := p.Pick(4); got.R != 2 {
		t.Errorf("Pick(4) = %v", got)
	}
	if got := p.Pick(-1); got.R != 2 {
		t.Errorf("Pick(-1) = %v", got)
	}
	if got := p.At(0); got.R != 1 {
		t.Errorf("At(0) = %v", got)
	}
	if got := p.At(0.999); got.R != 3 {
		t.Errorf("At(.999) = %v", got)
	}
	if got := p.At(7); got.R != 3 {
		t.Errorf("At(7) = %v", got)
	}
	if got := p.At(-1); got.R != 1 {
		t.Errorf("At(-1) = %v", got)
	}

	var empty Palette
	if !empty.Pick(0).Equal(White) || !empty.At(0.5).Equal(White) {
		t.Error("empty palette should yield white")
	}
}

func TestHueWheel(t *testing.T) {
	p := HueWheel(6, 1, 1)
	if len(p) != 6 {
		t.Fatalf("len = %d", len(p))
	}
	if !p[0].Equal(RGB{255, 0, 0}) {
		t.Errorf("hue 0 = %v", p[0])
	}
	seen := map[RGB]bool{}
	for _, c := range p {
		seen[c] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected distinct hues, got %v", p)
	}
	if HueWheel(0, 1, 1) != nil {
		t.Error("HueWheel(0) should be nil")
	}
}

func TestTint(t *testing.T) {
	c := RGB{200, 100, 50}
	if got := Tint(c, Black, 0); !got.Equal(c) {
		t.Errorf("t=0 changed color: %v", got)
	}
	if got := Tint(c, Black, 1); !got.Equal(Black) {
		t.Errorf("t=1 = %v", got)
	}
	mid := Tint(c, Black, 0.5)
	if mid.Equal(c) || mid.Equal(Black) {
		t.Errorf("t=.5 = %v", mid)
	}
}

func TestResolve(t *testing.T) {
	p, err := Resolve("", nil)
	if err != nil || len(p) == 0 {
		t.Fatalf("default = %v, %v", p, err)
	}

	p, err = Resolve("MEMPHIS", nil)
	if err != nil || len(p) != len(themes["memphis"]) {
		t.Errorf("case-insensitive lookup = %v, %v", p, err)
	}

	p, err = Resolve("memphis", []string{"#010203"})
	if err != nil || len(p) != 1 || !p[0].Equal(RGB{1, 2, 3}) {
		t.Errorf("hex list should win: %v, %v", p, err)
	}

	if _, err := Resolve("aurora", nil); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("err = %v", err)
	}

	if p, ok := Named("hue"); !ok || len(p) != 12 {
		t.Errorf("hue = %v %v", p, ok)
	}
}

func TestNamesSortedAndResolvable(t *testing.T) {
	names := Names()
	for i, n := range names {
		if i > 0 && names[i-1] >= n {
			t.Errorf("not sorted at %d: %v", i, names)
		}
		if _, err := Resolve(n, nil); err != nil {
			t.Errorf("Resolve(%q): %v", n, err)
		}
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{255, 8, 0}).Hex(); got != "#ff0800" {
		t.Errorf("Hex = %q", got)
	}
}
