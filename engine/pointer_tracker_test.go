package engine

import (
	"math"
	"testing"
)

func TestPointerTrackerInactiveIsCentered(t *testing.T) {
	p := NewPointerTracker(Smoothing{}).Sample(80, 40)
	if p.Active || p.OffsetX != 0 || p.OffsetY != 0 || p.X != 40 || p.Y != 20 {
		t.Errorf("inactive sample = %+v", p)
	}
}

func TestPointerTrackerClampsAndNormalizes(t *testing.T) {
	tests := []struct {
		name           string
		x, y           float64
		wantX, wantY   float64
		wantOX, wantOY float64
	}{
		{"center", 50, 25, 50, 25, 0, 0},
		{"top-left", 0, 0, 0, 0, -1, -1},
		{"beyond bottom-right", 500, 90, 100, 50, 1, 1},
		{"negative", -20, 10, 0, 10, -1, -0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewPointerTracker(Smoothing{})
			tr.Notify(tt.x, tt.y)
			p := tr.Sample(100, 50)
			if !p.Active {
				t.Fatal("pointer not active after notify")
			}
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("pos = (%v,%v), want (%v,%v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if math.Abs(p.OffsetX-tt.wantOX) > 1e-9 || math.Abs(p.OffsetY-tt.wantOY) > 1e-9 {
				t.Errorf("offset = (%v,%v), want (%v,%v)", p.OffsetX, p.OffsetY, tt.wantOX, tt.wantOY)
			}
		})
	}
}

func TestPointerTrackerKeepsLatestAndDropsNaN(t *testing.T) {
	tr := NewPointerTracker(Smoothing{})
	tr.Notify(10, 10)
	tr.Notify(20, 30)
	tr.Notify(math.NaN(), 5)
	tr.Notify(5, math.Inf(1))
	p := tr.Sample(100, 100)
	if p.X != 20 || p.Y != 30 {
		t.Errorf("sample = (%v,%v), want latest finite (20,30)", p.X, p.Y)
	}
}

func TestPointerTrackerSmoothing(t *testing.T) {
	tr := NewPointerTracker(Smoothing{Enabled: true, FrameRate: 60, Frequency: 6, Damping: 1})
	tr.Notify(0, 50)
	first := tr.Sample(100, 100)
	if first.OffsetX != -1 {
		t.Fatalf("first smoothed offset = %v, want -1", first.OffsetX)
	}

	tr.Notify(100, 50)
	next := tr.Sample(100, 100)
	if next.OffsetX <= -1 || next.OffsetX >= 1 {
		t.Errorf("smoothed offset jumped to %v", next.OffsetX)
	}
	if next.X != 100 {
		t.Errorf("raw position should not be smoothed: %v", next.X)
	}

	for i := 0; i < 240; i++ {
		next = tr.Sample(100, 100)
	}
	if math.Abs(next.OffsetX-1) > 0.01 {
		t.Errorf("offset did not settle: %v", next.OffsetX)
	}
}
