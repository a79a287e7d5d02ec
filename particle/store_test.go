package particle

import "testing"

func TestNewStoreClampsCount(t *testing.T) {
	s := NewStore(-5, Bounds{Width: 10, Height: 10}, nil)
	if s.Len() != 0 {
		t.Fatalf("expected 0 particles, got %d", s.Len())
	}
}

func TestNewStoreSeedsEverySlot(t *testing.T) {
	b := Bounds{Width: 80, Height: 24}
	seen := make(map[int]bool)
	s := NewStore(16, b, func(p *Particle, i int, got Bounds) {
		if got != b {
			t.Errorf("seed %d received bounds %+v, want %+v", i, got, b)
		}
		seen[i] = true
		p.X = float64(i)
	})

	if s.Len() != 16 {
		t.Fatalf("expected 16 particles, got %d", s.Len())
	}
	for i := 0; i < 16; i++ {
		if !seen[i] {
			t.Errorf("slot %d not seeded", i)
		}
		if s.Get(i).X != float64(i) {
			t.Errorf("slot %d X = %v", i, s.Get(i).X)
		}
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore(1, Bounds{}, nil)
	p := s.Get(0)
	p.X = 42
	if s.Get(0).X != 0 {
		t.Fatal("mutating a Get copy changed the store")
	}
	s.Set(0, p)
	if s.Get(0).X != 42 {
		t.Fatal("Set did not persist")
	}
	s.Patch(0, func(p *Particle) { p.Y = 7 })
	if s.Get(0).Y != 7 {
		t.Fatal("Patch did not persist")
	}
}

func TestSetBoundsKeepsPositions(t *testing.T) {
	s := NewStore(3, Bounds{Width: 100, Height: 100}, func(p *Particle, i int, b Bounds) {
		p.X, p.Y = 90, 90
	})
	s.SetBounds(Bounds{Width: 10, Height: 10})

	s.ForEach(func(i int, p *Particle) {
		if p.X != 90 || p.Y != 90 {
			t.Errorf("particle %d moved on resize: (%v,%v)", i, p.X, p.Y)
		}
	})
	if s.Bounds().Width != 10 {
		t.Errorf("bounds not updated: %+v", s.Bounds())
	}
}

func TestForEachDoesNotAllocate(t *testing.T) {
	s := NewStore(256, Bounds{Width: 10, Height: 10}, nil)
	allocs := testing.AllocsPerRun(100, func() {
		s.ForEach(func(i int, p *Particle) {
			p.X += 1
		})
	})
	if allocs != 0 {
		t.Errorf("ForEach allocated %v times per run", allocs)
	}
}

func TestBoundsEmpty(t *testing.T) {
	tests := []struct {
		b    Bounds
		want bool
	}{
		{Bounds{}, true},
		{Bounds{Width: 10}, true},
		{Bounds{Height: 10}, true},
		{Bounds{Width: 1, Height: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.b.Empty(); got != tt.want {
			t.Errorf("%+v.Empty() = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestParticleFade(t *testing.T) {
	tests := []struct {
		name string
		p    Particle
		want float64
	}{
		{"no lifetime", Particle{}, 1},
		{"fresh", Particle{Life: 10}, 1},
		{"half", Particle{Age: 5, Life: 10}, 0.5},
		{"expired", Particle{Age: 12, Life: 10}, 0},
	}
	for _, tt := range tests {
		if got := tt.p.Fade(); got != tt.want {
			t.Errorf("%s: Fade() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
