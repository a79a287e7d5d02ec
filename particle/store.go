package particle

// SeedFunc initializes slot i at mount
type SeedFunc func(p *Particle, i int, b Bounds)

// Store is the exclusively owned particle buffer of one engine instance
type Store struct {
	items  []Particle
	bounds Bounds
}

// NewStore allocates count particles and seeds each one
// Negative counts are clamped to zero
func NewStore(count int, bounds Bounds, seed SeedFunc) *Store {
	if count < 0 {
		count = 0
	}
	s := &Store{
		items:  make([]Particle, count),
		bounds: bounds,
	}
	if seed != nil {
		for i := range s.items {
			seed(&s.items[i], i, bounds)
		}
	}
	return s
}

// Len returns the live particle count, constant for the store's lifetime
func (s *Store) Len() int {
	return len(s.items)
}

// Bounds returns the current simulation volume
func (s *Store) Bounds() Bounds {
	return s.bounds
}

// SetBounds updates the simulation volume without touching particle positions
func (s *Store) SetBounds(b Bounds) {
	s.bounds = b
}

// Get returns a copy of particle i
func (s *Store) Get(i int) Particle {
	return s.items[i]
}

// Set overwrites particle i
func (s *Store) Set(i int, p Particle) {
	s.items[i] = p
}

// Patch applies fn to particle i in place
func (s *Store) Patch(i int, fn func(p *Particle)) {
	fn(&s.items[i])
}

// ForEach calls fn for every slot in index order
// The pointer is only valid for the duration of the call
func (s *Store) ForEach(fn func(i int, p *Particle)) {
	for i := range s.items {
		fn(i, &s.items[i])
	}
}
