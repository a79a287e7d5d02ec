package physics

// countingRand returns a fixed cycle of values and counts draws
type countingRand struct {
	vals  []float64
	next  int
	draws int
}

func newCountingRand(vals ...float64) *countingRand {
	if len(vals) == 0 {
		vals = []float64{0.5}
	}
	return &countingRand{vals: vals}
}

func (r *countingRand) Float64() float64 {
	v := r.vals[r.next%len(r.vals)]
	r.next++
	r.draws++
	return v
}
