package physics

import "math"

// Wrap maps v into [0, bound) using toroidal topology
// A value that crossed one edge re-enters from the opposite edge shifted by exactly one bound length
// Non-positive bounds leave v unchanged
func Wrap(v, bound float64) float64 {
	if bound <= 0 {
		return v
	}
	if v >= bound {
		v -= bound
	} else if v < 0 {
		v += bound
	}
	// Values more than one bound away, e.g. after the surface shrank
	if v < 0 || v >= bound {
		v = math.Mod(v, bound)
		if v < 0 {
			v += bound
		}
		if v >= bound {
			v = 0
		}
	}
	return v
}

// ClampInto limits v to [0, bound)
func ClampInto(v, bound float64) float64 {
	if v < 0 || bound <= 0 {
		return 0
	}
	if v >= bound {
		return math.Nextafter(bound, 0)
	}
	return v
}

// Inside returns true if (x, y) lies in [0, w) x [0, h)
func Inside(x, y, w, h float64) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}
