// Package spatial finds particle pairs closer than a threshold.
//
// Finders append into a caller-owned slice so a frame loop can reuse one edge buffer
// without per-frame allocation.
package spatial

import "math"

// Point is a projected particle position; invalid points take part in no edges
type Point struct {
	X, Y  float64
	Valid bool
}

// Edge connects particles I < J at Euclidean distance Dist
type Edge struct {
	I, J int
	Dist float64
}

// Finder emits every pair of valid points with distance strictly below threshold
type Finder interface {
	Edges(points []Point, threshold float64, dst []Edge) []Edge
}

// BruteForce checks every pair, O(n²); suitable for tens of particles
type BruteForce struct{}

func (BruteForce) Edges(points []Point, threshold float64, dst []Edge) []Edge {
	dst = dst[:0]
	if threshold <= 0 {
		return dst
	}
	thSq := threshold * threshold
	for i := 0; i < len(points); i++ {
		a := points[i]
		if !a.Valid {
			continue
		}
		for j := i + 1; j < len(points); j++ {
			b := points[j]
			if !b.Valid {
				continue
			}
			dx, dy := b.X-a.X, b.Y-a.Y
			if dSq := dx*dx + dy*dy; dSq < thSq {
				dst = append(dst, Edge{I: i, J: j, Dist: math.Sqrt(dSq)})
			}
		}
	}
	return dst
}
