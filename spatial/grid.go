package spatial

import "math"

// maxCellsPerPoint bounds grid memory when the threshold is tiny relative to the spread
const maxCellsPerPoint = 4

// Grid buckets points into square cells at least threshold wide and only compares
// points in adjacent cells. Results match BruteForce; buffers are reused across calls.
type Grid struct {
	cols, rows int
	cellStart  []int // prefix offsets into order, len = cells+1
	cellOf     []int // cell index per point, -1 for invalid points
	order      []int // point indices sorted by cell
	cursor     []int
}

func (g *Grid) Edges(points []Point, threshold float64, dst []Edge) []Edge {
	dst = dst[:0]
	if threshold <= 0 || len(points) < 2 {
		return dst
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	valid := 0
	for _, p := range points {
		if !p.Valid {
			continue
		}
		valid++
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if valid < 2 {
		return dst
	}

	cell := threshold
	g.cols = int((maxX-minX)/cell) + 1
	g.rows = int((maxY-minY)/cell) + 1
	// Coarsen until the grid is proportional to the point count; wider cells stay correct
	for g.cols*g.rows > maxCellsPerPoint*valid+16 {
		cell *= 2
		g.cols = int((maxX-minX)/cell) + 1
		g.rows = int((maxY-minY)/cell) + 1
	}
	g.bucket(points, minX, minY, cell)

	thSq := threshold * threshold
	for i, p := range points {
		c := g.cellOf[i]
		if c < 0 {
			continue
		}
		cx, cy := c%g.cols, c/g.cols
		for ny := cy - 1; ny <= cy+1; ny++ {
			if ny < 0 || ny >= g.rows {
				continue
			}
			for nx := cx - 1; nx <= cx+1; nx++ {
				if nx < 0 || nx >= g.cols {
					continue
				}
				n := ny*g.cols + nx
				for _, j := range g.order[g.cellStart[n]:g.cellStart[n+1]] {
					if j <= i {
						continue
					}
					q := points[j]
					dx, dy := q.X-p.X, q.Y-p.Y
					if dSq := dx*dx + dy*dy; dSq < thSq {
						dst = append(dst, Edge{I: i, J: j, Dist: math.Sqrt(dSq)})
					}
				}
			}
		}
	}
	return dst
}

// bucket counting-sorts valid point indices by cell
func (g *Grid) bucket(points []Point, minX, minY, cell float64) {
	cells := g.cols * g.rows
	g.cellStart = resize(g.cellStart, cells+1)
	g.cursor = resize(g.cursor, cells)
	g.cellOf = resize(g.cellOf, len(points))
	clear(g.cellStart)

	count := 0
	for i, p := range points {
		if !p.Valid {
			g.cellOf[i] = -1
			continue
		}
		cx := int((p.X - minX) / cell)
		cy := int((p.Y - minY) / cell)
		c := cy*g.cols + cx
		g.cellOf[i] = c
		g.cellStart[c+1]++
		count++
	}
	for c := 0; c < cells; c++ {
		g.cellStart[c+1] += g.cellStart[c]
	}
	copy(g.cursor, g.cellStart[:cells])

	g.order = resize(g.order, count)
	for i, c := range g.cellOf {
		if c < 0 {
			continue
		}
		g.order[g.cursor[c]] = i
		g.cursor[c]++
	}
}

// resize returns s with length n, reallocating only if capacity is insufficient
func resize(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	return s[:n]
}
