package graph

import (
	"context"
	"math"

	"github.com/leetpulse/dskit/pkg/geom"
)

const (
	minDistance     = 0.01
	idealScale      = 0.8
	seedRadiusScale = 0.35
	cooling         = 0.9
)

// ForceDirected runs a Fruchterman-Reingold simulation over adj on a canvas
// of the given size and returns one position per node.
//
// Nodes start on a circle of radius 0.35·min(width, height). Every pair of
// nodes repels with k²/d and every connected pair attracts with d²/k, where
// k = 0.8·sqrt(area/n). Each step moves a node at most the current
// temperature (starting at width/4, cooling by 0.9 per step) and clamps it
// to [nodeSize, dim-nodeSize]. Connected pairs are counted once regardless of
// direction or duplicate entries.
func ForceDirected(adj Adjacency, size geom.Size, nodeSize float64, iterations int) []geom.Point {
	return forceDirected(context.Background(), adj, size, nodeSize, iterations)
}

// forceDirected stops between steps once ctx is done and returns the
// positions reached so far.
func forceDirected(ctx context.Context, adj Adjacency, size geom.Size, nodeSize float64, iterations int) []geom.Point {
	n := adj.Len()
	if n == 0 {
		return []geom.Point{}
	}

	// A zero canvas would make k zero and the attraction d/k undefined.
	k := math.Max(math.Sqrt(size.Width*size.Height/float64(n))*idealScale, minDistance)
	k2 := k * k
	pos := Circular(n, size.Center(), size.Min()*seedRadiusScale)
	pairs := attractionPairs(adj)
	temp := size.Width / 4
	disp := make([]geom.Point, n)

	for range iterations {
		if ctx.Err() != nil {
			break
		}
		clear(disp)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := pos[i].Sub(pos[j])
				dist := math.Max(d.Len(), minDistance)
				f := d.Scale(k2 / dist / dist)
				disp[i] = disp[i].Add(f)
				disp[j] = disp[j].Sub(f)
			}
		}

		for _, p := range pairs {
			d := pos[p[0]].Sub(pos[p[1]])
			dist := math.Max(d.Len(), minDistance)
			f := d.Scale(dist / k)
			disp[p[0]] = disp[p[0]].Sub(f)
			disp[p[1]] = disp[p[1]].Add(f)
		}

		for i := range pos {
			dist := math.Max(disp[i].Len(), minDistance)
			step := math.Min(dist, temp)
			next := pos[i].Add(disp[i].Scale(step / dist))
			pos[i] = geom.Pt(
				geom.Clamp(next.X, nodeSize, size.Width-nodeSize),
				geom.Clamp(next.Y, nodeSize, size.Height-nodeSize),
			)
		}

		temp *= cooling
	}
	return pos
}

// attractionPairs returns each unordered in-range pair of distinct connected
// nodes once, lower index first, in first-seen order.
func attractionPairs(adj Adjacency) [][2]int {
	seen := make(map[[2]int]struct{})
	var out [][2]int
	for i, ns := range adj {
		for _, j := range ns {
			if !adj.inRange(j) || j == i {
				continue
			}
			p := [2]int{min(i, j), max(i, j)}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
