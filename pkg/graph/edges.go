package graph

import "github.com/leetpulse/dskit/pkg/geom"

// IsUndirected reports whether every in-range entry i→j has a matching j→i.
// Out-of-range entries are ignored.
func IsUndirected(adj Adjacency) bool {
	sets := make([]map[int]struct{}, len(adj))
	for i, ns := range adj {
		sets[i] = make(map[int]struct{}, len(ns))
		for _, j := range ns {
			sets[i][j] = struct{}{}
		}
	}
	for i, ns := range adj {
		for _, j := range ns {
			if !adj.inRange(j) {
				continue
			}
			if _, ok := sets[j][i]; !ok {
				return false
			}
		}
	}
	return true
}

// buildEdges emits edges in adjacency order. Undirected graphs emit each
// connection once, from the lower index; directed graphs emit every in-range
// entry.
func buildEdges(adj Adjacency, pos []geom.Point, undirected bool, newID func() string) []Edge {
	var edges []Edge
	seen := make(map[[2]int]struct{})
	for i, ns := range adj {
		for _, j := range ns {
			if !adj.inRange(j) {
				continue
			}
			if undirected {
				if j < i {
					continue
				}
				key := [2]int{i, j}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
			}
			edges = append(edges, Edge{
				ID:        newID(),
				FromIndex: i,
				ToIndex:   j,
				From:      pos[i],
				To:        pos[j],
				Directed:  !undirected,
			})
		}
	}
	return edges
}
