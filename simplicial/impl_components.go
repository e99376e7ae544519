// SPDX-License-Identifier: MIT
// Package: topolath/simplicial
//
// impl_components.go: connected components of the 1-skeleton.

package simplicial

import "slices"

// Components partitions the vertex set into the connected components of the
// 1-skeleton. Each component is ascending; components are ordered by their
// smallest vertex. For a closed complex len(Components()) equals β_0.
//
// Complexity: O(V + E · log V).
func (c *Complex[V]) Components() [][]V {
	verts := c.Vertices()
	index := func(v V) int {
		i, _ := slices.BinarySearch(verts, v)
		return i
	}
	adj := make([][]int, len(verts))
	for _, e := range c.DimSimplices(1) {
		u, w := index(e.vs[0]), index(e.vs[1])
		adj[u] = append(adj[u], w)
		adj[w] = append(adj[w], u)
	}

	seen := make([]bool, len(verts))
	var comps [][]V
	for i0 := range verts {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, w := range adj[queue[qi]] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		slices.Sort(queue)
		comp := make([]V, len(queue))
		for j, idx := range queue {
			comp[j] = verts[idx]
		}
		comps = append(comps, comp)
	}

	return comps
}
