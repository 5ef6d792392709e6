package rectpart

import (
	"fmt"

	assert "github.com/arl/assertgo"
	"github.com/arl/go-rectpart/interval"
	"github.com/arl/go-rectpart/matching"
)

// selectChords returns a maximum subset of pairwise non-crossing chords.
//
// Two chords may be cut simultaneously only if they do not cross, and
// chords of the same orientation never cross, so the crossing graph is
// bipartite: horizontal chords on the left, vertical on the right. A
// maximum independent set of that graph is, by König's theorem, the
// complement of a minimum vertex cover, whose size is the size of a
// maximum matching.
func selectChords(hdiags, vdiags []*segment) ([]*segment, error) {
	nh, nv := len(hdiags), len(vdiags)
	if nh+nv == 0 {
		return nil, nil
	}

	// Left labels 0..nh-1, right labels nh..nh+nv-1. All buffers below
	// span both partitions so labels index them uniformly.
	for i, s := range hdiags {
		s.num = i
	}
	for j, s := range vdiags {
		s.num = nh + j
	}

	edges := findCrossings(hdiags, vdiags)

	matched, err := matching.HopcroftKarp(nh+nv, edges)
	if err != nil {
		return nil, err
	}

	match := make([]int, nh+nv)
	for i := range match {
		match[i] = -1
	}
	for _, e := range matched {
		u, v := e.U, e.V
		if u >= nh {
			u, v = v, u
		}
		assert.True(u < nh && v >= nh, "matched pair (%d,%d) stays on one side of the chord partition", e.U, e.V)
		match[u], match[v] = v, u
	}

	adj := make([][]int, nh+nv)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	// König alternation, seeded from every unmatched right node, as an
	// explicit work-list. A node on the work-list is a right node; its
	// unvisited neighbors are left nodes, necessarily matched, and the
	// search continues from their partners.
	visit := make([]bool, nh+nv)
	var stack []int
	for r := nh; r < nh+nv; r++ {
		if match[r] >= 0 || visit[r] {
			continue
		}
		visit[r] = true
		stack = append(stack[:0], r)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, l := range adj[u] {
				if visit[l] {
					continue
				}
				visit[l] = true
				w := match[l]
				if w < 0 {
					return nil, fmt.Errorf("%w: free chord %d alternates to free chord %d", ErrUnreachableMatching, u, l)
				}
				if !visit[w] {
					visit[w] = true
					stack = append(stack, w)
				}
			}
		}
	}

	// Minimum cover: visited left ∪ unvisited right. The independent set
	// is its complement.
	var split []*segment
	for i, s := range hdiags {
		if !visit[i] {
			split = append(split, s)
		}
	}
	for _, s := range vdiags {
		if visit[s.num] {
			split = append(split, s)
		}
	}
	return split, nil
}

// findCrossings builds the edge list of the crossing graph. A horizontal
// and a vertical chord cross when they share a point, endpoints included:
// chords meeting only at a corner still cannot both be cut.
func findCrossings(hdiags, vdiags []*segment) []matching.Edge {
	var items []interval.Item
	for _, s := range hdiags {
		items = append(items, s)
	}
	htree := interval.NewTree(items...)

	var edges []matching.Edge
	for _, v := range vdiags {
		x := v.from.p.X
		for _, it := range htree.Query(x) {
			h := it.(*segment)
			y := h.from.p.Y
			if v.iv.Lo <= y && y <= v.iv.Hi {
				edges = append(edges, matching.Edge{U: h.num, V: v.num})
			}
		}
	}
	return edges
}
