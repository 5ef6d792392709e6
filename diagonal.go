package rectpart

import (
	"sort"

	"github.com/arl/go-rectpart/interval"
)

// diagonals enumerates the candidate chords joining concave corners that
// share a coordinate. With horizontal true it produces horizontal chords
// (corners sharing a y) and tree must index the vertical boundary edges;
// with horizontal false the roles flip.
//
// n is the original vertex count, used to recognize polygon-adjacent
// corner pairs, which can never form a chord.
func diagonals(concave []*vertex, n int, tree *interval.Tree, horizontal bool) []*segment {
	sorted := append([]*vertex(nil), concave...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i].p, sorted[j].p
		if horizontal {
			if a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.X < b.X
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	var diags []*segment
	for i := 1; i < len(sorted); i++ {
		u, w := sorted[i-1], sorted[i]
		if horizontal && u.p.Y != w.p.Y {
			continue
		}
		if !horizontal && u.p.X != w.p.X {
			continue
		}
		if d := iAbs(int32(u.index - w.index)); d == 1 || int(d) == n-1 {
			continue // polygon-adjacent, the chord would be an edge
		}
		if isDiagonal(u, w, tree, horizontal) {
			diags = append(diags, newSegment(u, w, horizontal))
		}
	}
	return diags
}

// isDiagonal reports whether the open segment between the aligned corners
// u and w lies entirely inside the polygon. tree indexes the boundary
// edges perpendicular to the candidate chord; any such edge anchored
// strictly between the two corners blocks the chord. Edges merely touching
// an endpoint do not.
func isDiagonal(u, w *vertex, tree *interval.Tree, horizontal bool) bool {
	var q, a, b int32
	if horizontal {
		q, a, b = u.p.Y, u.p.X, w.p.X
	} else {
		q, a, b = u.p.X, u.p.Y, w.p.Y
	}
	if a > b {
		a, b = b, a
	}
	for _, it := range tree.Query(q) {
		s := it.(*segment)
		start := s.from.p.X
		if !horizontal {
			start = s.from.p.Y
		}
		if a < start && start < b {
			return false
		}
	}
	return true
}
