package rectpart

import (
	assert "github.com/arl/assertgo"
	"github.com/arl/go-rectpart/interval"
)

// splitConcave eliminates every concave corner left after chord splitting
// by extending a horizontal cut from the corner to the nearest vertical
// edge on its interior side, and splicing the boundary along the cut.
//
// Returns the vertex list grown by the two cut vertices added per
// resolved corner.
func splitConcave(verts []*vertex) []*vertex {
	// Index the current vertical edges by the side their interior faces.
	// On a clockwise boundary an upward edge bounds interior lying to its
	// right, so it can only be hit by a cut shot leftward, and vice
	// versa.
	var upItems, downItems []interval.Item
	for _, v := range verts {
		if v.p.X != v.next.p.X {
			continue
		}
		if v.next.p.Y > v.p.Y {
			upItems = append(upItems, newSegment(v, v.next, false))
		} else {
			downItems = append(downItems, newSegment(v, v.next, false))
		}
	}
	uptree := interval.NewTree(upItems...)
	downtree := interval.NewTree(downItems...)

	// Cut vertices are appended while iterating; they are created
	// non-concave so only original corners are ever processed.
	for i := 0; i < len(verts); i++ {
		v := verts[i]
		if !v.concave {
			continue
		}
		y := v.p.Y

		// Interior side of the corner along x.
		dir := int32(-1)
		incomingVertical := v.prev.p.X == v.p.X
		if incomingVertical {
			if v.prev.p.Y < y {
				dir = 1
			}
		} else if v.next.p.Y > y {
			dir = 1
		}

		// Nearest vertical edge crossed by the cut.
		var hit *segment
		if dir > 0 {
			for _, it := range downtree.Query(y) {
				s := it.(*segment)
				if s.from.p.X > v.p.X && (hit == nil || s.from.p.X < hit.from.p.X) {
					hit = s
				}
			}
		} else {
			for _, it := range uptree.Query(y) {
				s := it.(*segment)
				if s.from.p.X < v.p.X && (hit == nil || s.from.p.X > hit.from.p.X) {
					hit = s
				}
			}
		}
		assert.True(hit != nil, "no vertical edge faces concave corner %v", v.p)

		// Split the hit edge with two cut vertices at (x*, y).
		a := &vertex{p: Point{X: hit.from.p.X, Y: y}, index: -1}
		b := &vertex{p: Point{X: hit.from.p.X, Y: y}, index: -1}

		a.setPrev(hit.from)
		hit.from.setNext(a)
		b.setNext(hit.to)
		hit.to.setPrev(b)

		// The two halves of the hit edge keep its facing.
		tree := uptree
		if dir > 0 {
			tree = downtree
		}
		tree.Remove(hit)
		tree.Insert(newSegment(hit.from, a, false))
		tree.Insert(newSegment(b, hit.to, false))

		v.concave = false
		verts = append(verts, a, b)

		if incomingVertical {
			a.setNext(v.next)
			b.setPrev(v)
		} else {
			a.setNext(v)
			b.setPrev(v.prev)
		}
		a.next.setPrev(a)
		b.prev.setNext(b)
	}
	return verts
}
