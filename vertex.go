package rectpart

import "fmt"

// vertex is a corner of the polygon boundary under surgery. Vertices form
// one or more simple cycles through next/prev; backupNext and backupPrev
// hold the link values from before the most recent change, which is what
// lets face extraction recover the extents of a collapsed face.
type vertex struct {
	p       Point
	index   int  // insertion order, -1 for vertices added by cuts
	concave bool // reflex flag, cleared when the corner is resolved

	next, prev             *vertex
	backupNext, backupPrev *vertex

	visited bool // face extraction scratch
}

// setNext and setPrev are the only mutation path for the links: they fold
// the previous value into the backup exactly when the link changes.

func (v *vertex) setNext(n *vertex) {
	if v.next == n {
		return
	}
	v.backupNext = v.next
	v.next = n
}

func (v *vertex) setPrev(p *vertex) {
	if v.prev == p {
		return
	}
	v.backupPrev = v.prev
	v.prev = p
}

// buildVertices classifies every corner of pts, which must be a clockwise
// traversal in a y-up frame, and links the corners into one cyclic
// boundary.
//
// A corner is concave when the interior angle at it is 3π/2. With the
// incoming edge vertical the corner turns back over itself horizontally
// when the vertical travel direction agrees with the horizontal one; with
// the incoming edge horizontal the roles flip.
func buildVertices(pts []Point) ([]*vertex, error) {
	n := len(pts)
	verts := make([]*vertex, n)
	for i := range pts {
		prev := pts[(i+n-1)%n]
		cur := pts[i]
		next := pts[(i+1)%n]

		var concave bool
		switch {
		case prev == cur:
			return nil, fmt.Errorf("%w: zero-length edge at vertex %d", ErrMalformedPolygon, i)
		case prev.X == cur.X && cur.X == next.X,
			prev.Y == cur.Y && cur.Y == next.Y:
			return nil, fmt.Errorf("%w: successive edges share an axis at vertex %d", ErrMalformedPolygon, i)
		case prev.X == cur.X:
			concave = (prev.Y < cur.Y) == (cur.X > next.X)
		case prev.Y == cur.Y:
			concave = (prev.X < cur.X) != (cur.Y > next.Y)
		default:
			return nil, fmt.Errorf("%w: edge into vertex %d is not axis-aligned", ErrMalformedPolygon, i)
		}
		verts[i] = &vertex{p: cur, index: i, concave: concave}
	}
	for i, v := range verts {
		v.setNext(verts[(i+1)%n])
		v.setPrev(verts[(i+n-1)%n])
	}
	return verts, nil
}

// concaveVertices returns the concave corners of verts in list order.
func concaveVertices(verts []*vertex) []*vertex {
	var concave []*vertex
	for _, v := range verts {
		if v.concave {
			concave = append(concave, v)
		}
	}
	return concave
}
