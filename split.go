package rectpart

import assert "github.com/arl/assertgo"

// splitSegment splices the boundary along the chord s, cutting one cycle
// into two. Both halves keep a copy of the chord as a boundary edge, and
// both chord endpoints stop being concave.
//
// The relink depends on whether the edge coming into each endpoint runs
// parallel to the chord, which is read off the chord's constant
// coordinate.
func splitSegment(s *segment) {
	a, b := s.from, s.to
	assert.True(a.concave && b.concave, "chord endpoints %v %v must be concave", a.p, b.p)

	pa, na := a.prev, a.next
	pb, nb := b.prev, b.next

	var ao, bo bool
	if s.horizontal {
		ao = pa.p.Y == a.p.Y
		bo = pb.p.Y == b.p.Y
	} else {
		ao = pa.p.X == a.p.X
		bo = pb.p.X == b.p.X
	}

	switch {
	case ao && bo:
		a.setPrev(pb)
		pb.setNext(a)
		b.setPrev(pa)
		pa.setNext(b)
	case ao && !bo:
		a.setPrev(b)
		b.setNext(a)
		pa.setNext(nb)
		nb.setPrev(pa)
	case !ao && bo:
		a.setNext(b)
		b.setPrev(a)
		na.setPrev(pb)
		pb.setNext(na)
	default:
		a.setNext(nb)
		nb.setPrev(a)
		b.setNext(na)
		na.setPrev(b)
	}

	a.concave = false
	b.concave = false
}
