package rectpart

import "fmt"

// Polygon is a closed rectilinear polygon, given as its corners in
// traversal order. The edge from the last point back to the first is
// implicit. Either winding is accepted; Partition orients its own working
// copy.
type Polygon []Point

// signedArea2 returns twice the signed shoelace area of p, positive for a
// counter-clockwise traversal in a y-up frame.
func (p Polygon) signedArea2() int64 {
	var s int64
	for i, pt := range p {
		nx := p[(i+1)%len(p)]
		s += int64(pt.X)*int64(nx.Y) - int64(nx.X)*int64(pt.Y)
	}
	return s
}

// Area returns the unsigned area enclosed by p.
func (p Polygon) Area() int64 {
	a2 := p.signedArea2()
	if a2 < 0 {
		a2 = -a2
	}
	return a2 / 2
}

// clockwise validates the gross shape of poly and returns a clockwise
// (y-up frame) copy of its points, ready for corner classification.
func clockwise(poly Polygon) ([]Point, error) {
	if len(poly) < 4 {
		return nil, fmt.Errorf("%w: got %d vertices, need at least 4", ErrMalformedPolygon, len(poly))
	}
	pts := make([]Point, len(poly))
	copy(pts, poly)
	a2 := poly.signedArea2()
	if a2 == 0 {
		return nil, fmt.Errorf("%w: zero area", ErrMalformedPolygon)
	}
	if a2 > 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts, nil
}

// Normalize returns a copy of p with duplicate consecutive points, a
// duplicated closing point and collinear midpoints removed. It does not
// change the winding. Callers holding unnormalized data (hand-written
// files, generator output) should normalize before partitioning.
func (p Polygon) Normalize() Polygon {
	out := append(Polygon(nil), p...)
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	for changed := true; changed && len(out) > 2; {
		changed = false
		for i := 0; i < len(out); {
			n := len(out)
			prev, cur, next := out[(i+n-1)%n], out[i], out[(i+1)%n]
			collinear := (prev.X == cur.X && cur.X == next.X) ||
				(prev.Y == cur.Y && cur.Y == next.Y)
			if cur == next || collinear {
				out = append(out[:i], out[i+1:]...)
				changed = true
				continue
			}
			i++
		}
	}
	return out
}

// ConcaveCount returns the number of concave (reflex) corners of p.
func (p Polygon) ConcaveCount() (int, error) {
	pts, err := clockwise(p)
	if err != nil {
		return 0, err
	}
	verts, err := buildVertices(pts)
	if err != nil {
		return 0, err
	}
	return len(concaveVertices(verts)), nil
}
