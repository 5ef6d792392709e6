package rectpart

import "github.com/arl/go-rectpart/interval"

// segment is an undirected axis-aligned segment between two boundary
// vertices: a polygon edge, or a chord joining two concave corners. It is
// keyed in interval trees by its extent on the varying coordinate.
type segment struct {
	from, to   *vertex
	horizontal bool
	iv         interval.Interval
	num        int // chord label in the crossing graph
}

func newSegment(from, to *vertex, horizontal bool) *segment {
	a, b := from.p.Y, to.p.Y
	if horizontal {
		a, b = from.p.X, to.p.X
	}
	if a > b {
		a, b = b, a
	}
	return &segment{
		from:       from,
		to:         to,
		horizontal: horizontal,
		iv:         interval.Interval{Lo: a, Hi: b},
	}
}

// Interval implements interval.Item.
func (s *segment) Interval() interval.Interval { return s.iv }

// indexSegments walks the boundary once and indexes the horizontal and
// vertical edges into two interval trees, keyed by the extent on their
// varying coordinate.
func indexSegments(verts []*vertex) (htree, vtree *interval.Tree) {
	var hsegs, vsegs []interval.Item
	for _, v := range verts {
		if v.p.X == v.next.p.X {
			vsegs = append(vsegs, newSegment(v, v.next, false))
		} else {
			hsegs = append(hsegs, newSegment(v, v.next, true))
		}
	}
	return interval.NewTree(hsegs...), interval.NewTree(vsegs...)
}
