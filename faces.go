package rectpart

import "fmt"

// extractFaces walks every boundary cycle left after surgery and emits
// its bounding rectangle. Each cycle bounds an axis-aligned rectangle by
// construction, so bounds are extents.
func extractFaces(verts []*vertex) ([]Rect, error) {
	for _, v := range verts {
		v.visited = false
	}

	rects := make([]Rect, 0, 8)
	var path []*vertex
	for _, v := range verts {
		if v.visited {
			continue
		}
		path = path[:0]
		minx, miny := v.p.X, v.p.Y
		maxx, maxy := minx, miny
		for p := v; !p.visited; p = p.next {
			p.visited = true
			path = append(path, p)
			minx = iMin(minx, p.p.X)
			miny = iMin(miny, p.p.Y)
			maxx = iMax(maxx, p.p.X)
			maxy = iMax(maxy, p.p.Y)
		}
		if minx == maxx || miny == maxy {
			var err error
			minx, miny, maxx, maxy, err = repairFace(path, minx, miny, maxx, maxy)
			if err != nil {
				return nil, err
			}
		}
		rects = append(rects, Rect{Min: Point{X: minx, Y: miny}, Max: Point{X: maxx, Y: maxy}})
	}
	return rects, nil
}

// repairFace recovers the extents of a zero-area cycle. Such a sliver
// appears when cut vertices share their coordinates with the corners they
// were spliced next to; the boundary the extreme vertices belonged to
// before surgery, still reachable through their backup links, carries the
// missing extent.
func repairFace(path []*vertex, minx, miny, maxx, maxy int32) (int32, int32, int32, int32, error) {
	v1, v2 := path[0], path[0]
	if minx == maxx {
		for _, p := range path {
			if p.p.Y < v1.p.Y {
				v1 = p
			}
			if p.p.Y > v2.p.Y {
				v2 = p
			}
		}
	} else {
		for _, p := range path {
			if p.p.X < v1.p.X {
				v1 = p
			}
			if p.p.X > v2.p.X {
				v2 = p
			}
		}
	}

	for _, b := range []*vertex{v1.backupPrev, v1.backupNext, v2.backupPrev, v2.backupNext} {
		if b == nil {
			continue
		}
		minx = iMin(minx, b.p.X)
		miny = iMin(miny, b.p.Y)
		maxx = iMax(maxx, b.p.X)
		maxy = iMax(maxy, b.p.Y)
	}

	if minx == maxx || miny == maxy {
		return 0, 0, 0, 0, fmt.Errorf("%w: %d-vertex cycle collapsed at %v",
			ErrDegenerateFace, len(path), Point{X: minx, Y: miny})
	}
	return minx, miny, maxx, maxy, nil
}
