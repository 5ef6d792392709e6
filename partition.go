package rectpart

// Partition decomposes poly into the minimum number of axis-aligned
// rectangles whose union is exactly the polygon and whose interiors are
// pairwise disjoint. The order of the returned rectangles is unspecified.
//
// poly must be a simple rectilinear polygon with at least 4 vertices, no
// zero-length edges and no collinear point triples; Normalize can be used
// to clean up raw point lists. Both windings are accepted.
func Partition(poly Polygon) ([]Rect, error) {
	return PartitionContext(NewBuildContext(false), poly)
}

// PartitionContext is Partition with progress messages and per-stage
// durations recorded into ctx.
func PartitionContext(ctx *BuildContext, poly Polygon) ([]Rect, error) {
	defer ctx.runTimer()()

	pts, err := clockwise(poly)
	if err != nil {
		return nil, err
	}

	stop := ctx.stageTimer(StageVertices)
	verts, err := buildVertices(pts)
	stop()
	if err != nil {
		return nil, err
	}
	concave := concaveVertices(verts)
	ctx.Progressf("partition: %d vertices, %d concave", len(verts), len(concave))

	stop = ctx.stageTimer(StageSegments)
	htree, vtree := indexSegments(verts)
	stop()

	stop = ctx.stageTimer(StageDiagonals)
	hdiags := diagonals(concave, len(verts), vtree, true)
	vdiags := diagonals(concave, len(verts), htree, false)
	stop()
	ctx.Progressf("partition: %d horizontal, %d vertical chords", len(hdiags), len(vdiags))

	stop = ctx.stageTimer(StageSelection)
	splitters, err := selectChords(hdiags, vdiags)
	stop()
	if err != nil {
		ctx.Errorf("partition: chord selection: %v", err)
		return nil, err
	}
	ctx.Progressf("partition: %d chords selected", len(splitters))

	stop = ctx.stageTimer(StageSplitting)
	for _, s := range splitters {
		splitSegment(s)
	}
	stop()

	stop = ctx.stageTimer(StageResolution)
	verts = splitConcave(verts)
	stop()

	stop = ctx.stageTimer(StageFaces)
	rects, err := extractFaces(verts)
	stop()
	if err != nil {
		ctx.Errorf("partition: face extraction: %v", err)
		return nil, err
	}

	ctx.Progressf("partition: %d rectangles", len(rects))
	return rects, nil
}
