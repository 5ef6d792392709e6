// Package rectpart decomposes rectilinear polygons into the minimum
// number of axis-aligned rectangles with pairwise disjoint interiors.
//
// The partition is computed in a fixed pipeline:
//
//  - Classify every corner as convex or concave and link the boundary
//    into a cyclic list.
//  - Index the boundary edges into interval trees.
//  - Enumerate the candidate chords joining concave corners.
//  - Select a maximum non-crossing subset of chords, via Hopcroft-Karp
//    matching and König's theorem on the chord crossing graph.
//  - Splice the boundary along each selected chord.
//  - Resolve the remaining concave corners with horizontal cuts.
//  - Walk the resulting boundary cycles and emit one rectangle each.
//
// The chord selection step is what makes the rectangle count provably
// minimal for simple rectilinear polygons, rather than merely valid.
package rectpart
