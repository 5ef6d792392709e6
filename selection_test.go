package rectpart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// hchord and vchord build free-standing chords for selection tests.
func hchord(y, x0, x1 int32) *segment {
	return newSegment(&vertex{p: Point{X: x0, Y: y}}, &vertex{p: Point{X: x1, Y: y}}, true)
}

func vchord(x, y0, y1 int32) *segment {
	return newSegment(&vertex{p: Point{X: x, Y: y0}}, &vertex{p: Point{X: x, Y: y1}}, false)
}

func TestSelectChordsEmpty(t *testing.T) {
	split, err := selectChords(nil, nil)
	assert.NoError(t, err)
	assert.Len(t, split, 0)
}

func TestSelectChordsNoCrossing(t *testing.T) {
	// disjoint chords: all of them are kept
	hdiags := []*segment{hchord(1, 0, 2), hchord(5, 0, 2)}
	vdiags := []*segment{vchord(10, 0, 2)}
	split, err := selectChords(hdiags, vdiags)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []*segment{hdiags[0], hdiags[1], vdiags[0]}, split)
}

func TestSelectChordsCrossing(t *testing.T) {
	// K2,2 as in the plus sign: chords meeting at their endpoints cross
	// too, and the two parallel horizontal chords survive.
	hdiags := []*segment{hchord(1, 1, 2), hchord(2, 1, 2)}
	vdiags := []*segment{vchord(1, 1, 2), vchord(2, 1, 2)}
	split, err := selectChords(hdiags, vdiags)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []*segment{hdiags[0], hdiags[1]}, split)
}

func TestSelectChordsStar(t *testing.T) {
	// one horizontal chord crossed by two verticals: the verticals win
	hdiags := []*segment{hchord(1, 0, 4)}
	vdiags := []*segment{vchord(1, 0, 2), vchord(3, 0, 2)}
	split, err := selectChords(hdiags, vdiags)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []*segment{vdiags[0], vdiags[1]}, split)
}

func TestFindCrossings(t *testing.T) {
	hdiags := []*segment{hchord(1, 0, 4), hchord(3, 2, 6)}
	vdiags := []*segment{vchord(2, 0, 2), vchord(5, 0, 2), vchord(8, 0, 9)}
	for i, s := range hdiags {
		s.num = i
	}
	for j, s := range vdiags {
		s.num = len(hdiags) + j
	}
	edges := findCrossings(hdiags, vdiags)
	// v(2) crosses h(1); v(5) misses h(1) on x and h(3) on y -
	// x=5 is inside h(3)'s [2,6] but y=3 is outside v(5)'s [0,2];
	// v(8) is clear of both.
	if assert.Len(t, edges, 1) {
		assert.Equal(t, 0, edges[0].U)
		assert.Equal(t, 2, edges[0].V)
	}
}
