package interval

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

type span struct {
	iv Interval
	id int
}

func (s *span) Interval() Interval { return s.iv }

func sp(lo, hi int32) *span { return &span{iv: Interval{Lo: lo, Hi: hi}} }

func ids(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.(*span).id
	}
	sort.Ints(out)
	return out
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Lo: 2, Hi: 5}
	ttable := []struct {
		p    int32
		want bool
	}{
		{1, false},
		{2, true},
		{3, true},
		{5, true},
		{6, false},
	}
	for _, tt := range ttable {
		if got := iv.Contains(tt.p); got != tt.want {
			t.Fatalf("Contains(%d) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestTreeQuery(t *testing.T) {
	spans := []*span{sp(0, 10), sp(2, 4), sp(3, 3), sp(5, 8), sp(12, 14)}
	for i, s := range spans {
		s.id = i
	}
	items := make([]Item, len(spans))
	for i, s := range spans {
		items[i] = s
	}
	tree := NewTree(items...)
	assert.Equal(t, 5, tree.Len())

	ttable := []struct {
		p    int32
		want []int
	}{
		{-1, nil},
		{0, []int{0}},
		{3, []int{0, 1, 2}},
		{4, []int{0, 1}},
		{6, []int{0, 3}},
		{11, nil},
		{12, []int{4}},
		{15, nil},
	}
	for _, tt := range ttable {
		got := ids(tree.Query(tt.p))
		if len(tt.want) == 0 {
			assert.Len(t, got, 0, "Query(%d)", tt.p)
			continue
		}
		assert.Equal(t, tt.want, got, "Query(%d)", tt.p)
	}
}

func TestTreeEmpty(t *testing.T) {
	tree := NewTree()
	assert.Equal(t, 0, tree.Len())
	assert.Len(t, tree.Query(0), 0)
	assert.False(t, tree.Remove(sp(0, 1)))
}

func TestTreeInsertRemove(t *testing.T) {
	a, b := sp(0, 4), sp(0, 4) // same interval, distinct items
	c := sp(2, 6)

	tree := NewTree(a, c)
	tree.Insert(b)
	assert.Equal(t, 3, tree.Len())
	assert.Len(t, tree.Query(3), 3)

	// removal is by identity: b stays indexed
	assert.True(t, tree.Remove(a))
	assert.Len(t, tree.Query(3), 2)
	assert.False(t, tree.Remove(a), "a is already gone")

	assert.True(t, tree.Remove(c))
	got := tree.Query(3)
	if assert.Len(t, got, 1) {
		assert.True(t, got[0].(*span) == b)
	}
}

func TestTreeRemoveRoot(t *testing.T) {
	// force internal-node deletions with both children present
	var items []Item
	for i := int32(0); i < 7; i++ {
		items = append(items, sp(i, i+2))
	}
	tree := NewTree(items...)
	for i, it := range items {
		assert.True(t, tree.Remove(it), "remove #%d", i)
		// every remaining item must still be reachable
		for _, rem := range items[i+1:] {
			got := tree.Query(rem.(*span).iv.Lo)
			found := false
			for _, g := range got {
				if g == rem {
					found = true
				}
			}
			assert.True(t, found, "item %v lost after removing #%d", rem.(*span).iv, i)
		}
	}
	assert.Equal(t, 0, tree.Len())
}

func TestTreeRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var live []*span
	var items []Item
	for i := 0; i < 100; i++ {
		lo := int32(rng.Intn(200))
		s := &span{iv: Interval{Lo: lo, Hi: lo + int32(rng.Intn(40))}, id: i}
		live = append(live, s)
		items = append(items, s)
	}
	tree := NewTree(items...)

	check := func() {
		for p := int32(-5); p < 250; p++ {
			var want []int
			for _, s := range live {
				if s.iv.Contains(p) {
					want = append(want, s.id)
				}
			}
			got := ids(tree.Query(p))
			sort.Ints(want)
			if len(want) == 0 {
				assert.Len(t, got, 0, "Query(%d)", p)
			} else {
				assert.Equal(t, want, got, "Query(%d)", p)
			}
		}
	}
	check()

	// interleave removals and insertions, re-checking as we go
	for round := 0; round < 5; round++ {
		for i := 0; i < 10 && len(live) > 0; i++ {
			k := rng.Intn(len(live))
			assert.True(t, tree.Remove(live[k]))
			live = append(live[:k], live[k+1:]...)
		}
		for i := 0; i < 5; i++ {
			lo := int32(rng.Intn(200))
			s := &span{iv: Interval{Lo: lo, Hi: lo + int32(rng.Intn(40))}, id: 1000 + round*10 + i}
			tree.Insert(s)
			live = append(live, s)
		}
		check()
	}
	assert.Equal(t, len(live), tree.Len())
}
