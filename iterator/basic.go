// File: basic.go
// Role: the four basic arena iterators: scan a kind's arena in index
// order, skipping dead slots.
// AI-HINT (file):
//   - Seeding the start position filters the whole slot range through
//     lo.Filter rather than a hand-written skip loop, per the package's
//     use of samber/lo for generic-collection idioms.

package iterator

import (
	"github.com/samber/lo"

	"github.com/larshq/simplexmesh/handle"
	"github.com/larshq/simplexmesh/simplex"
)

func liveSlots(n int, exists func(int) bool) []int {
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	return lo.Filter(all, func(i int, _ int) bool { return exists(i) })
}

// VertexIterator scans the vertex arena in index order, skipping dead slots.
type VertexIterator struct {
	c   *simplex.Complex
	cur handle.VertexHandle
}

// NewVertexIterator builds a VertexIterator positioned at the first live
// vertex, or done immediately if the complex has none.
func NewVertexIterator(c *simplex.Complex) *VertexIterator {
	it := &VertexIterator{c: c, cur: handle.InvalidVertexHandle()}
	live := liveSlots(c.NumVertexSlots(), func(i int) bool { return c.VertexExists(handle.NewVertexHandle(i)) })
	if len(live) > 0 {
		it.cur = handle.NewVertexHandle(live[0])
	}
	return it
}

// Done reports whether the iterator has exhausted the arena.
func (it *VertexIterator) Done() bool { return !it.cur.IsValid() }

// Current returns the iterator's current vertex.
func (it *VertexIterator) Current() handle.VertexHandle { return it.cur }

// Advance moves to the next live vertex, or to done if none remains.
func (it *VertexIterator) Advance() {
	if it.Done() {
		return
	}
	n := it.c.NumVertexSlots()
	for i := it.cur.Idx() + 1; i < n; i++ {
		h := handle.NewVertexHandle(i)
		if it.c.VertexExists(h) {
			it.cur = h
			return
		}
	}
	it.cur = handle.InvalidVertexHandle()
}

// EdgeIterator scans the edge arena in index order, skipping dead slots.
type EdgeIterator struct {
	c   *simplex.Complex
	cur handle.EdgeHandle
}

// NewEdgeIterator builds an EdgeIterator positioned at the first live edge.
func NewEdgeIterator(c *simplex.Complex) *EdgeIterator {
	it := &EdgeIterator{c: c, cur: handle.InvalidEdgeHandle()}
	live := liveSlots(c.NumEdgeSlots(), func(i int) bool { return c.EdgeExists(handle.NewEdgeHandle(i)) })
	if len(live) > 0 {
		it.cur = handle.NewEdgeHandle(live[0])
	}
	return it
}

// Done reports whether the iterator has exhausted the arena.
func (it *EdgeIterator) Done() bool { return !it.cur.IsValid() }

// Current returns the iterator's current edge.
func (it *EdgeIterator) Current() handle.EdgeHandle { return it.cur }

// Advance moves to the next live edge, or to done if none remains.
func (it *EdgeIterator) Advance() {
	if it.Done() {
		return
	}
	n := it.c.NumEdgeSlots()
	for i := it.cur.Idx() + 1; i < n; i++ {
		h := handle.NewEdgeHandle(i)
		if it.c.EdgeExists(h) {
			it.cur = h
			return
		}
	}
	it.cur = handle.InvalidEdgeHandle()
}

// FaceIterator scans the face arena in index order, skipping dead slots.
type FaceIterator struct {
	c   *simplex.Complex
	cur handle.FaceHandle
}

// NewFaceIterator builds a FaceIterator positioned at the first live face.
func NewFaceIterator(c *simplex.Complex) *FaceIterator {
	it := &FaceIterator{c: c, cur: handle.InvalidFaceHandle()}
	live := liveSlots(c.NumFaceSlots(), func(i int) bool { return c.FaceExists(handle.NewFaceHandle(i)) })
	if len(live) > 0 {
		it.cur = handle.NewFaceHandle(live[0])
	}
	return it
}

// Done reports whether the iterator has exhausted the arena.
func (it *FaceIterator) Done() bool { return !it.cur.IsValid() }

// Current returns the iterator's current face.
func (it *FaceIterator) Current() handle.FaceHandle { return it.cur }

// Advance moves to the next live face, or to done if none remains.
func (it *FaceIterator) Advance() {
	if it.Done() {
		return
	}
	n := it.c.NumFaceSlots()
	for i := it.cur.Idx() + 1; i < n; i++ {
		h := handle.NewFaceHandle(i)
		if it.c.FaceExists(h) {
			it.cur = h
			return
		}
	}
	it.cur = handle.InvalidFaceHandle()
}

// TetIterator scans the tet arena in index order, skipping dead slots.
type TetIterator struct {
	c   *simplex.Complex
	cur handle.TetHandle
}

// NewTetIterator builds a TetIterator positioned at the first live tet.
func NewTetIterator(c *simplex.Complex) *TetIterator {
	it := &TetIterator{c: c, cur: handle.InvalidTetHandle()}
	live := liveSlots(c.NumTetSlots(), func(i int) bool { return c.TetExists(handle.NewTetHandle(i)) })
	if len(live) > 0 {
		it.cur = handle.NewTetHandle(live[0])
	}
	return it
}

// Done reports whether the iterator has exhausted the arena.
func (it *TetIterator) Done() bool { return !it.cur.IsValid() }

// Current returns the iterator's current tet.
func (it *TetIterator) Current() handle.TetHandle { return it.cur }

// Advance moves to the next live tet, or to done if none remains.
func (it *TetIterator) Advance() {
	if it.Done() {
		return
	}
	n := it.c.NumTetSlots()
	for i := it.cur.Idx() + 1; i < n; i++ {
		h := handle.NewTetHandle(i)
		if it.c.TetExists(h) {
			it.cur = h
			return
		}
	}
	it.cur = handle.InvalidTetHandle()
}
