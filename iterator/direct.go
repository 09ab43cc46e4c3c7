// File: direct.go
// Role: direct adjacency iterators: position indexing over a complex's
// transpose-pair matrices, O(1) per Advance.
// AI-HINT (file):
//   - EdgeVertexIterator's ordered flag is accepted for API symmetry with
//     FaceEdgeIterator but has no observable effect: an EV row always
//     has exactly 2 entries in canonical from/to position order, so
//     there is no "unordered" alternative to fall back to.

package iterator

import (
	"github.com/larshq/simplexmesh/handle"
	"github.com/larshq/simplexmesh/simplex"
)

// VertexEdgeIterator walks the edges incident to a vertex, in VE's
// stored order.
type VertexEdgeIterator struct {
	c   *simplex.Complex
	v   handle.VertexHandle
	pos int
	n   int
}

// NewVertexEdgeIterator builds a VertexEdgeIterator over v's incident edges.
func NewVertexEdgeIterator(c *simplex.Complex, v handle.VertexHandle) *VertexEdgeIterator {
	return &VertexEdgeIterator{c: c, v: v, n: c.NumIncidentEdges(v)}
}

// Done reports whether every incident edge has been visited.
func (it *VertexEdgeIterator) Done() bool { return it.pos >= it.n }

// Current returns the edge at the iterator's position.
func (it *VertexEdgeIterator) Current() handle.EdgeHandle {
	if it.Done() {
		return handle.InvalidEdgeHandle()
	}
	return it.c.EdgeAt(it.v, it.pos)
}

// Advance moves to the next incident edge.
func (it *VertexEdgeIterator) Advance() {
	if !it.Done() {
		it.pos++
	}
}

// EdgeVertexIterator walks an edge's two vertices.
type EdgeVertexIterator struct {
	c       *simplex.Complex
	e       handle.EdgeHandle
	ordered bool
	pos     int
}

// NewEdgeVertexIterator builds an EdgeVertexIterator over e's two
// endpoints. ordered is accepted for symmetry with FaceEdgeIterator; see
// the file AI-HINT.
func NewEdgeVertexIterator(c *simplex.Complex, e handle.EdgeHandle, ordered bool) *EdgeVertexIterator {
	return &EdgeVertexIterator{c: c, e: e, ordered: ordered}
}

// Done reports whether both endpoints have been visited.
func (it *EdgeVertexIterator) Done() bool { return it.pos >= 2 || !it.c.EdgeExists(it.e) }

// Current returns the endpoint at the iterator's position.
func (it *EdgeVertexIterator) Current() handle.VertexHandle {
	if it.Done() {
		return handle.InvalidVertexHandle()
	}
	return it.c.VertexOf(it.e, it.pos)
}

// Advance moves to the other endpoint.
func (it *EdgeVertexIterator) Advance() {
	if !it.Done() {
		it.pos++
	}
}

// EdgeFaceIterator walks the faces incident to an edge, in EF's stored order.
type EdgeFaceIterator struct {
	c   *simplex.Complex
	e   handle.EdgeHandle
	pos int
	n   int
}

// NewEdgeFaceIterator builds an EdgeFaceIterator over e's incident faces.
func NewEdgeFaceIterator(c *simplex.Complex, e handle.EdgeHandle) *EdgeFaceIterator {
	return &EdgeFaceIterator{c: c, e: e, n: c.NumIncidentFaces(e)}
}

// Done reports whether every incident face has been visited.
func (it *EdgeFaceIterator) Done() bool { return it.pos >= it.n }

// Current returns the face at the iterator's position.
func (it *EdgeFaceIterator) Current() handle.FaceHandle {
	if it.Done() {
		return handle.InvalidFaceHandle()
	}
	return it.c.FaceAt(it.e, it.pos)
}

// Advance moves to the next incident face.
func (it *EdgeFaceIterator) Advance() {
	if !it.Done() {
		it.pos++
	}
}

// FaceEdgeIterator walks a face's three edges, either in the face's
// oriented cycle (ordered=true, via NextEdge starting at position 0) or
// in FE's stored order (ordered=false).
type FaceEdgeIterator struct {
	c       *simplex.Complex
	f       handle.FaceHandle
	ordered bool
	pos     int
	cur     handle.EdgeHandle
}

// NewFaceEdgeIterator builds a FaceEdgeIterator over f's three edges.
func NewFaceEdgeIterator(c *simplex.Complex, f handle.FaceHandle, ordered bool) *FaceEdgeIterator {
	it := &FaceEdgeIterator{c: c, f: f, ordered: ordered, cur: handle.InvalidEdgeHandle()}
	if c.FaceExists(f) {
		it.cur = c.EdgeOf(f, 0)
	}
	return it
}

// Done reports whether every edge has been visited.
func (it *FaceEdgeIterator) Done() bool { return it.pos >= 3 || !it.cur.IsValid() }

// Current returns the edge at the iterator's position.
func (it *FaceEdgeIterator) Current() handle.EdgeHandle {
	if it.Done() {
		return handle.InvalidEdgeHandle()
	}
	return it.cur
}

// Advance moves to the next edge, per the iterator's ordered mode.
func (it *FaceEdgeIterator) Advance() {
	if it.Done() {
		return
	}
	it.pos++
	if it.pos >= 3 {
		it.cur = handle.InvalidEdgeHandle()
		return
	}
	if it.ordered {
		it.cur = it.c.NextEdge(it.f, it.cur)
	} else {
		it.cur = it.c.EdgeOf(it.f, it.pos)
	}
}

// FaceTetIterator walks the tets incident to a face, in FT's stored order.
type FaceTetIterator struct {
	c   *simplex.Complex
	f   handle.FaceHandle
	pos int
	n   int
}

// NewFaceTetIterator builds a FaceTetIterator over f's incident tets.
func NewFaceTetIterator(c *simplex.Complex, f handle.FaceHandle) *FaceTetIterator {
	return &FaceTetIterator{c: c, f: f, n: c.NumIncidentTets(f)}
}

// Done reports whether every incident tet has been visited.
func (it *FaceTetIterator) Done() bool { return it.pos >= it.n }

// Current returns the tet at the iterator's position.
func (it *FaceTetIterator) Current() handle.TetHandle {
	if it.Done() {
		return handle.InvalidTetHandle()
	}
	return it.c.TetAt(it.f, it.pos)
}

// Advance moves to the next incident tet.
func (it *FaceTetIterator) Advance() {
	if !it.Done() {
		it.pos++
	}
}

// TetFaceIterator walks a tet's four faces in TF's fixed position order.
type TetFaceIterator struct {
	c   *simplex.Complex
	t   handle.TetHandle
	pos int
}

// NewTetFaceIterator builds a TetFaceIterator over t's four faces.
func NewTetFaceIterator(c *simplex.Complex, t handle.TetHandle) *TetFaceIterator {
	return &TetFaceIterator{c: c, t: t}
}

// Done reports whether all four faces have been visited.
func (it *TetFaceIterator) Done() bool { return it.pos >= 4 || !it.c.TetExists(it.t) }

// Current returns the face at the iterator's position.
func (it *TetFaceIterator) Current() handle.FaceHandle {
	if it.Done() {
		return handle.InvalidFaceHandle()
	}
	return it.c.FaceOf(it.t, it.pos)
}

// Advance moves to the next face.
func (it *TetFaceIterator) Advance() {
	if !it.Done() {
		it.pos++
	}
}
