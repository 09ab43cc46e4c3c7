// File: composed.go
// Role: FaceVertexIterator — the one composed (non-set-backed) iterator:
// walks the face's ordered edge cycle and picks each edge's from/to
// endpoint by its sign within the face.

package iterator

import (
	"github.com/larshq/simplexmesh/handle"
	"github.com/larshq/simplexmesh/simplex"
)

// FaceVertexIterator walks a face's three vertices by composing the
// ordered edge cycle with each edge's sign: +1 selects the edge's from
// vertex, −1 its to vertex.
type FaceVertexIterator struct {
	c     *simplex.Complex
	f     handle.FaceHandle
	edges *FaceEdgeIterator
}

// NewFaceVertexIterator builds a FaceVertexIterator over f's three vertices.
func NewFaceVertexIterator(c *simplex.Complex, f handle.FaceHandle) *FaceVertexIterator {
	return &FaceVertexIterator{c: c, f: f, edges: NewFaceEdgeIterator(c, f, true)}
}

// Done reports whether every vertex has been visited.
func (it *FaceVertexIterator) Done() bool { return it.edges.Done() }

// Current returns the vertex at the iterator's position.
func (it *FaceVertexIterator) Current() handle.VertexHandle {
	if it.Done() {
		return handle.InvalidVertexHandle()
	}
	e := it.edges.Current()
	if it.c.OrientFaceEdge(it.f, e) > 0 {
		return it.c.FromVertex(e)
	}
	return it.c.ToVertex(e)
}

// Advance moves to the next vertex.
func (it *FaceVertexIterator) Advance() { it.edges.Advance() }
