// File: setbacked.go
// Role: set-backed iterators: eagerly compose two or three direct hops,
// deduplicate through a gods/sets/treeset, then walk the
// resulting sorted-unique slice. Snapshotted at construction, so later
// mutation of the complex cannot invalidate the walk itself (though a
// visited handle may since have been deleted).

package iterator

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/larshq/simplexmesh/handle"
	"github.com/larshq/simplexmesh/simplex"
)

func vertexCmp(a, b interface{}) int {
	av, bv := a.(handle.VertexHandle).Idx(), b.(handle.VertexHandle).Idx()
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func edgeCmp(a, b interface{}) int {
	av, bv := a.(handle.EdgeHandle).Idx(), b.(handle.EdgeHandle).Idx()
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func faceCmp(a, b interface{}) int {
	av, bv := a.(handle.FaceHandle).Idx(), b.(handle.FaceHandle).Idx()
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func tetCmp(a, b interface{}) int {
	av, bv := a.(handle.TetHandle).Idx(), b.(handle.TetHandle).Idx()
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// VertexFaceIterator walks the faces reachable from a vertex through its
// incident edges, deduplicated.
type VertexFaceIterator struct {
	values []handle.FaceHandle
	pos    int
}

// NewVertexFaceIterator builds a VertexFaceIterator over the faces
// touching v.
func NewVertexFaceIterator(c *simplex.Complex, v handle.VertexHandle) *VertexFaceIterator {
	set := treeset.NewWith(faceCmp)
	for i, ne := 0, c.NumIncidentEdges(v); i < ne; i++ {
		e := c.EdgeAt(v, i)
		for j, nf := 0, c.NumIncidentFaces(e); j < nf; j++ {
			set.Add(c.FaceAt(e, j))
		}
	}
	return &VertexFaceIterator{values: faceValues(set)}
}

// Done reports whether every face has been visited.
func (it *VertexFaceIterator) Done() bool { return it.pos >= len(it.values) }

// Current returns the face at the iterator's position.
func (it *VertexFaceIterator) Current() handle.FaceHandle {
	if it.Done() {
		return handle.InvalidFaceHandle()
	}
	return it.values[it.pos]
}

// Advance moves to the next face.
func (it *VertexFaceIterator) Advance() {
	if !it.Done() {
		it.pos++
	}
}

// VertexTetIterator walks the tets reachable from a vertex through its
// incident edges and faces, deduplicated.
type VertexTetIterator struct {
	values []handle.TetHandle
	pos    int
}

// NewVertexTetIterator builds a VertexTetIterator over the tets touching v.
func NewVertexTetIterator(c *simplex.Complex, v handle.VertexHandle) *VertexTetIterator {
	set := treeset.NewWith(tetCmp)
	for i, ne := 0, c.NumIncidentEdges(v); i < ne; i++ {
		e := c.EdgeAt(v, i)
		for j, nf := 0, c.NumIncidentFaces(e); j < nf; j++ {
			f := c.FaceAt(e, j)
			for k, nt := 0, c.NumIncidentTets(f); k < nt; k++ {
				set.Add(c.TetAt(f, k))
			}
		}
	}
	return &VertexTetIterator{values: tetValues(set)}
}

// Done reports whether every tet has been visited.
func (it *VertexTetIterator) Done() bool { return it.pos >= len(it.values) }

// Current returns the tet at the iterator's position.
func (it *VertexTetIterator) Current() handle.TetHandle {
	if it.Done() {
		return handle.InvalidTetHandle()
	}
	return it.values[it.pos]
}

// Advance moves to the next tet.
func (it *VertexTetIterator) Advance() {
	if !it.Done() {
		it.pos++
	}
}

// TetVertexIterator walks the vertices reachable from a tet through its
// faces and edges, deduplicated.
type TetVertexIterator struct {
	values []handle.VertexHandle
	pos    int
}

// NewTetVertexIterator builds a TetVertexIterator over t's constitutive
// vertices.
func NewTetVertexIterator(c *simplex.Complex, t handle.TetHandle) *TetVertexIterator {
	set := treeset.NewWith(vertexCmp)
	for i := 0; i < 4; i++ {
		f := c.FaceOf(t, i)
		for j := 0; j < 3; j++ {
			e := c.EdgeOf(f, j)
			set.Add(c.FromVertex(e))
			set.Add(c.ToVertex(e))
		}
	}
	return &TetVertexIterator{values: vertexValues(set)}
}

// Done reports whether every vertex has been visited.
func (it *TetVertexIterator) Done() bool { return it.pos >= len(it.values) }

// Current returns the vertex at the iterator's position.
func (it *TetVertexIterator) Current() handle.VertexHandle {
	if it.Done() {
		return handle.InvalidVertexHandle()
	}
	return it.values[it.pos]
}

// Advance moves to the next vertex.
func (it *TetVertexIterator) Advance() {
	if !it.Done() {
		it.pos++
	}
}

// TetEdgeIterator walks the edges reachable from a tet through its
// faces, deduplicated.
type TetEdgeIterator struct {
	values []handle.EdgeHandle
	pos    int
}

// NewTetEdgeIterator builds a TetEdgeIterator over t's constitutive edges.
func NewTetEdgeIterator(c *simplex.Complex, t handle.TetHandle) *TetEdgeIterator {
	set := treeset.NewWith(edgeCmp)
	for i := 0; i < 4; i++ {
		f := c.FaceOf(t, i)
		for j := 0; j < 3; j++ {
			set.Add(c.EdgeOf(f, j))
		}
	}
	return &TetEdgeIterator{values: edgeValues(set)}
}

// Done reports whether every edge has been visited.
func (it *TetEdgeIterator) Done() bool { return it.pos >= len(it.values) }

// Current returns the edge at the iterator's position.
func (it *TetEdgeIterator) Current() handle.EdgeHandle {
	if it.Done() {
		return handle.InvalidEdgeHandle()
	}
	return it.values[it.pos]
}

// Advance moves to the next edge.
func (it *TetEdgeIterator) Advance() {
	if !it.Done() {
		it.pos++
	}
}

// EdgeTetIterator walks the tets reachable from an edge through its
// incident faces, deduplicated.
type EdgeTetIterator struct {
	values []handle.TetHandle
	pos    int
}

// NewEdgeTetIterator builds an EdgeTetIterator over the tets touching e.
func NewEdgeTetIterator(c *simplex.Complex, e handle.EdgeHandle) *EdgeTetIterator {
	set := treeset.NewWith(tetCmp)
	for i, nf := 0, c.NumIncidentFaces(e); i < nf; i++ {
		f := c.FaceAt(e, i)
		for j, nt := 0, c.NumIncidentTets(f); j < nt; j++ {
			set.Add(c.TetAt(f, j))
		}
	}
	return &EdgeTetIterator{values: tetValues(set)}
}

// Done reports whether every tet has been visited.
func (it *EdgeTetIterator) Done() bool { return it.pos >= len(it.values) }

// Current returns the tet at the iterator's position.
func (it *EdgeTetIterator) Current() handle.TetHandle {
	if it.Done() {
		return handle.InvalidTetHandle()
	}
	return it.values[it.pos]
}

// Advance moves to the next tet.
func (it *EdgeTetIterator) Advance() {
	if !it.Done() {
		it.pos++
	}
}

// VertexVertexIterator walks the vertices connected to v by a live edge,
// deduplicated. The one derived relation with no incidence matrix behind
// it; collapse-style one-ring inspection needs exactly this walk.
type VertexVertexIterator struct {
	values []handle.VertexHandle
	pos    int
}

// NewVertexVertexIterator builds a VertexVertexIterator over v's
// edge-connected neighbors.
func NewVertexVertexIterator(c *simplex.Complex, v handle.VertexHandle) *VertexVertexIterator {
	set := treeset.NewWith(vertexCmp)
	for i, ne := 0, c.NumIncidentEdges(v); i < ne; i++ {
		e := c.EdgeAt(v, i)
		set.Add(c.OtherEndpoint(e, v))
	}
	return &VertexVertexIterator{values: vertexValues(set)}
}

// Done reports whether every neighbor has been visited.
func (it *VertexVertexIterator) Done() bool { return it.pos >= len(it.values) }

// Current returns the neighbor at the iterator's position.
func (it *VertexVertexIterator) Current() handle.VertexHandle {
	if it.Done() {
		return handle.InvalidVertexHandle()
	}
	return it.values[it.pos]
}

// Advance moves to the next neighbor.
func (it *VertexVertexIterator) Advance() {
	if !it.Done() {
		it.pos++
	}
}

func vertexValues(set *treeset.Set) []handle.VertexHandle {
	raw := set.Values()
	out := make([]handle.VertexHandle, len(raw))
	for i, x := range raw {
		out[i] = x.(handle.VertexHandle)
	}
	return out
}

func edgeValues(set *treeset.Set) []handle.EdgeHandle {
	raw := set.Values()
	out := make([]handle.EdgeHandle, len(raw))
	for i, x := range raw {
		out[i] = x.(handle.EdgeHandle)
	}
	return out
}

func faceValues(set *treeset.Set) []handle.FaceHandle {
	raw := set.Values()
	out := make([]handle.FaceHandle, len(raw))
	for i, x := range raw {
		out[i] = x.(handle.FaceHandle)
	}
	return out
}

func tetValues(set *treeset.Set) []handle.TetHandle {
	raw := set.Values()
	out := make([]handle.TetHandle, len(raw))
	for i, x := range raw {
		out[i] = x.(handle.TetHandle)
	}
	return out
}
