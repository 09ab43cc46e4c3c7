// File: adjacency.go
// Role: position-indexed direct-adjacency accessors backing the iterator
// package's VE/EF/FT direct iterators. Complements the
// fixed-arity accessors in edges.go/faces.go/tets.go (VertexOf/EdgeOf/
// FaceOf), which cover EV/FE/TF; these cover the transposes, whose row
// lengths vary with degree rather than being fixed at 2/3/4.

package simplex

import "github.com/larshq/simplexmesh/handle"

// NumIncidentEdges returns how many edges are currently incident to v.
func (c *Complex) NumIncidentEdges(v handle.VertexHandle) int {
	if !c.VertexExists(v) {
		return 0
	}
	n, _ := c.ve.GetNumEntriesInRow(v.Idx())
	return n
}

// EdgeAt returns the edge stored at position pos of v's VE row.
func (c *Complex) EdgeAt(v handle.VertexHandle, pos int) handle.EdgeHandle {
	if !c.VertexExists(v) {
		return handle.InvalidEdgeHandle()
	}
	col, err := c.ve.GetColByIndex(v.Idx(), pos)
	if err != nil {
		return handle.InvalidEdgeHandle()
	}
	return handle.NewEdgeHandle(col)
}

// NumIncidentFaces returns how many faces are currently incident to e.
func (c *Complex) NumIncidentFaces(e handle.EdgeHandle) int {
	if !c.EdgeExists(e) {
		return 0
	}
	n, _ := c.ef.GetNumEntriesInRow(e.Idx())
	return n
}

// FaceAt returns the face stored at position pos of e's EF row.
func (c *Complex) FaceAt(e handle.EdgeHandle, pos int) handle.FaceHandle {
	if !c.EdgeExists(e) {
		return handle.InvalidFaceHandle()
	}
	col, err := c.ef.GetColByIndex(e.Idx(), pos)
	if err != nil {
		return handle.InvalidFaceHandle()
	}
	return handle.NewFaceHandle(col)
}

// NumIncidentTets returns how many tets are currently incident to f.
func (c *Complex) NumIncidentTets(f handle.FaceHandle) int {
	if !c.FaceExists(f) {
		return 0
	}
	n, _ := c.ft.GetNumEntriesInRow(f.Idx())
	return n
}

// TetAt returns the tet stored at position pos of f's FT row.
func (c *Complex) TetAt(f handle.FaceHandle, pos int) handle.TetHandle {
	if !c.FaceExists(f) {
		return handle.InvalidTetHandle()
	}
	col, err := c.ft.GetColByIndex(f.Idx(), pos)
	if err != nil {
		return handle.InvalidTetHandle()
	}
	return handle.NewTetHandle(col)
}
