// File: edges.go
// Role: edge slot allocation, AddEdge/DeleteEdge, edge-level positional
// accessors and orientation queries.

package simplex

import "github.com/larshq/simplexmesh/handle"

func (c *Complex) allocEdge() int {
	if v, ok := c.edgeFree.Pop(); ok {
		return v.(int)
	}
	idx := c.ev.Rows()
	c.ev.AddRows(1)
	c.ve.AddCols(1)
	c.fe.AddCols(1)
	c.ef.AddRows(1)
	for _, p := range c.edgeProps {
		p.resize(c.ev.Rows())
	}
	return idx
}

func (c *Complex) freeEdge(idx int) {
	_ = c.ev.ZeroRow(idx)
	c.edgeFree.Push(idx)
}

// EdgeExists reports whether e refers to a currently live edge: a live
// edge row always carries exactly 2 EV entries; a dead one carries 0.
func (c *Complex) EdgeExists(e handle.EdgeHandle) bool {
	if !e.IsValid() || e.Idx() >= c.ev.Rows() {
		return false
	}
	n, err := c.ev.GetNumEntriesInRow(e.Idx())
	return err == nil && n == 2
}

// edgeBetween returns the live edge connecting v0 and v1 in either
// direction, or invalid if none exists.
func (c *Complex) edgeBetween(v0, v1 handle.VertexHandle) handle.EdgeHandle {
	n, err := c.ve.GetNumEntriesInRow(v0.Idx())
	if err != nil {
		return handle.InvalidEdgeHandle()
	}
	for i := 0; i < n; i++ {
		col, _ := c.ve.GetColByIndex(v0.Idx(), i)
		e := handle.NewEdgeHandle(col)
		if c.OtherEndpoint(e, v0) == v1 {
			return e
		}
	}
	return handle.InvalidEdgeHandle()
}

// AddEdge allocates an edge between v0 and v1. Rejects (returns invalid,
// no mutation) if either vertex is not live, or v0 == v1. Under safe
// mode, unless the duplicate mode is DuplicateArbitrary, additionally
// rejects if a live edge already connects the two vertices in either
// direction.
func (c *Complex) AddEdge(v0, v1 handle.VertexHandle) handle.EdgeHandle {
	if !c.VertexExists(v0) || !c.VertexExists(v1) || v0 == v1 {
		return handle.InvalidEdgeHandle()
	}
	if c.safeMode && c.duplicateMode != DuplicateArbitrary {
		if c.edgeBetween(v0, v1).IsValid() {
			return handle.InvalidEdgeHandle()
		}
	}
	idx := c.allocEdge()
	_ = c.ev.SetByIndex(idx, 0, v0.Idx(), -1)
	_ = c.ev.SetByIndex(idx, 1, v1.Idx(), 1)
	_ = c.ve.Set(v0.Idx(), idx, -1)
	_ = c.ve.Set(v1.Idx(), idx, 1)
	c.numEdges++
	return handle.NewEdgeHandle(idx)
}

// DeleteEdge removes e if it is live and has no incident faces. Reports
// false and performs no mutation otherwise. If recurse is true, each
// endpoint is deleted too, which succeeds only if that endpoint has no
// other incident edges.
func (c *Complex) DeleteEdge(e handle.EdgeHandle, recurse bool) bool {
	if !c.EdgeExists(e) {
		return false
	}
	if n, err := c.ef.GetNumEntriesInRow(e.Idx()); err != nil || n != 0 {
		return false
	}
	from := c.FromVertex(e)
	to := c.ToVertex(e)
	_ = c.ve.Remove(from.Idx(), e.Idx())
	_ = c.ve.Remove(to.Idx(), e.Idx())
	c.freeEdge(e.Idx())
	c.numEdges--
	if recurse {
		c.DeleteVertex(from)
		c.DeleteVertex(to)
	}
	return true
}

// VertexOf returns the vertex stored at position idx (0 or 1) of e's EV
// row: position 0 is "from", position 1 is "to".
func (c *Complex) VertexOf(e handle.EdgeHandle, idx int) handle.VertexHandle {
	if !c.EdgeExists(e) {
		return handle.InvalidVertexHandle()
	}
	col, err := c.ev.GetColByIndex(e.Idx(), idx)
	if err != nil {
		return handle.InvalidVertexHandle()
	}
	return handle.NewVertexHandle(col)
}

// FromVertex is VertexOf(e, 0).
func (c *Complex) FromVertex(e handle.EdgeHandle) handle.VertexHandle { return c.VertexOf(e, 0) }

// ToVertex is VertexOf(e, 1).
func (c *Complex) ToVertex(e handle.EdgeHandle) handle.VertexHandle { return c.VertexOf(e, 1) }

// OtherEndpoint returns the endpoint of e that is not v, or invalid if v
// is not an endpoint of e.
func (c *Complex) OtherEndpoint(e handle.EdgeHandle, v handle.VertexHandle) handle.VertexHandle {
	from, to := c.FromVertex(e), c.ToVertex(e)
	switch v {
	case from:
		return to
	case to:
		return from
	default:
		return handle.InvalidVertexHandle()
	}
}

// OrientEdgeVertex returns the sign EV stores for (e, v): −1 at the from
// vertex, +1 at the to vertex, 0 if the two are not incident or either
// handle is out of range.
func (c *Complex) OrientEdgeVertex(e handle.EdgeHandle, v handle.VertexHandle) int {
	if !c.EdgeExists(e) || !c.VertexExists(v) {
		return 0
	}
	sign, err := c.ev.Get(e.Idx(), v.Idx())
	if err != nil {
		return 0
	}
	return sign
}

// FrontFace returns the face incident to e whose EF sign is +1, or
// invalid if none.
func (c *Complex) FrontFace(e handle.EdgeHandle) handle.FaceHandle { return c.faceBySign(e, 1) }

// BackFace returns the face incident to e whose EF sign is −1, or
// invalid if none.
func (c *Complex) BackFace(e handle.EdgeHandle) handle.FaceHandle { return c.faceBySign(e, -1) }

func (c *Complex) faceBySign(e handle.EdgeHandle, sign int) handle.FaceHandle {
	if !c.EdgeExists(e) {
		return handle.InvalidFaceHandle()
	}
	n, _ := c.ef.GetNumEntriesInRow(e.Idx())
	for i := 0; i < n; i++ {
		val, _ := c.ef.GetValueByIndex(e.Idx(), i)
		if val == sign {
			col, _ := c.ef.GetColByIndex(e.Idx(), i)
			return handle.NewFaceHandle(col)
		}
	}
	return handle.InvalidFaceHandle()
}

// IsIncidentEdgeFace reports whether e is one of f's constitutive edges.
func (c *Complex) IsIncidentEdgeFace(e handle.EdgeHandle, f handle.FaceHandle) bool {
	if !c.EdgeExists(e) || !c.FaceExists(f) {
		return false
	}
	return c.ef.Exists(e.Idx(), f.Idx())
}
