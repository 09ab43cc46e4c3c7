// File: vertices.go
// Role: vertex slot allocation, AddVertex/DeleteVertex, the global
// cyclic vertex walker.

package simplex

import "github.com/larshq/simplexmesh/handle"

// allocVertex reuses a free-list slot or grows the vertex arena by one,
// broadcasting the new size to every registered VertexProperty.
func (c *Complex) allocVertex() int {
	if v, ok := c.vertexFree.Pop(); ok {
		idx := v.(int)
		c.vertexLive[idx] = true
		return idx
	}
	idx := len(c.vertexLive)
	c.vertexLive = append(c.vertexLive, true)
	c.ev.AddCols(1)
	c.ve.AddRows(1)
	for _, p := range c.vertexProps {
		p.resize(len(c.vertexLive))
	}
	return idx
}

func (c *Complex) freeVertex(idx int) {
	c.vertexLive[idx] = false
	c.vertexFree.Push(idx)
}

// AddVertex allocates a vertex slot and returns its handle. Always succeeds.
func (c *Complex) AddVertex() handle.VertexHandle {
	idx := c.allocVertex()
	c.numVerts++
	return handle.NewVertexHandle(idx)
}

// VertexExists reports whether v refers to a currently live vertex.
func (c *Complex) VertexExists(v handle.VertexHandle) bool {
	return v.IsValid() && v.Idx() < len(c.vertexLive) && c.vertexLive[v.Idx()]
}

// DeleteVertex removes v if it is live and has no incident edges.
// Reports false and performs no mutation otherwise.
func (c *Complex) DeleteVertex(v handle.VertexHandle) bool {
	if !c.VertexExists(v) {
		return false
	}
	n, err := c.ve.GetNumEntriesInRow(v.Idx())
	if err != nil {
		return false
	}
	if n != 0 {
		return false
	}
	c.freeVertex(v.Idx())
	c.numVerts--
	return true
}

// NextVertex scans the vertex arena cyclically from v, skipping dead
// slots, and returns the next live vertex. Returns invalid if v is
// invalid, out of range, or no live vertex exists.
func (c *Complex) NextVertex(v handle.VertexHandle) handle.VertexHandle {
	n := len(c.vertexLive)
	if n == 0 || !v.IsValid() || v.Idx() >= n {
		return handle.InvalidVertexHandle()
	}
	for i := 1; i <= n; i++ {
		idx := (v.Idx() + i) % n
		if c.vertexLive[idx] {
			return handle.NewVertexHandle(idx)
		}
	}
	return handle.InvalidVertexHandle()
}

// PrevVertex is NextVertex's mirror, scanning backward.
func (c *Complex) PrevVertex(v handle.VertexHandle) handle.VertexHandle {
	n := len(c.vertexLive)
	if n == 0 || !v.IsValid() || v.Idx() >= n {
		return handle.InvalidVertexHandle()
	}
	for i := 1; i <= n; i++ {
		idx := ((v.Idx()-i)%n + n) % n
		if c.vertexLive[idx] {
			return handle.NewVertexHandle(idx)
		}
	}
	return handle.InvalidVertexHandle()
}
