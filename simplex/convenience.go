// File: convenience.go
// Role: reverse lookups by constitutive elements (GetEdge/GetFace/GetTet)
// and the vertex-based AddFace/AddTet convenience overloads built on them.
// AI-HINT (file):
//   - Go has no overloading, so "AddFace(v,v,v)" from the public interface
//     becomes AddFaceFromVertices; "AddTet(v,v,v,v)" becomes
//     AddTetFromVertices.
//   - The vertex convenience overloads reuse an existing edge for any pair
//     that already has one; AddTetFromVertices also reuses an existing face
//     for any triple that already has one. Add* is only called for
//     genuinely new sub-simplices and for the requested simplex itself.

package simplex

import "github.com/larshq/simplexmesh/handle"

// GetEdge returns the live edge connecting v0 and v1 in either direction,
// ignoring orientation, or invalid if none exists.
func (c *Complex) GetEdge(v0, v1 handle.VertexHandle) handle.EdgeHandle {
	if !c.VertexExists(v0) || !c.VertexExists(v1) {
		return handle.InvalidEdgeHandle()
	}
	return c.edgeBetween(v0, v1)
}

// GetFace returns the live face whose three constitutive edges are
// exactly {e0, e1, e2}, in any order and ignoring orientation, or invalid
// if none exists.
func (c *Complex) GetFace(e0, e1, e2 handle.EdgeHandle) handle.FaceHandle {
	target := [3]handle.EdgeHandle{e0, e1, e2}
	for fi := 0; fi < c.fe.Rows(); fi++ {
		n, _ := c.fe.GetNumEntriesInRow(fi)
		if n != 3 {
			continue
		}
		matches := true
		for _, e := range target {
			if !c.fe.Exists(fi, e.Idx()) {
				matches = false
				break
			}
		}
		if matches {
			return handle.NewFaceHandle(fi)
		}
	}
	return handle.InvalidFaceHandle()
}

// GetTet returns the live tet whose four constitutive faces are exactly
// {f0, f1, f2, f3}, in any order and ignoring orientation, or invalid if
// none exists.
func (c *Complex) GetTet(f0, f1, f2, f3 handle.FaceHandle) handle.TetHandle {
	target := [4]handle.FaceHandle{f0, f1, f2, f3}
	for ti := 0; ti < c.tf.Rows(); ti++ {
		n, _ := c.tf.GetNumEntriesInRow(ti)
		if n != 4 {
			continue
		}
		matches := true
		for _, f := range target {
			if !c.tf.Exists(ti, f.Idx()) {
				matches = false
				break
			}
		}
		if matches {
			return handle.NewTetHandle(ti)
		}
	}
	return handle.InvalidTetHandle()
}

func (c *Complex) edgeOrAdd(v0, v1 handle.VertexHandle) handle.EdgeHandle {
	if e := c.edgeBetween(v0, v1); e.IsValid() {
		return e
	}
	return c.AddEdge(v0, v1)
}

func (c *Complex) faceOrAddFromVertices(va, vb, vc handle.VertexHandle) handle.FaceHandle {
	ea := c.edgeOrAdd(va, vb)
	eb := c.edgeOrAdd(vb, vc)
	ec := c.edgeOrAdd(vc, va)
	if !ea.IsValid() || !eb.IsValid() || !ec.IsValid() {
		return handle.InvalidFaceHandle()
	}
	if f := c.GetFace(ea, eb, ec); f.IsValid() {
		return f
	}
	return c.AddFace(ea, eb, ec)
}

// AddFaceFromVertices is the vertex-based convenience overload of AddFace:
// it reuses any edge that already connects a pair of the three vertices,
// adding only the ones that don't exist yet, then adds the face through
// AddFace, so a face over the same three edges is subject to AddFace's
// safe-mode duplicate rejection rather than being returned again.
func (c *Complex) AddFaceFromVertices(v0, v1, v2 handle.VertexHandle) handle.FaceHandle {
	ea := c.edgeOrAdd(v0, v1)
	eb := c.edgeOrAdd(v1, v2)
	ec := c.edgeOrAdd(v2, v0)
	if !ea.IsValid() || !eb.IsValid() || !ec.IsValid() {
		return handle.InvalidFaceHandle()
	}
	return c.AddFace(ea, eb, ec)
}

// AddTetFromVertices is the vertex-based convenience overload of AddTet:
// it reuses any of the tet's four triangular faces that already exist
// (via AddFaceFromVertices' reuse), then wires the tet with flipFace0=false.
func (c *Complex) AddTetFromVertices(v0, v1, v2, v3 handle.VertexHandle) handle.TetHandle {
	f0 := c.faceOrAddFromVertices(v0, v1, v2)
	f1 := c.faceOrAddFromVertices(v0, v1, v3)
	f2 := c.faceOrAddFromVertices(v0, v2, v3)
	f3 := c.faceOrAddFromVertices(v1, v2, v3)
	if !f0.IsValid() || !f1.IsValid() || !f2.IsValid() || !f3.IsValid() {
		return handle.InvalidTetHandle()
	}
	return c.AddTet(f0, f1, f2, f3, false)
}
