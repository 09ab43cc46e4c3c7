// File: faces.go
// Role: face slot allocation, AddFace/DeleteFace, orientation resolution
// for newly added faces, local edge-cycle walkers and shared-edge helper.

package simplex

import (
	"github.com/samber/lo"

	"github.com/larshq/simplexmesh/handle"
)

func (c *Complex) allocFace() int {
	if v, ok := c.faceFree.Pop(); ok {
		return v.(int)
	}
	idx := c.fe.Rows()
	c.fe.AddRows(1)
	c.ef.AddCols(1)
	c.tf.AddCols(1)
	c.ft.AddRows(1)
	for _, p := range c.faceProps {
		p.resize(c.fe.Rows())
	}
	return idx
}

func (c *Complex) freeFace(idx int) {
	_ = c.fe.ZeroRow(idx)
	c.faceFree.Push(idx)
}

// FaceExists reports whether f refers to a currently live face: a live
// face row always carries exactly 3 FE entries.
func (c *Complex) FaceExists(f handle.FaceHandle) bool {
	if !f.IsValid() || f.Idx() >= c.fe.Rows() {
		return false
	}
	n, err := c.fe.GetNumEntriesInRow(f.Idx())
	return err == nil && n == 3
}

func (c *Complex) headVertex(e handle.EdgeHandle, flipped bool) handle.VertexHandle {
	if flipped {
		return c.FromVertex(e)
	}
	return c.ToVertex(e)
}

// resolveFaceFlips derives the three orientation booleans such that,
// chained head-to-tail around the face, the edges form a closed cycle.
func (c *Complex) resolveFaceFlips(e0, e1, e2 handle.EdgeHandle) (f0, f1, f2 bool) {
	to0 := c.ToVertex(e0)
	f0 = to0 != c.FromVertex(e1) && to0 != c.ToVertex(e1)
	s0 := c.headVertex(e0, f0)
	f1 = s0 != c.FromVertex(e1)
	s1 := c.headVertex(e1, f1)
	f2 = s1 != c.FromVertex(e2)
	return f0, f1, f2
}

// canonicalizeFaceRow rotates f's FE row left until position 0 holds the
// smallest of its edge columns.
func (c *Complex) canonicalizeFaceRow(idx int) {
	n, _ := c.fe.GetNumEntriesInRow(idx)
	for i := 0; i < n; i++ {
		col0, _ := c.fe.GetColByIndex(idx, 0)
		isMin := true
		for p := 1; p < n; p++ {
			colp, _ := c.fe.GetColByIndex(idx, p)
			if colp < col0 {
				isMin = false
				break
			}
		}
		if isMin {
			return
		}
		_ = c.fe.CycleRow(idx)
	}
}

func (c *Complex) faceSharesTwoOrMoreEdges(e0, e1, e2 handle.EdgeHandle) bool {
	target := [3]handle.EdgeHandle{e0, e1, e2}
	for fi := 0; fi < c.fe.Rows(); fi++ {
		n, _ := c.fe.GetNumEntriesInRow(fi)
		if n == 0 {
			continue
		}
		shared := 0
		for _, e := range target {
			if c.fe.Exists(fi, e.Idx()) {
				shared++
			}
		}
		if shared >= 2 {
			return true
		}
	}
	return false
}

func (c *Complex) threeEdgesFormTriangle(e0, e1, e2 handle.EdgeHandle) bool {
	verts := []handle.VertexHandle{
		c.FromVertex(e0), c.ToVertex(e0),
		c.FromVertex(e1), c.ToVertex(e1),
		c.FromVertex(e2), c.ToVertex(e2),
	}
	uniq := lo.Uniq(verts)
	if len(uniq) != 3 {
		return false
	}
	for _, v := range uniq {
		count := 0
		for _, w := range verts {
			if w == v {
				count++
			}
		}
		if count != 2 {
			return false
		}
	}
	return true
}

func (c *Complex) faceSafeChecks(e0, e1, e2 handle.EdgeHandle) bool {
	switch c.duplicateMode {
	case DuplicateArbitrary:
		return true
	case DuplicateRelaxed:
		// overlap with existing faces is fine, an exact same-edge-set
		// duplicate is not
		if c.GetFace(e0, e1, e2).IsValid() {
			return false
		}
	default:
		if c.faceSharesTwoOrMoreEdges(e0, e1, e2) {
			return false
		}
	}
	return c.threeEdgesFormTriangle(e0, e1, e2)
}

// AddFace allocates a face from three edges. Rejects (invalid, no
// mutation) if any edge does not exist or any two are equal. Under safe
// mode, additionally enforces the duplicate/partial-match and
// distinct-vertex-count checks that the current DuplicateMode selects
// (see its values). Resolves orientation, writes the FE
// row in input order with derived signs, then canonicalizes the row.
func (c *Complex) AddFace(e0, e1, e2 handle.EdgeHandle) handle.FaceHandle {
	if !c.EdgeExists(e0) || !c.EdgeExists(e1) || !c.EdgeExists(e2) {
		return handle.InvalidFaceHandle()
	}
	if e0 == e1 || e1 == e2 || e0 == e2 {
		return handle.InvalidFaceHandle()
	}
	if c.safeMode && !c.faceSafeChecks(e0, e1, e2) {
		return handle.InvalidFaceHandle()
	}

	f0, f1, f2 := c.resolveFaceFlips(e0, e1, e2)

	idx := c.allocFace()
	edges := [3]handle.EdgeHandle{e0, e1, e2}
	flips := [3]bool{f0, f1, f2}
	for i := 0; i < 3; i++ {
		sign := 1
		if flips[i] {
			sign = -1
		}
		_ = c.fe.SetByIndex(idx, i, edges[i].Idx(), sign)
		_ = c.ef.Set(edges[i].Idx(), idx, sign)
	}
	c.canonicalizeFaceRow(idx)
	c.numFaces++
	return handle.NewFaceHandle(idx)
}

// DeleteFace removes f if it is live and has no incident tets. Reports
// false and performs no mutation otherwise. If recurse is true, each
// constitutive edge is deleted too, which succeeds only if it has no
// other incident faces.
func (c *Complex) DeleteFace(f handle.FaceHandle, recurse bool) bool {
	if !c.FaceExists(f) {
		return false
	}
	if n, err := c.ft.GetNumEntriesInRow(f.Idx()); err != nil || n != 0 {
		return false
	}
	n, _ := c.fe.GetNumEntriesInRow(f.Idx())
	edges := make([]handle.EdgeHandle, n)
	for i := 0; i < n; i++ {
		col, _ := c.fe.GetColByIndex(f.Idx(), i)
		edges[i] = handle.NewEdgeHandle(col)
		_ = c.ef.Remove(col, f.Idx())
	}
	c.freeFace(f.Idx())
	c.numFaces--
	if recurse {
		for _, e := range edges {
			c.DeleteEdge(e, recurse)
		}
	}
	return true
}

// EdgeOf returns the edge stored at position idx (0, 1 or 2) of f's FE row.
func (c *Complex) EdgeOf(f handle.FaceHandle, idx int) handle.EdgeHandle {
	if !c.FaceExists(f) {
		return handle.InvalidEdgeHandle()
	}
	col, err := c.fe.GetColByIndex(f.Idx(), idx)
	if err != nil {
		return handle.InvalidEdgeHandle()
	}
	return handle.NewEdgeHandle(col)
}

func (c *Complex) edgePositionInFace(f handle.FaceHandle, e handle.EdgeHandle) int {
	n, _ := c.fe.GetNumEntriesInRow(f.Idx())
	for i := 0; i < n; i++ {
		if col, _ := c.fe.GetColByIndex(f.Idx(), i); col == e.Idx() {
			return i
		}
	}
	return -1
}

// NextEdge returns the edge following e in f's fixed 3-cycle of FE
// positions, or invalid if e is not incident to f.
func (c *Complex) NextEdge(f handle.FaceHandle, e handle.EdgeHandle) handle.EdgeHandle {
	if !c.FaceExists(f) {
		return handle.InvalidEdgeHandle()
	}
	pos := c.edgePositionInFace(f, e)
	if pos < 0 {
		return handle.InvalidEdgeHandle()
	}
	return c.EdgeOf(f, (pos+1)%3)
}

// PrevEdge is NextEdge's mirror.
func (c *Complex) PrevEdge(f handle.FaceHandle, e handle.EdgeHandle) handle.EdgeHandle {
	if !c.FaceExists(f) {
		return handle.InvalidEdgeHandle()
	}
	pos := c.edgePositionInFace(f, e)
	if pos < 0 {
		return handle.InvalidEdgeHandle()
	}
	return c.EdgeOf(f, (pos+2)%3)
}

// OrientFaceEdge returns the sign FE stores for (f, e), or 0 if the two
// are not incident or either handle is out of range.
func (c *Complex) OrientFaceEdge(f handle.FaceHandle, e handle.EdgeHandle) int {
	if !c.FaceExists(f) || !c.EdgeExists(e) {
		return 0
	}
	sign, err := c.fe.Get(f.Idx(), e.Idx())
	if err != nil {
		return 0
	}
	return sign
}

// FrontTet returns the tet incident to f whose FT sign is +1, or invalid
// if none.
func (c *Complex) FrontTet(f handle.FaceHandle) handle.TetHandle { return c.tetBySign(f, 1) }

// BackTet returns the tet incident to f whose FT sign is −1, or invalid
// if none.
func (c *Complex) BackTet(f handle.FaceHandle) handle.TetHandle { return c.tetBySign(f, -1) }

func (c *Complex) tetBySign(f handle.FaceHandle, sign int) handle.TetHandle {
	if !c.FaceExists(f) {
		return handle.InvalidTetHandle()
	}
	n, _ := c.ft.GetNumEntriesInRow(f.Idx())
	for i := 0; i < n; i++ {
		val, _ := c.ft.GetValueByIndex(f.Idx(), i)
		if val == sign {
			col, _ := c.ft.GetColByIndex(f.Idx(), i)
			return handle.NewTetHandle(col)
		}
	}
	return handle.InvalidTetHandle()
}

// IsIncidentFaceTet reports whether f is one of t's constitutive faces.
func (c *Complex) IsIncidentFaceTet(f handle.FaceHandle, t handle.TetHandle) bool {
	if !c.FaceExists(f) || !c.TetExists(t) {
		return false
	}
	return c.ft.Exists(f.Idx(), t.Idx())
}

// SharedEdge returns the first column present in both f0's and f1's FE
// rows, or invalid if the faces share no edge.
func (c *Complex) SharedEdge(f0, f1 handle.FaceHandle) handle.EdgeHandle {
	if !c.FaceExists(f0) || !c.FaceExists(f1) {
		return handle.InvalidEdgeHandle()
	}
	n, _ := c.fe.GetNumEntriesInRow(f0.Idx())
	for i := 0; i < n; i++ {
		col, _ := c.fe.GetColByIndex(f0.Idx(), i)
		if c.fe.Exists(f1.Idx(), col) {
			return handle.NewEdgeHandle(col)
		}
	}
	return handle.InvalidEdgeHandle()
}
