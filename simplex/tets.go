// File: tets.go
// Role: tet slot allocation, AddTet/DeleteTet, orientation resolution for
// newly added tets and local face-cycle walkers.
// AI-HINT (file):
//   - The shared edge used to derive each non-f0 face's flip is
//     recomputed fresh per face pair (SharedEdge(f0, faces[i])), never
//     reused from a previous iteration; a stale shared-edge variable
//     silently mis-orients the fourth face.

package simplex

import (
	"github.com/samber/lo"

	"github.com/larshq/simplexmesh/handle"
)

func (c *Complex) allocTet() int {
	if v, ok := c.tetFree.Pop(); ok {
		return v.(int)
	}
	idx := c.tf.Rows()
	c.tf.AddRows(1)
	c.ft.AddCols(1)
	for _, p := range c.tetProps {
		p.resize(c.tf.Rows())
	}
	return idx
}

func (c *Complex) freeTet(idx int) {
	_ = c.tf.ZeroRow(idx)
	c.tetFree.Push(idx)
}

// TetExists reports whether t refers to a currently live tet: a live tet
// row always carries exactly 4 TF entries.
func (c *Complex) TetExists(t handle.TetHandle) bool {
	if !t.IsValid() || t.Idx() >= c.tf.Rows() {
		return false
	}
	n, err := c.tf.GetNumEntriesInRow(t.Idx())
	return err == nil && n == 4
}

func (c *Complex) tetFacesShareTwoOrMore(faces [4]handle.FaceHandle) bool {
	for ti := 0; ti < c.tf.Rows(); ti++ {
		n, _ := c.tf.GetNumEntriesInRow(ti)
		if n == 0 {
			continue
		}
		shared := 0
		for _, f := range faces {
			if c.tf.Exists(ti, f.Idx()) {
				shared++
			}
		}
		if shared >= 2 {
			return true
		}
	}
	return false
}

func (c *Complex) fourFacesFormTet(faces [4]handle.FaceHandle) bool {
	var edges []handle.EdgeHandle
	for _, f := range faces {
		for i := 0; i < 3; i++ {
			edges = append(edges, c.EdgeOf(f, i))
		}
	}
	uniq := lo.Uniq(edges)
	if len(uniq) != 6 {
		return false
	}
	for _, e := range uniq {
		count := 0
		for _, w := range edges {
			if w == e {
				count++
			}
		}
		if count != 2 {
			return false
		}
	}
	return true
}

func (c *Complex) tetSafeChecks(faces [4]handle.FaceHandle) bool {
	switch c.duplicateMode {
	case DuplicateArbitrary:
		return true
	case DuplicateRelaxed:
		if c.GetTet(faces[0], faces[1], faces[2], faces[3]).IsValid() {
			return false
		}
	default:
		if c.tetFacesShareTwoOrMore(faces) {
			return false
		}
	}
	return c.fourFacesFormTet(faces)
}

// AddTet allocates a tet from four faces. Rejects (invalid, no mutation)
// if any face does not exist or any two are equal. Under safe mode,
// additionally enforces the duplicate/partial-match and
// distinct-edge-count checks that the current DuplicateMode selects.
// f0's TF sign is fixed by flipFace0 (+1 if true, −1 if false); each other
// face's sign is derived so it traverses its edge shared with f0 in the
// opposite direction.
func (c *Complex) AddTet(f0, f1, f2, f3 handle.FaceHandle, flipFace0 bool) handle.TetHandle {
	faces := [4]handle.FaceHandle{f0, f1, f2, f3}
	for _, f := range faces {
		if !c.FaceExists(f) {
			return handle.InvalidTetHandle()
		}
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if faces[i] == faces[j] {
				return handle.InvalidTetHandle()
			}
		}
	}
	if c.safeMode && !c.tetSafeChecks(faces) {
		return handle.InvalidTetHandle()
	}

	s0 := -1
	if flipFace0 {
		s0 = 1
	}
	signs := [4]int{s0, 0, 0, 0}
	for i := 1; i < 4; i++ {
		e := c.SharedEdge(f0, faces[i])
		signInF0 := c.OrientFaceEdge(f0, e)
		signInFI := c.OrientFaceEdge(faces[i], e)
		signs[i] = -s0 * signInF0 * signInFI
	}

	idx := c.allocTet()
	for i := 0; i < 4; i++ {
		_ = c.tf.SetByIndex(idx, i, faces[i].Idx(), signs[i])
		_ = c.ft.Set(faces[i].Idx(), idx, signs[i])
	}
	c.numTets++
	return handle.NewTetHandle(idx)
}

// DeleteTet removes t if live. Tets have no higher incidences, so there
// is no orphan precondition. If recurse is true, each constitutive face
// is deleted too, which succeeds only if it has no other incident tets.
func (c *Complex) DeleteTet(t handle.TetHandle, recurse bool) bool {
	if !c.TetExists(t) {
		return false
	}
	n, _ := c.tf.GetNumEntriesInRow(t.Idx())
	faces := make([]handle.FaceHandle, n)
	for i := 0; i < n; i++ {
		col, _ := c.tf.GetColByIndex(t.Idx(), i)
		faces[i] = handle.NewFaceHandle(col)
		_ = c.ft.Remove(col, t.Idx())
	}
	c.freeTet(t.Idx())
	c.numTets--
	if recurse {
		for _, f := range faces {
			c.DeleteFace(f, recurse)
		}
	}
	return true
}

// FaceOf returns the face stored at position idx (0..3) of t's TF row.
func (c *Complex) FaceOf(t handle.TetHandle, idx int) handle.FaceHandle {
	if !c.TetExists(t) {
		return handle.InvalidFaceHandle()
	}
	col, err := c.tf.GetColByIndex(t.Idx(), idx)
	if err != nil {
		return handle.InvalidFaceHandle()
	}
	return handle.NewFaceHandle(col)
}

func (c *Complex) facePositionInTet(t handle.TetHandle, f handle.FaceHandle) int {
	n, _ := c.tf.GetNumEntriesInRow(t.Idx())
	for i := 0; i < n; i++ {
		if col, _ := c.tf.GetColByIndex(t.Idx(), i); col == f.Idx() {
			return i
		}
	}
	return -1
}

// NextFace returns the face following f in t's fixed 4-cycle of TF
// positions, or invalid if f is not incident to t.
func (c *Complex) NextFace(t handle.TetHandle, f handle.FaceHandle) handle.FaceHandle {
	if !c.TetExists(t) {
		return handle.InvalidFaceHandle()
	}
	pos := c.facePositionInTet(t, f)
	if pos < 0 {
		return handle.InvalidFaceHandle()
	}
	return c.FaceOf(t, (pos+1)%4)
}

// PrevFace is NextFace's mirror.
func (c *Complex) PrevFace(t handle.TetHandle, f handle.FaceHandle) handle.FaceHandle {
	if !c.TetExists(t) {
		return handle.InvalidFaceHandle()
	}
	pos := c.facePositionInTet(t, f)
	if pos < 0 {
		return handle.InvalidFaceHandle()
	}
	return c.FaceOf(t, (pos+3)%4)
}

// OrientTetFace returns the sign TF stores for (t, f), or 0 if the two
// are not incident or either handle is out of range.
func (c *Complex) OrientTetFace(t handle.TetHandle, f handle.FaceHandle) int {
	if !c.TetExists(t) || !c.FaceExists(f) {
		return 0
	}
	sign, err := c.tf.Get(t.Idx(), f.Idx())
	if err != nil {
		return 0
	}
	return sign
}

// SharedFace returns the first column present in both t0's and t1's TF
// rows, or invalid if the tets share no face.
func (c *Complex) SharedFace(t0, t1 handle.TetHandle) handle.FaceHandle {
	if !c.TetExists(t0) || !c.TetExists(t1) {
		return handle.InvalidFaceHandle()
	}
	n, _ := c.tf.GetNumEntriesInRow(t0.Idx())
	for i := 0; i < n; i++ {
		col, _ := c.tf.GetColByIndex(t0.Idx(), i)
		if c.tf.Exists(t1.Idx(), col) {
			return handle.NewFaceHandle(col)
		}
	}
	return handle.InvalidFaceHandle()
}
