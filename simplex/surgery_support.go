// File: surgery_support.go
// Role: low-level primitives exported specifically for package surgery —
// in-place edge relabeling and duplicate-edge merging that the public
// Add*/Delete* surface has no reason to offer on its own.
// AI-HINT (file):
//   - RelabelEdgeVertex rewrites EV/VE in place (not delete-then-add) so
//     any property data attached to the edge survives, per the collapse
//     algorithm's requirement.

package simplex

import "github.com/larshq/simplexmesh/handle"

// RelabelEdgeVertex rewrites e's EV/VE entries so the endpoint equal to
// oldV becomes newV, preserving e's stored sign at that position. Reports
// false (no mutation) if e is not live, newV is not live, or oldV is not
// currently an endpoint of e.
func (c *Complex) RelabelEdgeVertex(e handle.EdgeHandle, oldV, newV handle.VertexHandle) bool {
	if !c.EdgeExists(e) || !c.VertexExists(newV) {
		return false
	}
	var pos int
	switch oldV {
	case c.FromVertex(e):
		pos = 0
	case c.ToVertex(e):
		pos = 1
	default:
		return false
	}
	sign, _ := c.ev.GetValueByIndex(e.Idx(), pos)
	_ = c.ev.SetByIndex(e.Idx(), pos, newV.Idx(), sign)
	_ = c.ve.Remove(oldV.Idx(), e.Idx())
	_ = c.ve.Set(newV.Idx(), e.Idx(), sign)
	return true
}

// FindDuplicateEdgesAt groups v's incident edges by their other endpoint
// and, for each group of two or more, returns one pair per extra edge:
// (first edge of the group, that extra edge), for the caller to merge.
func (c *Complex) FindDuplicateEdgesAt(v handle.VertexHandle) [][2]handle.EdgeHandle {
	byOther := make(map[int][]handle.EdgeHandle)
	for i, n := 0, c.NumIncidentEdges(v); i < n; i++ {
		e := c.EdgeAt(v, i)
		other := c.OtherEndpoint(e, v)
		byOther[other.Idx()] = append(byOther[other.Idx()], e)
	}
	var dups [][2]handle.EdgeHandle
	for _, es := range byOther {
		for i := 1; i < len(es); i++ {
			dups = append(dups, [2]handle.EdgeHandle{es[0], es[i]})
		}
	}
	return dups
}

// EdgesAgreeAtVertex reports whether e0 and e1, both incident to v,
// traverse v with the same sign (i.e. point the same direction relative
// to their shared endpoint at v).
func (c *Complex) EdgesAgreeAtVertex(e0, e1 handle.EdgeHandle, v handle.VertexHandle) bool {
	return c.OrientEdgeVertex(e0, v) == c.OrientEdgeVertex(e1, v)
}

// MergeEdgeInFaces rewrites every face currently using discard to use
// keep instead, negating the stored sign when flip is true. It does not
// touch discard's VE/EV entries; call DiscardMergedEdge afterward to
// finish removing it.
func (c *Complex) MergeEdgeInFaces(discard, keep handle.EdgeHandle, flip bool) bool {
	if !c.EdgeExists(discard) || !c.EdgeExists(keep) {
		return false
	}
	n := c.NumIncidentFaces(discard)
	faces := make([]handle.FaceHandle, n)
	for i := 0; i < n; i++ {
		faces[i] = c.FaceAt(discard, i)
	}
	for _, f := range faces {
		sign := c.OrientFaceEdge(f, discard)
		if flip {
			sign = -sign
		}
		pos := c.edgePositionInFace(f, discard)
		_ = c.fe.SetByIndex(f.Idx(), pos, keep.Idx(), sign)
		_ = c.ef.Remove(discard.Idx(), f.Idx())
		_ = c.ef.Set(keep.Idx(), f.Idx(), sign)
		// substituting a column can change the row's minimum, so the
		// canonical rotation has to be re-established
		c.canonicalizeFaceRow(f.Idx())
	}
	return true
}

// DiscardMergedEdge removes an edge that MergeEdgeInFaces has already
// emptied of incident faces: clears its VE entries at both endpoints,
// zeros its EV row and frees the slot.
func (c *Complex) DiscardMergedEdge(e handle.EdgeHandle) bool {
	if !c.EdgeExists(e) {
		return false
	}
	if n, err := c.ef.GetNumEntriesInRow(e.Idx()); err != nil || n != 0 {
		return false
	}
	from, to := c.FromVertex(e), c.ToVertex(e)
	_ = c.ve.Remove(from.Idx(), e.Idx())
	_ = c.ve.Remove(to.Idx(), e.Idx())
	c.freeEdge(e.Idx())
	c.numEdges--
	return true
}
