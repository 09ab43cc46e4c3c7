// File: collapse.go
// Role: CollapseEdge — no-fold precondition, delete the incident faces
// and the edge, relabel every edge touching the removed vertex onto the
// kept one, merge the duplicate edges that relabeling creates, then
// delete the removed vertex.

package surgery

import (
	"github.com/larshq/simplexmesh/handle"
	"github.com/larshq/simplexmesh/simplex"
)

// wouldFold reports whether collapsing e would merge two faces that are
// not actually adjacent through e: for each face incident to e, walk its
// other two edges' other incident faces and collect their edges; if the
// same edge turns up twice within one such walk, the collapse would fold
// the complex onto itself and must be rejected.
func wouldFold(c *simplex.Complex, e handle.EdgeHandle, faces []handle.FaceHandle) bool {
	for _, f := range faces {
		seen := make(map[int]bool)
		for k := 0; k < 3; k++ {
			edge := c.EdgeOf(f, k)
			if edge == e {
				continue
			}
			for _, curFace := range incidentFaces(c, edge) {
				if curFace == f {
					continue
				}
				for kk := 0; kk < 3; kk++ {
					curEdge := c.EdgeOf(curFace, kk)
					if seen[curEdge.Idx()] {
						return true
					}
					seen[curEdge.Idx()] = true
				}
			}
		}
	}
	return false
}

// CollapseEdge removes e by merging its two endpoints into one, keeping
// the endpoint that is not vertexToRemove. Returns the kept vertex, or
// invalid (no mutation) if vertexToRemove is not an endpoint of e or the
// collapse would fold two non-adjacent faces together.
func CollapseEdge(c *simplex.Complex, e handle.EdgeHandle, vertexToRemove handle.VertexHandle) handle.VertexHandle {
	if !c.EdgeExists(e) {
		return handle.InvalidVertexHandle()
	}
	from, to := c.FromVertex(e), c.ToVertex(e)
	var vertexToKeep handle.VertexHandle
	switch vertexToRemove {
	case from:
		vertexToKeep = to
	case to:
		vertexToKeep = from
	default:
		return handle.InvalidVertexHandle()
	}

	faces := incidentFaces(c, e)
	if wouldFold(c, e, faces) {
		return handle.InvalidVertexHandle()
	}
	for _, f := range faces {
		if c.NumIncidentTets(f) != 0 {
			return handle.InvalidVertexHandle()
		}
	}

	for _, f := range faces {
		c.DeleteFace(f, false)
	}
	c.DeleteEdge(e, false)

	n := c.NumIncidentEdges(vertexToRemove)
	touching := make([]handle.EdgeHandle, n)
	for i := 0; i < n; i++ {
		touching[i] = c.EdgeAt(vertexToRemove, i)
	}
	for _, edge := range touching {
		c.RelabelEdgeVertex(edge, vertexToRemove, vertexToKeep)
	}

	for _, pair := range c.FindDuplicateEdgesAt(vertexToKeep) {
		keep, discard := pair[0], pair[1]
		flip := c.FromVertex(keep) != c.FromVertex(discard)
		c.MergeEdgeInFaces(discard, keep, flip)
		c.DiscardMergedEdge(discard)
	}

	c.DeleteVertex(vertexToRemove)
	return vertexToKeep
}
