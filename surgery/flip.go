// File: flip.go
// Role: FlipEdge — replace the diagonal of the quad formed by e's two
// incident faces with the other diagonal.

package surgery

import (
	"github.com/larshq/simplexmesh/handle"
	"github.com/larshq/simplexmesh/simplex"
)

// FlipEdge replaces e with the opposite diagonal of the quadrilateral
// formed by its two incident faces. Requires e to have exactly two
// incident faces and the opposite diagonal to not already exist.
// Returns the new edge, or invalid (no mutation) on either violation.
func FlipEdge(c *simplex.Complex, e handle.EdgeHandle) handle.EdgeHandle {
	if !c.EdgeExists(e) {
		return handle.InvalidEdgeHandle()
	}
	if c.NumIncidentFaces(e) != 2 {
		return handle.InvalidEdgeHandle()
	}
	fromV, toV := c.FromVertex(e), c.ToVertex(e)
	f1 := c.FaceAt(e, 0)
	f2 := c.FaceAt(e, 1)

	v1 := thirdFaceVertex(c, f1, fromV, toV)
	v2 := thirdFaceVertex(c, f2, fromV, toV)
	if v1 == v2 {
		return handle.InvalidEdgeHandle()
	}
	if c.GetEdge(v1, v2).IsValid() {
		return handle.InvalidEdgeHandle()
	}

	newEdge := c.AddEdge(v1, v2)

	e0 := c.NextEdge(f1, e)
	e1 := c.NextEdge(f1, e0)
	e2 := c.NextEdge(f2, e)
	e3 := c.NextEdge(f2, e2)

	if !sharedVertex(c, e1, e2).IsValid() {
		e2, e3 = e3, e2
	}

	c.AddFace(e1, e2, newEdge)
	c.AddFace(e3, e0, newEdge)

	c.DeleteFace(f1, false)
	c.DeleteFace(f2, false)
	c.DeleteEdge(e, false)

	return newEdge
}
