// File: shared.go
// Role: small helpers shared by collapse/split/flip — none of them
// warrant a place on Complex's public surface since they only make
// sense mid-surgery.

package surgery

import (
	"github.com/larshq/simplexmesh/handle"
	"github.com/larshq/simplexmesh/simplex"
)

// thirdFaceVertex returns f's vertex that is neither a nor b. f is
// assumed to have exactly one such vertex, true of any live face row.
func thirdFaceVertex(c *simplex.Complex, f handle.FaceHandle, a, b handle.VertexHandle) handle.VertexHandle {
	for k := 0; k < 3; k++ {
		e := c.EdgeOf(f, k)
		for _, v := range [2]handle.VertexHandle{c.FromVertex(e), c.ToVertex(e)} {
			if v != a && v != b {
				return v
			}
		}
	}
	return handle.InvalidVertexHandle()
}

// sharedVertex returns the endpoint common to e0 and e1, or invalid if
// they share none.
func sharedVertex(c *simplex.Complex, e0, e1 handle.EdgeHandle) handle.VertexHandle {
	v0, v1 := c.FromVertex(e0), c.ToVertex(e0)
	v2, v3 := c.FromVertex(e1), c.ToVertex(e1)
	switch {
	case v0 == v2 || v0 == v3:
		return v0
	case v1 == v2 || v1 == v3:
		return v1
	default:
		return handle.InvalidVertexHandle()
	}
}

func incidentFaces(c *simplex.Complex, e handle.EdgeHandle) []handle.FaceHandle {
	n := c.NumIncidentFaces(e)
	faces := make([]handle.FaceHandle, n)
	for i := 0; i < n; i++ {
		faces[i] = c.FaceAt(e, i)
	}
	return faces
}
