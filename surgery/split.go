// File: split.go
// Role: SplitEdge — insert a midpoint vertex, replace the split edge
// with two halves, and retriangulate every incident face around the
// midpoint.

package surgery

import (
	"github.com/larshq/simplexmesh/handle"
	"github.com/larshq/simplexmesh/simplex"
)

// SplitEdge inserts a midpoint vertex m on e, replacing e with e0=(from,m)
// and e1=(to,m). Each face incident to e is replaced by two new faces
// that share a fresh edge from the face's third vertex to m. Returns the
// new vertex and the new faces created, in no particular order. e itself
// (and every face it was incident to) no longer exists afterward.
func SplitEdge(c *simplex.Complex, e handle.EdgeHandle) (handle.VertexHandle, []handle.FaceHandle) {
	if !c.EdgeExists(e) {
		return handle.InvalidVertexHandle(), nil
	}
	fromV, toV := c.FromVertex(e), c.ToVertex(e)

	m := c.AddVertex()
	e0 := c.AddEdge(fromV, m)
	e1 := c.AddEdge(toV, m)

	faces := incidentFaces(c, e)
	var newFaces []handle.FaceHandle
	for _, f := range faces {
		otherV := thirdFaceVertex(c, f, fromV, toV)
		eSplit := c.AddEdge(otherV, m)

		for k := 0; k < 3; k++ {
			cur := c.EdgeOf(f, k)
			if cur == e {
				continue
			}
			half := e1
			if c.FromVertex(cur) == fromV || c.ToVertex(cur) == fromV {
				half = e0
			}

			var edgeList [3]handle.EdgeHandle
			for kk := 0; kk < 3; kk++ {
				cur2 := c.EdgeOf(f, kk)
				switch cur2 {
				case cur:
					edgeList[kk] = cur
				case e:
					edgeList[kk] = half
				default:
					edgeList[kk] = eSplit
				}
			}
			newFace := c.AddFace(edgeList[0], edgeList[1], edgeList[2])
			newFaces = append(newFaces, newFace)
		}
	}

	for _, f := range faces {
		c.DeleteFace(f, false)
	}
	c.DeleteEdge(e, false)

	return m, newFaces
}
