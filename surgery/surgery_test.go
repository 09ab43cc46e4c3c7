package surgery_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/larshq/simplexmesh/handle"
	"github.com/larshq/simplexmesh/simplex"
	"github.com/larshq/simplexmesh/surgery"
)

// buildQuad makes two triangles across a square v0-v1-v2-v3:
// f0=(v0,v1,v2), f1=(v0,v2,v3). They share the diagonal edge (v2,v0).
func buildQuad(t *testing.T, c *simplex.Complex) (v [4]handle.VertexHandle, diag handle.EdgeHandle, f0, f1 handle.FaceHandle) {
	for i := range v {
		v[i] = c.AddVertex()
	}
	e01 := c.AddEdge(v[0], v[1])
	e12 := c.AddEdge(v[1], v[2])
	e20 := c.AddEdge(v[2], v[0])
	e23 := c.AddEdge(v[2], v[3])
	e30 := c.AddEdge(v[3], v[0])
	require.True(t, e01.IsValid())
	require.True(t, e12.IsValid())
	require.True(t, e20.IsValid())
	require.True(t, e23.IsValid())
	require.True(t, e30.IsValid())

	f0 = c.AddFace(e01, e12, e20)
	require.True(t, f0.IsValid())
	f1 = c.AddFace(e20, e23, e30)
	require.True(t, f1.IsValid())

	return v, e20, f0, f1
}

func TestFlipEdge_QuadDiagonal(t *testing.T) {
	c := simplex.NewComplex()
	v, diag, f0, f1 := buildQuad(t, c)

	newEdge := surgery.FlipEdge(c, diag)
	require.True(t, newEdge.IsValid())

	require.False(t, c.EdgeExists(diag))
	require.False(t, c.FaceExists(f0))
	require.False(t, c.FaceExists(f1))

	require.Equal(t, 2, c.NumFaces())
	// the flipped diagonal now connects the two vertices not originally joined
	got := map[int]bool{c.FromVertex(newEdge).Idx(): true, c.ToVertex(newEdge).Idx(): true}
	require.True(t, got[v[1].Idx()])
	require.True(t, got[v[3].Idx()])
}

func TestFlipEdge_RequiresExactlyTwoFaces(t *testing.T) {
	c := simplex.NewComplex()
	v0, v1 := c.AddVertex(), c.AddVertex()
	e := c.AddEdge(v0, v1)
	require.False(t, surgery.FlipEdge(c, e).IsValid())
}

func TestFlipEdge_RejectsExistingOppositeDiagonal(t *testing.T) {
	c := simplex.NewComplex()
	v, diag, _, _ := buildQuad(t, c)
	// pre-create the opposite diagonal (v1,v3) so the flip target collides
	c.AddEdge(v[1], v[3])

	require.False(t, surgery.FlipEdge(c, diag).IsValid())
	require.True(t, c.EdgeExists(diag))
}

func TestSplitEdge_QuadDiagonal(t *testing.T) {
	c := simplex.NewComplex()
	_, diag, f0, f1 := buildQuad(t, c)

	beforeVerts := c.NumVertices()
	beforeFaces := c.NumFaces()

	m, newFaces := surgery.SplitEdge(c, diag)
	require.True(t, m.IsValid())
	require.Len(t, newFaces, 4)

	require.False(t, c.EdgeExists(diag))
	require.False(t, c.FaceExists(f0))
	require.False(t, c.FaceExists(f1))
	require.Equal(t, beforeVerts+1, c.NumVertices())
	require.Equal(t, beforeFaces-2+4, c.NumFaces())

	for _, f := range newFaces {
		require.True(t, c.FaceExists(f))
	}
}

func TestCollapseEdge_MergesSharedVertex(t *testing.T) {
	c := simplex.NewComplex()
	v, diag, f0, f1 := buildQuad(t, c)

	kept := surgery.CollapseEdge(c, diag, v[0])
	require.True(t, kept.IsValid())
	require.Equal(t, v[2], kept)

	require.False(t, c.VertexExists(v[0]))
	require.False(t, c.EdgeExists(diag))
	require.False(t, c.FaceExists(f0))
	require.False(t, c.FaceExists(f1))

	// the two edge pairs made parallel by the merge collapse to one edge each
	require.Equal(t, 2, c.NumEdges())
	require.True(t, c.GetEdge(v[1], v[2]).IsValid())
	require.True(t, c.GetEdge(v[3], v[2]).IsValid())
}

func TestCollapseEdge_RejectsVertexNotOnEdge(t *testing.T) {
	c := simplex.NewComplex()
	v, diag, _, _ := buildQuad(t, c)

	require.False(t, surgery.CollapseEdge(c, diag, v[3]).IsValid())
	require.True(t, c.EdgeExists(diag))
}

// buildTet constructs one tetrahedron from 4 vertices, from the ground up.
func buildTet(t *testing.T, c *simplex.Complex) (verts [4]handle.VertexHandle, faces [4]handle.FaceHandle, tet handle.TetHandle) {
	for i := range verts {
		verts[i] = c.AddVertex()
	}
	pairs := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	var edges [6]handle.EdgeHandle
	for i, p := range pairs {
		edges[i] = c.AddEdge(verts[p[0]], verts[p[1]])
	}
	faceDefs := [4][3]int{{0, 1, 3}, {3, 4, 5}, {0, 2, 4}, {1, 2, 5}}
	for i, fd := range faceDefs {
		faces[i] = c.AddFace(edges[fd[0]], edges[fd[1]], edges[fd[2]])
	}
	tet = c.AddTet(faces[0], faces[1], faces[2], faces[3], false)
	require.True(t, tet.IsValid())
	return
}

func TestCollapseEdge_RejectsFold(t *testing.T) {
	// two faces over the same three edges: collapsing any of them would
	// fold the pair onto itself
	c := simplex.NewComplex()
	v0, v1, v2 := c.AddVertex(), c.AddVertex(), c.AddVertex()
	e01 := c.AddEdge(v0, v1)
	e12 := c.AddEdge(v1, v2)
	e20 := c.AddEdge(v2, v0)
	require.True(t, c.AddFace(e01, e12, e20).IsValid())
	require.True(t, c.AddFace(e01, e12, e20).IsValid())

	before := c.NumFaces()
	require.False(t, surgery.CollapseEdge(c, e01, v0).IsValid())
	require.Equal(t, before, c.NumFaces())
	require.True(t, c.EdgeExists(e01))
}

func TestSplitEdge_BareEdge(t *testing.T) {
	c := simplex.NewComplex()
	v0, v1 := c.AddVertex(), c.AddVertex()
	e := c.AddEdge(v0, v1)

	m, newFaces := surgery.SplitEdge(c, e)
	require.True(t, m.IsValid())
	require.Empty(t, newFaces)
	require.False(t, c.EdgeExists(e))
	require.Equal(t, 2, c.NumEdges())
	require.True(t, c.GetEdge(v0, m).IsValid())
	require.True(t, c.GetEdge(v1, m).IsValid())
}

func TestFlipEdge_TwiceRestoresQuadTopology(t *testing.T) {
	c := simplex.NewComplex()
	v, diag, _, _ := buildQuad(t, c)

	first := surgery.FlipEdge(c, diag)
	require.True(t, first.IsValid())
	second := surgery.FlipEdge(c, first)
	require.True(t, second.IsValid())

	// handles may differ, but the second flip restores the original
	// diagonal's endpoints and both faces of the quad
	got := map[int]bool{c.FromVertex(second).Idx(): true, c.ToVertex(second).Idx(): true}
	require.True(t, got[v[0].Idx()])
	require.True(t, got[v[2].Idx()])
	require.Equal(t, 2, c.NumFaces())
	require.Equal(t, 2, c.NumIncidentFaces(second))
}

func TestCollapseEdge_RejectsWhenEdgeHasIncidentTetFaces(t *testing.T) {
	c := simplex.NewComplex()
	verts, faces, _ := buildTet(t, c)
	e01 := c.GetEdge(verts[0], verts[1])
	require.True(t, e01.IsValid())

	// f0/f2 (incident to e01) are tet-incident and, in a closed tet, the
	// collapse would also fold them onto the other faces, so CollapseEdge
	// must reject it before deleting anything and report invalid with no
	// mutation.
	kept := surgery.CollapseEdge(c, e01, verts[0])
	require.False(t, kept.IsValid())
	require.True(t, c.EdgeExists(e01))
	require.True(t, c.FaceExists(faces[0]))
}
