package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/larshq/simplexmesh/handle"
	"github.com/larshq/simplexmesh/simplex"
)

// buildTet constructs one tetrahedron from 4 vertices, from the ground up.
func buildTet(t *testing.T, c *simplex.Complex) (verts [4]handle.VertexHandle, edges [6]handle.EdgeHandle, faces [4]handle.FaceHandle, tet handle.TetHandle) {
	for i := range verts {
		verts[i] = c.AddVertex()
	}
	pairs := [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for i, p := range pairs {
		e := c.AddEdge(verts[p[0]], verts[p[1]])
		require.True(t, e.IsValid(), "edge %d", i)
		edges[i] = e
	}
	faceDefs := [4][3]int{{0, 1, 3}, {3, 4, 5}, {0, 2, 4}, {1, 2, 5}}
	for i, fd := range faceDefs {
		f := c.AddFace(edges[fd[0]], edges[fd[1]], edges[fd[2]])
		require.True(t, f.IsValid(), "face %d", i)
		faces[i] = f
	}
	tet = c.AddTet(faces[0], faces[1], faces[2], faces[3], false)
	require.True(t, tet.IsValid())
	return
}

func TestComplex_BuildTetCountsAndOrientation(t *testing.T) {
	c := simplex.NewComplex()
	verts, edges, faces, tet := buildTet(t, c)

	require.Equal(t, 4, c.NumVertices())
	require.Equal(t, 6, c.NumEdges())
	require.Equal(t, 4, c.NumFaces())
	require.Equal(t, 1, c.NumTets())

	require.Equal(t, verts[1], c.ToVertex(edges[0]))
	require.Equal(t, verts[0], c.FromVertex(edges[0]))
	require.Equal(t, 1, c.OrientEdgeVertex(edges[0], verts[1]))
	require.Equal(t, -1, c.OrientEdgeVertex(edges[0], verts[0]))

	require.True(t, c.TetExists(tet))
	require.Equal(t, faces[0], c.FaceOf(tet, 0))
}

func TestComplex_EdgeDuplicateRejectionUnderSafeMode(t *testing.T) {
	c := simplex.NewComplex(simplex.WithSafeMode(true))
	v0, v1 := c.AddVertex(), c.AddVertex()
	_ = c.AddVertex()

	e1 := c.AddEdge(v0, v1)
	require.True(t, e1.IsValid())

	require.False(t, c.AddEdge(v0, v1).IsValid())
	require.False(t, c.AddEdge(v1, v0).IsValid())
}

func TestComplex_FaceDuplicateRejection(t *testing.T) {
	c := simplex.NewComplex(simplex.WithSafeMode(true))
	v0, v1, v2 := c.AddVertex(), c.AddVertex(), c.AddVertex()

	f1 := c.AddFaceFromVertices(v0, v1, v2)
	require.True(t, f1.IsValid())

	require.False(t, c.AddFaceFromVertices(v0, v1, v2).IsValid())
	require.False(t, c.AddFaceFromVertices(v0, v2, v1).IsValid())
}

func TestComplex_InvalidFaceFromDisconnectedEdges(t *testing.T) {
	c := simplex.NewComplex(simplex.WithSafeMode(true))
	v0, v1, v2, v3 := c.AddVertex(), c.AddVertex(), c.AddVertex(), c.AddVertex()
	e0 := c.AddEdge(v0, v1)
	e1 := c.AddEdge(v1, v2)
	e2 := c.AddEdge(v0, v2)
	e3 := c.AddEdge(v0, v3)

	require.True(t, c.AddFace(e0, e1, e2).IsValid())
	require.False(t, c.AddFace(e0, e1, e3).IsValid())
}

func TestComplex_TetDuplicateRejection(t *testing.T) {
	c := simplex.NewComplex(simplex.WithSafeMode(true))
	v0, v1, v2, v3 := c.AddVertex(), c.AddVertex(), c.AddVertex(), c.AddVertex()

	t0 := c.AddTetFromVertices(v0, v1, v2, v3)
	require.True(t, t0.IsValid())

	require.False(t, c.AddTetFromVertices(v0, v1, v2, v3).IsValid())
	require.False(t, c.AddTetFromVertices(v0, v1, v3, v2).IsValid())
}

func TestComplex_DeleteVertexRejectsNonIsolated(t *testing.T) {
	c := simplex.NewComplex()
	v0, v1 := c.AddVertex(), c.AddVertex()
	c.AddEdge(v0, v1)

	require.False(t, c.DeleteVertex(v0))
}

func TestComplex_DeleteEdgeRecurseRemovesIsolatedVertices(t *testing.T) {
	c := simplex.NewComplex()
	v0, v1 := c.AddVertex(), c.AddVertex()
	e := c.AddEdge(v0, v1)

	require.True(t, c.DeleteEdge(e, true))
	require.False(t, c.VertexExists(v0))
	require.False(t, c.VertexExists(v1))
	require.Equal(t, 0, c.NumVertices())
}

func TestComplex_AddThenDeleteVertexReusesSlot(t *testing.T) {
	c := simplex.NewComplex()
	v0 := c.AddVertex()
	require.True(t, c.DeleteVertex(v0))
	v1 := c.AddVertex()
	require.Equal(t, v0.Idx(), v1.Idx())
}

func TestComplex_BoundaryAndManifold_SingleTet(t *testing.T) {
	c := simplex.NewComplex()
	_, _, faces, _ := buildTet(t, c)

	for _, f := range faces {
		require.True(t, c.IsFaceOnBoundary(f))
		require.True(t, c.IsFaceManifold(f))
	}
}

func TestComplex_PropertyResizesWithArena(t *testing.T) {
	c := simplex.NewComplex()
	prop := simplex.NewVertexProperty[string](c)
	v0 := c.AddVertex()
	prop.Set(v0, "hello")
	require.Equal(t, "hello", prop.Get(v0))

	v1 := c.AddVertex()
	require.Equal(t, "", prop.Get(v1))
	prop.Close()
}

func TestComplex_PropertyCloneCopiesData(t *testing.T) {
	src := simplex.NewComplex()
	prop := simplex.NewVertexProperty[int](src)
	v0 := src.AddVertex()
	prop.Set(v0, 42)

	dst := simplex.NewComplex()
	dst.AddVertex()
	clone := prop.Clone(dst)
	require.Equal(t, 42, clone.Get(v0))

	clone.Set(v0, 7)
	require.Equal(t, 42, prop.Get(v0), "clone must not alias source data")
}

func TestComplex_PropertySelfCloneIsNoOp(t *testing.T) {
	c := simplex.NewComplex()
	prop := simplex.NewVertexProperty[int](c)
	require.Same(t, prop, prop.Clone(c))
}

func TestComplex_FaceRowCanonicalRotation(t *testing.T) {
	c := simplex.NewComplex()
	v0, v1, v2 := c.AddVertex(), c.AddVertex(), c.AddVertex()
	e0 := c.AddEdge(v0, v1)
	e1 := c.AddEdge(v1, v2)
	e2 := c.AddEdge(v2, v0)

	// feed the edges highest-first; position 0 must still come out as
	// the smallest index
	f := c.AddFace(e2, e1, e0)
	require.True(t, f.IsValid())
	require.Equal(t, e0, c.EdgeOf(f, 0))
}

func TestComplex_EdgeCycleRoundTrips(t *testing.T) {
	c := simplex.NewComplex()
	_, _, faces, tet := buildTet(t, c)

	for _, f := range faces {
		for pos := 0; pos < 3; pos++ {
			e := c.EdgeOf(f, pos)
			require.Equal(t, e, c.PrevEdge(f, c.NextEdge(f, e)))
		}
	}

	f := faces[0]
	cur := f
	for i := 0; i < 4; i++ {
		cur = c.NextFace(tet, cur)
	}
	require.Equal(t, f, cur)
}

func TestComplex_OrientZeroWhenNotIncident(t *testing.T) {
	c := simplex.NewComplex()
	v0, v1, v2 := c.AddVertex(), c.AddVertex(), c.AddVertex()
	e := c.AddEdge(v0, v1)

	require.Equal(t, 0, c.OrientEdgeVertex(e, v2))
	require.Equal(t, 0, c.OrientEdgeVertex(handle.InvalidEdgeHandle(), v0))
	require.Equal(t, 0, c.OrientEdgeVertex(e, handle.InvalidVertexHandle()))
}

func TestComplex_SafeModeRejectionLeavesCountsUntouched(t *testing.T) {
	c := simplex.NewComplex(simplex.WithSafeMode(true))
	v0, v1 := c.AddVertex(), c.AddVertex()
	_ = c.AddEdge(v0, v1)

	edges, slots := c.NumEdges(), c.NumEdgeSlots()
	require.False(t, c.AddEdge(v0, v1).IsValid())
	require.Equal(t, edges, c.NumEdges())
	require.Equal(t, slots, c.NumEdgeSlots())
}

func TestComplex_DuplicateRelaxedAllowsOverlapRejectsExact(t *testing.T) {
	c := simplex.NewComplex(
		simplex.WithSafeMode(true),
		simplex.WithDuplicateMode(simplex.DuplicateRelaxed),
	)
	v0, v1, v2, v3 := c.AddVertex(), c.AddVertex(), c.AddVertex(), c.AddVertex()
	e01 := c.AddEdge(v0, v1)
	e12 := c.AddEdge(v1, v2)
	e20 := c.AddEdge(v2, v0)
	e13 := c.AddEdge(v1, v3)
	e30 := c.AddEdge(v3, v0)

	require.True(t, c.AddFace(e01, e12, e20).IsValid())
	// exact same edge set, reversed input order: still a duplicate
	require.False(t, c.AddFace(e01, e20, e12).IsValid())
	// shares two edges with nothing; shares e01 with the first face
	require.True(t, c.AddFace(e01, e13, e30).IsValid())
}

func TestComplex_DuplicateArbitraryAllowsEverything(t *testing.T) {
	c := simplex.NewComplex(
		simplex.WithSafeMode(true),
		simplex.WithDuplicateMode(simplex.DuplicateArbitrary),
	)
	v0, v1, v2 := c.AddVertex(), c.AddVertex(), c.AddVertex()
	e01 := c.AddEdge(v0, v1)
	e12 := c.AddEdge(v1, v2)
	e20 := c.AddEdge(v2, v0)

	require.True(t, c.AddFace(e01, e12, e20).IsValid())
	require.True(t, c.AddFace(e01, e12, e20).IsValid(), "arbitrary mode admits exact duplicates")
	require.True(t, c.AddEdge(v0, v1).IsValid(), "arbitrary mode admits parallel edges")
}

func TestComplex_DeleteTetRecurseTearsDownEverything(t *testing.T) {
	c := simplex.NewComplex()
	_, _, _, tet := buildTet(t, c)

	require.True(t, c.DeleteTet(tet, true))
	require.Equal(t, 0, c.NumTets())
	require.Equal(t, 0, c.NumFaces())
	require.Equal(t, 0, c.NumEdges())
	require.Equal(t, 0, c.NumVertices())
}

func TestComplex_SharedEdgeAndSharedFace(t *testing.T) {
	c := simplex.NewComplex()
	_, edges, faces, _ := buildTet(t, c)

	// f0=(e0,e1,e3), f2=(e0,e2,e4) share e0
	require.Equal(t, edges[0], c.SharedEdge(faces[0], faces[2]))
	require.False(t, c.SharedFace(handle.InvalidTetHandle(), handle.InvalidTetHandle()).IsValid())
}

func TestComplex_FrontBackFaceBySign(t *testing.T) {
	c := simplex.NewComplex()
	v0, v1, v2 := c.AddVertex(), c.AddVertex(), c.AddVertex()
	e01 := c.AddEdge(v0, v1)
	e12 := c.AddEdge(v1, v2)
	e20 := c.AddEdge(v2, v0)
	f := c.AddFace(e01, e12, e20)
	require.True(t, f.IsValid())

	// e01 chains forward in the cycle v0→v1→v2→v0, so its sign in f is +1
	require.Equal(t, 1, c.OrientFaceEdge(f, e01))
	require.Equal(t, f, c.FrontFace(e01))
	require.False(t, c.BackFace(e01).IsValid())
}
