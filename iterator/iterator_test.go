package iterator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/larshq/simplexmesh/handle"
	"github.com/larshq/simplexmesh/iterator"
	"github.com/larshq/simplexmesh/simplex"
)

func buildTet(t *testing.T, c *simplex.Complex) (verts [4]handle.VertexHandle, faces [4]handle.FaceHandle) {
	for i := range verts {
		verts[i] = c.AddVertex()
	}
	e01 := c.AddEdge(verts[0], verts[1])
	e02 := c.AddEdge(verts[0], verts[2])
	e03 := c.AddEdge(verts[0], verts[3])
	e12 := c.AddEdge(verts[1], verts[2])
	e13 := c.AddEdge(verts[1], verts[3])
	e23 := c.AddEdge(verts[2], verts[3])

	faces[0] = c.AddFace(e01, e12, e02)
	faces[1] = c.AddFace(e12, e23, e13)
	faces[2] = c.AddFace(e01, e13, e03)
	faces[3] = c.AddFace(e02, e23, e03)
	tet := c.AddTet(faces[0], faces[1], faces[2], faces[3], false)
	require.True(t, tet.IsValid())
	return
}

func TestVertexIterator_VisitsAllLiveVertices(t *testing.T) {
	c := simplex.NewComplex()
	v0, v1 := c.AddVertex(), c.AddVertex()
	v2 := c.AddVertex()
	require.True(t, c.DeleteVertex(v1))

	var seen []handle.VertexHandle
	for it := iterator.NewVertexIterator(c); !it.Done(); it.Advance() {
		seen = append(seen, it.Current())
	}
	require.ElementsMatch(t, []handle.VertexHandle{v0, v2}, seen)
}

func TestFaceEdgeIterator_OrderedFollowsCycle(t *testing.T) {
	c := simplex.NewComplex()
	_, faces := buildTet(t, c)

	f := faces[0]
	var seq []handle.EdgeHandle
	for it := iterator.NewFaceEdgeIterator(c, f, true); !it.Done(); it.Advance() {
		seq = append(seq, it.Current())
	}
	require.Len(t, seq, 3)
	require.Equal(t, c.EdgeOf(f, 0), seq[0])
	require.Equal(t, c.NextEdge(f, seq[0]), seq[1])
	require.Equal(t, c.NextEdge(f, seq[1]), seq[2])
}

func TestFaceVertexIterator_YieldsThreeDistinctVertices(t *testing.T) {
	c := simplex.NewComplex()
	_, faces := buildTet(t, c)

	var seen []handle.VertexHandle
	for it := iterator.NewFaceVertexIterator(c, faces[0]); !it.Done(); it.Advance() {
		seen = append(seen, it.Current())
	}
	require.Len(t, seen, 3)
	require.ElementsMatch(t, uniqVerts(seen), seen)
}

func uniqVerts(in []handle.VertexHandle) []handle.VertexHandle {
	seen := map[int]bool{}
	var out []handle.VertexHandle
	for _, v := range in {
		if !seen[v.Idx()] {
			seen[v.Idx()] = true
			out = append(out, v)
		}
	}
	return out
}

// TestVertexVertexIterator_TwoTetsSharingAFace glues a second tet onto
// the first one's v0-v1-v2 face (5 vertices total): a vertex of the
// shared face has exactly 4 distinct edge-connected neighbors — the two
// other face vertices plus both apexes.
func TestVertexVertexIterator_TwoTetsSharingAFace(t *testing.T) {
	c := simplex.NewComplex()
	verts, faces := buildTet(t, c)

	apex := c.AddVertex()
	ea0 := c.AddEdge(verts[0], apex)
	ea1 := c.AddEdge(verts[1], apex)
	ea2 := c.AddEdge(verts[2], apex)
	e01 := c.GetEdge(verts[0], verts[1])
	e02 := c.GetEdge(verts[0], verts[2])
	e12 := c.GetEdge(verts[1], verts[2])

	g0 := c.AddFace(e01, ea1, ea0)
	g1 := c.AddFace(e12, ea2, ea1)
	g2 := c.AddFace(e02, ea2, ea0)
	require.True(t, c.AddTet(faces[0], g0, g1, g2, false).IsValid())

	var neighbors []handle.VertexHandle
	for it := iterator.NewVertexVertexIterator(c, verts[0]); !it.Done(); it.Advance() {
		neighbors = append(neighbors, it.Current())
	}
	require.Len(t, neighbors, 4)
	require.ElementsMatch(t,
		[]handle.VertexHandle{verts[1], verts[2], verts[3], apex}, neighbors)
}
