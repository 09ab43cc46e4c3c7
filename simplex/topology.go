// File: topology.go
// Role: boundary and manifoldness predicates for faces, edges and
// vertices, each falling through from the 3D case to 2D to 1D depending
// on what the local neighbourhood actually contains.
// AI-HINT (file):
//   - IsVertexManifold's 3D clause needs all three conditions: no free
//     simplices in the one-ring, one-ring faces reachable through
//     tet-face steps, AND the boundary faces forming a single closed
//     cycle through v-incident edges. Reachability alone misses a
//     pinched star whose two boundary fans meet only at v.

package simplex

import "github.com/larshq/simplexmesh/handle"

func (c *Complex) incidentFacesOfEdge(e handle.EdgeHandle) []handle.FaceHandle {
	n, _ := c.ef.GetNumEntriesInRow(e.Idx())
	faces := make([]handle.FaceHandle, n)
	for i := 0; i < n; i++ {
		col, _ := c.ef.GetColByIndex(e.Idx(), i)
		faces[i] = handle.NewFaceHandle(col)
	}
	return faces
}

func (c *Complex) edgesOfVertex(v handle.VertexHandle) []handle.EdgeHandle {
	n, _ := c.ve.GetNumEntriesInRow(v.Idx())
	edges := make([]handle.EdgeHandle, n)
	for i := 0; i < n; i++ {
		col, _ := c.ve.GetColByIndex(v.Idx(), i)
		edges[i] = handle.NewEdgeHandle(col)
	}
	return edges
}

func (c *Complex) facesTouchingVertex(v handle.VertexHandle) []handle.FaceHandle {
	seen := make(map[int]bool)
	var faces []handle.FaceHandle
	for _, e := range c.edgesOfVertex(v) {
		for _, f := range c.incidentFacesOfEdge(e) {
			if !seen[f.Idx()] {
				seen[f.Idx()] = true
				faces = append(faces, f)
			}
		}
	}
	return faces
}

// IsFaceOnBoundary reports whether f has exactly one incident tet.
func (c *Complex) IsFaceOnBoundary(f handle.FaceHandle) bool {
	if !c.FaceExists(f) {
		return false
	}
	n, _ := c.ft.GetNumEntriesInRow(f.Idx())
	return n == 1
}

// IsEdgeOnBoundary implements the tet/face/pure-edge fallthrough on e's
// incident faces.
func (c *Complex) IsEdgeOnBoundary(e handle.EdgeHandle) bool {
	if !c.EdgeExists(e) {
		return false
	}
	faces := c.incidentFacesOfEdge(e)
	if len(faces) == 0 {
		return false
	}
	tetIncident := false
	for _, f := range faces {
		if n, _ := c.ft.GetNumEntriesInRow(f.Idx()); n > 0 {
			tetIncident = true
			break
		}
	}
	if tetIncident {
		for _, f := range faces {
			if n, _ := c.ft.GetNumEntriesInRow(f.Idx()); n == 1 {
				return true
			}
		}
		return false
	}
	return len(faces) == 1
}

// IsVertexOnBoundary implements the 3D/2D/1D fallthrough over v's
// one-ring.
func (c *Complex) IsVertexOnBoundary(v handle.VertexHandle) bool {
	if !c.VertexExists(v) {
		return false
	}
	edges := c.edgesOfVertex(v)
	if len(edges) == 0 {
		return false
	}
	faces := c.facesTouchingVertex(v)
	if len(faces) > 0 {
		tetIncident := false
		for _, f := range faces {
			if n, _ := c.ft.GetNumEntriesInRow(f.Idx()); n > 0 {
				tetIncident = true
				break
			}
		}
		if tetIncident {
			for _, f := range faces {
				if n, _ := c.ft.GetNumEntriesInRow(f.Idx()); n == 1 {
					return true
				}
			}
			return false
		}
		for _, e := range edges {
			if n, _ := c.ef.GetNumEntriesInRow(e.Idx()); n == 1 {
				return true
			}
		}
		return false
	}
	return len(edges) == 1
}

// IsFaceManifold reports whether f has at most two incident tets.
func (c *Complex) IsFaceManifold(f handle.FaceHandle) bool {
	if !c.FaceExists(f) {
		return false
	}
	n, _ := c.ft.GetNumEntriesInRow(f.Idx())
	return n <= 2
}

// edgeTetFacePairs maps each tet incident to e to the two faces of that
// tet which are themselves incident to e.
func (c *Complex) edgeTetFacePairs(faces []handle.FaceHandle) map[int][2]handle.FaceHandle {
	pairs := make(map[int][2]handle.FaceHandle)
	for _, f := range faces {
		for _, t := range [2]handle.TetHandle{c.FrontTet(f), c.BackTet(f)} {
			if !t.IsValid() {
				continue
			}
			entry, ok := pairs[t.Idx()]
			if !ok {
				pairs[t.Idx()] = [2]handle.FaceHandle{f, handle.InvalidFaceHandle()}
				continue
			}
			if entry[0] == f || entry[1].IsValid() {
				continue
			}
			entry[1] = f
			pairs[t.Idx()] = entry
		}
	}
	return pairs
}

// walkSingleChain reports whether the graph described by degree/adj over
// nodes visits every node exactly once as a single path (0 or 2 nodes of
// degree 1) or cycle (every node degree 2).
func walkSingleChain(nodes []int, degree map[int]int, adj map[int][]int) bool {
	if len(nodes) == 0 {
		return true
	}
	endpoints := 0
	for _, n := range nodes {
		d := degree[n]
		if d == 0 || d > 2 {
			return false
		}
		if d == 1 {
			endpoints++
		}
	}
	if endpoints != 0 && endpoints != 2 {
		return false
	}
	start := nodes[0]
	if endpoints == 2 {
		for _, n := range nodes {
			if degree[n] == 1 {
				start = n
				break
			}
		}
	}
	visited := map[int]bool{start: true}
	cur, prev := start, -1
	for {
		next := -1
		for _, nb := range adj[cur] {
			if nb != prev {
				next = nb
				break
			}
		}
		if next == -1 {
			break
		}
		if visited[next] {
			if next == start && len(visited) == len(nodes) {
				break
			}
			return false
		}
		visited[next] = true
		prev, cur = cur, next
	}
	return len(visited) == len(nodes)
}

// IsEdgeManifold implements the tet-incident umbrella-walk case, falling
// through to the pure-face case (incident face count <= 2) otherwise.
func (c *Complex) IsEdgeManifold(e handle.EdgeHandle) bool {
	if !c.EdgeExists(e) {
		return false
	}
	faces := c.incidentFacesOfEdge(e)
	for _, f := range faces {
		if n, _ := c.ft.GetNumEntriesInRow(f.Idx()); n > 2 {
			return false
		}
	}
	tetIncident := false
	for _, f := range faces {
		if n, _ := c.ft.GetNumEntriesInRow(f.Idx()); n > 0 {
			tetIncident = true
			break
		}
	}
	if !tetIncident {
		return len(faces) <= 2
	}
	for _, f := range faces {
		if n, _ := c.ft.GetNumEntriesInRow(f.Idx()); n == 0 {
			return false
		}
	}
	pairs := c.edgeTetFacePairs(faces)
	degree := make(map[int]int)
	adj := make(map[int][]int)
	for _, pr := range pairs {
		if !pr[0].IsValid() || !pr[1].IsValid() {
			return false
		}
		a, b := pr[0].Idx(), pr[1].Idx()
		degree[a]++
		degree[b]++
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	nodes := make([]int, len(faces))
	for i, f := range faces {
		nodes[i] = f.Idx()
	}
	return walkSingleChain(nodes, degree, adj)
}

func (c *Complex) facesReachableViaTets(faces []handle.FaceHandle) bool {
	if len(faces) <= 1 {
		return true
	}
	idxSet := make(map[int]bool, len(faces))
	for _, f := range faces {
		idxSet[f.Idx()] = true
	}
	visited := map[int]bool{faces[0].Idx(): true}
	queue := []int{faces[0].Idx()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curFace := handle.NewFaceHandle(cur)
		for _, t := range [2]handle.TetHandle{c.FrontTet(curFace), c.BackTet(curFace)} {
			if !t.IsValid() {
				continue
			}
			for i := 0; i < 4; i++ {
				nb := c.FaceOf(t, i)
				if idxSet[nb.Idx()] && !visited[nb.Idx()] {
					visited[nb.Idx()] = true
					queue = append(queue, nb.Idx())
				}
			}
		}
	}
	return len(visited) == len(faces)
}

// boundaryFacesFormSingleCycle checks the third 3D vertex-manifold
// condition: the one-ring's boundary faces (exactly one tet each),
// linked wherever two of them share an edge incident to v, must form one
// closed cycle, and no v-incident edge may connect more than two of them.
func (c *Complex) boundaryFacesFormSingleCycle(v handle.VertexHandle, faces []handle.FaceHandle) bool {
	var boundary []handle.FaceHandle
	boundarySet := make(map[int]bool)
	for _, f := range faces {
		if n, _ := c.ft.GetNumEntriesInRow(f.Idx()); n == 1 {
			boundary = append(boundary, f)
			boundarySet[f.Idx()] = true
		}
	}
	if len(boundary) == 0 {
		return true
	}
	degree := make(map[int]int)
	adj := make(map[int][]int)
	for _, e := range c.edgesOfVertex(v) {
		var touching []int
		for _, f := range c.incidentFacesOfEdge(e) {
			if boundarySet[f.Idx()] {
				touching = append(touching, f.Idx())
			}
		}
		if len(touching) > 2 {
			return false
		}
		if len(touching) != 2 {
			continue
		}
		a, b := touching[0], touching[1]
		degree[a]++
		degree[b]++
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	nodes := make([]int, len(boundary))
	for i, f := range boundary {
		nodes[i] = f.Idx()
	}
	for _, n := range nodes {
		if degree[n] != 2 {
			return false
		}
	}
	return walkSingleChain(nodes, degree, adj)
}

func (c *Complex) edgesFormPathOrCycle(edges []handle.EdgeHandle, faces []handle.FaceHandle) bool {
	for _, e := range edges {
		if n, _ := c.ef.GetNumEntriesInRow(e.Idx()); n > 2 {
			return false
		}
	}
	edgeSet := make(map[int]bool, len(edges))
	for _, e := range edges {
		edgeSet[e.Idx()] = true
	}
	degree := make(map[int]int)
	adj := make(map[int][]int)
	for _, f := range faces {
		var touching []int
		for i := 0; i < 3; i++ {
			eIdx := c.EdgeOf(f, i).Idx()
			if edgeSet[eIdx] {
				touching = append(touching, eIdx)
			}
		}
		if len(touching) != 2 {
			continue
		}
		a, b := touching[0], touching[1]
		degree[a]++
		degree[b]++
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	nodes := make([]int, len(edges))
	for i, e := range edges {
		nodes[i] = e.Idx()
	}
	return walkSingleChain(nodes, degree, adj)
}

// IsVertexManifold implements the 3D/2D/1D fallthrough documented on the
// package: a closed tet-connected one-ring in 3D, a single edge path or
// cycle in 2D, at most two incident edges in 1D.
func (c *Complex) IsVertexManifold(v handle.VertexHandle) bool {
	if !c.VertexExists(v) {
		return false
	}
	edges := c.edgesOfVertex(v)
	faces := c.facesTouchingVertex(v)
	if len(faces) > 0 {
		tetIncident := false
		for _, f := range faces {
			if n, _ := c.ft.GetNumEntriesInRow(f.Idx()); n > 0 {
				tetIncident = true
				break
			}
		}
		if tetIncident {
			for _, f := range faces {
				if n, _ := c.ft.GetNumEntriesInRow(f.Idx()); n == 0 {
					return false
				}
				if !c.IsFaceManifold(f) {
					return false
				}
			}
			for _, e := range edges {
				if n, _ := c.ef.GetNumEntriesInRow(e.Idx()); n == 0 {
					return false
				}
				if !c.IsEdgeManifold(e) {
					return false
				}
			}
			if !c.facesReachableViaTets(faces) {
				return false
			}
			return c.boundaryFacesFormSingleCycle(v, faces)
		}
		return c.edgesFormPathOrCycle(edges, faces)
	}
	return len(edges) <= 2
}
