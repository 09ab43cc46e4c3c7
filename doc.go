// Package simplexmesh is an in-memory simplicial complex for 3D meshes:
// vertices, edges, triangular faces and tetrahedra, together with their
// oriented, signed incidence relations.
//
// What it gives you:
//
//	• Incremental editing — add/delete any simplex, O(1) slot reuse via handle/arena
//	• Orientation that resolves itself — adding a face or tet from arbitrary
//	  input order produces globally consistent ±1 signs
//	• Local surgery — edge collapse, split, flip, each invariant-preserving
//	• Typed properties — per-simplex side-tables that auto-resize with the mesh
//
// Everything lives under five subpackages:
//
//	handle/    — VertexHandle/EdgeHandle/FaceHandle/TetHandle, opaque typed indices
//	incidence/ — the signed sparse compressed-row matrix backing every relation
//	simplex/   — Complex: the core add/delete/query/orientation surface + properties
//	iterator/  — basic, adjacency and set-backed traversal objects
//	surgery/   — CollapseEdge, SplitEdge, FlipEdge
//
// simplexmesh has no embedding coordinates, no manifold guarantee enforced
// by construction, no concurrent mutation and no persistence — geometry,
// I/O and serialization are external collaborators.
package simplexmesh
