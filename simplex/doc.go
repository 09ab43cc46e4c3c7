// Package simplex holds Complex, the coupled core of simplexmesh: six
// incidence.Matrix values (EV/VE, FE/EF, TF/FT kept mutually transpose,
// per the layout in package incidence), a vertex existence bitset, one
// free-list per simplex kind, and the registration lists that drive the
// property-resize broadcast.
//
// Mutation enters only through the exported Add*/Delete* operations and
// the relabel/merge primitives in surgery_support.go that package surgery
// uses; every Add*/Delete* either fully commits or leaves the complex
// exactly as it was, so the transpose invariant never
// observes a half-written state. Orientation queries, positional
// accessors and the manifold/boundary predicates are read-only and safe
// to call concurrently with each other (never with a mutation).
package simplex
