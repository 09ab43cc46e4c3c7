// File: types.go
// Role: Complex struct, functional options, DuplicateMode, counts/arena-size
// accessors.
// AI-HINT (file):
//   - The six incidence.Matrix fields are kept mutually transpose by every
//     mutating method in this package; nothing outside simplex ever writes
//     to them directly.
//   - Edge/face/tet liveness is NOT tracked by a separate bool slice: a row
//     with zero entries in the primary matrix (EV/FE/TF) IS the dead state.
//     Only vertices need vertexLive, since the vertex arena has no
//     outgoing row.

package simplex

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/larshq/simplexmesh/incidence"
)

// DuplicateMode controls how strictly safe-mode addition rejects
// duplicate/overlapping simplices. It only has any effect when SafeMode
// is enabled; the doc on each value below gives its semantics.
type DuplicateMode int

const (
	// DuplicateNone is the default: every safe-mode check runs — exact
	// duplicates, partial overlap (two or more shared sub-simplices) and
	// the structural endpoint/edge count checks all reject.
	DuplicateNone DuplicateMode = iota
	// DuplicateRelaxed rejects exact same-sub-simplex-set duplicates and
	// keeps the structural checks, but allows partial overlap with
	// existing simplices.
	DuplicateRelaxed
	// DuplicateArbitrary disables every safe-mode duplicate and
	// structural check; additions only require live, distinct inputs.
	DuplicateArbitrary
)

// resizer is implemented by every VertexProperty[T]/EdgeProperty[T]/
// FaceProperty[T]/TetProperty[T]; it is unexported because only this
// package's property types need to satisfy it.
type resizer interface {
	resize(n int)
}

// Complex is the mutable core of a mesh: vertices, edges, faces, tets and
// their oriented incidence. The zero value is not usable; construct with
// NewComplex.
type Complex struct {
	safeMode      bool
	duplicateMode DuplicateMode

	vertexLive []bool
	numVerts   int

	ev, ve *incidence.Matrix
	fe, ef *incidence.Matrix
	tf, ft *incidence.Matrix

	numEdges, numFaces, numTets int

	vertexFree *arraystack.Stack
	edgeFree   *arraystack.Stack
	faceFree   *arraystack.Stack
	tetFree    *arraystack.Stack

	vertexProps []resizer
	edgeProps   []resizer
	faceProps   []resizer
	tetProps    []resizer
}

// Option configures a Complex at construction time.
type Option func(*Complex)

// WithSafeMode enables (or, passed false, leaves disabled) the extra
// structural validation addition operations perform: duplicate/partial-
// match rejection and shared-vertex/edge count checks.
func WithSafeMode(on bool) Option {
	return func(c *Complex) { c.safeMode = on }
}

// WithDuplicateMode sets the strictness of safe-mode duplicate rejection.
// It has no effect unless WithSafeMode(true) is also set.
func WithDuplicateMode(mode DuplicateMode) Option {
	return func(c *Complex) { c.duplicateMode = mode }
}

// NewComplex builds an empty Complex: zero vertices/edges/faces/tets, safe
// mode off, duplicate mode DuplicateNone.
func NewComplex(opts ...Option) *Complex {
	c := &Complex{
		ev: incidence.NewMatrix(0, 0), ve: incidence.NewMatrix(0, 0),
		fe: incidence.NewMatrix(0, 0), ef: incidence.NewMatrix(0, 0),
		tf: incidence.NewMatrix(0, 0), ft: incidence.NewMatrix(0, 0),
		vertexFree: arraystack.New(),
		edgeFree:   arraystack.New(),
		faceFree:   arraystack.New(),
		tetFree:    arraystack.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSafeMode toggles safe mode after construction.
func (c *Complex) SetSafeMode(on bool) { c.safeMode = on }

// SafeMode reports whether safe mode is currently enabled.
func (c *Complex) SafeMode() bool { return c.safeMode }

// SetDuplicateMode changes the duplicate-rejection strictness.
func (c *Complex) SetDuplicateMode(mode DuplicateMode) { c.duplicateMode = mode }

// DuplicateMode reports the current duplicate-rejection strictness.
func (c *Complex) DuplicateMode() DuplicateMode { return c.duplicateMode }

// NumVertices returns the live vertex count.
func (c *Complex) NumVertices() int { return c.numVerts }

// NumEdges returns the live edge count.
func (c *Complex) NumEdges() int { return c.numEdges }

// NumFaces returns the live face count.
func (c *Complex) NumFaces() int { return c.numFaces }

// NumTets returns the live tet count.
func (c *Complex) NumTets() int { return c.numTets }

// NumVertexSlots returns the vertex arena size (live + free).
func (c *Complex) NumVertexSlots() int { return len(c.vertexLive) }

// NumEdgeSlots returns the edge arena size (live + free).
func (c *Complex) NumEdgeSlots() int { return c.ev.Rows() }

// NumFaceSlots returns the face arena size (live + free).
func (c *Complex) NumFaceSlots() int { return c.fe.Rows() }

// NumTetSlots returns the tet arena size (live + free).
func (c *Complex) NumTetSlots() int { return c.tf.Rows() }
