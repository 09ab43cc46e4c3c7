// File: handle.go
// Role: VertexHandle, EdgeHandle, FaceHandle, TetHandle — opaque arena indices.
// AI-HINT (file):
//   - Each handle stores its arena index shifted by +1, so the Go zero value
//     is the invalid sentinel without a constructor having to run — the same
//     shift trick the incidence package uses to let column 0 carry a sign.
//   - Never interpret Idx() as a position in anything but the handle's own arena.
//   - Idx() is exported because Go has no friend classes: the simplex and iterator
//     packages need raw index access, and an unexported field would force everything
//     into one package.

package handle

import "fmt"

// VertexHandle refers to a vertex slot.
type VertexHandle struct {
	shifted int
}

// NewVertexHandle wraps a raw arena index. Callers outside simplex/iterator
// should not normally need this; use Complex.AddVertex instead.
func NewVertexHandle(idx int) VertexHandle { return VertexHandle{shifted: idx + 1} }

// InvalidVertexHandle returns the sentinel invalid VertexHandle. It equals
// the type's zero value.
func InvalidVertexHandle() VertexHandle { return VertexHandle{} }

// Idx returns the raw arena index, or -1 for the invalid sentinel
// (exported for simplex/iterator internals).
func (h VertexHandle) Idx() int { return h.shifted - 1 }

// IsValid reports whether h refers to a (possibly dead) arena slot rather than the sentinel.
func (h VertexHandle) IsValid() bool { return h.shifted > 0 }

// Less orders handles by index; useful for deterministic sets (e.g. gods treeset comparators).
func (h VertexHandle) Less(o VertexHandle) bool { return h.shifted < o.shifted }

// String renders the handle for debugging/test failure messages.
func (h VertexHandle) String() string {
	if !h.IsValid() {
		return "Vertex(invalid)"
	}
	return fmt.Sprintf("Vertex(%d)", h.Idx())
}

// EdgeHandle refers to an edge slot.
type EdgeHandle struct {
	shifted int
}

// NewEdgeHandle wraps a raw arena index.
func NewEdgeHandle(idx int) EdgeHandle { return EdgeHandle{shifted: idx + 1} }

// InvalidEdgeHandle returns the sentinel invalid EdgeHandle. It equals the
// type's zero value.
func InvalidEdgeHandle() EdgeHandle { return EdgeHandle{} }

// Idx returns the raw arena index, or -1 for the invalid sentinel.
func (h EdgeHandle) Idx() int { return h.shifted - 1 }

// IsValid reports whether h refers to a (possibly dead) arena slot rather than the sentinel.
func (h EdgeHandle) IsValid() bool { return h.shifted > 0 }

// Less orders handles by index.
func (h EdgeHandle) Less(o EdgeHandle) bool { return h.shifted < o.shifted }

// String renders the handle for debugging/test failure messages.
func (h EdgeHandle) String() string {
	if !h.IsValid() {
		return "Edge(invalid)"
	}
	return fmt.Sprintf("Edge(%d)", h.Idx())
}

// FaceHandle refers to a face slot.
type FaceHandle struct {
	shifted int
}

// NewFaceHandle wraps a raw arena index.
func NewFaceHandle(idx int) FaceHandle { return FaceHandle{shifted: idx + 1} }

// InvalidFaceHandle returns the sentinel invalid FaceHandle. It equals the
// type's zero value.
func InvalidFaceHandle() FaceHandle { return FaceHandle{} }

// Idx returns the raw arena index, or -1 for the invalid sentinel.
func (h FaceHandle) Idx() int { return h.shifted - 1 }

// IsValid reports whether h refers to a (possibly dead) arena slot rather than the sentinel.
func (h FaceHandle) IsValid() bool { return h.shifted > 0 }

// Less orders handles by index.
func (h FaceHandle) Less(o FaceHandle) bool { return h.shifted < o.shifted }

// String renders the handle for debugging/test failure messages.
func (h FaceHandle) String() string {
	if !h.IsValid() {
		return "Face(invalid)"
	}
	return fmt.Sprintf("Face(%d)", h.Idx())
}

// TetHandle refers to a tet slot.
type TetHandle struct {
	shifted int
}

// NewTetHandle wraps a raw arena index.
func NewTetHandle(idx int) TetHandle { return TetHandle{shifted: idx + 1} }

// InvalidTetHandle returns the sentinel invalid TetHandle. It equals the
// type's zero value.
func InvalidTetHandle() TetHandle { return TetHandle{} }

// Idx returns the raw arena index, or -1 for the invalid sentinel.
func (h TetHandle) Idx() int { return h.shifted - 1 }

// IsValid reports whether h refers to a (possibly dead) arena slot rather than the sentinel.
func (h TetHandle) IsValid() bool { return h.shifted > 0 }

// Less orders handles by index.
func (h TetHandle) Less(o TetHandle) bool { return h.shifted < o.shifted }

// String renders the handle for debugging/test failure messages.
func (h TetHandle) String() string {
	if !h.IsValid() {
		return "Tet(invalid)"
	}
	return fmt.Sprintf("Tet(%d)", h.Idx())
}
