// File: property.go
// Role: generic per-kind property side-tables: register on construction,
// resize on arena growth, deregister on Close.
// AI-HINT (file):
//   - Go generics parameterize the payload type only; the four *kinds*
//     stay four concrete Go types so a VertexProperty[T] can't be
//     indexed by an EdgeHandle.
//   - Close is the stand-in for a destructor: Go has no deterministic
//     finalizer, so deregistration is an explicit call, not automatic.

package simplex

import "github.com/larshq/simplexmesh/handle"

// VertexProperty is a typed side-table indexed by VertexHandle, kept the
// same length as its Complex's vertex arena.
type VertexProperty[T any] struct {
	complex *Complex
	data    []T
}

// NewVertexProperty constructs a property registered with c, sized to c's
// current vertex arena.
func NewVertexProperty[T any](c *Complex) *VertexProperty[T] {
	p := &VertexProperty[T]{complex: c, data: make([]T, c.NumVertexSlots())}
	c.vertexProps = append(c.vertexProps, p)
	return p
}

func (p *VertexProperty[T]) resize(n int) {
	if n <= len(p.data) {
		p.data = p.data[:n]
		return
	}
	grown := make([]T, n)
	copy(grown, p.data)
	p.data = grown
}

// Get returns the data stored at h. After a slot is deleted and reused,
// the value at that index is logically undefined until overwritten.
func (p *VertexProperty[T]) Get(h handle.VertexHandle) T {
	assertf(h.IsValid() && h.Idx() < len(p.data), "simplex: VertexProperty index out of range: %v", h)
	return p.data[h.Idx()]
}

// Set stores v at h.
func (p *VertexProperty[T]) Set(h handle.VertexHandle, v T) {
	assertf(h.IsValid() && h.Idx() < len(p.data), "simplex: VertexProperty index out of range: %v", h)
	p.data[h.Idx()] = v
}

// Close deregisters p from its complex. p must not be used afterward.
func (p *VertexProperty[T]) Close() {
	props := p.complex.vertexProps
	for i, r := range props {
		if r == resizer(p) {
			p.complex.vertexProps = append(props[:i], props[i+1:]...)
			break
		}
	}
}

// Clone copies p's data into a new property registered with dst. Calling
// Clone(p.complex) (self-clone) is a documented no-op that returns p
// itself rather than creating a redundant registration.
func (p *VertexProperty[T]) Clone(dst *Complex) *VertexProperty[T] {
	if dst == p.complex {
		return p
	}
	np := &VertexProperty[T]{complex: dst, data: append([]T(nil), p.data...)}
	dst.vertexProps = append(dst.vertexProps, np)
	return np
}

// EdgeProperty is a typed side-table indexed by EdgeHandle.
type EdgeProperty[T any] struct {
	complex *Complex
	data    []T
}

// NewEdgeProperty constructs a property registered with c, sized to c's
// current edge arena.
func NewEdgeProperty[T any](c *Complex) *EdgeProperty[T] {
	p := &EdgeProperty[T]{complex: c, data: make([]T, c.NumEdgeSlots())}
	c.edgeProps = append(c.edgeProps, p)
	return p
}

func (p *EdgeProperty[T]) resize(n int) {
	if n <= len(p.data) {
		p.data = p.data[:n]
		return
	}
	grown := make([]T, n)
	copy(grown, p.data)
	p.data = grown
}

// Get returns the data stored at h.
func (p *EdgeProperty[T]) Get(h handle.EdgeHandle) T {
	assertf(h.IsValid() && h.Idx() < len(p.data), "simplex: EdgeProperty index out of range: %v", h)
	return p.data[h.Idx()]
}

// Set stores v at h.
func (p *EdgeProperty[T]) Set(h handle.EdgeHandle, v T) {
	assertf(h.IsValid() && h.Idx() < len(p.data), "simplex: EdgeProperty index out of range: %v", h)
	p.data[h.Idx()] = v
}

// Close deregisters p from its complex.
func (p *EdgeProperty[T]) Close() {
	props := p.complex.edgeProps
	for i, r := range props {
		if r == resizer(p) {
			p.complex.edgeProps = append(props[:i], props[i+1:]...)
			break
		}
	}
}

// Clone copies p's data into a new property registered with dst.
func (p *EdgeProperty[T]) Clone(dst *Complex) *EdgeProperty[T] {
	if dst == p.complex {
		return p
	}
	np := &EdgeProperty[T]{complex: dst, data: append([]T(nil), p.data...)}
	dst.edgeProps = append(dst.edgeProps, np)
	return np
}

// FaceProperty is a typed side-table indexed by FaceHandle.
type FaceProperty[T any] struct {
	complex *Complex
	data    []T
}

// NewFaceProperty constructs a property registered with c, sized to c's
// current face arena.
func NewFaceProperty[T any](c *Complex) *FaceProperty[T] {
	p := &FaceProperty[T]{complex: c, data: make([]T, c.NumFaceSlots())}
	c.faceProps = append(c.faceProps, p)
	return p
}

func (p *FaceProperty[T]) resize(n int) {
	if n <= len(p.data) {
		p.data = p.data[:n]
		return
	}
	grown := make([]T, n)
	copy(grown, p.data)
	p.data = grown
}

// Get returns the data stored at h.
func (p *FaceProperty[T]) Get(h handle.FaceHandle) T {
	assertf(h.IsValid() && h.Idx() < len(p.data), "simplex: FaceProperty index out of range: %v", h)
	return p.data[h.Idx()]
}

// Set stores v at h.
func (p *FaceProperty[T]) Set(h handle.FaceHandle, v T) {
	assertf(h.IsValid() && h.Idx() < len(p.data), "simplex: FaceProperty index out of range: %v", h)
	p.data[h.Idx()] = v
}

// Close deregisters p from its complex.
func (p *FaceProperty[T]) Close() {
	props := p.complex.faceProps
	for i, r := range props {
		if r == resizer(p) {
			p.complex.faceProps = append(props[:i], props[i+1:]...)
			break
		}
	}
}

// Clone copies p's data into a new property registered with dst.
func (p *FaceProperty[T]) Clone(dst *Complex) *FaceProperty[T] {
	if dst == p.complex {
		return p
	}
	np := &FaceProperty[T]{complex: dst, data: append([]T(nil), p.data...)}
	dst.faceProps = append(dst.faceProps, np)
	return np
}

// TetProperty is a typed side-table indexed by TetHandle.
type TetProperty[T any] struct {
	complex *Complex
	data    []T
}

// NewTetProperty constructs a property registered with c, sized to c's
// current tet arena.
func NewTetProperty[T any](c *Complex) *TetProperty[T] {
	p := &TetProperty[T]{complex: c, data: make([]T, c.NumTetSlots())}
	c.tetProps = append(c.tetProps, p)
	return p
}

func (p *TetProperty[T]) resize(n int) {
	if n <= len(p.data) {
		p.data = p.data[:n]
		return
	}
	grown := make([]T, n)
	copy(grown, p.data)
	p.data = grown
}

// Get returns the data stored at h.
func (p *TetProperty[T]) Get(h handle.TetHandle) T {
	assertf(h.IsValid() && h.Idx() < len(p.data), "simplex: TetProperty index out of range: %v", h)
	return p.data[h.Idx()]
}

// Set stores v at h.
func (p *TetProperty[T]) Set(h handle.TetHandle, v T) {
	assertf(h.IsValid() && h.Idx() < len(p.data), "simplex: TetProperty index out of range: %v", h)
	p.data[h.Idx()] = v
}

// Close deregisters p from its complex.
func (p *TetProperty[T]) Close() {
	props := p.complex.tetProps
	for i, r := range props {
		if r == resizer(p) {
			p.complex.tetProps = append(props[:i], props[i+1:]...)
			break
		}
	}
}

// Clone copies p's data into a new property registered with dst.
func (p *TetProperty[T]) Clone(dst *Complex) *TetProperty[T] {
	if dst == p.complex {
		return p
	}
	np := &TetProperty[T]{complex: dst, data: append([]T(nil), p.data...)}
	dst.tetProps = append(dst.tetProps, np)
	return np
}
