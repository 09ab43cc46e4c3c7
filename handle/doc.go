// Package handle defines the four opaque simplex handle types used
// throughout simplexmesh: VertexHandle, EdgeHandle, FaceHandle, TetHandle.
//
// A handle is a small typed integer — an index into the arena of its
// kind. It carries no meaning beyond identity: equality and ordering are
// by index, and the zero value of each type is its invalid sentinel.
// The four types are structurally identical but deliberately not
// interchangeable — passing an EdgeHandle where a FaceHandle is expected
// is a compile error, not a runtime one.
package handle
