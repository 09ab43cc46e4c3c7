// Package iterator provides stateful traversal objects over a
// simplex.Complex: the four basic arena scanners, the direct adjacency
// iterators backed by position indexing into the complex's incidence
// matrices, one composed iterator, and the set-backed iterators that
// deduplicate a multi-hop adjacency via a sorted-unique set.
//
// Every iterator here follows the same three-method protocol:
// Advance(), Done() bool, Current() <handle kind>. They hold an unowned
// reference to their complex and are invalidated by any mutation to it —
// set-backed iterators are the exception: they snapshot their set at
// construction, so surviving mutation is safe but may expose handles
// that have since been deleted.
package iterator
