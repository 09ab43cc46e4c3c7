// Package surgery implements the three local topological edits on a
// triangle mesh: CollapseEdge, SplitEdge and FlipEdge. Each is a free
// function over a *simplex.Complex rather than a method, keeping the
// multi-step editors out of the core type the same way view-building
// helpers stay free functions over the structure they read.
//
// All three are built entirely from simplex's Add*/Delete* primitives
// and the relabeling helpers in simplex/surgery_support.go; none of them
// reach into incidence directly. Each either fully succeeds or leaves the
// complex exactly as it found it — the no-fold check in CollapseEdge and
// the exactly-two-incident-faces / no-duplicate-edge checks in FlipEdge
// run and can still reject before any mutation happens.
package surgery
