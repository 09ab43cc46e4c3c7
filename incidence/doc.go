// Package incidence provides Matrix, a resizable signed sparse
// compressed-row matrix: for each row, an ordered list of signed column
// references. It is the single representation backing every relation in
// simplexmesh (EV, FE, TF and their transposes VE, EF, FT).
//
// Encoding: a signed reference packs (col+1)*sign into one int, so the
// zeroth column can still carry a sign. Decode as abs(x)-1 for the column
// and sign(x) for the sign (0 is never stored).
//
// Positional order within a row is semantically meaningful to callers
// (e.g. EV's position 0 is "from", position 1 is "to"); Matrix itself only
// guarantees that GetColByIndex/GetValueByIndex/SetByIndex address a row
// by its stored position, not by column number.
//
// Complexity: Set/Get/Remove are O(row length); the by-index accessors are
// O(1); AddRows/AddCols are O(1) amortized.
package incidence
