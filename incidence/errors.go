package incidence

import "errors"

// Sentinel errors returned by Matrix methods. Wrap with fmt.Errorf("...: %w")
// at call sites that need more context; compare with errors.Is at call sites
// that need to branch on failure kind.
var (
	// ErrRowOutOfRange is returned when a row index is negative or >= Rows().
	ErrRowOutOfRange = errors.New("incidence: row out of range")

	// ErrColOutOfRange is returned when a column index is negative or >= Cols().
	ErrColOutOfRange = errors.New("incidence: col out of range")

	// ErrIndexOutOfRange is returned by the by-index accessors when the
	// requested position exceeds the row's current entry count.
	ErrIndexOutOfRange = errors.New("incidence: index out of range")

	// ErrZeroSign is returned by SetByIndex when asked to store a zero sign
	// at a row position, which the packed encoding cannot represent (zero
	// means "absent"; Set treats a zero sign as removal instead).
	ErrZeroSign = errors.New("incidence: sign must be +1 or -1")

	// ErrNotFound is returned by Get/Remove when the requested (row, col)
	// entry does not exist.
	ErrNotFound = errors.New("incidence: entry not found")
)
