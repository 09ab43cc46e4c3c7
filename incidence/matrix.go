// File: matrix.go
// Role: Matrix — signed sparse compressed-row incidence matrix.
// AI-HINT (file):
//   - Each row is stored as an ordered []int of packed (col+1)*sign refs;
//     0 is never stored, so it can serve as "absent" without a separate bitmap.
//   - Position within a row ("by index" methods) and column ("by col" methods)
//     are different addressing schemes; callers that rely on position order
//     (e.g. simplex's EV row layout: position 0 is from-vertex, 1 is to-vertex)
//     must use the *ByIndex family, not Set/Get.

package incidence

// Matrix is a resizable signed sparse compressed-row matrix. Rows grow
// independently; Cols() is a declared bound used only for range checks,
// since rows never allocate per-column storage.
type Matrix struct {
	data []rowEntries
	cols int
}

type rowEntries []int

// NewMatrix builds a Matrix with the given row and column counts, all
// entries absent.
func NewMatrix(rows, cols int) *Matrix {
	m := &Matrix{
		data: make([]rowEntries, rows),
		cols: cols,
	}
	return m
}

// Rows returns the current row count.
func (m *Matrix) Rows() int { return len(m.data) }

// Cols returns the declared column bound.
func (m *Matrix) Cols() int { return m.cols }

// AddRows appends n empty rows.
func (m *Matrix) AddRows(n int) {
	for i := 0; i < n; i++ {
		m.data = append(m.data, nil)
	}
}

// AddCols extends the declared column bound by n. It never touches
// existing row storage; a sparse row simply never references the new
// columns until something Sets into them.
func (m *Matrix) AddCols(n int) {
	m.cols += n
}

func signum(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func pack(col, sign int) int {
	return (col + 1) * sign
}

func unpackCol(packed int) int {
	if packed < 0 {
		return -packed - 1
	}
	return packed - 1
}

func unpackSign(packed int) int {
	return signum(packed)
}

func (m *Matrix) checkRow(row int) error {
	if row < 0 || row >= len(m.data) {
		return ErrRowOutOfRange
	}
	return nil
}

func (m *Matrix) checkCol(col int) error {
	if col < 0 || col >= m.cols {
		return ErrColOutOfRange
	}
	return nil
}

// GetNumEntriesInRow reports how many entries row currently holds.
func (m *Matrix) GetNumEntriesInRow(row int) (int, error) {
	if err := m.checkRow(row); err != nil {
		return 0, err
	}
	return len(m.data[row]), nil
}

// GetColByIndex returns the column stored at position idx within row.
func (m *Matrix) GetColByIndex(row, idx int) (int, error) {
	if err := m.checkRow(row); err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(m.data[row]) {
		return 0, ErrIndexOutOfRange
	}
	return unpackCol(m.data[row][idx]), nil
}

// GetValueByIndex returns the sign (+1/-1) stored at position idx within row.
func (m *Matrix) GetValueByIndex(row, idx int) (int, error) {
	if err := m.checkRow(row); err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(m.data[row]) {
		return 0, ErrIndexOutOfRange
	}
	return unpackSign(m.data[row][idx]), nil
}

// SetByIndex overwrites (or, if idx == current length, appends) the entry
// at position idx within row with (col, sign).
func (m *Matrix) SetByIndex(row, idx, col, sign int) error {
	if err := m.checkRow(row); err != nil {
		return err
	}
	if err := m.checkCol(col); err != nil {
		return err
	}
	if sign != 1 && sign != -1 {
		return ErrZeroSign
	}
	r := m.data[row]
	switch {
	case idx == len(r):
		m.data[row] = append(r, pack(col, sign))
	case idx >= 0 && idx < len(r):
		r[idx] = pack(col, sign)
	default:
		return ErrIndexOutOfRange
	}
	return nil
}

// indexOfCol returns the position of col within row's entries, or -1.
func (m *Matrix) indexOfCol(row, col int) int {
	for i, packed := range m.data[row] {
		if unpackCol(packed) == col {
			return i
		}
	}
	return -1
}

// Exists reports whether (row, col) currently holds an entry.
func (m *Matrix) Exists(row, col int) bool {
	if m.checkRow(row) != nil || m.checkCol(col) != nil {
		return false
	}
	return m.indexOfCol(row, col) >= 0
}

// Set stores sign at (row, col), overwriting any existing entry there.
// A zero sign removes the entry instead (no-op if absent).
func (m *Matrix) Set(row, col, sign int) error {
	if err := m.checkRow(row); err != nil {
		return err
	}
	if err := m.checkCol(col); err != nil {
		return err
	}
	i := m.indexOfCol(row, col)
	if sign == 0 {
		if i >= 0 {
			m.data[row] = append(m.data[row][:i], m.data[row][i+1:]...)
		}
		return nil
	}
	if i >= 0 {
		m.data[row][i] = pack(col, sign)
		return nil
	}
	m.data[row] = append(m.data[row], pack(col, sign))
	return nil
}

// Get returns the sign stored at (row, col).
func (m *Matrix) Get(row, col int) (int, error) {
	if err := m.checkRow(row); err != nil {
		return 0, err
	}
	if err := m.checkCol(col); err != nil {
		return 0, err
	}
	i := m.indexOfCol(row, col)
	if i < 0 {
		return 0, ErrNotFound
	}
	return unpackSign(m.data[row][i]), nil
}

// Remove deletes the (row, col) entry if present, preserving the relative
// order of the row's remaining entries.
func (m *Matrix) Remove(row, col int) error {
	if err := m.checkRow(row); err != nil {
		return err
	}
	if err := m.checkCol(col); err != nil {
		return err
	}
	i := m.indexOfCol(row, col)
	if i < 0 {
		return ErrNotFound
	}
	m.data[row] = append(m.data[row][:i], m.data[row][i+1:]...)
	return nil
}

// ZeroRow clears every entry in row without touching other rows.
func (m *Matrix) ZeroRow(row int) error {
	if err := m.checkRow(row); err != nil {
		return err
	}
	m.data[row] = nil
	return nil
}

// ZeroAll clears every entry in every row.
func (m *Matrix) ZeroAll() {
	for i := range m.data {
		m.data[i] = nil
	}
}

// CycleRow rotates row's entries left by one position: the entry at
// position 0 moves to the last position. Used by simplex to re-canonicalize
// a face's constitutive-edge row so that its smallest edge index comes
// first, without touching signs or re-deriving orientation.
func (m *Matrix) CycleRow(row int) error {
	if err := m.checkRow(row); err != nil {
		return err
	}
	r := m.data[row]
	if len(r) < 2 {
		return nil
	}
	first := r[0]
	copy(r, r[1:])
	r[len(r)-1] = first
	return nil
}
