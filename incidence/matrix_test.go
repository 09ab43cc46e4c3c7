package incidence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/larshq/simplexmesh/incidence"
)

func TestMatrix_SetGetRemove(t *testing.T) {
	m := incidence.NewMatrix(3, 4)

	require.NoError(t, m.Set(0, 1, 1))
	require.NoError(t, m.Set(0, 2, -1))

	v, err := m.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = m.Get(0, 2)
	require.NoError(t, err)
	require.Equal(t, -1, v)

	require.True(t, m.Exists(0, 1))
	require.False(t, m.Exists(0, 3))

	require.NoError(t, m.Remove(0, 1))
	require.False(t, m.Exists(0, 1))

	_, err = m.Get(0, 1)
	require.ErrorIs(t, err, incidence.ErrNotFound)
}

func TestMatrix_SetOverwritesExistingEntry(t *testing.T) {
	m := incidence.NewMatrix(1, 2)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 0, -1))

	n, err := m.GetNumEntriesInRow(0)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	v, _ := m.Get(0, 0)
	require.Equal(t, -1, v)
}

func TestMatrix_SetZeroSignRemoves(t *testing.T) {
	m := incidence.NewMatrix(1, 1)
	require.NoError(t, m.Set(0, 0, 1))
	require.True(t, m.Exists(0, 0))

	require.NoError(t, m.Set(0, 0, 0))
	require.False(t, m.Exists(0, 0))

	// removing an absent entry is a no-op, not an error
	require.NoError(t, m.Set(0, 0, 0))
}

func TestMatrix_SetByIndexRejectsZeroSign(t *testing.T) {
	m := incidence.NewMatrix(1, 1)
	require.ErrorIs(t, m.SetByIndex(0, 0, 0, 0), incidence.ErrZeroSign)
}

func TestMatrix_RangeChecks(t *testing.T) {
	m := incidence.NewMatrix(2, 2)
	require.ErrorIs(t, m.Set(-1, 0, 1), incidence.ErrRowOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), incidence.ErrRowOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), incidence.ErrColOutOfRange)
	require.ErrorIs(t, m.Set(0, 2, 1), incidence.ErrColOutOfRange)
}

func TestMatrix_ByIndexAccessorsFollowInsertionOrder(t *testing.T) {
	m := incidence.NewMatrix(1, 5)
	require.NoError(t, m.SetByIndex(0, 0, 3, 1))
	require.NoError(t, m.SetByIndex(0, 1, 1, -1))

	col, err := m.GetColByIndex(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3, col)

	val, err := m.GetValueByIndex(0, 1)
	require.NoError(t, err)
	require.Equal(t, -1, val)

	_, err = m.GetColByIndex(0, 2)
	require.ErrorIs(t, err, incidence.ErrIndexOutOfRange)
}

func TestMatrix_CycleRowRotatesLeft(t *testing.T) {
	m := incidence.NewMatrix(1, 3)
	require.NoError(t, m.SetByIndex(0, 0, 0, 1))
	require.NoError(t, m.SetByIndex(0, 1, 1, -1))
	require.NoError(t, m.SetByIndex(0, 2, 2, 1))

	require.NoError(t, m.CycleRow(0))

	col0, _ := m.GetColByIndex(0, 0)
	col1, _ := m.GetColByIndex(0, 1)
	col2, _ := m.GetColByIndex(0, 2)
	require.Equal(t, []int{1, 2, 0}, []int{col0, col1, col2})
}

func TestMatrix_CycleRowNoOpOnShortRows(t *testing.T) {
	m := incidence.NewMatrix(2, 2)
	require.NoError(t, m.CycleRow(0))

	require.NoError(t, m.SetByIndex(1, 0, 0, 1))
	require.NoError(t, m.CycleRow(1))
	col, _ := m.GetColByIndex(1, 0)
	require.Equal(t, 0, col)
}

func TestMatrix_ZeroRowAndZeroAll(t *testing.T) {
	m := incidence.NewMatrix(2, 2)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 1, -1))

	require.NoError(t, m.ZeroRow(0))
	require.False(t, m.Exists(0, 0))
	require.True(t, m.Exists(1, 1))

	m.ZeroAll()
	require.False(t, m.Exists(1, 1))
}

func TestMatrix_AddRowsAndAddCols(t *testing.T) {
	m := incidence.NewMatrix(1, 1)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 1, m.Cols())

	m.AddRows(2)
	require.Equal(t, 3, m.Rows())

	m.AddCols(3)
	require.Equal(t, 4, m.Cols())
	require.NoError(t, m.Set(2, 3, 1))
}

func TestMatrix_RemoveNotFound(t *testing.T) {
	m := incidence.NewMatrix(1, 1)
	require.ErrorIs(t, m.Remove(0, 0), incidence.ErrNotFound)
}
