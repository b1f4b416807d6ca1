// Package dofstore_test verifies the DoFIndex/SetDoFIndex contract on
// both record layouts: the precondition taxonomy, the round-trip and
// isolation properties, and the canonical shared-edge hp scenario.
package dofstore_test

import (
	"testing"

	"github.com/eliasstudiert/hpdof/dofstore"
	"github.com/eliasstudiert/hpdof/fecoll"
	"github.com/stretchr/testify/require"
)

// TestCellRoundTrip sets and reads back every slot of a cell level.
func TestCellRoundTrip(t *testing.T) {
	l, coll := cellRow(t, 3, 4)

	for c := 0; c < 3; c++ {
		for local := 0; local < 4; local++ {
			v := dofstore.GlobalIndex(100*c + local)
			require.NoError(t, l.SetDoFIndex(coll, c, 0, local, v))
		}
	}
	for c := 0; c < 3; c++ {
		for local := 0; local < 4; local++ {
			got, err := l.DoFIndex(coll, c, 0, local)
			require.NoError(t, err)
			require.Equal(t, dofstore.GlobalIndex(100*c+local), got)
		}
	}
}

// TestSetIsolation ensures writing one cell's slot leaves every other
// slot of every other cell untouched.
func TestSetIsolation(t *testing.T) {
	l, coll := cellRow(t, 4, 3)

	// Baseline fill with a recognizable pattern.
	for c := 0; c < 4; c++ {
		for local := 0; local < 3; local++ {
			require.NoError(t, l.SetDoFIndex(coll, c, 0, local, dofstore.GlobalIndex(10*c+local)))
		}
	}
	// Overwrite a single slot on cell 2.
	require.NoError(t, l.SetDoFIndex(coll, 2, 0, 1, 999))

	for c := 0; c < 4; c++ {
		for local := 0; local < 3; local++ {
			want := dofstore.GlobalIndex(10*c + local)
			if c == 2 && local == 1 {
				want = 999
			}
			got, err := l.DoFIndex(coll, c, 0, local)
			require.NoError(t, err)
			require.Equal(t, want, got, "cell %d local %d", c, local)
		}
	}
}

// TestAccessSentinels exercises every distinct precondition failure of
// the get/set surface on a reserved cell level.
func TestAccessSentinels(t *testing.T) {
	l, coll := cellRow(t, 2, 4)

	_, err := l.DoFIndex(nil, 0, 0, 0)
	require.ErrorIs(t, err, dofstore.ErrNilDescriptorSet)

	_, err = l.DoFIndex(coll, 0, fecoll.InvalidFEIndex, 0)
	require.ErrorIs(t, err, dofstore.ErrUnspecifiedDescriptor)

	_, err = l.DoFIndex(coll, 0, 1, 0) // only element 0 registered
	require.ErrorIs(t, err, dofstore.ErrDescriptorOutOfRange)

	_, err = l.DoFIndex(coll, 0, 0, 4) // element has 4 DoFs per cell
	require.ErrorIs(t, err, dofstore.ErrLocalIndexOutOfRange)

	_, err = l.DoFIndex(coll, -1, 0, 0)
	require.ErrorIs(t, err, dofstore.ErrObjectIndexOutOfRange)
	_, err = l.DoFIndex(coll, 2, 0, 0)
	require.ErrorIs(t, err, dofstore.ErrObjectIndexOutOfRange)

	// Set shares the same guard chain.
	err = l.SetDoFIndex(coll, 0, 0, 4, 1)
	require.ErrorIs(t, err, dofstore.ErrLocalIndexOutOfRange)
	err = l.SetDoFIndex(coll, 2, 0, 0, 1)
	require.ErrorIs(t, err, dofstore.ErrObjectIndexOutOfRange)
}

// TestNoDoFsAllocatedSentinel verifies objects left out of a reservation
// reject get/set with ErrNoDoFsAllocated for any arguments.
func TestNoDoFsAllocatedSentinel(t *testing.T) {
	coll := lineCollection(t, 2)
	l, err := dofstore.NewLevel(1, 2, 1, 3)
	require.NoError(t, err)
	require.NoError(t, l.SetActiveFEIndex(coll, 0, 0))
	// Only edge 1 receives DoFs.
	require.NoError(t, l.ReserveObjectDoFs(coll, [][]fecoll.FEIndex{nil, {0}, nil}))

	for _, obj := range []int{0, 2} {
		_, err = l.DoFIndex(coll, obj, 0, 0)
		require.ErrorIs(t, err, dofstore.ErrNoDoFsAllocated)
		err = l.SetDoFIndex(coll, obj, 0, 1, 7)
		require.ErrorIs(t, err, dofstore.ErrNoDoFsAllocated)
	}

	// The reserved edge works normally.
	require.NoError(t, l.SetDoFIndex(coll, 1, 0, 0, 42))
	got, err := l.DoFIndex(coll, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, dofstore.GlobalIndex(42), got)
}

// TestSharedEdgeScenario is the canonical hp case: one edge touched by
// two cells using element 2 (2 DoFs/edge) and element 5 (3 DoFs/edge).
func TestSharedEdgeScenario(t *testing.T) {
	l, coll := sharedEdge(t)
	const edge = 0

	n, err := l.NActiveDescriptors(coll, edge)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Assign and read back both independent blocks.
	for local := 0; local < 2; local++ {
		require.NoError(t, l.SetDoFIndex(coll, edge, 2, local, dofstore.GlobalIndex(20+local)))
	}
	for local := 0; local < 3; local++ {
		require.NoError(t, l.SetDoFIndex(coll, edge, 5, local, dofstore.GlobalIndex(50+local)))
	}
	for local := 0; local < 2; local++ {
		got, err := l.DoFIndex(coll, edge, 2, local)
		require.NoError(t, err)
		require.Equal(t, dofstore.GlobalIndex(20+local), got)
	}
	for local := 0; local < 3; local++ {
		got, err := l.DoFIndex(coll, edge, 5, local)
		require.NoError(t, err)
		require.Equal(t, dofstore.GlobalIndex(50+local), got)
	}

	// Element 3 is registered but contributes no block to this edge.
	_, err = l.DoFIndex(coll, edge, 3, 0)
	require.ErrorIs(t, err, dofstore.ErrDescriptorNotActive)
}

// TestSharedEdgeBlockIsolation ensures writing one element's block never
// leaks into the other element's block on the same object.
func TestSharedEdgeBlockIsolation(t *testing.T) {
	l, coll := sharedEdge(t)
	const edge = 0

	require.NoError(t, l.SetDoFIndex(coll, edge, 5, 0, 500))

	got, err := l.DoFIndex(coll, edge, 2, 0)
	require.NoError(t, err)
	require.Equal(t, dofstore.InvalidGlobalIndex, got) // still unassigned
	got, err = l.DoFIndex(coll, edge, 2, 1)
	require.NoError(t, err)
	require.Equal(t, dofstore.InvalidGlobalIndex, got)
}

// TestCellWrongDescriptorNotActive covers the single-layout mismatch: a
// valid element that is not the one the cell uses.
func TestCellWrongDescriptorNotActive(t *testing.T) {
	coll := cellCollection(t, 4, 2)
	l, err := dofstore.NewLevel(2, 2, 1, 1)
	require.NoError(t, err)
	require.NoError(t, l.SetActiveFEIndex(coll, 0, 0))
	require.NoError(t, l.ReserveCellDoFs(coll))

	_, err = l.DoFIndex(coll, 0, 1, 0)
	require.ErrorIs(t, err, dofstore.ErrDescriptorNotActive)
}

// TestTenCellLocalIndexScenario: an unrefined single-element mesh of 10
// cells with 4 DoFs each; local index 4 must fail on every cell.
func TestTenCellLocalIndexScenario(t *testing.T) {
	l, coll := cellRow(t, 10, 4)

	for c := 0; c < 10; c++ {
		_, err := l.DoFIndex(coll, c, 0, 4)
		require.ErrorIs(t, err, dofstore.ErrLocalIndexOutOfRange, "cell %d", c)
		err = l.SetDoFIndex(coll, c, 0, 4, 1)
		require.ErrorIs(t, err, dofstore.ErrLocalIndexOutOfRange, "cell %d", c)
	}
}
