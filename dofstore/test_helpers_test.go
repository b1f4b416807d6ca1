// Package dofstore_test shared fixtures: small descriptor collections and
// pre-reserved levels used across the accessor, active-query and
// reservation tests.
package dofstore_test

import (
	"testing"

	"github.com/eliasstudiert/hpdof/dofstore"
	"github.com/eliasstudiert/hpdof/fecoll"
	"github.com/stretchr/testify/require"
)

// lineCollection registers one Fixed descriptor per entry, where entry i
// places lineCounts[i] DoFs on each edge (structural dimension 1).
func lineCollection(t *testing.T, lineCounts ...int) *fecoll.Collection {
	t.Helper()
	var fes []fecoll.Descriptor
	for _, n := range lineCounts {
		fe, err := fecoll.NewFixed("line", 0, n)
		require.NoError(t, err)
		fes = append(fes, fe)
	}
	c, err := fecoll.NewCollection(fes...)
	require.NoError(t, err)
	return c
}

// cellCollection registers one Fixed descriptor per entry, where entry i
// places cellCounts[i] DoFs on each quad cell (structural dimension 2).
func cellCollection(t *testing.T, cellCounts ...int) *fecoll.Collection {
	t.Helper()
	var fes []fecoll.Descriptor
	for _, n := range cellCounts {
		fe, err := fecoll.NewFixed("cell", 0, 0, n)
		require.NoError(t, err)
		fes = append(fes, fe)
	}
	c, err := fecoll.NewCollection(fes...)
	require.NoError(t, err)
	return c
}

// sharedEdge builds the canonical hp scenario: one edge shared by two
// cells, cell 0 using element 2 (2 DoFs/edge) and cell 1 using element 5
// (3 DoFs/edge). Elements 0..5 are all registered so index 3 is valid but
// inactive at the edge. The level is fully reserved; slots hold the
// unassigned placeholder.
func sharedEdge(t *testing.T) (*dofstore.Level, *fecoll.Collection) {
	t.Helper()
	coll := lineCollection(t, 1, 1, 2, 1, 1, 3)

	l, err := dofstore.NewLevel(1, 2, 2, 1)
	require.NoError(t, err)
	require.NoError(t, l.SetActiveFEIndex(coll, 0, 2))
	require.NoError(t, l.SetActiveFEIndex(coll, 1, 5))
	require.NoError(t, l.ReserveObjectDoFs(coll, [][]fecoll.FEIndex{{2, 5}}))
	return l, coll
}

// cellRow builds a single-layout level of n quad cells all using element
// 0 with dofsPerCell interior DoFs, fully reserved.
func cellRow(t *testing.T, n, dofsPerCell int) (*dofstore.Level, *fecoll.Collection) {
	t.Helper()
	coll := cellCollection(t, dofsPerCell)

	l, err := dofstore.NewLevel(2, 2, n, n)
	require.NoError(t, err)
	for c := 0; c < n; c++ {
		require.NoError(t, l.SetActiveFEIndex(coll, c, 0))
	}
	require.NoError(t, l.ReserveCellDoFs(coll))
	return l, coll
}
