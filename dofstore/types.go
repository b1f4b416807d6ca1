// Package dofstore core types: GlobalIndex, the DescriptorSet contract,
// the Level store and its constructor.
package dofstore

import (
	"fmt"

	"github.com/eliasstudiert/hpdof/fecoll"
)

// GlobalIndex is a global degree-of-freedom index. The record arena also
// stores finite element tags and the list terminator as GlobalIndex
// values, so the whole arena stays one homogeneous slice.
type GlobalIndex uint64

// InvalidGlobalIndex is the all-ones sentinel. It serves two roles: the
// placeholder value of a reserved but not yet assigned DoF slot, and the
// end-of-list terminator tag in the multi-descriptor layout.
const InvalidGlobalIndex = ^GlobalIndex(0)

// invalidOffset marks an object for which no DoFs have been distributed.
const invalidOffset = ^uint64(0)

// DescriptorSet is the read-only view of a finite element collection the
// store queries on every access. *fecoll.Collection implements it. The
// store never caches answers across a reservation, so descriptors may be
// exchanged between DoF distributions.
type DescriptorSet interface {
	// Len reports the number of registered finite elements; valid indices
	// are 0..Len()-1.
	Len() int

	// DoFsPerObject returns how many DoFs element fe places on one object
	// of the given structural dimension.
	DoFsPerObject(fe fecoll.FEIndex, structDim int) int
}

// Level stores the DoF indices located on all objects of one structural
// dimension at one mesh refinement level.
//
// Three parallel slices make up the store: activeFE holds the finite
// element index chosen for each cell at this level, offsets holds one
// start position (or the no-DoFs sentinel) per object, and records is the
// flat arena the offsets point into. The encoding of a block depends on
// the layout: on a cell level (structDim == cellDim) the block is the
// cell element's DoF indices in order; on a sub-cell level it is repeated
// (tag, indices…) groups closed by InvalidGlobalIndex.
//
// A Level holds no locks. Once reserved it may be read concurrently;
// writes require external synchronization.
type Level struct {
	structDim int // dimension of the objects indexed by offsets
	cellDim   int // dimension of the cells at this level

	activeFE []fecoll.FEIndex // one per cell
	offsets  []uint64         // one per object, invalidOffset = no DoFs
	records  []GlobalIndex    // flat record arena
}

// NewLevel creates an empty Level for nCells cells of dimension cellDim
// and nObjects objects of dimension structDim. When structDim equals
// cellDim the objects are the cells themselves and nObjects must equal
// nCells. All cells start with the unspecified finite element and all
// objects with the no-DoFs sentinel; call SetActiveFEIndex and one of the
// Reserve passes before accessing DoFs.
func NewLevel(structDim, cellDim, nCells, nObjects int) (*Level, error) {
	if structDim < 0 || cellDim > fecoll.MaxCellDim || structDim > cellDim {
		return nil, fmt.Errorf("NewLevel: structDim %d, cellDim %d: %w", structDim, cellDim, ErrBadShape)
	}
	if nCells < 0 || nObjects < 0 {
		return nil, fmt.Errorf("NewLevel: %d cells, %d objects: %w", nCells, nObjects, ErrBadShape)
	}
	if structDim == cellDim && nCells != nObjects {
		return nil, fmt.Errorf("NewLevel: cell level needs nCells == nObjects, got %d and %d: %w",
			nCells, nObjects, ErrBadShape)
	}
	l := &Level{
		structDim: structDim,
		cellDim:   cellDim,
		activeFE:  make([]fecoll.FEIndex, nCells),
		offsets:   make([]uint64, nObjects),
	}
	for c := range l.activeFE {
		l.activeFE[c] = fecoll.InvalidFEIndex
	}
	for o := range l.offsets {
		l.offsets[o] = invalidOffset
	}
	return l, nil
}

// cellLayout reports whether this level uses the single-descriptor cell
// encoding.
func (l *Level) cellLayout() bool { return l.structDim == l.cellDim }

// StructDim returns the structural dimension of the indexed objects.
func (l *Level) StructDim() int { return l.structDim }

// CellDim returns the dimension of the cells at this level.
func (l *Level) CellDim() int { return l.cellDim }

// NCells returns the number of cells at this level.
func (l *Level) NCells() int { return len(l.activeFE) }

// NObjects returns the number of objects of dimension StructDim.
func (l *Level) NObjects() int { return len(l.offsets) }
