// Package dofstore: queries over the finite elements active at an object,
// and the per-cell active element assignment that feeds the cell layout.
package dofstore

import (
	"fmt"

	"github.com/eliasstudiert/hpdof/fecoll"
)

// NActiveDescriptors returns how many distinct finite elements contribute
// a DoF block to object obj: 0 if no DoFs have been distributed there,
// always 1 on a cell level, and the number of stored groups on a sub-cell
// level.
func (l *Level) NActiveDescriptors(fes DescriptorSet, obj int) (int, error) {
	if err := checkSet(fes); err != nil {
		return 0, err
	}
	if err := l.checkObject(obj); err != nil {
		return 0, err
	}
	if l.offsets[obj] == invalidOffset {
		return 0, nil
	}
	if l.cellLayout() {
		return 1, nil
	}
	n := 0
	for p := l.offsets[obj]; l.records[p] != InvalidGlobalIndex; n++ {
		tag := fecoll.FEIndex(l.records[p])
		p += 1 + uint64(fes.DoFsPerObject(tag, l.structDim))
	}
	return n, nil
}

// NthActiveDescriptor returns the finite element index of the n-th
// (0-indexed) group stored at object obj, in insertion order. The order is
// stable between reservations but carries no meaning beyond that. Requires
// n < NActiveDescriptors(fes, obj); violation yields
// ErrActiveIndexOutOfRange.
func (l *Level) NthActiveDescriptor(fes DescriptorSet, obj, n int) (fecoll.FEIndex, error) {
	if err := checkSet(fes); err != nil {
		return fecoll.InvalidFEIndex, err
	}
	if err := l.checkObject(obj); err != nil {
		return fecoll.InvalidFEIndex, err
	}
	if err := l.checkAllocated(obj); err != nil {
		return fecoll.InvalidFEIndex, err
	}
	if n < 0 {
		return fecoll.InvalidFEIndex, guardErrorf(fmt.Sprintf("NthActiveDescriptor: n %d", n), ErrActiveIndexOutOfRange)
	}
	if l.cellLayout() {
		// a cell stores exactly one set of indices, the cell element's
		if n != 0 {
			return fecoll.InvalidFEIndex, guardErrorf(fmt.Sprintf("NthActiveDescriptor: n %d of 1", n), ErrActiveIndexOutOfRange)
		}
		return l.activeFE[obj], nil
	}
	seen := 0
	for p := l.offsets[obj]; l.records[p] != InvalidGlobalIndex; seen++ {
		tag := fecoll.FEIndex(l.records[p])
		if seen == n {
			return tag, nil
		}
		p += 1 + uint64(fes.DoFsPerObject(tag, l.structDim))
	}
	return fecoll.InvalidFEIndex, guardErrorf(fmt.Sprintf("NthActiveDescriptor: n %d of %d", n, seen), ErrActiveIndexOutOfRange)
}

// DescriptorIsActive reports whether element fe contributes a DoF block to
// object obj. Objects without distributed DoFs report false for every
// element, keeping the count consistent with NActiveDescriptors.
func (l *Level) DescriptorIsActive(fes DescriptorSet, obj int, fe fecoll.FEIndex) (bool, error) {
	if err := checkSet(fes); err != nil {
		return false, err
	}
	if err := checkFE(fes, fe); err != nil {
		return false, err
	}
	if err := l.checkObject(obj); err != nil {
		return false, err
	}
	if l.offsets[obj] == invalidOffset {
		return false, nil
	}
	if l.cellLayout() {
		return l.activeFE[obj] == fe, nil
	}
	for p := l.offsets[obj]; l.records[p] != InvalidGlobalIndex; {
		tag := fecoll.FEIndex(l.records[p])
		if tag == fe {
			return true, nil
		}
		p += 1 + uint64(fes.DoFsPerObject(tag, l.structDim))
	}
	return false, nil
}

// ActiveFEIndex returns the finite element index assigned to cell. Cells
// that have not been assigned yet report fecoll.InvalidFEIndex.
func (l *Level) ActiveFEIndex(cell int) (fecoll.FEIndex, error) {
	if err := l.checkCell(cell); err != nil {
		return fecoll.InvalidFEIndex, err
	}
	return l.activeFE[cell], nil
}

// SetActiveFEIndex assigns element fe to cell. Assignments must precede
// the reservation pass; changing them afterwards requires re-reserving,
// as the arena layout depends on them.
func (l *Level) SetActiveFEIndex(fes DescriptorSet, cell int, fe fecoll.FEIndex) error {
	if err := checkSet(fes); err != nil {
		return err
	}
	if err := checkFE(fes, fe); err != nil {
		return err
	}
	if err := l.checkCell(cell); err != nil {
		return err
	}
	l.activeFE[cell] = fe
	return nil
}
