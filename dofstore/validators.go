// Package dofstore: canonical precondition checks. Accessors delegate all
// guard logic here so every failure mode maps to exactly one sentinel,
// wrapped with the name of the check that tripped.
package dofstore

import (
	"fmt"

	"github.com/eliasstudiert/hpdof/fecoll"
)

// guardErrorf tags a sentinel with the failing check for log grepping;
// callers still match with errors.Is.
func guardErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkSet ensures the descriptor set reference is non-nil.
func checkSet(fes DescriptorSet) error {
	if fes == nil {
		return guardErrorf("checkSet", ErrNilDescriptorSet)
	}
	return nil
}

// checkFE validates a finite element index against the descriptor set:
// first the unspecified sentinel, then the registered range. Assumes fes
// is non-nil.
func checkFE(fes DescriptorSet, fe fecoll.FEIndex) error {
	if fe == fecoll.InvalidFEIndex {
		return guardErrorf("checkFE", ErrUnspecifiedDescriptor)
	}
	if int(fe) >= fes.Len() {
		return guardErrorf(fmt.Sprintf("checkFE: fe %d of %d", fe, fes.Len()), ErrDescriptorOutOfRange)
	}
	return nil
}

// checkLocal validates a local DoF index against the element's per-object
// count at this level's structural dimension. Assumes fe already passed
// checkFE.
func (l *Level) checkLocal(fes DescriptorSet, fe fecoll.FEIndex, local int) error {
	if n := fes.DoFsPerObject(fe, l.structDim); local < 0 || local >= n {
		return guardErrorf(fmt.Sprintf("checkLocal: local %d of %d", local, n), ErrLocalIndexOutOfRange)
	}
	return nil
}

// checkObject validates an object index against the offset array bounds.
func (l *Level) checkObject(obj int) error {
	if obj < 0 || obj >= len(l.offsets) {
		return guardErrorf(fmt.Sprintf("checkObject: object %d of %d", obj, len(l.offsets)), ErrObjectIndexOutOfRange)
	}
	return nil
}

// checkCell validates a cell index against the active element array bounds.
func (l *Level) checkCell(cell int) error {
	if cell < 0 || cell >= len(l.activeFE) {
		return guardErrorf(fmt.Sprintf("checkCell: cell %d of %d", cell, len(l.activeFE)), ErrCellIndexOutOfRange)
	}
	return nil
}

// checkAllocated ensures DoFs have been distributed on the object.
// Assumes obj already passed checkObject.
func (l *Level) checkAllocated(obj int) error {
	if l.offsets[obj] == invalidOffset {
		return guardErrorf(fmt.Sprintf("checkAllocated: object %d", obj), ErrNoDoFsAllocated)
	}
	return nil
}

// checkAccess chains the shared get/set precondition sequence: descriptor
// set, element index, local index, object bounds, allocation.
func (l *Level) checkAccess(fes DescriptorSet, obj int, fe fecoll.FEIndex, local int) error {
	if err := checkSet(fes); err != nil {
		return err
	}
	if err := checkFE(fes, fe); err != nil {
		return err
	}
	if err := l.checkLocal(fes, fe, local); err != nil {
		return err
	}
	if err := l.checkObject(obj); err != nil {
		return err
	}
	return l.checkAllocated(obj)
}
