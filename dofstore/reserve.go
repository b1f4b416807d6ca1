// Package dofstore: bulk reservation passes. These are the only
// operations that (re)shape the record arena; they are called by the
// DoF-distribution collaborator whenever DoFs are (re)distributed and
// discard everything the previous generation stored.
package dofstore

import (
	"fmt"

	"github.com/eliasstudiert/hpdof/fecoll"
)

// ReserveCellDoFs lays out the single-descriptor arena of a cell level:
// one block per cell, sized by the cell's active element, offsets assigned
// by prefix sum in cell order. Every slot starts as InvalidGlobalIndex
// until SetDoFIndex assigns it. All cells must carry an assigned, in-range
// active element.
func (l *Level) ReserveCellDoFs(fes DescriptorSet) error {
	if err := checkSet(fes); err != nil {
		return err
	}
	if !l.cellLayout() {
		return guardErrorf("ReserveCellDoFs: sub-cell level", ErrWrongLayout)
	}
	total := uint64(0)
	for c, fe := range l.activeFE {
		if fe == fecoll.InvalidFEIndex {
			return guardErrorf(fmt.Sprintf("ReserveCellDoFs: cell %d", c), ErrActiveFEUnset)
		}
		if err := checkFE(fes, fe); err != nil {
			return fmt.Errorf("ReserveCellDoFs: cell %d: %w", c, err)
		}
		total += uint64(fes.DoFsPerObject(fe, l.structDim))
	}

	l.records = make([]GlobalIndex, total)
	for i := range l.records {
		l.records[i] = InvalidGlobalIndex
	}
	next := uint64(0)
	for c, fe := range l.activeFE {
		l.offsets[c] = next
		next += uint64(fes.DoFsPerObject(fe, l.structDim))
	}
	return nil
}

// ReserveObjectDoFs lays out the multi-descriptor arena of a sub-cell
// level. active[obj] lists the finite elements contributing a DoF block to
// object obj, in insertion order; that order is what NthActiveDescriptor
// later reports. Objects with an empty list keep the no-DoFs sentinel.
// Each listed element must be valid and appear at most once per object
// (ErrDuplicateDescriptor otherwise).
func (l *Level) ReserveObjectDoFs(fes DescriptorSet, active [][]fecoll.FEIndex) error {
	if err := checkSet(fes); err != nil {
		return err
	}
	if l.cellLayout() {
		return guardErrorf("ReserveObjectDoFs: cell level", ErrWrongLayout)
	}
	if len(active) != len(l.offsets) {
		return guardErrorf(fmt.Sprintf("ReserveObjectDoFs: %d lists for %d objects", len(active), len(l.offsets)), ErrBadShape)
	}

	// Validation plus sizing in one pass: each non-empty object costs one
	// tag per group, the group's DoF slots, and one terminator.
	total := uint64(0)
	for obj, list := range active {
		for i, fe := range list {
			if err := checkFE(fes, fe); err != nil {
				return fmt.Errorf("ReserveObjectDoFs: object %d: %w", obj, err)
			}
			for _, prev := range list[:i] {
				if prev == fe {
					return guardErrorf(fmt.Sprintf("ReserveObjectDoFs: object %d, fe %d", obj, fe), ErrDuplicateDescriptor)
				}
			}
			total += 1 + uint64(fes.DoFsPerObject(fe, l.structDim))
		}
		if len(list) > 0 {
			total++ // terminator
		}
	}

	l.records = make([]GlobalIndex, total)
	next := uint64(0)
	for obj, list := range active {
		if len(list) == 0 {
			l.offsets[obj] = invalidOffset
			continue
		}
		l.offsets[obj] = next
		for _, fe := range list {
			l.records[next] = GlobalIndex(fe)
			next++
			for i := 0; i < fes.DoFsPerObject(fe, l.structDim); i++ {
				l.records[next] = InvalidGlobalIndex
				next++
			}
		}
		l.records[next] = InvalidGlobalIndex // end-of-list tag
		next++
	}
	return nil
}
