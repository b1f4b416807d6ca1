// Package dofstore: slot accessors. DoFIndex and SetDoFIndex are the
// read/write surface over the record arena; locate implements both block
// encodings.
package dofstore

import (
	"fmt"

	"github.com/eliasstudiert/hpdof/fecoll"
)

// locate returns the arena position of the first DoF index stored for
// element fe at object obj, resolving whichever layout this level uses.
// Preconditions (bounds, allocation, fe validity) must already hold.
//
// Cell layout: the sole block belongs to the cell's active element; any
// other element is simply not active here. Sub-cell layout: linear scan
// over (tag, indices…) groups until the terminator.
func (l *Level) locate(fes DescriptorSet, obj int, fe fecoll.FEIndex) (uint64, error) {
	off := l.offsets[obj]
	if l.cellLayout() {
		if l.activeFE[obj] != fe {
			return 0, fmt.Errorf("locate: fe %d, cell uses %d: %w", fe, l.activeFE[obj], ErrDescriptorNotActive)
		}
		return off, nil
	}
	for p := off; l.records[p] != InvalidGlobalIndex; {
		tag := fecoll.FEIndex(l.records[p])
		if tag == fe {
			return p + 1, nil // first index right after the group tag
		}
		p += 1 + uint64(fes.DoFsPerObject(tag, l.structDim))
	}
	return 0, fmt.Errorf("locate: fe %d at object %d: %w", fe, obj, ErrDescriptorNotActive)
}

// DoFIndex returns the global index of the local-th degree of freedom that
// element fe places on object obj.
//
// Failure modes, each a distinct sentinel: ErrNilDescriptorSet,
// ErrUnspecifiedDescriptor, ErrDescriptorOutOfRange,
// ErrLocalIndexOutOfRange, ErrObjectIndexOutOfRange, ErrNoDoFsAllocated,
// ErrDescriptorNotActive.
func (l *Level) DoFIndex(fes DescriptorSet, obj int, fe fecoll.FEIndex, local int) (GlobalIndex, error) {
	if err := l.checkAccess(fes, obj, fe, local); err != nil {
		return InvalidGlobalIndex, err
	}
	start, err := l.locate(fes, obj, fe)
	if err != nil {
		return InvalidGlobalIndex, err
	}
	return l.records[start+uint64(local)], nil
}

// SetDoFIndex overwrites the global index of the local-th degree of
// freedom that element fe places on object obj. Same preconditions and
// failure modes as DoFIndex; the matched slot is the only state touched.
func (l *Level) SetDoFIndex(fes DescriptorSet, obj int, fe fecoll.FEIndex, local int, v GlobalIndex) error {
	if err := l.checkAccess(fes, obj, fe, local); err != nil {
		return err
	}
	start, err := l.locate(fes, obj, fe)
	if err != nil {
		return err
	}
	l.records[start+uint64(local)] = v
	return nil
}
