// Package dofstore: sentinel error set. All accessors and reservation
// passes MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on caller-triggered conditions.
package dofstore

import "errors"

// Access-path sentinels. Each one names a distinct precondition of
// DoFIndex / SetDoFIndex and the active-descriptor queries; they indicate
// a contract violation by the calling collaborator, never a recoverable
// runtime condition.
var (
	// ErrNilDescriptorSet indicates a nil DescriptorSet was passed.
	ErrNilDescriptorSet = errors.New("dofstore: nil descriptor set")

	// ErrUnspecifiedDescriptor indicates the reserved "not yet chosen"
	// finite element index was used where a concrete one is required.
	ErrUnspecifiedDescriptor = errors.New("dofstore: finite element index not specified")

	// ErrDescriptorOutOfRange indicates a finite element index beyond the
	// descriptor set length.
	ErrDescriptorOutOfRange = errors.New("dofstore: finite element index out of range")

	// ErrLocalIndexOutOfRange indicates a local DoF index ≥ the element's
	// per-object DoF count at this level's structural dimension.
	ErrLocalIndexOutOfRange = errors.New("dofstore: local DoF index out of range")

	// ErrObjectIndexOutOfRange indicates an object index beyond the offset
	// array bounds.
	ErrObjectIndexOutOfRange = errors.New("dofstore: object index out of range")

	// ErrCellIndexOutOfRange indicates a cell index beyond the active
	// finite element array bounds.
	ErrCellIndexOutOfRange = errors.New("dofstore: cell index out of range")

	// ErrNoDoFsAllocated indicates the object's offset is the no-DoFs
	// sentinel: DoFs have not been distributed on it.
	ErrNoDoFsAllocated = errors.New("dofstore: no DoF information allocated on this object")

	// ErrDescriptorNotActive indicates the requested finite element does
	// not contribute a DoF block to this object.
	ErrDescriptorNotActive = errors.New("dofstore: finite element not active on this object")

	// ErrActiveIndexOutOfRange indicates NthActiveDescriptor was asked for
	// an ordinal ≥ the number of active descriptors at the object.
	ErrActiveIndexOutOfRange = errors.New("dofstore: active descriptor ordinal out of range")
)

// Construction and reservation sentinels.
var (
	// ErrBadShape indicates inconsistent level dimensions or counts.
	ErrBadShape = errors.New("dofstore: invalid level shape")

	// ErrWrongLayout indicates a reservation pass was invoked on a level
	// using the other record layout.
	ErrWrongLayout = errors.New("dofstore: reservation does not match level layout")

	// ErrActiveFEUnset indicates a cell still carries the unspecified
	// finite element index at reservation time.
	ErrActiveFEUnset = errors.New("dofstore: active finite element not assigned for cell")

	// ErrDuplicateDescriptor indicates the same finite element was listed
	// twice for one object in a reservation list.
	ErrDuplicateDescriptor = errors.New("dofstore: finite element listed twice for one object")
)
