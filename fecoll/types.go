// Package fecoll core types: FEIndex, the Descriptor contract, and the
// sentinel error set shared across the package.
package fecoll

import "errors"

// Sentinel errors for descriptor and collection operations.
var (
	// ErrEmptyCollection indicates a Collection was created without descriptors.
	ErrEmptyCollection = errors.New("fecoll: collection must contain at least one descriptor")

	// ErrNilDescriptor indicates a nil Descriptor was supplied.
	ErrNilDescriptor = errors.New("fecoll: nil descriptor")

	// ErrBadDegree indicates an element degree outside the valid range.
	ErrBadDegree = errors.New("fecoll: element degree out of range")

	// ErrBadDimension indicates a cell dimension outside 1..3.
	ErrBadDimension = errors.New("fecoll: cell dimension must be 1, 2 or 3")

	// ErrFEIndexOutOfRange indicates an FEIndex beyond the collection length.
	ErrFEIndexOutOfRange = errors.New("fecoll: finite element index out of range")

	// ErrUnspecifiedFEIndex indicates the InvalidFEIndex sentinel was used
	// where a concrete finite element index is required.
	ErrUnspecifiedFEIndex = errors.New("fecoll: finite element index not specified")
)

// FEIndex identifies one finite element descriptor within a Collection.
// Indices are dense and stable: the n-th pushed descriptor has index n.
type FEIndex uint32

// InvalidFEIndex is the reserved "not yet chosen" sentinel. It is never a
// valid Collection index; accessors reject it with ErrUnspecifiedFEIndex.
const InvalidFEIndex = ^FEIndex(0)

// MaxCellDim is the highest structural dimension a descriptor can place
// DoFs on (hexahedral cells).
const MaxCellDim = 3

// Descriptor describes one finite element from the storage layer's point
// of view: the number of degrees of freedom it places on a single object
// of each structural dimension.
//
// DoFsPerObject must be pure and constant for the lifetime of the
// descriptor; stores call it on every access.
type Descriptor interface {
	// Name returns a short human-readable identifier, e.g. "Q2" or "DGQ1".
	Name() string

	// DoFsPerObject returns how many DoFs this element places on one
	// object of the given structural dimension (0=vertex, 1=line, 2=quad,
	// 3=hex). Dimensions the element does not touch report 0; negative or
	// out-of-range dimensions report 0 as well.
	DoFsPerObject(structDim int) int
}
