// Package fecoll Collection: the ordered, index-stable descriptor registry
// queried by DoF stores on every access.
package fecoll

import "fmt"

// Collection is an ordered registry of finite element descriptors. The
// n-th pushed descriptor has FEIndex n; indices never shift. A Collection
// is not safe for concurrent mutation; freeze it (stop pushing) before
// sharing it with concurrent readers.
type Collection struct {
	fes []Descriptor
}

// NewCollection builds a Collection from the given descriptors, in order.
// At least one descriptor is required; nil entries are rejected.
func NewCollection(fes ...Descriptor) (*Collection, error) {
	if len(fes) == 0 {
		return nil, fmt.Errorf("NewCollection: %w", ErrEmptyCollection)
	}
	c := &Collection{fes: make([]Descriptor, 0, len(fes))}
	for _, fe := range fes {
		if err := c.Push(fe); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Push appends a descriptor, assigning it the next FEIndex.
func (c *Collection) Push(fe Descriptor) error {
	if fe == nil {
		return fmt.Errorf("Push: %w", ErrNilDescriptor)
	}
	c.fes = append(c.fes, fe)
	return nil
}

// Len reports the number of registered descriptors.
func (c *Collection) Len() int { return len(c.fes) }

// CheckIndex validates an FEIndex against this collection: the
// InvalidFEIndex sentinel yields ErrUnspecifiedFEIndex, an index beyond
// the registered range yields ErrFEIndexOutOfRange.
func (c *Collection) CheckIndex(fe FEIndex) error {
	if fe == InvalidFEIndex {
		return ErrUnspecifiedFEIndex
	}
	if int(fe) >= len(c.fes) {
		return fmt.Errorf("fe %d of %d: %w", fe, len(c.fes), ErrFEIndexOutOfRange)
	}
	return nil
}

// Descriptor returns the descriptor registered under fe.
func (c *Collection) Descriptor(fe FEIndex) (Descriptor, error) {
	if err := c.CheckIndex(fe); err != nil {
		return nil, err
	}
	return c.fes[fe], nil
}

// DoFsPerObject returns how many DoFs descriptor fe places on one object
// of the given structural dimension. Unknown indices report 0; use
// CheckIndex when the index itself must be validated.
func (c *Collection) DoFsPerObject(fe FEIndex, structDim int) int {
	if fe == InvalidFEIndex || int(fe) >= len(c.fes) {
		return 0
	}
	return c.fes[fe].DoFsPerObject(structDim)
}

// MaxDoFsPerObject returns the largest per-object DoF count any registered
// descriptor places on the given structural dimension. Useful for sizing
// scratch buffers during distribution.
func (c *Collection) MaxDoFsPerObject(structDim int) int {
	max := 0
	for _, fe := range c.fes {
		if n := fe.DoFsPerObject(structDim); n > max {
			max = n
		}
	}
	return max
}
