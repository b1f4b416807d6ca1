// Package fecoll concrete descriptors: Fixed, Q (continuous Lagrange) and
// DGQ (discontinuous Lagrange). All are immutable value types; their
// per-dimension counts are computed once at construction.
package fecoll

import "fmt"

// Fixed is a descriptor with explicit per-dimension DoF counts. It is the
// natural choice for tests and for elements whose counts do not follow a
// tensor-product rule.
type Fixed struct {
	name   string
	counts [MaxCellDim + 1]int
}

// NewFixed builds a Fixed descriptor from explicit per-dimension counts,
// starting at structural dimension 0. Omitted trailing dimensions count 0.
// Negative counts are rejected with ErrBadDegree.
func NewFixed(name string, perDim ...int) (Fixed, error) {
	if len(perDim) > MaxCellDim+1 {
		return Fixed{}, fmt.Errorf("NewFixed: %d dimensions: %w", len(perDim), ErrBadDimension)
	}
	f := Fixed{name: name}
	for d, n := range perDim {
		if n < 0 {
			return Fixed{}, fmt.Errorf("NewFixed: dim %d count %d: %w", d, n, ErrBadDegree)
		}
		f.counts[d] = n
	}
	return f, nil
}

// Name returns the identifier given at construction.
func (f Fixed) Name() string { return f.name }

// DoFsPerObject returns the count registered for structDim, 0 outside 0..3.
func (f Fixed) DoFsPerObject(structDim int) int {
	if structDim < 0 || structDim > MaxCellDim {
		return 0
	}
	return f.counts[structDim]
}

// Q returns a continuous Lagrange tensor-product element of the given
// polynomial degree on cells of dimension dim. Its DoFs split over the
// cell's sub-objects the classical way:
//
//	vertex: 1, line: degree-1, quad: (degree-1)², hex: (degree-1)³
//
// with dimensions above dim carrying 0. Degree must be ≥ 1 and dim in 1..3.
func Q(degree, dim int) (Fixed, error) {
	if degree < 1 {
		return Fixed{}, fmt.Errorf("Q: degree %d: %w", degree, ErrBadDegree)
	}
	if dim < 1 || dim > MaxCellDim {
		return Fixed{}, fmt.Errorf("Q: dim %d: %w", dim, ErrBadDimension)
	}
	q := Fixed{name: fmt.Sprintf("Q%d", degree)}
	inner := degree - 1 // DoFs strictly interior to a line
	per := 1
	for d := 0; d <= dim; d++ {
		q.counts[d] = per
		per *= inner
	}
	return q, nil
}

// DGQ returns a discontinuous Lagrange element of the given degree on
// cells of dimension dim: all (degree+1)^dim DoFs live on the cell
// interior, none on shared sub-objects. Degree must be ≥ 0 and dim in 1..3.
func DGQ(degree, dim int) (Fixed, error) {
	if degree < 0 {
		return Fixed{}, fmt.Errorf("DGQ: degree %d: %w", degree, ErrBadDegree)
	}
	if dim < 1 || dim > MaxCellDim {
		return Fixed{}, fmt.Errorf("DGQ: dim %d: %w", dim, ErrBadDimension)
	}
	g := Fixed{name: fmt.Sprintf("DGQ%d", degree)}
	per := 1
	for d := 0; d < dim; d++ {
		per *= degree + 1
	}
	g.counts[dim] = per
	return g, nil
}
