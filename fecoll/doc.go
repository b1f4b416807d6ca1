// Package fecoll defines finite element descriptors and the ordered
// Collection registry that maps a finite element index (FEIndex) to a
// descriptor.
//
// What:
//
//   - Descriptor answers one structural question: how many degrees of
//     freedom does this element place on a single object of a given
//     structural dimension (0=vertex, 1=line, 2=quad, 3=hex)?
//   - Q(degree, dim) models a continuous Lagrange tensor-product element,
//     DGQ(degree, dim) a discontinuous one (all DoFs cell-interior),
//     Fixed carries explicit per-dimension counts.
//   - Collection is an append-only, index-stable registry. Stores query it
//     on every access and never cache its answers, so elements may be
//     swapped between DoF distributions.
//
// Why:
//
//   - hp-adaptive storage needs per-element DoF counts at every accessor
//     call; a tiny read-only registry keeps that lookup O(1) and explicit.
//
// Errors:
//
//   - ErrEmptyCollection: a Collection was constructed with no descriptors.
//   - ErrNilDescriptor: a nil Descriptor was pushed or registered.
//   - ErrBadDegree: element degree outside the descriptor's valid range.
//   - ErrBadDimension: cell dimension outside 1..3.
//   - ErrFEIndexOutOfRange: FEIndex ≥ Collection length.
//   - ErrUnspecifiedFEIndex: the InvalidFEIndex sentinel was used as a
//     real index.
package fecoll
