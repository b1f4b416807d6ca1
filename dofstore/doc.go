// Package dofstore implements the per-level index store for hp-adaptive
// degrees of freedom: a flat, cache-friendly mapping from mesh objects of
// one structural dimension to the global DoF indices that live on them,
// when adjacent cells may use different finite elements.
//
// What:
//
//   - A Level owns three parallel slices: one active finite element index
//     per cell, one offset-or-sentinel per object, and one flat record
//     arena holding the encoded DoF blocks.
//   - Cell levels (structDim == cellDim) use the single-descriptor layout:
//     the block at an object's offset is exactly the cell element's DoF
//     indices, nothing else.
//   - Sub-cell levels use the multi-descriptor layout: repeated
//     (element tag, DoF indices…) groups in insertion order, closed by a
//     terminator tag, so a shared edge can carry one independent block per
//     distinct adjacent element.
//   - Reservation (ReserveCellDoFs / ReserveObjectDoFs) rebuilds the arena
//     in bulk; accessors then read and overwrite individual slots.
//
// Why:
//
//   - The number of elements sharing an object is not known statically;
//     packing groups end to end behind integer offsets avoids both a
//     worst-case per-object allocation and any container-of-containers.
//
// Complexity:
//
//   - DoFIndex/SetDoFIndex: O(1) on cell levels, O(k) on sub-cell levels
//     (k = distinct elements at the object, typically ≤ a handful).
//   - Reserve*: O(total records), two passes, no incremental path.
//
// Concurrency:
//
//   - No internal locking. After reservation a Level is safe for
//     concurrent reads; SetDoFIndex and re-reservation require external
//     synchronization by the owning distributor.
//
// Errors:
//
//   - Every precondition violation maps to its own sentinel (see
//     errors.go) and is reported synchronously; none is retried or
//     downgraded. They flag broken caller state, not runtime conditions.
package dofstore
