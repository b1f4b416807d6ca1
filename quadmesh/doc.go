// Package quadmesh provides a minimal structured mesh of quadrilateral
// cells together with a reference DoF distribution over it, exercising
// the dofstore and fecoll packages end to end.
//
// What:
//
//   - QuadMesh wraps a W×H grid of quad cells with a global, row-major
//     numbering of vertices, edges and cells, and exposes per-cell
//     incidence (CellVertices, CellEdges).
//   - DistributeDoFs assigns each cell a finite element, reserves one
//     dofstore.Level per structural dimension, and numbers global DoF
//     indices cell by cell, first touch first.
//
// Why:
//
//   - hp storage only becomes observable with a real mesh: shared edges
//     between cells of different elements are where the multi-descriptor
//     encoding earns its keep. A structured grid is the smallest mesh
//     that produces them.
//
// Numbering (W=2, H=1):
//
//	v3───e2──v4───e3──v5
//	│         │         │
//	e4   c0   e5   c1   e6
//	│         │         │
//	v0───e0──v1───e1──v2
//
//	vertices row-major bottom-up, horizontal edges first, cells row-major.
//
// Complexity:
//
//   - Incidence queries: O(1). DistributeDoFs: O(cells × DoFs per cell).
//
// Errors:
//
//   - ErrEmptyMesh: width or height below one cell.
//   - ErrCellIndexOutOfRange: cell index outside 0..W×H-1.
//   - ErrVertexIndexOutOfRange: vertex index outside its numbering range.
//   - ErrActiveFELength: one finite element index per cell is required.
package quadmesh
