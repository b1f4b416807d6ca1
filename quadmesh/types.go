// Package quadmesh core types: sentinel errors, the immutable QuadMesh
// and its global numbering helpers.
package quadmesh

import (
	"errors"
	"fmt"
)

// Sentinel errors for quadmesh operations.
var (
	// ErrEmptyMesh indicates the mesh must span at least one cell in each direction.
	ErrEmptyMesh = errors.New("quadmesh: mesh must have at least one cell per direction")
	// ErrCellIndexOutOfRange indicates a cell index outside 0..W×H-1.
	ErrCellIndexOutOfRange = errors.New("quadmesh: cell index out of range")
	// ErrVertexIndexOutOfRange indicates a vertex index outside its numbering range.
	ErrVertexIndexOutOfRange = errors.New("quadmesh: vertex index out of range")
	// ErrActiveFELength indicates the per-cell element slice does not match the cell count.
	ErrActiveFELength = errors.New("quadmesh: one finite element index per cell required")
)

// QuadMesh is an immutable W×H structured grid of quadrilateral cells.
// Vertices, edges and cells each carry a dense, row-major global numbering
// (bottom row first): vertices over the (W+1)×(H+1) lattice, horizontal
// edges before vertical ones, cells over the W×H interior.
type QuadMesh struct {
	Width, Height int
}

// NewQuadMesh builds a mesh of width×height quad cells.
func NewQuadMesh(width, height int) (*QuadMesh, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("NewQuadMesh: %dx%d: %w", width, height, ErrEmptyMesh)
	}
	return &QuadMesh{Width: width, Height: height}, nil
}

// NCells returns the number of cells, W×H.
func (m *QuadMesh) NCells() int { return m.Width * m.Height }

// NVertices returns the number of lattice vertices, (W+1)×(H+1).
func (m *QuadMesh) NVertices() int { return (m.Width + 1) * (m.Height + 1) }

// NEdges returns the number of edges: W×(H+1) horizontal + (W+1)×H vertical.
func (m *QuadMesh) NEdges() int {
	return m.Width*(m.Height+1) + (m.Width+1)*m.Height
}

// VertexAt returns the global index of the lattice vertex at (x, y),
// 0 ≤ x ≤ W, 0 ≤ y ≤ H.
func (m *QuadMesh) VertexAt(x, y int) (int, error) {
	if x < 0 || x > m.Width || y < 0 || y > m.Height {
		return 0, fmt.Errorf("VertexAt(%d,%d): %w", x, y, ErrVertexIndexOutOfRange)
	}
	return y*(m.Width+1) + x, nil
}

// CellAt returns the global index of the cell at (x, y),
// 0 ≤ x < W, 0 ≤ y < H.
func (m *QuadMesh) CellAt(x, y int) (int, error) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0, fmt.Errorf("CellAt(%d,%d): %w", x, y, ErrCellIndexOutOfRange)
	}
	return y*m.Width + x, nil
}

// cellCoord converts a cell index back to (x, y); the inverse of CellAt.
func (m *QuadMesh) cellCoord(cell int) (int, int) {
	return cell % m.Width, cell / m.Width
}

// horizontalEdge numbers the edge from (x,y) to (x+1,y); rows bottom-up.
func (m *QuadMesh) horizontalEdge(x, y int) int {
	return y*m.Width + x
}

// verticalEdge numbers the edge from (x,y) to (x,y+1), after all
// horizontal edges.
func (m *QuadMesh) verticalEdge(x, y int) int {
	return m.Width*(m.Height+1) + y*(m.Width+1) + x
}
