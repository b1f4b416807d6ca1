package quadmesh

import "fmt"

// CellVertices returns the four lattice vertices of a cell in the fixed
// local order SW, SE, NW, NE. Local DoF distribution walks this order, so
// it also fixes which adjacent cell touches a shared vertex first.
func (m *QuadMesh) CellVertices(cell int) ([4]int, error) {
	if cell < 0 || cell >= m.NCells() {
		return [4]int{}, fmt.Errorf("CellVertices(%d): %w", cell, ErrCellIndexOutOfRange)
	}
	x, y := m.cellCoord(cell)
	sw, _ := m.VertexAt(x, y)
	se, _ := m.VertexAt(x+1, y)
	nw, _ := m.VertexAt(x, y+1)
	ne, _ := m.VertexAt(x+1, y+1)
	return [4]int{sw, se, nw, ne}, nil
}

// CellEdges returns the four edges of a cell in the fixed local order
// bottom, top, left, right.
func (m *QuadMesh) CellEdges(cell int) ([4]int, error) {
	if cell < 0 || cell >= m.NCells() {
		return [4]int{}, fmt.Errorf("CellEdges(%d): %w", cell, ErrCellIndexOutOfRange)
	}
	x, y := m.cellCoord(cell)
	return [4]int{
		m.horizontalEdge(x, y),   // bottom
		m.horizontalEdge(x, y+1), // top
		m.verticalEdge(x, y),     // left
		m.verticalEdge(x+1, y),   // right
	}, nil
}
