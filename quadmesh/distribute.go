// Package quadmesh: the reference DoF-distribution pass. It owns the
// bulk (re)allocation of the per-dimension stores and the cell-ordered,
// first-touch numbering of global indices.
package quadmesh

import (
	"fmt"

	"github.com/eliasstudiert/hpdof/dofstore"
	"github.com/eliasstudiert/hpdof/fecoll"
)

// Distribution bundles the per-dimension index stores produced by one
// DistributeDoFs pass over a mesh: vertices (dim 0), edges (dim 1) and
// cells (dim 2), plus the total number of global DoFs handed out. The
// stores are frozen for reading; rerun DistributeDoFs rather than
// mutating them after element assignments change.
type Distribution struct {
	Mesh     *QuadMesh
	Vertices *dofstore.Level
	Edges    *dofstore.Level
	Cells    *dofstore.Level
	NDoFs    uint64
}

// DistributeDoFs assigns activeFE[c] to each cell c, reserves index
// storage for all three structural dimensions, and numbers global DoF
// indices by walking cells in index order: each cell first claims any
// still-unnumbered DoFs its element places on its vertices, then on its
// edges, then its interior block. A shared object therefore stores one
// DoF block per distinct adjacent element, groups ordered by which cell
// touched the object first.
func DistributeDoFs(m *QuadMesh, fes dofstore.DescriptorSet, activeFE []fecoll.FEIndex) (*Distribution, error) {
	if m == nil {
		return nil, fmt.Errorf("DistributeDoFs: %w", ErrEmptyMesh)
	}
	if len(activeFE) != m.NCells() {
		return nil, fmt.Errorf("DistributeDoFs: %d elements for %d cells: %w",
			len(activeFE), m.NCells(), ErrActiveFELength)
	}

	const cellDim = 2
	vertices, err := dofstore.NewLevel(0, cellDim, m.NCells(), m.NVertices())
	if err != nil {
		return nil, err
	}
	edges, err := dofstore.NewLevel(1, cellDim, m.NCells(), m.NEdges())
	if err != nil {
		return nil, err
	}
	cells, err := dofstore.NewLevel(cellDim, cellDim, m.NCells(), m.NCells())
	if err != nil {
		return nil, err
	}

	for _, l := range []*dofstore.Level{vertices, edges, cells} {
		for c, fe := range activeFE {
			if err := l.SetActiveFEIndex(fes, c, fe); err != nil {
				return nil, fmt.Errorf("DistributeDoFs: cell %d: %w", c, err)
			}
		}
	}

	// Incidence pass: collect, per vertex and per edge, the distinct
	// elements of the cells touching it, in cell visit order. Elements
	// placing no DoFs on that dimension contribute no group, so purely
	// discontinuous meshes keep all sub-cell objects at the sentinel.
	activeAtVertex := make([][]fecoll.FEIndex, m.NVertices())
	activeAtEdge := make([][]fecoll.FEIndex, m.NEdges())
	for c := 0; c < m.NCells(); c++ {
		fe := activeFE[c]
		vs, _ := m.CellVertices(c)
		if fes.DoFsPerObject(fe, 0) > 0 {
			for _, v := range vs {
				activeAtVertex[v] = appendDistinct(activeAtVertex[v], fe)
			}
		}
		es, _ := m.CellEdges(c)
		if fes.DoFsPerObject(fe, 1) > 0 {
			for _, e := range es {
				activeAtEdge[e] = appendDistinct(activeAtEdge[e], fe)
			}
		}
	}

	if err := cells.ReserveCellDoFs(fes); err != nil {
		return nil, err
	}
	if err := vertices.ReserveObjectDoFs(fes, activeAtVertex); err != nil {
		return nil, err
	}
	if err := edges.ReserveObjectDoFs(fes, activeAtEdge); err != nil {
		return nil, err
	}

	// Numbering pass: cell-ordered, first touch claims the block.
	next := dofstore.GlobalIndex(0)
	for c := 0; c < m.NCells(); c++ {
		fe := activeFE[c]
		vs, _ := m.CellVertices(c)
		for _, v := range vs {
			if err := claimBlock(vertices, fes, v, fe, &next); err != nil {
				return nil, err
			}
		}
		es, _ := m.CellEdges(c)
		for _, e := range es {
			if err := claimBlock(edges, fes, e, fe, &next); err != nil {
				return nil, err
			}
		}
		if err := claimBlock(cells, fes, c, fe, &next); err != nil {
			return nil, err
		}
	}

	return &Distribution{
		Mesh:     m,
		Vertices: vertices,
		Edges:    edges,
		Cells:    cells,
		NDoFs:    uint64(next),
	}, nil
}

// appendDistinct appends fe to list unless it is already present,
// preserving first-touch order.
func appendDistinct(list []fecoll.FEIndex, fe fecoll.FEIndex) []fecoll.FEIndex {
	for _, got := range list {
		if got == fe {
			return list
		}
	}
	return append(list, fe)
}

// claimBlock assigns fresh global indices to every still-unnumbered slot
// of element fe's block at object obj, advancing *next. Slots another cell
// already numbered stay untouched, so shared blocks are counted once.
func claimBlock(l *dofstore.Level, fes dofstore.DescriptorSet, obj int, fe fecoll.FEIndex, next *dofstore.GlobalIndex) error {
	n := fes.DoFsPerObject(fe, l.StructDim())
	for local := 0; local < n; local++ {
		got, err := l.DoFIndex(fes, obj, fe, local)
		if err != nil {
			return err
		}
		if got != dofstore.InvalidGlobalIndex {
			continue
		}
		if err := l.SetDoFIndex(fes, obj, fe, local, *next); err != nil {
			return err
		}
		*next++
	}
	return nil
}
