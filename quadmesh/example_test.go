package quadmesh_test

import (
	"fmt"

	"github.com/eliasstudiert/hpdof/fecoll"
	"github.com/eliasstudiert/hpdof/quadmesh"
)

// ExampleDistributeDoFs runs a full hp distribution on a 2×1 mesh whose
// two cells use Q2 and Q3, then inspects the edge they share.
func ExampleDistributeDoFs() {
	q2, _ := fecoll.Q(2, 2)
	q3, _ := fecoll.Q(3, 2)
	coll, _ := fecoll.NewCollection(q2, q3)

	m, _ := quadmesh.NewQuadMesh(2, 1)
	d, _ := quadmesh.DistributeDoFs(m, coll, []fecoll.FEIndex{0, 1})

	fmt.Println("total DoFs:", d.NDoFs)

	c0Edges, _ := m.CellEdges(0)
	shared := c0Edges[3] // cell 0's right edge faces cell 1
	n, _ := d.Edges.NActiveDescriptors(coll, shared)
	fmt.Println("elements active at the shared edge:", n)
	for i := 0; i < n; i++ {
		fe, _ := d.Edges.NthActiveDescriptor(coll, shared, i)
		desc, _ := coll.Descriptor(fe)
		fmt.Printf("  %s stores %d edge DoF(s)\n", desc.Name(), coll.DoFsPerObject(fe, 1))
	}

	// Output:
	// total DoFs: 25
	// elements active at the shared edge: 2
	//   Q2 stores 1 edge DoF(s)
	//   Q3 stores 2 edge DoF(s)
}
