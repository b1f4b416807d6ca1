package dofstore_test

import (
	"fmt"

	"github.com/eliasstudiert/hpdof/dofstore"
	"github.com/eliasstudiert/hpdof/fecoll"
)

// ExampleLevel stores the DoF indices of one edge shared by two cells
// that use different elements: Q2 contributes 1 edge DoF, Q3 contributes 2.
func ExampleLevel() {
	q2, _ := fecoll.Q(2, 2)
	q3, _ := fecoll.Q(3, 2)
	coll, _ := fecoll.NewCollection(q2, q3)

	// Two quad cells, one shared edge.
	edges, _ := dofstore.NewLevel(1, 2, 2, 1)
	_ = edges.SetActiveFEIndex(coll, 0, 0) // cell 0 uses Q2
	_ = edges.SetActiveFEIndex(coll, 1, 1) // cell 1 uses Q3
	_ = edges.ReserveObjectDoFs(coll, [][]fecoll.FEIndex{{0, 1}})

	_ = edges.SetDoFIndex(coll, 0, 0, 0, 40) // Q2's edge DoF
	_ = edges.SetDoFIndex(coll, 0, 1, 0, 41) // Q3's first edge DoF
	_ = edges.SetDoFIndex(coll, 0, 1, 1, 42) // Q3's second edge DoF

	n, _ := edges.NActiveDescriptors(coll, 0)
	fmt.Println("active elements at edge:", n)
	for i := 0; i < n; i++ {
		fe, _ := edges.NthActiveDescriptor(coll, 0, i)
		d, _ := coll.Descriptor(fe)
		first, _ := edges.DoFIndex(coll, 0, fe, 0)
		fmt.Printf("%s block starts at global DoF %d\n", d.Name(), first)
	}

	// Output:
	// active elements at edge: 2
	// Q2 block starts at global DoF 40
	// Q3 block starts at global DoF 41
}
