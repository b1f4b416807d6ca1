package dofstore

// MemoryBytes estimates the heap footprint of the three backing slices in
// bytes. Slice headers and the Level struct itself are left out; the
// arrays dominate for any non-trivial mesh.
func (l *Level) MemoryBytes() int {
	const (
		feIndexBytes = 4 // fecoll.FEIndex is uint32
		offsetBytes  = 8
		recordBytes  = 8 // GlobalIndex is uint64
	)
	return len(l.activeFE)*feIndexBytes +
		len(l.offsets)*offsetBytes +
		len(l.records)*recordBytes
}
