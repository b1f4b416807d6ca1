// Package hpdof is compact, random-access storage for the degrees of
// freedom of hp-adaptive finite element meshes — where neighboring cells
// may carry different approximation spaces.
//
// 🚀 What is hpdof?
//
//	An in-memory library that stores a variable number of global DoF
//	indices per mesh object (vertex, edge, face, cell) without per-object
//	containers:
//		• Flat record arena: one growable buffer + integer offsets per level
//		• Multi-descriptor encoding: shared objects carry one DoF block per
//		  distinct finite element, terminated by a sentinel tag
//		• Cell fast path: cells always have exactly one descriptor, stored
//		  with no indirection at all
//		• Descriptor registry: Lagrange (Q), discontinuous (DGQ) and fixed
//		  per-dimension element descriptors
//		• Structured demo mesh: a W×H quad grid plus a reference DoF
//		  distributor to exercise everything end to end
//
// ✨ Why choose hpdof?
//
//   - Cache-friendly – three plain slices per level, no trees, no hashes
//   - Explicit contracts – every precondition violation is a distinct
//     sentinel error, matched with errors.Is
//   - Freeze-then-read – no locks; reserved stores are safe for
//     concurrent reads by construction
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	fecoll/   — finite element descriptors & the ordered Collection registry
//	dofstore/ — the per-level index store: offsets, record arena, accessors
//	quadmesh/ — structured quad mesh + reference DoF distribution
//
// Quick ASCII example:
//
//	    ┌───┬───┐
//	    │ Q1│ Q3│
//	    └───┴───┘
//
//	two cells with different elements share one edge; that edge stores two
//	independent DoF blocks, one tagged per element.
//
// Dive into the package docs of dofstore for the encoding details and into
// quadmesh for a complete distribution walkthrough.
//
//	go get github.com/eliasstudiert/hpdof
package hpdof
