// Package fca implements a bipartite Formal Concept Analysis relation
// between objects (edit tokens, in this system) and attributes (lemmas),
// with the intent/extent closure operators and implication machinery that
// the HORN1/PAC learner (package horn1) and the deterministic clusterer
// (package cluster) are built on.
//
// A Context behaves like an incrementally built bipartite incidence
// table: relations are added one at a time, internal storage is two
// adjacency maps kept in lockstep under a single mutex, and every
// enumeration method returns its result in deterministic sorted order so
// downstream learners are reproducible.
package fca
