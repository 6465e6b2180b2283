// Package fst implements the transducer structure the OSTIA builder
// (package ostia) constructs and the path matcher (package inflector)
// walks: a directed multigraph keyed by integer state id, with arcs
// carrying (input, output) label pairs and a metadata-tag side-table
// restricting inference to a tag-conditioned subgraph.
//
// Graph is an adjacency-list structure with sentinel errors for misuse
// and deterministic sorted iteration throughout. Tag membership lives in
// a tag→states side-table rather than as dedicated metadata nodes, which
// keeps every node in the graph a plain integer state.
package fst
