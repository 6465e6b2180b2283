// Package pipeline wires the learning core (editops, fca, oracle, horn1,
// cluster, fst, ostia, inflector) together into the three training
// strategies --pipeline selects among: "deterministic" (edit-token
// clustering), "pac_ostia" (HORN1/PAC edit-token clustering), and "ostia"
// (transducer induction with no FCA stage at all). The shape is a plain
// orchestrator: take parsed records, build one or more models, evaluate.
package pipeline
