// Package ostia infers an onward subsequential transducer from a training
// set of (input, tags, output) triples, following Onward Subsequential
// Transducer Inference Algorithm: build a prefix-tree transducer over
// LCS-derived input/output chunks, then repeatedly merge states, repairing
// any subsequentiality violation the merge introduces by pushing a common
// output prefix back onto the merged states' successors. A merge survives
// only if the repaired transducer still realizes the training
// transductions exactly; one that cannot be repaired, or that loses or
// corrupts a training pair, is undone and left unmerged.
package ostia
