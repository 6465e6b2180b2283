// Package inflector predicts an inflected surface form by finding the path
// through a subsequential transducer whose input word most closely matches
// a source word, then replaying that path against the source to emit a
// prediction. Matching scores candidate paths by the prefix/root/suffix
// Levenshtein distance of editops.Align, rather than raw edit distance, so
// that affixal similarity dominates over incidental root differences.
package inflector
