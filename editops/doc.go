// Package editops derives edit tokens from a (source, target) word pair and
// provides the Levenshtein alignment and inflection operations that the rest
// of the learner is scored and driven against.
//
// Two independent algorithms live here:
//
//   - IterLCS: repeatedly subtracts the longest common contiguous substring
//     of length ≥ 2 from a pair of words, leaving behind the fragments that
//     became delete/insert edit tokens.
//   - Levenshtein: an iterative DP edit-distance with full traceback, used
//     both to score candidate paths during inference and to produce the
//     prefix/root/suffix alignment fingerprint of two words (Align).
package editops
