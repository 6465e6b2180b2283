// Package oracle provides the membership and approximate-equivalence
// oracles that drive Angluin's HORN1 loop (package horn1) in its
// PAC-learning mode.
//
// Randomness (the uniform subset sampling used to hunt for
// counterexamples) goes through an explicit, seedable *rand.Rand: a
// single NewRNG factory plus a SplitMix64 derivation helper for
// independent substreams, never a bare package-level rand.Rand.
package oracle
