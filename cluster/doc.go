// Package cluster implements the deterministic clusterer (an alternative
// to package horn1's PAC learner): it groups lemmas sharing an identical
// edit-token set, with no randomness or oracle involved.
package cluster
