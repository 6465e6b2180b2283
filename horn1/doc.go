// Package horn1 implements Angluin's HORN1 algorithm for learning an
// implication basis over a Formal Concept Analysis context (package fca),
// driven by an oracle.Oracle in its PAC-learning mode (function PacBasis)
// or by any other membership/equivalence oracle pair satisfying the same
// contract.
package horn1
