package oracle

import (
	"math/rand"

	"github.com/katalvlaran/inflecta/fca"
)

// MaxPNRatio is the positive/negative counterexample ratio ceiling: after
// this many consecutive positive-strategy calls, the oracle switches to one
// negative-strategy call before resuming positive attempts.
const MaxPNRatio = 2

// State is the hypothesis-independent state a PAC equivalence oracle
// carries across calls: the running query count and where we are in the
// positive/negative rotation. Callers thread State explicitly (never a
// package-level mutable) so learner runs stay reproducible and
// concurrency-safe by construction.
type State struct {
	NQueries int
	PNRatio  int
}

// Result is what a single oracle query yields: either a counterexample
// attribute set (Equivalent=false) or the "equivalent" sentinel
// (Equivalent=true, Counterexample unused).
type Result struct {
	Counterexample []string
	Equivalent     bool
}

// Oracle is the approximate-equivalence oracle driving HORN1's PAC mode.
type Oracle struct {
	RNG      *rand.Rand
	Universe []string
	Closure  ClosureFunc
	Extent   ExtentFunc
	Epsilon  float64
	Delta    float64
}

// New builds an Oracle with epsilon/delta PAC tolerances.
func New(rng *rand.Rand, universe []string, closure ClosureFunc, extent ExtentFunc, epsilon, delta float64) *Oracle {
	return &Oracle{RNG: rng, Universe: universe, Closure: closure, Extent: extent, Epsilon: epsilon, Delta: delta}
}

// Query tests hypothesis h for approximate equivalence, given the current
// State, and returns the result plus the State to use on the next call.
//
// Each call increments NQueries and recomputes li. While PNRatio is below
// MaxPNRatio it delegates to the positive-counterexample generator and
// increments PNRatio; once the ratio ceiling is hit it resets PNRatio to 0
// and first tries a negative counterexample (an implication in h whose
// conclusion's extent is empty but whose premise's closure has non-empty
// extent), falling back to the positive generator if none is found.
func (o *Oracle) Query(h []fca.Implication, state State) (Result, State) {
	state.NQueries++
	li := LiTimes(state.NQueries, o.Epsilon, o.Delta)

	if state.PNRatio < MaxPNRatio {
		state.PNRatio++
		x, equiv := GeneratePositiveCounterexample(o.RNG, h, o.Universe, o.Closure, li)
		return Result{Counterexample: x, Equivalent: equiv}, state
	}

	state.PNRatio = 0
	for i, impl := range h {
		if i >= li {
			break
		}
		if len(o.Extent(impl.Conclusion)) != 0 {
			continue
		}
		antecedentClosure := o.Closure(impl.Premise)
		if len(o.Extent(antecedentClosure)) != 0 {
			return Result{Counterexample: antecedentClosure, Equivalent: false}, state
		}
	}

	x, equiv := GeneratePositiveCounterexample(o.RNG, h, o.Universe, o.Closure, li)
	return Result{Counterexample: x, Equivalent: equiv}, state
}
