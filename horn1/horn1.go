package horn1

import (
	"math/rand"

	"github.com/katalvlaran/inflecta/fca"
	"github.com/katalvlaran/inflecta/oracle"
)

// EquivalenceOracle tests a hypothesis for approximate equivalence, given
// the oracle's running state, and returns a result plus the state to carry
// into the next call. oracle.Oracle.Query satisfies this signature.
type EquivalenceOracle func(h []fca.Implication, state oracle.State) (oracle.Result, oracle.State)

// MembershipFunc reports whether an attribute subset is a member of (i.e.
// closed under) the implicit hypothesis.
type MembershipFunc func(subset []string) bool

// Run executes Angluin's HORN1 loop: repeatedly query the equivalence
// oracle, and on each counterexample either tighten the conclusions of
// violated implications or split/extend the basis via FindNotMember,
// until the oracle reports equivalence. The result is passed through
// fca.CleanHypothesis before returning.
func Run(allAttributes []string, eq EquivalenceOracle, isMember MembershipFunc, extent oracle.ExtentFunc) []fca.Implication {
	var h []fca.Implication
	state := oracle.State{}

	for {
		res, next := eq(h, state)
		state = next
		if res.Equivalent {
			break
		}
		c := res.Counterexample

		violated := fca.ImplicationsNotRespecting(c, h)
		if len(violated) > 0 {
			h = fca.ReplaceDisrespectful(h, violated, c)
			continue
		}

		t, ok := fca.FindNotMember(h, c, isMember)
		if !ok {
			h = append(h, fca.Implication{
				Premise:    sortedCopy(c),
				Conclusion: sortedCopy(allAttributes),
			})
			continue
		}

		h = removeImplication(h, t)
		premise := intersection(c, t.Premise)
		conclusion := union(t.Conclusion, difference(t.Premise, c))
		h = append(h, fca.Implication{Premise: premise, Conclusion: conclusion})
	}

	return fca.CleanHypothesis(h, extent)
}

// PacBasis wires Run to a PAC approximate-equivalence oracle over ctx's
// attribute universe, with tolerances epsilon (accuracy) and delta
// (confidence).
func PacBasis(ctx *fca.Context, rng *rand.Rand, epsilon, delta float64) []fca.Implication {
	universe := ctx.Attributes()
	o := oracle.New(rng, universe, ctx.AttributesClosure, ctx.Extent, epsilon, delta)
	isMember := func(x []string) bool { return oracle.IsMember(x, ctx.AttributesClosure) }
	return Run(universe, o.Query, isMember, ctx.Extent)
}

func removeImplication(h []fca.Implication, target fca.Implication) []fca.Implication {
	out := make([]fca.Implication, 0, len(h))
	removed := false
	for _, impl := range h {
		if !removed && sameImplication(impl, target) {
			removed = true
			continue
		}
		out = append(out, impl)
	}
	return out
}

func sameImplication(a, b fca.Implication) bool {
	return equalStringSlices(a.Premise, b.Premise) && equalStringSlices(a.Conclusion, b.Conclusion)
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
