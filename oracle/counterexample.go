package oracle

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/inflecta/fca"
)

// GenerateSubset samples a uniform random subset of universe: the universe
// is shuffled, then each element is included independently with
// probability 0.5. The returned subset is sorted for deterministic
// downstream comparisons.
func GenerateSubset(rng *rand.Rand, universe []string) []string {
	items := append([]string(nil), universe...)
	shuffleStrings(items, rng)

	var subset []string
	for _, item := range items {
		if rng.Float64() > 0.5 {
			subset = append(subset, item)
		}
	}
	sort.Strings(subset)
	return subset
}

// GeneratePositiveCounterexample repeats up to liTimes times: sample a
// subset X of universe, and if membership (closure) and model-of-H
// disagree on X, return X as a counterexample. If no disagreement is found
// within liTimes tries, equivalent=true (the "equivalent" sentinel).
func GeneratePositiveCounterexample(rng *rand.Rand, h []fca.Implication, universe []string, closure ClosureFunc, liTimes int) (x []string, equivalent bool) {
	for i := 0; i < liTimes; i++ {
		candidate := GenerateSubset(rng, universe)
		member := IsMember(candidate, closure)
		model := fca.IsModelOfImplications(candidate, h)
		if member != model {
			return candidate, false
		}
	}
	return nil, true
}
