package pipeline

import (
	"sort"

	"github.com/katalvlaran/inflecta/editops"
	"github.com/katalvlaran/inflecta/fca"
	"github.com/katalvlaran/inflecta/inflector"
	"github.com/katalvlaran/inflecta/ostia"
)

// clusterScore is one candidate cluster's match quality against a source
// word: a word-only OSTIA transducer is built over the cluster's lemma
// group and scored against source via inflector.MatchesAnyPath.
type clusterScore struct {
	impl  fca.Implication
	score float64
}

// PredictCluster applies a bundle's ClusterBasis to source. A bundle with
// no clusters at all (known tag bundle, empty training group) falls back
// to predicting source unchanged. Otherwise every cluster is scored by
// building a word-only prefix-tree transducer (ostia.BuildFromInputs)
// over its lemma group and finding the closest path to source; the edit
// operations common to the winning cluster are then applied to source via
// editops.Inflect.
//
// preferMoreOps selects the tie-break rule for multiple clusters sharing
// the minimum score: when true (the "deterministic" pipeline's rule) the
// tie is broken by preferring the cluster whose lemma group shares the
// most edit operations; when false (the "pac_ostia" pipeline's rule) the
// first minimal-score cluster in encounter order wins.
func PredictCluster(basis ClusterBasis, source string, preferMoreOps bool) string {
	if len(basis.Clusters) == 0 {
		return source
	}

	scores := make([]clusterScore, len(basis.Clusters))
	for i, impl := range basis.Clusters {
		g := ostia.BuildFromInputs(impl.Conclusion)
		score, _ := inflector.MatchesAnyPath(g, source)
		scores[i] = clusterScore{impl: impl, score: score}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score < scores[j].score })

	// Context.Extent(lemmas) is the edit-token set shared by every lemma
	// in a group: the attribute-side operator, since lemmas are the
	// attribute side of the relation.
	minScore := scores[0].score
	winner := scores[0].impl
	if preferMoreOps {
		maxOps := -1
		for _, s := range scores {
			if s.score != minScore {
				break
			}
			ops := basis.Context.Extent(s.impl.Conclusion)
			if len(ops) > maxOps {
				maxOps = len(ops)
				winner = s.impl
			}
		}
	}

	ops := basis.Context.Extent(winner.Conclusion)
	return editops.Inflect(source, ops)
}

// PredictFromBases builds a (source, tags) -> predicted-form function over
// a full per-bundle basis map. A tag bundle never seen in training
// predicts source unchanged; anything else delegates to PredictCluster.
func PredictFromBases(bases map[string]ClusterBasis, preferMoreOps bool) func(source string, tags []string) string {
	return func(source string, tags []string) string {
		basis, ok := bases[BundleKey(tags)]
		if !ok {
			return source
		}
		return PredictCluster(basis, source, preferMoreOps)
	}
}
