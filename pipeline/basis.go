package pipeline

import (
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/katalvlaran/inflecta/cluster"
	"github.com/katalvlaran/inflecta/dataset"
	"github.com/katalvlaran/inflecta/editops"
	"github.com/katalvlaran/inflecta/fca"
	"github.com/katalvlaran/inflecta/horn1"
	"github.com/katalvlaran/inflecta/oracle"
	"github.com/katalvlaran/inflecta/trace"
)

// ClusterBasis is one tag bundle's learned model: the bipartite edit-
// token/lemma concept built from that bundle's training pairs, and the
// implication clusters derived from it (horn1's PAC basis or cluster's
// deterministic grouping). Each implication's Premise is a representative
// lemma and its Conclusion is the full group of lemmas sharing an edit-
// token set.
type ClusterBasis struct {
	Context  *fca.Context
	Clusters []fca.Implication
}

// conceptFromPairs builds the bipartite edit-token/lemma relation for one
// bundle's training pairs: for each (source, target), the edit tokens
// IterLCS derives are related to source, the lemma side of the relation.
func conceptFromPairs(records []dataset.Record) *fca.Context {
	ctx := fca.NewContext()
	for _, r := range records {
		for _, tok := range editops.Extract(r.Source, r.Target) {
			ctx.AddRelation(tok.String(), r.Source)
		}
	}
	return ctx
}

// BuildDeterministicBases builds one ClusterBasis per tag bundle in
// records using package cluster's non-learning grouping.
func BuildDeterministicBases(records []dataset.Record, sink *trace.Sink) map[string]ClusterBasis {
	out := make(map[string]ClusterBasis)
	for bundle, recs := range GroupByBundle(records) {
		ctx := conceptFromPairs(recs)
		basis := ClusterBasis{Context: ctx}
		if len(ctx.Objects()) > 0 {
			basis.Clusters = cluster.Cluster(ctx)
		}
		sink.Log(trace.Info, "pipeline: bundle %q -> %d lemma(s), %d cluster(s)", bundle, len(ctx.Attributes()), len(basis.Clusters))
		out[bundle] = basis
	}
	return out
}

// BuildPACBases builds one ClusterBasis per tag bundle in records using
// package horn1's PAC-style implication-basis learner, driven by an
// independent RNG substream per bundle (oracle.DeriveRNG). Bundles are
// visited in sorted key order, so each substream depends only on rng's
// seed and the bundle, never on map iteration order.
func BuildPACBases(records []dataset.Record, rng *rand.Rand, epsilon, delta float64, sink *trace.Sink) map[string]ClusterBasis {
	out := make(map[string]ClusterBasis)
	groups := GroupByBundle(records)
	bundles := make([]string, 0, len(groups))
	for bundle := range groups {
		bundles = append(bundles, bundle)
	}
	sort.Strings(bundles)
	for _, bundle := range bundles {
		recs := groups[bundle]
		ctx := conceptFromPairs(recs)
		basis := ClusterBasis{Context: ctx}
		if len(ctx.Objects()) > 0 {
			sub := oracle.DeriveRNG(rng, bundleStreamID(bundle))
			basis.Clusters = horn1.PacBasis(ctx, sub, epsilon, delta)
		}
		sink.Log(trace.Info, "pipeline: bundle %q -> %d lemma(s), %d implication(s)", bundle, len(ctx.Attributes()), len(basis.Clusters))
		out[bundle] = basis
	}
	return out
}

// bundleStreamID derives a stable stream identifier for oracle.DeriveRNG
// from a bundle key, via FNV-1a (non-cryptographic, deterministic).
func bundleStreamID(bundle string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(bundle))
	return h.Sum64()
}
