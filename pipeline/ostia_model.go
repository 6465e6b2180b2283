package pipeline

import (
	"github.com/katalvlaran/inflecta/dataset"
	"github.com/katalvlaran/inflecta/fst"
	"github.com/katalvlaran/inflecta/inflector"
	"github.com/katalvlaran/inflecta/ostia"
	"github.com/katalvlaran/inflecta/trace"
)

// OstiaModel wraps the transducer induced by the OSTIA builder for the
// "ostia" pipeline, which bypasses the FCA/HORN1 stage entirely and
// predicts by closest-path matching alone. An empty training set degrades
// gracefully: BuildFromIOTriples on no triples yields a sentinels-only
// graph, and every Predict call then falls through FitClosestPath's
// no-path fallback.
type OstiaModel struct {
	FST *fst.Graph
}

// BuildOstiaModel runs BuildFromIOTriples followed by Infer over every
// training record, with no per-bundle grouping: the tag bundle is instead
// used at inference time to restrict the FST via ContextualSubgraph.
func BuildOstiaModel(records []dataset.Record, sink *trace.Sink) *OstiaModel {
	triples := make([]ostia.Triple, 0, len(records))
	for _, r := range records {
		triples = append(triples, ostia.Triple{Input: r.Source, Tags: r.Tags, Output: r.Target})
	}
	sink.Log(trace.Info, "pipeline: building OSTIA prefix tree from %d triple(s)", len(triples))
	tree := ostia.BuildFromIOTriples(triples)
	sink.Log(trace.Debug, "pipeline: running OSTIA state-merging inference")
	merged := ostia.Infer(tree)
	return &OstiaModel{FST: merged}
}

// Predict finds the closest path through the tag-restricted transducer
// and replays it against source via inflector.FitClosestPath.
func (m *OstiaModel) Predict(source string, tags []string) string {
	predicted, _ := inflector.FitClosestPath(m.FST, source, tags)
	return predicted
}
