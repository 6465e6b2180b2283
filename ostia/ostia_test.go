package ostia_test

import (
	"testing"

	"github.com/katalvlaran/inflecta/fst"
	"github.com/katalvlaran/inflecta/inflector"
	"github.com/katalvlaran/inflecta/ostia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromIOTriples_BranchesShareInitialState(t *testing.T) {
	triples := []ostia.Triple{
		{Input: "a", Output: "b"},
		{Input: "aa", Output: "bb"},
	}
	tree := ostia.BuildFromIOTriples(triples)

	// Each training word gets its own branch; before merging, the two
	// branches share only the Initial sentinel, so two arcs leave it.
	fromInitial := tree.OutArcs(0)
	require.Len(t, fromInitial, 2)
}

func TestInfer_ProducesSubsequentialTransducer(t *testing.T) {
	triples := []ostia.Triple{
		{Input: "a", Output: "b"},
		{Input: "aa", Output: "bb"},
	}
	tree := ostia.BuildFromIOTriples(triples)

	merged := ostia.Infer(tree)

	assert.True(t, merged.IsSubsequential(), "the inferred transducer must have no subsequentiality violation")
}

func TestInfer_MergedTransducerStillTransducesTrainingPairs(t *testing.T) {
	triples := []ostia.Triple{
		{Input: "a", Output: "b"},
		{Input: "aa", Output: "bb"},
	}
	tree := ostia.BuildFromIOTriples(triples)
	merged := ostia.Infer(tree)

	got, _ := inflector.FitClosestPath(merged, "a", nil)
	assert.Equal(t, "b", got)
	got, _ = inflector.FitClosestPath(merged, "aa", nil)
	assert.Equal(t, "bb", got)
}

func TestInfer_MergesSharedSuffixChains(t *testing.T) {
	triples := []ostia.Triple{
		{Input: "walk", Output: "walking"},
		{Input: "talk", Output: "talking"},
	}
	tree := ostia.BuildFromIOTriples(triples)
	merged := ostia.Infer(tree)

	// "walk" and "talk" differ only in their first letter; the shared
	// "alk"+"ing" tail must collapse into common states.
	assert.Less(t, len(merged.States()), len(tree.States()))
	assert.True(t, merged.IsSubsequential())

	got, _ := inflector.FitClosestPath(merged, "walk", nil)
	assert.Equal(t, "walking", got)
	got, _ = inflector.FitClosestPath(merged, "talk", nil)
	assert.Equal(t, "talking", got)
}

func TestInfer_EmptyTrainingSetYieldsSentinelsOnly(t *testing.T) {
	tree := ostia.BuildFromIOTriples(nil)
	merged := ostia.Infer(tree)
	assert.True(t, merged.IsSubsequential())
	assert.ElementsMatch(t, []int{fst.Final, fst.Initial}, merged.States())
}
