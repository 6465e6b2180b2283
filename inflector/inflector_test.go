package inflector_test

import (
	"testing"

	"github.com/katalvlaran/inflecta/inflector"
	"github.com/katalvlaran/inflecta/ostia"
	"github.com/stretchr/testify/assert"
)

func TestFitClosestPath_RingToRinging(t *testing.T) {
	triples := []ostia.Triple{
		{Input: "walk", Tags: []string{"PRS"}, Output: "walking"},
		{Input: "talk", Tags: []string{"PRS"}, Output: "talking"},
		{Input: "jump", Tags: []string{"PRS"}, Output: "jumping"},
	}
	tree := ostia.BuildFromIOTriples(triples)
	merged := ostia.Infer(tree)

	prediction, _ := inflector.FitClosestPath(merged, "ring", []string{"PRS"})
	assert.Equal(t, "ringing", prediction)
}

func TestFitClosestPath_EmptyGraphFallsBackToSource(t *testing.T) {
	tree := ostia.BuildFromIOTriples(nil)
	prediction, closest := inflector.FitClosestPath(tree, "ring", nil)
	assert.Equal(t, "ring", prediction)
	assert.Equal(t, "", closest)
}

func TestMatchesAnyPath_FindsExactTrainingWord(t *testing.T) {
	triples := []ostia.Triple{
		{Input: "walk", Output: "walking"},
	}
	tree := ostia.BuildFromIOTriples(triples)
	merged := ostia.Infer(tree)

	score, closest := inflector.MatchesAnyPath(merged, "walk")
	assert.Equal(t, "walk", closest)
	assert.InDelta(t, 0.0, score, 1e-9)
}
