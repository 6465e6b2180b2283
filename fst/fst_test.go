package fst_test

import (
	"testing"

	"github.com/katalvlaran/inflecta/fst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddState_AutoAssignsMaxPlusOne(t *testing.T) {
	g := fst.New()
	a := g.AddState(nil)
	b := g.AddState(nil)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestContextualSubgraph_UnknownTagIsNoop(t *testing.T) {
	g := fst.New()
	g.AddState(intp(0))
	g.AddState(intp(1))
	g.AddTagMember("V", 1)
	g.AddArc(0, "a", "b", 1)

	sub := g.ContextualSubgraph([]string{"DOES_NOT_EXIST"})
	assert.ElementsMatch(t, g.States(), sub.States())
}

func TestContextualSubgraph_IntersectsTagMemberships(t *testing.T) {
	g := fst.New()
	g.AddState(intp(fst.Initial))
	g.AddState(intp(fst.Final))
	g.AddState(intp(1))
	g.AddState(intp(2))
	g.AddState(intp(3))
	g.AddTagMember("V", 1)
	g.AddTagMember("V", 2)
	g.AddTagMember("PRS", 2)
	g.AddTagMember("PRS", 3)
	g.AddArc(1, "a", "a", 2)
	g.AddArc(2, "b", "b", 3)

	sub := g.ContextualSubgraph([]string{"V", "PRS"})

	// Only state 2 carries both tags; the sentinels are always kept.
	assert.ElementsMatch(t, []int{fst.Final, fst.Initial, 2}, sub.States())
	assert.Empty(t, sub.OutArcs(1))
}

func TestMerge_RedirectsArcsAndTags(t *testing.T) {
	g := fst.New()
	g.AddState(intp(0))
	g.AddState(intp(1))
	g.AddState(intp(2))
	g.AddArc(0, "a", "x", 1)
	g.AddTagMember("V", 1)

	g.Merge(2, 1)

	assert.False(t, g.HasState(1))
	out := g.OutArcs(0)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].To)
}

func TestFindSubseqViolation_DetectsSharedInputDifferentDestinations(t *testing.T) {
	g := fst.New()
	g.AddState(intp(0))
	g.AddState(intp(1))
	g.AddState(intp(2))
	g.AddArc(0, "a", "x", 1)
	g.AddArc(0, "a", "y", 2)

	v, ok := g.FindSubseqViolation()
	require.True(t, ok)
	assert.Equal(t, 0, v.State)
	assert.Equal(t, "a", v.Input)
}

func TestPushBack_PreservesConcatenatedOutput(t *testing.T) {
	g := fst.New()
	g.AddState(intp(0))
	g.AddState(intp(1))
	g.AddState(intp(2))
	g.AddArc(0, "a", "bc", 1)
	g.AddArc(1, "d", "e", 2)

	ok := g.PushBack("c", 0, "a", "bc", 1)
	require.True(t, ok)

	arc, found := g.FindArc(0, "a", "b", 1)
	require.True(t, found)
	assert.Equal(t, "b", arc.Output)

	next := g.OutArcs(1)
	require.Len(t, next, 1)
	assert.Equal(t, "ce", next[0].Output, "element must be prepended to the successor's output")
}

func TestArcsBetween_UnknownStateReturnsSentinelError(t *testing.T) {
	g := fst.New()
	g.AddState(intp(0))

	_, err := g.ArcsBetween(0, 99)
	assert.ErrorIs(t, err, fst.ErrStateNotFound)
}

func TestArcsBetween_FindsDirectArcs(t *testing.T) {
	g := fst.New()
	g.AddState(intp(0))
	g.AddState(intp(1))
	g.AddArc(0, "a", "x", 1)

	arcs, err := g.ArcsBetween(0, 1)
	require.NoError(t, err)
	require.Len(t, arcs, 1)
	assert.Equal(t, "a", arcs[0].Input)
}

func intp(i int) *int { return &i }
