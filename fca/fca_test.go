package fca_test

import (
	"testing"

	"github.com/katalvlaran/inflecta/fca"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWalkTalkJump() *fca.Context {
	c := fca.NewContext()
	c.AddRelation("insert_ing", "walk")
	c.AddRelation("insert_ing", "talk")
	c.AddRelation("insert_ing", "jump")
	return c
}

func TestClosure_IdempotentExtensiveMonotone(t *testing.T) {
	c := buildWalkTalkJump()

	b := []string{"walk"}
	closed := c.AttributesClosure(b)
	closedTwice := c.AttributesClosure(closed)
	assert.ElementsMatch(t, closed, closedTwice, "closure must be idempotent")
	assert.Subset(t, closed, b, "closure must be extensive")

	bigger := []string{"walk", "talk"}
	assert.Subset(t, c.AttributesClosure([]string{"walk", "talk", "jump"}), c.AttributesClosure(bigger),
		"closure must be monotone")
}

func TestIntent_EmptyObjectsIsFullAttributes(t *testing.T) {
	c := buildWalkTalkJump()
	assert.ElementsMatch(t, []string{"jump", "talk", "walk"}, c.Intent(nil))
}

func TestExtent_EmptyAttributesIsFullObjects(t *testing.T) {
	c := buildWalkTalkJump()
	assert.ElementsMatch(t, []string{"insert_ing"}, c.Extent(nil))
}

func TestSingleRowConcept(t *testing.T) {
	c := fca.NewContext()
	c.AddRelation("insert_ing", "walk")

	impl := fca.Implication{Premise: []string{"walk"}, Conclusion: []string{"walk"}}
	assert.True(t, c.Valid(impl.Premise, impl.Conclusion))
}

func TestCleanHypothesis_DropsDuplicatesAndEmpty(t *testing.T) {
	c := buildWalkTalkJump()
	h := []fca.Implication{
		{Premise: []string{"walk"}, Conclusion: []string{"walk", "talk"}},
		{Premise: []string{"talk"}, Conclusion: []string{"talk", "walk"}},
		{Premise: []string{"nope"}, Conclusion: []string{"doesnotexist"}},
	}
	cleaned := fca.CleanHypothesis(h, c.Extent)
	require.Len(t, cleaned, 1)
	assert.LessOrEqual(t, len(cleaned), len(h))
}

func TestAttributesInsertionOrder_PreservesFirstSeenOrder(t *testing.T) {
	c := fca.NewContext()
	c.AddRelation("insert_ing", "jump")
	c.AddRelation("insert_ing", "walk")
	c.AddRelation("insert_ing", "jump")

	assert.Equal(t, []string{"jump", "walk"}, c.AttributesInsertionOrder())
	assert.Equal(t, []string{"jump", "walk"}, c.Attributes(), "sorted order happens to coincide here")
}

func TestAllSubsets_AscendingBySize(t *testing.T) {
	subsets := fca.AllSubsets([]string{"a", "b"})
	require.Len(t, subsets, 4)
	assert.Empty(t, subsets[0])
	for _, s := range subsets[1:3] {
		assert.Len(t, s, 1)
	}
	assert.Len(t, subsets[3], 2)
}
