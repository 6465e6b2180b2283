package horn1_test

import (
	"testing"

	"github.com/katalvlaran/inflecta/fca"
	"github.com/katalvlaran/inflecta/horn1"
	"github.com/katalvlaran/inflecta/oracle"
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

func TestPacBasis_ValidAndGroupsLemmas(t *testing.T) {
	c := buildWalkTalkJump()
	rng := oracle.NewRNG(7)

	h := horn1.PacBasis(c, rng, 0.5, 0.5)
	require.NotEmpty(t, h)

	for _, impl := range h {
		assert.True(t, c.Valid(impl.Premise, impl.Conclusion), "every implication returned by HORN1 must be valid in the context")
	}

	found := false
	for _, impl := range h {
		if len(impl.Conclusion) == 3 {
			assert.Contains(t, impl.Conclusion, "walk")
			assert.Contains(t, impl.Conclusion, "talk")
			assert.Contains(t, impl.Conclusion, "jump")
			found = true
		}
	}
	assert.True(t, found, "expected one implication grouping walk/talk/jump")
}

func TestPacBasis_EmptyContextYieldsEmptyBasis(t *testing.T) {
	c := fca.NewContext()
	rng := oracle.NewRNG(1)
	h := horn1.PacBasis(c, rng, 0.5, 0.5)
	assert.Empty(t, h)
}
