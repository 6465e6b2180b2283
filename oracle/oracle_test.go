package oracle_test

import (
	"testing"

	"github.com/katalvlaran/inflecta/fca"
	"github.com/katalvlaran/inflecta/oracle"
	"github.com/stretchr/testify/assert"
)

func identityClosure(attrs []string) []string { return attrs }

func TestLiTimes_SeedValues(t *testing.T) {
	assert.Equal(t, 2, oracle.LiTimes(1, 1.0, 0.5))
	assert.Equal(t, 8, oracle.LiTimes(3, 0.5, 0.5))
}

func TestIsMember_IdentityClosureOnAnySubset(t *testing.T) {
	assert.True(t, oracle.IsMember([]string{"x"}, identityClosure))
}

func TestQuery_EventuallyFindsCounterexample(t *testing.T) {
	c := fca.NewContext()
	c.AddRelation("insert_ing", "walk")
	c.AddRelation("insert_ing", "talk")
	c.AddRelation("insert_s", "cats")

	rng := oracle.NewRNG(42)
	o := oracle.New(rng, c.Attributes(), c.AttributesClosure, c.Extent, 1.0, 1.0)

	state := oracle.State{}
	found := false
	for i := 0; i < 50 && !found; i++ {
		res, next := o.Query(nil, state)
		state = next
		if !res.Equivalent {
			found = true
		}
	}
	assert.True(t, found, "oracle should surface a counterexample against the empty hypothesis within its sample budget")
}
