package cluster

import (
	"sort"

	"github.com/katalvlaran/inflecta/fca"
)

// Cluster groups every lemma in ctx by its Extent — the set of edit tokens
// derived from it, looked up through the attribute-side operator since
// lemmas are the attribute side of the relation — and returns one
// implication per group: ((first_lemma), (sorted(group))), sorted by
// descending group size. first_lemma is the group member seen earliest in
// training order (fca.Context.AttributesInsertionOrder), so the premise is
// stable across runs without depending on alphabetical order.
func Cluster(ctx *fca.Context) []fca.Implication {
	lemmas := ctx.AttributesInsertionOrder()

	type group struct {
		firstSeen string
		lemmas    []string
	}
	byOps := make(map[string]*group)
	var order []string

	for _, lemma := range lemmas {
		ops := ctx.Extent([]string{lemma})
		key := opsKey(ops)
		g, ok := byOps[key]
		if !ok {
			g = &group{firstSeen: lemma}
			byOps[key] = g
			order = append(order, key)
		}
		g.lemmas = append(g.lemmas, lemma)
	}

	groups := make([]*group, 0, len(order))
	for _, key := range order {
		sort.Strings(byOps[key].lemmas)
		groups = append(groups, byOps[key])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].lemmas) > len(groups[j].lemmas)
	})

	out := make([]fca.Implication, 0, len(groups))
	for _, g := range groups {
		out = append(out, fca.Implication{
			Premise:    []string{g.firstSeen},
			Conclusion: append([]string(nil), g.lemmas...),
		})
	}
	return out
}

func opsKey(ops []string) string {
	out := ""
	for _, o := range ops {
		out += o + "\x1f"
	}
	return out
}
