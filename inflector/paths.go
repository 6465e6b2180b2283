package inflector

import "github.com/katalvlaran/inflecta/fst"

// Path is one simple path through an fst.Graph, given as the ordered arcs
// traversed from the Initial sentinel to the Final sentinel.
type Path struct {
	Arcs []*fst.Arc
}

// InputWord concatenates the Input label of every arc on the path.
func (p Path) InputWord() string {
	var out string
	for _, arc := range p.Arcs {
		out += arc.Input
	}
	return out
}

// simplePaths enumerates every simple path (no repeated state) from the
// Initial sentinel to the Final sentinel in g, via exhaustive depth-first
// search. Onward transducers built by ostia.Infer are small relative to
// the vocabulary that produced them, so exhaustive enumeration is
// appropriate; a corpus with pathologically large transducers would need
// a bounded variant, which this system does not provide.
func simplePaths(g *fst.Graph) []Path {
	var results []Path
	visited := map[int]bool{fst.Initial: true}
	var walk func(state int, acc []*fst.Arc)
	walk = func(state int, acc []*fst.Arc) {
		if state == fst.Final {
			results = append(results, Path{Arcs: append([]*fst.Arc(nil), acc...)})
			return
		}
		for _, arc := range g.OutArcs(state) {
			if visited[arc.To] {
				continue
			}
			visited[arc.To] = true
			walk(arc.To, append(acc, arc))
			visited[arc.To] = false
		}
	}
	walk(fst.Initial, nil)
	return results
}
