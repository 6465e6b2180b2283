package ostia

import (
	"strings"

	"github.com/katalvlaran/inflecta/fst"
)

// Infer runs the OSTIA state-merging algorithm over tree, an onward
// prefix-tree transducer built by BuildFromIOTriples, and returns the
// resulting (generally much smaller) subsequential transducer. tree is
// not mutated; the returned graph is a separate, merged copy.
//
// States are merged in ascending numeric id order, skipping the Initial
// and Final sentinels: the outer variable q walks forward through every
// non-sentinel state id present at the time, and for each q, every
// smaller present id p is tentatively merged into q. If the merge leaves
// the graph non-subsequential, each violation is repaired by keeping the
// two conflicting arcs' common output prefix on the arcs, pushing the rest
// of each arc's output back onto its destination (PushBack), and merging
// those destinations.
//
// A merge stands only if the repaired graph is subsequential AND still
// realizes exactly the training transductions the prefix tree encoded
// (every (input, output) path of the tree survives, and no training
// input gains a different output). The second condition is what keeps
// merging sound in this arc encoding: output-emission arcs carry an
// empty input, so a merge can strand them on a cycle or open a shortcut
// past them without ever tripping the input-determinism check alone.
// Any merge failing either condition is undone entirely.
func Infer(tree *fst.Graph) *fst.Graph {
	tou := tree.Clone()
	want := transductions(tree)

	nonSentinel := func() []int {
		var out []int
		for _, s := range tou.States() {
			if s != fst.Initial && s != fst.Final {
				out = append(out, s)
			}
		}
		return out
	}

	initial := nonSentinel()
	if len(initial) == 0 {
		return tou
	}
	lastState := initial[len(initial)-1]

	next := func(x int) int {
		for _, s := range nonSentinel() {
			if s > x {
				return s
			}
		}
		return x
	}

	q := initial[0]
	for q < lastState {
		q = next(q)

		present := nonSentinel()
		p := present[0]
		for p < q {
			snapshot := tou.Clone()
			tou.Merge(q, p)

			aborted := false
			for !tou.IsSubsequential() {
				v, found := tou.FindSubseqViolation()
				if !found {
					break
				}

				if (v.Output1 != v.Output2 && v.Input == "#") ||
					(v.Neighbor1 < q && !fst.IsPrefixedWith(v.Output1, v.Output2)) {
					tou = snapshot
					aborted = true
					break
				}

				u := fst.LongestCommonPrefix([]string{v.Output1, v.Output2})
				rest1 := fst.EliminatePrefixLiteral(v.Output1, u)
				rest2 := fst.EliminatePrefixLiteral(v.Output2, u)
				tou.PushBack(rest1, v.State, v.Input, v.Output1, v.Neighbor1)
				tou.PushBack(rest2, v.State, v.Input, v.Output2, v.Neighbor2)
				tou.Merge(v.Neighbor2, v.Neighbor1)
			}

			if !aborted && (!tou.IsSubsequential() || !preservesTransductions(tou, want)) {
				tou = snapshot
			}

			p = next(p)
		}
	}

	return tou
}

// transductions maps every input word realized by a simple path of g
// (from the Initial to the Final sentinel) to the set of output words
// realized for it.
func transductions(g *fst.Graph) map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{})
	visited := map[int]bool{fst.Initial: true}
	var walk func(state int, in, outw string)
	walk = func(state int, in, outw string) {
		if state == fst.Final {
			if out[in] == nil {
				out[in] = make(map[string]struct{})
			}
			out[in][outw] = struct{}{}
			return
		}
		for _, arc := range g.OutArcs(state) {
			if visited[arc.To] {
				continue
			}
			visited[arc.To] = true
			walk(arc.To, in+arc.Input, outw+arc.Output)
			visited[arc.To] = false
		}
	}
	walk(fst.Initial, "", "")
	return out
}

// outputsFor collects the output words of every simple path of g whose
// concatenated input labels spell exactly input. The search consumes
// input as it walks, so arcs whose label cannot extend the remaining
// input prune the branch immediately.
func outputsFor(g *fst.Graph, input string) map[string]struct{} {
	outs := make(map[string]struct{})
	visited := map[int]bool{fst.Initial: true}
	var walk func(state int, rest, acc string)
	walk = func(state int, rest, acc string) {
		if state == fst.Final {
			if rest == "" {
				outs[acc] = struct{}{}
			}
			return
		}
		for _, arc := range g.OutArcs(state) {
			if visited[arc.To] {
				continue
			}
			if arc.Input != "" && !strings.HasPrefix(rest, arc.Input) {
				continue
			}
			visited[arc.To] = true
			walk(arc.To, strings.TrimPrefix(rest, arc.Input), acc+arc.Output)
			visited[arc.To] = false
		}
	}
	walk(fst.Initial, input, "")
	return outs
}

// preservesTransductions reports whether g still realizes exactly the
// given input-to-output-set mapping: no pair lost, no training input
// gaining a new output. Inputs outside the mapping are unconstrained —
// that freedom is where the merged transducer generalizes.
func preservesTransductions(g *fst.Graph, want map[string]map[string]struct{}) bool {
	for input, outputs := range want {
		got := outputsFor(g, input)
		if len(got) != len(outputs) {
			return false
		}
		for o := range outputs {
			if _, ok := got[o]; !ok {
				return false
			}
		}
	}
	return true
}
