package fst

// FindSubseqViolation scans for two distinct out-arcs of the same state,
// to different destinations, sharing the same Input label — the condition
// that prevents the transducer from being deterministic on input. Returns
// the first violation found (in deterministic state/arc order) and true,
// or a zero Violation and false if the graph is already subsequential.
func (g *Graph) FindSubseqViolation() (Violation, bool) {
	for _, state := range g.States() {
		arcs := g.OutArcs(state)
		for i := range arcs {
			for j := range arcs {
				if i == j {
					continue
				}
				a1, a2 := arcs[i], arcs[j]
				if a1.To == a2.To {
					continue
				}
				if a1.Input == a2.Input {
					s, t := a1.To, a2.To
					vOut, wOut := a1.Output, a2.Output
					if s > t {
						s, t = t, s
						vOut, wOut = wOut, vOut
					}
					return Violation{
						State:     state,
						Input:     a1.Input,
						Output1:   vOut,
						Neighbor1: s,
						Output2:   wOut,
						Neighbor2: t,
					}, true
				}
			}
		}
	}
	return Violation{}, false
}

// IsSubsequential reports whether the graph currently has no
// subsequentiality violation.
func (g *Graph) IsSubsequential() bool {
	_, violated := g.FindSubseqViolation()
	return !violated
}
