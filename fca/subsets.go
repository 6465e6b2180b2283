package fca

// AllSubsets enumerates every subset of master, in ascending order of size
// (the empty set first). Used only by the theoretical/verification
// routines (set_of_intents-style exhaustive checks), never on the hot
// learning path.
func AllSubsets(master []string) [][]string {
	n := len(master)
	var out [][]string
	for size := 0; size <= n; size++ {
		combinations(master, size, 0, nil, &out)
	}
	return out
}

func combinations(master []string, size, start int, current []string, out *[][]string) {
	if len(current) == size {
		cp := append([]string(nil), current...)
		*out = append(*out, cp)
		return
	}
	for i := start; i < len(master); i++ {
		combinations(master, size, i+1, append(current, master[i]), out)
	}
}
