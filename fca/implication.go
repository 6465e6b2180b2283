package fca

import "sort"

// Implication is a pair (Premise, Conclusion) of attribute tuples: every
// object with all attributes in Premise has all attributes in Conclusion.
type Implication struct {
	Premise    []string
	Conclusion []string
}

// Valid reports whether the implication holds in the context: every object
// in Extent(Premise) is also in Extent(Conclusion).
func (c *Context) Valid(premise, conclusion []string) bool {
	return isSubset(c.Extent(premise), c.Extent(conclusion))
}

// IsModelOfImplication reports whether attrs models (premise -> conclusion):
// premise ⊄ attrs, or conclusion ⊆ attrs.
func IsModelOfImplication(attrs, premise, conclusion []string) bool {
	return !isSubset(premise, attrs) || isSubset(conclusion, attrs)
}

// IsModelOfImplications reports whether attrs models every implication in H.
func IsModelOfImplications(attrs []string, h []Implication) bool {
	for _, impl := range h {
		if !IsModelOfImplication(attrs, impl.Premise, impl.Conclusion) {
			return false
		}
	}
	return true
}

// ImplicationsNotRespecting returns the subset of H violated by attrs.
func ImplicationsNotRespecting(attrs []string, h []Implication) []Implication {
	var out []Implication
	for _, impl := range h {
		if !IsModelOfImplication(attrs, impl.Premise, impl.Conclusion) {
			out = append(out, impl)
		}
	}
	return out
}

// ReplaceDisrespectful returns H with every implication also present in D
// (by value) having its conclusion replaced by sorted(conclusion ∩ attrs);
// implications not in D pass through unchanged.
func ReplaceDisrespectful(h, d []Implication, attrs []string) []Implication {
	disrespectful := make(map[string]struct{}, len(d))
	for _, impl := range d {
		disrespectful[implicationKey(impl)] = struct{}{}
	}

	out := make([]Implication, len(h))
	for i, impl := range h {
		if _, bad := disrespectful[implicationKey(impl)]; bad {
			out[i] = Implication{
				Premise:    impl.Premise,
				Conclusion: sortedIntersection(impl.Conclusion, attrs),
			}
			continue
		}
		out[i] = impl
	}
	return out
}

// FindNotMember returns the first (p, c) in H such that attrs ∩ p ≠ p and
// isMember(attrs ∩ p) is false, along with ok=true. ok is false if no such
// implication exists.
func FindNotMember(h []Implication, attrs []string, isMember func(subset []string) bool) (impl Implication, ok bool) {
	for _, candidate := range h {
		inter := sortedIntersection(attrs, candidate.Premise)
		if equalSets(inter, candidate.Premise) {
			continue
		}
		if !isMember(inter) {
			return candidate, true
		}
	}
	return Implication{}, false
}

// CleanHypothesis drops duplicate implications by the Extent of their
// conclusion: it keeps only the first implication seen for each distinct,
// non-empty conclusion extent, preserving order.
func CleanHypothesis(h []Implication, extent func(attrs []string) []string) []Implication {
	seen := make(map[string]struct{})
	out := make([]Implication, 0, len(h))
	for _, impl := range h {
		ext := extent(impl.Conclusion)
		if len(ext) == 0 {
			continue
		}
		key := sliceKey(ext)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, impl)
	}
	return out
}

func implicationKey(impl Implication) string {
	return sliceKey(impl.Premise) + "\x00" + sliceKey(impl.Conclusion)
}

func sliceKey(s []string) string {
	sorted := append([]string(nil), s...)
	sort.Strings(sorted)
	out := ""
	for _, v := range sorted {
		out += v + "\x1f"
	}
	return out
}

func isSubset(subset, superset []string) bool {
	set := make(map[string]struct{}, len(superset))
	for _, v := range superset {
		set[v] = struct{}{}
	}
	for _, v := range subset {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

func equalSets(a, b []string) bool {
	return isSubset(a, b) && isSubset(b, a) && len(a) == len(b)
}

func sortedIntersection(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	var out []string
	seen := make(map[string]struct{})
	for _, v := range a {
		if _, ok := set[v]; ok {
			if _, dup := seen[v]; !dup {
				out = append(out, v)
				seen[v] = struct{}{}
			}
		}
	}
	sort.Strings(out)
	return out
}
