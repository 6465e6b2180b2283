package oracle

import "sort"

// ClosureFunc computes the attribute-side closure of a set (fca's
// AttributesClosure), the sole notion of "hypothesis" the membership test
// needs: an attribute set is a member iff it is already closed.
type ClosureFunc func(attrs []string) []string

// ExtentFunc computes the object-side extent of an attribute set (fca's
// Extent); used to test whether an implication's conclusion or antecedent
// closure covers any object at all.
type ExtentFunc func(attrs []string) []string

// IsMember reports whether x is closed under closure, i.e. x == closure(x)
// as sets.
func IsMember(x []string, closure ClosureFunc) bool {
	return equalAsSets(x, closure(x))
}

func equalAsSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]string(nil), a...)
	sb := append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
