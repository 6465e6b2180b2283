package fst

import "strings"

// FindArc locates the arc from->to carrying the given input/output labels,
// if one exists.
func (g *Graph) FindArc(from int, input, output string, to int) (*Arc, bool) {
	for _, arc := range g.arcsFrom[from] {
		if arc.To == to && arc.Input == input && arc.Output == output {
			return arc, true
		}
	}
	return nil, false
}

// PushBack removes element as a literal suffix of the identified arc's
// output, and prepends element to the output of every arc leaving that
// arc's destination state. Reports whether the arc was found.
func (g *Graph) PushBack(element string, from int, input, output string, to int) bool {
	arc, ok := g.FindArc(from, input, output, to)
	if !ok {
		return false
	}
	arc.Output = eliminateSuffixLiteral(arc.Output, element)
	for _, out := range g.arcsFrom[to] {
		out.Output = element + out.Output
	}
	return true
}

// eliminateSuffixLiteral removes suffix from v if v ends with the exact
// literal substring suffix; otherwise v is returned unchanged. Literal
// comparison, never a character-set strip: push-back's algebra (v = u·w)
// only holds when whole chunks are removed.
func eliminateSuffixLiteral(v, suffix string) string {
	if suffix != "" && strings.HasSuffix(v, suffix) {
		return v[:len(v)-len(suffix)]
	}
	return v
}

// EliminatePrefixLiteral removes prefix from v if v starts with the exact
// literal substring prefix; otherwise v is returned unchanged.
func EliminatePrefixLiteral(v, prefix string) string {
	if prefix != "" && strings.HasPrefix(v, prefix) {
		return v[len(prefix):]
	}
	return v
}

// LongestCommonPrefix returns the longest literal prefix shared by every
// string in ss (empty slice yields "").
func LongestCommonPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	prefix := ss[0]
	for _, s := range ss[1:] {
		prefix = commonPrefix(prefix, s)
		if prefix == "" {
			break
		}
	}
	return prefix
}

// IsPrefixedWith reports whether s begins with the literal string prefix.
func IsPrefixedWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
