package editops

import "strings"

// stripParens drops the literal '(' and ')' characters, mirroring the
// cleanup iterLCS performs before every LCS search.
func stripParens(s string) string {
	if !strings.ContainsAny(s, "()") {
		return s
	}
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	return s
}

// lcs finds the longest contiguous substring common to s1 and s2 by growing
// a window from each starting rune of s1 while it remains a substring of
// s2, keeping the longest window seen. The naive O(|s1|·|s2|·|longest|)
// search is fine at word length.
func lcs(s1, s2 string) string {
	r1 := []rune(stripParens(s1))
	s2 = stripParens(s2)

	var longest []rune
	for i := 0; i < len(r1); i++ {
		x := string(r1[i])
		if !strings.Contains(s2, x) {
			continue
		}
		end := i + 1
		for strings.Contains(s2, string(r1[i:end])) {
			if end-i > len(longest) {
				longest = r1[i:end]
			}
			if end == len(r1) {
				break
			}
			end++
		}
	}
	return string(longest)
}

// LCS returns the longest contiguous substring common to s1 and s2, with no
// minimum-length threshold (unlike IterLCS's stopping condition). Exported
// for the OSTIA builder's chunking step, which needs the raw match.
func LCS(s1, s2 string) string {
	return lcs(s1, s2)
}

// IterLCS iteratively subtracts the longest common contiguous substring
// (length ≥ 2) of source and target, replacing the first occurrence in
// source with '#' and in target with '!', until no such substring remains.
// deleted is the set of non-empty fragments source splits into on '#';
// added is the analogous split of target on '!'.
func IterLCS(source, target string) (deleted, added []string) {
	sw1, sw2 := source, target
	for {
		match := lcs(sw1, sw2)
		if len([]rune(match)) <= 1 {
			break
		}
		sw1 = strings.Replace(sw1, match, "#", 1)
		sw2 = strings.Replace(sw2, match, "!", 1)
	}
	return splitNonEmpty(sw1, '#'), splitNonEmpty(sw2, '!')
}

func splitNonEmpty(s string, sep rune) []string {
	parts := strings.Split(s, string(sep))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
