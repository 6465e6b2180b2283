package ostia

import "github.com/katalvlaran/inflecta/editops"

// ioChunk is one aligned (input-rune, output-rune) pair produced by
// chunking two strings against their shared longest common substring.
type ioChunk struct {
	In, Out string
}

// getIOChunks splits s1 (input) and s2 (output) into a sequence of small
// aligned chunks, each carrying at most the runes contributed by one side
// at that position. The matched run of s1/s2 contributes identity chunks;
// an unmatched leading run of either side contributes one chunk per rune,
// paired with the empty string on the other side.
func getIOChunks(s1, s2 string) []ioChunk {
	r1 := []rune(s1)
	r2 := []rune(s2)
	var chunks []ioChunk

	for len(r1) != 0 || len(r2) != 0 {
		switch {
		case len(r1) != 0 && len(r2) != 0:
			match := editops.LCS(string(r1), string(r2))
			rm := []rune(match)
			switch {
			case match != "" && runeHasPrefix(r1, rm):
				for _, c := range rm {
					chunks = append(chunks, ioChunk{string(c), string(c)})
				}
				r1 = r1[len(rm):]
				r2 = r2[len(rm):]
			case match != "" && runeHasPrefix(r2, rm):
				chunks = append(chunks, ioChunk{string(r1[0]), ""})
				r1 = r1[1:]
			case match != "":
				idx := runeIndexOf(r2, rm)
				for _, c := range r2[:idx] {
					chunks = append(chunks, ioChunk{"", string(c)})
				}
				r2 = r2[idx:]
			default:
				for _, c := range r1 {
					chunks = append(chunks, ioChunk{string(c), ""})
				}
				r1 = nil
			}
		case len(r1) != 0:
			for _, c := range r1 {
				chunks = append(chunks, ioChunk{string(c), ""})
			}
			r1 = nil
		default:
			for _, c := range r2 {
				chunks = append(chunks, ioChunk{"", string(c)})
			}
			r2 = nil
		}
	}
	return chunks
}

func runeHasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

func runeIndexOf(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
