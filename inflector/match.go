package inflector

import (
	"github.com/katalvlaran/inflecta/editops"
	"github.com/katalvlaran/inflecta/fst"
)

// affixScore measures how close candidate is to word by aligning both into
// prefix/root/suffix spans and summing the Levenshtein distance of each
// corresponding span pair, normalized by len(word). Lower is closer.
func affixScore(candidate, word string) float64 {
	lp, lr, ls, rp, rr, rs := editops.Align(candidate, word)
	_, _, prefixCost := editops.Levenshtein(lp, rp, 1, 1, 1)
	_, _, suffixCost := editops.Levenshtein(ls, rs, 1, 1, 1)
	_, _, rootCost := editops.Levenshtein(lr, rr, 1, 1, 1)
	total := prefixCost + suffixCost + rootCost
	if len([]rune(word)) == 0 {
		return total
	}
	return total / float64(len([]rune(word)))
}

// MatchesAnyPath enumerates every simple path from the Initial to the
// Final sentinel of g, scores each path's input word against word via
// affixScore, and returns the best (lowest) score together with the
// matching candidate word. word itself is the fallback when no candidate
// scores lower than len(word).
func MatchesAnyPath(g *fst.Graph, word string) (score float64, closest string) {
	minScore := float64(len([]rune(word)))
	closest = word

	for _, path := range simplePaths(g) {
		candidate := trimTrailingRune(path.InputWord())
		s := affixScore(candidate, word)
		if s < minScore {
			minScore = s
			closest = candidate
		}
	}
	return minScore, closest
}

// FitClosestPath restricts g to the contextual subgraph of tags, finds the
// path whose input word best matches source by affixScore, then replays
// that path's arcs against source to build the predicted form: an arc
// whose input equals its output copies the next unconsumed source rune;
// an arc with empty input emits its output literally; an arc with empty
// output consumes one source rune without emitting anything. Any source
// tail left unconsumed after the path is appended verbatim. If g has no
// path at all, the prediction degenerates to (source, "").
func FitClosestPath(g *fst.Graph, source string, tags []string) (prediction, closestWord string) {
	sub := g.ContextualSubgraph(tags)
	paths := simplePaths(sub)
	if len(paths) == 0 {
		return source, ""
	}

	minScore := float64(len([]rune(source)))
	bestIdx := -1
	for i, path := range paths {
		candidate := trimTrailingRune(path.InputWord())
		s := affixScore(candidate, source)
		if s < minScore {
			minScore = s
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return source, ""
	}

	fitting := paths[bestIdx]
	closestWord = trimTrailingRune(fitting.InputWord())

	srcRunes := []rune(source)
	j := 0
	var out []rune
	for _, arc := range fitting.Arcs {
		switch {
		case arc.Input == arc.Output && j < len(srcRunes):
			out = append(out, srcRunes[j])
			j++
		case arc.Input == "":
			out = append(out, []rune(arc.Output)...)
		case arc.Output == "":
			j++
		}
	}
	if j < len(srcRunes) {
		out = append(out, srcRunes[j:]...)
	}
	return string(out), closestWord
}

// trimTrailingRune drops the final rune of s (the "#" or ">" end-of-word
// sentinel chunk every path terminates with) before a path's input word
// is used for scoring.
func trimTrailingRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
