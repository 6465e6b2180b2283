package ostia

import "github.com/katalvlaran/inflecta/fst"

// Triple is one training example: an inflected form (Input), the set of
// morphosyntactic tags describing the transformation (Tags), and the
// resulting lemma or form (Output).
type Triple struct {
	Input  string
	Tags   []string
	Output string
}

// BuildFromIOTriples constructs the initial onward prefix-tree transducer
// for a training set of (input, tags, output) triples. Each triple
// contributes one path from the Initial sentinel to the Final sentinel,
// chunked via getIOChunks and terminated with a ("#","#") end-of-word
// marker; states along the path are registered as members of every tag
// carried by the triple, and every tag seen anywhere is additionally
// registered as a member of both sentinels.
func BuildFromIOTriples(triples []Triple) *fst.Graph {
	g := fst.New()

	type pendingIn struct {
		input, output string
		to            int
	}
	type pendingOut struct {
		from          int
		input, output string
	}
	var ins []pendingIn
	var outs []pendingOut
	allTags := make(map[string]struct{})

	for _, tr := range triples {
		for _, tag := range tr.Tags {
			allTags[tag] = struct{}{}
		}

		chunks := append(getIOChunks(tr.Input, tr.Output), ioChunk{"#", "#"})

		var cur int
		for i, ch := range chunks {
			switch {
			case i == 0:
				cur = g.AddState(nil)
				for _, tag := range tr.Tags {
					g.AddTagMember(tag, cur)
				}
				ins = append(ins, pendingIn{ch.In, ch.Out, cur})
			case i == len(chunks)-1:
				for _, tag := range tr.Tags {
					g.AddTagMember(tag, cur)
				}
				outs = append(outs, pendingOut{cur, ch.In, ch.Out})
			default:
				from := cur
				cur = g.AddState(nil)
				for _, tag := range tr.Tags {
					g.AddTagMember(tag, from)
					g.AddTagMember(tag, cur)
				}
				g.AddArc(from, ch.In, ch.Out, cur)
			}
		}
	}

	g.AddState(intPtr(fst.Initial))
	g.AddState(intPtr(fst.Final))
	for tag := range allTags {
		g.AddTagMember(tag, fst.Initial)
		g.AddTagMember(tag, fst.Final)
	}

	for _, in := range ins {
		g.AddArc(fst.Initial, in.input, in.output, in.to)
	}
	for _, out := range outs {
		g.AddArc(out.from, out.input, out.output, fst.Final)
	}

	return g
}

// BuildFromInputs constructs the prefix-tree digraph for a bare list of
// input words, with no tags and no output labels: every arc's input and
// output are the same single rune, and each word is terminated with a
// '>' end-of-word marker. Used to build the contextual-subgraph skeleton
// walked by path matching when only the surface forms (not the training
// outputs) are relevant.
func BuildFromInputs(words []string) *fst.Graph {
	g := fst.New()

	type pendingIn struct {
		label string
		to    int
	}
	type pendingOut struct {
		from  int
		label string
	}
	var ins []pendingIn
	var outs []pendingOut

	for _, word := range words {
		runes := []rune(word)
		labels := make([]string, 0, len(runes)+1)
		for _, r := range runes {
			labels = append(labels, string(r))
		}
		labels = append(labels, ">")

		var cur int
		for i, label := range labels {
			switch {
			case i == 0:
				cur = g.AddState(nil)
				ins = append(ins, pendingIn{label, cur})
			case i == len(labels)-1:
				outs = append(outs, pendingOut{cur, label})
			default:
				from := cur
				cur = g.AddState(nil)
				g.AddArc(from, label, label, cur)
			}
		}
	}

	g.AddState(intPtr(fst.Initial))
	g.AddState(intPtr(fst.Final))
	for _, in := range ins {
		g.AddArc(fst.Initial, in.label, in.label, in.to)
	}
	for _, out := range outs {
		g.AddArc(out.from, out.label, out.label, fst.Final)
	}

	return g
}

func intPtr(i int) *int { return &i }
