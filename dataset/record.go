package dataset

import "strings"

// Record is one training or development example: a source word, its
// target inflected or lemmatized form, and the morphosyntactic tags
// describing the transformation between them.
type Record struct {
	Source string
	Target string
	Tags   []string
}

// parseLine parses one tab-separated line into a Record. ok is false for
// any malformed line: wrong field count, an empty source, target or
// metadata field, or either word containing the literal '*' skip marker.
func parseLine(line string) (rec Record, ok bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return Record{}, false
	}

	source, target, metadata := fields[0], fields[1], fields[2]
	if source == "" || target == "" || metadata == "" {
		return Record{}, false
	}
	if strings.Contains(source, "*") || strings.Contains(target, "*") {
		return Record{}, false
	}

	var tags []string
	for _, tag := range strings.Split(metadata, ";") {
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	return Record{Source: source, Target: target, Tags: tags}, true
}
