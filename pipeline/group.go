package pipeline

import (
	"strings"

	"github.com/katalvlaran/inflecta/dataset"
)

// BundleKey joins a record's tags into the single string key used to
// group training records by morphosyntactic tag bundle, reproducing the
// raw semicolon-delimited metadata field each record's Tags were split
// from.
func BundleKey(tags []string) string {
	return strings.Join(tags, ";")
}

// GroupByBundle partitions records by BundleKey, preserving each group's
// relative order.
func GroupByBundle(records []dataset.Record) map[string][]dataset.Record {
	out := make(map[string][]dataset.Record)
	for _, r := range records {
		key := BundleKey(r.Tags)
		out[key] = append(out[key], r)
	}
	return out
}
