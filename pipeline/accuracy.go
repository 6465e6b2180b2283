package pipeline

import (
	"github.com/katalvlaran/inflecta/dataset"
	"github.com/katalvlaran/inflecta/trace"
)

// Accuracy is the exact word-match tally the CLI reports: Correct out of
// Total dev records.
type Accuracy struct {
	Correct int
	Total   int
}

// Percent returns the exact word-match accuracy as a percentage (0-100).
// An empty dev set (Total==0) reports 0 rather than dividing by zero.
func (a Accuracy) Percent() float64 {
	if a.Total == 0 {
		return 0
	}
	return 100.0 * float64(a.Correct) / float64(a.Total)
}

// Evaluate scores predict against every dev record by exact string match
// and returns the resulting Accuracy. predict is typically
// PredictFromBases's return value or an OstiaModel.Predict method value.
func Evaluate(dev []dataset.Record, predict func(source string, tags []string) string, sink *trace.Sink) Accuracy {
	var acc Accuracy
	for _, r := range dev {
		acc.Total++
		got := predict(r.Source, r.Tags)
		if got == r.Target {
			acc.Correct++
			sink.Log(trace.Info, "%s + %v: expected and found %s", r.Source, r.Tags, got)
		} else {
			sink.Log(trace.Info, "%s + %v: expected %s but found %s", r.Source, r.Tags, r.Target, got)
		}
	}
	return acc
}
