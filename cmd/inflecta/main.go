// Command inflecta trains a morphological inflection model from labeled
// word-pair data and reports its exact word-match accuracy on a held-out
// dev set.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/inflecta/dataset"
	"github.com/katalvlaran/inflecta/pipeline"
	"github.com/katalvlaran/inflecta/trace"
)

var (
	pipelineName = flag.String("pipeline", "deterministic", "training pipeline: deterministic, ostia, or pac_ostia")
	language     = flag.String("language", "", "language name; must match an available training file")
	quality      = flag.String("quality", "low", "training set quality: low, medium, or high")
	dataDir      = flag.String("data-dir", "", "directory containing <language>-train-<quality> and <language>-dev")
	seed         = flag.Int64("seed", 1, "seed for the oracle's reproducible RNG")
	epsilon      = flag.Float64("epsilon", 1.0, "PAC accuracy tolerance (pac_ostia only)")
	delta        = flag.Float64("delta", 1.0, "PAC confidence tolerance (pac_ostia only)")
	verbose      = verboseCount(0)
)

// verboseCount implements flag.Value so repeated -verbose flags and a
// single -verbose=N both produce a 0-3 count.
type verboseCount int

func (v *verboseCount) String() string { return fmt.Sprintf("%d", int(*v)) }
func (v *verboseCount) Set(s string) error {
	if s == "" || s == "true" {
		*v++
		return nil
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return fmt.Errorf("invalid --verbose value %q", s)
	}
	*v = verboseCount(n)
	return nil
}
func (v *verboseCount) IsBoolFlag() bool { return true }

func main() {
	flag.Var(&verbose, "verbose", "trace verbosity, 0-3 (repeatable, e.g. -verbose -verbose)")
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "inflecta:", err)
		os.Exit(1)
	}
}

func run() error {
	kind := pipeline.Kind(*pipelineName)
	switch kind {
	case pipeline.Deterministic, pipeline.Ostia, pipeline.PACOstia:
	default:
		return fmt.Errorf("invalid --pipeline %q (want deterministic, ostia, or pac_ostia)", *pipelineName)
	}
	if *language == "" {
		return fmt.Errorf("--language is required")
	}
	switch *quality {
	case "low", "medium", "high":
	default:
		return fmt.Errorf("invalid --quality %q (want low, medium, or high)", *quality)
	}
	level := trace.Level(int(verbose))
	if level < trace.Off {
		level = trace.Off
	}
	if level > trace.Trace {
		level = trace.Trace
	}
	sink := trace.NewStderr(level)

	trainPath := dataset.TrainPath(*dataDir, *language, *quality)
	train, err := dataset.Load(trainPath, sink)
	if err != nil {
		return err
	}
	devPath := dataset.DevPath(*dataDir, *language)
	dev, err := dataset.Load(devPath, sink)
	if err != nil {
		return err
	}

	cfg := pipeline.Config{
		Pipeline:     kind,
		Seed:         *seed,
		Epsilon:      *epsilon,
		Delta:        *delta,
		Sink:         sink,
		ShowProgress: level >= trace.Info,
	}
	acc, err := pipeline.Run(cfg, train, dev)
	if err != nil {
		return err
	}

	fmt.Printf("Exact word-match accuracy for %s-%s: %v\n", *language, *quality, acc.Percent())
	return nil
}
