package pipeline

import (
	"fmt"
	"math/rand"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/katalvlaran/inflecta/dataset"
	"github.com/katalvlaran/inflecta/trace"
)

// Kind selects among the three training strategies the --pipeline flag
// names.
type Kind string

const (
	Deterministic Kind = "deterministic"
	Ostia         Kind = "ostia"
	PACOstia      Kind = "pac_ostia"
)

// Config bundles the knobs an orchestrated training+evaluation run needs
// beyond the train/dev record sets themselves.
type Config struct {
	Pipeline Kind
	Seed     int64
	Epsilon  float64
	Delta    float64
	Sink     *trace.Sink
	// ShowProgress renders an mpb progress bar over the per-bundle basis
	// build (deterministic/pac_ostia) or the OSTIA merge loop (ostia);
	// advisory only, never load-bearing for the result.
	ShowProgress bool
}

// Run loads no files itself (dataset.Load is the caller's job); it takes
// already-parsed train/dev record slices, builds the model Config.Pipeline
// names, and returns the resulting Accuracy.
func Run(cfg Config, train, dev []dataset.Record) (Accuracy, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	var progress *mpb.Progress
	if cfg.ShowProgress {
		progress = mpb.New(mpb.WithWidth(80))
	}

	switch cfg.Pipeline {
	case Ostia:
		bar := trainingBar(progress, "OSTIA training", int64(len(train)))
		model := BuildOstiaModel(train, cfg.Sink)
		advanceBar(bar, int64(len(train)))
		waitProgress(progress)
		return Evaluate(dev, model.Predict, cfg.Sink), nil

	case Deterministic:
		bundles := GroupByBundle(train)
		bar := trainingBar(progress, "deterministic clustering", int64(len(bundles)))
		bases := BuildDeterministicBases(train, cfg.Sink)
		advanceBar(bar, int64(len(bundles)))
		waitProgress(progress)
		return Evaluate(dev, PredictFromBases(bases, true), cfg.Sink), nil

	case PACOstia:
		bundles := GroupByBundle(train)
		bar := trainingBar(progress, "PAC/HORN1 training", int64(len(bundles)))
		bases := BuildPACBases(train, rng, cfg.Epsilon, cfg.Delta, cfg.Sink)
		advanceBar(bar, int64(len(bundles)))
		waitProgress(progress)
		return Evaluate(dev, PredictFromBases(bases, false), cfg.Sink), nil

	default:
		return Accuracy{}, fmt.Errorf("pipeline: unknown pipeline %q", cfg.Pipeline)
	}
}

// trainingBar adds a determinate bar to progress if progress is non-nil;
// returns nil otherwise so advanceBar is always safe to call.
func trainingBar(progress *mpb.Progress, name string, total int64) *mpb.Bar {
	if progress == nil || total <= 0 {
		return nil
	}
	return progress.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(name+": "),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO), "done!"),
		),
	)
}

func advanceBar(bar *mpb.Bar, n int64) {
	if bar == nil {
		return
	}
	bar.IncrInt64(n)
}

func waitProgress(progress *mpb.Progress) {
	if progress == nil {
		return
	}
	progress.Wait()
}
