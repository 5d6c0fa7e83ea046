package bench

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Measurement is the wall-clock time of one invocation on one sample.
type Measurement struct {
	Elapsed time.Duration
	// Capped is set when the value was carried over from an earlier sample
	// instead of being measured.
	Capped bool
	Err    error
}

// Series holds one measurement per sample, in sample order.
type Series struct {
	Label  string
	Points []Measurement
}

type Results struct {
	Samples []Sample
	Series  []Series
}

// Runner times external tokenizers invoked as "<bin> --tokenize <file>".
type Runner struct {
	Binaries []Binary
	// Threshold caps a binary: once one of its runs takes longer, that
	// duration is reused for every remaining sample. Zero disables it.
	Threshold time.Duration
	// Timeout bounds a single invocation. Zero means no limit.
	Timeout   time.Duration
	Reference Reference
	Logger    *zap.Logger

	invoke func(ctx context.Context, bin, file string) error
}

func execTokenize(ctx context.Context, bin, file string) error {
	cmd := exec.CommandContext(ctx, bin, "--tokenize", file)
	return cmd.Run()
}

// Run measures every binary on every sample, samples in the outer loop.
// A failing invocation keeps its timing, is marked on the measurement and
// contributes to the returned error; the run goes on.
func (r *Runner) Run(ctx context.Context, samples []Sample) (*Results, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	invoke := r.invoke
	if invoke == nil {
		invoke = execTokenize
	}

	res := &Results{Samples: samples}
	for _, b := range r.Binaries {
		res.Series = append(res.Series, Series{Label: b.Label, Points: make([]Measurement, 0, len(samples))})
	}
	var ref *Series
	if r.Reference != nil {
		res.Series = append(res.Series, Series{Label: r.Reference.Name(), Points: make([]Measurement, 0, len(samples))})
		ref = &res.Series[len(res.Series)-1]
	}

	capped := make([]*time.Duration, len(r.Binaries))
	var errs error
	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		log.Debug("lexing sample", zap.String("file", s.Path), zap.String("size", humanize.Bytes(uint64(s.Size))))

		for i, b := range r.Binaries {
			series := &res.Series[i]
			if capped[i] != nil {
				series.Points = append(series.Points, Measurement{Elapsed: *capped[i], Capped: true})
				continue
			}

			m := r.measure(ctx, invoke, b, s)
			if m.Err != nil {
				log.Warn("tokenizer failed", zap.String("binary", b.Label), zap.String("file", s.Path), zap.Error(m.Err))
				errs = multierr.Append(errs, fmt.Errorf("%s on %s: %w", b.Label, s.Path, m.Err))
			}
			if r.Threshold > 0 && m.Elapsed > r.Threshold {
				elapsed := m.Elapsed
				capped[i] = &elapsed
				log.Info("threshold exceeded, capping", zap.String("binary", b.Label), zap.Duration("elapsed", elapsed))
			}
			series.Points = append(series.Points, m)
		}

		if ref != nil {
			m, err := r.measureReference(s)
			if err != nil {
				return res, err
			}
			ref.Points = append(ref.Points, m)
		}
	}
	return res, errs
}

func (r *Runner) measure(ctx context.Context, invoke func(context.Context, string, string) error, b Binary, s Sample) Measurement {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	start := time.Now()
	err := invoke(ctx, b.Path, s.Path)
	return Measurement{Elapsed: time.Since(start), Err: err}
}

func (r *Runner) measureReference(s Sample) (Measurement, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Measurement{}, fmt.Errorf("failed to read sample: %w", err)
	}
	start := time.Now()
	r.Reference.Tokenize(string(data))
	return Measurement{Elapsed: time.Since(start)}, nil
}
