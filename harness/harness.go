package harness

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nozzle/lcgrand"
	m32 "github.com/nozzle/lcgrand/internal/math"
	"github.com/nozzle/lcgrand/internal/rand"
	"github.com/nozzle/lcgrand/stats"
)

const (
	// Range of the normal histogram, in standard deviations around the mean.
	normalSpan = 3.0

	// Range of the exponential histogram, in multiples of the mean.
	exponentialSpan = 5.0
)

// UniformResult holds the uniformity tests for one generator.
type UniformResult struct {
	Summary         stats.Summary
	Histogram       *stats.Histogram
	ChiSquare       float64
	PValue          float64
	Autocorrelation float64
}

// DistResult holds the tests for a derived distribution.
type DistResult struct {
	Summary         stats.Summary
	Histogram       *stats.Histogram
	Autocorrelation float64
}

// Report is the outcome of a validation run.
type Report struct {
	Config Config

	// Seed and RefSeed are the seeds actually used.
	Seed    int32
	RefSeed uint32

	Custom    UniformResult
	Reference UniformResult

	// Period is the detected LCG period, or stats.NoPeriod.
	Period int

	Normal      DistResult
	Exponential DistResult

	RefNormal      stats.Summary
	RefExponential stats.Summary

	// Plots lists the chart files written, if any.
	Plots []string
}

// Run draws the LCG and reference samples concurrently, each from its own
// generator, and analyzes them.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.logger()

	engine := lcgrand.New(cfg.Seed)
	if cfg.Seed == 0 {
		engine = lcgrand.NewFromTime()
	}
	refSeed := cfg.RefSeed
	if refSeed == 0 {
		refSeed = uint32(time.Now().UnixNano())
	}

	report := &Report{
		Config:  cfg,
		Seed:    engine.State(),
		RefSeed: refSeed,
		Period:  stats.NoPeriod,
	}
	log.Info().
		Int32("seed", report.Seed).
		Uint32("ref_seed", report.RefSeed).
		Int("n", cfg.N).
		Int("bins", cfg.Bins).
		Msg("starting validation")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runCustom(ctx, cfg, engine, report)
	})
	g.Go(func() error {
		return runReference(ctx, cfg, rand.NewMT19937(refSeed), report)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cfg.PlotDir != "" {
		plots, err := writePlots(cfg.PlotDir, report)
		if err != nil {
			return nil, err
		}
		report.Plots = plots
		log.Info().Strs("files", plots).Msg("wrote plots")
	}

	return report, nil
}

// runCustom consumes one continuous LCG stream: uniform sample, period
// sequence, normal sample, exponential sample.
func runCustom(ctx context.Context, cfg Config, engine *lcgrand.Engine, report *Report) error {
	log := cfg.logger()

	start := time.Now()
	u, err := engine.Uniform(cfg.N)
	if err != nil {
		return errors.Wrap(err, "uniform sample")
	}
	report.Custom = analyzeUniform(m32.ToFloat64(u), cfg.Bins)
	log.Debug().Dur("took", time.Since(start)).Msg("lcg uniform done")

	if err := ctx.Err(); err != nil {
		return err
	}

	if cfg.PeriodSamples > 0 {
		start = time.Now()
		seq, err := engine.Uniform(cfg.PeriodSamples)
		if err != nil {
			return errors.Wrap(err, "period sequence")
		}
		report.Period = stats.Period(m32.ToFloat64(seq))
		log.Debug().Dur("took", time.Since(start)).Int("period", report.Period).Msg("lcg period search done")

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	z, err := engine.Normal(cfg.N, cfg.Normal)
	if err != nil {
		return errors.Wrap(err, "normal sample")
	}
	mean, sd := float64(cfg.Normal.Mean), float64(cfg.Normal.StdDev)
	if sd < 0 {
		sd = -sd
	}
	report.Normal = analyzeDist(m32.ToFloat64(z), cfg.Bins, mean-normalSpan*sd, mean+normalSpan*sd)

	if err := ctx.Err(); err != nil {
		return err
	}

	x, err := engine.Exponential(cfg.N, cfg.Lambda)
	if err != nil {
		return errors.Wrap(err, "exponential sample")
	}
	report.Exponential = analyzeDist(m32.ToFloat64(x), cfg.Bins, 0, exponentialSpan/float64(cfg.Lambda))

	log.Info().Int32("state", engine.State()).Msg("lcg suite done")
	return nil
}

// runReference draws the MT19937 uniform sample and gonum normal and
// exponential samples driven by the same source.
func runReference(ctx context.Context, cfg Config, mt *rand.MT19937, report *Report) error {
	log := cfg.logger()

	u := make([]float64, cfg.N)
	mt.Fill(u)
	report.Reference = analyzeUniform(u, cfg.Bins)

	if err := ctx.Err(); err != nil {
		return err
	}

	normal := distuv.Normal{
		Mu:    float64(cfg.Normal.Mean),
		Sigma: float64(cfg.Normal.StdDev),
		Src:   mt,
	}
	z := make([]float64, cfg.N)
	for i := range z {
		z[i] = normal.Rand()
	}
	report.RefNormal = stats.Summarize(z)

	exponential := distuv.Exponential{Rate: float64(cfg.Lambda), Src: mt}
	x := make([]float64, cfg.N)
	for i := range x {
		x[i] = exponential.Rand()
	}
	report.RefExponential = stats.Summarize(x)

	log.Info().Msg("reference suite done")
	return nil
}

func analyzeUniform(x []float64, bins int) UniformResult {
	h := stats.NewHistogram(x, bins, 0, 1)
	chi2 := h.ChiSquare(len(x))
	return UniformResult{
		Summary:         stats.Summarize(x),
		Histogram:       h,
		ChiSquare:       chi2,
		PValue:          stats.ChiSquarePValue(chi2, bins-1),
		Autocorrelation: stats.Autocorrelation(x),
	}
}

func analyzeDist(x []float64, bins int, min, max float64) DistResult {
	return DistResult{
		Summary:         stats.Summarize(x),
		Histogram:       stats.NewHistogram(x, bins, min, max),
		Autocorrelation: stats.Autocorrelation(x),
	}
}
