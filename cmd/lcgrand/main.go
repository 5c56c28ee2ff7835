// Command lcgrand validates the LCG against a Mersenne Twister reference and
// prints histograms, chi-square, autocorrelation and period results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/nozzle/lcgrand/harness"
	"github.com/nozzle/lcgrand/internal/logger"
)

func main() {
	// Parse command-line flags
	n := flag.Int("n", 10000, "Sample size for histogram, chi-square and autocorrelation")
	bins := flag.Int("bins", 10, "Number of histogram bins")
	periodSamples := flag.Int("period-samples", 100000, "Sequence length for the period search (0 to skip)")
	seed := flag.Int("seed", 0, "LCG seed (0 = current time)")
	refSeed := flag.Uint("ref-seed", 0, "MT19937 reference seed (0 = current time)")
	normalK := flag.Int("normal-k", 12, "Uniforms summed per normal sample")
	lambda := flag.Float64("lambda", 1.0, "Exponential rate")
	plotDir := flag.String("plot-dir", "", "Directory for PNG histograms (empty = no plots)")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	jsonLog := flag.Bool("json-log", false, "Log JSON instead of console output")
	flag.Parse()

	log, err := logger.New(os.Stderr, *logLevel, *jsonLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	// Configure the harness
	config := harness.DefaultConfig()
	config.N = *n
	config.Bins = *bins
	config.PeriodSamples = *periodSamples
	config.Seed = int32(*seed)
	config.RefSeed = uint32(*refSeed)
	config.Normal.UniformsPerSample = *normalK
	config.Lambda = float32(*lambda)
	config.PlotDir = *plotDir
	config.Logger = &log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := harness.Run(ctx, config)
	if err != nil {
		log.Error().Err(err).Msg("validation failed")
		stop()
		os.Exit(1)
	}

	if _, err := report.WriteTo(os.Stdout); err != nil {
		log.Error().Err(err).Msg("writing report")
		stop()
		os.Exit(1)
	}
}
