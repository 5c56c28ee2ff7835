// Package harness validates the LCG against a Mersenne Twister reference:
// it draws samples from both, bins them, and reports chi-square,
// autocorrelation, period and moment statistics.
package harness

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nozzle/lcgrand"
)

// ErrInvalidConfig is returned, wrapped, by Config.Validate.
var ErrInvalidConfig = errors.New("harness: invalid config")

// Config configures a validation run.
type Config struct {
	// N is the sample size for the histogram, chi-square and
	// autocorrelation tests.
	// Default: 10000
	N int

	// Bins is the number of equal-width histogram bins.
	// Default: 10
	Bins int

	// PeriodSamples is the length of the sequence searched for a period.
	// 0 skips the search.
	// Default: 100000
	PeriodSamples int

	// Seed is the LCG's initial state.
	// 0 seeds from the wall clock, since a zero state only ever yields 0.
	// Default: 0
	Seed int32

	// RefSeed seeds the MT19937 reference generator.
	// 0 seeds from the wall clock.
	// Default: 0
	RefSeed uint32

	// Normal configures the normal transform under test.
	// Default: N(0, 1) with 12 uniforms per sample
	Normal lcgrand.NormalParams

	// Lambda is the exponential rate under test.
	// Default: 1.0
	Lambda float32

	// PlotDir, when set, receives a PNG bar chart per histogram.
	// Default: ""
	PlotDir string

	// Logger receives progress events. nil disables logging.
	Logger *zerolog.Logger
}

// DefaultConfig returns the default harness configuration.
func DefaultConfig() Config {
	return Config{
		N:             10000,
		Bins:          10,
		PeriodSamples: 100000,
		Seed:          0,
		RefSeed:       0,
		Normal:        lcgrand.DefaultNormalParams(),
		Lambda:        1.0,
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.N < 2:
		return errors.Wrapf(ErrInvalidConfig, "sample size %d must be at least 2", c.N)
	case c.Bins < 2:
		return errors.Wrapf(ErrInvalidConfig, "bins %d must be at least 2", c.Bins)
	case c.PeriodSamples < 0:
		return errors.Wrapf(ErrInvalidConfig, "period samples %d must not be negative", c.PeriodSamples)
	case !(c.Lambda > 0):
		return errors.Wrapf(ErrInvalidConfig, "lambda %v must be positive", c.Lambda)
	}
	if err := c.Normal.Validate(); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

func (c Config) logger() *zerolog.Logger {
	if c.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return c.Logger
}
