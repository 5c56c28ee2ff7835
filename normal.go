package lcgrand

import (
	"github.com/pkg/errors"

	m32 "github.com/nozzle/lcgrand/internal/math"
)

// DefaultUniformsPerSample makes the Irwin–Hall scaling factor exactly 1.
const DefaultUniformsPerSample = 12

// NormalParams configures the Irwin–Hall normal transform.
type NormalParams struct {
	// Mean of the output distribution.
	Mean float32

	// StdDev of the output distribution.
	StdDev float32

	// UniformsPerSample is the number of uniforms summed per output.
	// Must be positive. Default: 12
	UniformsPerSample int
}

// DefaultNormalParams returns parameters for N(0, 1) with 12 uniforms per sample.
func DefaultNormalParams() NormalParams {
	return NormalParams{
		Mean:              0,
		StdDev:            1,
		UniformsPerSample: DefaultUniformsPerSample,
	}
}

// Validate checks that the parameters can be used by the transform.
func (p NormalParams) Validate() error {
	if p.UniformsPerSample <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "uniforms per sample %d must be positive", p.UniformsPerSample)
	}
	return nil
}

// Normal returns n approximately normal values.
//
// Each output consumes a fresh batch of p.UniformsPerSample uniforms:
// the batch sum a becomes mean + stddev*(a - k/2)*sqrt(12/k).
func (e *Engine) Normal(n int, p NormalParams) ([]float32, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "count %d is negative", n)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	k := float32(p.UniformsPerSample)
	center := k / 2
	scale := m32.Sqrt32(12 / k)

	result := make([]float32, n)
	batch := make([]float32, p.UniformsPerSample)
	for i := range result {
		e.Fill(batch)

		var a float32
		for _, u := range batch {
			a += u
		}

		normalized := (a - center) * scale
		result[i] = p.Mean + p.StdDev*normalized
	}

	return result, nil
}

// StdNormal returns n approximately N(0, 1) values.
func (e *Engine) StdNormal(n int) ([]float32, error) {
	return e.Normal(n, DefaultNormalParams())
}
