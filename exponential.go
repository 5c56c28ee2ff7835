package lcgrand

import (
	"github.com/pkg/errors"

	m32 "github.com/nozzle/lcgrand/internal/math"
)

// Exponential returns n exponential values with rate lambda using
// inverse-CDF sampling on a single batch of n uniforms.
//
// A uniform draw of exactly 0 (for instance from a zero state) produces +Inf.
func (e *Engine) Exponential(n int, lambda float32) ([]float32, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "count %d is negative", n)
	}
	if !(lambda > 0) {
		return nil, errors.Wrapf(ErrInvalidArgument, "lambda %v must be positive", lambda)
	}

	result, err := e.Uniform(n)
	if err != nil {
		return nil, err
	}
	for i, r := range result {
		result[i] = -m32.Log32(r) / lambda
	}

	return result, nil
}
