package lcgrand

import (
	"github.com/pkg/errors"

	m32 "github.com/nozzle/lcgrand/internal/math"
)

const (
	// Multiplier is the LCG multiplier (5^13).
	Multiplier int32 = 1220703125

	// Scale maps a corrected state in [0, 2^31) onto [0, 1).
	// As a float32 it is exactly 2^-31.
	Scale float32 = 4.656613e-10
)

// Engine holds the recurrence state of one generator stream.
type Engine struct {
	state int32
}

// New creates an engine starting from the given state.
func New(seed int32) *Engine {
	return &Engine{state: seed}
}

// NewFromTime creates an engine seeded from the current Unix time in seconds.
func NewFromTime() *Engine {
	return New(timeSeed())
}

// State returns the current recurrence state.
func (e *Engine) State() int32 {
	return e.state
}

// Seed resets the recurrence state.
func (e *Engine) Seed(seed int32) {
	e.state = seed
}

// step advances the recurrence and returns the corrected state.
func (e *Engine) step() int32 {
	y := e.state * Multiplier
	if y < 0 {
		y = int32(uint32(y) + 1<<31)
	}
	e.state = y
	return y
}

// next returns the next uniform value.
func (e *Engine) next() float32 {
	v := float32(e.step()) * Scale
	// States within 64 of 2^31 round up to exactly 1.
	if v >= 1 {
		v = m32.OneBelow
	}
	return v
}

// Uniform returns n values in [0, 1), continuing the engine's stream.
func (e *Engine) Uniform(n int) ([]float32, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "count %d is negative", n)
	}
	r := make([]float32, n)
	e.Fill(r)
	return r, nil
}

// Fill overwrites dst with the next len(dst) uniform values.
func (e *Engine) Fill(dst []float32) {
	for i := range dst {
		dst[i] = e.next()
	}
}

// Uint64 returns 64 bits assembled from three consecutive states, high bits
// first. It lets an Engine serve as a math/rand/v2 Source.
func (e *Engine) Uint64() uint64 {
	a := uint64(e.step())
	b := uint64(e.step())
	c := uint64(e.step())
	return a<<33 | b<<2 | c>>29
}
