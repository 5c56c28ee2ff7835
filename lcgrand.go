// Package lcgrand implements a deterministic linear-congruential pseudo-random
// number generator together with two derived distributions.
//
// The generator multiplies a 32-bit signed state by 1220703125 with
// two's-complement wraparound, folds negative products back by adding 2^31,
// and scales the result into [0, 1) as a float32. Normal variates use the
// Irwin–Hall sum-of-uniforms approximation and exponential variates use
// inverse-CDF sampling.
//
// Basic usage:
//
//	e := lcgrand.New(42)
//	u, err := e.Uniform(1000)
//	z, err := e.Normal(1000, lcgrand.DefaultNormalParams())
//	x, err := e.Exponential(1000, 1)
//
// The package-level functions share one engine seeded from the wall clock on
// first use, so consecutive calls continue a single stream.
//
// An Engine is not safe for concurrent use. Give each goroutine its own
// engine, or guard a shared one with a mutex.
package lcgrand

import (
	"sync"
	"time"
)

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

func std() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewFromTime()
	})
	return defaultEngine
}

// Uniform draws n values in [0, 1) from the process-wide engine.
func Uniform(n int) ([]float32, error) {
	return std().Uniform(n)
}

// Normal draws n approximately normal values from the process-wide engine.
func Normal(n int, p NormalParams) ([]float32, error) {
	return std().Normal(n, p)
}

// StdNormal draws n approximately N(0, 1) values from the process-wide engine.
func StdNormal(n int) ([]float32, error) {
	return std().StdNormal(n)
}

// Exponential draws n exponential values with rate lambda from the
// process-wide engine.
func Exponential(n int, lambda float32) ([]float32, error) {
	return std().Exponential(n, lambda)
}

// timeSeed returns the current Unix time in seconds truncated to int32.
// Engines created within the same second share a seed and a sequence.
func timeSeed() int32 {
	return int32(time.Now().Unix())
}
