// Package random provides the seeded random engine used for all stochastic
// sampling in stratos. Every draw goes through an Engine instance so that a
// run is fully reproducible from its seed.
package random

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSeed is the engine seed used when none is configured.
const DefaultSeed uint64 = 999983

// Engine is a seeded source of random draws. It is not safe for concurrent
// use; each worker must own its own Engine.
type Engine struct {
	src  *rand.PCG
	rand *rand.Rand
}

// New creates an engine seeded with the given value.
func New(seed uint64) *Engine {
	src := rand.NewPCG(seed, seed)
	return &Engine{src: src, rand: rand.New(src)}
}

// Default creates an engine with the default seed.
func Default() *Engine {
	return New(DefaultSeed)
}

// Reseed resets the engine state to the given seed.
func (e *Engine) Reseed(seed uint64) {
	e.src = rand.NewPCG(seed, seed)
	e.rand = rand.New(e.src)
}

// Uniform returns a draw uniformly distributed in [min, max).
func (e *Engine) Uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: e.src}.Rand()
}

// UniformInt returns an integer uniformly distributed in [min, max].
func (e *Engine) UniformInt(min, max int) int {
	return min + e.rand.IntN(max-min+1)
}

// Exponential returns an exponentially distributed draw with mean 1/lambda.
func (e *Engine) Exponential(lambda float64) float64 {
	return distuv.Exponential{Rate: lambda, Src: e.src}.Rand()
}

// Poisson returns a Poisson distributed draw with mean mu.
func (e *Engine) Poisson(mu float64) float64 {
	return distuv.Poisson{Lambda: mu, Src: e.src}.Rand()
}

// Gaussian returns a normally distributed draw.
func (e *Engine) Gaussian(mean, stdev float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: stdev, Src: e.src}.Rand()
}
