// Package flux samples the particle species and energy for each Monte Carlo
// trial.
package flux

import (
	"github.com/pthm-cable/stratos/particle"
	"github.com/pthm-cable/stratos/random"
)

// Factory creates a new particle of a fixed species at the given energy
// [log10(eV)].
type Factory func(energy float64) particle.Particle

// Flux produces the next trial particle.
type Flux interface {
	Next(rng *random.Engine) particle.Particle
}

// Fixed produces a single species at a fixed energy.
type Fixed struct {
	Energy      float64
	NewParticle Factory
}

// NewFixed creates a fixed-energy flux.
func NewFixed(energy float64, f Factory) *Fixed {
	return &Fixed{Energy: energy, NewParticle: f}
}

// Next returns a new particle at the configured energy.
func (f *Fixed) Next(*random.Engine) particle.Particle {
	return f.NewParticle(f.Energy)
}

// Uniform produces a single species with energies uniform in log-space.
type Uniform struct {
	MinEnergy   float64
	MaxEnergy   float64
	NewParticle Factory
}

// NewUniform creates a flux uniform in log-energy over [min, max).
func NewUniform(minEnergy, maxEnergy float64, f Factory) *Uniform {
	return &Uniform{MinEnergy: minEnergy, MaxEnergy: maxEnergy, NewParticle: f}
}

// Next returns a new particle at an energy drawn uniformly in log-space.
func (u *Uniform) Next(rng *random.Engine) particle.Particle {
	return u.NewParticle(rng.Uniform(u.MinEnergy, u.MaxEnergy))
}
