// Package atmosphere provides pluggable altitude-density models for the air
// column above the Earth's surface.
package atmosphere

import "math"

// Model maps an altitude above the surface [km] to a density [g/cm^3].
type Model interface {
	Density(altitudeKM float64) float64
}

// Physical constants for the exponential barometric profile.
const (
	gravity     = 9.81   // m/s^2
	molarMass   = 28.966 // g/mol
	gasConstant = 8.3145 // J mol^-1 K^-1
)

// Exponential is a single-scale-height barometric atmosphere,
//
//	rho(h) = rho0 * exp(-g M h / R T).
//
// The default temperature (273 K) is a little cooler than the standard
// atmosphere to better approximate polar conditions.
type Exponential struct {
	Rho0 float64 // sea-level density [g/cm^3]
	T    float64 // reference temperature [K]
}

// NewExponential returns an exponential atmosphere with the default
// sea-level density (1.225e-3 g/cm^3) and polar temperature (273 K).
func NewExponential() Exponential {
	return Exponential{Rho0: 1.225e-3, T: 273}
}

// Density returns the air density [g/cm^3] at the given altitude [km].
func (a Exponential) Density(altitudeKM float64) float64 {
	return a.Rho0 * math.Exp(-gravity*molarMass*altitudeKM/(gasConstant*a.T))
}
