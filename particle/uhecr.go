package particle

import "github.com/pthm-cable/stratos/random"

// UHECR is an ultra-high-energy cosmic-ray nucleus. Its single interaction
// is reaching shower maximum at a species-specific column depth
//
//	Xmax(E) = a*E^2 + b*E + c  [g/cm^2]
//
// with (a, b, c) fit to 8.5 years of Telescope Array data.
type UHECR struct {
	id      ID
	energy  float64
	a, b, c float64
}

// NewProton creates a cosmic-ray proton with the given energy [log10(eV)].
func NewProton(energy float64) *UHECR {
	return &UHECR{id: IDProton, energy: energy, a: -5.21640, b: 244.91536, c: -1989.9836}
}

// NewHelium creates a cosmic-ray helium nucleus.
func NewHelium(energy float64) *UHECR {
	return &UHECR{id: IDHelium, energy: energy, a: -8.554321, b: 374.29550, c: -3269.18886}
}

// NewNitrogen creates a cosmic-ray nitrogen nucleus.
func NewNitrogen(energy float64) *UHECR {
	return &UHECR{id: IDNitrogen, energy: energy, a: 3.16165, b: -66.0359, c: 836.2584}
}

// NewIron creates a cosmic-ray iron nucleus.
func NewIron(energy float64) *UHECR {
	return &UHECR{id: IDIron, energy: energy, a: 4.99839, b: -136.00973, c: 1471.62867}
}

// NewMixedUHECR creates a cosmic ray averaged over the measured spectrum
// composition rather than a pure species.
func NewMixedUHECR(energy float64) *UHECR {
	return &UHECR{id: IDMixedNucleus, energy: energy, a: -26.20137, b: 1034.4526, c: -9435.8754}
}

func (u *UHECR) ID() ID                  { return u.id }
func (u *UHECR) Energy() float64         { return u.energy }
func (u *UHECR) SetEnergy(energy float64) { u.energy = energy }

// Clone returns an independent copy.
func (u *UHECR) Clone() Particle {
	c := *u
	return &c
}

// Xmax returns the column depth of shower maximum [g/cm^2] at the current
// energy.
func (u *UHECR) Xmax() float64 {
	return u.a*u.energy*u.energy + u.b*u.energy + u.c
}

// Interaction returns a shower-max interaction at the species' Xmax depth.
func (u *UHECR) Interaction(*random.Engine) InteractionInfo {
	return InteractionInfo{Type: ShowerMax, Grammage: u.Xmax(), Lifetime: -1}
}
