package detector

import (
	"github.com/pthm-cable/stratos/geom"
	"github.com/pthm-cable/stratos/particle"
)

// EnergyCut accepts interactions whose particle energy lies inside an open
// energy window and abandons particles that fall below it.
type EnergyCut struct {
	MinEnergy float64 // log10(eV)
	MaxEnergy float64 // log10(eV)
}

// NewEnergyCut creates an energy-window detector.
func NewEnergyCut(minEnergy, maxEnergy float64) *EnergyCut {
	return &EnergyCut{MinEnergy: minEnergy, MaxEnergy: maxEnergy}
}

func (d *EnergyCut) validEnergy(p particle.Particle) bool {
	return p.Energy() > d.MinEnergy && p.Energy() < d.MaxEnergy
}

// IsGood accepts every trial.
func (d *EnergyCut) IsGood(particle.Particle, geom.Vec, geom.Vec) bool { return true }

// Cut ends trials whose particle has dropped below the energy window.
func (d *EnergyCut) Cut(p particle.Particle, _, _ geom.Vec) bool {
	return p.Energy() < d.MinEnergy
}

// Detectable accepts interactions inside the energy window.
func (d *EnergyCut) Detectable(_ particle.InteractionInfo, p particle.Particle, _, _ geom.Vec) bool {
	return d.validEnergy(p)
}
