package detector

import (
	"math"

	"github.com/pthm-cable/stratos/earth"
	"github.com/pthm-cable/stratos/geom"
	"github.com/pthm-cable/stratos/particle"
)

// PolarCap accepts interactions inside an energy window that occur within
// the southern polar cap (within 30 degrees of the -z axis), between a
// maximum depth below the surface and a maximum altitude above it. It models
// a ground array or in-ice detector spanning the cap.
type PolarCap struct {
	earth earth.Model
	EnergyCut
	MaxDepth    float64 // greatest depth below the surface [km]
	MaxAltitude float64 // greatest altitude above the surface [km]
}

// NewPolarCap creates a polar-cap detector with the given energy window
// [log10(eV)] and vertical extent [km].
func NewPolarCap(e earth.Model, minEnergy, maxEnergy, maxDepth, maxAltitude float64) *PolarCap {
	return &PolarCap{
		earth:       e,
		EnergyCut:   EnergyCut{MinEnergy: minEnergy, MaxEnergy: maxEnergy},
		MaxDepth:    maxDepth,
		MaxAltitude: maxAltitude,
	}
}

// Detectable accepts energy-valid interactions inside the cap volume.
func (d *PolarCap) Detectable(_ particle.InteractionInfo, p particle.Particle, loc, _ geom.Vec) bool {
	if !d.validEnergy(p) {
		return false
	}

	surface := d.earth.Radius(loc)
	if loc.Z > -surface*math.Cos(30.0/180*math.Pi) {
		return false
	}

	r := geom.Norm(loc)
	if r < surface-d.MaxDepth {
		return false
	}
	if r > surface+d.MaxAltitude {
		return false
	}
	return true
}
