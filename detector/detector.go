// Package detector provides the acceptance predicates that decide which
// trials are worth propagating, when propagation stops, and which triggered
// interactions become recorded events.
package detector

import (
	"github.com/pthm-cable/stratos/earth"
	"github.com/pthm-cable/stratos/geom"
	"github.com/pthm-cable/stratos/particle"
)

// Detector is a set of acceptance predicates evaluated by the propagator.
type Detector interface {
	// IsGood is invoked once at the sampled source point, before any
	// stepping. A false result discards the trial immediately.
	IsGood(p particle.Particle, loc, dir geom.Vec) bool

	// Cut is invoked at each step; true ends the trial without an event.
	Cut(p particle.Particle, loc, dir geom.Vec) bool

	// Detectable is invoked at each triggered interaction; true emits the
	// event record.
	Detectable(info particle.InteractionInfo, p particle.Particle, loc, dir geom.Vec) bool
}

// Perfect detects every interaction inside its propagation volume. Useful
// for validating geometry and flux models.
type Perfect struct{}

// IsGood accepts every trial.
func (Perfect) IsGood(particle.Particle, geom.Vec, geom.Vec) bool { return true }

// Cut ends trials that leave the detection volume, 100 km above the
// volumetric Earth radius.
func (Perfect) Cut(_ particle.Particle, loc, _ geom.Vec) bool {
	return geom.Norm(loc) > earth.Volumetric+100
}

// Detectable accepts every interaction.
func (Perfect) Detectable(particle.InteractionInfo, particle.Particle, geom.Vec, geom.Vec) bool {
	return true
}
