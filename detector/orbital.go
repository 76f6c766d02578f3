package detector

import (
	"errors"
	"fmt"
	"math"

	"github.com/pthm-cable/stratos/earth"
	"github.com/pthm-cable/stratos/geom"
	"github.com/pthm-cable/stratos/particle"
)

// Mode selects which event geometries an orbital detector accepts.
type Mode int

// Detection modes for orbital payloads.
const (
	ModeDirect Mode = iota
	ModeReflected
	ModeBoth
)

// ErrUnknownMode is returned for detection-mode names outside
// {direct, reflected, both}.
var ErrUnknownMode = errors.New("detector: unknown detection mode")

// ModeFromString parses a detection mode name.
func ModeFromString(s string) (Mode, error) {
	switch s {
	case "direct":
		return ModeDirect, nil
	case "reflected":
		return ModeReflected, nil
	case "both":
		return ModeBoth, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// Orbital models a balloon- or satellite-borne payload that observes air
// showers either directly or via their surface reflection.
type Orbital struct {
	earth   earth.Model
	payload geom.Vec // geocentric payload location [km]
	maxview float64  // maximum view angle [rad]
	maxalt  float64  // maximum altitude before a particle is cut [km]
	mode    Mode
}

// NewOrbital creates an orbital detector for a payload at the given
// geocentric location [km] with a maximum view angle in degrees.
func NewOrbital(e earth.Model, payload geom.Vec, maxviewDeg float64, mode Mode) *Orbital {
	return &Orbital{
		earth:   e,
		payload: payload,
		maxview: geom.DegToRad(maxviewDeg),
		maxalt:  100 + 1e-3,
		mode:    mode,
	}
}

// SetMaxAltitude overrides the altitude [km] above which particles are cut.
func (d *Orbital) SetMaxAltitude(km float64) {
	d.maxalt = km
}

// MaxView returns the maximum view angle [rad].
func (d *Orbital) MaxView() float64 {
	return d.maxview
}

// ViewAngle returns the angle between dir and the vector from loc to the
// payload.
func (d *Orbital) ViewAngle(loc, dir geom.Vec) float64 {
	view := geom.Unit(d.payload.Sub(loc))
	return math.Acos(geom.Dot(dir, view))
}

// PayloadAngle returns the elevation of loc as seen from the payload,
// measured from the payload's local horizontal.
func (d *Orbital) PayloadAngle(loc geom.Vec) float64 {
	view := geom.Unit(loc.Sub(d.payload))
	nadir := math.Acos(geom.Dot(geom.Unit(d.payload), view))
	return math.Pi/2 - nadir
}

// visibleDirect reports whether an interaction at loc with momentum dir is
// directly visible at the payload.
func (d *Orbital) visibleDirect(loc, dir geom.Vec) bool {
	// Events whose view angle back along the axis is within maxview: these
	// reach shower max past the payload but their emission passes close by.
	if d.ViewAngle(loc, dir.Scale(-1)) < d.maxview {
		return true
	}

	if d.ViewAngle(loc, dir) < d.maxview {
		// Naively visible along the axis, but the line of sight may be
		// blocked by the Earth.
		view := geom.Unit(d.payload.Sub(loc))
		surface, hit := d.earth.FindSurface(loc, view)
		if !hit {
			return true
		}
		dSurface := geom.Norm(surface.Sub(loc))
		dPayload := geom.Norm(d.payload.Sub(loc))
		return dSurface >= dPayload
	}
	return false
}

// visibleReflected reports whether the interaction is visible via its
// mirror image in the surface along the shower axis.
func (d *Orbital) visibleReflected(loc, dir geom.Vec) bool {
	surface, hit := d.earth.FindSurface(loc, dir)
	if !hit {
		return false
	}

	// Mirror the payload below the surface tangent plane and check the view
	// toward the image against the shower axis.
	surfaceView := d.payload.Sub(surface)
	reflected := geom.ReflectBelow(surfaceView, geom.Unit(surface))
	view := geom.Unit(reflected.Sub(loc))
	return math.Acos(geom.Dot(view, dir)) < d.maxview
}

// IsGood accepts every trial.
func (d *Orbital) IsGood(particle.Particle, geom.Vec, geom.Vec) bool { return true }

// Cut ends trials above the maximum altitude or more than 10 m below the
// surface.
func (d *Orbital) Cut(_ particle.Particle, loc, _ geom.Vec) bool {
	r := geom.Norm(loc)
	surface := d.earth.Radius(loc)
	return r > surface+d.maxalt || r < surface-1e-2
}

// Detectable combines the direct and reflected visibility checks according
// to the configured mode.
func (d *Orbital) Detectable(_ particle.InteractionInfo, _ particle.Particle, loc, dir geom.Vec) bool {
	switch d.mode {
	case ModeDirect:
		return d.visibleDirect(loc, dir)
	case ModeReflected:
		return d.visibleReflected(loc, dir)
	}
	return d.visibleDirect(loc, dir) || d.visibleReflected(loc, dir)
}
