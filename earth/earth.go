// Package earth provides layered Earth density models: a PREM interior below
// the surface and an optional attached atmosphere above it, together with the
// surface geometry the propagator and detectors need.
package earth

import (
	"github.com/pthm-cable/stratos/atmosphere"
	"github.com/pthm-cable/stratos/geom"
)

// Reference radii [km] for the spherical model.
const (
	Polar          = 6356.752
	PolarCurvature = 6399.594
	Equatorial     = 6378.137
	Volumetric     = 6371.000
)

// Model is a layered Earth density model.
type Model interface {
	// Radius returns the surface radius [km] at the given location.
	Radius(loc geom.Vec) float64

	// Density returns the bulk density [g/cm^3] at the given location.
	// Locations below the surface use the interior model; locations above
	// it use the attached atmosphere, or zero if none is attached.
	Density(loc geom.Vec) float64

	// FindSurface intersects the line loc + t*dir with the surface. ok is
	// false when the line misses the surface entirely; t may be negative,
	// so for a location above the surface heading away from it the
	// reported point lies behind loc.
	FindSurface(loc, dir geom.Vec) (p geom.Vec, ok bool)
}

// Spherical models the Earth as a sphere of fixed radius with a PREM
// interior. An atmosphere may be attached after construction; a nil
// atmosphere means zero density above the crust.
type Spherical struct {
	radius float64
	atmos  atmosphere.Model
}

// NewSpherical creates a spherical Earth with the given radius [km],
// typically one of the reference radii.
func NewSpherical(radius float64) *Spherical {
	return &Spherical{radius: radius}
}

// SetAtmosphere attaches an atmosphere model used for densities above the
// surface.
func (e *Spherical) SetAtmosphere(m atmosphere.Model) {
	e.atmos = m
}

// Radius returns the configured surface radius [km].
func (e *Spherical) Radius(geom.Vec) float64 {
	return e.radius
}

// Density returns the density [g/cm^3] at the given geocentric location.
func (e *Spherical) Density(loc geom.Vec) float64 {
	r := geom.Norm(loc)
	if r < e.radius {
		return PREMDensity(r, e.radius)
	}
	if e.atmos != nil {
		return e.atmos.Density(r - e.radius)
	}
	return 0
}

// FindSurface intersects the ray loc + t*dir with the surface sphere.
func (e *Spherical) FindSurface(loc, dir geom.Vec) (geom.Vec, bool) {
	return geom.PropagateToSphere(loc, dir, e.radius)
}

// CapArea returns the surface area [km^2] of a cap with half-opening angle
// theta [rad].
func (e *Spherical) CapArea(theta float64) float64 {
	return geom.CapArea(theta, e.radius)
}
