// Package source samples the geometric origin and direction of each Monte
// Carlo trial.
package source

import (
	"math"

	"github.com/pthm-cable/stratos/geom"
	"github.com/pthm-cable/stratos/random"
)

// Source produces a trial origin [km] and a unit direction.
type Source interface {
	Origin(rng *random.Engine) (loc, dir geom.Vec)
}

// SphericalCap generates origins on the surface of a spherical cap and
// directions uniform over the full sphere.
type SphericalCap struct {
	Radius float64 // sphere radius [km]
	Theta  float64 // half-opening angle of the cap [rad]
	Center float64 // polar angle of the cap center [rad]
}

// NewSphericalCap creates a cap source on a sphere of the given radius [km]
// centered at polar angle center with half-opening angle theta [rad].
func NewSphericalCap(radius, theta, center float64) *SphericalCap {
	return &SphericalCap{Radius: radius, Theta: theta, Center: center}
}

// Origin samples an origin on the cap and an isotropic direction.
func (s *SphericalCap) Origin(rng *random.Engine) (geom.Vec, geom.Vec) {
	minTheta := math.Max(s.Center-s.Theta, 0)
	maxTheta := math.Min(s.Center+s.Theta, math.Pi)

	origin := geom.RandomCapPoint(rng, minTheta, maxTheta).Scale(s.Radius)
	direction := geom.RandomSpherePoint(rng)
	return origin, direction
}

// Area returns the surface area [km^2] of the source cap.
func (s *SphericalCap) Area() float64 {
	return geom.CapArea(s.Theta, s.Radius)
}
