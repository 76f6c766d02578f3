package geom

import (
	"math"

	"github.com/pthm-cable/stratos/random"
)

// RandomSpherePoint returns a unit vector uniformly distributed (in area) on
// the unit sphere, using true spherical point picking.
func RandomSpherePoint(rng *random.Engine) Vec {
	theta := math.Acos(rng.Uniform(-1, 1))
	phi := rng.Uniform(-math.Pi, math.Pi)
	return ToCartesian(Spherical{R: 1, Theta: theta, Phi: phi})
}

// RandomCapPoint returns a unit vector uniformly distributed on the spherical
// cap segment between minTheta and maxTheta [rad], with azimuth drawn from
// the full [0, 2pi) range.
func RandomCapPoint(rng *random.Engine, minTheta, maxTheta float64) Vec {
	lo, hi := math.Cos(minTheta), math.Cos(maxTheta)
	if lo > hi {
		lo, hi = hi, lo
	}
	theta := math.Acos(rng.Uniform(lo, hi))
	phi := rng.Uniform(0, 2*math.Pi)
	return ToCartesian(Spherical{R: 1, Theta: theta, Phi: phi})
}

// CapArea returns the surface area of a spherical cap with half-opening
// angle theta [rad] on a sphere of the given radius.
func CapArea(theta, radius float64) float64 {
	return 2 * math.Pi * radius * radius * (1 - math.Cos(theta))
}
