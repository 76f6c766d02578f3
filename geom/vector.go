// Package geom provides the geocentric vector math used throughout stratos:
// spherical/cartesian conversions, uniform sampling on spheres and spherical
// caps, ray-sphere intersection, and mirror reflection across a tangent
// plane. All positions are geocentric cartesian coordinates in kilometers.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a three-dimensional cartesian vector [km].
type Vec = r3.Vec

// Spherical is a spherical coordinate triple: radius [km], polar angle theta
// measured from +z [rad], and azimuth phi measured from +x [rad].
type Spherical struct {
	R     float64
	Theta float64
	Phi   float64
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec) float64 { return r3.Dot(a, b) }

// Norm returns the Euclidean length of v.
func Norm(v Vec) float64 { return r3.Norm(v) }

// Norm2 returns the squared Euclidean length of v.
func Norm2(v Vec) float64 { return r3.Norm2(v) }

// Unit returns the unit vector colinear with v.
func Unit(v Vec) Vec { return r3.Unit(v) }

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float64) float64 {
	return deg / 180 * math.Pi
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad / math.Pi * 180
}

// ToSpherical converts a cartesian coordinate to spherical form. When x and y
// are both exactly zero the azimuth is undefined and is reported as zero.
func ToSpherical(v Vec) Spherical {
	r := Norm(v)
	theta := math.Acos(v.Z / r)
	phi := 0.0
	if v.X != 0 || v.Y != 0 {
		phi = math.Atan2(v.Y, v.X)
	}
	return Spherical{R: r, Theta: theta, Phi: phi}
}

// ToCartesian converts a spherical coordinate to cartesian form.
func ToCartesian(s Spherical) Vec {
	return Vec{
		X: s.R * math.Sin(s.Theta) * math.Cos(s.Phi),
		Y: s.R * math.Sin(s.Theta) * math.Sin(s.Phi),
		Z: s.R * math.Cos(s.Theta),
	}
}
