package geom

import "math"

// PropagateToSphere intersects the ray start + t*dir with the origin-centered
// sphere of the given radius. dir must be unit length. The reported
// intersection is the forward exit point when the ray starts inside the
// sphere and the near-side entry point when it starts outside; ok is false
// when the ray's line misses the sphere entirely.
func PropagateToSphere(start, dir Vec, radius float64) (p Vec, ok bool) {
	ld := Dot(start, dir)
	d2 := Norm2(start) - ld*ld
	if d2 > radius*radius {
		return Vec{}, false
	}
	thc := math.Sqrt(radius*radius - d2)

	// Inside the sphere we want the forward exit (t = -ld + thc); outside,
	// the near-side entry (t = -ld - thc).
	s := 1.0
	if Norm(start) < radius {
		s = -1.0
	}
	t := -ld - s*thc
	return start.Add(dir.Scale(t)), true
}

// ReflectBelow mirrors v across the tangent plane whose unit normal is n,
// i.e. returns v - 2(v.n)n.
func ReflectBelow(v, n Vec) Vec {
	return v.Sub(n.Scale(2 * Dot(v, n)))
}
