package earth

// PREMDensity returns the Preliminary Reference Earth Model density [g/cm^3]
// at the given geocentric radius [km], for an Earth of radius rearth [km].
// Radii at or above 0.999984*rearth return zero: everything above the
// surface, and also the top ~0.1 km just below it.
func PREMDensity(radius, rearth float64) float64 {
	x := radius / rearth

	switch {
	case x < 0.19216: // inner core, up to 1221.5 km
		return 13.0885 - 8.8381*x*x
	case x < 0.54745: // outer core, up to 3480 km
		return 12.5815 - 1.2638*x - 3.6426*x*x - 5.5281*x*x*x
	case x < 0.89684: // lower mantle, up to 5701 km
		return 7.9565 - 6.4761*x + 5.5283*x*x - 3.0807*x*x*x
	case x < 0.90628: // transition zone, up to 5761 km
		return 5.3197 - 1.4836*x
	case x < 0.93759: // up to 5960 km
		return 11.2494 - 8.0298*x
	case x < 0.96590: // up to 6140 km
		return 7.1089 - 3.8045*x
	case x < 0.99658: // up to 6335 km
		return 2.691 + 0.6924*x
	case x < 0.99752: // crust
		return 2.9
	case x < 0.99941:
		return 2.6
	case x < 0.999984: // ocean layer
		return 1.02
	}
	return 0
}
