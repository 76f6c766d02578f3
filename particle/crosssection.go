package particle

import "math"

// CrossSectionModel selects the neutrino-nucleon cross-section
// parametrization.
type CrossSectionModel int

// The supported cross-section models. The Connolly et al. 2011 polynomials
// (arXiv:1102.0691) span the theoretical uncertainty band; Gorham is the
// legacy single-model parametrization.
const (
	ConnollyLower CrossSectionModel = iota
	ConnollyMiddle
	ConnollyUpper
	Gorham
)

// Polynomial coefficients (a0..a3) evaluated in the particle's log-energy.
var ccCoefficients = map[CrossSectionModel][4]float64{
	ConnollyLower:  {-42.6355014, 0.489151126, 0.0294975025, -0.00132969832},
	ConnollyMiddle: {-53.5400180, 2.65901551, -0.114017685, 0.00182495442},
	ConnollyUpper:  {-53.1078363, 2.72995742, -0.128808188, 0.00236800261},
}

var ncCoefficients = map[CrossSectionModel][4]float64{
	ConnollyLower:  {-44.2377028, 0.707758518, 0.0155925146, -0.00102484763},
	ConnollyMiddle: {-54.1463399, 2.65465169, -0.111848922, 0.00175469643},
	ConnollyUpper:  {-53.6713302, 2.72528813, -0.127067769, 0.00231235293},
}

func polynomial(energy float64, c [4]float64) float64 {
	return c[0] + c[1]*energy + c[2]*energy*energy + c[3]*energy*energy*energy
}

// ChargedCurrentXSec returns the charged-current log10 cross section, as
// log10(sigma * N_target) in g/cm^2 per g/mol units (the inverse of a mean
// free path in column density). energy is in log10(eV).
func ChargedCurrentXSec(model CrossSectionModel, energy float64) float64 {
	if c, ok := ccCoefficients[model]; ok {
		return polynomial(energy, c)
	}
	return math.Log10(1e-36 * math.Exp(82.893-98.8*math.Pow((energy-9)/math.Ln10, -0.0964)))
}

// NeutralCurrentXSec returns the neutral-current log10 cross section; see
// ChargedCurrentXSec for units.
func NeutralCurrentXSec(model CrossSectionModel, energy float64) float64 {
	if c, ok := ncCoefficients[model]; ok {
		return polynomial(energy, c)
	}
	return ChargedCurrentXSec(Gorham, energy) - math.Log10(2.39)
}
