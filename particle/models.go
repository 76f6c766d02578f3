package particle

import "fmt"

// Models bundles the physics-model selections that control stochastic
// sampling. It is carried in the propagator configuration and bound into
// particles at creation time, so runs are reproducible without any
// process-wide state.
type Models struct {
	CrossSection CrossSectionModel
	YFactor      YFactorModel
}

// CrossSectionModelFromString parses a cross-section model name.
func CrossSectionModelFromString(s string) (CrossSectionModel, error) {
	switch s {
	case "connolly_lower":
		return ConnollyLower, nil
	case "connolly_middle":
		return ConnollyMiddle, nil
	case "connolly_upper":
		return ConnollyUpper, nil
	case "gorham":
		return Gorham, nil
	}
	return 0, fmt.Errorf("unknown cross-section model %q", s)
}

// YFactorModelFromString parses a mean-inelasticity model name.
func YFactorModelFromString(s string) (YFactorModel, error) {
	switch s {
	case "bdhm":
		return BDHM, nil
	case "soyez":
		return Soyez, nil
	case "allm":
		return ALLM, nil
	}
	return 0, fmt.Errorf("unknown y-factor model %q", s)
}
