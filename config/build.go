package config

import (
	"fmt"

	"github.com/pthm-cable/stratos/atmosphere"
	"github.com/pthm-cable/stratos/detector"
	"github.com/pthm-cable/stratos/earth"
	"github.com/pthm-cable/stratos/flux"
	"github.com/pthm-cable/stratos/geom"
	"github.com/pthm-cable/stratos/particle"
	"github.com/pthm-cable/stratos/propagator"
	"github.com/pthm-cable/stratos/source"
)

// BuildModels resolves the configured model names.
func (c *Config) BuildModels() (particle.Models, error) {
	xsec, err := particle.CrossSectionModelFromString(c.Models.CrossSection)
	if err != nil {
		return particle.Models{}, err
	}
	yf, err := particle.YFactorModelFromString(c.Models.YFactor)
	if err != nil {
		return particle.Models{}, err
	}
	return particle.Models{CrossSection: xsec, YFactor: yf}, nil
}

// BuildEarth constructs the Earth model, attaching an atmosphere when
// enabled.
func (c *Config) BuildEarth() (*earth.Spherical, error) {
	var radius float64
	switch c.Earth.Radius {
	case "polar":
		radius = earth.Polar
	case "polar_curvature":
		radius = earth.PolarCurvature
	case "equatorial":
		radius = earth.Equatorial
	case "volumetric":
		radius = earth.Volumetric
	default:
		return nil, fmt.Errorf("unknown earth radius %q", c.Earth.Radius)
	}

	e := earth.NewSpherical(radius)
	if c.Earth.Atmosphere.Enabled {
		e.SetAtmosphere(atmosphere.Exponential{
			Rho0: c.Earth.Atmosphere.SeaLevelDensity,
			T:    c.Earth.Atmosphere.Temperature,
		})
	}
	return e, nil
}

// BuildSource constructs the spherical-cap source.
func (c *Config) BuildSource() *source.SphericalCap {
	return source.NewSphericalCap(
		c.Source.Radius,
		geom.DegToRad(c.Source.HalfOpeningDeg),
		geom.DegToRad(c.Source.CenterDeg),
	)
}

// SpeciesFactory returns a particle factory for the named species.
func SpeciesFactory(species string, models particle.Models) (flux.Factory, error) {
	switch species {
	case "nu_e":
		return func(e float64) particle.Particle { return particle.NewElectronNeutrino(e, models.CrossSection) }, nil
	case "nu_mu":
		return func(e float64) particle.Particle { return particle.NewMuonNeutrino(e, models.CrossSection) }, nil
	case "nu_tau":
		return func(e float64) particle.Particle { return particle.NewTauNeutrino(e, models.CrossSection) }, nil
	case "electron":
		return func(e float64) particle.Particle { return particle.NewElectron(e) }, nil
	case "muon":
		return func(e float64) particle.Particle { return particle.NewMuon(e) }, nil
	case "tau":
		return func(e float64) particle.Particle { return particle.NewTau(e, models.CrossSection) }, nil
	case "proton":
		return func(e float64) particle.Particle { return particle.NewProton(e) }, nil
	case "helium":
		return func(e float64) particle.Particle { return particle.NewHelium(e) }, nil
	case "nitrogen":
		return func(e float64) particle.Particle { return particle.NewNitrogen(e) }, nil
	case "iron":
		return func(e float64) particle.Particle { return particle.NewIron(e) }, nil
	case "mixed":
		return func(e float64) particle.Particle { return particle.NewMixedUHECR(e) }, nil
	}
	return nil, fmt.Errorf("unknown particle species %q", species)
}

// BuildFlux constructs the configured flux.
func (c *Config) BuildFlux(models particle.Models) (flux.Flux, error) {
	factory, err := SpeciesFactory(c.Flux.Species, models)
	if err != nil {
		return nil, err
	}

	switch c.Flux.Spectrum {
	case "fixed":
		return flux.NewFixed(c.Flux.Energy, factory), nil
	case "uniform":
		return flux.NewUniform(c.Flux.MinEnergy, c.Flux.MaxEnergy, factory), nil
	}
	return nil, fmt.Errorf("unknown flux spectrum %q", c.Flux.Spectrum)
}

// BuildDetector constructs the configured detector against the given Earth
// model.
func (c *Config) BuildDetector(e earth.Model) (detector.Detector, error) {
	d := c.Detector
	switch d.Kind {
	case "perfect":
		return detector.Perfect{}, nil
	case "energy_cut":
		return detector.NewEnergyCut(d.MinEnergy, d.MaxEnergy), nil
	case "polar_cap":
		return detector.NewPolarCap(e, d.MinEnergy, d.MaxEnergy, d.MaxDepth, d.MaxAltitude), nil
	case "orbital":
		mode, err := detector.ModeFromString(d.Mode)
		if err != nil {
			return nil, err
		}
		payload := geom.ToCartesian(geom.Spherical{
			R:     e.Radius(geom.Vec{}) + d.PayloadAltitude,
			Theta: geom.DegToRad(d.PayloadThetaDeg),
			Phi:   0,
		})
		return detector.NewOrbital(e, payload, d.MaxViewDeg, mode), nil
	}
	return nil, fmt.Errorf("unknown detector kind %q", d.Kind)
}

// PropagatorConfig assembles the propagator configuration.
func (c *Config) PropagatorConfig(models particle.Models) propagator.Config {
	return propagator.Config{
		Seed:          c.Seed,
		Models:        models,
		MaxTrials:     c.MaxTrials,
		ProgressEvery: c.ProgressEvery,
	}
}
