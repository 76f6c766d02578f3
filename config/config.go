// Package config provides configuration loading and access for propagation
// runs.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run configuration parameters.
type Config struct {
	Seed          uint64 `yaml:"seed"`
	Trials        int    `yaml:"trials"`
	MaxTrials     int    `yaml:"max_trials"`
	ProgressEvery int    `yaml:"progress_every"`

	Models   ModelsConfig   `yaml:"models"`
	Earth    EarthConfig    `yaml:"earth"`
	Source   SourceConfig   `yaml:"source"`
	Flux     FluxConfig     `yaml:"flux"`
	Detector DetectorConfig `yaml:"detector"`

	// DecayTable is the path of the tau decay final-state table.
	DecayTable string `yaml:"decay_table"`

	Output OutputConfig `yaml:"output"`
}

// ModelsConfig selects the physics parametrizations.
type ModelsConfig struct {
	CrossSection string `yaml:"cross_section"` // connolly_lower|connolly_middle|connolly_upper|gorham
	YFactor      string `yaml:"y_factor"`      // bdhm|soyez|allm
}

// EarthConfig holds the Earth model parameters.
type EarthConfig struct {
	Radius     string           `yaml:"radius"` // polar|polar_curvature|equatorial|volumetric
	Atmosphere AtmosphereConfig `yaml:"atmosphere"`
}

// AtmosphereConfig holds the exponential atmosphere parameters.
type AtmosphereConfig struct {
	Enabled         bool    `yaml:"enabled"`
	SeaLevelDensity float64 `yaml:"sea_level_density"` // g/cm^3
	Temperature     float64 `yaml:"temperature"`       // K
}

// SourceConfig holds the spherical-cap source parameters.
type SourceConfig struct {
	Radius         float64 `yaml:"radius"`           // km
	HalfOpeningDeg float64 `yaml:"half_opening_deg"` // degrees
	CenterDeg      float64 `yaml:"center_deg"`       // degrees from +z
}

// FluxConfig holds the particle flux parameters.
type FluxConfig struct {
	Species   string  `yaml:"species"`  // nu_e|nu_mu|nu_tau|electron|muon|tau|proton|helium|nitrogen|iron|mixed
	Spectrum  string  `yaml:"spectrum"` // fixed|uniform
	Energy    float64 `yaml:"energy"`   // log10(eV), fixed spectrum
	MinEnergy float64 `yaml:"min_energy"`
	MaxEnergy float64 `yaml:"max_energy"`
}

// DetectorConfig holds the detector parameters.
type DetectorConfig struct {
	Kind string `yaml:"kind"` // perfect|energy_cut|orbital|polar_cap

	MinEnergy float64 `yaml:"min_energy"` // log10(eV)
	MaxEnergy float64 `yaml:"max_energy"`

	// Orbital payload placement and view.
	PayloadAltitude float64 `yaml:"payload_altitude"`  // km above the surface
	PayloadThetaDeg float64 `yaml:"payload_theta_deg"` // degrees from +z
	MaxViewDeg      float64 `yaml:"max_view_deg"`
	Mode            string  `yaml:"mode"` // direct|reflected|both

	// Polar-cap vertical extent.
	MaxDepth    float64 `yaml:"max_depth"`    // km
	MaxAltitude float64 `yaml:"max_altitude"` // km
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML saves the configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
