package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/stratos/detector"
	"github.com/pthm-cable/stratos/earth"
	"github.com/pthm-cable/stratos/flux"
	"github.com/pthm-cable/stratos/geom"
	"github.com/pthm-cable/stratos/particle"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Seed != 999983 {
		t.Errorf("seed = %d", cfg.Seed)
	}
	if cfg.Flux.Species != "nu_tau" {
		t.Errorf("species = %q", cfg.Flux.Species)
	}
	if cfg.Detector.Kind != "orbital" {
		t.Errorf("detector kind = %q", cfg.Detector.Kind)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("trials: 77\nflux:\n  species: proton\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Trials != 77 {
		t.Errorf("trials = %d, want 77 from user file", cfg.Trials)
	}
	if cfg.Flux.Species != "proton" {
		t.Errorf("species = %q, want proton", cfg.Flux.Species)
	}
	// Untouched fields keep their defaults.
	if cfg.Seed != 999983 {
		t.Errorf("seed = %d, want default", cfg.Seed)
	}
}

func TestBuildComponents(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	models, err := cfg.BuildModels()
	if err != nil {
		t.Fatal(err)
	}
	if models.CrossSection != particle.ConnollyMiddle || models.YFactor != particle.ALLM {
		t.Errorf("models = %+v", models)
	}

	e, err := cfg.BuildEarth()
	if err != nil {
		t.Fatal(err)
	}
	if e.Radius(geom.Vec{}) != earth.Polar {
		t.Errorf("radius = %v", e.Radius(geom.Vec{}))
	}
	// The default config attaches an atmosphere.
	if e.Density(geom.Vec{Z: earth.Polar + 1}) <= 0 {
		t.Error("atmosphere should be attached by default")
	}

	src := cfg.BuildSource()
	if src.Radius != 6356.755 {
		t.Errorf("source radius = %v", src.Radius)
	}

	flx, err := cfg.BuildFlux(models)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := flx.(*flux.Fixed); !ok {
		t.Errorf("flux = %T, want *flux.Fixed", flx)
	}

	det, err := cfg.BuildDetector(e)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := det.(*detector.Orbital); !ok {
		t.Errorf("detector = %T, want *detector.Orbital", det)
	}
}

func TestBuildInvalidArguments(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	bad := *cfg
	bad.Earth.Radius = "cubical"
	if _, err := bad.BuildEarth(); err == nil {
		t.Error("want error for unknown earth radius")
	}

	bad = *cfg
	bad.Models.CrossSection = "handwave"
	if _, err := bad.BuildModels(); err == nil {
		t.Error("want error for unknown cross-section model")
	}

	bad = *cfg
	bad.Flux.Species = "graviton"
	if _, err := bad.BuildFlux(particle.Models{}); err == nil {
		t.Error("want error for unknown species")
	}

	bad = *cfg
	bad.Flux.Spectrum = "triangular"
	if _, err := bad.BuildFlux(particle.Models{}); err == nil {
		t.Error("want error for unknown spectrum")
	}

	bad = *cfg
	bad.Detector.Kind = "telepathic"
	e, _ := cfg.BuildEarth()
	if _, err := bad.BuildDetector(e); err == nil {
		t.Error("want error for unknown detector kind")
	}

	bad = *cfg
	bad.Detector.Mode = "oblique"
	if _, err := bad.BuildDetector(e); err == nil {
		t.Error("want error for unknown detection mode")
	}
}

func TestSpeciesFactoryCoverage(t *testing.T) {
	models := particle.Models{CrossSection: particle.Gorham}
	species := []string{"nu_e", "nu_mu", "nu_tau", "electron", "muon", "tau", "proton", "helium", "nitrogen", "iron", "mixed"}

	for _, s := range species {
		f, err := SpeciesFactory(s, models)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if p := f(18); p.Energy() != 18 {
			t.Errorf("%s: energy = %v", s, p.Energy())
		}
	}
}
