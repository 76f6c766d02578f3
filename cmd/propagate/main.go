// Command propagate runs a batch of Monte Carlo propagation trials and
// writes the detected events to CSV.
//
// Usage: propagate -config run.yaml -output out [-trials N] [-seed S]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/stratos/config"
	"github.com/pthm-cable/stratos/event"
	"github.com/pthm-cable/stratos/propagator"
)

var (
	configPath = flag.String("config", "", "Run config YAML file (empty = use defaults)")
	outputDir  = flag.String("output", "", "Output directory (empty = config value)")
	trials     = flag.Int("trials", 0, "Number of trials (0 = config value)")
	seed       = flag.Uint64("seed", 0, "Engine seed override (0 = config value)")
	verbose    = flag.Bool("v", false, "Enable debug logging")
)

// runInfo is the metadata written alongside the event output.
type runInfo struct {
	ID       string        `yaml:"id"`
	Started  time.Time     `yaml:"started"`
	Elapsed  time.Duration `yaml:"elapsed"`
	Trials   int           `yaml:"trials"`
	Detected int           `yaml:"detected"`
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(); err != nil {
		slog.Error("propagation failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(*configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *trials > 0 {
		cfg.Trials = *trials
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Output.Dir == "" {
		return fmt.Errorf("no output directory: set -output or output.dir")
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	models, err := cfg.BuildModels()
	if err != nil {
		return err
	}
	e, err := cfg.BuildEarth()
	if err != nil {
		return err
	}
	src := cfg.BuildSource()
	flx, err := cfg.BuildFlux(models)
	if err != nil {
		return err
	}
	det, err := cfg.BuildDetector(e)
	if err != nil {
		return err
	}

	prop := propagator.New(e, cfg.PropagatorConfig(models))

	info := runInfo{
		ID:      uuid.NewString(),
		Started: time.Now(),
		Trials:  cfg.Trials,
	}
	slog.Info("starting propagation",
		"run", info.ID,
		"trials", cfg.Trials,
		"species", cfg.Flux.Species,
		"detector", cfg.Detector.Kind,
		"seed", cfg.Seed,
	)

	events := prop.PropagateN(src, flx, det, cfg.Trials)
	info.Elapsed = time.Since(info.Started)
	info.Detected = events.Detected()

	slog.Info("propagation complete",
		"detected", info.Detected,
		"trials", cfg.Trials,
		"elapsed", info.Elapsed.Round(time.Millisecond),
	)

	if err := writeOutput(cfg, events, info); err != nil {
		return err
	}
	return nil
}

func writeOutput(cfg *config.Config, events event.Events, info runInfo) error {
	f, err := os.Create(filepath.Join(cfg.Output.Dir, "events.csv"))
	if err != nil {
		return fmt.Errorf("creating events.csv: %w", err)
	}
	defer f.Close()
	if err := event.WriteCSV(f, events); err != nil {
		return err
	}

	if err := cfg.WriteYAML(filepath.Join(cfg.Output.Dir, "config.yaml")); err != nil {
		return fmt.Errorf("writing config.yaml: %w", err)
	}

	data, err := yaml.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding run info: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.Output.Dir, "run.yaml"), data, 0o644); err != nil {
		return fmt.Errorf("writing run.yaml: %w", err)
	}

	slog.Info("output written", "dir", cfg.Output.Dir)
	return nil
}
