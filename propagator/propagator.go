// Package propagator drives the Monte Carlo loop: it samples trial
// particles, steps them along straight-line trajectories through the Earth
// model accumulating column density, triggers interactions stochastically,
// and emits event records for interactions the detector accepts.
package propagator

import (
	"errors"
	"log/slog"

	"github.com/pthm-cable/stratos/detector"
	"github.com/pthm-cable/stratos/earth"
	"github.com/pthm-cable/stratos/event"
	"github.com/pthm-cable/stratos/flux"
	"github.com/pthm-cable/stratos/geom"
	"github.com/pthm-cable/stratos/particle"
	"github.com/pthm-cable/stratos/random"
	"github.com/pthm-cable/stratos/source"
)

// DefaultMaxTrials bounds retry-until-success propagation.
const DefaultMaxTrials = 1_000_000

// ErrMaxTrials is returned when retry-until-success propagation exhausts its
// trial budget without a detectable interaction.
var ErrMaxTrials = errors.New("propagator: maximum number of trials reached")

// Config controls a propagator's stochastic behavior. The same Config (and
// the same component configuration) always reproduces the same events.
type Config struct {
	// Seed initializes the engine. Zero selects the default seed.
	Seed uint64

	// Models records the physics parametrizations of the run, as reported by
	// Propagator.Models. The propagator creates no particles itself; trial
	// particles come from the flux, whose factory binds its own models.
	Models particle.Models

	// MaxTrials bounds PropagateUntil. Zero selects DefaultMaxTrials.
	MaxTrials int

	// ProgressEvery makes PropagateN log progress after that many trials.
	// Zero disables progress logging.
	ProgressEvery int
}

// Propagator runs Monte Carlo trials against a single Earth model. It owns
// its random engine and is not safe for concurrent use; parallel workers
// each construct their own Propagator.
type Propagator struct {
	earth earth.Model
	cfg   Config
	rng   *random.Engine
	log   *slog.Logger
}

// New creates a propagator for the given Earth model.
func New(e earth.Model, cfg Config) *Propagator {
	seed := cfg.Seed
	if seed == 0 {
		seed = random.DefaultSeed
	}
	if cfg.MaxTrials <= 0 {
		cfg.MaxTrials = DefaultMaxTrials
	}
	return &Propagator{
		earth: e,
		cfg:   cfg,
		rng:   random.New(seed),
		log:   slog.Default(),
	}
}

// Engine exposes the propagator's random engine so sources and fluxes can
// share the same draw sequence.
func (p *Propagator) Engine() *random.Engine {
	return p.rng
}

// Models returns the configured physics-model selections.
func (p *Propagator) Models() particle.Models {
	return p.cfg.Models
}

// Propagate runs a single trial and returns its interaction tree. A trial
// that is cut, rejected pre-step, or interacts undetectably returns an
// empty tree; that is a statistical failure, not an error.
func (p *Propagator) Propagate(src source.Source, flx flux.Flux, det detector.Detector) event.Tree {
	tree, _ := p.trial(src, flx, det)
	return tree
}

// PropagateN runs n independent trials. The returned batch always has n
// entries; failed trials are empty trees.
func (p *Propagator) PropagateN(src source.Source, flx flux.Flux, det detector.Detector, n int) event.Events {
	events := make(event.Events, 0, n)
	detected := 0
	for i := 0; i < n; i++ {
		tree := p.Propagate(src, flx, det)
		if len(tree) > 0 {
			detected++
		}
		events = append(events, tree)

		if p.cfg.ProgressEvery > 0 && (i+1)%p.cfg.ProgressEvery == 0 {
			p.log.Info("propagation progress", "trials", i+1, "total", n, "detected", detected)
		}
	}
	return events
}

// PropagateUntil repeats trials until one emits an interaction, and reports
// the number of failed trials that preceded it in the record. It returns
// ErrMaxTrials when the configured trial budget is exhausted.
func (p *Propagator) PropagateUntil(src source.Source, flx flux.Flux, det detector.Detector) (event.Tree, error) {
	for trials := 0; trials < p.cfg.MaxTrials; trials++ {
		tree, ok := p.trial(src, flx, det)
		if ok {
			for i := range tree {
				tree[i].Trials = trials
			}
			return tree, nil
		}
	}
	return nil, ErrMaxTrials
}

// trial runs one Monte Carlo trial. ok reports whether an interaction was
// emitted.
func (p *Propagator) trial(src source.Source, flx flux.Flux, det detector.Detector) (event.Tree, bool) {
	prt := flx.Next(p.rng)
	loc, dir := src.Origin(p.rng)
	info := prt.Interaction(p.rng)

	if !det.IsGood(prt, loc, dir) {
		return nil, false
	}

	weight := geom.Dot(geom.Unit(loc), dir)

	// Decays trigger on accumulated path length rather than grammage.
	decayKM := -1.0
	if info.Lifetime >= 0 {
		decayKM = particle.DecayLength(info.Lifetime)
	}

	grammage := 0.0
	pathKM := 0.0
	for !det.Cut(prt, loc, dir) {
		var stepped, length float64
		loc, stepped, length = p.step(loc, dir)
		grammage += stepped
		pathKM += length

		triggered := (info.Grammage > 0 && grammage >= info.Grammage) ||
			(decayKM >= 0 && pathKM >= decayKM)
		if !triggered {
			continue
		}

		if det.Detectable(info, prt, loc, dir) {
			return event.Tree{{
				PDGID:     prt.ID(),
				Energy:    prt.Energy(),
				Type:      info.Type,
				Location:  loc,
				Direction: dir,
				Weight:    weight,
				Altitude:  geom.Norm(loc) - p.earth.Radius(loc),
			}}, true
		}
		// Interacted but not detectable: the trial fails.
		return nil, false
	}
	return nil, false
}

// step advances loc by one step along dir and returns the new location, the
// grammage of the step, and the step length [km]. The density is sampled at
// the step midpoint, which approximates the column-depth integral to leading
// order in the step length.
func (p *Propagator) step(loc, dir geom.Vec) (geom.Vec, float64, float64) {
	length := p.stepSize(loc)
	half := dir.Scale(0.5 * length)

	loc = loc.Add(half)
	density := p.earth.Density(loc)
	loc = loc.Add(half)

	// density [g/cm^3] * length [km] * 1e5 [cm/km] -> grammage [g/cm^2]
	return loc, density * length * 1e5, length
}

// stepSize returns the step length [km] at the given location, shrinking as
// the particle nears the surface where the density gradient is steepest.
func (p *Propagator) stepSize(loc geom.Vec) float64 {
	x := geom.Norm(loc) / p.earth.Radius(loc)

	switch {
	case x < 0.85:
		return 10
	case x < 0.9:
		return 5
	case x < 0.99:
		return 1
	case x < 0.999:
		return 50e-3
	}
	return 10e-3
}
