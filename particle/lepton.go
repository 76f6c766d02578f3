package particle

import (
	"math"

	"github.com/pthm-cable/stratos/random"
)

// Rest masses in eV/c^2 and rest-frame lifetimes in ns.
const (
	electronMass = 0.510998e6
	muonMass     = 105.66e6
	tauMass      = 1776.86e6

	// MuonLifetime is the muon rest-frame lifetime [ns].
	MuonLifetime = 2196.9811

	// TauLifetime is the tau rest-frame lifetime [ns].
	TauLifetime = 2.903e-4
)

// SampleDecayTime draws a lab-frame decay time [ns] for a particle with the
// given rest mass [log10(eV/c^2)], rest lifetime [ns], and energy
// [log10(eV)]. The rest-frame exponential draw is boosted by the Lorentz
// factor gamma = 10^(energy - mass).
func SampleDecayTime(rng *random.Engine, massLog10, restLifetimeNS, energyLog10 float64) float64 {
	t := rng.Exponential(1 / restLifetimeNS)
	gamma := math.Pow(10, energyLog10-massLog10)
	return t * gamma
}

// DecayLength converts a lab-frame lifetime [ns] to a path length [km],
// assuming the particle travels at c.
func DecayLength(lifetimeNS float64) float64 {
	return CKmNs * lifetimeNS
}

// Electron is a charged electron. Electron propagation is not supported at
// these energies, so its next interaction is the terminating sentinel.
type Electron struct {
	energy float64
}

// NewElectron creates an electron with the given energy [log10(eV)].
func NewElectron(energy float64) *Electron {
	return &Electron{energy: energy}
}

func (e *Electron) ID() ID                  { return IDElectron }
func (e *Electron) Energy() float64         { return e.energy }
func (e *Electron) SetEnergy(energy float64) { e.energy = energy }

// Clone returns an independent copy.
func (e *Electron) Clone() Particle {
	c := *e
	return &c
}

// Interaction returns the terminating sentinel: electrons are not
// propagated further.
func (e *Electron) Interaction(*random.Engine) InteractionInfo {
	return NoInteractionInfo()
}

// Muon is a charged muon. Muon-matter energy loss is continuous, so its only
// discrete interaction is a decay.
type Muon struct {
	energy float64
}

// NewMuon creates a muon with the given energy [log10(eV)].
func NewMuon(energy float64) *Muon {
	return &Muon{energy: energy}
}

func (m *Muon) ID() ID                  { return IDMuon }
func (m *Muon) Energy() float64         { return m.energy }
func (m *Muon) SetEnergy(energy float64) { m.energy = energy }

// Clone returns an independent copy.
func (m *Muon) Clone() Particle {
	c := *m
	return &c
}

// Gamma returns the muon's Lorentz factor.
func (m *Muon) Gamma() float64 {
	return math.Pow(10, m.energy-math.Log10(muonMass))
}

// Interaction samples a muon decay with a lab-frame lifetime.
func (m *Muon) Interaction(rng *random.Engine) InteractionInfo {
	t := SampleDecayTime(rng, math.Log10(muonMass), MuonLifetime, m.energy)
	return InteractionInfo{Type: Decay, Grammage: -1, Lifetime: t}
}

// Tau is a charged tau lepton. Like the muon its only discrete interaction
// is a decay; decay final states are sampled from an external DecayTable.
// The cross-section model is carried so that neutrinos produced in the decay
// inherit it.
type Tau struct {
	energy float64
	Model  CrossSectionModel
}

// NewTau creates a tau with the given energy [log10(eV)].
func NewTau(energy float64, model CrossSectionModel) *Tau {
	return &Tau{energy: energy, Model: model}
}

func (t *Tau) ID() ID                  { return IDTau }
func (t *Tau) Energy() float64         { return t.energy }
func (t *Tau) SetEnergy(energy float64) { t.energy = energy }

// Clone returns an independent copy.
func (t *Tau) Clone() Particle {
	c := *t
	return &c
}

// Gamma returns the tau's Lorentz factor.
func (t *Tau) Gamma() float64 {
	return math.Pow(10, t.energy-math.Log10(tauMass))
}

// Interaction samples a tau decay with a lab-frame lifetime.
func (t *Tau) Interaction(rng *random.Engine) InteractionInfo {
	lab := SampleDecayTime(rng, math.Log10(tauMass), TauLifetime, t.energy)
	return InteractionInfo{Type: Decay, Grammage: -1, Lifetime: lab}
}

// DecayProduct samples a decay final state from the table and returns the
// neutrino carrying the largest fractional energy, as a new particle at that
// fractional energy.
func (t *Tau) DecayProduct(rng *random.Engine, table *DecayTable) (Particle, error) {
	state, err := table.RandomFinalState(rng)
	if err != nil {
		return nil, err
	}

	switch {
	case state.NuTau >= state.NuE && state.NuTau >= state.NuMu:
		return NewTauNeutrino(state.NuTau, t.Model), nil
	case state.NuMu >= state.NuE && state.NuMu >= state.NuTau:
		return NewMuonNeutrino(state.NuMu, t.Model), nil
	}
	return NewElectronNeutrino(state.NuE, t.Model), nil
}

// NewLepton creates a charged lepton of the given generation and energy
// [log10(eV)]. Unknown generations return ErrUnknownGeneration.
func NewLepton(gen Generation, energy float64, model CrossSectionModel) (Particle, error) {
	switch gen {
	case GenElectron:
		return NewElectron(energy), nil
	case GenMuon:
		return NewMuon(energy), nil
	case GenTau:
		return NewTau(energy, model), nil
	}
	return nil, ErrUnknownGeneration
}
