package particle

import (
	"math"

	"github.com/pthm-cable/stratos/random"
)

// Neutrino is an ultra-high-energy neutrino of a single flavor. Each
// neutrino carries the cross-section model used to sample its interactions.
type Neutrino struct {
	flavor Generation
	energy float64
	Model  CrossSectionModel
}

// NewNeutrino creates a neutrino of the given flavor and energy [log10(eV)].
func NewNeutrino(flavor Generation, energy float64, model CrossSectionModel) (*Neutrino, error) {
	switch flavor {
	case GenElectron, GenMuon, GenTau:
		return &Neutrino{flavor: flavor, energy: energy, Model: model}, nil
	}
	return nil, ErrUnknownGeneration
}

// NewElectronNeutrino creates an electron neutrino.
func NewElectronNeutrino(energy float64, model CrossSectionModel) *Neutrino {
	return &Neutrino{flavor: GenElectron, energy: energy, Model: model}
}

// NewMuonNeutrino creates a muon neutrino.
func NewMuonNeutrino(energy float64, model CrossSectionModel) *Neutrino {
	return &Neutrino{flavor: GenMuon, energy: energy, Model: model}
}

// NewTauNeutrino creates a tau neutrino.
func NewTauNeutrino(energy float64, model CrossSectionModel) *Neutrino {
	return &Neutrino{flavor: GenTau, energy: energy, Model: model}
}

// ID returns the PDG code for the neutrino's flavor.
func (n *Neutrino) ID() ID {
	switch n.flavor {
	case GenMuon:
		return IDMuonNeutrino
	case GenTau:
		return IDTauNeutrino
	}
	return IDElectronNeutrino
}

// Flavor returns the neutrino's generation.
func (n *Neutrino) Flavor() Generation { return n.flavor }

// Energy returns the energy in log10(eV).
func (n *Neutrino) Energy() float64 { return n.energy }

// SetEnergy sets the energy in log10(eV).
func (n *Neutrino) SetEnergy(energy float64) { n.energy = energy }

// Clone returns an independent copy.
func (n *Neutrino) Clone() Particle {
	c := *n
	return &c
}

// CrossSection returns the log10 cross section for the given interaction
// type at the neutrino's current energy, or -1 for types a neutrino does not
// undergo.
func (n *Neutrino) CrossSection(t InteractionType) float64 {
	switch t {
	case ChargedCurrent:
		return ChargedCurrentXSec(n.Model, n.energy)
	case NeutralCurrent:
		return NeutralCurrentXSec(n.Model, n.energy)
	}
	return -1
}

// Interaction samples candidate charged-current and neutral-current
// interaction grammages as independent exponential draws with mean
// 1/(N_A * 10^sigma) g/cm^2 and returns whichever occurs first.
func (n *Neutrino) Interaction(rng *random.Engine) InteractionInfo {
	cc := rng.Exponential(Avogadro * math.Pow(10, n.CrossSection(ChargedCurrent)))
	nc := rng.Exponential(Avogadro * math.Pow(10, n.CrossSection(NeutralCurrent)))

	if cc < nc {
		return InteractionInfo{Type: ChargedCurrent, Grammage: cc, Lifetime: -1}
	}
	return InteractionInfo{Type: NeutralCurrent, Grammage: nc, Lifetime: -1}
}
