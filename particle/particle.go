// Package particle models the particle species propagated by stratos:
// ultra-high-energy neutrinos, charged leptons, and cosmic-ray nuclei,
// together with their interaction sampling (cross sections, decay lifetimes,
// and shower-maximum depths).
//
// Energies are stored as log10 of the particle energy in electron-volts
// throughout, to accommodate the 10^6 eV - 10^21 eV dynamic range.
package particle

import (
	"errors"

	"github.com/pthm-cable/stratos/random"
)

// ID is a particle identifier following the PDG numbering scheme.
// Antiparticles are the negated codes.
type ID int

// PDG codes for the supported species. Nuclei use the standard 10LZZZAAAI
// nuclear codes; MixedNucleus is an internal sentinel for the averaged
// cosmic-ray composition, outside the PDG range.
const (
	IDElectron         ID = 11
	IDElectronNeutrino ID = 12
	IDMuon             ID = 13
	IDMuonNeutrino     ID = 14
	IDTau              ID = 15
	IDTauNeutrino      ID = 16
	IDProton           ID = 2212
	IDHelium           ID = 1000020040
	IDNitrogen         ID = 1000070140
	IDIron             ID = 1000260560
	IDMixedNucleus     ID = 1000000000
)

// Avogadro's constant [mol^-1].
const Avogadro = 6.0221415e23

// CKmNs is the speed of light in [km/ns].
const CKmNs = 2.998e-4

// ErrUnknownGeneration is returned when a particle is requested for a
// generation the factory does not recognize.
var ErrUnknownGeneration = errors.New("particle: unknown generation")

// Particle is a single propagating particle. Implementations are mutated
// only through SetEnergy during propagation; all sampling draws go through
// the engine passed to Interaction.
type Particle interface {
	// ID returns the PDG code of the particle.
	ID() ID

	// Energy returns the particle energy in log10(eV).
	Energy() float64

	// SetEnergy sets the particle energy in log10(eV).
	SetEnergy(energy float64)

	// Clone returns an independent copy of the particle.
	Clone() Particle

	// Interaction samples the next interaction this particle will undergo.
	Interaction(rng *random.Engine) InteractionInfo
}

// Generation selects a lepton family.
type Generation int

// The three lepton generations.
const (
	GenElectron Generation = iota
	GenMuon
	GenTau
)
