package particle

import (
	"math"
	"testing"

	"github.com/pthm-cable/stratos/random"
)

func TestChargedCurrentXSec(t *testing.T) {
	tests := []struct {
		name   string
		model  CrossSectionModel
		energy float64
		want   float64
	}{
		{"connolly middle", ConnollyMiddle, 18, -31.976334582560},
		{"gorham", Gorham, 19, -37.244244504591},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChargedCurrentXSec(tt.model, tt.energy)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ChargedCurrentXSec = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNeutralCurrentXSec(t *testing.T) {
	if got, want := NeutralCurrentXSec(ConnollyLower, 18), -32.42298612376; math.Abs(got-want) > 1e-9 {
		t.Errorf("NeutralCurrentXSec = %v, want %v", got, want)
	}

	// Gorham NC is CC scaled down by 2.39 in linear space.
	diff := ChargedCurrentXSec(Gorham, 18) - NeutralCurrentXSec(Gorham, 18)
	if math.Abs(diff-math.Log10(2.39)) > 1e-12 {
		t.Errorf("Gorham NC offset = %v, want log10(2.39)", diff)
	}
}

func TestYFactor(t *testing.T) {
	if got, want := YFactor(ALLM, 16), 0.232666133670; math.Abs(got-want) > 1e-9 {
		t.Errorf("YFactor(ALLM, 16) = %v, want %v", got, want)
	}
	if got, want := YFactor(ALLM, 18), 0.194445177596; math.Abs(got-want) > 1e-9 {
		t.Errorf("YFactor(ALLM, 18) = %v, want %v", got, want)
	}

	// Inelasticity falls with energy for every model.
	for _, m := range []YFactorModel{BDHM, Soyez, ALLM} {
		if YFactor(m, 20) >= YFactor(m, 10) {
			t.Errorf("model %d: y-factor should decrease with energy", m)
		}
	}
}

func TestUHECRXmax(t *testing.T) {
	p := NewProton(19)
	if got, want := p.Xmax(), 780.28784; math.Abs(got-want) > 1e-5 {
		t.Errorf("proton Xmax(19) = %v, want %v", got, want)
	}

	info := p.Interaction(random.Default())
	if info.Type != ShowerMax {
		t.Errorf("interaction type = %v, want ShowerMax", info.Type)
	}
	if info.Grammage != p.Xmax() || info.Lifetime != -1 {
		t.Errorf("interaction = %+v", info)
	}
}

func TestUHECRIDs(t *testing.T) {
	tests := []struct {
		p    Particle
		want ID
	}{
		{NewProton(19), IDProton},
		{NewHelium(19), IDHelium},
		{NewNitrogen(19), IDNitrogen},
		{NewIron(19), IDIron},
		{NewMixedUHECR(19), IDMixedNucleus},
	}
	for _, tt := range tests {
		if tt.p.ID() != tt.want {
			t.Errorf("ID = %v, want %v", tt.p.ID(), tt.want)
		}
	}
}

func TestElectronTerminates(t *testing.T) {
	e := NewElectron(18)
	info := e.Interaction(random.Default())
	if info.Type != NoInteraction || info.Grammage != -1 || info.Lifetime != -1 {
		t.Errorf("electron interaction = %+v, want terminating sentinel", info)
	}
}

func TestMuonDecayTimeMean(t *testing.T) {
	rng := random.Default()
	m := NewMuon(9)

	const n = 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += m.Interaction(rng).Lifetime
	}
	mean := sum / n / m.Gamma()

	if math.Abs(mean-MuonLifetime)/MuonLifetime > 0.01 {
		t.Errorf("rest-frame mean lifetime = %v, want %v within 1%%", mean, MuonLifetime)
	}
}

func TestTauDecay(t *testing.T) {
	rng := random.Default()
	tau := NewTau(18, ConnollyMiddle)

	info := tau.Interaction(rng)
	if info.Type != Decay || info.Grammage != -1 {
		t.Errorf("tau interaction = %+v", info)
	}
	if info.Lifetime < 0 {
		t.Errorf("tau lifetime = %v, want >= 0", info.Lifetime)
	}
}

func TestSampleDecayTimeBoost(t *testing.T) {
	rng := random.New(5)

	// Doubling the log-energy gap multiplies the lab lifetime by the same
	// power of ten on average.
	const n = 50000
	lo, hi := 0.0, 0.0
	for i := 0; i < n; i++ {
		lo += SampleDecayTime(rng, 8, 100, 9)
		hi += SampleDecayTime(rng, 8, 100, 10)
	}
	ratio := hi / lo
	if math.Abs(ratio-10)/10 > 0.05 {
		t.Errorf("boost ratio = %v, want ~10", ratio)
	}
}

func TestNeutrinoInteractionMean(t *testing.T) {
	rng := random.Default()
	nu := NewTauNeutrino(18, ConnollyMiddle)

	ccSigma := ChargedCurrentXSec(ConnollyMiddle, 18)
	ncSigma := NeutralCurrentXSec(ConnollyMiddle, 18)

	// The minimum of two independent exponentials is exponential with the
	// summed rate.
	lambda := Avogadro * (math.Pow(10, ccSigma) + math.Pow(10, ncSigma))

	const n = 50000
	sum := 0.0
	for i := 0; i < n; i++ {
		info := nu.Interaction(rng)
		if info.Grammage <= 0 {
			t.Fatalf("grammage = %v, want > 0", info.Grammage)
		}
		if info.Type != ChargedCurrent && info.Type != NeutralCurrent {
			t.Fatalf("type = %v", info.Type)
		}
		sum += info.Grammage
	}
	mean := sum / n
	if math.Abs(mean-1/lambda)/(1/lambda) > 0.02 {
		t.Errorf("mean trigger grammage = %v, want ~%v", mean, 1/lambda)
	}
}

func TestNeutrinoIDs(t *testing.T) {
	if id := NewElectronNeutrino(18, Gorham).ID(); id != IDElectronNeutrino {
		t.Errorf("nu_e id = %v", id)
	}
	if id := NewMuonNeutrino(18, Gorham).ID(); id != IDMuonNeutrino {
		t.Errorf("nu_mu id = %v", id)
	}
	if id := NewTauNeutrino(18, Gorham).ID(); id != IDTauNeutrino {
		t.Errorf("nu_tau id = %v", id)
	}
}

func TestNewNeutrinoUnknownGeneration(t *testing.T) {
	if _, err := NewNeutrino(Generation(42), 18, Gorham); err != ErrUnknownGeneration {
		t.Errorf("err = %v, want ErrUnknownGeneration", err)
	}
	if _, err := NewLepton(Generation(42), 18, Gorham); err != ErrUnknownGeneration {
		t.Errorf("err = %v, want ErrUnknownGeneration", err)
	}
}

func TestCloneIndependence(t *testing.T) {
	particles := []Particle{
		NewTauNeutrino(18, ConnollyMiddle),
		NewElectron(18),
		NewMuon(18),
		NewTau(18, Gorham),
		NewIron(18),
	}

	for _, p := range particles {
		c := p.Clone()
		if c.ID() != p.ID() || c.Energy() != p.Energy() {
			t.Fatalf("clone mismatch for %v", p.ID())
		}
		c.SetEnergy(1)
		if p.Energy() == 1 {
			t.Fatalf("clone shares state with original for %v", p.ID())
		}
	}
}
